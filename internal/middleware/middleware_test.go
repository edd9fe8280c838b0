package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sports-academy/backend/internal/auth"
	"github.com/sports-academy/backend/internal/middleware"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store/storetest"
)

var secret = []byte("test-secret")

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/getClasses", nil)

	middleware.RequireAuth(secret)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, true, decodeErrorBody(t, rec)["error"])
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/getClasses", nil)
	req.Header.Set("Authorization", "Basic abc123")

	middleware.RequireAuth(secret)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/getClasses", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	middleware.RequireAuth(secret)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, true, decodeErrorBody(t, rec)["error"])
}

func TestRequireAuth_ValidToken(t *testing.T) {
	token, err := auth.GenerateToken(secret, map[string]interface{}{"email": "rider@example.com"})
	require.NoError(t, err)

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r.Context())
		require.NotNil(t, claims)
		gotEmail = claims.Email
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/getClasses", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	middleware.RequireAuth(secret)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rider@example.com", gotEmail)
}

func TestHasRole_DeniesNonAdmin(t *testing.T) {
	fake := storetest.New()
	fake.Users = []models.User{{Email: "student@example.com", Role: ""}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/findUsers", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{Email: "student@example.com"}))

	guard := middleware.Require(middleware.HasRole(fake, models.RoleAdmin))
	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, true, decodeErrorBody(t, rec)["error"])
}

func TestHasRole_DeniesUnknownUser(t *testing.T) {
	fake := storetest.New()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/findUsers", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{Email: "ghost@example.com"}))

	guard := middleware.Require(middleware.HasRole(fake, models.RoleAdmin))
	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHasRole_AllowsStoredAdmin(t *testing.T) {
	fake := storetest.New()
	fake.Users = []models.User{{Email: "boss@example.com", Role: models.RoleAdmin}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/findUsers", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{Email: "boss@example.com"}))

	guard := middleware.Require(middleware.HasRole(fake, models.RoleAdmin))
	guard(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDecisionHelpers(t *testing.T) {
	assert.True(t, middleware.Allow().Allow)

	denied := middleware.Deny("forbidden access")
	assert.False(t, denied.Allow)
	assert.Equal(t, "forbidden access", denied.Reason)
}
