package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sports-academy/backend/internal/handlers"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store/storetest"
)

func TestAddUser_New(t *testing.T) {
	fake := storetest.New()
	h := handlers.NewUserHandler(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/addUsers", strings.NewReader(`{"name":"Sam","email":"sam@example.com"}`))

	h.AddUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fake.Users, 1)
	assert.Equal(t, "sam@example.com", fake.Users[0].Email)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body["InsertedID"])
}

func TestAddUser_AlreadyExists(t *testing.T) {
	fake := storetest.New()
	fake.Users = []models.User{{ID: primitive.NewObjectID(), Email: "sam@example.com"}}
	h := handlers.NewUserHandler(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/addUsers", strings.NewReader(`{"name":"Sam","email":"sam@example.com"}`))

	h.AddUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "user already exist", body["message"])
	assert.Len(t, fake.Users, 1)
}

func TestAddUser_InvalidEmail(t *testing.T) {
	fake := storetest.New()
	h := handlers.NewUserHandler(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/addUsers", strings.NewReader(`{"name":"Sam","email":"not-an-email"}`))

	h.AddUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.Users)
}

func TestUserRole(t *testing.T) {
	fake := storetest.New()
	fake.Users = []models.User{{Email: "coach@example.com", Role: models.RoleInstructor}}
	h := handlers.NewUserHandler(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/userRole/coach@example.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "coach@example.com"})

	h.UserRole(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "instructor", body["role"])
}

func TestUserRole_UnknownUser(t *testing.T) {
	fake := storetest.New()
	h := handlers.NewUserHandler(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/userRole/ghost@example.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "ghost@example.com"})

	h.UserRole(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "", body["role"])
}

func TestPromote(t *testing.T) {
	id := primitive.NewObjectID()
	fake := storetest.New()
	fake.Users = []models.User{{ID: id, Email: "sam@example.com"}}
	h := handlers.NewUserHandler(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/users/admin/"+id.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	h.MakeAdmin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, fake.Users[0].Role)
}

func TestPromote_MalformedID(t *testing.T) {
	fake := storetest.New()
	h := handlers.NewUserHandler(fake)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/users/instructor/zzz", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "zzz"})

	h.MakeInstructor(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
