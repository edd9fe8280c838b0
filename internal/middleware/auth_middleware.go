package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sports-academy/backend/internal/auth"
	"github.com/sports-academy/backend/internal/utils"
)

type ctxKey string

const claimsKey ctxKey = "decoded"

// ClaimsFromContext returns the decoded token claims set by RequireAuth, or
// nil when the request never passed through it.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

// WithClaims returns a context carrying decoded claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// RequireAuth rejects requests without a valid "Bearer <token>" Authorization
// header and puts the decoded claims on the request context.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			parts := strings.SplitN(authorization, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := auth.ValidateToken(secret, parts[1])
			if err != nil {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
