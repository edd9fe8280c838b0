package middleware

import (
	"context"
	"net/http"

	"github.com/sports-academy/backend/internal/auth"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

// Decision is the result of an authorization predicate.
type Decision struct {
	Allow  bool
	Reason string
}

func Allow() Decision {
	return Decision{Allow: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Predicate decides whether the authenticated caller may proceed. Predicates
// run after RequireAuth; claims are never nil here.
type Predicate func(ctx context.Context, claims *auth.Claims) Decision

// Require evaluates a predicate before the handler and short-circuits with
// 403 on Deny.
func Require(p Predicate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			decision := p(r.Context(), claims)
			if !decision.Allow {
				utils.WriteError(w, http.StatusForbidden, decision.Reason)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasRole allows callers whose stored user record carries the given role.
// The role comes from the database, not the token, so a promotion or demotion
// takes effect on the next request.
func HasRole(s store.Store, role models.Role) Predicate {
	return func(ctx context.Context, claims *auth.Claims) Decision {
		user, err := s.FindUserByEmail(ctx, claims.Email)
		if err != nil {
			return Deny("failed to look up user role")
		}
		if user == nil || user.Role != role {
			return Deny("forbidden access")
		}
		return Allow()
	}
}
