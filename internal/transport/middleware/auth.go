package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/petmemorial-backend/internal/domain"
	"github.com/heartmarshall/petmemorial-backend/pkg/ctxutil"
)

// TokenValidator resolves a bearer token into a user id and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, string, error)
}

// Auth resolves an optional bearer token into the user id and role on the
// request context. Requests without a token pass through anonymously; a
// token that fails validation is rejected with 401.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, domain.CodeUnauthenticated, "unauthorized")
				return
			}
			rememberUser(w, userID)
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, domain.CodeUnauthenticated, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
