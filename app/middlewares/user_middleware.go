package middlewares

import (
	"context"
	"net/http"

	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/services"
)

// UserAuthMiddleware guards the per-user endpoint family. The token travels
// as a plain `token` header (not bearer-style), a convention the storefront
// client already follows.
func UserAuthMiddleware(rnd *render.Render, tokens *services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("token")
			if tokenString == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Unauthorized!",
				})
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil || claims.Role != services.RoleUser {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Invalid token!",
				})
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id set by
// UserAuthMiddleware.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(ContextKeyUserID).(string)
	return userID
}
