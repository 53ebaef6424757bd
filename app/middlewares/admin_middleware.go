package middlewares

import (
	"net/http"
	"strings"

	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/services"
	"github.com/vastra-store/vastra/app/utils/logger"
)

// AdminAuthMiddleware guards the admin endpoint family. The token travels as
// a standard bearer header and its subject must be the fixed operator email;
// a user token never passes here.
func AdminAuthMiddleware(rnd *render.Render, tokens *services.TokenService, adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Authorization token missing or invalid",
				})
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokens.Verify(tokenString)
			if err != nil {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Invalid or expired token",
				})
				return
			}

			if claims.Role != services.RoleAdmin || claims.Subject != adminEmail {
				logger.Get().Warnf("AdminAuthMiddleware: rejected token with subject %s role %s", claims.Subject, claims.Role)
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Unauthorized",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
