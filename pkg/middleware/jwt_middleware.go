package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pawtrip/pkg/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's id,
// role and raw token in the context. The raw token is forwarded as the
// credential of generation requests.
func JWTAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("Role", claims.Role)
		c.Set("credential", tokenString)
		c.Next()
	}
}
