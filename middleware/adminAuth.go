package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adminRepo "sahara/database/repository/admin"
	"sahara/utils"
)

// JWTAuthAdminMiddleware gates admin-only routes. The token's subject must
// resolve to an existing administrator; the verified identity is placed on
// the request context.
func JWTAuthAdminMiddleware(repo adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "No token, authorization denied"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Token is not valid"})
			return
		}

		admin, err := repo.GetByID(adminID)
		if err != nil || admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Token is not valid"})
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminEmail", admin.Email)
		c.Next()
	}
}
