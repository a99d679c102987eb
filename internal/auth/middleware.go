package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/disiplinli/kocumnet-back/internal/config"
	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// AuthMiddleware validates the platform's "Authorization: Token <jwt>"
// header and attaches user_id, role and email to the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			return
		}

		jwtSecret := []byte(cfg.JWTSecret)

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
			return
		}

		if jti, _ := claims["jti"].(string); jti != "" {
			revoked := false
			if db.RDB != nil {
				n, err := db.RDB.Exists(c.Request.Context(), denylistKey(jti)).Result()
				revoked = err == nil && n > 0
			} else {
				revoked = isDenylisted(jti)
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
		}

		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)

		c.Set("user_id", uint(userID))
		c.Set("role", role)
		c.Set("email", email)
		c.Next()
	}
}

// RequireRole rejects requests whose token carries a different role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// RequireCoach is shorthand for the coach-only route groups.
func RequireCoach() gin.HandlerFunc { return RequireRole(models.RoleCoach) }

func denylistKey(jti string) string { return "denylist:" + jti }
