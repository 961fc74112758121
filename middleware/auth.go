package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/wanderlist/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and stores the caller's
// claims on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			c.Abort()
			return
		}
		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a token is
// present and continues anonymously otherwise. Used by read endpoints that
// anonymous viewers may hit.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearerToken(c); ok {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func parseBearerToken(c *gin.Context) (*utils.UserClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, false
	}
	username, _ := claims["username"].(string)

	return &utils.UserClaims{UserID: uint(userID), Username: username}, true
}
