package utils

import (
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// ViewerID returns the authenticated caller's ID, or 0 for anonymous reads.
func ViewerID(c *gin.Context) uint {
	if user := GetUser(c); user != nil {
		return user.UserID
	}
	return 0
}
