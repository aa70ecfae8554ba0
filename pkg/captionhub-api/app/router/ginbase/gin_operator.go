package ginbase

import "github.com/gin-gonic/gin"

const (
	NotExist = 0
)

func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get("isAdmin")
	if !exists {
		return false
	}
	return isAdmin.(uint64) == 1
}

func LoginUser(c *gin.Context) uint64 {
	userId, exists := c.Get("userId")
	if exists {
		if uid, ok := userId.(uint64); ok {
			return uid
		}
	}
	return NotExist
}

func IsLogin(c *gin.Context) bool {
	return LoginUser(c) != NotExist
}
