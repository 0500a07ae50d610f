package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONSuccess sends the uniform success envelope with a message
func JSONSuccess(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// JSONToken sends a success envelope carrying a session token
func JSONToken(c *gin.Context, status int, message, token string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"token":   token,
	})
}

// JSONData sends a success envelope carrying a data payload
func JSONData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// JSONError sends the uniform failure envelope
func JSONError(c *gin.Context, status int, errMsg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   errMsg,
	})
}
