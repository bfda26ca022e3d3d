package utils

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, data gin.H) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}

// Rejected reports a command that was refused without changing session
// state, so clients can re-prompt instead of treating it as a failure.
func Rejected(c *gin.Context, code int, reason string) {
	c.JSON(code, gin.H{
		"success":  false,
		"rejected": true,
		"error":    reason,
	})
}
