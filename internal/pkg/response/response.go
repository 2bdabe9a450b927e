package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// {"success": bool, "data": T|null, "error": CODE|null}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"error":   nil,
	})
}

func Error(c *gin.Context, statusCode int, code string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"data":    nil,
		"error":   code,
	})
}

func AbortError(c *gin.Context, statusCode int, code string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"data":    nil,
		"error":   code,
	})
}
