package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the storefront envelope with a data payload
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the storefront envelope with an error. details may be nil.
func JSONError(c *gin.Context, status int, err error, message string, details any) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if details != nil {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}
