package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the {status, message, data} envelope the UI renders
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONList sends a collection together with its size so views can show empty states
func JSONList[T any](c *gin.Context, status int, items []T, message string) {
	if items == nil {
		items = []T{}
	}
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"count":   len(items),
		"data":    items,
	})
}

// JSONError sends the error envelope shown as a toast by the UI
func JSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
