package api

import "github.com/gin-gonic/gin"

// errorResponse writes the uniform error body.
func errorResponse(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
