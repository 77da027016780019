package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusOf maps an error kind to its HTTP status. Anything that is not a
// lookup miss is an upstream failure and answers 500.
func statusOf(kind ErrorKind) int {
	if kind == NotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// OK sends data as-is with HTTP 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends data as-is with HTTP 201.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message sends a 200 with the {"message": ...} shape.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Error finalizes a failed request: the kind picks the status code, the body
// is always the {"error": ...} shape.
func Error(c *gin.Context, kind ErrorKind, msg string) {
	c.JSON(statusOf(kind), gin.H{"error": msg})
}
