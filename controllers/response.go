package controllers

import (
	"errors"
	"net/http"

	"course-marketplace/services"

	"github.com/gin-gonic/gin"
)

// Uniform response envelope: {"status": "success"|"error"|"fail", ...}.

func successResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status": "error",
		"error":  gin.H{"code": code, "message": message},
	})
}

func failResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "data": data})
}

// respondServiceError maps a ServiceError onto the envelope; anything else is
// an internal error with the given fallback message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var se *services.ServiceError
	if errors.As(err, &se) {
		errorResponse(c, se.StatusCode, se.Message)
		return
	}
	errorResponse(c, http.StatusInternalServerError, fallback)
}
