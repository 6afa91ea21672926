package controllers

import (
	"net/http"

	"course-marketplace/middleware"
	"course-marketplace/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EnrollmentController struct {
	Enrollments repository.EnrollmentRepository
	Logger      *zap.Logger
}

// MyEnrollments lists the caller's enrollments, newest first.
func (ec *EnrollmentController) MyEnrollments(c *gin.Context) {
	userID := middleware.GetUserID(c)

	enrollments, err := ec.Enrollments.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		ec.Logger.Error("failed to list enrollments", zap.String("user_id", userID.String()), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list enrollments")
		return
	}
	successResponse(c, http.StatusOK, enrollments)
}
