package controllers

import (
	"errors"
	"net/http"

	"course-marketplace/middleware"
	"course-marketplace/models"
	"course-marketplace/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseController struct {
	Courses repository.CourseRepository
	Logger  *zap.Logger
}

func (cc *CourseController) ListCategories(c *gin.Context) {
	categories, err := cc.Courses.ListCategories(c.Request.Context())
	if err != nil {
		cc.Logger.Error("failed to list categories", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list categories")
		return
	}
	successResponse(c, http.StatusOK, categories)
}

func (cc *CourseController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, gin.H{"name": "required"})
		return
	}

	category := &models.Category{Name: req.Name}
	if err := cc.Courses.CreateCategory(c.Request.Context(), category); err != nil {
		cc.Logger.Error("failed to create category", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to create category")
		return
	}
	successResponse(c, http.StatusCreated, category)
}

func (cc *CourseController) ListCourses(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			failResponse(c, gin.H{"category": "must be a valid id"})
			return
		}
		categoryID = &id
	}

	courses, err := cc.Courses.ListCourses(c.Request.Context(), categoryID)
	if err != nil {
		cc.Logger.Error("failed to list courses", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list courses")
		return
	}
	successResponse(c, http.StatusOK, courses)
}

func (cc *CourseController) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failResponse(c, gin.H{"id": "must be a valid id"})
		return
	}

	course, err := cc.Courses.FindCourseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorResponse(c, http.StatusNotFound, "course not found")
			return
		}
		cc.Logger.Error("failed to get course", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to get course")
		return
	}
	successResponse(c, http.StatusOK, course)
}

func (cc *CourseController) InstructorCourses(c *gin.Context) {
	userID := middleware.GetUserID(c)

	courses, err := cc.Courses.ListByInstructor(c.Request.Context(), userID)
	if err != nil {
		cc.Logger.Error("failed to list instructor courses", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list courses")
		return
	}
	successResponse(c, http.StatusOK, courses)
}

type courseRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Price       int64      `json:"price" binding:"required,min=1"`
}

func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, gin.H{"body": err.Error()})
		return
	}

	instructorID := middleware.GetUserID(c)
	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: &instructorID,
		CategoryID:   req.CategoryID,
		Price:        req.Price,
	}
	if err := cc.Courses.CreateCourse(c.Request.Context(), course); err != nil {
		cc.Logger.Error("failed to create course", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to create course")
		return
	}
	successResponse(c, http.StatusCreated, course)
}

func (cc *CourseController) UpdateCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failResponse(c, gin.H{"id": "must be a valid id"})
		return
	}

	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, gin.H{"body": err.Error()})
		return
	}

	course, err := cc.Courses.FindCourseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorResponse(c, http.StatusNotFound, "course not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to update course")
		return
	}

	course.Title = req.Title
	course.Description = req.Description
	course.CategoryID = req.CategoryID
	course.Price = req.Price
	if err := cc.Courses.UpdateCourse(c.Request.Context(), course); err != nil {
		cc.Logger.Error("failed to update course", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to update course")
		return
	}
	successResponse(c, http.StatusOK, course)
}

func (cc *CourseController) DeleteCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failResponse(c, gin.H{"id": "must be a valid id"})
		return
	}

	if err := cc.Courses.DeleteCourse(c.Request.Context(), id); err != nil {
		cc.Logger.Error("failed to delete course", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to delete course")
		return
	}
	successResponse(c, http.StatusOK, nil)
}

func (cc *CourseController) ListLessons(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failResponse(c, gin.H{"id": "must be a valid id"})
		return
	}

	lessons, err := cc.Courses.ListLessons(c.Request.Context(), courseID)
	if err != nil {
		cc.Logger.Error("failed to list lessons", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list lessons")
		return
	}
	successResponse(c, http.StatusOK, lessons)
}
