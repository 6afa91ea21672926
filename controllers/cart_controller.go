package controllers

import (
	"errors"
	"net/http"
	"strings"

	"course-marketplace/middleware"
	"course-marketplace/models"
	"course-marketplace/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartController struct {
	Carts  repository.CartRepository
	Logger *zap.Logger
}

// GetCart returns the caller's cart, creating it on first use.
func (cc *CartController) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	cart, err := cc.Carts.FindOrCreateByUserID(c.Request.Context(), userID)
	if err != nil {
		cc.Logger.Error("failed to get cart", zap.String("user_id", userID.String()), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to get cart")
		return
	}
	successResponse(c, http.StatusOK, cart)
}

// AddItem puts a course into the caller's cart. Each course can appear once.
func (cc *CartController) AddItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		CourseID uuid.UUID `json:"course_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, gin.H{"course_id": "required"})
		return
	}

	cart, err := cc.Carts.FindOrCreateByUserID(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to get cart")
		return
	}

	item := &models.CartItem{CartID: cart.ID, CourseID: req.CourseID}
	if err := cc.Carts.AddItem(c.Request.Context(), item); err != nil {
		// unique (cart, course) constraint
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			errorResponse(c, http.StatusConflict, "course already in cart")
			return
		}
		cc.Logger.Error("failed to add cart item", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to add item")
		return
	}
	successResponse(c, http.StatusCreated, item)
}

// RemoveItem deletes an in_cart item from the caller's cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failResponse(c, gin.H{"id": "must be a valid id"})
		return
	}

	cart, err := cc.Carts.FindOrCreateByUserID(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to get cart")
		return
	}

	if err := cc.Carts.RemoveItem(c.Request.Context(), cart.ID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorResponse(c, http.StatusNotFound, "cart item not found")
			return
		}
		cc.Logger.Error("failed to remove cart item", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to remove item")
		return
	}
	successResponse(c, http.StatusOK, nil)
}
