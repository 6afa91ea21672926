package controllers

import (
	"net/http"

	"course-marketplace/middleware"
	"course-marketplace/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	Checkout *services.CheckoutService
	Logger   *zap.Logger
}

// CreatePayPalOrder initiates a PayPal checkout for the caller's cart.
func (pc *PaymentController) CreatePayPalOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, err := pc.Checkout.InitiatePayPal(c.Request.Context(), userID)
	if err != nil {
		pc.Logger.Warn("PayPal checkout initiation failed", zap.String("user_id", userID.String()), zap.Error(err))
		respondServiceError(c, err, "failed to create PayPal order")
		return
	}

	successResponse(c, http.StatusOK, order)
}

// CapturePayPalOrder captures an approved PayPal order by id.
func (pc *PaymentController) CapturePayPalOrder(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Order ID is required")
		return
	}

	if err := pc.Checkout.CapturePayPal(c.Request.Context(), req.OrderID); err != nil {
		pc.Logger.Warn("PayPal capture failed", zap.String("order_id", req.OrderID), zap.Error(err))
		respondServiceError(c, err, "failed to capture payment")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"status": "success"})
}

// CreateStripeCheckout creates a Stripe checkout session for the caller's cart.
func (pc *PaymentController) CreateStripeCheckout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	checkout, err := pc.Checkout.InitiateStripe(c.Request.Context(), userID)
	if err != nil {
		pc.Logger.Warn("Stripe checkout initiation failed", zap.String("user_id", userID.String()), zap.Error(err))
		respondServiceError(c, err, "failed to create checkout session")
		return
	}

	successResponse(c, http.StatusCreated, checkout)
}
