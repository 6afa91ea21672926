package controllers

import (
	"context"
	"io"
	"net/http"

	"course-marketplace/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// WebhookProcessor advances the ledger for verified gateway events.
type WebhookProcessor interface {
	HandlePayPalEvent(ctx context.Context, event *services.PayPalWebhookEvent) error
	HandleStripeEvent(ctx context.Context, event stripe.Event) error
}

type WebhookController struct {
	PayPal     services.PayPalGateway
	Stripe     services.StripeGateway
	Reconciler WebhookProcessor
	Logger     *zap.Logger
}

// PayPalWebhook verifies and processes a PayPal webhook delivery. Rejected
// deliveries never reach the reconciler; processing errors answer non-2xx so
// the gateway redelivers.
func (wc *WebhookController) PayPalWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "unreadable request body")
		return
	}

	event, err := wc.PayPal.VerifyWebhook(body, c.Request.Header)
	if err != nil {
		wc.Logger.Warn("PayPal webhook rejected", zap.Error(err))
		respondServiceError(c, err, "webhook verification failed")
		return
	}

	if err := wc.Reconciler.HandlePayPalEvent(c.Request.Context(), event); err != nil {
		wc.Logger.Error("PayPal webhook processing failed",
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
		respondServiceError(c, err, "internal server error")
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// StripeWebhook verifies and processes a Stripe webhook delivery.
func (wc *WebhookController) StripeWebhook(c *gin.Context) {
	event, err := wc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		wc.Logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		errorResponse(c, http.StatusBadRequest, "invalid webhook")
		return
	}

	wc.Logger.Info("processing Stripe webhook",
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID),
	)

	if err := wc.Reconciler.HandleStripeEvent(c.Request.Context(), event); err != nil {
		wc.Logger.Error("Stripe webhook processing failed",
			zap.String("event_type", string(event.Type)),
			zap.Error(err),
		)
		respondServiceError(c, err, "internal server error")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"status": "processed"})
}
