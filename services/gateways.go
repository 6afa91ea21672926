package services

import (
	"context"
	"net/http"

	"course-marketplace/models"

	"github.com/stripe/stripe-go/v80"
)

// PayPalOrder is the result of creating a remote PayPal order.
type PayPalOrder struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	ApprovalURL string `json:"approval_url"`
}

// PayPalWebhookEvent is a verified PayPal webhook payload.
type PayPalWebhookEvent struct {
	EventType string `json:"event_type"`
	Resource  struct {
		SupplementaryData struct {
			RelatedIDs struct {
				OrderID string `json:"order_id"`
			} `json:"related_ids"`
		} `json:"supplementary_data"`
	} `json:"resource"`
}

// OrderID extracts the PayPal order id correlated with a capture event.
func (e *PayPalWebhookEvent) OrderID() string {
	return e.Resource.SupplementaryData.RelatedIDs.OrderID
}

// PayPalGateway creates and captures remote orders and authenticates inbound
// webhooks.
type PayPalGateway interface {
	CreateOrder(ctx context.Context, amount int64) (*PayPalOrder, error)
	// CaptureOrder reports whether the gateway confirmed the capture. A
	// declined capture is (false, nil); an unreachable gateway is an error.
	CaptureOrder(ctx context.Context, orderID string) (bool, error)
	VerifyWebhook(body []byte, header http.Header) (*PayPalWebhookEvent, error)
}

// StripeCheckout is the result of creating a remote Stripe checkout session.
type StripeCheckout struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// StripeGateway creates checkout sessions and authenticates inbound webhooks.
type StripeGateway interface {
	CreateCheckoutSession(ctx context.Context, cart *models.Cart) (*StripeCheckout, error)
	ParseWebhook(r *http.Request) (stripe.Event, error)
}
