package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GatewayPayPal = "paypal"
	GatewayStripe = "stripe"
)

const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// PaymentTransaction is the ledger row for one payment attempt. Rows are
// created at checkout (PayPal) or on webhook delivery (Stripe) and are never
// deleted; only the reconciler moves Status out of pending.
type PaymentTransaction struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	CartID uuid.UUID `gorm:"type:uuid;index;not null" json:"cart_id"`
	// Amount in the smallest currency unit (cents).
	Amount  int64  `gorm:"not null" json:"amount"`
	Gateway string `gorm:"type:varchar(50);not null" json:"payment_gateway"`
	// TransactionID is the gateway-assigned id: a PayPal order id or a Stripe
	// payment intent / session id.
	TransactionID string    `gorm:"uniqueIndex;not null" json:"transaction_id"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Terminal reports whether the transaction has reached a final state.
func (t *PaymentTransaction) Terminal() bool {
	return t.Status == TransactionStatusSuccess || t.Status == TransactionStatusFailed
}
