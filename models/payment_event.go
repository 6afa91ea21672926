package models

import "time"

// PaymentEvent is the message published after the reconciler finalizes a
// transaction.
type PaymentEvent struct {
	Type          string    `json:"type"` // "payment_succeeded" or "payment_failed"
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	CartID        string    `json:"cart_id"`
	Gateway       string    `json:"gateway"`
	Amount        int64     `json:"amount"`   // smallest currency unit
	Currency      string    `json:"currency"` // "usd"
	Timestamp     time.Time `json:"timestamp"`
}
