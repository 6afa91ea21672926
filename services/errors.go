package services

import "net/http"

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

var (
	// ErrEmptyCart rejects checkout initiation when the cart has no
	// purchasable items.
	ErrEmptyCart = &ServiceError{StatusCode: http.StatusBadRequest, Message: "cart has no items to purchase"}

	// ErrGatewayUnavailable covers network failures, timeouts and 5xx
	// responses from a payment gateway. Retryable from the client's side.
	ErrGatewayUnavailable = &ServiceError{StatusCode: http.StatusBadGateway, Message: "payment gateway unavailable"}

	// ErrSignatureInvalid rejects a webhook whose authenticity could not be
	// established. The event is never processed.
	ErrSignatureInvalid = &ServiceError{StatusCode: http.StatusBadRequest, Message: "invalid webhook signature"}

	// ErrNotFound is returned when a referenced transaction or cart is
	// missing and the event cannot proceed without it.
	ErrNotFound = &ServiceError{StatusCode: http.StatusNotFound, Message: "resource not found"}

	// ErrCaptureDeclined reports a PayPal capture the gateway refused; the
	// transaction is already marked failed when this is returned.
	ErrCaptureDeclined = &ServiceError{StatusCode: http.StatusBadRequest, Message: "payment capture declined"}
)
