package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"course-marketplace/models"
	"course-marketplace/repository"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentEventPublisher fans out finalized payment events. The reconciler
// tolerates a nil publisher.
type PaymentEventPublisher interface {
	Publish(event models.PaymentEvent) error
}

// Reconciler consumes verified gateway events and advances the transaction
// ledger. It is the only writer of transaction status; every transition to
// success marks the snapshot's items sold and materializes enrollments before
// the webhook is acknowledged.
type Reconciler struct {
	payments    repository.PaymentRepository
	carts       repository.CartRepository
	enrollments *EnrollmentService
	publisher   PaymentEventPublisher
	logger      *zap.Logger
}

func NewReconciler(
	payments repository.PaymentRepository,
	carts repository.CartRepository,
	enrollments *EnrollmentService,
	publisher PaymentEventPublisher,
	logger *zap.Logger,
) *Reconciler {
	return &Reconciler{
		payments:    payments,
		carts:       carts,
		enrollments: enrollments,
		publisher:   publisher,
		logger:      logger,
	}
}

// HandlePayPalEvent advances the ledger for a verified PayPal webhook event.
func (r *Reconciler) HandlePayPalEvent(ctx context.Context, event *PayPalWebhookEvent) error {
	switch event.EventType {
	case "PAYMENT.CAPTURE.COMPLETED":
		orderID := event.OrderID()
		if orderID == "" {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "capture event carries no order id"}
		}
		txn, err := r.payments.FindByTransactionID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no transaction for order %s", ErrNotFound, orderID)
			}
			return err
		}
		return r.succeed(ctx, txn)

	case "PAYMENT.CAPTURE.DENIED":
		return r.failByTransactionID(ctx, event.OrderID())

	default:
		r.logger.Info("ignoring PayPal event", zap.String("event_type", event.EventType))
		return nil
	}
}

// HandleStripeEvent advances the ledger for a verified Stripe webhook event.
func (r *Reconciler) HandleStripeEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "malformed checkout session payload"}
		}
		return r.handleCheckoutCompleted(ctx, &sess)

	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "malformed payment intent payload"}
		}
		txn, err := r.payments.FindByTransactionID(ctx, pi.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The session webhook may not have landed yet; the retry or
				// the session event itself will settle this intent.
				r.logger.Warn("payment intent succeeded for unknown transaction", zap.String("payment_intent_id", pi.ID))
				return nil
			}
			return err
		}
		return r.succeed(ctx, txn)

	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return &ServiceError{StatusCode: http.StatusBadRequest, Message: "malformed payment intent payload"}
		}
		return r.failByTransactionID(ctx, pi.ID)

	default:
		r.logger.Info("ignoring Stripe event", zap.String("event_type", string(event.Type)))
		return nil
	}
}

// ResolveCapture applies the outcome of a synchronous PayPal capture call:
// a confirmed capture succeeds the transaction, a declined one fails it.
func (r *Reconciler) ResolveCapture(ctx context.Context, orderID string, captured bool) error {
	if !captured {
		return r.failByTransactionID(ctx, orderID)
	}
	txn, err := r.payments.FindByTransactionID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no transaction for order %s", ErrNotFound, orderID)
		}
		return err
	}
	return r.succeed(ctx, txn)
}

// handleCheckoutCompleted settles a Stripe checkout session. Transaction
// creation is deferred until this event, so an unknown session id creates the
// ledger row directly in success state, correlated to the cart through the
// session's client_reference_id.
func (r *Reconciler) handleCheckoutCompleted(ctx context.Context, sess *stripe.CheckoutSession) error {
	txnID := stripeTransactionID(sess)

	txn, err := r.payments.FindByTransactionID(ctx, txnID)
	if err == nil {
		return r.succeed(ctx, txn)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	cartID, err := uuid.Parse(sess.ClientReferenceID)
	if err != nil {
		return fmt.Errorf("%w: checkout session %s carries no cart reference", ErrNotFound, sess.ID)
	}
	cart, err := r.carts.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cart %s for session %s", ErrNotFound, cartID, sess.ID)
		}
		return err
	}

	txn = &models.PaymentTransaction{
		UserID:        cart.UserID,
		CartID:        cart.ID,
		Amount:        sess.AmountTotal,
		Gateway:       models.GatewayStripe,
		TransactionID: txnID,
		Status:        models.TransactionStatusSuccess,
	}
	if err := r.payments.Create(ctx, txn); err != nil {
		// A concurrent delivery may have inserted the row first; the unique
		// transaction id constraint makes sure only one creation wins.
		if existing, findErr := r.payments.FindByTransactionID(ctx, txnID); findErr == nil {
			return r.succeed(ctx, existing)
		}
		return err
	}

	r.logger.Info("transaction created from checkout session",
		zap.String("transaction_id", txnID),
		zap.String("cart_id", cart.ID.String()),
	)
	return r.finalize(ctx, txn)
}

// succeed moves a transaction to success exactly once. Redelivered success
// events find the row already terminal and do nothing.
func (r *Reconciler) succeed(ctx context.Context, txn *models.PaymentTransaction) error {
	advanced, err := r.payments.AdvanceStatus(ctx, txn.ID, models.TransactionStatusSuccess)
	if err != nil {
		return err
	}
	if !advanced {
		r.logger.Info("skipping duplicate success event",
			zap.String("transaction_id", txn.TransactionID),
			zap.String("status", txn.Status),
		)
		return nil
	}
	txn.Status = models.TransactionStatusSuccess
	return r.finalize(ctx, txn)
}

// finalize runs the success side effects: sold-marking scoped to the
// snapshot cart, enrollment materialization and event publication.
func (r *Reconciler) finalize(ctx context.Context, txn *models.PaymentTransaction) error {
	sold, err := r.carts.MarkItemsSold(ctx, txn.CartID)
	if err != nil {
		return err
	}
	created, err := r.enrollments.Materialize(ctx, txn)
	if err != nil {
		return err
	}

	r.logger.Info("transaction reconciled",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("gateway", txn.Gateway),
		zap.Int64("items_sold", sold),
		zap.Int("enrollments_created", created),
	)

	r.publish("payment_succeeded", txn)
	return nil
}

// failByTransactionID marks a transaction failed. An unknown id is a no-op:
// the capture may never have been recorded in the first place.
func (r *Reconciler) failByTransactionID(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return nil
	}
	txn, err := r.payments.FindByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Info("failure event for unknown transaction", zap.String("transaction_id", transactionID))
			return nil
		}
		return err
	}

	advanced, err := r.payments.AdvanceStatus(ctx, txn.ID, models.TransactionStatusFailed)
	if err != nil {
		return err
	}
	if !advanced {
		r.logger.Info("skipping duplicate failure event",
			zap.String("transaction_id", txn.TransactionID),
			zap.String("status", txn.Status),
		)
		return nil
	}
	txn.Status = models.TransactionStatusFailed

	r.logger.Info("transaction failed",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("gateway", txn.Gateway),
	)
	r.publish("payment_failed", txn)
	return nil
}

func (r *Reconciler) publish(eventType string, txn *models.PaymentTransaction) {
	if r.publisher == nil {
		return
	}
	event := models.PaymentEvent{
		Type:          eventType,
		TransactionID: txn.TransactionID,
		UserID:        txn.UserID.String(),
		CartID:        txn.CartID.String(),
		Gateway:       txn.Gateway,
		Amount:        txn.Amount,
		Currency:      "usd",
		Timestamp:     time.Now().UTC(),
	}
	if err := r.publisher.Publish(event); err != nil {
		r.logger.Warn("failed to publish payment event",
			zap.String("event_type", eventType),
			zap.String("transaction_id", txn.TransactionID),
			zap.Error(err),
		)
	}
}

// stripeTransactionID prefers the payment intent id over the session id so
// later payment_intent.* events address the same ledger row.
func stripeTransactionID(sess *stripe.CheckoutSession) string {
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		return sess.PaymentIntent.ID
	}
	return sess.ID
}
