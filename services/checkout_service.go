package services

import (
	"context"

	"course-marketplace/models"
	"course-marketplace/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService initiates checkouts against the configured gateways.
//
// The two gateways deliberately differ in when the ledger row appears:
// PayPal orders get a pending transaction immediately, because the capture
// step correlates by order id; Stripe sessions record nothing until the
// webhook proves completion, so abandoned sessions leave no orphaned rows.
type CheckoutService struct {
	carts      repository.CartRepository
	payments   repository.PaymentRepository
	paypal     PayPalGateway
	stripeGW   StripeGateway
	reconciler *Reconciler
	logger     *zap.Logger
}

func NewCheckoutService(
	carts repository.CartRepository,
	payments repository.PaymentRepository,
	paypal PayPalGateway,
	stripeGW StripeGateway,
	reconciler *Reconciler,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		payments:   payments,
		paypal:     paypal,
		stripeGW:   stripeGW,
		reconciler: reconciler,
		logger:     logger,
	}
}

// InitiatePayPal creates a remote PayPal order for the user's cart total and
// records a pending transaction referencing the returned order id.
func (s *CheckoutService) InitiatePayPal(ctx context.Context, userID uuid.UUID) (*PayPalOrder, error) {
	cart, err := s.carts.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	amount := cart.TotalInCart()
	if amount == 0 {
		return nil, ErrEmptyCart
	}

	order, err := s.paypal.CreateOrder(ctx, amount)
	if err != nil {
		return nil, err
	}

	txn := &models.PaymentTransaction{
		UserID:        userID,
		CartID:        cart.ID,
		Amount:        amount,
		Gateway:       models.GatewayPayPal,
		TransactionID: order.ID,
		Status:        models.TransactionStatusPending,
	}
	if err := s.payments.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("PayPal checkout initiated",
		zap.String("user_id", userID.String()),
		zap.String("order_id", order.ID),
		zap.Int64("amount", amount),
	)
	return order, nil
}

// CapturePayPal captures an approved order and resolves the transaction.
// A declined capture marks the ledger row failed and surfaces an error.
func (s *CheckoutService) CapturePayPal(ctx context.Context, orderID string) error {
	captured, err := s.paypal.CaptureOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.reconciler.ResolveCapture(ctx, orderID, captured); err != nil {
		return err
	}
	if !captured {
		return ErrCaptureDeclined
	}
	return nil
}

// InitiateStripe creates a checkout session for the cart. No transaction is
// recorded here; the checkout.session.completed webhook creates it.
func (s *CheckoutService) InitiateStripe(ctx context.Context, userID uuid.UUID) (*StripeCheckout, error) {
	cart, err := s.carts.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.InCartItems()) == 0 {
		return nil, ErrEmptyCart
	}

	checkout, err := s.stripeGW.CreateCheckoutSession(ctx, cart)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stripe checkout initiated",
		zap.String("user_id", userID.String()),
		zap.String("session_id", checkout.SessionID),
	)
	return checkout, nil
}
