package services_test

import (
	"context"
	"fmt"
	"testing"

	"course-marketplace/models"
	"course-marketplace/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type checkoutFixture struct {
	userID   uuid.UUID
	cart     *models.Cart
	payments *fakePaymentRepo
	paypal   *fakePayPalGateway
	stripe   *fakeStripeGateway
	checkout *services.CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	userID := uuid.New()
	cart := newTestCart(userID, 1999, 4999)

	payments := newFakePaymentRepo()
	carts := newFakeCartRepo(cart)
	enrollments := newFakeEnrollmentRepo()
	logger := zap.NewNop()

	paypal := &fakePayPalGateway{}
	stripeGW := &fakeStripeGateway{}
	enrollmentSvc := services.NewEnrollmentService(enrollments, carts, logger)
	reconciler := services.NewReconciler(payments, carts, enrollmentSvc, nil, logger)

	return &checkoutFixture{
		userID:   userID,
		cart:     cart,
		payments: payments,
		paypal:   paypal,
		stripe:   stripeGW,
		checkout: services.NewCheckoutService(carts, payments, paypal, stripeGW, reconciler, logger),
	}
}

func TestInitiatePayPalCreatesPendingTransaction(t *testing.T) {
	f := newCheckoutFixture()
	f.paypal.order = &services.PayPalOrder{
		ID:          "ORDER-1",
		Status:      "CREATED",
		ApprovalURL: "https://www.sandbox.paypal.com/checkoutnow?token=ORDER-1",
	}

	order, err := f.checkout.InitiatePayPal(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.ID)

	txn := f.payments.get("ORDER-1")
	require.NotNil(t, txn)
	assert.Equal(t, models.TransactionStatusPending, txn.Status)
	assert.Equal(t, models.GatewayPayPal, txn.Gateway)
	assert.Equal(t, f.cart.ID, txn.CartID)
	assert.Equal(t, int64(6998), txn.Amount)
}

func TestInitiatePayPalEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.checkout.InitiatePayPal(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Empty(t, f.payments.byID)
}

func TestInitiatePayPalGatewayUnavailable(t *testing.T) {
	f := newCheckoutFixture()
	f.paypal.orderErr = fmt.Errorf("%w: connection refused", services.ErrGatewayUnavailable)

	_, err := f.checkout.InitiatePayPal(context.Background(), f.userID)
	assert.ErrorIs(t, err, services.ErrGatewayUnavailable)
	assert.Empty(t, f.payments.byID, "no transaction recorded when order creation fails")
}

func TestCapturePayPalConfirmed(t *testing.T) {
	f := newCheckoutFixture()
	f.paypal.order = &services.PayPalOrder{ID: "ORDER-1"}
	f.paypal.captured = true

	_, err := f.checkout.InitiatePayPal(context.Background(), f.userID)
	require.NoError(t, err)

	require.NoError(t, f.checkout.CapturePayPal(context.Background(), "ORDER-1"))
	assert.Equal(t, models.TransactionStatusSuccess, f.payments.get("ORDER-1").Status)
}

func TestCapturePayPalDeclined(t *testing.T) {
	f := newCheckoutFixture()
	f.paypal.order = &services.PayPalOrder{ID: "ORDER-1"}
	f.paypal.captured = false

	_, err := f.checkout.InitiatePayPal(context.Background(), f.userID)
	require.NoError(t, err)

	err = f.checkout.CapturePayPal(context.Background(), "ORDER-1")
	assert.ErrorIs(t, err, services.ErrCaptureDeclined)
	assert.Equal(t, models.TransactionStatusFailed, f.payments.get("ORDER-1").Status)
}

func TestCapturePayPalGatewayError(t *testing.T) {
	f := newCheckoutFixture()
	f.paypal.order = &services.PayPalOrder{ID: "ORDER-1"}
	f.paypal.captureErr = fmt.Errorf("%w: gateway timeout", services.ErrGatewayUnavailable)

	_, err := f.checkout.InitiatePayPal(context.Background(), f.userID)
	require.NoError(t, err)

	err = f.checkout.CapturePayPal(context.Background(), "ORDER-1")
	assert.ErrorIs(t, err, services.ErrGatewayUnavailable)
	// An unreachable gateway must not fail the transaction; the webhook or a
	// retried capture settles it later.
	assert.Equal(t, models.TransactionStatusPending, f.payments.get("ORDER-1").Status)
}

func TestInitiateStripeRecordsNothing(t *testing.T) {
	f := newCheckoutFixture()
	f.stripe.checkout = &services.StripeCheckout{
		SessionID: "cs_test_1",
		URL:       "https://checkout.stripe.com/c/pay/cs_test_1",
	}

	checkout, err := f.checkout.InitiateStripe(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", checkout.SessionID)
	assert.Empty(t, f.payments.byID, "Stripe transactions are created by the webhook, not at checkout")
}

func TestInitiateStripeEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.checkout.InitiateStripe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestInitiateStripeGatewayUnavailable(t *testing.T) {
	f := newCheckoutFixture()
	f.stripe.err = fmt.Errorf("%w: stripe api error", services.ErrGatewayUnavailable)

	_, err := f.checkout.InitiateStripe(context.Background(), f.userID)
	assert.ErrorIs(t, err, services.ErrGatewayUnavailable)
}
