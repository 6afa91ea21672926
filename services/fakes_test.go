package services_test

import (
	"context"
	"errors"
	"net/http"

	"course-marketplace/models"
	"course-marketplace/services"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"gorm.io/gorm"
)

// fakePaymentRepo keeps transactions in memory and enforces the unique
// transaction id and pending-only status transitions the real table has.
type fakePaymentRepo struct {
	byID      map[uuid.UUID]*models.PaymentTransaction
	byTxnID   map[string]uuid.UUID
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		byID:    make(map[uuid.UUID]*models.PaymentTransaction),
		byTxnID: make(map[string]uuid.UUID),
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, txn *models.PaymentTransaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byTxnID[txn.TransactionID]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	stored := *txn
	f.byID[txn.ID] = &stored
	f.byTxnID[txn.TransactionID] = txn.ID
	return nil
}

func (f *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*models.PaymentTransaction, error) {
	id, ok := f.byTxnID[transactionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	txn := *f.byID[id]
	return &txn, nil
}

func (f *fakePaymentRepo) AdvanceStatus(_ context.Context, id uuid.UUID, status string) (bool, error) {
	txn, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	if txn.Status != models.TransactionStatusPending {
		return false, nil
	}
	txn.Status = status
	return true, nil
}

func (f *fakePaymentRepo) get(transactionID string) *models.PaymentTransaction {
	id, ok := f.byTxnID[transactionID]
	if !ok {
		return nil
	}
	return f.byID[id]
}

type fakeCartRepo struct {
	carts         map[uuid.UUID]*models.Cart
	soldBatches   int
	findOrCreates int
}

func newFakeCartRepo(carts ...*models.Cart) *fakeCartRepo {
	repo := &fakeCartRepo{carts: make(map[uuid.UUID]*models.Cart)}
	for _, cart := range carts {
		repo.carts[cart.ID] = cart
	}
	return repo
}

func (f *fakeCartRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Cart, error) {
	cart, ok := f.carts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cart, nil
}

func (f *fakeCartRepo) FindOrCreateByUserID(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	f.findOrCreates++
	for _, cart := range f.carts {
		if cart.UserID == userID {
			return cart, nil
		}
	}
	cart := &models.Cart{ID: uuid.New(), UserID: userID}
	f.carts[cart.ID] = cart
	return cart, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, item *models.CartItem) error {
	cart, ok := f.carts[item.CartID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cart.Items = append(cart.Items, *item)
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, cartID, itemID uuid.UUID) error {
	cart, ok := f.carts[cartID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i, item := range cart.Items {
		if item.ID == itemID && item.Status == models.CartItemStatusInCart {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCartRepo) MarkItemsSold(_ context.Context, cartID uuid.UUID) (int64, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return 0, nil
	}
	var changed int64
	for i := range cart.Items {
		if cart.Items[i].Status == models.CartItemStatusInCart {
			cart.Items[i].Status = models.CartItemStatusSold
			changed++
		}
	}
	if changed > 0 {
		f.soldBatches++
	}
	return changed, nil
}

type fakeEnrollmentRepo struct {
	rows map[string]models.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{rows: make(map[string]models.Enrollment)}
}

func enrollmentKey(userID, courseID uuid.UUID) string {
	return userID.String() + "|" + courseID.String()
}

func (f *fakeEnrollmentRepo) FindOrCreate(_ context.Context, enrollment *models.Enrollment) (bool, error) {
	key := enrollmentKey(enrollment.UserID, enrollment.CourseID)
	if existing, ok := f.rows[key]; ok {
		*enrollment = existing
		return false, nil
	}
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	f.rows[key] = *enrollment
	return true, nil
}

func (f *fakeEnrollmentRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type capturingPublisher struct {
	events []models.PaymentEvent
	err    error
}

func (p *capturingPublisher) Publish(event models.PaymentEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type fakePayPalGateway struct {
	order      *services.PayPalOrder
	orderErr   error
	captured   bool
	captureErr error
}

func (f *fakePayPalGateway) CreateOrder(_ context.Context, _ int64) (*services.PayPalOrder, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.order, nil
}

func (f *fakePayPalGateway) CaptureOrder(_ context.Context, _ string) (bool, error) {
	if f.captureErr != nil {
		return false, f.captureErr
	}
	return f.captured, nil
}

func (f *fakePayPalGateway) VerifyWebhook(_ []byte, _ http.Header) (*services.PayPalWebhookEvent, error) {
	return nil, errors.New("not used")
}

type fakeStripeGateway struct {
	checkout *services.StripeCheckout
	err      error
}

func (f *fakeStripeGateway) CreateCheckoutSession(_ context.Context, _ *models.Cart) (*services.StripeCheckout, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.checkout, nil
}

func (f *fakeStripeGateway) ParseWebhook(_ *http.Request) (stripe.Event, error) {
	return stripe.Event{}, errors.New("not used")
}
