package services

import (
	"context"

	"course-marketplace/models"
	"course-marketplace/repository"

	"go.uber.org/zap"
)

// EnrollmentService materializes enrollments from confirmed transactions.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	carts       repository.CartRepository
	logger      *zap.Logger
}

func NewEnrollmentService(enrollments repository.EnrollmentRepository, carts repository.CartRepository, logger *zap.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		carts:       carts,
		logger:      logger,
	}
}

// Materialize creates one enrollment per course in the transaction's cart
// snapshot and returns how many were created. Existing (user, course)
// enrollments are left untouched, so re-running for a redelivered webhook is
// a no-op.
func (s *EnrollmentService) Materialize(ctx context.Context, txn *models.PaymentTransaction) (int, error) {
	cart, err := s.carts.FindByID(ctx, txn.CartID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, item := range cart.Items {
		enrollment := &models.Enrollment{
			UserID:    txn.UserID,
			CourseID:  item.CourseID,
			PaymentID: &txn.ID,
		}
		inserted, err := s.enrollments.FindOrCreate(ctx, enrollment)
		if err != nil {
			return created, err
		}
		if inserted {
			created++
		}
	}

	s.logger.Info("enrollments materialized",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("user_id", txn.UserID.String()),
		zap.Int("created", created),
	)
	return created, nil
}
