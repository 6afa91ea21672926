package repository

import (
	"context"
	"errors"

	"course-marketplace/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	// FindOrCreate inserts the enrollment unless one already exists for the
	// same (user, course). It reports whether a row was created.
	FindOrCreate(ctx context.Context, enrollment *models.Enrollment) (bool, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Enrollment, error)
}

type gormEnrollmentRepo struct {
	db *gorm.DB
}

func NewGormEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &gormEnrollmentRepo{db: db}
}

func (r *gormEnrollmentRepo) FindOrCreate(ctx context.Context, enrollment *models.Enrollment) (bool, error) {
	var existing models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
		First(&existing).Error
	if err == nil {
		*enrollment = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := r.db.WithContext(ctx).Create(enrollment).Error; err != nil {
		// A concurrent materialization may have inserted first; the unique
		// (user, course) index decides the winner.
		findErr := r.db.WithContext(ctx).
			Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
			First(&existing).Error
		if findErr == nil {
			*enrollment = existing
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *gormEnrollmentRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}
