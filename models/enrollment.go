package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment grants a user access to a course after a successful payment.
// The (user, course) pair is unique so duplicate webhook deliveries cannot
// enroll twice.
type Enrollment struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"course_id"`
	Course     Course     `gorm:"foreignKey:CourseID" json:"course"`
	PaymentID  *uuid.UUID `gorm:"type:uuid;index" json:"payment_id"`
	EnrolledAt time.Time  `gorm:"autoCreateTime" json:"enrolled_at"`
}

// Migrate runs auto migration for all marketplace models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Course{},
		&Lesson{},
		&Cart{},
		&CartItem{},
		&PaymentTransaction{},
		&Enrollment{},
	)
}
