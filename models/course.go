package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(100);not null" json:"name"`
}

type Course struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(200);not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	InstructorID *uuid.UUID `gorm:"type:uuid;index" json:"instructor_id"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	// Price in the smallest currency unit (cents).
	Price     int64     `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;index;not null" json:"course_id"`
	Title    string    `gorm:"type:varchar(200);not null" json:"title"`
	Content  string    `gorm:"type:text" json:"content"`
	Order    int       `gorm:"not null" json:"order"`
}
