package repository

import (
	"context"

	"course-marketplace/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCourses(ctx context.Context, categoryID *uuid.UUID) ([]models.Course, error)
	ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]models.Course, error)
	FindCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	ListLessons(ctx context.Context, courseID uuid.UUID) ([]models.Lesson, error)
}

type gormCourseRepo struct {
	db *gorm.DB
}

func NewGormCourseRepo(db *gorm.DB) CourseRepository {
	return &gormCourseRepo{db: db}
}

func (r *gormCourseRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *gormCourseRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *gormCourseRepo) ListCourses(ctx context.Context, categoryID *uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Find(&courses).Error
	return courses, err
}

func (r *gormCourseRepo) ListByInstructor(ctx context.Context, instructorID uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Where("instructor_id = ?", instructorID).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *gormCourseRepo) FindCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *gormCourseRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *gormCourseRepo) UpdateCourse(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *gormCourseRepo) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id).Error
}

func (r *gormCourseRepo) ListLessons(ctx context.Context, courseID uuid.UUID) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Order(`"order"`).Find(&lessons).Error
	return lessons, err
}
