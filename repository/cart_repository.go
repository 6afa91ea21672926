package repository

import (
	"context"

	"course-marketplace/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	// FindOrCreateByUserID returns the user's cart, creating an empty one on
	// first use.
	FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, item *models.CartItem) error
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error
	// MarkItemsSold flips every in_cart item of the given cart to sold and
	// returns how many rows changed. Items already sold are untouched.
	MarkItemsSold(ctx context.Context, cartID uuid.UUID) (int64, error)
}

type gormCartRepo struct {
	db *gorm.DB
}

func NewGormCartRepo(db *gorm.DB) CartRepository {
	return &gormCartRepo{db: db}
}

func (r *gormCartRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).Preload("Items.Course").First(&cart, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *gormCartRepo) FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Preload("Items.Course").Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cart = models.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return &cart, nil
}

func (r *gormCartRepo) AddItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *gormCartRepo) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ? AND status = ?", itemID, cartID, models.CartItemStatusInCart).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormCartRepo) MarkItemsSold(ctx context.Context, cartID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND status = ?", cartID, models.CartItemStatusInCart).
		Update("status", models.CartItemStatusSold)
	return res.RowsAffected, res.Error
}
