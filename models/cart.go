package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CartItemStatusInCart = "in_cart"
	CartItemStatusSold   = "sold"
)

// Cart is the per-user set of courses being purchased. Its in_cart items are
// the snapshot a checkout freezes; items flip to sold when the owning
// transaction succeeds.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CartID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_course" json:"cart_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_course" json:"course_id"`
	Course   Course    `gorm:"foreignKey:CourseID" json:"course"`
	Status   string    `gorm:"type:varchar(15);not null;default:'in_cart'" json:"status"`
}

// TotalInCart sums the price of items still in the cart.
func (c *Cart) TotalInCart() int64 {
	var total int64
	for _, item := range c.Items {
		if item.Status == CartItemStatusInCart {
			total += item.Course.Price
		}
	}
	return total
}

// InCartItems returns the purchasable subset of the cart.
func (c *Cart) InCartItems() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Status == CartItemStatusInCart {
			items = append(items, item)
		}
	}
	return items
}
