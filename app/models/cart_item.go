package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one (product, size) entry of a user's server-side cart. Adding
// the same pair again increments Quantity instead of inserting a duplicate.
type CartItem struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_cart_entry" json:"-"`
	ProductID string    `gorm:"size:36;not null;uniqueIndex:idx_cart_entry" json:"productId"`
	Size      string    `gorm:"size:20;not null;uniqueIndex:idx_cart_entry" json:"size"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
