package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Order status is a plain enumerated field. There is no transition guard;
// any value may replace any other.
type Order struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID      string          `gorm:"size:36;index;not null" json:"userId"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(16,2)" json:"totalAmount"`
	Status      string          `gorm:"size:20;default:'Pending'" json:"status"`

	// Address snapshot taken at checkout.
	Street  string `gorm:"size:255" json:"street"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Zip     string `gorm:"size:20" json:"zip"`
	Country string `gorm:"size:100" json:"country"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID   string    `gorm:"size:36;index;not null" json:"-"`
	ProductID string    `gorm:"size:36;not null" json:"productId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Size      string    `gorm:"size:20" json:"size"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
