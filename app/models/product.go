package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product keeps Category and SubCategory as denormalized name strings, not
// foreign keys. Renaming a category does not touch existing products.
type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Category    string          `gorm:"size:100;index" json:"category"`
	SubCategory string          `gorm:"size:100;index" json:"subCategory"`
	Sizes       StringList      `gorm:"type:json" json:"sizes"`
	BestSeller  bool            `gorm:"default:false;index" json:"bestSeller"`
	Images      StringList      `gorm:"type:json" json:"image"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
