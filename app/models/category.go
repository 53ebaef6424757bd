package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string        `gorm:"size:100;not null;uniqueIndex" json:"name"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subCategories"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SubCategory name uniqueness is case-insensitive among siblings and is
// enforced in the handler, not by an index.
type SubCategory struct {
	ID          string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CategoryID  string     `gorm:"size:36;index;not null" json:"-"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	SizeOptions StringList `gorm:"type:json" json:"sizeOptions"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
