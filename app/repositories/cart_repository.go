package repositories

import (
	"context"

	"github.com/vastra-store/vastra/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetItems(ctx context.Context, userID string) ([]models.CartItem, error)
	AddItem(ctx context.Context, userID, productID, size string, quantity int) error
	UpdateItem(ctx context.Context, userID, productID, size string, quantity int) (bool, error)
	RemoveProduct(ctx context.Context, userID, productID, size string) error
	Clear(ctx context.Context, userID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) GetItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem increments the existing (product, size) entry in place, so
// concurrent adds from two devices both land. A new entry is appended when
// none exists yet.
func (r *cartRepository) AddItem(ctx context.Context, userID, productID, size string, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
	}
	return r.db.WithContext(ctx).Create(&item).Error
}

// UpdateItem overwrites the quantity. Zero is stored as-is; only clients
// treat zero as deletion. Returns false when no matching entry exists.
func (r *cartRepository) UpdateItem(ctx context.Context, userID, productID, size string, quantity int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		UpdateColumn("quantity", quantity)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// UpdateColumn reports zero rows when the stored value already equals
		// the new one, so double-check existence before calling it missing.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
			Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
	return true, nil
}

// RemoveProduct with an empty size removes every size variant of the
// product. A non-empty size narrows the delete to one entry.
func (r *cartRepository) RemoveProduct(ctx context.Context, userID, productID, size string) error {
	query := r.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID)
	if size != "" {
		query = query.Where("size = ?", size)
	}
	return query.Delete(&models.CartItem{}).Error
}

func (r *cartRepository) Clear(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
