package repositories

import (
	"context"

	"github.com/vastra-store/vastra/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id string) error
	AddSubCategory(ctx context.Context, categoryID string, sub *models.SubCategory) error
	UpdateSubCategorySizes(ctx context.Context, subCategoryID string, sizes models.StringList) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("SubCategories").First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FindByName matches the name exactly. Callers trim before lookup.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Preload("SubCategories").Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes the category and its subcategories. Products that reference
// the category by name are left alone.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.SubCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
}

func (r *categoryRepository) AddSubCategory(ctx context.Context, categoryID string, sub *models.SubCategory) error {
	sub.CategoryID = categoryID
	return r.db.WithContext(ctx).Create(sub).Error
}

// UpdateSubCategorySizes replaces the size list wholesale.
func (r *categoryRepository) UpdateSubCategorySizes(ctx context.Context, subCategoryID string, sizes models.StringList) error {
	return r.db.WithContext(ctx).
		Model(&models.SubCategory{}).
		Where("id = ?", subCategoryID).
		Update("size_options", sizes).Error
}
