package repositories

import (
	"context"
	"strings"

	"github.com/vastra-store/vastra/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepositoryImpl interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, name, mobile string) (*models.User, error)
	AddAddress(ctx context.Context, userID string, address *models.Address) ([]models.Address, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryImpl {
	return &userRepository{db}
}

// Create hashes the password before persisting. The plaintext never reaches
// the database.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	hashPass, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashPass)
	user.Email = strings.ToLower(user.Email)

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Addresses").First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile touches only the mutable subset. Email and password do not
// change through this path.
func (r *userRepository) UpdateProfile(ctx context.Context, userID, name, mobile string) (*models.User, error) {
	updates := map[string]interface{}{
		"name":   name,
		"mobile": mobile,
	}
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID)
}

func (r *userRepository) AddAddress(ctx context.Context, userID string, address *models.Address) ([]models.Address, error) {
	address.UserID = userID
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
