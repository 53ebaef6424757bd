package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

// In-memory repository fakes shared by the handler tests.

var testRender = render.New()

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type fakeCategoryRepo struct {
	seq        int
	categories map[string]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*models.Category{}}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	f.seq++
	if category.ID == "" {
		category.ID = fmt.Sprintf("cat-%d", f.seq)
	}
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*models.Category, error) {
	stored, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *stored
	copied.SubCategories = append([]models.SubCategory{}, stored.SubCategories...)
	return &copied, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	for _, stored := range f.categories {
		if stored.Name == name {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, stored := range f.categories {
		out = append(out, *stored)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) AddSubCategory(ctx context.Context, categoryID string, sub *models.SubCategory) error {
	f.seq++
	if sub.ID == "" {
		sub.ID = fmt.Sprintf("sub-%d", f.seq)
	}
	sub.CategoryID = categoryID
	f.categories[categoryID].SubCategories = append(f.categories[categoryID].SubCategories, *sub)
	return nil
}

func (f *fakeCategoryRepo) UpdateSubCategorySizes(ctx context.Context, subCategoryID string, sizes models.StringList) error {
	for _, stored := range f.categories {
		for i := range stored.SubCategories {
			if stored.SubCategories[i].ID == subCategoryID {
				stored.SubCategories[i].SizeOptions = sizes
				return nil
			}
		}
	}
	return nil
}

type fakeProductRepo struct {
	seq      int
	products map[string]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*models.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	f.seq++
	if product.ID == "" {
		product.ID = fmt.Sprintf("prod-%d", f.seq)
	}
	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	stored, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, stored := range f.products {
		out = append(out, *stored)
	}
	return out, nil
}

func (f *fakeProductRepo) Filter(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	var out []models.Product
	for _, stored := range f.products {
		if filter.Category != "" && stored.Category != filter.Category {
			continue
		}
		if filter.SubCategory != "" && stored.SubCategory != filter.SubCategory {
			continue
		}
		if filter.BestSeller && !stored.BestSeller {
			continue
		}
		out = append(out, *stored)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type fakeUserRepo struct {
	seq   int
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.Email = strings.ToLower(user.Email)

	f.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", f.seq)
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	stored, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *stored
	copied.Addresses = append([]models.Address{}, stored.Addresses...)
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, stored := range f.users {
		if stored.Email == strings.ToLower(email) {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, userID, name, mobile string) (*models.User, error) {
	stored, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	stored.Name = name
	stored.Mobile = mobile
	copied := *stored
	return &copied, nil
}

func (f *fakeUserRepo) AddAddress(ctx context.Context, userID string, address *models.Address) ([]models.Address, error) {
	f.seq++
	if address.ID == "" {
		address.ID = fmt.Sprintf("addr-%d", f.seq)
	}
	address.UserID = userID
	stored := f.users[userID]
	stored.Addresses = append(stored.Addresses, *address)
	return append([]models.Address{}, stored.Addresses...), nil
}

type fakeCartRepo struct {
	items map[string][]models.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string][]models.CartItem{}}
}

func (f *fakeCartRepo) GetItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	return append([]models.CartItem{}, f.items[userID]...), nil
}

func (f *fakeCartRepo) AddItem(ctx context.Context, userID, productID, size string, quantity int) error {
	entries := f.items[userID]
	for i := range entries {
		if entries[i].ProductID == productID && entries[i].Size == size {
			entries[i].Quantity += quantity
			return nil
		}
	}
	f.items[userID] = append(entries, models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
	})
	return nil
}

func (f *fakeCartRepo) UpdateItem(ctx context.Context, userID, productID, size string, quantity int) (bool, error) {
	entries := f.items[userID]
	for i := range entries {
		if entries[i].ProductID == productID && entries[i].Size == size {
			entries[i].Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCartRepo) RemoveProduct(ctx context.Context, userID, productID, size string) error {
	var kept []models.CartItem
	for _, entry := range f.items[userID] {
		if entry.ProductID == productID && (size == "" || entry.Size == size) {
			continue
		}
		kept = append(kept, entry)
	}
	f.items[userID] = kept
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, userID string) error {
	delete(f.items, userID)
	return nil
}
