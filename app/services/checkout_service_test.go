package services

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
)

type fakeCartRepo struct {
	items   map[string][]models.CartItem
	cleared []string
}

func (f *fakeCartRepo) GetItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	return f.items[userID], nil
}

func (f *fakeCartRepo) AddItem(ctx context.Context, userID, productID, size string, quantity int) error {
	return nil
}

func (f *fakeCartRepo) UpdateItem(ctx context.Context, userID, productID, size string, quantity int) (bool, error) {
	return false, nil
}

func (f *fakeCartRepo) RemoveProduct(ctx context.Context, userID, productID, size string) error {
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, userID string) error {
	f.cleared = append(f.cleared, userID)
	delete(f.items, userID)
	return nil
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Filter(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type fakeOrderRepo struct {
	created []*models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	order.ID = "order-1"
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, userID, name, mobile string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepo) AddAddress(ctx context.Context, userID string, address *models.Address) ([]models.Address, error) {
	return nil, nil
}

func newCheckoutFixture() (*CheckoutService, *fakeCartRepo, *fakeOrderRepo) {
	cartRepo := &fakeCartRepo{items: map[string][]models.CartItem{
		"u1": {
			{ProductID: "p1", Size: "M", Quantity: 2},
			{ProductID: "p2", Size: "L", Quantity: 1},
		},
	}}
	productRepo := &fakeProductRepo{products: map[string]*models.Product{
		"p1": {ID: "p1", Name: "Linen Shirt", Price: decimal.NewFromInt(500)},
		"p2": {ID: "p2", Name: "Denim Jacket", Price: decimal.NewFromInt(1500)},
	}}
	orderRepo := &fakeOrderRepo{}
	userRepo := &fakeUserRepo{users: map[string]*models.User{
		"u1": {
			ID:   "u1",
			Name: "Asha",
			Addresses: []models.Address{
				{ID: "a1", Street: "12 MG Road", City: "Pune", State: "MH", Zip: "411001", Country: "India"},
			},
		},
	}}

	return NewCheckoutService(cartRepo, productRepo, orderRepo, userRepo, "919900112233"), cartRepo, orderRepo
}

func TestCheckoutPlacesPendingOrderAndClearsCart(t *testing.T) {
	svc, cartRepo, orderRepo := newCheckoutFixture()

	order, link, err := svc.Checkout(context.Background(), "u1", "a1")
	require.NoError(t, err)

	require.Len(t, orderRepo.created, 1)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(2500)), "got %s", order.TotalAmount)
	assert.Len(t, order.Items, 2)

	// Address snapshot lives on the order itself.
	assert.Equal(t, "12 MG Road", order.Street)
	assert.Equal(t, "Pune", order.City)

	assert.Equal(t, []string{"u1"}, cartRepo.cleared)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919900112233?text="), link)
	text, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/919900112233?text="))
	require.NoError(t, err)
	assert.Contains(t, text, "Linen Shirt (M) x2")
	assert.Contains(t, text, "Total: ₹2,500")
	assert.Contains(t, text, "Deliver to: 12 MG Road, Pune, MH 411001, India")
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newCheckoutFixture()

	_, _, err := svc.Checkout(context.Background(), "no-cart-user", "a1")
	require.Error(t, err)
	assert.Equal(t, "Cart is empty", apperrors.Message(err))
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusCode(err))
}

func TestCheckoutUnknownAddress(t *testing.T) {
	svc, cartRepo, orderRepo := newCheckoutFixture()

	_, _, err := svc.Checkout(context.Background(), "u1", "nope")
	require.Error(t, err)
	assert.Equal(t, "Address not found", apperrors.Message(err))
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))

	assert.Empty(t, orderRepo.created)
	assert.Empty(t, cartRepo.cleared)
}

func TestCheckoutSkipsMissingProducts(t *testing.T) {
	svc, _, _ := newCheckoutFixture()
	cartRepo := &fakeCartRepo{items: map[string][]models.CartItem{
		"u1": {
			{ProductID: "gone", Size: "M", Quantity: 1},
			{ProductID: "p1", Size: "S", Quantity: 1},
		},
	}}
	svc.cartRepo = cartRepo

	order, _, err := svc.Checkout(context.Background(), "u1", "a1")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestCheckoutAllProductsGone(t *testing.T) {
	svc, _, orderRepo := newCheckoutFixture()
	svc.cartRepo = &fakeCartRepo{items: map[string][]models.CartItem{
		"u1": {{ProductID: "gone", Size: "M", Quantity: 1}},
	}}

	_, _, err := svc.Checkout(context.Background(), "u1", "a1")
	require.Error(t, err)
	assert.Equal(t, "Cart is empty", apperrors.Message(err))
	assert.Empty(t, orderRepo.created)
}
