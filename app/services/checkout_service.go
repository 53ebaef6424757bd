package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/utils/format"
	"github.com/vastra-store/vastra/app/utils/logger"
)

// CheckoutService turns a user's server cart into a Pending order and builds
// the WhatsApp link the storefront hands to the shopper. No payment
// processing happens here or anywhere else.
type CheckoutService struct {
	cartRepo    repositories.CartRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	orderRepo   repositories.OrderRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
	storePhone  string
}

func NewCheckoutService(
	cartRepo repositories.CartRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	storePhone string,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		storePhone:  storePhone,
	}
}

// Checkout computes the total from current prices, snapshots the chosen
// address, clears the cart and returns the order plus the wa.me link.
// Cart entries whose product no longer exists are skipped, matching how the
// storefront totals its local mirror.
func (s *CheckoutService) Checkout(ctx context.Context, userID, addressID string) (*models.Order, string, error) {
	items, err := s.cartRepo.GetItems(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return nil, "", apperrors.Validation("Cart is empty")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperrors.NotFound("User not found")
	}

	var address *models.Address
	for i := range user.Addresses {
		if user.Addresses[i].ID == addressID {
			address = &user.Addresses[i]
			break
		}
	}
	if address == nil {
		return nil, "", apperrors.NotFound("Address not found")
	}

	total := decimal.Zero
	var orderItems []models.OrderItem
	var lines []string

	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, "", err
		}
		if product == nil {
			logger.Get().Warnf("Checkout: skipping cart item for missing product %s", item.ProductID)
			continue
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
		lines = append(lines, fmt.Sprintf("%s (%s) x%d - %s", product.Name, item.Size, item.Quantity, format.INR(subtotal)))
	}
	if len(orderItems) == 0 {
		return nil, "", apperrors.Validation("Cart is empty")
	}

	order := &models.Order{
		UserID:      userID,
		Items:       orderItems,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		Street:      address.Street,
		City:        address.City,
		State:       address.State,
		Zip:         address.Zip,
		Country:     address.Country,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, "", err
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		logger.Get().Warnf("Checkout: failed to clear cart for user %s: %v", userID, err)
	}

	return order, s.whatsAppLink(order, user, lines), nil
}

func (s *CheckoutService) whatsAppLink(order *models.Order, user *models.User, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s from %s\n", order.ID, user.Name)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %s\n", format.INR(order.TotalAmount))
	fmt.Fprintf(&b, "Deliver to: %s, %s, %s %s, %s",
		order.Street, order.City, order.State, order.Zip, order.Country)

	return fmt.Sprintf("https://wa.me/%s?text=%s", s.storePhone, url.QueryEscape(b.String()))
}
