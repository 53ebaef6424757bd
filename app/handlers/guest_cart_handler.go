package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/utils/cartstore"
	"github.com/vastra-store/vastra/app/utils/logger"
)

// GuestCartHandler holds the storefront cart for shoppers who are not
// logged in. The cart lives in the cookie session; totals use whatever the
// product table says right now.
type GuestCartHandler struct {
	render      *render.Render
	backend     *cartstore.SessionBackend
	productRepo repositories.ProductRepositoryImpl
}

func NewGuestCartHandler(rnd *render.Render, backend *cartstore.SessionBackend, productRepo repositories.ProductRepositoryImpl) *GuestCartHandler {
	return &GuestCartHandler{render: rnd, backend: backend, productRepo: productRepo}
}

func (h *GuestCartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart := h.backend.Load(r)
	h.respondCart(w, r, cart)
}

func (h *GuestCartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		respondError(h.render, w, apperrors.Validation("Product ID is required"))
		return
	}

	cart := h.backend.Load(r)
	if err := cart.AddItem(body.ProductID, body.Size); err != nil {
		if errors.Is(err, cartstore.ErrSizeRequired) {
			respondError(h.render, w, apperrors.Validation("Please select a size"))
			return
		}
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	if err := h.backend.Save(w, r, cart); err != nil {
		logger.Get().Errorf("GuestCartAdd: session save failed: %v", err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	h.respondCart(w, r, cart)
}

// Update applies the client's zero-deletes policy: quantity zero prunes the
// size entry and, when it was the last one, the whole product entry.
func (h *GuestCartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Quantity  *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
		body.ProductID == "" || body.Size == "" || body.Quantity == nil || *body.Quantity < 0 {
		respondError(h.render, w, apperrors.Validation("Product ID, size and quantity are required"))
		return
	}

	cart := h.backend.Load(r)
	cart.SetQuantity(body.ProductID, body.Size, *body.Quantity)

	if err := h.backend.Save(w, r, cart); err != nil {
		logger.Get().Errorf("GuestCartUpdate: session save failed: %v", err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	h.respondCart(w, r, cart)
}

func (h *GuestCartHandler) respondCart(w http.ResponseWriter, r *http.Request, cart *cartstore.Store) {
	prices := map[string]decimal.Decimal{}
	for _, productID := range cart.ProductIDs() {
		product, err := h.productRepo.FindByID(r.Context(), productID)
		if err != nil {
			logger.Get().Warnf("GuestCart: price lookup failed for %s: %v", productID, err)
			continue
		}
		if product != nil {
			prices[productID] = product.Price
		}
	}

	amount := cart.Amount(func(productID string) (decimal.Decimal, bool) {
		price, ok := prices[productID]
		return price, ok
	})

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"cart":   cart.Items(),
		"count":  cart.Count(),
		"amount": amount,
	})
}
