package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/middlewares"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/utils/logger"
)

// CartHandler serves the authenticated server-side cart. The storefront's
// local mirror syncs into these endpoints fire-and-forget.
type CartHandler struct {
	render   *render.Render
	cartRepo repositories.CartRepositoryImpl
}

func NewCartHandler(rnd *render.Render, cartRepo repositories.CartRepositoryImpl) *CartHandler {
	return &CartHandler{render: rnd, cartRepo: cartRepo}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	items, err := h.cartRepo.GetItems(r.Context(), userID)
	if err != nil {
		logger.Get().Errorf("CartGet: lookup failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"cart": items,
	})
}

// Add increments an existing (product, size) entry rather than duplicating
// it; a missing size is rejected before any write.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		respondError(h.render, w, apperrors.Validation("Product ID is required"))
		return
	}
	if body.Size == "" {
		respondError(h.render, w, apperrors.Validation("Please select a size"))
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	if err := h.cartRepo.AddItem(r.Context(), userID, body.ProductID, body.Size, body.Quantity); err != nil {
		logger.Get().Errorf("CartAdd: failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	h.respondCart(w, r, userID)
}

// Update overwrites the quantity as given. Zero is stored, not treated as
// deletion; only the client applies a zero-deletes policy.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" || body.Size == "" {
		respondError(h.render, w, apperrors.Validation("Product ID and size are required"))
		return
	}

	found, err := h.cartRepo.UpdateItem(r.Context(), userID, body.ProductID, body.Size, body.Quantity)
	if err != nil {
		logger.Get().Errorf("CartUpdate: failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	if !found {
		respondError(h.render, w, apperrors.NotFound("Item not found"))
		return
	}

	h.respondCart(w, r, userID)
}

// Remove drops every size variant of the product unless a ?size= query
// narrows it to one entry.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	productID := mux.Vars(r)["productId"]
	size := r.URL.Query().Get("size")

	if err := h.cartRepo.RemoveProduct(r.Context(), userID, productID, size); err != nil {
		logger.Get().Errorf("CartRemove: failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	items, err := h.cartRepo.GetItems(r.Context(), userID)
	if err != nil {
		logger.Get().Errorf("CartRemove: reload failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "Item removed", map[string]interface{}{
		"cart": items,
	})
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, userID string) {
	items, err := h.cartRepo.GetItems(r.Context(), userID)
	if err != nil {
		logger.Get().Errorf("CartHandler: reload failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	respondSuccess(h.render, w, http.StatusOK, "Cart updated", map[string]interface{}{
		"cart": items,
	})
}
