package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/middlewares"
	"github.com/vastra-store/vastra/app/services"
)

type CheckoutHandler struct {
	render   *render.Render
	checkout *services.CheckoutService
}

func NewCheckoutHandler(rnd *render.Render, checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{render: rnd, checkout: checkout}
}

// Checkout places a Pending order from the server cart and hands back the
// WhatsApp link the storefront opens for the shopper.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	var body struct {
		AddressID string `json:"addressId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.AddressID == "" {
		respondError(h.render, w, apperrors.Validation("Address ID is required"))
		return
	}

	order, whatsappURL, err := h.checkout.Checkout(r.Context(), userID, body.AddressID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	respondSuccess(h.render, w, http.StatusCreated, "Order placed", map[string]interface{}{
		"order":       order,
		"whatsappUrl": whatsappURL,
	})
}
