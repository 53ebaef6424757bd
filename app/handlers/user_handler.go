package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/middlewares"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/utils/logger"
)

// UserHandler serves profile, address and order reads for the authenticated
// user.
type UserHandler struct {
	render    *render.Render
	userRepo  repositories.UserRepositoryImpl
	orderRepo repositories.OrderRepositoryImpl
}

func NewUserHandler(rnd *render.Render, userRepo repositories.UserRepositoryImpl, orderRepo repositories.OrderRepositoryImpl) *UserHandler {
	return &UserHandler{render: rnd, userRepo: userRepo, orderRepo: orderRepo}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		logger.Get().Errorf("GetProfile: lookup failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	if user == nil {
		respondError(h.render, w, apperrors.NotFound("User not found"))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"user": user,
	})
}

// UpdateProfile mutates only name and mobile. Email and password never
// change through this path.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	var body struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(h.render, w, apperrors.Validation("Invalid request body"))
		return
	}

	user, err := h.userRepo.UpdateProfile(r.Context(), userID, body.Name, body.Mobile)
	if err != nil {
		logger.Get().Errorf("UpdateProfile: update failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "Profile updated", map[string]interface{}{
		"user": user,
	})
}

// AddAddress appends unconditionally: no limit, no subfield validation.
func (h *UserHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	var address models.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		respondError(h.render, w, apperrors.Validation("Invalid request body"))
		return
	}
	address.ID = ""

	addresses, err := h.userRepo.AddAddress(r.Context(), userID, &address)
	if err != nil {
		logger.Get().Errorf("AddAddress: create failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "Address added", map[string]interface{}{
		"addresses": addresses,
	})
}

func (h *UserHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())

	orders, err := h.orderRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		logger.Get().Errorf("GetOrders: lookup failed for %s: %v", userID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"orders": orders,
	})
}
