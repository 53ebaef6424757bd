package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/services"
	"github.com/vastra-store/vastra/app/utils/logger"
)

// AdminAuthHandler issues the operator token. There is exactly one admin
// identity, configured through the environment; no admin record exists in
// the database.
type AdminAuthHandler struct {
	render        *render.Render
	tokens        *services.TokenService
	adminEmail    string
	adminPassword string
}

func NewAdminAuthHandler(rnd *render.Render, tokens *services.TokenService, adminEmail, adminPassword string) *AdminAuthHandler {
	return &AdminAuthHandler{
		render:        rnd,
		tokens:        tokens,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(h.render, w, apperrors.Validation("Invalid request body"))
		return
	}

	if body.Email != h.adminEmail || body.Password != h.adminPassword {
		respondError(h.render, w, apperrors.Validation("Invalid credentials"))
		return
	}

	token, err := h.tokens.Issue(h.adminEmail, services.RoleAdmin, services.AdminTokenTTL)
	if err != nil {
		logger.Get().Errorf("AdminLogin: failed to sign token: %v", err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "", map[string]interface{}{
		"token": token,
	})
}
