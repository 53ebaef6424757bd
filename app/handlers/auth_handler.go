package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/vastra-store/vastra/app/apperrors"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/repositories"
	"github.com/vastra-store/vastra/app/services"
	"github.com/vastra-store/vastra/app/utils/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render    *render.Render
	userRepo  repositories.UserRepositoryImpl
	tokens    *services.TokenService
	validator *validator.Validate
}

func NewAuthHandler(rnd *render.Render, userRepo repositories.UserRepositoryImpl, tokens *services.TokenService, v *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:    rnd,
		userRepo:  userRepo,
		tokens:    tokens,
		validator: v,
	}
}

type RegisterForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Mobile   string `json:"mobile"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form RegisterForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(h.render, w, apperrors.Validation("Invalid request body"))
		return
	}

	if form.Name == "" || form.Email == "" || form.Password == "" {
		respondError(h.render, w, apperrors.Validation("All fields are required"))
		return
	}
	if err := h.validator.Struct(form); err != nil {
		respondError(h.render, w, apperrors.Validation("Email must be a valid email address"))
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		logger.Get().Errorf("Register: lookup failed for %s: %v", form.Email, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	if existing != nil {
		respondError(h.render, w, apperrors.Conflict("Email already exists"))
		return
	}

	user := &models.User{
		Name:     strings.TrimSpace(form.Name),
		Email:    form.Email,
		Password: form.Password,
		Mobile:   form.Mobile,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		logger.Get().Errorf("Register: create failed for %s: %v", form.Email, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	token, err := h.tokens.Issue(user.ID, services.RoleUser, services.UserTokenTTL)
	if err != nil {
		logger.Get().Errorf("Register: failed to sign token for %s: %v", user.ID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusCreated, "User registered successfully", map[string]interface{}{
		"token": token,
		"user":  publicUser(user),
	})
}

// Login returns the same generic message for an unknown email and a wrong
// password, so responses cannot be used to enumerate accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" || body.Password == "" {
		respondError(h.render, w, apperrors.Validation("Email and password required"))
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), body.Email)
	if err != nil {
		logger.Get().Errorf("Login: lookup failed for %s: %v", body.Email, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}
	if user == nil {
		respondError(h.render, w, apperrors.Auth("Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		respondError(h.render, w, apperrors.Auth("Invalid email or password"))
		return
	}

	token, err := h.tokens.Issue(user.ID, services.RoleUser, services.UserTokenTTL)
	if err != nil {
		logger.Get().Errorf("Login: failed to sign token for %s: %v", user.ID, err)
		respondError(h.render, w, apperrors.Server("Internal Server Error", err))
		return
	}

	respondSuccess(h.render, w, http.StatusOK, "Login successful", map[string]interface{}{
		"token": token,
		"user":  publicUser(user),
	})
}

func publicUser(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"mobile": user.Mobile,
	}
}
