package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nvales/watchdex/internal/api/middleware"
	"github.com/nvales/watchdex/internal/api/response"
	"github.com/nvales/watchdex/internal/domain"
	"github.com/nvales/watchdex/internal/service"
)

var validate = validator.New()

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	user, tokens, err := h.authService.Register(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, map[string]any{
		"user":         user.Public(),
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
	})
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	user, tokens, err := h.authService.Login(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"user":         user.Public(),
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
	})
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if input.RefreshToken == "" {
		response.BadRequest(w, "Refresh token required")
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), input.RefreshToken)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, tokens)
}

// Profile returns the authenticated user's profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.Principal(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found")
		return
	}

	response.OK(w, map[string]any{"user": user})
}

// UpdateProfile applies a whitelist-guarded partial update to the profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.Principal(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found")
		return
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	updated, err := h.authService.UpdateProfile(r.Context(), user, payload)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{"user": updated})
}
