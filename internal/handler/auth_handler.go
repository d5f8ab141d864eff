package handlers

import (
	"net/http"

	"adboard/internal/dto"
	"adboard/internal/middleware"
	"adboard/internal/models"
	"adboard/internal/service"
)

type RegisterRequest struct {
	Username  string      `json:"username" validate:"required,email,min=4,max=32"`
	Password  string      `json:"password" validate:"required,min=8,max=16"`
	FirstName string      `json:"firstName" validate:"required,min=2,max=16"`
	LastName  string      `json:"lastName" validate:"required,min=2,max=16"`
	Phone     string      `json:"phone" validate:"required,phone"`
	Role      models.Role `json:"role" validate:"omitempty,oneof=USER"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

type SetPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=16"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromUser(*user), http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, LoginResponse{
		Token:     token.Token,
		TokenType: "Bearer",
		ExpiresIn: int64(token.ExpiresIn.Seconds()),
	}, http.StatusOK)
}

func (h *Handlers) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req SetPasswordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	principal := middleware.PrincipalFrom(r.Context())
	if err := h.AuthService.ChangePassword(r.Context(), principal, req.CurrentPassword, req.NewPassword); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, map[string]string{"message": "password updated"}, http.StatusOK)
}
