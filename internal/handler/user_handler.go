package handlers

import (
	"net/http"

	"adboard/internal/dto"
	"adboard/internal/middleware"
	"adboard/internal/service"
)

type UpdateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=16"`
	LastName  string `json:"lastName" validate:"required,min=2,max=16"`
	Phone     string `json:"phone" validate:"required,phone"`
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetProfile(r.Context(), middleware.PrincipalFrom(r.Context()))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromUser(*user), http.StatusOK)
}

func (h *Handlers) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), middleware.PrincipalFrom(r.Context()), service.UpdateProfileRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.UpdateUserFromUser(*user), http.StatusOK)
}

func (h *Handlers) UpdateUserImage(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	upload, err := readUpload(r, "image")
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	user, err := h.UserService.UpdateAvatar(r.Context(), middleware.PrincipalFrom(r.Context()), upload)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromUser(*user), http.StatusOK)
}

func (h *Handlers) GetUserImage(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	image, err := h.UserService.GetAvatar(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeImage(w, image)
}
