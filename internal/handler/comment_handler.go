package handlers

import (
	"net/http"

	"adboard/internal/dto"
	"adboard/internal/middleware"
)

// CommentRequest has no timestamp; createdAt is always set by the server.
type CommentRequest struct {
	Text string `json:"text" validate:"required,min=8,max=64"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListForAd(r.Context(), adID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromComments(comments), http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.CommentService.Create(r.Context(), middleware.PrincipalFrom(r.Context()), adID, req.Text)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromComment(*comment), http.StatusCreated)
}

func (h *Handlers) commentIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	adID, err := pathID(r, "adId")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return 0, 0, false
	}

	commentID, err := pathID(r, "commentId")
	if err != nil {
		WriteError(w, "invalid comment id", http.StatusBadRequest)
		return 0, 0, false
	}

	return adID, commentID, true
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	adID, commentID, ok := h.commentIDs(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.CommentService.Update(r.Context(), middleware.PrincipalFrom(r.Context()), adID, commentID, req.Text)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromComment(*comment), http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	adID, commentID, ok := h.commentIDs(w, r)
	if !ok {
		return
	}

	if err := h.CommentService.Delete(r.Context(), middleware.PrincipalFrom(r.Context()), adID, commentID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, map[string]string{"message": "comment deleted"}, http.StatusOK)
}
