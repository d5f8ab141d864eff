package handlers

import (
	"net/http"

	"adboard/internal/dto"
	"adboard/internal/middleware"
	"adboard/internal/service"
)

type AdRequest struct {
	Title       string `json:"title" validate:"required,min=4,max=32"`
	Description string `json:"description" validate:"required,min=8,max=64"`
	Price       int    `json:"price" validate:"min=0,max=10000000"`
}

type AdImageResponse struct {
	Image string `json:"image"`
}

func (h *Handlers) GetAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.AdService.ListAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromAds(ads), http.StatusOK)
}

func (h *Handlers) GetMyAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.AdService.ListMine(r.Context(), middleware.PrincipalFrom(r.Context()))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromAds(ads), http.StatusOK)
}

func (h *Handlers) GetAd(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	ad, err := h.AdService.GetDetail(r.Context(), adID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromAdDetails(*ad), http.StatusOK)
}

// CreateAd takes a multipart form with a JSON "properties" part and an
// "image" part.
func (h *Handlers) CreateAd(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	var req AdRequest
	if err := decodePart(r, "properties", &req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if !h.validate(w, &req) {
		return
	}

	upload, err := readUpload(r, "image")
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	ad, err := h.AdService.Create(r.Context(), middleware.PrincipalFrom(r.Context()), service.CreateAdRequest{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       upload,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromAd(*ad), http.StatusCreated)
}

func (h *Handlers) UpdateAd(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	var req AdRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ad, err := h.AdService.Update(r.Context(), middleware.PrincipalFrom(r.Context()), adID, service.UpdateAdRequest{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, dto.FromAd(*ad), http.StatusOK)
}

func (h *Handlers) UpdateAdImage(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	if !h.parseMultipart(w, r) {
		return
	}

	upload, err := readUpload(r, "image")
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	ad, err := h.AdService.UpdateImage(r.Context(), middleware.PrincipalFrom(r.Context()), adID, upload)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, AdImageResponse{Image: dto.AdImageURL(ad.ID)}, http.StatusOK)
}

func (h *Handlers) DeleteAd(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	if err := h.AdService.Delete(r.Context(), middleware.PrincipalFrom(r.Context()), adID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, map[string]string{"message": "ad deleted"}, http.StatusOK)
}

func (h *Handlers) GetAdImage(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "invalid ad id", http.StatusBadRequest)
		return
	}

	image, err := h.AdService.GetImage(r.Context(), adID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeImage(w, image)
}
