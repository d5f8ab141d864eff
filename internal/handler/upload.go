package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"adboard/internal/models"
	"adboard/internal/service"
)

// multipart overhead allowed on top of MaxUploadSize
const formOverhead = 1 << 20

func (h *Handlers) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+formOverhead)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, fmt.Sprintf("file is too large (max %d MB)", h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "invalid multipart form", http.StatusBadRequest)
		}
		return false
	}

	return true
}

func readUpload(r *http.Request, field string) (service.Upload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return service.Upload{}, fmt.Errorf("%w: missing %q part", models.ErrValidation, field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return service.Upload{}, fmt.Errorf("%w: failed to read %q part", models.ErrValidation, field)
	}

	return service.Upload{Data: data, Filename: header.Filename}, nil
}

// decodePart reads a JSON part sent either as a plain form field or as a
// file part with its own content type.
func decodePart(r *http.Request, field string, dst interface{}) error {
	if value := r.FormValue(field); value != "" {
		if err := json.Unmarshal([]byte(value), dst); err != nil {
			return fmt.Errorf("%w: malformed %q part", models.ErrValidation, field)
		}
		return nil
	}

	file, _, err := r.FormFile(field)
	if err != nil {
		return fmt.Errorf("%w: missing %q part", models.ErrValidation, field)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed %q part", models.ErrValidation, field)
	}
	return nil
}

func writeImage(w http.ResponseWriter, image *service.ImageData) {
	w.Header().Set("Content-Type", image.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(image.Data)
}
