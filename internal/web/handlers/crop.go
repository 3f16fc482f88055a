package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/photoid/passport-crop/internal/config"
	"github.com/photoid/passport-crop/internal/passport"
	"github.com/photoid/passport-crop/internal/pipeline"
)

// Processor runs the crop pipeline on one uploaded image. It is an
// interface so handler tests can substitute a stub for the real
// pipeline with its pigo detector.
type Processor interface {
	Process(ctx context.Context, data []byte, profile passport.Profile) (*pipeline.Result, error)
}

// CropHandler handles the photo crop endpoint.
type CropHandler struct {
	config    *config.Config
	processor Processor
}

// NewCropHandler creates a new crop handler.
func NewCropHandler(cfg *config.Config, processor Processor) *CropHandler {
	return &CropHandler{
		config:    cfg,
		processor: processor,
	}
}

// cropMeta is the metadata block of the base64 response envelope.
type cropMeta struct {
	OriginalSize   int     `json:"originalSize"`
	FaceConfidence float64 `json:"faceConfidence"`
	RequestID      string  `json:"requestId"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
}

// cropResponse is the JSON envelope returned for format=base64.
type cropResponse struct {
	Image string   `json:"image"`
	Meta  cropMeta `json:"meta"`
}

// Crop handles POST /api/crop. The upload arrives as a multipart form
// with a single "photo" file field. The format query parameter selects
// between raw JPEG bytes (default) and a JSON envelope with a base64
// data URI. The profile query parameter selects the photo format,
// defaulting to passport.
func (h *CropHandler) Crop(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.config.Web.MaxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing photo upload")
		return
	}
	defer file.Close()

	profile, ok := h.config.Profile(r.URL.Query().Get("profile"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown photo format")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	result, err := h.processor.Process(r.Context(), data, profile)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoFace) {
			respondError(w, http.StatusUnprocessableEntity, "No face detected in the uploaded image")
			return
		}
		log.Printf("crop request failed: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "failed to process image",
			"details": err.Error(),
		})
		return
	}

	if r.URL.Query().Get("format") == "base64" {
		respondJSON(w, http.StatusOK, cropResponse{
			Image: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(result.JPEG),
			Meta: cropMeta{
				OriginalSize:   result.OriginalSize,
				FaceConfidence: result.Confidence,
				RequestID:      result.RequestID,
				Width:          profile.OutputWidth,
				Height:         profile.OutputHeight,
			},
		})
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.JPEG)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", profile.Name+".jpg"))
	w.WriteHeader(http.StatusOK)
	w.Write(result.JPEG)
}
