package handlers

import (
	"net/http"

	"github.com/photoid/passport-crop/internal/config"
)

// FormatsHandler lists the photo formats known to the service.
type FormatsHandler struct {
	config *config.Config
}

// NewFormatsHandler creates a new formats handler.
func NewFormatsHandler(cfg *config.Config) *FormatsHandler {
	return &FormatsHandler{config: cfg}
}

// List handles GET /api/formats.
func (h *FormatsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"formats": h.config.ProfileNames(),
	})
}
