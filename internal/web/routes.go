package web

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/photoid/passport-crop/internal/web/handlers"
	"github.com/photoid/passport-crop/internal/web/middleware"
	"github.com/photoid/passport-crop/internal/web/static"
)

func (s *Server) setupRoutes(processor handlers.Processor) {
	cropHandler := handlers.NewCropHandler(s.config, processor)
	formatsHandler := handlers.NewFormatsHandler(s.config)

	// Health check (no auth, consulted by orchestration)
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Group(func(r chi.Router) {
		r.Use(middleware.CORS())

		r.Post("/api/crop", cropHandler.Crop)
		r.Get("/api/formats", formatsHandler.List)
	})

	// Serve the embedded upload page
	s.router.Get("/*", serveStatic)
}

// serveStatic serves the embedded single-page upload UI.
func serveStatic(w http.ResponseWriter, r *http.Request) {
	fs := static.GetFileSystem()
	path := r.URL.Path
	if path == "/" {
		path = "/index.html"
	}

	f, err := fs.Open(path)
	if err != nil {
		// Unknown paths fall back to the entry page.
		f, err = fs.Open("/index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
	}
	defer f.Close()

	w.Header().Set("Content-Type", static.ContentTypeFor(path))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, f)
}
