package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/raghuwanshi313/EDP-APP/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	router.Use(Recover(container.Logger))
	router.Use(RequestLogger(container.Logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"edp-app"}`))
	}).Methods("GET")

	// Initialize handlers
	sessionHandler := NewSessionHandler(container)
	pageHandler := NewPageHandler(container)
	viewportHandler := NewViewportHandler(container)
	highlightHandler := NewHighlightHandler(container)
	exportHandler := NewExportHandler(container)
	assetsHandler := NewAssetsHandler()

	// Static assets
	router.HandleFunc("/assets/overlay.css", assetsHandler.OverlayStylesheet).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.CreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}", sessionHandler.GetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", sessionHandler.DeleteSession).Methods("DELETE")

	// Document routes
	api.HandleFunc("/sessions/{id}/document", sessionHandler.UploadDocument).Methods("POST")
	api.HandleFunc("/sessions/{id}/document/original", sessionHandler.DownloadOriginal).Methods("GET")

	// Page routes
	api.HandleFunc("/sessions/{id}/pages/{page}", pageHandler.RenderPage).Methods("GET")
	api.HandleFunc("/sessions/{id}/pages/{page}/text", pageHandler.TextLayer).Methods("GET")

	// Viewport routes
	api.HandleFunc("/sessions/{id}/viewport/page", viewportHandler.GoToPage).Methods("PUT")
	api.HandleFunc("/sessions/{id}/viewport/zoom-in", viewportHandler.ZoomIn).Methods("POST")
	api.HandleFunc("/sessions/{id}/viewport/zoom-out", viewportHandler.ZoomOut).Methods("POST")
	api.HandleFunc("/sessions/{id}/viewport/mode", viewportHandler.SetMode).Methods("PUT")
	api.HandleFunc("/sessions/{id}/anchors", viewportHandler.RegisterAnchor).Methods("POST")

	// Highlight routes
	api.HandleFunc("/sessions/{id}/highlights", highlightHandler.CaptureHighlight).Methods("POST")
	api.HandleFunc("/sessions/{id}/highlights", highlightHandler.ListHighlights).Methods("GET")
	api.HandleFunc("/sessions/{id}/highlights/{highlightId}", highlightHandler.DeleteHighlight).Methods("DELETE")
	api.HandleFunc("/sessions/{id}/highlights/{highlightId}/navigate", highlightHandler.NavigateToHighlight).Methods("POST")

	// Export routes
	api.HandleFunc("/sessions/{id}/export", exportHandler.ExportDocument).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
