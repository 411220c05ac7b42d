package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/raghuwanshi313/EDP-APP/internal/config"
	"github.com/raghuwanshi313/EDP-APP/internal/domain"
	apperrors "github.com/raghuwanshi313/EDP-APP/pkg/errors"
)

// PageHandler handles page rendering HTTP requests
type PageHandler struct {
	sessionService domain.SessionService
	logger         domain.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(container *config.Container) *PageHandler {
	return &PageHandler{
		sessionService: container.SessionService,
		logger:         container.Logger,
	}
}

// RenderPage handles rendering one page as a PNG. The optional scale query
// parameter overrides the session's viewport scale.
func (h *PageHandler) RenderPage(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	pageNumber, err := pageFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	scale := 0.0
	if raw := r.URL.Query().Get("scale"); raw != "" {
		scale, err = strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 {
			writeError(w, apperrors.NewValidationError("scale must be a positive number"))
			return
		}
	}

	page, err := h.sessionService.RenderPage(r.Context(), session, pageNumber, scale)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(page.PNG)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.PNG)
}

// TextLayer handles serving the selectable text layer for one page
func (h *PageHandler) TextLayer(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	pageNumber, err := pageFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	html, err := h.sessionService.TextLayer(r.Context(), session, pageNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// pageFromRequest resolves the {page} path variable
func pageFromRequest(r *http.Request) (int, error) {
	raw := mux.Vars(r)["page"]
	pageNumber, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("page must be a number")
	}
	return pageNumber, nil
}
