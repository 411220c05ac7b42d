package handler

import (
	"encoding/json"
	"net/http"

	"github.com/raghuwanshi313/EDP-APP/internal/config"
	"github.com/raghuwanshi313/EDP-APP/internal/domain"
	apperrors "github.com/raghuwanshi313/EDP-APP/pkg/errors"
)

// ViewportHandler handles viewport control HTTP requests
type ViewportHandler struct {
	sessionService domain.SessionService
	logger         domain.Logger
}

// NewViewportHandler creates a new viewport handler
func NewViewportHandler(container *config.Container) *ViewportHandler {
	return &ViewportHandler{
		sessionService: container.SessionService,
		logger:         container.Logger,
	}
}

type goToPageRequest struct {
	Page int `json:"page"`
}

// GoToPage handles moving the viewport to a page. Out-of-range targets clamp
// to the nearest valid page rather than failing.
func (h *ViewportHandler) GoToPage(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	var req goToPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	writeJSON(w, http.StatusOK, h.sessionService.GoToPage(session, req.Page))
}

// ZoomIn handles stepping the zoom up
func (h *ViewportHandler) ZoomIn(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionService.ZoomIn(session))
}

// ZoomOut handles stepping the zoom down
func (h *ViewportHandler) ZoomOut(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionService.ZoomOut(session))
}

type setModeRequest struct {
	Mode string `json:"mode"`
}

// SetMode handles switching between idle and selecting
func (h *ViewportHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	var req setModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	snapshot, err := h.sessionService.SetMode(session, domain.ViewportMode(req.Mode))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type registerAnchorRequest struct {
	Page   int    `json:"page"`
	Handle string `json:"handle"`
}

// RegisterAnchor handles binding a client-side scroll handle to a page
func (h *ViewportHandler) RegisterAnchor(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	var req registerAnchorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	if err := h.sessionService.RegisterAnchor(session, req.Page, req.Handle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"page":   req.Page,
		"handle": req.Handle,
	})
}
