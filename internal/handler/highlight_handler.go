package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/raghuwanshi313/EDP-APP/internal/config"
	"github.com/raghuwanshi313/EDP-APP/internal/domain"
	apperrors "github.com/raghuwanshi313/EDP-APP/pkg/errors"
)

// defaultHighlightColor is used when a capture request names no color.
const defaultHighlightColor = "#ffeb3b"

// HighlightHandler handles highlight-related HTTP requests.
type HighlightHandler struct {
	sessionService   domain.SessionService
	highlightService domain.HighlightService
	logger           domain.Logger
}

func NewHighlightHandler(container *config.Container) *HighlightHandler {
	return &HighlightHandler{
		sessionService:   container.SessionService,
		highlightService: container.HighlightService,
		logger:           container.Logger,
	}
}

type captureHighlightRequest struct {
	Text            string       `json:"text"`
	Bounds          *domain.Rect `json:"bounds"`
	ContainerOrigin domain.Point `json:"container_origin"`
	Color           string       `json:"color"`
}

// captureRejectedResponse is the 200 body for selections that did not pass
// the capture gates. Rejection is an expected outcome, not an error.
type captureRejectedResponse struct {
	Rejected bool   `json:"rejected"`
	Reason   string `json:"reason"`
}

// CaptureHighlight handles POST /sessions/{id}/highlights
func (h *HighlightHandler) CaptureHighlight(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	var req captureHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	colorHex := req.Color
	if strings.TrimSpace(colorHex) == "" {
		colorHex = defaultHighlightColor
	}
	color, err := domain.ParseColor(colorHex)
	if err != nil {
		writeError(w, apperrors.NewValidationError("invalid color", err.Error()))
		return
	}

	created, err := h.highlightService.Capture(session, domain.CaptureInput{
		Text:            req.Text,
		Bounds:          req.Bounds,
		ContainerOrigin: req.ContainerOrigin,
		Color:           color,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSelectionRejected) {
			writeJSON(w, http.StatusOK, captureRejectedResponse{
				Rejected: true,
				Reason:   strings.TrimPrefix(err.Error(), domain.ErrSelectionRejected.Error()+": "),
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListHighlights handles GET /sessions/{id}/highlights?page=...
func (h *HighlightHandler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	var pagePtr *int
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, apperrors.NewValidationError("page must be a number"))
			return
		}
		pagePtr = &page
	}

	highlights := h.highlightService.List(session, pagePtr)
	if highlights == nil {
		highlights = make([]*domain.Highlight, 0)
	}
	writeJSON(w, http.StatusOK, highlights)
}

// DeleteHighlight handles DELETE /sessions/{id}/highlights/{highlightId}
func (h *HighlightHandler) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	highlightID := mux.Vars(r)["highlightId"]
	if highlightID == "" {
		writeError(w, apperrors.NewValidationError("highlight id is required"))
		return
	}

	h.highlightService.Delete(session, highlightID)
	w.WriteHeader(http.StatusNoContent)
}

// NavigateToHighlight handles POST /sessions/{id}/highlights/{highlightId}/navigate
func (h *HighlightHandler) NavigateToHighlight(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, h.sessionService)
	if err != nil {
		writeError(w, err)
		return
	}

	highlightID := mux.Vars(r)["highlightId"]
	if highlightID == "" {
		writeError(w, apperrors.NewValidationError("highlight id is required"))
		return
	}

	target, err := h.sessionService.NavigateToHighlight(session, highlightID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, target)
}
