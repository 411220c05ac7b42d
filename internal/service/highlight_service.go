package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// HighlightService implements the domain.HighlightService interface: it
// turns raw selection events into stored highlights and answers list and
// delete requests.
type HighlightService struct {
	logger domain.Logger
}

func NewHighlightService(logger domain.Logger) domain.HighlightService {
	return &HighlightService{logger: logger}
}

// Capture converts a selection event into a highlight, or rejects it.
// Browser selection state is best-effort input, so every malformed shape
// maps to ErrSelectionRejected rather than a hard failure: mode not
// selecting, blank text, missing bounds, or bounds under the minimum pixel
// size.
func (s *HighlightService) Capture(session *domain.Session, input domain.CaptureInput) (*domain.Highlight, error) {
	vp := session.Viewport()
	if vp.Mode != domain.ModeSelecting {
		return nil, reject("highlight mode is off")
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, reject("selection has no text")
	}
	if input.Bounds == nil {
		return nil, reject("selection has no range")
	}
	if input.Bounds.Width < domain.MinSelectionPx || input.Bounds.Height < domain.MinSelectionPx {
		return nil, reject("selection below minimum size")
	}

	h := &domain.Highlight{
		ID:         uuid.New().String(),
		Text:       input.Text,
		PageNumber: vp.CurrentPage,
		Color:      input.Color,
		Position:   domain.ToPageSpace(*input.Bounds, input.ContainerOrigin, vp.Scale),
		CreatedAt:  time.Now(),
	}
	if err := session.AddHighlight(h); err != nil {
		if errors.Is(err, domain.ErrNoDocument) {
			return nil, reject("no document loaded")
		}
		return nil, err
	}

	s.logger.Info("Highlight created",
		"session_id", session.ID, "highlight_id", h.ID, "page", h.PageNumber, "chars", len(h.Text))
	return h, nil
}

func reject(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrSelectionRejected, reason)
}

// List returns highlights in insertion order, filtered to one page when
// pageNumber is set.
func (s *HighlightService) List(session *domain.Session, pageNumber *int) []*domain.Highlight {
	if pageNumber != nil {
		return session.HighlightsByPage(*pageNumber)
	}
	return session.Highlights()
}

// Delete removes a highlight by id. Deleting an id that is already gone is
// a no-op.
func (s *HighlightService) Delete(session *domain.Session, highlightID string) {
	if session.RemoveHighlight(highlightID) {
		s.logger.Info("Highlight deleted", "session_id", session.ID, "highlight_id", highlightID)
	}
}
