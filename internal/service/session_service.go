package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// pdfMagic is the signature every PDF header starts with.
var pdfMagic = []byte("%PDF-")

// SessionService implements the domain.SessionService interface. It owns the
// session lifecycle, document loading and the viewport commands; geometry
// and list invariants live on the session aggregate itself.
type SessionService struct {
	repo     domain.SessionRepository
	renderer domain.PageRenderer
	zoom     domain.ZoomBounds
	logger   domain.Logger
}

func NewSessionService(repo domain.SessionRepository, renderer domain.PageRenderer, zoom domain.ZoomBounds, logger domain.Logger) domain.SessionService {
	return &SessionService{
		repo:     repo,
		renderer: renderer,
		zoom:     zoom,
		logger:   logger,
	}
}

func (s *SessionService) CreateSession() (*domain.Session, error) {
	session := domain.NewSession(uuid.New().String(), s.zoom)
	if err := s.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Info("Session created", "session_id", session.ID)
	return session, nil
}

func (s *SessionService) GetSession(id string) (*domain.Session, error) {
	return s.repo.Get(id)
}

func (s *SessionService) DeleteSession(id string) {
	s.repo.Delete(id)
	s.logger.Info("Session deleted", "session_id", id)
}

// LoadFile validates freshly uploaded bytes and installs them as the
// session's document. On any failure the session keeps its previous document
// and annotations untouched.
func (s *SessionService) LoadFile(ctx context.Context, session *domain.Session, raw []byte, name string) (*domain.SessionSnapshot, error) {
	if err := validateFileType(raw, name); err != nil {
		return nil, err
	}

	info, err := s.renderer.Inspect(ctx, raw)
	if err != nil {
		s.logger.Warn("Document rejected by renderer", "session_id", session.ID, "name", name, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	if info.PageCount < 1 {
		return nil, fmt.Errorf("%w: document has no pages", domain.ErrLoadFailed)
	}

	session.LoadDocument(&domain.Document{
		Name:      name,
		Raw:       raw,
		PageCount: info.PageCount,
		Info:      *info,
	})
	s.logger.Info("Document loaded",
		"session_id", session.ID, "name", name, "pages", info.PageCount, "bytes", len(raw))
	return session.Snapshot(), nil
}

// validateFileType rejects files whose name carries a non-PDF extension or
// whose bytes lack the %PDF- signature.
func validateFileType(raw []byte, name string) error {
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" && ext != ".pdf" {
		return fmt.Errorf("%w: extension %s", domain.ErrInvalidFileType, ext)
	}
	if !bytes.HasPrefix(raw, pdfMagic) {
		return fmt.Errorf("%w: missing %%PDF header", domain.ErrInvalidFileType)
	}
	return nil
}

func (s *SessionService) Snapshot(session *domain.Session) *domain.SessionSnapshot {
	return session.Snapshot()
}

func (s *SessionService) OriginalDocument(session *domain.Session) (*domain.Document, error) {
	doc := session.Document()
	if doc == nil {
		return nil, domain.ErrNoDocument
	}
	return doc, nil
}

// RenderPage rasterizes one page of the loaded document. A scale of 0 means
// "whatever the viewport currently shows".
func (s *SessionService) RenderPage(ctx context.Context, session *domain.Session, pageNumber int, scale float64) (*domain.RenderedPage, error) {
	doc := session.Document()
	if doc == nil {
		return nil, domain.ErrNoDocument
	}
	if pageNumber < 1 || pageNumber > doc.PageCount {
		return nil, fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, pageNumber, doc.PageCount)
	}
	if scale <= 0 {
		scale = session.Viewport().Scale
	}
	return s.renderer.RenderPage(ctx, doc.Raw, pageNumber, scale)
}

func (s *SessionService) TextLayer(ctx context.Context, session *domain.Session, pageNumber int) (string, error) {
	doc := session.Document()
	if doc == nil {
		return "", domain.ErrNoDocument
	}
	if pageNumber < 1 || pageNumber > doc.PageCount {
		return "", fmt.Errorf("%w: page %d of %d", domain.ErrPageOutOfRange, pageNumber, doc.PageCount)
	}
	return s.renderer.TextLayer(ctx, doc.Raw, pageNumber)
}

func (s *SessionService) GoToPage(session *domain.Session, page int) *domain.SessionSnapshot {
	landed := session.GoToPage(page)
	s.logger.Debug("Viewport page set", "session_id", session.ID, "requested", page, "page", landed)
	return session.Snapshot()
}

func (s *SessionService) ZoomIn(session *domain.Session) *domain.SessionSnapshot {
	scale := session.ZoomIn()
	s.logger.Debug("Zoomed in", "session_id", session.ID, "scale", scale)
	return session.Snapshot()
}

func (s *SessionService) ZoomOut(session *domain.Session) *domain.SessionSnapshot {
	scale := session.ZoomOut()
	s.logger.Debug("Zoomed out", "session_id", session.ID, "scale", scale)
	return session.Snapshot()
}

func (s *SessionService) SetMode(session *domain.Session, mode domain.ViewportMode) (*domain.SessionSnapshot, error) {
	if err := session.SetMode(mode); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (s *SessionService) RegisterAnchor(session *domain.Session, page int, handle string) error {
	if strings.TrimSpace(handle) == "" {
		return &domain.ValidationError{Field: "handle", Message: "anchor handle is required"}
	}
	return session.SetAnchor(page, handle)
}

// NavigateToHighlight moves the viewport to the highlight's page and returns
// the scroll target for the surface.
func (s *SessionService) NavigateToHighlight(session *domain.Session, highlightID string) (*domain.NavigationTarget, error) {
	target, err := session.NavigateToHighlight(highlightID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Navigated to highlight",
		"session_id", session.ID, "highlight_id", highlightID, "page", target.PageNumber)
	return target, nil
}
