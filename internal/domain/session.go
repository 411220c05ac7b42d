package domain

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// ViewportMode says whether the surface is currently capturing selections.
type ViewportMode string

const (
	ModeIdle      ViewportMode = "idle"
	ModeSelecting ViewportMode = "selecting"
)

// ValidMode reports whether the string names a known viewport mode.
func ValidMode(mode ViewportMode) bool {
	return mode == ModeIdle || mode == ModeSelecting
}

// Viewport tracks the visible page, the zoom scale and the interaction mode
// of one editing surface.
type Viewport struct {
	CurrentPage int          `json:"current_page"`
	Scale       float64      `json:"scale"`
	Mode        ViewportMode `json:"mode"`
}

// ZoomBounds is the configurable zoom range and step size.
type ZoomBounds struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultZoomBounds matches the surface defaults: 0.5x to 3.0x in 0.2 steps.
var DefaultZoomBounds = ZoomBounds{Min: 0.5, Max: 3.0, Step: 0.2}

// Document is a loaded file: its name, the original bytes exactly as
// uploaded, and the page inventory reported by the rendering capability.
// Raw is never written after load.
type Document struct {
	Name      string
	Raw       []byte
	PageCount int
	Info      DocumentInfo
}

// DocumentSummary is the read-only document portion of a session snapshot.
type DocumentSummary struct {
	Name      string `json:"name"`
	PageCount int    `json:"page_count"`
	Size      int64  `json:"size"`
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
}

// SessionSnapshot is the state handed back to the surface after a command.
// It is a copy; mutating it does not touch the session.
type SessionSnapshot struct {
	ID         string           `json:"id"`
	Document   *DocumentSummary `json:"document,omitempty"`
	Viewport   Viewport         `json:"viewport"`
	Highlights []*Highlight     `json:"highlights"`
}

// NavigationTarget tells the surface which page to show and, when that page
// has registered a render anchor, which handle to bring into view.
type NavigationTarget struct {
	PageNumber int    `json:"page_number"`
	Anchor     string `json:"anchor,omitempty"`
}

// Session is the aggregate owning a loaded document, the viewport, the
// highlight list and the page anchors for one editing surface. Commands are
// the only mutation path and every command takes the session lock, so the
// aggregate stays consistent even when requests interleave.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	doc        *Document
	viewport   Viewport
	highlights HighlightList
	anchors    map[int]string
	zoom       ZoomBounds
}

// NewSession creates an empty session on page 1 at scale 1.0 in idle mode.
// Nonsensical zoom bounds fall back to the defaults.
func NewSession(id string, zoom ZoomBounds) *Session {
	if zoom.Min <= 0 || zoom.Max < zoom.Min || zoom.Step <= 0 {
		zoom = DefaultZoomBounds
	}
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		viewport:  Viewport{CurrentPage: 1, Scale: 1.0, Mode: ModeIdle},
		anchors:   make(map[int]string),
		zoom:      zoom,
	}
}

// LoadDocument installs a freshly loaded document and resets all
// page-relative state: page 1, scale 1.0, idle mode, no highlights, no
// anchors. Annotations index into the previous document's pages and cannot
// survive a replacement.
func (s *Session) LoadDocument(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.viewport = Viewport{CurrentPage: 1, Scale: 1.0, Mode: ModeIdle}
	s.highlights.Clear()
	s.anchors = make(map[int]string)
}

// Document returns the loaded document, or nil before the first load. Raw
// bytes are immutable after load, so a caller that keeps the returned
// pointer holds a stable snapshot even if the session loads another file.
func (s *Session) Document() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Viewport returns the current viewport state.
func (s *Session) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// GoToPage clamps n into [1, pageCount] and moves the viewport there.
// Out-of-range input is not an error. Without a document the viewport stays
// where it is.
func (s *Session) GoToPage(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return s.viewport.CurrentPage
	}
	if n < 1 {
		n = 1
	}
	if n > s.doc.PageCount {
		n = s.doc.PageCount
	}
	s.viewport.CurrentPage = n
	return n
}

// ZoomIn raises the scale by one step, capped at the upper bound.
func (s *Session) ZoomIn() float64 { return s.stepScale(+1) }

// ZoomOut lowers the scale by one step, capped at the lower bound.
func (s *Session) ZoomOut() float64 { return s.stepScale(-1) }

func (s *Session) stepScale(direction float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := roundScale(s.viewport.Scale + direction*s.zoom.Step)
	if next > s.zoom.Max {
		next = s.zoom.Max
	}
	if next < s.zoom.Min {
		next = s.zoom.Min
	}
	s.viewport.Scale = next
	return next
}

// roundScale keeps stepped scales on exact hundredths so repeated steps do
// not accumulate float drift.
func roundScale(s float64) float64 {
	return math.Round(s*100) / 100
}

// SetMode switches the interaction mode.
func (s *Session) SetMode(mode ViewportMode) error {
	if !ValidMode(mode) {
		return &ValidationError{Field: "mode", Message: fmt.Sprintf("unknown viewport mode %q", mode)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport.Mode = mode
	return nil
}

// AddHighlight validates the highlight against the loaded document and
// appends it to the list.
func (s *Session) AddHighlight(h *Highlight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return ErrNoDocument
	}
	if h.PageNumber < 1 || h.PageNumber > s.doc.PageCount {
		return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, h.PageNumber, s.doc.PageCount)
	}
	if h.Position.Width <= 0 || h.Position.Height <= 0 {
		return fmt.Errorf("highlight %s has a degenerate position", h.ID)
	}
	s.highlights.Add(h)
	return nil
}

// RemoveHighlight deletes by id and reports whether anything was removed.
// Unknown ids are a no-op, so removal is idempotent.
func (s *Session) RemoveHighlight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlights.Remove(id)
}

// HighlightByID looks a highlight up without moving the viewport.
func (s *Session) HighlightByID(id string) (*Highlight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlights.Get(id)
}

// Highlights returns all highlights in insertion order.
func (s *Session) Highlights() []*Highlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlights.All()
}

// HighlightsByPage returns the highlights on one page in insertion order.
func (s *Session) HighlightsByPage(pageNumber int) []*Highlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlights.ByPage(pageNumber)
}

// HighlightCount returns the number of stored highlights.
func (s *Session) HighlightCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlights.Count()
}

// SetAnchor registers the surface's render handle for a page. Re-registering
// the same page replaces the handle, so remounts are harmless.
func (s *Session) SetAnchor(pageNumber int, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return ErrNoDocument
	}
	if pageNumber < 1 || pageNumber > s.doc.PageCount {
		return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, pageNumber, s.doc.PageCount)
	}
	s.anchors[pageNumber] = handle
	return nil
}

// Anchor returns the registered handle for a page, if any.
func (s *Session) Anchor(pageNumber int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	handle, ok := s.anchors[pageNumber]
	return handle, ok
}

// NavigateToHighlight moves the viewport to the highlight's page and returns
// the target the surface should scroll to. Pages without a registered anchor
// yield a target with an empty handle; the page switch still happens.
func (s *Session) NavigateToHighlight(id string) (*NavigationTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.highlights.Get(id)
	if !ok {
		return nil, ErrHighlightNotFound
	}
	s.viewport.CurrentPage = h.PageNumber
	return &NavigationTarget{
		PageNumber: h.PageNumber,
		Anchor:     s.anchors[h.PageNumber],
	}, nil
}

// Snapshot copies the session state for the surface. The highlight slice is
// fresh but shares the (immutable) highlight records.
func (s *Session) Snapshot() *SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := &SessionSnapshot{
		ID:         s.ID,
		Viewport:   s.viewport,
		Highlights: s.highlights.All(),
	}
	if s.doc != nil {
		snap.Document = &DocumentSummary{
			Name:      s.doc.Name,
			PageCount: s.doc.PageCount,
			Size:      int64(len(s.doc.Raw)),
			Title:     s.doc.Info.Title,
			Author:    s.doc.Info.Author,
		}
	}
	return snap
}

// ExportState returns the document and the highlight list as they stand,
// for a one-shot export. Both are immutable once created, so the returned
// values stay coherent even if another document loads mid-export.
func (s *Session) ExportState() (*Document, []*Highlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, nil, ErrNoDocument
	}
	return s.doc, s.highlights.All(), nil
}
