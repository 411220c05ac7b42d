package domain

import "context"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetAllowedOrigins() []string
	GetZoomBounds() ZoomBounds
}

// PageDimensions is one page's size in page-space units at scale 1.0.
type PageDimensions struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DocumentInfo is what the rendering capability reports about freshly
// loaded bytes.
type DocumentInfo struct {
	Title     string
	Author    string
	PageCount int
	Pages     []PageDimensions
}

// RenderedPage is one rasterized page plus the pixel geometry it was
// produced at.
type RenderedPage struct {
	PageNumber int
	Scale      float64
	WidthPx    int
	HeightPx   int
	PNG        []byte
}

// PageRenderer is the rendering capability: inspect raw bytes, rasterize a
// single page at a zoom scale, and produce the positioned text layer the
// surface overlays on the raster to make text selectable. Page numbers are
// 1-based.
type PageRenderer interface {
	Inspect(ctx context.Context, raw []byte) (*DocumentInfo, error)
	RenderPage(ctx context.Context, raw []byte, pageNumber int, scale float64) (*RenderedPage, error)
	TextLayer(ctx context.Context, raw []byte, pageNumber int) (string, error)
}

// EditableDocument is a private working copy produced by the editing
// capability. Page numbers are 1-based; coordinates are PDF user space,
// origin bottom-left, units points. Implementations are not safe for
// concurrent use.
type EditableDocument interface {
	PageCount() int
	PageSize(pageNumber int) (Size, error)
	DrawRect(pageNumber int, rect Rect, color RGB, opacity float64) error
	DrawText(pageNumber int, text string, pos Point, fontSize float64, color RGB) error
	Save() ([]byte, error)
}

// DocumentEditor opens raw bytes as an editable working copy. The caller's
// bytes are only read, never written.
type DocumentEditor interface {
	Open(raw []byte) (EditableDocument, error)
}

// SessionRepository holds the live editing sessions.
type SessionRepository interface {
	Create(session *Session) error
	Get(id string) (*Session, error)
	Delete(id string)
	Len() int
}

// SessionService drives the session lifecycle, document loading and the
// viewport commands.
type SessionService interface {
	CreateSession() (*Session, error)
	GetSession(id string) (*Session, error)
	DeleteSession(id string)
	LoadFile(ctx context.Context, session *Session, raw []byte, name string) (*SessionSnapshot, error)
	Snapshot(session *Session) *SessionSnapshot
	OriginalDocument(session *Session) (*Document, error)
	RenderPage(ctx context.Context, session *Session, pageNumber int, scale float64) (*RenderedPage, error)
	TextLayer(ctx context.Context, session *Session, pageNumber int) (string, error)
	GoToPage(session *Session, page int) *SessionSnapshot
	ZoomIn(session *Session) *SessionSnapshot
	ZoomOut(session *Session) *SessionSnapshot
	SetMode(session *Session, mode ViewportMode) (*SessionSnapshot, error)
	RegisterAnchor(session *Session, page int, handle string) error
	NavigateToHighlight(session *Session, highlightID string) (*NavigationTarget, error)
}

// CaptureInput is a raw selection event as reported by the surface. Bounds
// is nil when the selection had no measurable range.
type CaptureInput struct {
	Text            string
	Bounds          *Rect
	ContainerOrigin Point
	Color           Color
}

// HighlightService defines the use-case operations for highlights.
type HighlightService interface {
	Capture(session *Session, input CaptureInput) (*Highlight, error)
	List(session *Session, pageNumber *int) []*Highlight
	Delete(session *Session, highlightID string)
}

// ExportService produces an annotated copy of the loaded document.
type ExportService interface {
	Export(ctx context.Context, session *Session) ([]byte, error)
}
