package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

func selectingSession(t *testing.T, pages int) *domain.Session {
	t.Helper()
	_, session, _ := newLoadedService(t, pages)
	if err := session.SetMode(domain.ModeSelecting); err != nil {
		t.Fatalf("SetMode failed: %v", err)
	}
	return session
}

func captureInput() domain.CaptureInput {
	return domain.CaptureInput{
		Text:            "selected text",
		Bounds:          &domain.Rect{X: 110, Y: 210, Width: 40, Height: 12},
		ContainerOrigin: domain.Point{X: 10, Y: 10},
		Color:           domain.Color{R: 255, G: 235, B: 59},
	}
}

// TestHighlightService_CaptureRejections tests the gates a selection must
// pass before it becomes a highlight.
// It tests:
// - Capture outside selecting mode is rejected
// - Blank text, missing bounds and sub-minimum rects are rejected
// - Every rejection wraps ErrSelectionRejected and no highlight is stored
func TestHighlightService_CaptureRejections(t *testing.T) {
	tests := []struct {
		name    string
		mode    domain.ViewportMode
		mutate  func(*domain.CaptureInput)
		wantMsg string
	}{
		{
			name:    "Mode is idle",
			mode:    domain.ModeIdle,
			mutate:  func(in *domain.CaptureInput) {},
			wantMsg: "highlight mode is off",
		},
		{
			name:    "Empty text",
			mode:    domain.ModeSelecting,
			mutate:  func(in *domain.CaptureInput) { in.Text = "" },
			wantMsg: "no text",
		},
		{
			name:    "Whitespace text",
			mode:    domain.ModeSelecting,
			mutate:  func(in *domain.CaptureInput) { in.Text = "  \n\t " },
			wantMsg: "no text",
		},
		{
			name:    "Missing bounds",
			mode:    domain.ModeSelecting,
			mutate:  func(in *domain.CaptureInput) { in.Bounds = nil },
			wantMsg: "no range",
		},
		{
			name:    "Too narrow",
			mode:    domain.ModeSelecting,
			mutate:  func(in *domain.CaptureInput) { in.Bounds.Width = 4.9 },
			wantMsg: "minimum size",
		},
		{
			name:    "Too short",
			mode:    domain.ModeSelecting,
			mutate:  func(in *domain.CaptureInput) { in.Bounds.Height = 3 },
			wantMsg: "minimum size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, session, _ := newLoadedService(t, 3)
			if err := session.SetMode(tt.mode); err != nil {
				t.Fatalf("SetMode failed: %v", err)
			}
			svc := NewHighlightService(NewMockLogger())

			input := captureInput()
			tt.mutate(&input)

			_, err := svc.Capture(session, input)
			if !errors.Is(err, domain.ErrSelectionRejected) {
				t.Fatalf("Capture error = %v, want ErrSelectionRejected", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Capture error = %q, want reason containing %q", err, tt.wantMsg)
			}
			if n := session.HighlightCount(); n != 0 {
				t.Errorf("highlight count = %d, want 0 after rejection", n)
			}
		})
	}
}

// TestHighlightService_CaptureWithoutDocument tests that capture on a bare
// session is rejected rather than stored.
func TestHighlightService_CaptureWithoutDocument(t *testing.T) {
	svc := NewSessionService(newMemRepo(), NewMockRenderer(1), domain.DefaultZoomBounds, NewMockLogger())
	session, _ := svc.CreateSession()
	if err := session.SetMode(domain.ModeSelecting); err != nil {
		t.Fatalf("SetMode failed: %v", err)
	}

	highlights := NewHighlightService(NewMockLogger())
	_, err := highlights.Capture(session, captureInput())
	if !errors.Is(err, domain.ErrSelectionRejected) {
		t.Errorf("Capture error = %v, want ErrSelectionRejected", err)
	}
}

// TestHighlightService_Capture tests a successful capture.
// It tests:
// - The selection rect is translated into page space at scale 1.0
// - The highlight carries the current page, the color and an id
func TestHighlightService_Capture(t *testing.T) {
	session := selectingSession(t, 5)
	session.GoToPage(3)
	svc := NewHighlightService(NewMockLogger())

	h, err := svc.Capture(session, captureInput())
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if h.ID == "" {
		t.Error("highlight id is empty")
	}
	if h.PageNumber != 3 {
		t.Errorf("page = %d, want 3", h.PageNumber)
	}
	if h.Text != "selected text" {
		t.Errorf("text = %q, want the selection text", h.Text)
	}
	want := domain.Rect{X: 100, Y: 200, Width: 40, Height: 12}
	if h.Position != want {
		t.Errorf("position = %+v, want %+v", h.Position, want)
	}
	if h.Color != (domain.Color{R: 255, G: 235, B: 59}) {
		t.Errorf("color = %+v, want the input color", h.Color)
	}
	if h.CreatedAt.IsZero() {
		t.Error("created-at was not set")
	}
}

// TestHighlightService_CaptureAtZoom tests that the stored rect does not
// depend on the zoom level the selection was made at.
func TestHighlightService_CaptureAtZoom(t *testing.T) {
	session := selectingSession(t, 3)
	for i := 0; i < 5; i++ {
		session.ZoomIn() // 1.0 -> 2.0 in 0.2 steps
	}
	if scale := session.Viewport().Scale; scale != 2.0 {
		t.Fatalf("scale = %v, want 2.0", scale)
	}
	svc := NewHighlightService(NewMockLogger())

	// The same passage selected at scale 2.0 covers twice the pixels.
	input := captureInput()
	input.Bounds = &domain.Rect{X: 210, Y: 410, Width: 80, Height: 24}

	h, err := svc.Capture(session, input)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	want := domain.Rect{X: 100, Y: 200, Width: 40, Height: 12}
	if h.Position != want {
		t.Errorf("position = %+v, want %+v regardless of zoom", h.Position, want)
	}
}

// TestHighlightService_List tests listing with and without a page filter.
func TestHighlightService_List(t *testing.T) {
	session := selectingSession(t, 5)
	svc := NewHighlightService(NewMockLogger())

	pages := []int{1, 3, 1, 2}
	for _, p := range pages {
		session.GoToPage(p)
		if _, err := svc.Capture(session, captureInput()); err != nil {
			t.Fatalf("Capture on page %d failed: %v", p, err)
		}
	}

	all := svc.List(session, nil)
	if len(all) != 4 {
		t.Fatalf("List(nil) returned %d highlights, want 4", len(all))
	}
	// Creation order is preserved and every capture minted its own id.
	seen := make(map[string]bool)
	for i, h := range all {
		if h.PageNumber != pages[i] {
			t.Errorf("all[%d].PageNumber = %d, want %d", i, h.PageNumber, pages[i])
		}
		if seen[h.ID] {
			t.Errorf("all[%d].ID = %q repeats an earlier id", i, h.ID)
		}
		seen[h.ID] = true
	}

	page := 1
	firstPage := svc.List(session, &page)
	if len(firstPage) != 2 {
		t.Errorf("List(&1) returned %d highlights, want 2", len(firstPage))
	}
	for _, h := range firstPage {
		if h.PageNumber != 1 {
			t.Errorf("filtered highlight on page %d, want 1", h.PageNumber)
		}
	}

	page = 4
	if got := svc.List(session, &page); len(got) != 0 {
		t.Errorf("List(&4) returned %d highlights, want 0", len(got))
	}
}

// TestHighlightService_Delete tests removal and its idempotence.
func TestHighlightService_Delete(t *testing.T) {
	session := selectingSession(t, 3)
	svc := NewHighlightService(NewMockLogger())

	h, err := svc.Capture(session, captureInput())
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	svc.Delete(session, h.ID)
	if n := session.HighlightCount(); n != 0 {
		t.Errorf("highlight count = %d, want 0 after delete", n)
	}

	// Deleting again or deleting the unknown is a no-op.
	svc.Delete(session, h.ID)
	svc.Delete(session, "never-existed")
	if n := session.HighlightCount(); n != 0 {
		t.Errorf("highlight count = %d, want 0", n)
	}
}
