package domain

import (
	"math"
	"testing"
)

const coordEpsilon = 1e-9

func rectsAlmostEqual(a, b Rect) bool {
	return math.Abs(a.X-b.X) < coordEpsilon &&
		math.Abs(a.Y-b.Y) < coordEpsilon &&
		math.Abs(a.Width-b.Width) < coordEpsilon &&
		math.Abs(a.Height-b.Height) < coordEpsilon
}

// TestToPageSpace tests the screen-space to page-space projection.
// It tests:
// - Origin subtraction and scale division
// - The worked reference selection: screen {110,210,40,12} with container
//   origin {10,10} at scale 1.0 stores as {100,200,40,12}
// - Clamping of negative results to zero
func TestToPageSpace(t *testing.T) {
	tests := []struct {
		name   string
		screen Rect
		origin Point
		scale  float64
		want   Rect
	}{
		{
			// The reference selection at scale 1.0
			name:   "Reference selection at scale 1.0",
			screen: Rect{X: 110, Y: 210, Width: 40, Height: 12},
			origin: Point{X: 10, Y: 10},
			scale:  1.0,
			want:   Rect{X: 100, Y: 200, Width: 40, Height: 12},
		},
		{
			// The same document region selected while zoomed to 1.5x
			name:   "Selection at scale 1.5",
			screen: Rect{X: 160, Y: 310, Width: 60, Height: 18},
			origin: Point{X: 10, Y: 10},
			scale:  1.5,
			want:   Rect{X: 100, Y: 200, Width: 40, Height: 12},
		},
		{
			name:   "Zero origin",
			screen: Rect{X: 50, Y: 80, Width: 20, Height: 10},
			origin: Point{},
			scale:  1.0,
			want:   Rect{X: 50, Y: 80, Width: 20, Height: 10},
		},
		{
			// Sub-pixel overshoot past the container edge clamps to 0
			name:   "Negative position clamps to zero",
			screen: Rect{X: 9.5, Y: 9.25, Width: 40, Height: 12},
			origin: Point{X: 10, Y: 10},
			scale:  1.0,
			want:   Rect{X: 0, Y: 0, Width: 40, Height: 12},
		},
		{
			name:   "Scale 0.5 doubles page-space values",
			screen: Rect{X: 60, Y: 110, Width: 20, Height: 6},
			origin: Point{X: 10, Y: 10},
			scale:  0.5,
			want:   Rect{X: 100, Y: 200, Width: 40, Height: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPageSpace(tt.screen, tt.origin, tt.scale)
			if !rectsAlmostEqual(got, tt.want) {
				t.Errorf("ToPageSpace() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestToScreenSpace tests the page-space to screen-space projection.
// It tests:
// - Multiplication by the current scale
// - The worked reference rect {100,200,40,12} rendering at scale 2.0 as
//   {200,400,80,24}
func TestToScreenSpace(t *testing.T) {
	tests := []struct {
		name  string
		page  Rect
		scale float64
		want  Rect
	}{
		{
			name:  "Reference rect at scale 2.0",
			page:  Rect{X: 100, Y: 200, Width: 40, Height: 12},
			scale: 2.0,
			want:  Rect{X: 200, Y: 400, Width: 80, Height: 24},
		},
		{
			name:  "Identity at scale 1.0",
			page:  Rect{X: 100, Y: 200, Width: 40, Height: 12},
			scale: 1.0,
			want:  Rect{X: 100, Y: 200, Width: 40, Height: 12},
		},
		{
			name:  "Shrinks below 1.0",
			page:  Rect{X: 100, Y: 200, Width: 40, Height: 12},
			scale: 0.5,
			want:  Rect{X: 50, Y: 100, Width: 20, Height: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToScreenSpace(tt.page, tt.scale)
			if !rectsAlmostEqual(got, tt.want) {
				t.Errorf("ToScreenSpace() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestCoordinateRoundTrip tests that projecting a screen rect into page
// space and back at the same scale recovers the original rect, for rects
// that need no clamping.
func TestCoordinateRoundTrip(t *testing.T) {
	origin := Point{X: 17.5, Y: 42.25}
	scales := []float64{0.5, 1.0, 1.4, 2.0, 3.0}
	rects := []Rect{
		{X: 110, Y: 210, Width: 40, Height: 12},
		{X: 18, Y: 43, Width: 5, Height: 5},
		{X: 300.75, Y: 512.5, Width: 123.25, Height: 48},
	}

	for _, scale := range scales {
		for _, screen := range rects {
			page := ToPageSpace(screen, origin, scale)
			back := ToScreenSpace(page, scale)
			want := Rect{
				X:      screen.X - origin.X,
				Y:      screen.Y - origin.Y,
				Width:  screen.Width,
				Height: screen.Height,
			}
			if !rectsAlmostEqual(back, want) {
				t.Errorf("round trip at scale %v: got %+v, want %+v", scale, back, want)
			}
		}
	}
}

// TestScaleIndependence tests that the same physical selection made at two
// different zoom levels stores as the same page-space rect.
func TestScaleIndependence(t *testing.T) {
	origin := Point{X: 10, Y: 10}
	page := Rect{X: 100, Y: 200, Width: 40, Height: 12}

	for _, scale := range []float64{0.5, 1.0, 1.5, 2.0, 2.8} {
		// What the surface would measure for this region at this zoom.
		screen := Rect{
			X:      page.X*scale + origin.X,
			Y:      page.Y*scale + origin.Y,
			Width:  page.Width * scale,
			Height: page.Height * scale,
		}
		got := ToPageSpace(screen, origin, scale)
		if !rectsAlmostEqual(got, page) {
			t.Errorf("scale %v: got %+v, want %+v", scale, got, page)
		}
	}
}

// TestProjectionPanicsOnBadScale tests that both projections treat a
// non-positive scale as a programming error.
func TestProjectionPanicsOnBadScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ToPageSpace did not panic for scale %v", scale)
				}
			}()
			ToPageSpace(Rect{X: 1, Y: 1, Width: 1, Height: 1}, Point{}, scale)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ToScreenSpace did not panic for scale %v", scale)
				}
			}()
			ToScreenSpace(Rect{X: 1, Y: 1, Width: 1, Height: 1}, scale)
		}()
	}
}
