package domain

import "fmt"

// Point is a position, in whichever coordinate space its context implies.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair in page-space points.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle. Screen-space rects are measured in
// on-screen pixels at the current zoom; page-space rects are in document
// units at scale 1.0 with the origin at the top-left of the unscaled page.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToPageSpace projects a screen-space rectangle into page space: the page
// container's origin is subtracted and all four fields are divided by the
// scale. X and Y are clamped to >= 0 because selection rectangles measured
// by the surface can overshoot the container edge by a fraction of a pixel.
func ToPageSpace(screen Rect, containerOrigin Point, scale float64) Rect {
	mustValidScale(scale)
	r := Rect{
		X:      (screen.X - containerOrigin.X) / scale,
		Y:      (screen.Y - containerOrigin.Y) / scale,
		Width:  screen.Width / scale,
		Height: screen.Height / scale,
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// ToScreenSpace projects a stored page-space rectangle back onto the screen
// at the given scale. The scale may differ from the one active when the
// rectangle was captured; the result lands on the same document region.
func ToScreenSpace(page Rect, scale float64) Rect {
	mustValidScale(scale)
	return Rect{
		X:      page.X * scale,
		Y:      page.Y * scale,
		Width:  page.Width * scale,
		Height: page.Height * scale,
	}
}

func mustValidScale(scale float64) {
	if scale <= 0 {
		panic(fmt.Sprintf("domain: scale must be positive, got %v", scale))
	}
}
