package pdfcpu

import (
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// labelPadX is the horizontal inset of label text inside its box, in points.
const labelPadX = 2.0

// helveticaGlyphEm approximates the average Helvetica glyph advance. It runs
// a little wide, which only pads the label box.
const helveticaGlyphEm = 0.55

// fmtNum renders a coordinate for a PDF operator: plain decimal notation,
// two places.
func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func fmtRGB(c domain.RGB) string {
	return fmtNum(c.R) + " " + fmtNum(c.G) + " " + fmtNum(c.B)
}

// rectArray converts an x/y/w/h rect into the [llx lly urx ury] form PDF
// rectangles use.
func rectArray(r domain.Rect) types.Array {
	return types.NewNumberArray(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func colorArray(c domain.RGB) types.Array {
	return types.NewNumberArray(c.R, c.G, c.B)
}

// escapeText makes a string safe inside a content-stream literal: backslash
// and parens are escaped, tabs and newlines collapse to spaces, control and
// non-ASCII runes are dropped. The base-14 Helvetica resource keeps labels
// ASCII anyway.
func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteByte(' ')
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sanitizeContents strips everything outside a conservative ASCII subset so
// the annotation note survives any downstream string encoder unchanged.
func sanitizeContents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			continue
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteByte(' ')
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// labelExtent estimates the box a label needs at the given font size.
func labelExtent(text string, fontSize float64) (w, h float64) {
	glyphs := len([]rune(escapeTextStripped(text)))
	if glyphs < 1 {
		glyphs = 1
	}
	w = float64(glyphs)*helveticaGlyphEm*fontSize + 2*labelPadX
	h = fontSize * 1.4
	return w, h
}

// escapeTextStripped counts only the runes that will actually render.
func escapeTextStripped(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 0x20 && r < 0x7f) || r == '\n' || r == '\t' || r == '\r' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
