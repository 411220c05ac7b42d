package pdfcpu

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/require"

	"github.com/raghuwanshi313/EDP-APP/internal/domain"
)

// TestFmtNum tests that operator coordinates render as plain decimals.
func TestFmtNum(t *testing.T) {
	require.Equal(t, "0.40", fmtNum(0.4))
	require.Equal(t, "100.00", fmtNum(100))
	require.Equal(t, "595.28", fmtNum(595.2756), "rounds to two places")
	require.Equal(t, "0.00", fmtNum(0.0000001), "no scientific notation")
}

// TestFmtRGB tests the color operand triple.
func TestFmtRGB(t *testing.T) {
	c := domain.Color{R: 255, G: 235, B: 59}.RGB()
	require.Equal(t, "1.00 0.92 0.23", fmtRGB(c))
}

// TestRectArray tests x/y/w/h conversion into [llx lly urx ury].
func TestRectArray(t *testing.T) {
	arr := rectArray(domain.Rect{X: 100, Y: 200, Width: 40, Height: 12})
	require.Len(t, arr, 4)
	want := []float64{100, 200, 140, 212}
	for i, obj := range arr {
		f, ok := obj.(types.Float)
		require.True(t, ok, "element %d is %T, want types.Float", i, obj)
		require.InDelta(t, want[i], float64(f), 1e-9)
	}
}

// TestEscapeText tests content-stream literal escaping.
// It tests:
// - Backslash and parens gain escapes
// - Newlines and tabs collapse to spaces
// - Control bytes and non-ASCII runes are dropped
func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Plain", input: "usufructo legal", want: "usufructo legal"},
		{name: "Parens", input: "art. 252 (caput)", want: "art. 252 \\(caput\\)"},
		{name: "Backslash", input: `a\b`, want: `a\\b`},
		{name: "Newline and tab", input: "a\nb\tc", want: "a b c"},
		{name: "Control bytes dropped", input: "a\x00b\x01c", want: "abc"},
		{name: "Non-ASCII dropped", input: "café", want: "caf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, escapeText(tt.input))
		})
	}
}

// TestSanitizeContents tests that annotation notes keep only the safe ASCII
// subset, with no parens or backslashes at all.
func TestSanitizeContents(t *testing.T) {
	require.Equal(t, "art. 252 caput", sanitizeContents("art. 252 (caput)"))
	require.Equal(t, "ab", sanitizeContents("a\\b"))
	require.Equal(t, "a b", sanitizeContents("a\nb"))
}

// TestLabelExtent tests the box estimate.
// It tests:
// - Longer labels get wider boxes
// - The height tracks the font size
// - Empty labels still get a non-degenerate box
func TestLabelExtent(t *testing.T) {
	wShort, h := labelExtent("abc", 9)
	wLong, _ := labelExtent("abcdefghij", 9)
	require.Greater(t, wLong, wShort)
	require.InDelta(t, 9*1.4, h, 1e-9)

	wEmpty, hEmpty := labelExtent("", 9)
	require.Greater(t, wEmpty, 0.0)
	require.Greater(t, hEmpty, 0.0)
}
