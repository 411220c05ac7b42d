package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple with 0-255 channels. Hex strings arriving from the
// surface are parsed exactly once, at the request boundary; everything past
// that point works with the structured form.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB is a color with channels normalized to the 0-1 range used by PDF
// drawing operators.
type RGB struct {
	R, G, B float64
}

// ParseColor accepts "#rrggbb" and "#rgb", case-insensitive, with the
// leading '#' optional.
func ParseColor(s string) (Color, error) {
	hexStr := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hexStr) {
	case 3:
		hexStr = string([]byte{hexStr[0], hexStr[0], hexStr[1], hexStr[1], hexStr[2], hexStr[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// RGB converts the 0-255 channels into the normalized 0-1 range.
func (c Color) RGB() RGB {
	return RGB{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex renders the color back to "#rrggbb" form for the surface.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
