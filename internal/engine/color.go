package engine

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NormalizeColor validates a hex color ("#abc" or "#aabbcc") and returns it
// in lower-case "#rrggbb" form.
func NormalizeColor(s string) (string, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c.Hex(), nil
}

// ColorRGB255 converts a hex color to 8-bit channels. Invalid input gives white.
func ColorRGB255(s string) (r, g, b uint8) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 255, 255, 255
	}
	return c.RGB255()
}

// ColorHex is the inverse of ColorRGB255.
func ColorHex(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}
