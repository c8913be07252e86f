package hexcolor

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	White = "#FFFFFF"
	Black = "#000000"
)

var (
	hexRegex      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	hexAlphaRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)
)

// IsValid reports whether s is a 6-digit "#RRGGBB" colour.
func IsValid(s string) bool {
	return hexRegex.MatchString(s)
}

// IsValidWithAlpha reports whether s is either "#RRGGBB" or "#RRGGBBAA".
func IsValidWithAlpha(s string) bool {
	return hexRegex.MatchString(s) || hexAlphaRegex.MatchString(s)
}

// Normalize trims and uppercases a 6- or 8-digit hex colour.
// It returns false when s is not a valid hex colour.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !IsValidWithAlpha(s) {
		return "", false
	}
	return strings.ToUpper(s), true
}

// WithOpacity appends an alpha byte to a 6-digit hex colour.
// An invalid colour is returned unchanged, so callers should normalise first.
func WithOpacity(hex string, opacity float64) string {
	if math.IsNaN(opacity) || opacity >= 1 || !IsValid(hex) {
		return hex
	}
	if opacity < 0 {
		opacity = 0
	}
	alpha := uint8(math.Round(opacity * 255))
	return fmt.Sprintf("%s%02X", strings.ToUpper(hex), alpha)
}

// Strip returns the 6-digit part of a valid hex colour, dropping any alpha byte.
func Strip(hex string) string {
	if hexAlphaRegex.MatchString(hex) {
		return hex[:7]
	}
	return hex
}

// Lighten blends hex towards white by amount (0 keeps the colour, 1 yields white).
// Invalid input is returned unchanged.
func Lighten(hex string, amount float64) string {
	c, err := parse(hex)
	if err != nil {
		return hex
	}
	amount = clamp01(amount)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return format(c.BlendRgb(white, amount))
}

// Luminance returns the WCAG relative luminance of hex, in [0,1].
// Invalid input is treated as black.
func Luminance(hex string) float64 {
	c, err := parse(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between two colours (1 to 21).
func Contrast(a, b string) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsTextSafe reports whether hex reaches a 7:1 contrast ratio against white or
// black. Mid-tones that are neither clearly light nor clearly dark fail.
func IsTextSafe(hex string) bool {
	const minRatio = 7.0
	return Contrast(hex, White) >= minRatio || Contrast(hex, Black) >= minRatio
}

func parse(hex string) (colorful.Color, error) {
	if !IsValidWithAlpha(hex) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return colorful.Hex(Strip(hex))
}

func format(c colorful.Color) string {
	return strings.ToUpper(c.Clamped().Hex())
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
