package palette

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Contrast thresholds: body text and decorative accents.
const (
	TextContrast   = 4.5
	AccentContrast = 3.0
)

const (
	Black = "#000000"
	White = "#FFFFFF"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseHex parses 3- or 6-digit hex colors with or without a leading '#'.
// SVG color keywords ("navy", "white") are accepted as well.
func ParseHex(s string) (colorful.Color, error) {
	raw := strings.TrimSpace(s)
	clean := strings.TrimPrefix(raw, "#")

	if isHex(clean) && (len(clean) == 3 || len(clean) == 6) {
		if len(clean) == 3 {
			clean = string([]byte{clean[0], clean[0], clean[1], clean[1], clean[2], clean[2]})
		}
		c, err := colorful.Hex("#" + clean)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return c, nil
	}

	if named, ok := colornames.Map[strings.ToLower(raw)]; ok {
		c, _ := colorful.MakeColor(named)
		return c, nil
	}

	return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// relativeLuminance combines linear sRGB channels with the Rec. 709 weights.
// colorful linearizes with the piecewise sRGB curve (c/12.92 below 0.04045).
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Luminance returns the relative luminance of a color in [0,1]
func Luminance(color string) (float64, error) {
	c, err := ParseHex(color)
	if err != nil {
		return 0, err
	}
	return relativeLuminance(c), nil
}

// ContrastRatio returns (L_lighter + 0.05) / (L_darker + 0.05), always >= 1.
func ContrastRatio(fg, bg string) (float64, error) {
	l1, err := Luminance(fg)
	if err != nil {
		return 0, err
	}
	l2, err := Luminance(bg)
	if err != nil {
		return 0, err
	}
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05), nil
}

// EnsureReadable keeps wanted when it reaches minRatio against bg,
// otherwise falls back to black or white depending on bg luminance.
func EnsureReadable(wanted, bg string, minRatio float64) (string, error) {
	ratio, err := ContrastRatio(wanted, bg)
	if err != nil {
		return "", err
	}
	if ratio >= minRatio {
		return wanted, nil
	}
	return ReadableTextOn(bg)
}

// ReadableTextOn picks black or white text for a solid background.
func ReadableTextOn(bg string) (string, error) {
	l, err := Luminance(bg)
	if err != nil {
		return "", err
	}
	if l > 0.5 {
		return Black, nil
	}
	return White, nil
}

// RGBA renders a color as a css rgba() string with alpha clamped to [0,1].
func RGBA(color string, alpha float64) (string, error) {
	c, err := ParseHex(color)
	if err != nil {
		return "", err
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(math.Max(0, math.Min(1, alpha)))), nil
}

func formatAlpha(a float64) string {
	s := fmt.Sprintf("%.3f", a)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
