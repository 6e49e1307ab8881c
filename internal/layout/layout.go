package layout

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/ivlev/adreel/internal/motion"
)

// LandscapeRatio is the width/height ratio from which a canvas counts as landscape.
const LandscapeRatio = 1.4

// Aspect identifies one of the three target canvas shapes.
type Aspect string

const (
	AspectPortrait  Aspect = "9x16"
	AspectSquare    Aspect = "1x1"
	AspectLandscape Aspect = "16x9"
)

const systemFontStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`

// DefaultFontFamily is used when the brand does not name a font.
const DefaultFontFamily = "Inter, Arial, sans-serif"

// Clamp limits v to [min, max]
func Clamp(v, min, max float64) float64 {
	return math.Min(max, math.Max(min, v))
}

// ScaleByWidth is the responsive size helper: round(width*factor) clamped to [minPx, maxPx].
// minPx > maxPx is a programming error and panics.
func ScaleByWidth(width int, factor, minPx, maxPx float64) float64 {
	if minPx > maxPx {
		panic(fmt.Sprintf("layout: ScaleByWidth min %v exceeds max %v", minPx, maxPx))
	}
	return Clamp(motion.Round(float64(width)*factor), minPx, maxPx)
}

// Percent returns round(total*pct/100)
func Percent(total int, pct float64) int {
	return int(motion.Round(float64(total) * pct / 100))
}

// IsLandscape reports whether the canvas is wide enough for landscape layouts
func IsLandscape(width, height int) bool {
	if height <= 0 {
		return true
	}
	return float64(width)/float64(height) >= LandscapeRatio
}

// AspectOf buckets a canvas into the nearest target aspect.
func AspectOf(width, height int) Aspect {
	if height <= 0 || width <= 0 {
		return AspectSquare
	}
	r := float64(width) / float64(height)
	switch {
	case r >= LandscapeRatio:
		return AspectLandscape
	case r <= 1/LandscapeRatio:
		return AspectPortrait
	default:
		return AspectSquare
	}
}

// Logo is the brand mark placement in the top-left safe area.
type Logo struct {
	Top   float64 `yaml:"top"`
	Left  float64 `yaml:"left"`
	Width float64 `yaml:"width"`
}

// LogoPlacement keeps the logo inside a small safe margin, capped at 140px wide.
func LogoPlacement(width, height int) Logo {
	return Logo{
		Top:   Clamp(float64(height)*0.03, 18, 42),
		Left:  Clamp(float64(width)*0.04, 18, 42),
		Width: math.Min(float64(width)*0.15, 140),
	}
}

var quotedOrList = regexp.MustCompile(`['",]`)

// FontStack puts the brand family ahead of the system stack, quoting names with spaces.
func FontStack(brandFamily string) string {
	family := strings.TrimSpace(brandFamily)
	if family == "" {
		return systemFontStack
	}
	if !quotedOrList.MatchString(family) && strings.ContainsAny(family, " \t") {
		family = `"` + family + `"`
	}
	return family + ", " + systemFontStack
}
