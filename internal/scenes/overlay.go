package scenes

import (
	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/palette"
)

const (
	DefaultPatternOpacity = 0.12
	DefaultPatternSize    = 24
)

// Overlay is a resolved decorative pattern drawn over the scene background
type Overlay struct {
	Type  adspec.PatternType `yaml:"type"`
	Color string             `yaml:"color"`
	Size  float64            `yaml:"size"`
}

// ResolveOverlay picks the scene pattern, else the brand pattern. nil means
// nothing is drawn.
func ResolveOverlay(scene, brand *adspec.Pattern, accent string) (*Overlay, error) {
	pat := scene
	if pat == nil {
		pat = brand
	}
	if pat == nil || pat.Type == adspec.PatternNone || pat.Type == "" {
		return nil, nil
	}

	color := pat.Color
	if color == "" {
		color = accent
	}
	alpha := DefaultPatternOpacity
	if pat.Opacity != nil {
		alpha = *pat.Opacity
	}
	size := pat.Size
	if size <= 0 {
		size = DefaultPatternSize
	}

	rgba, err := palette.RGBA(color, alpha)
	if err != nil {
		return nil, err
	}
	return &Overlay{Type: pat.Type, Color: rgba, Size: size}, nil
}
