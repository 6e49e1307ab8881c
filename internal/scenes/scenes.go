package scenes

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/motion"
	"github.com/ivlev/adreel/internal/palette"
)

var ErrUnknownScene = errors.New("unknown scene type")

// Frame is the evaluation point of an animator: the scene-local frame
// plus the output format.
type Frame struct {
	Local  int
	FPS    int
	Width  int
	Height int
}

// seconds converts a duration in seconds to frames at the frame's rate
func (f Frame) seconds(s float64) float64 {
	return motion.Round(s * float64(f.FPS))
}

// Palette holds the enriched brand colors a scene is painted with.
type Palette struct {
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
}

// PaletteOf takes the colors of an enriched brand.
func PaletteOf(b *adspec.Brand) Palette {
	if b == nil {
		return Palette{Text: adspec.DefaultPrimary, Accent: adspec.DefaultSecondary, Background: adspec.DefaultBackground}
	}
	return Palette{Text: b.Primary, Accent: b.Secondary, Background: b.Background}
}

// readable keeps color (or the palette text when empty) if it reads on the background.
func (p Palette) readable(color string) (string, error) {
	if color == "" {
		color = p.Text
	}
	return palette.EnsureReadable(color, p.Background, palette.TextContrast)
}

// Params is the per-frame output of an animator. The concrete type
// depends on the scene kind.
type Params interface {
	Kind() adspec.Kind
}

// Text is one animated text element
type Text struct {
	Text     string  `yaml:"text"`
	Opacity  float64 `yaml:"opacity"`
	OffsetY  float64 `yaml:"offsetY,omitempty"`
	FontSize float64 `yaml:"fontSize"`
	Color    string  `yaml:"color,omitempty"`
}

// Animator evaluates scenes. It is safe for concurrent use; the only state
// is a cache of QR matrices keyed by URL.
type Animator struct {
	palette Palette
	printer *message.Printer
	qr      sync.Map
}

// New creates an animator for the palette. Numbers are grouped per lang.
func New(p Palette, lang language.Tag) *Animator {
	return &Animator{palette: p, printer: message.NewPrinter(lang)}
}

// Animate evaluates one scene at one frame.
func Animate(sc adspec.Scene, f Frame, p Palette) (Params, error) {
	return New(p, language.English).Animate(sc, f)
}

func (a *Animator) Animate(sc adspec.Scene, f Frame) (Params, error) {
	switch s := sc.(type) {
	case adspec.Title:
		return animateTitle(s, f, a.palette), nil
	case adspec.HeroText:
		return animateHeroText(s, f, a.palette), nil
	case adspec.IconList:
		return animateIconList(s, f, a.palette)
	case adspec.StatCounter:
		return a.animateStatCounter(s, f)
	case adspec.SplitFeature:
		return animateSplitFeature(s, f, a.palette)
	case adspec.Testimonial:
		return animateTestimonial(s, f, a.palette)
	case adspec.Carousel:
		return animateCarousel(s, f, a.palette)
	case adspec.CTA:
		return animateCTA(s, f, a.palette)
	case adspec.CTAOutro:
		return a.animateCTAOutro(s, f)
	case nil:
		return nil, fmt.Errorf("%w: nil scene", ErrUnknownScene)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownScene, sc)
	}
}

// delayed shifts a local frame by a stagger delay, never below zero
func delayed(local, delay int) float64 {
	if local < delay {
		return 0
	}
	return float64(local - delay)
}
