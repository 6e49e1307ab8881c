package scenes

import (
	"math"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/layout"
	"github.com/ivlev/adreel/internal/motion"
)

// Carousel sizing, tuned against the three canvas presets.
const (
	CarouselMinCard          = 240
	CarouselMaxCardLandscape = 560
	CarouselMaxCardPortrait  = 440
	CarouselGapLandscape     = 22
	CarouselGapPortrait      = 18
	CarouselCardFrac         = 0.38
	CarouselCardFracPortrait = 0.42
	CarouselCardAspect       = 0.62
	CarouselPadFrac          = 0.08
	CarouselPadRightExtra    = 40
	CarouselMinOverflow      = 1.18
	CarouselEndMargin        = 40
	CarouselScrollLandscape  = 3.0
	CarouselScrollPortrait   = 2.0
	CarouselCardRadius       = 16
)

// Track is the sized carousel strip for a canvas
type Track struct {
	Landscape     bool    `yaml:"landscape"`
	PadLeft       int     `yaml:"padLeft"`
	PadRight      int     `yaml:"padRight"`
	Visible       int     `yaml:"visible"`
	Gap           int     `yaml:"gap"`
	MaxCard       int     `yaml:"maxCard"`
	CardWidth     int     `yaml:"cardWidth"`
	CardHeight    int     `yaml:"cardHeight"`
	Width         int     `yaml:"width"`
	EndShift      int     `yaml:"endShift"`
	ScrollSeconds float64 `yaml:"scrollSeconds"`
}

// SizeTrack picks the card width for n cards. When the cards would fit the
// viewport they are widened so the strip overflows by at least 18% and
// visibly moves, up to the max card width.
func SizeTrack(n, width, height int) Track {
	landscape := layout.IsLandscape(width, height)

	t := Track{
		Landscape:     landscape,
		PadLeft:       int(motion.Round(float64(width) * CarouselPadFrac)),
		Gap:           CarouselGapPortrait,
		MaxCard:       CarouselMaxCardPortrait,
		ScrollSeconds: CarouselScrollPortrait,
	}
	frac := CarouselCardFracPortrait
	if landscape {
		t.Gap = CarouselGapLandscape
		t.MaxCard = CarouselMaxCardLandscape
		t.ScrollSeconds = CarouselScrollLandscape
		frac = CarouselCardFrac
	}
	t.PadRight = t.PadLeft + CarouselPadRightExtra
	t.Visible = max(0, width-t.PadLeft-t.PadRight)

	card := int(math.Floor(float64(t.Visible) * frac))
	card = min(t.MaxCard, max(CarouselMinCard, card))

	if n < 1 {
		t.CardWidth = card
		t.CardHeight = int(motion.Round(float64(card) * CarouselCardAspect))
		return t
	}

	track := n*card + (n-1)*t.Gap
	if track <= t.Visible {
		target := float64(t.Visible) * CarouselMinOverflow
		candidate := int(math.Floor((target - float64((n-1)*t.Gap)) / float64(n)))
		card = min(t.MaxCard, max(card, candidate))
		track = n*card + (n-1)*t.Gap
	}

	t.CardWidth = card
	t.CardHeight = int(motion.Round(float64(card) * CarouselCardAspect))
	t.Width = track
	t.EndShift = max(0, track-t.Visible+CarouselEndMargin)
	return t
}

// Offset is the horizontal translation of the strip at a local frame,
// from 0 to -EndShift with ease-in-out.
func (t Track) Offset(local, fps int) float64 {
	total := math.Max(1, motion.Round(t.ScrollSeconds*float64(fps)))
	progress := math.Min(1, float64(max(0, local))/total)
	x := -motion.Round(motion.EaseInOutCubic(progress) * float64(t.EndShift))
	if x == 0 {
		return 0
	}
	return x
}

type CarouselParams struct {
	Title *Text `yaml:"title,omitempty"`
	// TopPad is a percentage of the canvas width, TopPadPx the same in pixels
	TopPad   float64  `yaml:"topPad"`
	TopPadPx int      `yaml:"topPadPx"`
	Track    Track    `yaml:"track"`
	OffsetX  float64  `yaml:"offsetX"`
	Images   []string `yaml:"images"`
	Radius   float64  `yaml:"radius"`
}

func (CarouselParams) Kind() adspec.Kind { return adspec.KindCarousel }

func animateCarousel(s adspec.Carousel, f Frame, p Palette) (CarouselParams, error) {
	color, err := p.readable(p.Text)
	if err != nil {
		return CarouselParams{}, err
	}
	track := SizeTrack(len(s.Images), f.Width, f.Height)

	out := CarouselParams{
		TopPad:  18,
		Track:   track,
		OffsetX: track.Offset(f.Local, f.FPS),
		Images:  s.Images,
		Radius:  CarouselCardRadius,
	}
	if track.Landscape {
		out.TopPad = 9
	}
	out.TopPadPx = layout.Percent(f.Width, out.TopPad)
	if s.Title != "" {
		out.Title = &Text{Text: s.Title, Opacity: 1, FontSize: layout.ScaleByWidth(f.Width, 0.055, 22, 52), Color: color}
	}
	return out, nil
}
