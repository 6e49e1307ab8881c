package scenes

import (
	"fmt"
	"math"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/layout"
	"github.com/ivlev/adreel/internal/motion"
	"github.com/ivlev/adreel/internal/palette"
)

// CTA timings are in raw frames, not seconds: the headline snaps in over
// CTASnapFrames at any frame rate.
const (
	CTASnapFrames     = 12
	CTAPulseAmplitude = 0.02
	CTAPulseDivisor   = 6
)

type Button struct {
	Text      string  `yaml:"text"`
	Opacity   float64 `yaml:"opacity"`
	Scale     float64 `yaml:"scale"`
	Color     string  `yaml:"color"`
	TextColor string  `yaml:"textColor"`
	PaddingY  float64 `yaml:"paddingY"`
	PaddingX  float64 `yaml:"paddingX"`
	Radius    float64 `yaml:"radius"`
}

type CTAParams struct {
	Headline Text   `yaml:"headline"`
	Button   Button `yaml:"button"`
}

func (CTAParams) Kind() adspec.Kind { return adspec.KindCTA }

// Pulse is the button scale; it never settles while the scene is on screen.
func Pulse(local int) float64 {
	return 1 + CTAPulseAmplitude*math.Sin(float64(local)/CTAPulseDivisor)
}

func animateCTA(s adspec.CTA, f Frame, p Palette) (CTAParams, error) {
	onAccent, err := palette.ReadableTextOn(p.Accent)
	if err != nil {
		return CTAParams{}, fmt.Errorf("accent: %w", err)
	}
	opacity := motion.Ramp(float64(f.Local), CTASnapFrames, nil)

	return CTAParams{
		Headline: Text{
			Text:     s.Headline,
			Opacity:  opacity,
			FontSize: layout.ScaleByWidth(f.Width, 0.065, 24, 64),
			Color:    p.Text,
		},
		Button: Button{
			Text:      s.Button,
			Opacity:   opacity,
			Scale:     Pulse(f.Local),
			Color:     p.Accent,
			TextColor: onAccent,
			PaddingY:  16,
			PaddingX:  28,
			Radius:    12,
		},
	}, nil
}

// QR is a scannable module matrix, quiet zone included. true is a dark module.
type QR struct {
	Content string   `yaml:"content"`
	Size    int      `yaml:"size"`
	Modules [][]bool `yaml:"-"`
}

type CTAOutroParams struct {
	Opacity   float64 `yaml:"opacity"`
	LogoWidth float64 `yaml:"logoWidth"`
	URL       *Text   `yaml:"url,omitempty"`
	QR        *QR     `yaml:"qr,omitempty"`
}

func (CTAOutroParams) Kind() adspec.Kind { return adspec.KindCTAOutro }

// EncodeQR builds the QR matrix for content with medium error recovery.
func EncodeQR(content string) (*QR, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	bitmap := code.Bitmap()
	return &QR{Content: content, Size: len(bitmap), Modules: bitmap}, nil
}

func (a *Animator) qrFor(url string) (*QR, error) {
	if v, ok := a.qr.Load(url); ok {
		return v.(*QR), nil
	}
	q, err := EncodeQR(url)
	if err != nil {
		return nil, err
	}
	v, _ := a.qr.LoadOrStore(url, q)
	return v.(*QR), nil
}

func (a *Animator) animateCTAOutro(s adspec.CTAOutro, f Frame) (CTAOutroParams, error) {
	p := a.palette
	out := CTAOutroParams{
		Opacity:   motion.Ramp(float64(f.Local), f.seconds(0.25), nil),
		LogoWidth: math.Min(260, float64(f.Width)*0.28),
	}
	if s.URL == "" {
		return out, nil
	}

	color, err := p.readable(p.Text)
	if err != nil {
		return CTAOutroParams{}, err
	}
	out.URL = &Text{Text: s.URL, Opacity: 1, FontSize: layout.ScaleByWidth(f.Width, 0.04, 18, 40), Color: color}

	out.QR, err = a.qrFor(s.URL)
	if err != nil {
		return CTAOutroParams{}, fmt.Errorf("qr %q: %w", s.URL, err)
	}
	return out, nil
}
