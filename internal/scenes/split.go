package scenes

import (
	"strings"
	"unicode/utf8"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/layout"
	"github.com/ivlev/adreel/internal/motion"
)

// StackWidth is the canvas width below which two-region scenes stack vertically.
const StackWidth = 900

// Box describes the two-region grid of split scenes. Padding is in percent
// of the canvas.
type Box struct {
	Stacked  bool      `yaml:"stacked"`
	Columns  []float64 `yaml:"columns"`
	Gap      float64   `yaml:"gap"`
	PaddingY float64   `yaml:"paddingY"`
	PaddingX float64   `yaml:"paddingX"`
}

type SplitFeatureParams struct {
	Box           Box           `yaml:"box"`
	Opacity       float64       `yaml:"opacity"`
	Title         Text          `yaml:"title"`
	Body          *Text         `yaml:"body,omitempty"`
	Media         *adspec.Media `yaml:"media,omitempty"`
	MediaMaxWidth float64       `yaml:"mediaMaxWidth"`
	MediaRadius   float64       `yaml:"mediaRadius"`
}

func (SplitFeatureParams) Kind() adspec.Kind { return adspec.KindSplitFeature }

func animateSplitFeature(s adspec.SplitFeature, f Frame, p Palette) (SplitFeatureParams, error) {
	color, err := p.readable(p.Text)
	if err != nil {
		return SplitFeatureParams{}, err
	}
	stacked := f.Width < StackWidth
	opacity := motion.Ramp(float64(f.Local), f.seconds(0.35), nil)

	out := SplitFeatureParams{
		Box:           Box{Stacked: true, Columns: []float64{1}, Gap: 24, PaddingY: 7, PaddingX: 6},
		Opacity:       opacity,
		Title:         Text{Text: s.Title, Opacity: 1, FontSize: layout.ScaleByWidth(f.Width, 0.06, 22, 56), Color: color},
		MediaMaxWidth: 520,
		MediaRadius:   16,
	}
	if !stacked {
		out.Box = Box{Columns: []float64{1.1, 1}, Gap: 40, PaddingY: 8, PaddingX: 7}
		out.MediaMaxWidth = 600
	}
	if s.Body != "" {
		out.Body = &Text{Text: s.Body, Opacity: 0.9, FontSize: layout.ScaleByWidth(f.Width, 0.028, 14, 26), Color: color}
	}
	if s.Media != nil && s.Media.Src != "" {
		m := *s.Media
		out.Media = &m
	}
	return out, nil
}

type TestimonialParams struct {
	Box             Box     `yaml:"box"`
	Opacity         float64 `yaml:"opacity"`
	AvatarSize      float64 `yaml:"avatarSize"`
	Avatar          string  `yaml:"avatar,omitempty"`
	Initial         string  `yaml:"initial,omitempty"`
	InitialFontSize float64 `yaml:"initialFontSize,omitempty"`
	Quote           Text    `yaml:"quote"`
	Name            Text    `yaml:"name"`
}

func (TestimonialParams) Kind() adspec.Kind { return adspec.KindTestimonial }

// Initial is the avatar placeholder: the first letter of the name, upper-cased.
func Initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "A"
	}
	return strings.ToUpper(string(r))
}

func animateTestimonial(s adspec.Testimonial, f Frame, p Palette) (TestimonialParams, error) {
	color, err := p.readable(p.Text)
	if err != nil {
		return TestimonialParams{}, err
	}
	stacked := f.Width < StackWidth

	out := TestimonialParams{
		Box:        Box{Stacked: true, Columns: []float64{1}, Gap: 24, PaddingY: 8, PaddingX: 7},
		Opacity:    motion.Ramp(float64(f.Local), f.seconds(0.35), nil),
		AvatarSize: 140,
		Quote: Text{
			Text:     "“" + s.Quote + "”",
			Opacity:  1,
			FontSize: layout.ScaleByWidth(f.Width, 0.05, 20, 44),
			Color:    color,
		},
		Name: Text{
			Text:     s.Name,
			Opacity:  0.9,
			FontSize: layout.ScaleByWidth(f.Width, 0.028, 14, 24),
			Color:    color,
		},
	}
	if !stacked {
		out.Box = Box{Columns: []float64{0.9, 1.1}, Gap: 40, PaddingY: 8, PaddingX: 10}
		out.AvatarSize = 180
	}
	if s.Role != "" {
		out.Name.Text += " · " + s.Role
	}

	if s.Avatar != "" {
		out.Avatar = s.Avatar
	} else {
		out.Initial = Initial(s.Name)
		out.InitialFontSize = 40
		if !stacked {
			out.InitialFontSize = 52
		}
	}
	return out, nil
}
