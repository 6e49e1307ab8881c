package scenes

import (
	"math"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/layout"
	"github.com/ivlev/adreel/internal/motion"
)

type TitleParams struct {
	Headline Text    `yaml:"headline"`
	Scale    float64 `yaml:"scale"`
	Subtext  *Text   `yaml:"subtext,omitempty"`
}

func (TitleParams) Kind() adspec.Kind { return adspec.KindTitle }

var titleEase = motion.InOut(motion.Ease)

// Заголовок "выпрыгивает": масштаб 0.92 -> 1.06 с упругим замедлением
func animateTitle(s adspec.Title, f Frame, p Palette) TitleParams {
	local := float64(f.Local)
	opacity := motion.Ramp(local, f.seconds(0.3), titleEase)
	scale := motion.Interpolate(local, 0, f.seconds(0.6), 0.92, 1.06, motion.Elastic(1))

	out := TitleParams{
		Headline: Text{
			Text:     s.Text,
			Opacity:  opacity,
			FontSize: layout.ScaleByWidth(f.Width, 0.09, 28, 84),
			Color:    p.Text,
		},
		Scale: scale,
	}
	if s.Subtext != "" {
		out.Subtext = &Text{
			Text:     s.Subtext,
			Opacity:  math.Min(1, opacity+0.2),
			FontSize: layout.ScaleByWidth(f.Width, 0.04, 16, 34),
			Color:    p.Text,
		}
	}
	return out
}

type HeroTextParams struct {
	Headline    Text  `yaml:"headline"`
	Subheadline *Text `yaml:"subheadline,omitempty"`
}

func (HeroTextParams) Kind() adspec.Kind { return adspec.KindHeroText }

func animateHeroText(s adspec.HeroText, f Frame, p Palette) HeroTextParams {
	local := float64(f.Local)
	ramp := f.seconds(0.35)

	out := HeroTextParams{
		Headline: Text{
			Text:     s.Headline,
			Opacity:  motion.Ramp(local, ramp, nil),
			OffsetY:  motion.Interpolate(local, 0, ramp, 24, 0, motion.EaseOutCubic),
			FontSize: layout.ScaleByWidth(f.Width, 0.10, 30, 96),
			Color:    p.Text,
		},
	}

	if s.Subheadline != "" {
		sub := delayed(f.Local, int(f.seconds(0.18)))
		subRamp := f.seconds(0.3)
		out.Subheadline = &Text{
			Text:     s.Subheadline,
			Opacity:  motion.Ramp(sub, subRamp, nil),
			OffsetY:  motion.Interpolate(sub, 0, subRamp, 18, 0, motion.EaseOutCubic),
			FontSize: layout.ScaleByWidth(f.Width, 0.045, 16, 40),
			Color:    p.Text,
		}
	}
	return out
}
