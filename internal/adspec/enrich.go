package adspec

import (
	"fmt"

	"github.com/ivlev/adreel/internal/assets"
	"github.com/ivlev/adreel/internal/palette"
)

const (
	DefaultBackground = "#000000"
	DefaultPrimary    = "#ffffff"
	DefaultSecondary  = "#00E0FF"
	DefaultVolume     = 0.55
	DefaultTone       = assets.Calm
)

// Picker supplies fallback assets. *assets.Selector implements it.
type Picker interface {
	PickMusic(tone assets.Tone) (assets.Item, error)
	PickIcon(tags []string, tone assets.Tone) (assets.Item, error)
}

// Enrich returns a copy of spec with contrast-safe brand colors, a music
// track and icons for icon-list items that have none. The input is not
// modified. A nil picker leaves missing assets empty.
//
// Enrich is idempotent: colors that already pass keep their value and
// present assets are never replaced.
func Enrich(spec AdSpec, picker Picker) (AdSpec, error) {
	out := spec.Clone()

	if out.Tone == "" {
		out.Tone = DefaultTone
	}

	if out.Brand == nil {
		out.Brand = &Brand{}
	}
	b := out.Brand
	if b.Background == "" {
		b.Background = DefaultBackground
	}

	primary, err := palette.EnsureReadable(orDefault(b.Primary, DefaultPrimary), b.Background, palette.TextContrast)
	if err != nil {
		return AdSpec{}, fmt.Errorf("brand.primary: %w", err)
	}
	secondary, err := palette.EnsureReadable(orDefault(b.Secondary, DefaultSecondary), b.Background, palette.AccentContrast)
	if err != nil {
		return AdSpec{}, fmt.Errorf("brand.secondary: %w", err)
	}
	b.Primary, b.Secondary = primary, secondary

	if picker == nil {
		return out, nil
	}

	if out.Audio == nil || out.Audio.Music == "" {
		track, err := picker.PickMusic(out.Tone)
		if err != nil {
			return AdSpec{}, fmt.Errorf("audio.music: %w", err)
		}
		vol := DefaultVolume
		out.Audio = &AudioSpec{Music: track.Src, Volume: &vol}
	}

	for i, sc := range out.Scenes {
		list, ok := sc.(IconList)
		if !ok {
			continue
		}
		for j := range list.Items {
			if list.Items[j].Icon != "" {
				continue
			}
			icon, err := picker.PickIcon(list.Items[j].Tags, out.Tone)
			if err != nil {
				return AdSpec{}, fmt.Errorf("scenes[%d].items[%d].icon: %w", i, j, err)
			}
			list.Items[j].Icon = icon.Src
		}
		out.Scenes[i] = list
	}

	return out, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Clone makes a deep copy; scenes share no slices or pointers with the source.
func (s AdSpec) Clone() AdSpec {
	out := s
	if s.Brand != nil {
		b := *s.Brand
		b.Pattern = s.Brand.Pattern.clone()
		out.Brand = &b
	}
	if s.Audio != nil {
		a := *s.Audio
		a.Volume = cloneFloat(s.Audio.Volume)
		out.Audio = &a
	}
	if s.Scenes != nil {
		out.Scenes = make(SceneList, len(s.Scenes))
		for i, sc := range s.Scenes {
			out.Scenes[i] = cloneScene(sc)
		}
	}
	return out
}

func (p *Pattern) clone() *Pattern {
	if p == nil {
		return nil
	}
	c := *p
	c.Opacity = cloneFloat(p.Opacity)
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneScene(sc Scene) Scene {
	switch s := sc.(type) {
	case Title:
		s.Base = s.Base.clone()
		return s
	case HeroText:
		s.Base = s.Base.clone()
		return s
	case IconList:
		s.Base = s.Base.clone()
		if s.Items != nil {
			items := make([]IconItem, len(s.Items))
			for i, it := range s.Items {
				it.Tags = append([]string(nil), it.Tags...)
				items[i] = it
			}
			s.Items = items
		}
		return s
	case StatCounter:
		s.Base = s.Base.clone()
		s.Items = append([]StatItem(nil), s.Items...)
		return s
	case SplitFeature:
		s.Base = s.Base.clone()
		if s.Media != nil {
			m := *s.Media
			s.Media = &m
		}
		return s
	case Testimonial:
		s.Base = s.Base.clone()
		return s
	case Carousel:
		s.Base = s.Base.clone()
		s.Images = append([]string(nil), s.Images...)
		return s
	case CTA:
		s.Base = s.Base.clone()
		return s
	case CTAOutro:
		s.Base = s.Base.clone()
		return s
	}
	return sc
}

func (b Base) clone() Base {
	b.Pattern = b.Pattern.clone()
	return b
}
