package director

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/assets"
	"github.com/ivlev/adreel/internal/audio"
	"github.com/ivlev/adreel/internal/layout"
	"github.com/ivlev/adreel/internal/scenes"
	"github.com/ivlev/adreel/internal/timeline"
)

const PlanVersion = "1.0"

// CueTags selects the boundary sound effect
var CueTags = []string{"transition"}

// AssetPicker supplies the optional background and boundary effects.
// *assets.Selector implements it.
type AssetPicker interface {
	PickBackground(ar string, tone assets.Tone) (assets.Item, error)
	PickSFX(tags []string, tone assets.Tone) (assets.Item, error)
}

// Director lays an enriched spec out on the frame axis
type Director struct {
	Width      int
	Height     int
	FPS        int
	Transition int // frames
	Assets     AssetPicker
}

// NewDirector creates a Director without an asset picker
func NewDirector(width, height, fps, transition int) *Director {
	return &Director{
		Width:      width,
		Height:     height,
		FPS:        fps,
		Transition: transition,
	}
}

// BuildPlan composes the timeline of spec and exports it as a Plan.
// The spec is expected to be enriched already; a missing brand falls back
// to the default palette.
func (d *Director) BuildPlan(spec adspec.AdSpec) (*Plan, error) {
	durations := spec.DurationsMs()
	ranges, err := timeline.Compose(durations, d.FPS, d.Transition)
	if err != nil {
		return nil, fmt.Errorf("compose timeline: %w", err)
	}

	aspect := layout.AspectOf(d.Width, d.Height)
	plan := &Plan{
		Version:     PlanVersion,
		ID:          uuid.NewString(),
		Created:     time.Now().UTC().Format(time.RFC3339),
		Canvas:      Canvas{Width: d.Width, Height: d.Height, Aspect: aspect},
		FPS:         d.FPS,
		Transition:  d.Transition,
		TotalFrames: timeline.TotalFrames(durations, d.FPS),
		Tone:        spec.Tone,
		Palette:     scenes.PaletteOf(spec.Brand),
		Scenes:      make([]ScenePlan, len(ranges)),
	}

	if spec.Brand != nil {
		plan.Font = layout.FontStack(spec.Brand.FontFamily)
		if spec.Brand.Logo != "" {
			plan.Logo = &Logo{Src: spec.Brand.Logo, Logo: layout.LogoPlacement(d.Width, d.Height)}
		}
	} else {
		plan.Font = layout.FontStack("")
	}

	for i, r := range ranges {
		plan.Scenes[i] = d.scenePlan(i, spec.Scenes[i].Kind(), r)
	}

	if spec.Audio != nil && spec.Audio.Music != "" {
		plan.Audio = &AudioPlan{
			Music:    spec.Audio.Music,
			Envelope: audio.NewEnvelope(durations, d.FPS, d.Transition, spec.Audio.Volume),
		}
	}

	if d.Assets == nil {
		return plan, nil
	}

	bg, err := d.Assets.PickBackground(string(aspect), spec.Tone)
	switch {
	case err == nil:
		plan.Background = bg.Src
	case !errors.Is(err, assets.ErrEmptyCategory):
		return nil, fmt.Errorf("pick background: %w", err)
	}

	// Звук на каждом стыке сцен, кроме первого кадра
	for _, r := range ranges[1:] {
		sfx, err := d.Assets.PickSFX(CueTags, spec.Tone)
		if errors.Is(err, assets.ErrEmptyCategory) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pick sfx: %w", err)
		}
		plan.Cues = append(plan.Cues, Cue{Frame: r.Start, Src: sfx.Src})
	}

	return plan, nil
}

// scenePlan records the crossfade edges of one range
func (d *Director) scenePlan(index int, kind adspec.Kind, r timeline.Range) ScenePlan {
	fade := min(d.Transition, r.Duration)
	return ScenePlan{
		Index:        index,
		Kind:         kind,
		Start:        r.Start,
		Duration:     r.Duration,
		End:          r.End(),
		FadeInEnd:    r.Start + fade,
		FadeOutStart: r.End() - fade,
	}
}
