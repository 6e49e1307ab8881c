package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/assets"
	"github.com/ivlev/adreel/internal/audio"
	"github.com/ivlev/adreel/internal/config"
	"github.com/ivlev/adreel/internal/director"
	"github.com/ivlev/adreel/internal/scenes"
	"github.com/ivlev/adreel/internal/system"
	"github.com/ivlev/adreel/internal/timeline"
)

var (
	ErrNegativeFrame     = errors.New("frame must be >= 0")
	ErrUnknownTransition = errors.New("unknown transition id")
)

// SceneFrame is the state of one visible scene at a frame
type SceneFrame struct {
	Index   int             `yaml:"index"`
	Kind    adspec.Kind     `yaml:"kind"`
	Local   int             `yaml:"local"`
	Opacity float64         `yaml:"opacity"`
	Overlay *scenes.Overlay `yaml:"overlay,omitempty"`
	Params  scenes.Params   `yaml:"params"`
}

// FrameState is everything a renderer needs to draw one frame
type FrameState struct {
	Frame  int            `yaml:"frame"`
	Volume float64        `yaml:"volume"`
	Logo   *director.Logo `yaml:"logo,omitempty"`
	Cues   []string       `yaml:"cues,omitempty"`
	Scenes []SceneFrame   `yaml:"scenes"`
}

// Project is an enriched spec laid out for one canvas and frame rate.
// After NewProject it is read-only and safe for concurrent Frame calls.
type Project struct {
	Config *config.Config
	Spec   adspec.AdSpec
	Plan   *director.Plan

	ranges   []timeline.Range
	envelope audio.Envelope
	animator *scenes.Animator
	overlays []*scenes.Overlay
	cues     map[int][]string
	log      *zap.Logger
}

// NewProject validates and enriches spec, then builds its plan. sel may be
// nil, in which case no assets are filled in or picked.
func NewProject(cfg *config.Config, spec adspec.AdSpec, sel *assets.Selector, log *zap.Logger) (*Project, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := adspec.Validate(spec).Err(); err != nil {
		return nil, err
	}

	transition, err := transitionFrames(cfg, sel)
	if err != nil {
		return nil, err
	}

	var picker adspec.Picker
	if sel != nil {
		picker = sel
	}
	enriched, err := adspec.Enrich(spec, picker)
	if err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}

	d := director.NewDirector(cfg.Width, cfg.Height, cfg.FPS, transition)
	if sel != nil {
		d.Assets = sel
	}
	plan, err := d.BuildPlan(enriched)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Config:   cfg,
		Spec:     enriched,
		Plan:     plan,
		ranges:   make([]timeline.Range, len(plan.Scenes)),
		animator: scenes.New(plan.Palette, language.Make(cfg.Locale)),
		overlays: make([]*scenes.Overlay, len(enriched.Scenes)),
		cues:     make(map[int][]string),
		log:      log,
	}

	for i, s := range plan.Scenes {
		p.ranges[i] = timeline.Range{Start: s.Start, Duration: s.Duration}
		if s.Duration-transition < transition {
			// Короткая сцена: переходы перекрываются, прозрачность идёт треугольником
			log.Warn("scene shorter than two transitions",
				zap.Int("scene", i), zap.Int("frames", s.Duration), zap.Int("transition", transition))
		}
	}

	if plan.Audio != nil {
		p.envelope = plan.Audio.Envelope
	} else {
		silent := 0.0
		p.envelope = audio.NewEnvelope(enriched.DurationsMs(), cfg.FPS, transition, &silent)
	}

	var brandPattern *adspec.Pattern
	if enriched.Brand != nil {
		brandPattern = enriched.Brand.Pattern
	}
	for i, sc := range enriched.Scenes {
		ov, err := scenes.ResolveOverlay(sc.ScenePattern(), brandPattern, plan.Palette.Accent)
		if err != nil {
			return nil, fmt.Errorf("scenes[%d].pattern: %w", i, err)
		}
		p.overlays[i] = ov
	}

	for _, c := range plan.Cues {
		p.cues[c.Frame] = append(p.cues[c.Frame], c.Src)
	}

	log.Info("project ready",
		zap.String("plan", plan.ID),
		zap.Int("scenes", len(plan.Scenes)),
		zap.Int("frames", plan.TotalFrames),
		zap.Int("transition", transition),
		zap.String("aspect", string(plan.Canvas.Aspect)),
	)
	return p, nil
}

// transitionFrames takes the crossfade width from the library entry named in
// the config, else from TransitionSeconds.
func transitionFrames(cfg *config.Config, sel *assets.Selector) (int, error) {
	if cfg.TransitionID == "" {
		return timeline.TransitionFrames(cfg.TransitionSeconds, cfg.FPS), nil
	}
	if sel == nil || sel.Library() == nil {
		return 0, fmt.Errorf("%w: %s (no library)", ErrUnknownTransition, cfg.TransitionID)
	}
	t, ok := sel.Library().Transition(cfg.TransitionID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTransition, cfg.TransitionID)
	}
	return timeline.TransitionFrames(float64(t.Ms)/1000, cfg.FPS), nil
}

// TotalFrames is the video length; the audio runs one transition longer.
func (p *Project) TotalFrames() int {
	return p.Plan.TotalFrames
}

// Envelope is the volume curve of the background track
func (p *Project) Envelope() audio.Envelope {
	return p.envelope
}

// Frame evaluates every scene visible at frame f. Frames past the end carry
// no scenes but still report the audio tail.
func (p *Project) Frame(f int) (FrameState, error) {
	if f < 0 {
		return FrameState{}, fmt.Errorf("%w: %d", ErrNegativeFrame, f)
	}

	state := FrameState{
		Frame:  f,
		Volume: p.envelope.At(float64(f)),
		Logo:   p.Plan.Logo,
		Cues:   p.cues[f],
		Scenes: []SceneFrame{},
	}

	for _, i := range timeline.Active(p.ranges, f) {
		r := p.ranges[i]
		sc := p.Spec.Scenes[i]
		local := r.Local(f)

		params, err := p.animator.Animate(sc, scenes.Frame{
			Local:  local,
			FPS:    p.Config.FPS,
			Width:  p.Config.Width,
			Height: p.Config.Height,
		})
		if err != nil {
			return FrameState{}, fmt.Errorf("frame %d, scene %d: %w", f, i, err)
		}

		state.Scenes = append(state.Scenes, SceneFrame{
			Index:   i,
			Kind:    sc.Kind(),
			Local:   local,
			Opacity: timeline.Opacity(local, r.Duration, p.Plan.Transition),
			Overlay: p.overlays[i],
			Params:  params,
		})
	}

	return state, nil
}

// Sample evaluates frames in parallel, bounded by the configured worker
// count. The result is in input order and equals sequential evaluation.
func (p *Project) Sample(ctx context.Context, frames []int) ([]FrameState, error) {
	start := time.Now()
	out := make([]FrameState, len(frames))

	workers := system.WorkerCount(p.Config.Workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range frames {
		if gctx.Err() != nil {
			break
		}
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			state, err := p.Frame(f)
			if err != nil {
				return err
			}
			out[i] = state
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.log.Debug("frames sampled",
		zap.Int("count", len(frames)),
		zap.Int("workers", workers),
		zap.Duration("took", time.Since(start)),
	)
	return out, nil
}

// Frames lists every frame of the video, stepping by every (min 1)
func (p *Project) Frames(every int) []int {
	if every < 1 {
		every = 1
	}
	var frames []int
	for f := 0; f < p.Plan.TotalFrames; f += every {
		frames = append(frames, f)
	}
	return frames
}
