package engine

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/ivlev/adreel/internal/adspec"
	"github.com/ivlev/adreel/internal/assets"
	"github.com/ivlev/adreel/internal/config"
)

func testSpec() adspec.AdSpec {
	return adspec.AdSpec{
		Brand: &adspec.Brand{
			Primary:    "#FFFFFF",
			Secondary:  "#00E0FF",
			Background: "#0F0F0F",
			Logo:       "logo.png",
			Pattern:    &adspec.Pattern{Type: adspec.PatternDots},
		},
		Scenes: adspec.SceneList{
			adspec.Title{Base: adspec.Base{Duration: 1000}, Text: "Hello"},
			adspec.CTA{Base: adspec.Base{Duration: 2000}, Headline: "Try it", Button: "Go"},
			adspec.CTAOutro{Base: adspec.Base{Duration: 500}, URL: "example.com"},
		},
	}
}

func testSelector(t *testing.T) *assets.Selector {
	t.Helper()
	lib, err := assets.LoadLibrary("../assets/testdata/library.yaml")
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	return assets.NewSelector(lib, rand.NewSource(1))
}

func newProject(t *testing.T, cfg *config.Config, sel *assets.Selector) *Project {
	t.Helper()
	p, err := NewProject(cfg, testSpec(), sel, zap.NewNop())
	if err != nil {
		t.Fatalf("NewProject failed: %v", err)
	}
	return p
}

func TestNewProjectRejectsInvalid(t *testing.T) {
	spec := testSpec()
	spec.Brand = nil
	if _, err := NewProject(config.Default(), spec, nil, zap.NewNop()); !errors.Is(err, adspec.ErrInvalidSpec) {
		t.Errorf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestFrameStates(t *testing.T) {
	p := newProject(t, config.Default(), nil)

	if p.TotalFrames() != 105 {
		t.Fatalf("total frames = %d, want 105", p.TotalFrames())
	}

	tests := []struct {
		frame   int
		kinds   []adspec.Kind
		opacity []float64
	}{
		{0, []adspec.Kind{adspec.KindTitle}, []float64{0}},
		{8, []adspec.Kind{adspec.KindTitle}, []float64{1}},
		{34, []adspec.Kind{adspec.KindTitle, adspec.KindCTA}, []float64{0.5, 0.5}},
		{60, []adspec.Kind{adspec.KindCTA}, []float64{1}},
		{94, []adspec.Kind{adspec.KindCTA, adspec.KindCTAOutro}, []float64{0.5, 0.5}},
		{104, []adspec.Kind{adspec.KindCTAOutro}, []float64{0.125}},
		{105, nil, nil},
	}

	for _, tt := range tests {
		state, err := p.Frame(tt.frame)
		if err != nil {
			t.Fatalf("Frame(%d) failed: %v", tt.frame, err)
		}
		if len(state.Scenes) != len(tt.kinds) {
			t.Errorf("frame %d: %d scenes, want %d", tt.frame, len(state.Scenes), len(tt.kinds))
			continue
		}
		for i, sf := range state.Scenes {
			if sf.Kind != tt.kinds[i] {
				t.Errorf("frame %d scene %d: kind %s, want %s", tt.frame, i, sf.Kind, tt.kinds[i])
			}
			if math.Abs(sf.Opacity-tt.opacity[i]) > 1e-9 {
				t.Errorf("frame %d scene %d: opacity %v, want %v", tt.frame, i, sf.Opacity, tt.opacity[i])
			}
			if sf.Params == nil || sf.Params.Kind() != sf.Kind {
				t.Errorf("frame %d scene %d: params %#v", tt.frame, i, sf.Params)
			}
			if sf.Overlay == nil || sf.Overlay.Type != adspec.PatternDots {
				t.Errorf("frame %d scene %d: brand overlay missing", tt.frame, i)
			}
		}
		if state.Volume != 0 {
			t.Errorf("frame %d: volume %v without music", tt.frame, state.Volume)
		}
		if state.Logo == nil || state.Logo.Src != "logo.png" {
			t.Errorf("frame %d: logo %+v", tt.frame, state.Logo)
		}
	}

	if _, err := p.Frame(-1); !errors.Is(err, ErrNegativeFrame) {
		t.Errorf("expected ErrNegativeFrame, got %v", err)
	}
}

func TestProjectWithSelector(t *testing.T) {
	p := newProject(t, config.Default(), testSelector(t))

	if p.Spec.Audio == nil || p.Spec.Audio.Music == "" {
		t.Fatalf("music was not picked: %+v", p.Spec.Audio)
	}
	if p.Plan.Background != "backgrounds/soft-9x16.jpg" {
		t.Errorf("background = %q", p.Plan.Background)
	}

	env := p.Envelope()
	if env.Total != 113 || env.Volume != adspec.DefaultVolume {
		t.Errorf("envelope = %+v", env)
	}

	mid, err := p.Frame(50)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mid.Volume-adspec.DefaultVolume) > 1e-9 {
		t.Errorf("mid volume = %v, want %v", mid.Volume, adspec.DefaultVolume)
	}

	boundary, err := p.Frame(30)
	if err != nil {
		t.Fatal(err)
	}
	if len(boundary.Cues) != 1 || boundary.Cues[0] != "sfx/whoosh-soft.wav" {
		t.Errorf("cues at scene boundary = %v", boundary.Cues)
	}

	tail, err := p.Frame(110)
	if err != nil {
		t.Fatal(err)
	}
	if len(tail.Scenes) != 0 || tail.Volume <= 0 || tail.Volume >= 1 {
		t.Errorf("audio tail frame = %+v", tail)
	}
}

func TestTransitionFromLibrary(t *testing.T) {
	cfg := config.Default()
	cfg.FPS = 60
	cfg.TransitionID = "xfade-250"
	p := newProject(t, cfg, testSelector(t))
	if p.Plan.Transition != 15 {
		t.Errorf("transition = %d, want 15", p.Plan.Transition)
	}

	cfg.TransitionID = "wipe-900"
	if _, err := NewProject(cfg, testSpec(), testSelector(t), nil); !errors.Is(err, ErrUnknownTransition) {
		t.Errorf("expected ErrUnknownTransition, got %v", err)
	}
	cfg.TransitionID = "xfade-250"
	if _, err := NewProject(cfg, testSpec(), nil, nil); !errors.Is(err, ErrUnknownTransition) {
		t.Errorf("expected ErrUnknownTransition without a library, got %v", err)
	}
}

func TestSampleMatchesSequential(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 4
	p := newProject(t, cfg, testSelector(t))

	frames := p.Frames(1)
	if len(frames) != p.TotalFrames() {
		t.Fatalf("Frames(1) = %d frames", len(frames))
	}

	got, err := p.Sample(context.Background(), frames)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	for i, f := range frames {
		want, err := p.Frame(f)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got[i], want) {
			t.Errorf("frame %d differs from sequential evaluation", f)
		}
	}
}

func TestSampleErrors(t *testing.T) {
	p := newProject(t, config.Default(), nil)

	if _, err := p.Sample(context.Background(), []int{0, 5, -3}); !errors.Is(err, ErrNegativeFrame) {
		t.Errorf("expected ErrNegativeFrame, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Sample(ctx, p.Frames(10)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFramesStep(t *testing.T) {
	p := newProject(t, config.Default(), nil)
	frames := p.Frames(50)
	want := []int{0, 50, 100}
	if !reflect.DeepEqual(frames, want) {
		t.Errorf("Frames(50) = %v, want %v", frames, want)
	}
	if len(p.Frames(0)) != 105 {
		t.Errorf("Frames(0) should step by one")
	}
}
