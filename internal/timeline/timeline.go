package timeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/ivlev/adreel/internal/motion"
)

// DefaultTransitionSeconds is the crossfade width between neighbouring scenes.
const DefaultTransitionSeconds = 0.25

var (
	ErrNoScenes    = errors.New("timeline has no scenes")
	ErrBadDuration = errors.New("scene duration must be > 0")
)

// Range is the composed frame window of one scene
type Range struct {
	Start    int `yaml:"start"`
	Duration int `yaml:"duration"`
}

// End is the first frame after the scene
func (r Range) End() int {
	return r.Start + r.Duration
}

func (r Range) Contains(frame int) bool {
	return frame >= r.Start && frame < r.End()
}

// Local converts an absolute frame into the scene's own frame counter
func (r Range) Local(frame int) int {
	return frame - r.Start
}

// MsToFrames converts milliseconds to whole frames, never less than one.
func MsToFrames(ms float64, fps int) int {
	n := int(motion.Round(ms * float64(fps) / 1000))
	if n < 1 {
		return 1
	}
	return n
}

// TransitionFrames converts a transition width in seconds to frames.
func TransitionFrames(seconds float64, fps int) int {
	n := int(motion.Round(seconds * float64(fps)))
	if n < 0 {
		return 0
	}
	return n
}

// Compose lays scenes out back to back with a crossfade of `transition`
// frames between neighbours. Every scene but the last is extended by the
// transition so it is still visible while the next one fades in.
func Compose(durationsMs []float64, fps, transition int) ([]Range, error) {
	if len(durationsMs) == 0 {
		return nil, ErrNoScenes
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be > 0, got %d", fps)
	}
	if transition < 0 {
		return nil, fmt.Errorf("transition must be >= 0, got %d", transition)
	}

	ranges := make([]Range, len(durationsMs))
	for i, ms := range durationsMs {
		if !(ms > 0) || math.IsInf(ms, 0) {
			return nil, fmt.Errorf("scene %d (%vms): %w", i, ms, ErrBadDuration)
		}

		base := MsToFrames(ms, fps)
		dur := base
		if i < len(durationsMs)-1 {
			dur += transition
		}

		start := 0
		if i > 0 {
			prev := ranges[i-1]
			// Сцена начинается на переходе предыдущей; не уходим в минус
			start = prev.Start + prev.Duration - transition
			if start < 0 {
				start = 0
			}
		}
		ranges[i] = Range{Start: start, Duration: dur}
	}

	return ranges, nil
}

// TotalFrames sums the base frames of all scenes.
// Composed ranges overlap, so their durations must not be summed instead.
func TotalFrames(durationsMs []float64, fps int) int {
	total := 0
	for _, ms := range durationsMs {
		total += MsToFrames(ms, fps)
	}
	return total
}

// Active returns the indexes of scenes visible at the absolute frame, in
// scene order. During a crossfade two scenes are active.
func Active(ranges []Range, frame int) []int {
	var out []int
	for i, r := range ranges {
		if r.Contains(frame) {
			out = append(out, i)
		}
	}
	return out
}

// Opacity is the compositing envelope of a scene at its local frame:
// a linear fade-in over the first `transition` frames and a fade-out over
// the last ones. Short scenes get a triangle.
func Opacity(local, duration, transition int) float64 {
	if transition <= 0 {
		return 1
	}
	f := float64(local)
	t := float64(transition)
	d := float64(duration)

	fadeIn := motion.Ramp(f, t, nil)
	fadeOut := motion.Interpolate(f, d-t, d, 1, 0, nil)
	return motion.Clamp01(math.Min(fadeIn, fadeOut))
}
