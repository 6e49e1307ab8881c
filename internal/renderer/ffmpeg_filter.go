package renderer

import (
	"fmt"
	"strings"

	"github.com/ivlev/adreel/internal/audio"
	"github.com/ivlev/adreel/internal/director"
)

// XfadeFilter creates the FFmpeg filter_complex that stitches one clip per
// scene ([0:v], [1:v], ...) into [vout] with the plan's crossfades. Clip i
// is expected to last plan.Scenes[i].Duration frames.
func XfadeFilter(plan *director.Plan) string {
	n := len(plan.Scenes)
	if n == 0 || plan.FPS <= 0 {
		return ""
	}
	if n == 1 {
		return "[0:v]null[vout]"
	}

	// Без перехода xfade не работает, склеиваем встык
	if plan.Transition <= 0 {
		var b strings.Builder
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "[%d:v]", i)
		}
		fmt.Fprintf(&b, "concat=n=%d:v=1:a=0[vout]", n)
		return b.String()
	}

	duration := seconds(plan.Transition, plan.FPS)
	parts := make([]string, 0, n-1)
	prev := "[0:v]"
	for i := 1; i < n; i++ {
		out := fmt.Sprintf("[x%d]", i)
		if i == n-1 {
			out = "[vout]"
		}
		// offset is measured on the stitched output, which is the plan's frame axis
		parts = append(parts, fmt.Sprintf("%s[%d:v]xfade=transition=fade:duration=%.6f:offset=%.6f%s",
			prev, i, duration, seconds(plan.Scenes[i].Start, plan.FPS), out))
		prev = out
	}
	return strings.Join(parts, ";")
}

// VolumeFilter creates the audio filter that trims the track to the envelope
// and applies its fades as a per-frame volume expression.
func VolumeFilter(env audio.Envelope, fps int) string {
	if fps <= 0 {
		return ""
	}
	return fmt.Sprintf("atrim=end=%.6f,volume='%s':eval=frame",
		seconds(env.Total, fps), buildVolumeExpression(env, fps))
}

// buildVolumeExpression mirrors Envelope.At in FFmpeg's expression syntax (t in seconds)
func buildVolumeExpression(env audio.Envelope, fps int) string {
	fadeIn := fmt.Sprintf("%.6f", env.Volume)
	if env.Intro > 0 {
		intro := seconds(env.Intro, fps)
		fadeIn = fmt.Sprintf("if(lte(t,%.6f),%.6f*t/%.6f,%.6f)", intro, env.Volume, intro, env.Volume)
	}

	fadeOut := "1"
	if env.Outro > 0 {
		from := seconds(env.Total-env.Outro, fps)
		outro := seconds(env.Outro, fps)
		fadeOut = fmt.Sprintf("if(gte(t,%.6f),1-(t-%.6f)/%.6f,1)", from, from, outro)
	}

	return fmt.Sprintf("max(0,min(%s,%s))", fadeIn, fadeOut)
}

func seconds(frames, fps int) float64 {
	return float64(frames) / float64(fps)
}
