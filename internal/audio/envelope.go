package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/ivlev/adreel/internal/motion"
	"github.com/ivlev/adreel/internal/timeline"
)

const (
	IntroSeconds = 0.20
	OutroSeconds = 0.22
	// DefaultVolume applies when the spec names a track but no volume
	DefaultVolume = 0.6
)

// Envelope is the volume curve of the background track over the whole ad.
// Frames are absolute.
type Envelope struct {
	Total  int     `yaml:"total"`
	Intro  int     `yaml:"intro"`
	Outro  int     `yaml:"outro"`
	Volume float64 `yaml:"volume"`
}

// NewEnvelope sizes the envelope for the scene durations. The track runs one
// transition past the last base frame so the outro fade is not cut.
func NewEnvelope(durationsMs []float64, fps, transition int, volume *float64) Envelope {
	vol := DefaultVolume
	if volume != nil {
		vol = *volume
	}
	return Envelope{
		Total:  timeline.TotalFrames(durationsMs, fps) + transition,
		Intro:  int(motion.Round(IntroSeconds * float64(fps))),
		Outro:  int(motion.Round(OutroSeconds * float64(fps))),
		Volume: vol,
	}
}

// At returns the track volume at an absolute (possibly fractional) frame:
// a fade-in to Volume and a fade-out from 1 to 0 ending at Total.
func (e Envelope) At(frame float64) float64 {
	fadeIn := motion.Interpolate(frame, 0, float64(e.Intro), 0, e.Volume, nil)

	local := math.Max(0, frame-float64(e.Total-e.Outro))
	fadeOut := motion.Interpolate(local, 0, float64(e.Outro), 1, 0, nil)

	return math.Max(0, math.Min(fadeIn, fadeOut))
}

// Duration is the envelope length at the given frame rate
func (e Envelope) Duration(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(e.Total) / float64(fps) * float64(time.Second))
}

// shaped scales a stream by the envelope of the video frame each sample
// falls in. Modeled on an attack/release envelope streamer.
type shaped struct {
	streamer beep.Streamer
	env      Envelope
	rate     beep.SampleRate
	fps      int
	position int
}

// Apply wraps s so it plays with the envelope; the stream ends with the envelope.
func Apply(s beep.Streamer, rate beep.SampleRate, fps int, env Envelope) beep.Streamer {
	return &shaped{streamer: s, env: env, rate: rate, fps: fps}
}

func (s *shaped) Stream(samples [][2]float64) (n int, ok bool) {
	total := s.rate.N(s.env.Duration(s.fps))
	if s.position >= total {
		return 0, false
	}
	if remaining := total - s.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = s.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		frame := float64(s.position) * float64(s.fps) / float64(s.rate)
		vol := s.env.At(frame)
		samples[i][0] *= vol
		samples[i][1] *= vol
		s.position++
	}
	return n, ok
}

func (s *shaped) Err() error { return s.streamer.Err() }
