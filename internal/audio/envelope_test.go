package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

var demoDurations = []float64{3200, 3600, 2600, 3000, 3000, 2600, 2400, 1400}

func TestNewEnvelope(t *testing.T) {
	env := NewEnvelope(demoDurations, 30, 8, nil)
	if env.Total != 662 || env.Intro != 6 || env.Outro != 7 || env.Volume != DefaultVolume {
		t.Errorf("Unexpected envelope: %+v", env)
	}

	vol := 0.55
	if env := NewEnvelope(demoDurations, 30, 8, &vol); env.Volume != 0.55 {
		t.Errorf("Volume not taken from spec: %+v", env)
	}
}

func TestEnvelopeAt(t *testing.T) {
	env := NewEnvelope(demoDurations, 30, 8, nil)

	tests := []struct {
		frame    float64
		expected float64
	}{
		{0, 0},
		{3, 0.3},
		{6, 0.6},
		{400, 0.6},
		{655, 0.6},
		{658.5, 0.5},
		{662, 0},
		{700, 0},
	}
	for _, tt := range tests {
		if got := env.At(tt.frame); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("At(%v) = %f, expected %f", tt.frame, got, tt.expected)
		}
	}

	for f := 0; f < 700; f++ {
		v := env.At(float64(f))
		if v < 0 || v > env.Volume {
			t.Fatalf("At(%d) = %f outside [0, %f]", f, v, env.Volume)
		}
	}
}

func TestEnvelopeDuration(t *testing.T) {
	env := Envelope{Total: 90}
	if got := env.Duration(30); got != 3*time.Second {
		t.Errorf("Duration = %v", got)
	}
	if env.Duration(0) != 0 {
		t.Error("Zero fps must give zero duration")
	}
}

func constant() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0], samples[i][1] = 1, 1
		}
		return len(samples), true
	})
}

func TestApply(t *testing.T) {
	env := Envelope{Total: 20, Intro: 2, Outro: 4, Volume: 0.5}
	rate := beep.SampleRate(1000)

	s := Apply(constant(), rate, 10, env)

	samples := make([][2]float64, 3000)
	n, ok := s.Stream(samples)
	if !ok || n != 2000 {
		t.Fatalf("Expected 2000 samples, got %d (ok=%v)", n, ok)
	}

	// 100 samples per video frame
	checks := map[int]float64{0: 0, 100: 0.25, 1000: 0.5, 1900: 0.25}
	for i, expected := range checks {
		if math.Abs(samples[i][0]-expected) > 1e-9 || samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d = %v, expected %f", i, samples[i], expected)
		}
	}

	if n, ok := s.Stream(samples); ok || n != 0 {
		t.Errorf("Stream must end with the envelope, got n=%d ok=%v", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Unexpected error: %v", s.Err())
	}
}
