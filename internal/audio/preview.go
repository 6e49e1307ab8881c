package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// PreviewRate is the sample rate of exported previews
const PreviewRate = beep.SampleRate(44100)

// ToneHz is the stand-in pitch when the track itself cannot be decoded
const ToneHz = 220.0

// Tone is an endless sine at freq; Apply cuts it to the envelope.
func Tone(rate beep.SampleRate, freq float64) (beep.Streamer, error) {
	return generators.SineTone(rate, freq)
}

// OpenWAV decodes a WAV track and resamples it to rate when needed.
// The returned closer releases the file.
func OpenWAV(path string, rate beep.SampleRate) (beep.Streamer, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	d, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var s beep.Streamer = d
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, d)
	}
	return s, d.Close, nil
}

// WriteWAV shapes s with the envelope and encodes it as 16-bit stereo.
// The output lasts exactly env.Duration(fps) unless s ends earlier.
func WriteWAV(path string, s beep.Streamer, rate beep.SampleRate, fps int, env Envelope) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, Apply(s, rate, fps, env), format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
