package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear ramp over the first and last fadeSamples of a stream of known length
type fade struct {
	streamer    beep.Streamer
	position    int
	total       int
	fadeSamples int
}

// NewFade wraps s, whose length is total samples, with linear fade-in and fade-out
func NewFade(s beep.Streamer, total, fadeSamples int) beep.Streamer {
	if fadeSamples*2 > total {
		fadeSamples = total / 2
	}
	return &fade{streamer: s, total: total, fadeSamples: fadeSamples}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.fadeSamples > 0 {
			if f.position < f.fadeSamples {
				vol = float64(f.position) / float64(f.fadeSamples)
			}
			if remaining := f.total - f.position - 1; remaining < f.fadeSamples {
				vol = math.Min(vol, math.Max(0, float64(remaining)/float64(f.fadeSamples)))
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so 0 means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a faded sine with a quiet octave overtone
func tone(freq float64, duration time.Duration, rate beep.SampleRate, fadeSamples int) beep.Streamer {
	total := rate.N(duration)
	fund := NewFade(NewOscillator(freq, duration, WaveSine, rate), total, fadeSamples)
	over := NewFade(NewOscillator(freq*2, duration, WaveSine, rate), total, fadeSamples)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}
