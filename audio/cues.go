// Package audio plays short tones when the scene phase or the overlay changes
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/scrollway/overlay"
	"github.com/lixenwraith/scrollway/parameter"
	"github.com/lixenwraith/scrollway/phase"
)

// Cues manages the speaker and a mixer fed with one-shot cue streams
type Cues struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       bool
}

// NewCues creates an uninitialized cue player; cues are dropped until Initialize succeeds
func NewCues() *Cues {
	return &Cues{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  &beep.Mixer{},
		volume: 1,
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup drops every pending cue and closes the speaker
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// SetMuted drops cues while muted
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// Muted reports the mute flag
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// PhaseCue plays the tone for entering p
func (c *Cues) PhaseCue(p phase.Phase) {
	c.play(PhaseStream(p, c.rate))
}

// OverlayCue plays the rising chime on show and the falling one on hide
func (c *Cues) OverlayCue(s overlay.State) {
	c.play(OverlayStream(s, c.rate))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted || s == nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(newVolume(s, c.volume))
	speaker.Unlock()
}

// PhaseStream builds the cue for entering p
func PhaseStream(p phase.Phase, rate beep.SampleRate) beep.Streamer {
	freq := parameter.PhaseCueFrequencies[p.Index()]
	return cueVolume(tone(freq, parameter.PhaseCueDuration, rate, parameter.CueFadeSamples))
}

// OverlayStream builds the three-note chime for s, ascending for Shown
func OverlayStream(s overlay.State, rate beep.SampleRate) beep.Streamer {
	freqs := parameter.OverlayCueFrequencies
	notes := make([]beep.Streamer, 0, 2*len(freqs)-1)
	for i := range freqs {
		f := freqs[i]
		if s == overlay.Hidden {
			f = freqs[len(freqs)-1-i]
		}
		if i > 0 {
			notes = append(notes, generators.Silence(rate.N(parameter.OverlayCueGap)))
		}
		notes = append(notes, tone(f, parameter.OverlayCueDuration, rate, parameter.CueFadeSamples))
	}
	return cueVolume(beep.Seq(notes...))
}

func cueVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: parameter.CueVolume}
}
