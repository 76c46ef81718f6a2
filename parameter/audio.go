package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Sounds
const (
	// PhaseCueDuration is the length of the tone played on a phase change
	PhaseCueDuration = 90 * time.Millisecond

	// OverlayCueDuration is the length of each note of the overlay chime
	OverlayCueDuration = 140 * time.Millisecond

	// OverlayCueGap is the silence between chime notes
	OverlayCueGap = 30 * time.Millisecond

	// CueVolume is the beep effects.Volume exponent (base 2) applied to every cue
	CueVolume = -2.5

	// CueFadeSamples is the linear fade applied at both ends of a tone to avoid clicks
	CueFadeSamples = 256
)

// PhaseCueFrequencies maps phase order to tone frequency (Hz)
var PhaseCueFrequencies = [4]float64{392.00, 440.00, 523.25, 659.25}

// OverlayCueFrequencies are the notes of the reveal chime, reversed on hide
var OverlayCueFrequencies = [3]float64{523.25, 659.25, 783.99}
