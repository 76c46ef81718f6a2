// Package phase maps the continuous progress value to the four ordered content phases
package phase

import (
	"fmt"
	"math"

	"github.com/lixenwraith/scrollway/parameter"
)

// Phase is a discrete section identity, ordered by progress
type Phase uint8

const (
	Intro Phase = iota
	Foundation
	Network
	Ecosystem
)

// Count is the number of phases
const Count = 4

// All lists phases in progress order
var All = [Count]Phase{Intro, Foundation, Network, Ecosystem}

var names = [Count]string{"intro", "foundation", "network", "ecosystem"}

// String returns the lower-case phase id
func (p Phase) String() string {
	if int(p) < Count {
		return names[p]
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Index returns the zero-based section index of the phase
func (p Phase) Index() int {
	return int(p)
}

// Parse resolves a phase id
func Parse(s string) (Phase, error) {
	for i, n := range names {
		if n == s {
			return Phase(i), nil
		}
	}
	return Intro, fmt.Errorf("unknown phase %q", s)
}

// FromIndex converts a section index to a phase, clamping to the valid range
func FromIndex(i int) Phase {
	switch {
	case i < 0:
		return Intro
	case i >= Count:
		return Ecosystem
	}
	return Phase(i)
}

// Mapper holds the three cut points separating the four phase bands
// Band k covers [cuts[k-1], cuts[k]); the first band starts at -inf and the last ends at +inf
type Mapper struct {
	cuts [Count - 1]float64
}

// NewMapper validates and builds a mapper from the start of foundation, network and ecosystem
func NewMapper(foundation, network, ecosystem float64) (Mapper, error) {
	cuts := [Count - 1]float64{foundation, network, ecosystem}
	for i, c := range cuts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Mapper{}, fmt.Errorf("cut point %d is not finite", i)
		}
		if i > 0 && c <= cuts[i-1] {
			return Mapper{}, fmt.Errorf("cut points must be strictly ascending: %v", cuts)
		}
	}
	return Mapper{cuts: cuts}, nil
}

// DefaultMapper returns the mapper built from the parameter defaults
func DefaultMapper() Mapper {
	return Mapper{cuts: [Count - 1]float64{
		parameter.PhaseFoundationStart,
		parameter.PhaseNetworkStart,
		parameter.PhaseEcosystemStart,
	}}
}

// Of returns the phase containing progress
// NaN maps to Intro so every input has a phase
func (m Mapper) Of(progress float64) Phase {
	p := Intro
	for i, c := range m.cuts {
		if progress >= c {
			p = Phase(i + 1)
		}
	}
	return p
}

// Start returns the progress at which a phase begins; Intro starts at 0
func (m Mapper) Start(p Phase) float64 {
	if p == Intro || int(p) >= Count {
		return 0
	}
	return m.cuts[p-1]
}

// Cuts returns a copy of the cut points
func (m Mapper) Cuts() [Count - 1]float64 {
	return m.cuts
}
