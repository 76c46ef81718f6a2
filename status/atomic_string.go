package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds published strings in bytes so the status line stays one row
const MaxStringLen = 20

// AtomicString publishes a short label, such as a phase name, to readers on other goroutines
// The zero value holds ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store publishes val, cut to MaxStringLen on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the last published value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
