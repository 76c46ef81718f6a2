package phase

import (
	"math"
	"testing"
)

func TestMapperBands(t *testing.T) {
	m := DefaultMapper()

	tests := []struct {
		progress float64
		want     Phase
	}{
		{-1, Intro},
		{0, Intro},
		{0.179, Intro},
		{0.18, Foundation},
		{0.349, Foundation},
		{0.35, Network},
		{0.40, Network},
		{0.579, Network},
		{0.58, Ecosystem},
		{0.78, Ecosystem},
		{5, Ecosystem},
	}

	for _, tt := range tests {
		if got := m.Of(tt.progress); got != tt.want {
			t.Errorf("Of(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestMapperMonotonicAndIdempotent(t *testing.T) {
	m := DefaultMapper()

	prev := m.Of(0)
	for i := 1; i <= 10000; i++ {
		p := float64(i) / 10000
		got := m.Of(p)
		if got < prev {
			t.Fatalf("phase regressed at %v: %v after %v", p, got, prev)
		}
		if again := m.Of(p); again != got {
			t.Fatalf("Of(%v) not idempotent: %v then %v", p, got, again)
		}
		prev = got
	}
}

func TestMapperNaN(t *testing.T) {
	if got := DefaultMapper().Of(math.NaN()); got != Intro {
		t.Errorf("Of(NaN) = %v, want intro", got)
	}
}

func TestMapperStart(t *testing.T) {
	m := DefaultMapper()
	for _, p := range All {
		start := m.Start(p)
		if got := m.Of(start); got != p {
			t.Errorf("Of(Start(%v)) = %v", p, got)
		}
	}
	if m.Start(Intro) != 0 {
		t.Errorf("intro should start at 0")
	}
}

func TestNewMapperRejectsUnordered(t *testing.T) {
	cases := [][3]float64{
		{0.3, 0.2, 0.5},
		{0.2, 0.2, 0.5},
		{0.1, 0.2, math.NaN()},
		{math.Inf(-1), 0.2, 0.5},
	}
	for _, c := range cases {
		if _, err := NewMapper(c[0], c[1], c[2]); err == nil {
			t.Errorf("NewMapper(%v) should fail", c)
		}
	}

	m, err := NewMapper(0.1, 0.2, 0.3)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.Of(0.25); got != Network {
		t.Errorf("custom mapper Of(0.25) = %v", got)
	}
}

func TestParseAndString(t *testing.T) {
	for _, p := range All {
		got, err := Parse(p.String())
		if err != nil || got != p {
			t.Errorf("Parse(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := Parse("finale"); err == nil {
		t.Error("Parse should reject unknown ids")
	}
	if FromIndex(-3) != Intro || FromIndex(9) != Ecosystem || FromIndex(2) != Network {
		t.Error("FromIndex clamping")
	}
}
