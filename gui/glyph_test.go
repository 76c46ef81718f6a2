package gui

import "testing"

func TestPrintable(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{0, 0},
		{' ', 0},
		{'A', 'A'},
		{'~', '~'},
		{'◆', '*'},
		{'─', '-'},
		{'©', 'c'},
		{'→', '?'},
		{'\t', '?'},
	}
	for _, tt := range tests {
		if got := printable(tt.in); got != tt.want {
			t.Errorf("printable(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
