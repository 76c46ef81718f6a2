package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/scrollway/config"
)

func TestScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no scenarios in testdata")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tr, err := Run(s, config.Default())
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			for _, f := range tr.Failures() {
				t.Error(f)
			}
		})
	}
}

func TestOverlayFlipsRecorded(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "overlay_hysteresis.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := Run(s, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(tr.Flips, ","); got != "shown,hidden" {
		t.Errorf("flips = %q, want shown,hidden", got)
	}
	if len(tr.Phases) == 0 || tr.Phases[0] != "intro->foundation" {
		t.Errorf("phases = %v", tr.Phases)
	}
}

func TestFailedExpectationReported(t *testing.T) {
	script := `
name: wrong
steps:
  - wheel: 1000
  - settle: true
  - expect: {progress: 0.5, phase: ecosystem}
`
	s, err := Decode(strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := Run(s, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Failed() {
		t.Fatal("expected failures")
	}
	fails := tr.Failures()
	if len(fails) != 2 || !strings.HasPrefix(fails[0], "step 3: progress") {
		t.Errorf("failures = %v", fails)
	}
}

func TestModeGatingVisibleInTrace(t *testing.T) {
	script := `
mode: mobile
steps:
  - wheel: 1000
  - touch: {action: start, x: 10}
`
	s, err := Decode(strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := Run(s, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if tr.Rows[0].Consumed {
		t.Error("mobile consumed a wheel event")
	}
	if !tr.Rows[1].Consumed {
		t.Error("mobile ignored a touch start")
	}
}

func TestDecodeRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"no steps", "name: x\n"},
		{"two actions", "steps:\n  - {wheel: 1, frames: 2}\n"},
		{"empty step", "steps:\n  - {}\n"},
		{"bad mode", "mode: tablet\nsteps:\n  - frames: 1\n"},
		{"bad touch", "steps:\n  - touch: {action: pinch}\n"},
		{"bad phase", "steps:\n  - expect: {phase: orbit}\n"},
		{"bad overlay", "steps:\n  - expect: {overlay: half}\n"},
		{"negative frames", "steps:\n  - frames: -1\n"},
		{"bad viewport", "viewport: {width: 0, height: 10}\nsteps:\n  - frames: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.script))
			if !errors.Is(err, ErrScript) {
				t.Errorf("err = %v, want ErrScript", err)
			}
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	if _, err := Decode(strings.NewReader("steps:\n  - scroll: 1\n")); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tuning.SmoothFactor = 0
	s := Script{Steps: []Step{{Frames: 1}}}
	if _, err := Run(s, cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestRenderReport(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "desktop_wheel.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	tr, err := Run(s, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	out := Render(tr)
	for _, want := range []string{"desktop wheel", "wheel +4000", "network", "PASS"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	tr.Rows[0].Failures = []string{"progress = 0, want 1"}
	out = Render(tr)
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "step 1: progress") {
		t.Errorf("failing report:\n%s", out)
	}
}
