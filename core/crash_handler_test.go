package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type fakeScreen struct {
	finis int
}

func (f *fakeScreen) Fini() { f.finis++ }

// captureCrash swaps the exit and output hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var out bytes.Buffer
	code := -1
	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &out
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashScreen(nil)
	})
	return &out, &code
}

func TestHandleCrashRestoresScreen(t *testing.T) {
	out, code := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashScreen(screen)

	HandleCrash("boom")

	if screen.finis != 1 {
		t.Errorf("Fini called %d times, want 1", screen.finis)
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") || !strings.Contains(out.String(), "Stack Trace:") {
		t.Errorf("crash report = %q", out.String())
	}

	// The screen is released after the first crash
	HandleCrash("again")
	if screen.finis != 1 {
		t.Errorf("Fini called again: %d", screen.finis)
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	out, code := captureCrash(t)
	HandleCrash(nil)
	if *code != -1 || out.Len() != 0 {
		t.Errorf("nil panic produced output %q / exit %d", out.String(), *code)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	_, code := captureCrash(t)

	var wg sync.WaitGroup
	wg.Add(1)
	prevExit := crashExit
	crashExit = func(c int) {
		prevExit(c)
		wg.Done()
	}
	Go(func() { panic("pump failure") })
	wg.Wait()

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
}
