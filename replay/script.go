// Package replay plays scripted input against a headless experience on a manual clock
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/scrollway/config"
	"github.com/lixenwraith/scrollway/overlay"
	"github.com/lixenwraith/scrollway/phase"
)

// ErrScript wraps every malformed script
var ErrScript = errors.New("invalid replay script")

// Touch actions
const (
	TouchStart  = "start"
	TouchMove   = "move"
	TouchEnd    = "end"
	TouchCancel = "cancel"
)

// Script is a named sequence of input and assertions
type Script struct {
	Name     string      `yaml:"name"`
	Mode     config.Mode `yaml:"mode,omitempty"`
	Viewport *Size       `yaml:"viewport,omitempty"`
	Steps    []Step      `yaml:"steps"`
}

// Size is a viewport in px
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Touch is one touch event; a missing x models a platform that reports no coordinates
type Touch struct {
	Action string   `yaml:"action"`
	X      *float64 `yaml:"x,omitempty"`
}

// Step holds exactly one action
type Step struct {
	Wheel  *float64 `yaml:"wheel,omitempty"`
	Touch  *Touch   `yaml:"touch,omitempty"`
	Resize *Size    `yaml:"resize,omitempty"`
	Jump   *int     `yaml:"jump,omitempty"`
	Step   *int     `yaml:"step,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
	Settle bool     `yaml:"settle,omitempty"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// Expect asserts on the latest snapshot; unset fields are not checked
type Expect struct {
	Progress    *float64 `yaml:"progress,omitempty"`
	Target      *float64 `yaml:"target,omitempty"`
	Phase       string   `yaml:"phase,omitempty"`
	Pane        string   `yaml:"pane,omitempty"`
	Overlay     string   `yaml:"overlay,omitempty"`
	Interactive *bool    `yaml:"interactive,omitempty"`
	Dragging    *bool    `yaml:"dragging,omitempty"`
	FinalPage   *bool    `yaml:"final_page,omitempty"`
	Index       *int     `yaml:"index,omitempty"`
	Tolerance   float64  `yaml:"tolerance,omitempty"`
}

// Load reads and validates a script file
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses and validates a script
func Decode(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks that every step carries exactly one well-formed action
func (s Script) Validate() error {
	switch s.Mode {
	case "", config.ModeDesktop, config.ModeMobile:
	default:
		return fmt.Errorf("%w: mode %q", ErrScript, s.Mode)
	}
	if s.Viewport != nil && (s.Viewport.Width <= 0 || s.Viewport.Height <= 0) {
		return fmt.Errorf("%w: viewport must be positive", ErrScript)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrScript)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrScript, i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	n := 0
	for _, set := range []bool{
		st.Wheel != nil, st.Touch != nil, st.Resize != nil, st.Jump != nil,
		st.Step != nil, st.Frames != 0, st.Settle, st.Expect != nil,
	} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("want exactly one action, got %d", n)
	}
	switch {
	case st.Frames < 0:
		return errors.New("frames must be positive")
	case st.Touch != nil:
		switch st.Touch.Action {
		case TouchStart, TouchMove, TouchEnd, TouchCancel:
		default:
			return fmt.Errorf("unknown touch action %q", st.Touch.Action)
		}
	case st.Expect != nil:
		return st.Expect.validate()
	}
	return nil
}

func (e *Expect) validate() error {
	if e.Phase != "" {
		if _, err := phase.Parse(e.Phase); err != nil {
			return err
		}
	}
	if e.Pane != "" {
		if _, err := phase.Parse(e.Pane); err != nil {
			return err
		}
	}
	switch e.Overlay {
	case "", overlay.Hidden.String(), overlay.Shown.String():
	default:
		return fmt.Errorf("unknown overlay state %q", e.Overlay)
	}
	if e.Tolerance < 0 {
		return errors.New("tolerance must not be negative")
	}
	return nil
}

// label describes the step for traces
func (st Step) label() string {
	switch {
	case st.Wheel != nil:
		return fmt.Sprintf("wheel %+g", *st.Wheel)
	case st.Touch != nil:
		if st.Touch.X == nil {
			return "touch " + st.Touch.Action
		}
		return fmt.Sprintf("touch %s %g", st.Touch.Action, *st.Touch.X)
	case st.Resize != nil:
		return fmt.Sprintf("resize %gx%g", st.Resize.Width, st.Resize.Height)
	case st.Jump != nil:
		return fmt.Sprintf("jump %d", *st.Jump)
	case st.Step != nil:
		return fmt.Sprintf("step %+d", *st.Step)
	case st.Frames > 0:
		return fmt.Sprintf("frames %d", st.Frames)
	case st.Settle:
		return "settle"
	default:
		return "expect"
	}
}
