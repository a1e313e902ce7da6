package tempo

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// Errors returned by LoadScript.
var (
	ErrEmptyScript   = errors.New("tempo: script has no steps")
	ErrUnknownAction = errors.New("tempo: unknown script action")
)

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Time   float64 `json:"time,omitempty"`
	Frame  int     `json:"frame,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a playback script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"play": true, "pause": true, "stop": true, "seek": true,
	"seekFrame": true, "timeScale": true, "wait": true, "mark": true,
}

// ScriptRunner sequences playback commands across host frames, for
// reproducible demos and automated checks of a timeline tree. Call Step once
// per frame before Update.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// OnMark is called for "mark" steps with the step label.
	OnMark func(label string, tl *Timeline)
}

// LoadScript parses a JSON playback script:
//
//	{"steps": [
//		{"action": "play"},
//		{"action": "wait", "frames": 30},
//		{"action": "mark", "label": "half-second"},
//		{"action": "seek", "time": 2.5},
//		{"action": "seekFrame", "frame": 12},
//		{"action": "timeScale", "scale": 0.5},
//		{"action": "pause"},
//		{"action": "stop"}
//	]}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d %q: %w", i, st.Action, ErrUnknownAction)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes the next step against tl, or counts down a pending wait.
func (r *ScriptRunner) Step(tl *Timeline) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "play":
		tl.Play()
	case "pause":
		tl.Pause()
	case "stop":
		tl.Stop()
	case "seek":
		tl.Seek(st.Time)
	case "seekFrame":
		tl.SeekFrame(st.Frame)
	case "timeScale":
		tl.SetTimeScale(st.Scale)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "mark":
		if r.OnMark != nil {
			r.OnMark(st.Label, tl)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
