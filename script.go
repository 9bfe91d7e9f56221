package easel

import (
	"encoding/json"
	"fmt"
)

// Script actions.
const (
	actionWait             = "wait"
	actionScreenshot       = "screenshot"
	actionFullscreen       = "fullscreen"
	actionWindowed         = "windowed"
	actionToggleFullscreen = "toggle_fullscreen"
	actionQuit             = "quit"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script runs one step per frame at the start of BeginFrame, for automated
// visual checks and headless captures:
//
//	{"steps": [
//		{"action": "wait", "frames": 10},
//		{"action": "screenshot", "label": "windowed"},
//		{"action": "toggle_fullscreen"},
//		{"action": "wait", "frames": 2},
//		{"action": "screenshot", "label": "fullscreen"},
//		{"action": "quit"}
//	]}
//
// Attach it with Graphics.SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("%w: parse script: %v", ErrConfig, err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("%w: parse script: no steps", ErrConfig)
	}
	for i, st := range file.Steps {
		switch st.Action {
		case actionWait, actionScreenshot, actionFullscreen, actionWindowed, actionToggleFullscreen, actionQuit:
		default:
			return nil, fmt.Errorf("%w: parse script: step %d: unknown action %q", ErrConfig, i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// SetScript attaches a script to the session. Nil detaches it.
func (g *Graphics) SetScript(s *Script) {
	g.script = s
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(g *Graphics) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case actionScreenshot:
		g.Screenshot(st.Label)
	case actionFullscreen:
		g.SetFullscreen()
	case actionWindowed:
		g.UnsetFullscreen()
	case actionToggleFullscreen:
		g.ToggleFullscreen()
	case actionQuit:
		g.Quit()
	case actionWait:
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
