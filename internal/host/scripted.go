package host

import (
	"github.com/ja-he/chordbind/internal/input"
)

// ScriptedSource replays a fixed list of frames.
// Each frame lists the keys held on it; keys not listed are released. After the
// last frame everything is released.
type ScriptedSource struct {
	frames [][]input.Key
	next   int
}

// NewScriptedSource returns a pointer to a new ScriptedSource for the given
// frames.
func NewScriptedSource(frames ...[]input.Key) *ScriptedSource {
	return &ScriptedSource{frames: frames}
}

// Capture applies the next scripted frame.
func (s *ScriptedSource) Capture(keyboard *input.ButtonInput[input.KeyCode], mouse *input.ButtonInput[input.MouseButton]) {
	var held []input.Key
	if s.next < len(s.frames) {
		held = s.frames[s.next]
		s.next++
	}

	heldBoard := make(map[input.KeyCode]bool)
	heldMouse := make(map[input.MouseButton]bool)
	for _, k := range held {
		if code, ok := k.KeyCode(); ok {
			heldBoard[code] = true
		}
		if button, ok := k.MouseButton(); ok {
			heldMouse[button] = true
		}
	}

	for _, code := range keyboard.GetPressed() {
		if !heldBoard[code] {
			keyboard.Release(code)
		}
	}
	for _, button := range mouse.GetPressed() {
		if !heldMouse[button] {
			mouse.Release(button)
		}
	}
	for code := range heldBoard {
		keyboard.Press(code)
	}
	for button := range heldMouse {
		mouse.Press(button)
	}
}

// Done returns whether all frames have been replayed.
func (s *ScriptedSource) Done() bool {
	return s.next >= len(s.frames)
}
