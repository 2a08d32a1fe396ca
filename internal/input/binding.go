package input

import "strings"

// Mode is the trigger semantics of a Binding.
type Mode int

const (
	// Held bindings are active for every tick their full chord is held down.
	Held Mode = iota
	// JustActivated bindings are active only on the tick on which every key
	// of their chord was pressed.
	JustActivated
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Held:
		return "held"
	case JustActivated:
		return "just-activated"
	default:
		return "unknown"
	}
}

// Binding is a chord of keys together with the mode by which it triggers.
//
// The chord is kept in canonical order (see Compare), so two bindings built
// from the same keys in different orders are indistinguishable.
//
// NOTE:
//
//	a binding with an empty chord (including the zero value) always matches.
type Binding struct {
	chord []Key
	mode  Mode
}

// NewBinding returns a Held binding for the given chord.
func NewBinding(keys ...Key) Binding {
	return newBinding(Held, keys)
}

// NewJustActivatedBinding returns a JustActivated binding for the given chord.
func NewJustActivatedBinding(keys ...Key) Binding {
	return newBinding(JustActivated, keys)
}

func newBinding(mode Mode, keys []Key) Binding {
	chord := make([]Key, len(keys))
	copy(chord, keys)
	SortKeys(chord)
	return Binding{chord: chord, mode: mode}
}

// sorted returns a copy of the binding with its chord in canonical order.
func (b Binding) sorted() Binding {
	return newBinding(b.mode, b.chord)
}

// Keys returns a copy of the (canonically ordered) chord.
func (b Binding) Keys() []Key {
	keys := make([]Key, len(b.chord))
	copy(keys, b.chord)
	return keys
}

// Mode returns the trigger mode of the binding.
func (b Binding) Mode() Mode { return b.mode }

// Matches reports whether the binding is satisfied by the given keyboard and
// mouse state.
//
// For Held bindings every key must currently be pressed, for JustActivated
// bindings every key must have been pressed on this tick.
func (b Binding) Matches(keyboard ButtonState[KeyCode], mouse ButtonState[MouseButton]) bool {
	for _, k := range b.chord {
		if !b.matchesKey(k, keyboard, mouse) {
			return false
		}
	}
	return true
}

func (b Binding) matchesKey(k Key, keyboard ButtonState[KeyCode], mouse ButtonState[MouseButton]) bool {
	if code, ok := k.KeyCode(); ok {
		if b.mode == JustActivated {
			return keyboard.JustPressed(code)
		}
		return keyboard.Pressed(code)
	}
	if button, ok := k.MouseButton(); ok {
		if b.mode == JustActivated {
			return mouse.JustPressed(button)
		}
		return mouse.Pressed(button)
	}
	return false
}

// CanonicalForm returns the deterministic text form of the chord, e.g.
// "m:Left|b:KeyW|".
//
// The mode is not part of the canonical form, i.E. a Held and a JustActivated
// binding over the same keys have the same canonical form.
func (b Binding) CanonicalForm() string {
	var sb strings.Builder
	for _, k := range b.chord {
		sb.WriteString(k.String())
		sb.WriteByte('|')
	}
	return sb.String()
}

// String returns the canonical form of the binding.
func (b Binding) String() string {
	return b.CanonicalForm()
}
