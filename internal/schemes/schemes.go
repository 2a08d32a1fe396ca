// Package schemes provides built-in control schemes, each of which supplies
// a default set of bindings via input.BindingSet.
package schemes

import (
	"fmt"
	"sort"

	"github.com/ja-he/chordbind/internal/input"
)

var (
	b = input.Board
	m = input.Mouse

	held = input.NewBinding
	just = input.NewJustActivatedBinding
)

// Platformer is a keyboard-centric side-scroller scheme.
// Movement is bound to both WASD and the arrow keys.
type Platformer struct{}

// BindingNames returns the action names of the scheme.
func (Platformer) BindingNames() []string {
	return []string{
		"move-left", "move-left",
		"move-right", "move-right",
		"crouch", "crouch",
		"jump", "jump",
		"attack",
		"dash",
		"pause",
	}
}

// Bindings returns the default bindings of the scheme.
func (Platformer) Bindings() []input.Binding {
	return []input.Binding{
		held(b(input.KeyCodeA)), held(b(input.KeyCodeArrowLeft)),
		held(b(input.KeyCodeD)), held(b(input.KeyCodeArrowRight)),
		held(b(input.KeyCodeS)), held(b(input.KeyCodeArrowDown)),
		just(b(input.KeyCodeSpace)), just(b(input.KeyCodeW)),
		just(b(input.KeyCodeJ)),
		just(b(input.KeyCodeShiftLeft), b(input.KeyCodeSpace)),
		just(b(input.KeyCodeEscape)),
	}
}

// Shooter is a mouse-and-keyboard scheme using mouse chords.
type Shooter struct{}

// BindingNames returns the action names of the scheme.
func (Shooter) BindingNames() []string {
	return []string{
		"forward",
		"back",
		"strafe-left",
		"strafe-right",
		"fire",
		"aim",
		"melee",
		"reload",
		"sprint",
		"use",
	}
}

// Bindings returns the default bindings of the scheme.
func (Shooter) Bindings() []input.Binding {
	return []input.Binding{
		held(b(input.KeyCodeW)),
		held(b(input.KeyCodeS)),
		held(b(input.KeyCodeA)),
		held(b(input.KeyCodeD)),
		held(m(input.MouseButtonLeft)),
		held(m(input.MouseButtonRight)),
		just(m(input.MouseButtonLeft), m(input.MouseButtonRight)),
		just(b(input.KeyCodeR)),
		held(b(input.KeyCodeShiftLeft), b(input.KeyCodeW)),
		just(b(input.KeyCodeE)),
	}
}

// Editor is a scheme of modifier chords, as found in level editors.
// It deliberately contains colliding chords (e.g. "select" and "place" share
// a binding), which the diagnostics report.
type Editor struct{}

// BindingNames returns the action names of the scheme.
func (Editor) BindingNames() []string {
	return []string{
		"select",
		"place",
		"pan",
		"save",
		"undo",
		"redo",
		"redo",
		"delete",
	}
}

// Bindings returns the default bindings of the scheme.
func (Editor) Bindings() []input.Binding {
	return []input.Binding{
		just(m(input.MouseButtonLeft)),
		held(m(input.MouseButtonLeft)),
		held(m(input.MouseButtonMiddle)),
		just(b(input.KeyCodeS), b(input.KeyCodeControlLeft)),
		just(b(input.KeyCodeControlLeft), b(input.KeyCodeZ)),
		just(b(input.KeyCodeControlLeft), b(input.KeyCodeShiftLeft), b(input.KeyCodeZ)),
		just(b(input.KeyCodeY), b(input.KeyCodeControlLeft)),
		just(b(input.KeyCodeDelete)),
	}
}

var builtin = map[string]input.BindingSet{
	"platformer": Platformer{},
	"shooter":    Shooter{},
	"editor":     Editor{},
}

// Lookup returns the built-in scheme of the given name.
func Lookup(name string) (input.BindingSet, error) {
	set, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("no such scheme '%s' (known: %v)", name, Names())
	}
	return set, nil
}

// Names returns the names of all built-in schemes, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
