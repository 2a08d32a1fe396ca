package input_test

import (
	"testing"

	"github.com/ja-he/chordbind/internal/input"
)

// tick advances the given devices by one tick, pressing exactly the given keys
// and releasing all others.
func tick(keyboard *input.ButtonInput[input.KeyCode], mouse *input.ButtonInput[input.MouseButton], keys ...input.Key) {
	keyboard.Clear()
	mouse.Clear()
	held := make(map[input.Key]bool)
	for _, k := range keys {
		held[k] = true
	}
	for _, code := range keyboard.GetPressed() {
		if !held[input.Board(code)] {
			keyboard.Release(code)
		}
	}
	for _, button := range mouse.GetPressed() {
		if !held[input.Mouse(button)] {
			mouse.Release(button)
		}
	}
	for _, k := range keys {
		if code, ok := k.KeyCode(); ok {
			keyboard.Press(code)
		}
		if button, ok := k.MouseButton(); ok {
			mouse.Press(button)
		}
	}
}

func TestBindingMatches(t *testing.T) {
	a := input.Board(input.KeyCodeA)
	left := input.Mouse(input.MouseButtonLeft)

	t.Run("held", func(t *testing.T) {
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()
		b := input.NewBinding(a)

		tick(keyboard, mouse)
		if b.Matches(keyboard, mouse) {
			t.Error("held binding matches with nothing pressed")
		}
		tick(keyboard, mouse, a)
		if !b.Matches(keyboard, mouse) {
			t.Error("held binding does not match with its key pressed")
		}
		tick(keyboard, mouse, a)
		if !b.Matches(keyboard, mouse) {
			t.Error("held binding does not match on second tick of holding")
		}
	})

	t.Run("held chord needs every key", func(t *testing.T) {
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()
		b := input.NewBinding(a, left)

		tick(keyboard, mouse, a)
		if b.Matches(keyboard, mouse) {
			t.Error("chord matches with only the keyboard key held")
		}
		tick(keyboard, mouse, left)
		if b.Matches(keyboard, mouse) {
			t.Error("chord matches with only the mouse button held")
		}
		tick(keyboard, mouse, left, a)
		if !b.Matches(keyboard, mouse) {
			t.Error("chord does not match with both held")
		}
	})

	t.Run("just activated", func(t *testing.T) {
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()
		b := input.NewJustActivatedBinding(left)

		expected := []bool{true, false, false}
		for i, e := range expected {
			tick(keyboard, mouse, left)
			if b.Matches(keyboard, mouse) != e {
				t.Errorf("on tick %d of holding, expected match to be %t", i+1, e)
			}
		}

		tick(keyboard, mouse)
		tick(keyboard, mouse, left)
		if !b.Matches(keyboard, mouse) {
			t.Error("does not match on re-press")
		}
	})

	t.Run("just activated chord needs simultaneous press", func(t *testing.T) {
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()
		b := input.NewJustActivatedBinding(a, left)

		tick(keyboard, mouse, a)
		tick(keyboard, mouse, a, left)
		if b.Matches(keyboard, mouse) {
			t.Error("matches although one key was already held")
		}
	})

	t.Run("empty chord always matches", func(t *testing.T) {
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()
		if !input.NewBinding().Matches(keyboard, mouse) {
			t.Error("empty held binding does not match")
		}
		if !input.NewJustActivatedBinding().Matches(keyboard, mouse) {
			t.Error("empty just-activated binding does not match")
		}
		if !(input.Binding{}).Matches(keyboard, mouse) {
			t.Error("zero value binding does not match")
		}
	})
}

func TestBindingCanonicalForm(t *testing.T) {

	t.Run("order independent", func(t *testing.T) {
		w, left, shift := input.Board(input.KeyCodeW), input.Mouse(input.MouseButtonLeft), input.Board(input.KeyCodeShiftLeft)
		permutations := [][]input.Key{
			{w, left, shift},
			{w, shift, left},
			{left, w, shift},
			{left, shift, w},
			{shift, w, left},
			{shift, left, w},
		}
		expected := "m:Left|b:KeyW|b:ShiftLeft|"
		for _, p := range permutations {
			actual := input.NewBinding(p...).CanonicalForm()
			if actual != expected {
				t.Errorf("expected '%s' for %v, got '%s'", expected, p, actual)
			}
		}
	})

	t.Run("mode insensitive", func(t *testing.T) {
		held := input.NewBinding(input.Board(input.KeyCodeW), input.Mouse(input.MouseButtonLeft))
		just := input.NewJustActivatedBinding(input.Mouse(input.MouseButtonLeft), input.Board(input.KeyCodeW))
		if held.CanonicalForm() != just.CanonicalForm() {
			t.Error("canonical form differs by mode:", held, just)
		}
		if held.Mode() != input.Held || just.Mode() != input.JustActivated {
			t.Error("unexpected modes", held.Mode(), just.Mode())
		}
	})

	t.Run("empty", func(t *testing.T) {
		if input.NewBinding().CanonicalForm() != "" {
			t.Error("expected empty canonical form for empty chord")
		}
	})
}

func TestBindingImmutable(t *testing.T) {
	keys := []input.Key{input.Board(input.KeyCodeW), input.Mouse(input.MouseButtonLeft)}
	b := input.NewBinding(keys...)
	if keys[0] != input.Board(input.KeyCodeW) {
		t.Error("constructor reordered the caller's slice")
	}

	got := b.Keys()
	got[0] = input.Board(input.KeyCodeZ)
	if b.CanonicalForm() != "m:Left|b:KeyW|" {
		t.Error("modifying returned keys changed the binding:", b)
	}
}
