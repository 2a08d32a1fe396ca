package schemes_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/chordbind/internal/input"
	"github.com/ja-he/chordbind/internal/schemes"
)

func TestBuiltinSchemes(t *testing.T) {
	for _, name := range schemes.Names() {
		t.Run(name, func(t *testing.T) {
			set, err := schemes.Lookup(name)
			if err != nil {
				t.Fatal(err.Error())
			}
			if len(set.BindingNames()) != len(set.Bindings()) {
				t.Errorf("scheme has %d names but %d bindings", len(set.BindingNames()), len(set.Bindings()))
			}
			for i, b := range set.Bindings() {
				if len(b.Keys()) == 0 {
					t.Errorf("binding %d (%s) has an empty chord, which would always be active", i, set.BindingNames()[i])
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if _, err := schemes.Lookup("racing"); err == nil {
		t.Error("expected error for unknown scheme")
	}
	if len(schemes.Names()) != 3 {
		t.Error("unexpected scheme names", schemes.Names())
	}
}

func TestEditorCollisions(t *testing.T) {
	r := input.NewRegistry(zerolog.Nop())
	input.RegisterDefaults[schemes.Editor](r)

	collisions := r.Collisions()
	if len(collisions) != 1 {
		t.Fatal("expected exactly one collision in editor scheme, got", collisions)
	}
	if collisions[0].Name != "place" || collisions[0].FirstName != "select" {
		t.Error("unexpected collision", collisions[0])
	}
}

func TestShooterChords(t *testing.T) {
	r := input.NewRegistry(zerolog.Nop())
	input.RegisterDefaults[schemes.Shooter](r)
	keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()

	keyboard.Press(input.KeyCodeW)
	keyboard.Press(input.KeyCodeShiftLeft)
	mouse.Press(input.MouseButtonLeft)
	mouse.Press(input.MouseButtonRight)
	r.Update(keyboard, mouse)

	for _, name := range []string{"forward", "sprint", "fire", "aim", "melee"} {
		if !r.IsActive(name) {
			t.Errorf("expected '%s' to be active", name)
		}
	}
	if r.IsActive("reload") {
		t.Error("reload active without R pressed")
	}

	keyboard.Clear()
	mouse.Clear()
	r.Update(keyboard, mouse)
	if r.IsActive("melee") {
		t.Error("melee (just activated) still active on the next tick")
	}
	if !r.IsActive("fire") {
		t.Error("fire (held) no longer active while held")
	}
}
