package input_test

import (
	"testing"

	"github.com/ja-he/chordbind/internal/input"
)

func TestButtonInput(t *testing.T) {

	t.Run("press", func(t *testing.T) {
		in := input.NewButtonInput[input.MouseButton]()
		in.Press(input.MouseButtonLeft)
		if !in.Pressed(input.MouseButtonLeft) || !in.JustPressed(input.MouseButtonLeft) {
			t.Error("pressed button is not pressed and just pressed")
		}
		if in.Pressed(input.MouseButtonRight) {
			t.Error("unpressed button claims to be pressed")
		}
	})

	t.Run("clear keeps held", func(t *testing.T) {
		in := input.NewButtonInput[input.MouseButton]()
		in.Press(input.MouseButtonLeft)
		in.Clear()
		if !in.Pressed(input.MouseButtonLeft) {
			t.Error("clear released held button")
		}
		if in.JustPressed(input.MouseButtonLeft) {
			t.Error("button still just pressed after clear")
		}
		in.Press(input.MouseButtonLeft)
		if in.JustPressed(input.MouseButtonLeft) {
			t.Error("pressing a held button made it just pressed again")
		}
	})

	t.Run("release", func(t *testing.T) {
		in := input.NewButtonInput[input.KeyCode]()
		in.Release(input.KeyCodeA)
		if in.JustReleased(input.KeyCodeA) {
			t.Error("releasing an unpressed key made it just released")
		}
		in.Press(input.KeyCodeA)
		in.Clear()
		in.Release(input.KeyCodeA)
		if in.Pressed(input.KeyCodeA) || !in.JustReleased(input.KeyCodeA) {
			t.Error("released key not released or not just released")
		}
	})

	t.Run("release all", func(t *testing.T) {
		in := input.NewButtonInput[input.KeyCode]()
		in.Press(input.KeyCodeA)
		in.Press(input.KeyCodeB)
		in.ReleaseAll()
		if len(in.GetPressed()) != 0 {
			t.Error("keys still pressed after release all:", in.GetPressed())
		}
		if !in.JustReleased(input.KeyCodeA) || !in.JustReleased(input.KeyCodeB) {
			t.Error("keys not just released after release all")
		}
	})
}
