package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/chordbind/internal/input"
)

type fakePollable struct {
	events chan tcell.Event
}

func (p *fakePollable) PollEvent() tcell.Event {
	ev, ok := <-p.events
	if !ok {
		return nil
	}
	return ev
}

type fakeSyncer struct{ synced bool }

func (s *fakeSyncer) NeedsSync() { s.synced = true }

// post sends the events through the source's polling goroutine and waits for
// them to arrive.
func post(t *testing.T, p *fakePollable, s *Source, events ...tcell.Event) {
	t.Helper()
	for _, ev := range events {
		p.events <- ev
	}
	deadline := time.Now().Add(time.Second)
	for len(s.events) < len(events) {
		if time.Now().After(deadline) {
			t.Fatal("events did not arrive at source")
		}
		time.Sleep(time.Millisecond)
	}
}

func newTestSource(holdTicks int) (*fakePollable, *Source, *fakeSyncer) {
	p := &fakePollable{events: make(chan tcell.Event)}
	syncer := &fakeSyncer{}
	return p, NewSource(p, syncer, holdTicks), syncer
}

func TestSourceKeyboard(t *testing.T) {

	t.Run("held for reported tick only", func(t *testing.T) {
		p, s, _ := newTestSource(1)
		defer close(p.events)
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()

		post(t, p, s, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
		s.Capture(keyboard, mouse)
		if !keyboard.Pressed(input.KeyCodeW) || !keyboard.JustPressed(input.KeyCodeW) {
			t.Error("reported key not pressed")
		}

		keyboard.Clear()
		post(t, p, s, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
		s.Capture(keyboard, mouse)
		if !keyboard.Pressed(input.KeyCodeW) || keyboard.JustPressed(input.KeyCodeW) {
			t.Error("repeated key should be held but not just pressed")
		}

		keyboard.Clear()
		s.Capture(keyboard, mouse)
		if keyboard.Pressed(input.KeyCodeW) || !keyboard.JustReleased(input.KeyCodeW) {
			t.Error("unreported key not released")
		}
	})

	t.Run("hold ticks", func(t *testing.T) {
		p, s, _ := newTestSource(3)
		defer close(p.events)
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()

		post(t, p, s, tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
		expected := []bool{true, true, true, false}
		for i, e := range expected {
			keyboard.Clear()
			s.Capture(keyboard, mouse)
			if keyboard.Pressed(input.KeyCodeS) != e || keyboard.Pressed(input.KeyCodeControlLeft) != e {
				t.Errorf("tick %d: expected held to be %t", i+1, e)
			}
		}
	})

	t.Run("ctrl-c quits", func(t *testing.T) {
		p, s, _ := newTestSource(1)
		defer close(p.events)
		keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()

		post(t, p, s, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
		s.Capture(keyboard, mouse)
		select {
		case <-s.Quit():
		default:
			t.Error("quit channel not closed")
		}
		if len(keyboard.GetPressed()) != 0 {
			t.Error("ctrl-c should not press keys:", keyboard.GetPressed())
		}
	})
}

func TestSourceMouse(t *testing.T) {
	p, s, _ := newTestSource(1)
	defer close(p.events)
	keyboard, mouse := input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]()

	post(t, p, s, tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	s.Capture(keyboard, mouse)
	if !mouse.Pressed(input.MouseButtonLeft) {
		t.Error("left button not pressed")
	}

	mouse.Clear()
	s.Capture(keyboard, mouse)
	if !mouse.Pressed(input.MouseButtonLeft) {
		t.Error("mouse button released without a release event")
	}

	mouse.Clear()
	post(t, p, s,
		tcell.NewEventMouse(0, 0, tcell.Button1|tcell.Button2, tcell.ModNone),
		tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone),
	)
	s.Capture(keyboard, mouse)
	if mouse.Pressed(input.MouseButtonLeft) || mouse.Pressed(input.MouseButtonRight) {
		t.Error("buttons still pressed after release event")
	}
	if !mouse.JustPressed(input.MouseButtonRight) {
		t.Error("click within a single tick not registered as just pressed")
	}
}

func TestSourceResize(t *testing.T) {
	p, s, syncer := newTestSource(1)
	defer close(p.events)

	post(t, p, s, tcell.NewEventResize(80, 24))
	s.Capture(input.NewButtonInput[input.KeyCode](), input.NewButtonInput[input.MouseButton]())
	if !syncer.synced {
		t.Error("resize did not request sync")
	}
}
