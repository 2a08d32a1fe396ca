package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordbind/internal/input"
)

// Source is a raw input source reading key and mouse events from a terminal.
// Implements host.Source.
//
// Terminals report key presses (and their repeats) but no releases. A key
// therefore counts as held on the tick it was reported and for holdTicks-1
// further ticks, after which it is released unless reported again.
// Mouse events carry the full button state, so mouse buttons are pressed and
// released exactly as reported.
//
// Ctrl-C closes the channel returned by Quit.
type Source struct {
	events chan tcell.Event

	syncer    ScreenSynchronizer
	holdTicks int
	heldFor   map[input.KeyCode]int

	quit     chan struct{}
	quitOnce sync.Once
}

// NewSource returns a pointer to a new Source reading events from the given
// pollable on a separate goroutine. The goroutine ends when the pollable
// returns a nil event (i.E. the screen is finalized).
//
// Resize events notify the given synchronizer, which may be nil.
func NewSource(pollable EventPollable, syncer ScreenSynchronizer, holdTicks int) *Source {
	if holdTicks < 1 {
		holdTicks = 1
	}
	s := &Source{
		events:    make(chan tcell.Event, 256),
		syncer:    syncer,
		holdTicks: holdTicks,
		heldFor:   make(map[input.KeyCode]int),
		quit:      make(chan struct{}),
	}

	go func() {
		for {
			ev := pollable.PollEvent()
			if ev == nil {
				log.Debug().Msg("event polling ended")
				return
			}
			s.events <- ev
		}
	}()

	return s
}

// Quit returns a channel which is closed once the user asked to quit.
func (s *Source) Quit() <-chan struct{} {
	return s.quit
}

// Capture applies all events received since the last capture.
func (s *Source) Capture(keyboard *input.ButtonInput[input.KeyCode], mouse *input.ButtonInput[input.MouseButton]) {
	for code := range s.heldFor {
		s.heldFor[code]--
	}

	for drained := false; !drained; {
		select {
		case ev := <-s.events:
			s.apply(ev, mouse)
		default:
			drained = true
		}
	}

	for code, ticks := range s.heldFor {
		if ticks <= 0 {
			delete(s.heldFor, code)
			keyboard.Release(code)
		} else {
			keyboard.Press(code)
		}
	}
}

func (s *Source) apply(ev tcell.Event, mouse *input.ButtonInput[input.MouseButton]) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			s.quitOnce.Do(func() {
				log.Info().Msg("quit requested")
				close(s.quit)
			})
			return
		}
		codes := KeyCodesFromEvent(e)
		if codes == nil {
			log.Debug().Str("key", e.Name()).Msg("ignoring unmapped key")
			return
		}
		for _, code := range codes {
			s.heldFor[code] = s.holdTicks
		}

	case *tcell.EventMouse:
		held := make(map[input.MouseButton]bool)
		for _, button := range MouseButtonsFromMask(e.Buttons()) {
			held[button] = true
			mouse.Press(button)
		}
		for _, button := range mouse.GetPressed() {
			if !held[button] {
				mouse.Release(button)
			}
		}

	case *tcell.EventResize:
		if s.syncer != nil {
			s.syncer.NeedsSync()
		}
	}
}
