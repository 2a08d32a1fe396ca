package tui

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// ScreenHandler allows rendering to a terminal (via tcell.Screen).
// It also handles synchronization (e.g. on resize) when prompted accordingly.
type ScreenHandler struct {
	screen    tcell.Screen
	needsSync atomic.Bool
}

// NewScreenHandler initializes the given screen (with mouse reporting enabled)
// and returns a handler for it.
func NewScreenHandler(screen tcell.Screen) (*ScreenHandler, error) {
	err := screen.Init()
	if err != nil {
		return nil, fmt.Errorf("could not initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.EnableMouse()
	screen.Clear()

	return &ScreenHandler{screen: screen}, nil
}

// GetEventPollable returns the underlying screen as an EventPollable.
func (s *ScreenHandler) GetEventPollable() EventPollable {
	return s.screen
}

// Fini finalizes the screen, e.g., for clean program shutdown.
func (s *ScreenHandler) Fini() {
	s.screen.Fini()
}

// NeedsSync registers that a synchronization of the underlying screen is
// necessary.
// This is necessary on resize events.
func (s *ScreenHandler) NeedsSync() {
	s.needsSync.Store(true)
}

// Dimensions returns the current dimensions of the underlying screen.
func (s *ScreenHandler) Dimensions() (x, y, w, h int) {
	w, h = s.screen.Size()
	return 0, 0, w, h
}

// Clear clears the underlying screen.
func (s *ScreenHandler) Clear() {
	s.screen.Clear()
}

// Show shows the drawn contents, taking the necessity for synchronization into
// account.
func (s *ScreenHandler) Show() {
	if s.needsSync.CompareAndSwap(true, false) {
		s.screen.Sync()
	} else {
		s.screen.Show()
	}
}

// DrawText draws given text in a single row, starting at the given position
// and cut off after w cells.
func (s *ScreenHandler) DrawText(x, y, w int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col >= x+w {
			return
		}
		s.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// DrawBox draws a box of the given dimensions in the given style's background
// color. Note that this overwrites contents within the dimensions.
func (s *ScreenHandler) DrawBox(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// EventPollable only allows access to PollEvent of a tcell.Screen.
type EventPollable interface {
	PollEvent() tcell.Event
}

// ScreenSynchronizer allows access only to a screen handler's synchronization
// notification functionality.
type ScreenSynchronizer interface {
	NeedsSync()
}
