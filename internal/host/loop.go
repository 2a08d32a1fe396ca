// Package host drives an input.Registry from a per-frame loop, ordering the
// capture of raw input before the registry update and both before game logic.
package host

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordbind/internal/input"
)

// Source provides the raw device input of a tick.
type Source interface {
	// Capture applies the input events of the current tick to the given device
	// state by pressing and releasing buttons.
	// The device state has already been cleared for the tick.
	Capture(keyboard *input.ButtonInput[input.KeyCode], mouse *input.ButtonInput[input.MouseButton])
}

// A System is game logic run once per frame after the registry was updated.
type System func(frame uint64, registry *input.Registry)

// Loop is the per-frame driver.
// Each step clears per-tick device state, captures input from its source,
// updates the registry and then runs all systems in the order they were
// added.
type Loop struct {
	source   Source
	registry *input.Registry

	keyboard *input.ButtonInput[input.KeyCode]
	mouse    *input.ButtonInput[input.MouseButton]

	systems []System
	frame   uint64

	metrics MetricsHandler
}

// NewLoop returns a pointer to a new Loop updating the given registry from the
// given source.
func NewLoop(source Source, registry *input.Registry) *Loop {
	return &Loop{
		source:   source,
		registry: registry,
		keyboard: input.NewButtonInput[input.KeyCode](),
		mouse:    input.NewButtonInput[input.MouseButton](),
		systems:  make([]System, 0),
	}
}

// AddSystem adds a system to run after the registry update of every step.
func (l *Loop) AddSystem(system System) {
	l.systems = append(l.systems, system)
}

// Step runs a single frame.
// The duration of the step is tracked in microseconds, see Metrics.
func (l *Loop) Step() {
	start := time.Now()
	defer func() { l.metrics.Add(uint64(time.Since(start).Microseconds())) }()

	l.frame++

	l.keyboard.Clear()
	l.mouse.Clear()
	l.source.Capture(l.keyboard, l.mouse)

	l.registry.Update(l.keyboard, l.mouse)

	for _, system := range l.systems {
		system(l.frame, l.registry)
	}
}

// Frame returns the number of the last frame run (starting at 1), or 0 if no
// frame has been run yet.
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Metrics returns the step duration metrics of the loop.
func (l *Loop) Metrics() MetricsGetter {
	return &l.metrics
}

// Run steps the loop once per interval until the context is done.
// It returns the context's error.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debug().Dur("interval", interval).Msg("frame loop started")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Uint64("frames", l.frame).Msg("frame loop stopped")
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		}
	}
}
