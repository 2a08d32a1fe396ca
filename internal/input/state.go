package input

// ButtonState is a per-tick snapshot of a device's buttons, as consumed by
// Binding.Matches.
type ButtonState[T comparable] interface {
	// Pressed returns whether the button is currently held down.
	Pressed(T) bool
	// JustPressed returns whether the button went down on this tick.
	JustPressed(T) bool
}

// ButtonInput tracks the raw state of a device's buttons across ticks.
// Implements ButtonState.
//
// Hosts call Clear at the start of every tick and then Press / Release
// according to the events of that tick.
type ButtonInput[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// NewButtonInput returns a pointer to a new ButtonInput with no buttons
// pressed.
func NewButtonInput[T comparable]() *ButtonInput[T] {
	return &ButtonInput[T]{
		pressed:      make(map[T]struct{}),
		justPressed:  make(map[T]struct{}),
		justReleased: make(map[T]struct{}),
	}
}

// Press registers a press of the given button.
// Pressing a button which is already held does not make it just-pressed again.
func (in *ButtonInput[T]) Press(button T) {
	if _, held := in.pressed[button]; !held {
		in.justPressed[button] = struct{}{}
	}
	in.pressed[button] = struct{}{}
}

// Release registers a release of the given button.
func (in *ButtonInput[T]) Release(button T) {
	if _, held := in.pressed[button]; held {
		delete(in.pressed, button)
		in.justReleased[button] = struct{}{}
	}
}

// ReleaseAll releases every currently held button.
func (in *ButtonInput[T]) ReleaseAll() {
	for button := range in.pressed {
		in.Release(button)
	}
}

// Clear forgets which buttons were just pressed or just released.
// Held buttons remain held.
func (in *ButtonInput[T]) Clear() {
	clear(in.justPressed)
	clear(in.justReleased)
}

// Pressed returns whether the button is currently held down.
func (in *ButtonInput[T]) Pressed(button T) bool {
	_, ok := in.pressed[button]
	return ok
}

// JustPressed returns whether the button went down since the last Clear.
func (in *ButtonInput[T]) JustPressed(button T) bool {
	_, ok := in.justPressed[button]
	return ok
}

// JustReleased returns whether the button went up since the last Clear.
func (in *ButtonInput[T]) JustReleased(button T) bool {
	_, ok := in.justReleased[button]
	return ok
}

// GetPressed returns all currently held buttons in no particular order.
func (in *ButtonInput[T]) GetPressed() []T {
	buttons := make([]T, 0, len(in.pressed))
	for button := range in.pressed {
		buttons = append(buttons, button)
	}
	return buttons
}
