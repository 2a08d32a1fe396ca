package action

// Action is something to be done in response to an input action being active.
type Action interface {
	// Do performs the action.
	Do()

	// Explain returns a short human-readable explanation of what Do does.
	Explain() string
}
