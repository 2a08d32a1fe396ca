package host

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordbind/internal/control/action"
	"github.com/ja-he/chordbind/internal/input"
)

// Dispatcher performs the actions bound to input action names on every frame
// the name is active.
type Dispatcher struct {
	actions map[string][]action.Action
}

// NewDispatcher returns a pointer to a new Dispatcher with no actions.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		actions: make(map[string][]action.Action),
	}
}

// Bind adds an action to perform while the named input action is active.
func (d *Dispatcher) Bind(name string, a action.Action) {
	d.actions[name] = append(d.actions[name], a)
}

// Dispatch performs the bound actions of all active names, ordered by name.
// It can be used as a System.
func (d *Dispatcher) Dispatch(frame uint64, registry *input.Registry) {
	names := make([]string, 0, len(d.actions))
	for name := range d.actions {
		if registry.IsActive(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		for _, a := range d.actions[name] {
			log.Trace().Uint64("frame", frame).Str("name", name).Str("action", a.Explain()).Msg("dispatching")
			a.Do()
		}
	}
}
