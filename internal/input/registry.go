package input

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// RegistryState enumerates the lifecycle states of a Registry.
type RegistryState int

const (
	// Uninitialized registries have no entries.
	Uninitialized RegistryState = iota
	// Configured registries have entries, but no update has been run yet.
	Configured
	// Active registries have had at least one update.
	Active
)

// String returns a human-readable name for the state.
func (s RegistryState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configured:
		return "configured"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Registry holds named bindings and the set of actions active on the current
// tick.
//
// Bindings are registered once at startup. Update is then called once per
// tick, after raw input for that tick has been captured, and IsActive can be
// queried by game logic.
type Registry struct {
	mtx     sync.RWMutex
	entries []Entry
	active  map[string]struct{}
	updated bool

	logger zerolog.Logger
}

// NewRegistry returns a pointer to a new, empty Registry that reports
// diagnostics to the given logger.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		entries: make([]Entry, 0),
		active:  make(map[string]struct{}),
		logger:  logger,
	}
}

// Register adds the binding under the given action name.
// Names need not be unique; if several bindings share a name, the action is
// active when any of them matches.
func (r *Registry) Register(name string, binding Binding) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.entries = append(r.entries, Entry{Name: name, Binding: binding.sorted()})
}

// RegisterMany registers all given entries in order.
func (r *Registry) RegisterMany(entries []Entry) {
	for _, e := range entries {
		r.Register(e.Name, e.Binding)
	}
}

// RegisterFromSet registers the default configuration of the given binding
// set.
// A set with mismatched name and binding counts is registered truncated to
// the shorter list, and the mismatch is logged.
func (r *Registry) RegisterFromSet(set BindingSet) {
	names, bindings := len(set.BindingNames()), len(set.Bindings())
	if names != bindings {
		r.logger.Warn().
			Int("names", names).
			Int("bindings", bindings).
			Msgf("binding set %T has mismatched name and binding counts, truncating", set)
	}
	r.RegisterMany(EntriesOf(set))
}

// RegisterDefaults registers the bindings of the zero value of S.
func RegisterDefaults[S BindingSet](r *Registry) {
	var set S
	r.RegisterFromSet(set)
}

// Update recomputes the set of active actions from the given device state.
// The previous set is replaced entirely.
func (r *Registry) Update(keyboard ButtonState[KeyCode], mouse ButtonState[MouseButton]) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	active := make(map[string]struct{})
	for _, e := range r.entries {
		if e.Binding.Matches(keyboard, mouse) {
			active[e.Name] = struct{}{}
		}
	}
	r.active = active
	r.updated = true
}

// IsActive returns whether the named action was active on the last update.
func (r *Registry) IsActive(name string) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	_, ok := r.active[name]
	return ok
}

// Active returns the names of all actions active on the last update, sorted.
func (r *Registry) Active() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.active))
	for name := range r.active {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a copy of all registered entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// State returns the lifecycle state of the registry.
func (r *Registry) State() RegistryState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	switch {
	case r.updated:
		return Active
	case len(r.entries) > 0:
		return Configured
	default:
		return Uninitialized
	}
}

// DiagnoseConflicts logs (as warnings) and returns every entry whose
// canonical binding form is seen for the first time, in registration order.
//
// Entries repeating an earlier canonical form are not reported here; see
// Collisions for those.
func (r *Registry) DiagnoseConflicts() []Entry {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	seen := make(map[string]struct{})
	reported := make([]Entry, 0)
	for _, e := range r.entries {
		form := e.Binding.CanonicalForm()
		if _, ok := seen[form]; ok {
			continue
		}
		seen[form] = struct{}{}
		r.logger.Warn().Str("name", e.Name).Str("binding", form).Msgf("%s: %s", e.Name, form)
		reported = append(reported, e)
	}
	return reported
}

// Collision is an entry whose canonical binding form was already registered
// by an earlier entry.
type Collision struct {
	Entry
	// FirstName is the name of the earliest entry with the same form.
	FirstName string
}

// Collisions returns, in registration order, every entry whose canonical
// binding form equals that of an earlier entry.
func (r *Registry) Collisions() []Collision {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	first := make(map[string]string)
	collisions := make([]Collision, 0)
	for _, e := range r.entries {
		form := e.Binding.CanonicalForm()
		if name, ok := first[form]; ok {
			collisions = append(collisions, Collision{Entry: e, FirstName: name})
			continue
		}
		first[form] = e.Name
	}
	return collisions
}
