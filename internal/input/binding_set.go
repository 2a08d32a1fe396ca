package input

// BindingSet is implemented by control schemes which provide a default
// configuration of named bindings.
//
// BindingNames and Bindings must be of the same length and correspond
// positionally; the i-th name is the action triggered by the i-th binding.
// Names may repeat to bind several chords to one action.
type BindingSet interface {
	BindingNames() []string
	Bindings() []Binding
}

// Entry is a named binding as held by a Registry.
type Entry struct {
	Name    string
	Binding Binding
}

// EntriesOf pairs up the names and bindings of the given set.
//
// If the set provides a different number of names than bindings, the result
// is truncated to the shorter of the two.
func EntriesOf(set BindingSet) []Entry {
	names := set.BindingNames()
	bindings := set.Bindings()

	n := len(names)
	if len(bindings) < n {
		n = len(bindings)
	}

	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{Name: names[i], Binding: bindings[i]}
	}
	return entries
}
