package suite

// Registry is an explicit collection of suites for a driver to walk.
// Suites handed a registry at construction register themselves exactly
// once; there is no process-global registry.
type Registry struct {
	order  []string
	suites map[string]Suite
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{suites: make(map[string]Suite)}
}

// Register inserts s keyed by its name. Re-registering a name replaces the
// prior suite but keeps its original insertion slot.
func (r *Registry) Register(s Suite) {
	if _, ok := r.suites[s.Name()]; !ok {
		r.order = append(r.order, s.Name())
	}
	r.suites[s.Name()] = s
}

// Suites returns the registered suites in registration order.
func (r *Registry) Suites() []Suite {
	out := make([]Suite, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.suites[name])
	}
	return out
}

// Lookup finds a suite by name.
func (r *Registry) Lookup(name string) (Suite, bool) {
	s, ok := r.suites[name]
	return s, ok
}

// Len returns the number of registered suites.
func (r *Registry) Len() int { return len(r.suites) }
