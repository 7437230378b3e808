// Package suite is a minimal test-execution runtime: suites hold named
// cases and lifecycle hooks, Run drives the cases sequentially and reports
// each outcome to a Listener. Two variants share one engine: FuncSuite
// binds cases as plain functions, InstanceSuite binds them against a fresh
// fixture per case.
package suite

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrHookKind is returned when a hook is registered under a kind
	// outside the scope the registration method accepts.
	ErrHookKind = errors.New("invalid hook kind")
	// ErrNoCompanion is returned when a suite-scoped hook runs on an
	// instance suite that has no companion factory.
	ErrNoCompanion = errors.New("companion not implemented")
)

// Suite is the contract shared by all case-binding variants.
type Suite interface {
	// Name returns the suite name.
	Name() string
	// Ignored reports whether the whole suite should be skipped. Drivers
	// check this before calling Run.
	Ignored() bool
	// Len returns the number of registered cases.
	Len() int
	// Cases returns the cases in insertion order.
	Cases() []*Case
	// Case looks up a case by name.
	Case(name string) (*Case, bool)
	// Run drives every case through l. An error from a suite-scoped hook
	// aborts the run and is returned; case failures are reported to l and
	// never abort the run.
	Run(l Listener) error
}

// driver supplies the variant-specific suite-scoped hook invocation; the
// case-binding strategy itself is baked into each Case at registration.
type driver interface {
	beforeAll() error
	afterAll() error
}

// core implements the shared run protocol. Variants embed it and register
// themselves as its driver.
type core struct {
	name    string
	ignored bool
	order   []string
	cases   map[string]*Case
	driver  driver
}

func newCore(name string, d driver) core {
	return core{name: name, cases: make(map[string]*Case), driver: d}
}

func (s *core) Name() string { return s.name }

func (s *core) Ignored() bool { return s.ignored }

// SetIgnored marks the whole suite as skipped.
func (s *core) SetIgnored(ignored bool) { s.ignored = ignored }

func (s *core) Len() int { return len(s.cases) }

func (s *core) Cases() []*Case {
	out := make([]*Case, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.cases[name])
	}
	return out
}

func (s *core) Case(name string) (*Case, bool) {
	c, ok := s.cases[name]
	return c, ok
}

// add inserts c under its name. Re-registering a name replaces the prior
// case but keeps its original insertion slot.
func (s *core) add(c *Case) {
	if _, ok := s.cases[c.name]; !ok {
		s.order = append(s.order, c.name)
	}
	s.cases[c.name] = c
}

// Run executes the suite: suite-scoped before hooks, then every case in
// insertion order, then suite-scoped after hooks. A before-hook error
// aborts everything including the after hooks; case failures are confined
// to their case.
func (s *core) Run(l Listener) error {
	if err := s.driver.beforeAll(); err != nil {
		return fmt.Errorf("suite %s: before-all: %w", s.name, err)
	}
	for _, name := range s.order {
		c := s.cases[name]
		if c.ignored {
			l.Ignore(c)
			continue
		}
		l.Start(c)
		start := time.Now()
		err := c.invoke()
		elapsed := time.Since(start)
		if err != nil {
			l.Fail(c, err, elapsed)
		} else {
			l.Pass(c, elapsed)
		}
	}
	if err := s.driver.afterAll(); err != nil {
		return fmt.Errorf("suite %s: after-all: %w", s.name, err)
	}
	return nil
}

// recovered runs fn and converts a panic into an error, so one failing
// case cannot take down the rest of the run.
func recovered(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
