package suite

import (
	"errors"
	"fmt"
)

// InstanceSuite binds every case against a fresh fixture F built by the
// suite's factory, so no per-case state leaks between cases. Suite-scoped
// hooks run against a single companion C, created lazily the first time a
// BeforeAll or AfterAll hook needs it.
type InstanceSuite[F, C any] struct {
	core
	newFixture   func() (*F, error)
	newCompanion func() (*C, error)
	companion    *C

	beforeEach  hookSet[func(*F) error]
	afterEach   hookSet[func(*F) error]
	beforeSuite hookSet[func(*C) error]
	afterSuite  hookSet[func(*C) error]
}

// NewInstanceSuite creates an instance-bound suite whose cases each run
// against a fresh fixture from factory. When reg is non-nil the suite
// registers itself once, at construction.
func NewInstanceSuite[F, C any](reg *Registry, name string, factory func() (*F, error)) *InstanceSuite[F, C] {
	s := &InstanceSuite[F, C]{newFixture: factory}
	s.core = newCore(name, s)
	if reg != nil {
		reg.Register(s)
	}
	return s
}

// SetCompanion supplies the factory for the shared suite-scoped companion.
// Without one, invoking a BeforeAll or AfterAll hook fails with
// ErrNoCompanion.
func (s *InstanceSuite[F, C]) SetCompanion(factory func() (*C, error)) {
	s.newCompanion = factory
}

// NewCase creates a case bound to this suite without inserting it into the
// case map.
func (s *InstanceSuite[F, C]) NewCase(name string, body func(*F) error, ignored bool) *Case {
	c := &Case{name: name, ignored: ignored, owner: s}
	c.invoke = func() error { return s.runCase(body) }
	return c
}

// Register creates the named case and inserts it, replacing any prior case
// with the same name.
func (s *InstanceSuite[F, C]) Register(name string, body func(*F) error, ignored bool) *Case {
	c := s.NewCase(name, body, ignored)
	s.add(c)
	return c
}

// OnEach registers a case-scoped hook. Only BeforeEach and AfterEach are
// valid here; anything else fails with ErrHookKind.
func (s *InstanceSuite[F, C]) OnEach(kind Kind, fn func(*F) error) error {
	switch kind {
	case BeforeEach:
		s.beforeEach.add(fn)
	case AfterEach:
		s.afterEach.add(fn)
	default:
		return fmt.Errorf("%w: %s is not case-scoped", ErrHookKind, kind)
	}
	return nil
}

// OnSuite registers a suite-scoped hook. Only BeforeAll and AfterAll are
// valid here; anything else fails with ErrHookKind.
func (s *InstanceSuite[F, C]) OnSuite(kind Kind, fn func(*C) error) error {
	switch kind {
	case BeforeAll:
		s.beforeSuite.add(fn)
	case AfterAll:
		s.afterSuite.add(fn)
	default:
		return fmt.Errorf("%w: %s is not suite-scoped", ErrHookKind, kind)
	}
	return nil
}

// runCase builds a fresh fixture, runs the before-each hooks and the body,
// then runs the after-each hooks against the same fixture on every exit
// path. Cleanup errors are joined with the body's rather than replacing it.
func (s *InstanceSuite[F, C]) runCase(body func(*F) error) error {
	f, err := s.newFixture()
	if err != nil {
		return fmt.Errorf("new fixture: %w", err)
	}
	err = recovered(func() error {
		for _, h := range s.beforeEach.fns {
			if err := h(f); err != nil {
				return err
			}
		}
		return body(f)
	})
	for _, h := range s.afterEach.fns {
		h := h
		err = errors.Join(err, recovered(func() error { return h(f) }))
	}
	return err
}

// getCompanion returns the shared companion, creating it on first use.
func (s *InstanceSuite[F, C]) getCompanion() (*C, error) {
	if s.companion != nil {
		return s.companion, nil
	}
	if s.newCompanion == nil {
		return nil, ErrNoCompanion
	}
	c, err := s.newCompanion()
	if err != nil {
		return nil, fmt.Errorf("new companion: %w", err)
	}
	s.companion = c
	return c, nil
}

func (s *InstanceSuite[F, C]) beforeAll() error {
	if s.beforeSuite.len() == 0 {
		return nil
	}
	c, err := s.getCompanion()
	if err != nil {
		return err
	}
	for _, h := range s.beforeSuite.fns {
		if err := h(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *InstanceSuite[F, C]) afterAll() error {
	if s.afterSuite.len() == 0 {
		return nil
	}
	c, err := s.getCompanion()
	if err != nil {
		return err
	}
	for _, h := range s.afterSuite.fns {
		if err := h(c); err != nil {
			return err
		}
	}
	return nil
}
