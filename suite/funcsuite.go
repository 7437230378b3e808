package suite

import (
	"errors"
	"fmt"
)

// FuncSuite binds cases and hooks as plain functions with no owning
// instance. All four hook kinds share the same shape here, so a single
// registration method covers the full taxonomy.
type FuncSuite struct {
	core
	beforeEach  hookSet[func() error]
	afterEach   hookSet[func() error]
	beforeSuite hookSet[func() error]
	afterSuite  hookSet[func() error]
}

// NewFuncSuite creates an empty flat-function suite. When reg is non-nil
// the suite registers itself once, at construction.
func NewFuncSuite(reg *Registry, name string) *FuncSuite {
	s := &FuncSuite{}
	s.core = newCore(name, s)
	if reg != nil {
		reg.Register(s)
	}
	return s
}

// NewCase creates a case bound to this suite without inserting it into the
// case map.
func (s *FuncSuite) NewCase(name string, body func() error, ignored bool) *Case {
	c := &Case{name: name, ignored: ignored, owner: s}
	c.invoke = func() error { return s.runCase(body) }
	return c
}

// Register creates the named case and inserts it, replacing any prior case
// with the same name.
func (s *FuncSuite) Register(name string, body func() error, ignored bool) *Case {
	c := s.NewCase(name, body, ignored)
	s.add(c)
	return c
}

// On registers fn under kind. An out-of-range kind fails with ErrHookKind.
func (s *FuncSuite) On(kind Kind, fn func() error) error {
	switch kind {
	case BeforeEach:
		s.beforeEach.add(fn)
	case AfterEach:
		s.afterEach.add(fn)
	case BeforeAll:
		s.beforeSuite.add(fn)
	case AfterAll:
		s.afterSuite.add(fn)
	default:
		return fmt.Errorf("%w: %s", ErrHookKind, kind)
	}
	return nil
}

// runCase runs the before-each hooks and the body, then the after-each
// hooks on every exit path. Cleanup errors are joined with the body's.
func (s *FuncSuite) runCase(body func() error) error {
	err := recovered(func() error {
		for _, h := range s.beforeEach.fns {
			if err := h(); err != nil {
				return err
			}
		}
		return body()
	})
	for _, h := range s.afterEach.fns {
		err = errors.Join(err, recovered(h))
	}
	return err
}

func (s *FuncSuite) beforeAll() error {
	for _, h := range s.beforeSuite.fns {
		if err := h(); err != nil {
			return err
		}
	}
	return nil
}

func (s *FuncSuite) afterAll() error {
	for _, h := range s.afterSuite.fns {
		if err := h(); err != nil {
			return err
		}
	}
	return nil
}
