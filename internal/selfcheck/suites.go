// Package selfcheck defines the built-in suites the bundled binary runs.
// They exercise both binding variants end to end and double as a living
// example of the registration API.
package selfcheck

import (
	"fmt"

	"tsr/suite"
)

// Register adds the built-in suites to reg.
func Register(reg *suite.Registry) {
	registerArith(reg)
	registerCounter(reg)
}

// registerArith builds a flat-function suite with hooks shared as plain
// functions.
func registerArith(reg *suite.Registry) {
	s := suite.NewFuncSuite(reg, "Arith")

	var ready bool
	s.On(suite.BeforeAll, func() error {
		ready = true
		return nil
	})
	s.On(suite.BeforeEach, func() error {
		if !ready {
			return fmt.Errorf("suite setup did not run")
		}
		return nil
	})

	s.Register("addsCorrectly", func() error {
		if got := 2 + 2; got != 4 {
			return fmt.Errorf("expected 4, got %d", got)
		}
		return nil
	}, false)

	s.Register("multipliesCorrectly", func() error {
		if got := 6 * 7; got != 42 {
			return fmt.Errorf("expected 42, got %d", got)
		}
		return nil
	}, false)

	// Pending until negative-modulo semantics are settled.
	s.Register("modWithNegatives", func() error {
		return nil
	}, true)
}

// stack is the per-case fixture of the Counter suite: every case starts
// from a fresh, empty stack.
type stack struct {
	items []int
}

func (s *stack) push(v int) { s.items = append(s.items, v) }

func (s *stack) pop() (int, error) {
	if len(s.items) == 0 {
		return 0, fmt.Errorf("pop on empty stack")
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// scratch is the suite-scoped companion shared by the suite hooks.
type scratch struct {
	prepared bool
}

// registerCounter builds an instance-bound suite: a fresh stack per case,
// one shared companion for the suite hooks.
func registerCounter(reg *suite.Registry) {
	s := suite.NewInstanceSuite[stack, scratch](reg, "Stack", func() (*stack, error) {
		return &stack{}, nil
	})
	s.SetCompanion(func() (*scratch, error) {
		return &scratch{}, nil
	})

	s.OnSuite(suite.BeforeAll, func(c *scratch) error {
		c.prepared = true
		return nil
	})
	s.OnSuite(suite.AfterAll, func(c *scratch) error {
		if !c.prepared {
			return fmt.Errorf("companion lost between hooks")
		}
		return nil
	})
	s.OnEach(suite.BeforeEach, func(st *stack) error {
		if len(st.items) != 0 {
			return fmt.Errorf("fixture not fresh: %d leftover items", len(st.items))
		}
		return nil
	})

	s.Register("pushThenPop", func(st *stack) error {
		st.push(7)
		v, err := st.pop()
		if err != nil {
			return err
		}
		if v != 7 {
			return fmt.Errorf("expected 7, got %d", v)
		}
		return nil
	}, false)

	s.Register("popEmptyFails", func(st *stack) error {
		if _, err := st.pop(); err == nil {
			return fmt.Errorf("expected an error popping an empty stack")
		}
		return nil
	}, false)

	s.Register("lifoOrder", func(st *stack) error {
		st.push(1)
		st.push(2)
		first, _ := st.pop()
		second, _ := st.pop()
		if first != 2 || second != 1 {
			return fmt.Errorf("expected LIFO order, got %d then %d", first, second)
		}
		return nil
	}, false)
}
