package suite

import (
	"errors"
	"testing"
	"time"
)

// event captures one listener notification for assertions.
type event struct {
	kind    string
	name    string
	err     error
	elapsed time.Duration
}

// recordingListener collects every notification in order.
type recordingListener struct {
	events []event
}

func (l *recordingListener) Start(c *Case) {
	l.events = append(l.events, event{kind: "start", name: c.Name()})
}

func (l *recordingListener) Ignore(c *Case) {
	l.events = append(l.events, event{kind: "ignore", name: c.Name()})
}

func (l *recordingListener) Pass(c *Case, elapsed time.Duration) {
	l.events = append(l.events, event{kind: "pass", name: c.Name(), elapsed: elapsed})
}

func (l *recordingListener) Fail(c *Case, err error, elapsed time.Duration) {
	l.events = append(l.events, event{kind: "fail", name: c.Name(), err: err, elapsed: elapsed})
}

func (l *recordingListener) kinds() []string {
	out := make([]string, len(l.events))
	for i, e := range l.events {
		out[i] = e.kind + ":" + e.name
	}
	return out
}

func assertEvents(t *testing.T, got *recordingListener, want []string) {
	t.Helper()
	kinds := got.kinds()
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events %v, got %d: %v", len(want), want, len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestRun_MixedIgnoredAndPassing(t *testing.T) {
	s := NewFuncSuite(nil, "Math")
	s.Register("addsCorrectly", func() error { return nil }, false)
	s.Register("subtractsCorrectly", func() error { return nil }, true)

	l := &recordingListener{}
	if err := s.Run(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEvents(t, l, []string{
		"start:addsCorrectly",
		"pass:addsCorrectly",
		"ignore:subtractsCorrectly",
	})
	if l.events[1].elapsed < 0 {
		t.Errorf("expected non-negative elapsed time, got %v", l.events[1].elapsed)
	}
}

func TestRun_InsertionOrder(t *testing.T) {
	s := NewFuncSuite(nil, "ordered")
	names := []string{"charlie", "alpha", "bravo"}
	for _, name := range names {
		s.Register(name, func() error { return nil }, false)
	}

	l := &recordingListener{}
	if err := s.Run(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEvents(t, l, []string{
		"start:charlie", "pass:charlie",
		"start:alpha", "pass:alpha",
		"start:bravo", "pass:bravo",
	})
}

func TestRegister_DuplicateNameReplaces(t *testing.T) {
	s := NewFuncSuite(nil, "dups")
	var ran string
	s.Register("first", func() error { ran = "stale"; return nil }, false)
	s.Register("second", func() error { return nil }, false)
	s.Register("first", func() error { ran = "fresh"; return nil }, false)

	if s.Len() != 2 {
		t.Fatalf("expected 2 cases after replacement, got %d", s.Len())
	}

	l := &recordingListener{}
	if err := s.Run(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ran != "fresh" {
		t.Errorf("expected replacement body to run, got %q", ran)
	}

	// The replaced case keeps its original insertion slot.
	assertEvents(t, l, []string{
		"start:first", "pass:first",
		"start:second", "pass:second",
	})
}

func TestRun_FailureIsolation(t *testing.T) {
	boom := errors.New("boom")
	s := NewFuncSuite(nil, "isolated")
	s.Register("breaks", func() error { return boom }, false)
	var nextRan bool
	s.Register("survives", func() error { nextRan = true; return nil }, false)

	l := &recordingListener{}
	if err := s.Run(l); err != nil {
		t.Fatalf("case failure must not abort the run: %v", err)
	}

	assertEvents(t, l, []string{
		"start:breaks", "fail:breaks",
		"start:survives", "pass:survives",
	})
	if !errors.Is(l.events[1].err, boom) {
		t.Errorf("expected reported error to wrap boom, got %v", l.events[1].err)
	}
	if !nextRan {
		t.Error("expected the next case to run after a failure")
	}
}

func TestRun_PanicBecomesFailure(t *testing.T) {
	s := NewFuncSuite(nil, "panicky")
	s.Register("explodes", func() error { panic("kaboom") }, false)
	s.Register("survives", func() error { return nil }, false)

	l := &recordingListener{}
	if err := s.Run(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEvents(t, l, []string{
		"start:explodes", "fail:explodes",
		"start:survives", "pass:survives",
	})
	if l.events[1].err == nil {
		t.Fatal("expected a recovered panic error")
	}
}

func TestRun_BeforeSuiteFailureAborts(t *testing.T) {
	setupErr := errors.New("setup broken")
	s := NewFuncSuite(nil, "fatal")
	if err := s.On(BeforeAll, func() error { return setupErr }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var afterRan bool
	if err := s.On(AfterAll, func() error { afterRan = true; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Register("never", func() error { return nil }, false)

	l := &recordingListener{}
	err := s.Run(l)
	if !errors.Is(err, setupErr) {
		t.Fatalf("expected Run to propagate the setup error, got %v", err)
	}
	if len(l.events) != 0 {
		t.Errorf("expected no case notifications, got %v", l.kinds())
	}
	if afterRan {
		t.Error("after-suite hooks must not run when setup fails")
	}
}

func TestRun_AfterSuiteFailurePropagates(t *testing.T) {
	teardownErr := errors.New("teardown broken")
	s := NewFuncSuite(nil, "leaky")
	if err := s.On(AfterAll, func() error { return teardownErr }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Register("runs", func() error { return nil }, false)

	l := &recordingListener{}
	err := s.Run(l)
	if !errors.Is(err, teardownErr) {
		t.Fatalf("expected Run to propagate the teardown error, got %v", err)
	}
	// Cases were already processed and reported before the teardown ran.
	assertEvents(t, l, []string{"start:runs", "pass:runs"})
}

func TestRun_AfterEachRunsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	s := NewFuncSuite(nil, "cleanup")
	var cleanups int
	if err := s.On(AfterEach, func() error { cleanups++; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Register("breaks", func() error { return boom }, false)

	l := &recordingListener{}
	if err := s.Run(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleanups != 1 {
		t.Errorf("expected after-each to run exactly once, got %d", cleanups)
	}
	if !errors.Is(l.events[1].err, boom) {
		t.Errorf("expected the body error to survive cleanup, got %v", l.events[1].err)
	}
}

func TestRun_IgnoredCaseSkipsHooks(t *testing.T) {
	s := NewFuncSuite(nil, "skippy")
	var hookRan bool
	if err := s.On(BeforeEach, func() error { hookRan = true; return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Register("skipped", func() error { return nil }, true)

	l := &recordingListener{}
	if err := s.Run(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEvents(t, l, []string{"ignore:skipped"})
	if hookRan {
		t.Error("hooks must not run for an ignored case")
	}
}

func TestOn_InvalidKind(t *testing.T) {
	s := NewFuncSuite(nil, "strict")
	err := s.On(Kind(42), func() error { return nil })
	if !errors.Is(err, ErrHookKind) {
		t.Fatalf("expected ErrHookKind, got %v", err)
	}
}

func TestOn_IdempotentInsert(t *testing.T) {
	s := NewFuncSuite(nil, "idem")
	var calls int
	hook := func() error { calls++; return nil }
	if err := s.On(BeforeEach, hook); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.On(BeforeEach, hook); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Register("once", func() error { return nil }, false)

	if err := s.Run(&recordingListener{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected the hook to run once per case, got %d", calls)
	}
}

func TestOn_DistinctClosuresBothKept(t *testing.T) {
	s := NewFuncSuite(nil, "distinct")
	var ran []int
	// Both hooks come from one literal; they are different closures and
	// must both be kept.
	mk := func(id int) func() error {
		return func() error { ran = append(ran, id); return nil }
	}
	if err := s.On(AfterEach, mk(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.On(AfterEach, mk(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Register("once", func() error { return nil }, false)

	if err := s.Run(&recordingListener{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("expected both hooks to run, got %v", ran)
	}
	seen := map[int]bool{ran[0]: true, ran[1]: true}
	if !seen[1] || !seen[2] {
		t.Errorf("expected side effects from both hooks, got %v", ran)
	}
}

func TestCase_String(t *testing.T) {
	s := NewFuncSuite(nil, "Math")
	c := s.Register("addsCorrectly", func() error { return nil }, false)
	if got := c.String(); got != "addsCorrectly (Math)" {
		t.Errorf("expected %q, got %q", "addsCorrectly (Math)", got)
	}
}
