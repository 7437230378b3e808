package execution

import (
	"errors"
	"testing"

	"tsr/internal/domain"
	"tsr/suite"
)

func TestRunner_ExecutesAllSuites(t *testing.T) {
	reg := suite.NewRegistry()

	ok := suite.NewFuncSuite(reg, "healthy")
	ok.Register("passes", func() error { return nil }, false)
	ok.Register("fails", func() error { return errors.New("boom") }, false)

	runner := NewRunner(nil)
	rep, err := runner.Execute(reg.Suites(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rep.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(rep.Records))
	}
	if rep.Elapsed < 0 {
		t.Errorf("expected non-negative elapsed, got %v", rep.Elapsed)
	}

	out := rep.Output(reg.Len())
	if out.Meta.PassedCases != 1 || out.Meta.FailedCases != 1 {
		t.Errorf("expected 1 passed and 1 failed, got %+v", out.Meta)
	}
	if len(out.Failures) != 1 || out.Failures[0].Name != "fails" {
		t.Errorf("expected the failing case in failures, got %+v", out.Failures)
	}
}

func TestRunner_IgnoredSuiteReportsEveryCaseIgnored(t *testing.T) {
	reg := suite.NewRegistry()

	skipped := suite.NewFuncSuite(reg, "skipped")
	skipped.SetIgnored(true)
	var ran bool
	skipped.Register("first", func() error { ran = true; return nil }, false)
	skipped.Register("second", func() error { ran = true; return nil }, false)

	runner := NewRunner(nil)
	rep, err := runner.Execute(reg.Suites(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ran {
		t.Error("cases of an ignored suite must not run")
	}
	if len(rep.Records) != 2 {
		t.Fatalf("expected 2 ignored records, got %d", len(rep.Records))
	}
	for _, rec := range rep.Records {
		if rec.Status != domain.StatusIgnored {
			t.Errorf("expected ignored status, got %s for %s", rec.Status, rec.Name)
		}
	}
}

func TestRunner_AbortedSuiteDoesNotStopOthers(t *testing.T) {
	reg := suite.NewRegistry()

	broken := suite.NewFuncSuite(reg, "broken")
	broken.On(suite.BeforeAll, func() error { return errors.New("setup broken") })
	broken.Register("never", func() error { return nil }, false)

	healthy := suite.NewFuncSuite(reg, "healthy")
	healthy.Register("passes", func() error { return nil }, false)

	runner := NewRunner(nil)
	rep, err := runner.Execute(reg.Suites(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rep.Aborted) != 1 || rep.Aborted[0].Suite != "broken" {
		t.Fatalf("expected the broken suite to be recorded as aborted, got %+v", rep.Aborted)
	}
	if len(rep.Records) != 1 || rep.Records[0].Suite != "healthy" {
		t.Errorf("expected only the healthy suite's record, got %+v", rep.Records)
	}

	out := rep.Output(reg.Len())
	if out.Meta.AbortedSuites != 1 {
		t.Errorf("expected 1 aborted suite in meta, got %d", out.Meta.AbortedSuites)
	}
}
