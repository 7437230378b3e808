package report

import (
	"errors"
	"testing"
	"time"

	"tsr/internal/domain"
	"tsr/suite"
)

func TestRecorder_CollectsOutcomesInOrder(t *testing.T) {
	s := suite.NewFuncSuite(nil, "Math")
	s.Register("addsCorrectly", func() error { return nil }, false)
	s.Register("dividesByZero", func() error { return errors.New("boom") }, false)
	s.Register("subtractsCorrectly", func() error { return nil }, true)

	rec := NewRecorder()
	if err := s.Run(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := rec.Records()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	tests := []struct {
		name   string
		status domain.Status
	}{
		{"addsCorrectly", domain.StatusPassed},
		{"dividesByZero", domain.StatusFailed},
		{"subtractsCorrectly", domain.StatusIgnored},
	}
	for i, tt := range tests {
		if records[i].Name != tt.name {
			t.Errorf("record %d: expected name %s, got %s", i, tt.name, records[i].Name)
		}
		if records[i].Status != tt.status {
			t.Errorf("record %d: expected status %s, got %s", i, tt.status, records[i].Status)
		}
		if records[i].Suite != "Math" {
			t.Errorf("record %d: expected suite Math, got %s", i, records[i].Suite)
		}
		if records[i].ElapsedMS < 0 {
			t.Errorf("record %d: negative elapsed %d", i, records[i].ElapsedMS)
		}
	}

	if records[1].Error != "boom" {
		t.Errorf("expected failure error boom, got %q", records[1].Error)
	}

	failures := rec.Failures()
	if len(failures) != 1 || failures[0].Name != "dividesByZero" {
		t.Errorf("expected exactly the failed record, got %+v", failures)
	}
}

func TestMultiListener_FansOut(t *testing.T) {
	s := suite.NewFuncSuite(nil, "fanout")
	s.Register("noop", func() error { return nil }, false)

	first := NewRecorder()
	second := NewRecorder()
	ml := MultiListener{first, second}

	if err := s.Run(ml); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Records()) != 1 || len(second.Records()) != 1 {
		t.Errorf("expected both listeners to receive the outcome, got %d and %d",
			len(first.Records()), len(second.Records()))
	}
}

func TestRecorder_ElapsedMilliseconds(t *testing.T) {
	rec := NewRecorder()
	s := suite.NewFuncSuite(nil, "timed")
	c := s.Register("slow", func() error { return nil }, false)

	rec.Pass(c, 1500*time.Millisecond)
	if got := rec.Records()[0].ElapsedMS; got != 1500 {
		t.Errorf("expected 1500ms, got %d", got)
	}
}
