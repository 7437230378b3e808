package report

import (
	"time"

	"tsr/internal/domain"
	"tsr/suite"
)

// Recorder is a Listener that collects one CaseRecord per notification,
// in the order the engine reports them.
type Recorder struct {
	records []domain.CaseRecord
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Start(c *suite.Case) {}

func (r *Recorder) Ignore(c *suite.Case) {
	r.records = append(r.records, domain.CaseRecord{
		Suite:  c.Suite().Name(),
		Name:   c.Name(),
		Status: domain.StatusIgnored,
	})
}

func (r *Recorder) Pass(c *suite.Case, elapsed time.Duration) {
	r.records = append(r.records, domain.CaseRecord{
		Suite:     c.Suite().Name(),
		Name:      c.Name(),
		Status:    domain.StatusPassed,
		ElapsedMS: elapsed.Milliseconds(),
	})
}

func (r *Recorder) Fail(c *suite.Case, err error, elapsed time.Duration) {
	r.records = append(r.records, domain.CaseRecord{
		Suite:     c.Suite().Name(),
		Name:      c.Name(),
		Status:    domain.StatusFailed,
		Error:     err.Error(),
		ElapsedMS: elapsed.Milliseconds(),
	})
}

// Records returns every collected record in report order.
func (r *Recorder) Records() []domain.CaseRecord { return r.records }

// Failures returns only the failed records.
func (r *Recorder) Failures() []domain.CaseRecord {
	var out []domain.CaseRecord
	for _, rec := range r.records {
		if rec.Status == domain.StatusFailed {
			out = append(out, rec)
		}
	}
	return out
}
