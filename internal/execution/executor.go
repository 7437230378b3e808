package execution

import (
	"time"

	"tsr/internal/domain"
	"tsr/suite"
)

// Report aggregates the outcome of driving a set of suites once.
type Report struct {
	Records []domain.CaseRecord
	Aborted []domain.SuiteError
	Elapsed time.Duration
}

// Executor runs suites and returns per-case records.
type Executor interface {
	Execute(suites []suite.Suite, l suite.Listener) (*Report, error)
}
