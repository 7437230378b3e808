package execution

import (
	"time"

	"github.com/hashicorp/go-hclog"
	"tsr/internal/domain"
	"tsr/internal/report"
	"tsr/suite"
)

// Runner executes suites strictly sequentially, one case at a time, in
// registration order.
type Runner struct {
	logger hclog.Logger
}

// NewRunner creates a new Runner. A nil logger disables diagnostics.
func NewRunner(logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{logger: logger}
}

// Execute drives every suite through l. A suite flagged as ignored is not
// run: each of its cases is reported ignored instead, so totals still add
// up. A suite whose setup or teardown fails is recorded as aborted and the
// remaining suites still run.
func (r *Runner) Execute(suites []suite.Suite, l suite.Listener) (*Report, error) {
	rec := report.NewRecorder()
	ml := report.MultiListener{rec}
	if l != nil {
		ml = append(ml, l)
	}

	var aborted []domain.SuiteError
	start := time.Now()
	for _, s := range suites {
		if s.Ignored() {
			r.logger.Debug("skipping ignored suite", "suite", s.Name(), "cases", s.Len())
			for _, c := range s.Cases() {
				ml.Ignore(c)
			}
			continue
		}
		r.logger.Debug("running suite", "suite", s.Name(), "cases", s.Len())
		if err := s.Run(ml); err != nil {
			r.logger.Error("suite aborted", "suite", s.Name(), "error", err)
			aborted = append(aborted, domain.SuiteError{Suite: s.Name(), Error: err.Error()})
		}
	}

	return &Report{
		Records: rec.Records(),
		Aborted: aborted,
		Elapsed: time.Since(start),
	}, nil
}

// Output builds the serialized run result from a report.
func (rep *Report) Output(suiteCount int) *domain.RunOutput {
	meta := domain.RunMeta{
		Suites:          suiteCount,
		AbortedSuites:   len(rep.Aborted),
		TotalCases:      len(rep.Records),
		Duration:        rep.Elapsed.String(),
		DurationSeconds: rep.Elapsed.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	var failures []domain.CaseRecord
	for _, r := range rep.Records {
		switch r.Status {
		case domain.StatusPassed:
			meta.PassedCases++
		case domain.StatusFailed:
			meta.FailedCases++
			failures = append(failures, r)
		case domain.StatusIgnored:
			meta.IgnoredCases++
		}
	}
	return &domain.RunOutput{Meta: meta, Failures: failures, Aborted: rep.Aborted}
}
