package domain

// Status classifies the outcome of one case.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusIgnored Status = "ignored"
)

// CaseRecord is the reported outcome of one executed or skipped case.
type CaseRecord struct {
	Suite     string `json:"suite"`
	Name      string `json:"name"`
	Status    Status `json:"status"`
	Error     string `json:"error,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
	Resolved  bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}

// SuiteError records a suite whose setup or teardown aborted its run.
type SuiteError struct {
	Suite string `json:"suite"`
	Error string `json:"error"`
}

// RunMeta contains metadata about one run of the registry.
type RunMeta struct {
	Suites          int     `json:"suites"`
	AbortedSuites   int     `json:"aborted_suites"`
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	IgnoredCases    int     `json:"ignored_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete serialized result of one run.
type RunOutput struct {
	Meta     RunMeta      `json:"meta"`
	Failures []CaseRecord `json:"failures"`
	Aborted  []SuiteError `json:"aborted,omitempty"`
}
