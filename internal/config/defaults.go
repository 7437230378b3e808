package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultHistoryDatabase is the default MySQL database for run history
	DefaultHistoryDatabase = "tsr_history"
)
