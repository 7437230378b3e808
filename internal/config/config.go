package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Filter     string
	Cases      bool
	Verbose    bool
	NoProgress bool
	History    bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	return cfg
}

// LoadEnv loads the project's .env file into the environment. A missing
// file is fine; explicit environment variables still apply.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		_ = err
	}
}

// GetOutputPath returns the full path to the output JSON file (under project so run and fails use the same file).
// Resolves to an absolute path so run and fails always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetHistoryDSN returns the MySQL DSN for the run-history store, built
// from environment variables with local defaults.
func (c *Config) GetHistoryDSN() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("DB_USERNAME")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/", user, password, host, port)
}

// GetHistoryDatabase returns the database name for the run-history store.
func (c *Config) GetHistoryDatabase() string {
	name := os.Getenv("HISTORY_DATABASE")
	if name == "" {
		name = DefaultHistoryDatabase
	}
	return name
}
