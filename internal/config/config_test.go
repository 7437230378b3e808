package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.OutputJSONFile != DefaultOutputJSONFile {
		t.Errorf("expected OutputJSONFile %s, got %s", DefaultOutputJSONFile, cfg.OutputJSONFile)
	}
	if cfg.OutputJSONDir != DefaultOutputJSONDir {
		t.Errorf("expected OutputJSONDir %s, got %s", DefaultOutputJSONDir, cfg.OutputJSONDir)
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		suffix string
	}{
		{
			name: "default layout",
			config: &Config{
				ProjectPath:    ".",
				OutputJSONFile: "run-results.json",
				OutputJSONDir:  "storage",
			},
			suffix: filepath.Join("storage", "run-results.json"),
		},
		{
			name: "custom project path",
			config: &Config{
				ProjectPath:    "/project",
				OutputJSONFile: "out.json",
				OutputJSONDir:  "results",
			},
			suffix: filepath.Join("project", "results", "out.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.GetOutputPath()
			if !filepath.IsAbs(got) {
				t.Errorf("expected an absolute path, got %s", got)
			}
			if !strings.HasSuffix(got, tt.suffix) {
				t.Errorf("expected path ending in %s, got %s", tt.suffix, got)
			}
		})
	}
}

func TestConfig_GetHistoryDSN(t *testing.T) {
	cfg := New()

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_USERNAME", "")
		t.Setenv("DB_PASSWORD", "")
		dsn := cfg.GetHistoryDSN()
		if dsn != "root:@tcp(127.0.0.1:3306)/" {
			t.Errorf("unexpected default DSN: %s", dsn)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "3307")
		t.Setenv("DB_USERNAME", "runner")
		t.Setenv("DB_PASSWORD", "secret")
		dsn := cfg.GetHistoryDSN()
		if dsn != "runner:secret@tcp(db.internal:3307)/" {
			t.Errorf("unexpected DSN: %s", dsn)
		}
	})
}

func TestConfig_GetHistoryDatabase(t *testing.T) {
	cfg := New()

	t.Run("default", func(t *testing.T) {
		t.Setenv("HISTORY_DATABASE", "")
		if got := cfg.GetHistoryDatabase(); got != DefaultHistoryDatabase {
			t.Errorf("expected %s, got %s", DefaultHistoryDatabase, got)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("HISTORY_DATABASE", "ci_history")
		if got := cfg.GetHistoryDatabase(); got != "ci_history" {
			t.Errorf("expected ci_history, got %s", got)
		}
	})
}
