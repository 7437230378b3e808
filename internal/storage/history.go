package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/hashicorp/go-hclog"
	"tsr/internal/config"
	"tsr/internal/domain"
)

// HistoryStore appends run summaries to a MySQL history table, so trends
// across runs survive the single-run JSON file.
type HistoryStore struct {
	cfg    *config.Config
	logger hclog.Logger
}

// NewHistoryStore creates a new HistoryStore. A nil logger disables
// diagnostics.
func NewHistoryStore(cfg *config.Config, logger hclog.Logger) *HistoryStore {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &HistoryStore{cfg: cfg, logger: logger}
}

// Append records one run's meta row, creating the database and table on
// first use.
func (h *HistoryStore) Append(meta domain.RunMeta) error {
	dbName := h.cfg.GetHistoryDatabase()
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid history database name: %s", dbName)
	}

	db, err := sql.Open("mysql", h.cfg.GetHistoryDSN())
	if err != nil {
		return fmt.Errorf("connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database server: %w", err)
	}

	h.logger.Debug("ensuring history schema", "database", dbName)
	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)); err != nil {
		return fmt.Errorf("create history database: %w", err)
	}

	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS `+"`%s`"+`.runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		suites INT NOT NULL,
		aborted_suites INT NOT NULL,
		total_cases INT NOT NULL,
		passed_cases INT NOT NULL,
		failed_cases INT NOT NULL,
		ignored_cases INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		ran_at VARCHAR(64) NOT NULL
	)`, dbName)
	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create history table: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO `%s`.runs (suites, aborted_suites, total_cases, passed_cases, failed_cases, ignored_cases, duration_seconds, ran_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", dbName)
	_, err = db.Exec(insert,
		meta.Suites,
		meta.AbortedSuites,
		meta.TotalCases,
		meta.PassedCases,
		meta.FailedCases,
		meta.IgnoredCases,
		meta.DurationSeconds,
		meta.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert run row: %w", err)
	}

	h.logger.Debug("appended run to history",
		"database", dbName,
		"total", meta.TotalCases,
		"failed", meta.FailedCases,
	)
	return nil
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE", "`"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}
