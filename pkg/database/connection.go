package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	homedir "github.com/mitchellh/go-homedir"

	"weekplan/pkg/utils"
)

// Store wraps a results database connection and the driver it was opened with
type Store struct {
	DB     *sql.DB
	Driver string
}

// Connect opens the results database. For sqlite3 the dsn is a file path
// and its directory is created when missing.
func Connect(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite:
		path, err := homedir.Expand(dsn)
		if err != nil {
			return nil, err
		}

		// Create the directory structure if it doesn't exist
		dbDir := filepath.Dir(path)
		if dbDir != "." {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return nil, err
			}
		}
		dsn = path
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported results driver: %s", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	utils.Log("Opened %s results database", driver)
	return &Store{DB: db, Driver: driver}, nil
}

// Close closes the underlying connection
func (s *Store) Close() error {
	return s.DB.Close()
}

// EnsureSchema creates the results schema if it doesn't exist
func (s *Store) EnsureSchema() error {
	statements := []string{`
		CREATE TABLE IF NOT EXISTS bench_runs (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			iterations INTEGER NOT NULL,
			created TIMESTAMP NOT NULL
		)`, `
		CREATE TABLE IF NOT EXISTS bench_metrics (
			run_id TEXT NOT NULL REFERENCES bench_runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			iterations INTEGER NOT NULL,
			total_ns BIGINT NOT NULL,
			mean_ns BIGINT NOT NULL,
			min_ns BIGINT NOT NULL,
			max_ns BIGINT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
