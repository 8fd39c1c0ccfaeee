package database

import (
	"time"
)

// RunRecord is a stored diagnostics run
type RunRecord struct {
	ID         string    `db:"id"`
	Label      string    `db:"label"`
	Iterations int       `db:"iterations"`
	Created    time.Time `db:"created"`
}

// MetricRecord is one measured operation of a stored run
type MetricRecord struct {
	RunID      string        `db:"run_id"`
	Position   int           `db:"position"`
	Name       string        `db:"name"`
	Iterations int           `db:"iterations"`
	Total      time.Duration `db:"total_ns"`
	Mean       time.Duration `db:"mean_ns"`
	Min        time.Duration `db:"min_ns"`
	Max        time.Duration `db:"max_ns"`
}

// Supported drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)
