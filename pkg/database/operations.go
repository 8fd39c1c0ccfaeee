package database

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"weekplan/pkg/utils"
)

// rebind rewrites ? placeholders into the form the driver expects
func (s *Store) rebind(query string) string {
	if s.Driver != DriverPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SaveRun stores a run and its metrics in one transaction
func (s *Store) SaveRun(run RunRecord, metrics []MetricRecord) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(
		s.rebind(`INSERT INTO bench_runs (id, label, iterations, created) VALUES (?, ?, ?, ?)`),
		run.ID, run.Label, run.Iterations, run.Created.UTC(),
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}

	for i, m := range metrics {
		if _, err := tx.Exec(
			s.rebind(`INSERT INTO bench_metrics (run_id, position, name, iterations, total_ns, mean_ns, min_ns, max_ns)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
			run.ID, i, m.Name, m.Iterations,
			int64(m.Total), int64(m.Mean), int64(m.Min), int64(m.Max),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert metric %s: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	utils.Log("Saved run %s with %d metrics", run.ID, len(metrics))
	return nil
}

// LoadRuns returns the most recent runs, newest first. A limit of zero or
// less returns every run.
func (s *Store) LoadRuns(limit int) ([]RunRecord, error) {
	query := `SELECT id, label, iterations, created FROM bench_runs ORDER BY created DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.DB.Query(s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		if err := rows.Scan(&run.ID, &run.Label, &run.Iterations, &run.Created); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	utils.Log("Loaded %d runs from database", len(runs))
	return runs, nil
}

// LoadMetrics returns the metrics of a run in measurement order
func (s *Store) LoadMetrics(runID string) ([]MetricRecord, error) {
	rows, err := s.DB.Query(
		s.rebind(`SELECT run_id, position, name, iterations, total_ns, mean_ns, min_ns, max_ns
		 FROM bench_metrics WHERE run_id = ? ORDER BY position`),
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []MetricRecord
	for rows.Next() {
		var m MetricRecord
		var total, mean, min, max int64
		if err := rows.Scan(&m.RunID, &m.Position, &m.Name, &m.Iterations, &total, &mean, &min, &max); err != nil {
			return nil, err
		}
		m.Total = time.Duration(total)
		m.Mean = time.Duration(mean)
		m.Min = time.Duration(min)
		m.Max = time.Duration(max)
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// PurgeRuns deletes stored runs and their metrics. A zero before deletes
// everything; otherwise only runs created before it are removed.
func (s *Store) PurgeRuns(before time.Time) (int64, error) {
	runWhere := ""
	metricWhere := ""
	var args []interface{}
	if !before.IsZero() {
		runWhere = " WHERE created < ?"
		metricWhere = " WHERE run_id IN (SELECT id FROM bench_runs WHERE created < ?)"
		args = append(args, before.UTC())
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(s.rebind("DELETE FROM bench_metrics"+metricWhere), args...); err != nil {
		tx.Rollback()
		return 0, err
	}
	result, err := tx.Exec(s.rebind("DELETE FROM bench_runs"+runWhere), args...)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	rowsAffected, _ := result.RowsAffected()
	utils.Log("Purged %d runs", rowsAffected)
	return rowsAffected, nil
}
