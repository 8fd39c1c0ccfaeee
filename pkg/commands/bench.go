package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"weekplan/pkg/config"
	"weekplan/pkg/database"
	"weekplan/pkg/diagnostics"
	"weekplan/pkg/planner"
	"weekplan/pkg/ui"
)

// BenchOptions controls a diagnostics run
type BenchOptions struct {
	Label      string
	Iterations int
	Save       bool
}

// HandleBenchCommand measures the planner, prints the timings and
// optionally stores the run in the results database
func HandleBenchCommand(w io.Writer, cfg config.Config, styles config.Styles, opts BenchOptions) error {
	render := func(s *planner.Switcher) string {
		return ui.Render(s, cfg, styles, 120, 40)
	}

	run, err := diagnostics.NewSuite(opts.Label, opts.Iterations, render).Run()
	if err != nil {
		return fmt.Errorf("diagnostics failed: %w", err)
	}

	printRun(w, run.ID.String(), run.Label, run.Created, toRecords(run))

	if !opts.Save {
		return nil
	}

	store, err := database.Connect(cfg.ResultsDriver, cfg.ResultsDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	record := database.RunRecord{
		ID:         run.ID.String(),
		Label:      run.Label,
		Iterations: run.Iterations,
		Created:    run.Created,
	}
	if err := store.SaveRun(record, toRecords(run)); err != nil {
		return fmt.Errorf("error saving run: %w", err)
	}

	fmt.Fprintf(w, "Saved run %s\n", record.ID)
	return nil
}

func toRecords(run diagnostics.Run) []database.MetricRecord {
	records := make([]database.MetricRecord, 0, len(run.Metrics))
	for i, m := range run.Metrics {
		records = append(records, database.MetricRecord{
			RunID:      run.ID.String(),
			Position:   i,
			Name:       m.Name,
			Iterations: m.Iterations,
			Total:      m.Total,
			Mean:       m.Mean,
			Min:        m.Min,
			Max:        m.Max,
		})
	}
	return records
}

// printRun prints a run header and a table of its metrics
func printRun(w io.Writer, id, label string, created time.Time, metrics []database.MetricRecord) {
	heading := color.New(color.Bold)
	fmt.Fprintln(w, heading.Sprintf("Run %s", id))
	fmt.Fprintf(w, "label: %s  created: %s\n\n", label, created.Local().Format("2006-01-02 15:04:05"))

	table := uitable.New()
	table.AddRow(heading.Sprint("OPERATION"), heading.Sprint("N"), heading.Sprint("MEAN"), heading.Sprint("MIN"), heading.Sprint("MAX"), heading.Sprint("TOTAL"))
	for _, m := range metrics {
		table.AddRow(m.Name, m.Iterations, m.Mean, m.Min, m.Max, m.Total)
	}
	fmt.Fprintln(w, table)
}
