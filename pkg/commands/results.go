package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"weekplan/pkg/config"
	"weekplan/pkg/database"
)

// ResultsOptions controls listing and purging stored runs
type ResultsOptions struct {
	Limit   int
	RunID   string
	Purge   bool
	Before  string
	SkipAsk bool
}

// HandleResultsCommand lists stored diagnostics runs, shows one run in
// detail, or purges runs
func HandleResultsCommand(in io.Reader, w io.Writer, cfg config.Config, opts ResultsOptions) error {
	store, err := database.Connect(cfg.ResultsDriver, cfg.ResultsDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}

	switch {
	case opts.Purge:
		return purgeRuns(in, w, store, opts)
	case opts.RunID != "":
		return showRun(w, store, opts.RunID)
	default:
		return listRuns(w, store, opts.Limit)
	}
}

func listRuns(w io.Writer, store *database.Store, limit int) error {
	runs, err := store.LoadRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No stored runs")
		return nil
	}

	heading := color.New(color.Bold)
	table := uitable.New()
	table.AddRow(heading.Sprint("ID"), heading.Sprint("LABEL"), heading.Sprint("N"), heading.Sprint("CREATED"))
	for _, run := range runs {
		table.AddRow(run.ID, run.Label, run.Iterations, run.Created.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(w, table)
	return nil
}

func showRun(w io.Writer, store *database.Store, runID string) error {
	runs, err := store.LoadRuns(0)
	if err != nil {
		return err
	}
	for _, run := range runs {
		if run.ID != runID {
			continue
		}
		metrics, err := store.LoadMetrics(runID)
		if err != nil {
			return err
		}
		printRun(w, run.ID, run.Label, run.Created, metrics)
		return nil
	}
	return fmt.Errorf("run not found: %s", runID)
}

func purgeRuns(in io.Reader, w io.Writer, store *database.Store, opts ResultsOptions) error {
	var before time.Time
	if opts.Before != "" {
		var err error
		before, err = time.Parse("2006-01-02", opts.Before)
		if err != nil {
			return fmt.Errorf("invalid date format: use YYYY-MM-DD")
		}
	}

	// Show confirmation unless --yes flag is used
	if !opts.SkipAsk {
		fmt.Fprint(w, "Are you sure you want to delete these runs? (y/N): ")
		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(w, "Operation cancelled.")
			return nil
		}
	}

	n, err := store.PurgeRuns(before)
	if err != nil {
		return fmt.Errorf("error purging runs: %w", err)
	}
	fmt.Fprintf(w, "Successfully deleted %d run(s)\n", n)
	return nil
}
