package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"weekplan/pkg/config"
	"weekplan/pkg/planner"
)

func TestShowCommand(t *testing.T) {
	var out bytes.Buffer
	if err := HandleShowCommand(&out, " Friday "); err != nil {
		t.Fatalf("show: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Friday · Review & Wrap-up", "TIME", "9:30 AM", "Weekly Review"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestShowCommandErrors(t *testing.T) {
	var out bytes.Buffer

	var notFound *planner.NotFoundError
	if err := HandleShowCommand(&out, "funday"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	var unknown *planner.UnknownDayError
	if err := HandleShowCommand(&out, "overview"); !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownDayError, got %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		exportType string
		check      func(t *testing.T, data []byte)
	}{
		{"json", func(t *testing.T, data []byte) {
			var week []DaySchedule
			if err := json.Unmarshal(data, &week); err != nil {
				t.Fatalf("unmarshal json: %v", err)
			}
			if len(week) != 7 || week[0].Day != "monday" || len(week[6].Blocks) != planner.BlocksPerDay {
				t.Fatalf("unexpected json week: %+v", week)
			}
		}},
		{"yaml", func(t *testing.T, data []byte) {
			var week []DaySchedule
			if err := yaml.Unmarshal(data, &week); err != nil {
				t.Fatalf("unmarshal yaml: %v", err)
			}
			if len(week) != 7 || week[4].Title != "Review & Wrap-up" || week[4].Theme.From == "" {
				t.Fatalf("unexpected yaml week: %+v", week)
			}
		}},
		{"txt", func(t *testing.T, data []byte) {
			text := string(data)
			if !strings.HasPrefix(text, "Monday (Fresh Start):") {
				t.Fatalf("unexpected txt start: %q", text[:40])
			}
			if strings.Count(text, "\n- ") != 7*planner.BlocksPerDay {
				t.Fatalf("expected %d entries in txt export", 7*planner.BlocksPerDay)
			}
		}},
	}

	for _, test := range tests {
		path := filepath.Join(dir, "out", "week."+test.exportType)
		var out bytes.Buffer
		if err := HandleExportCommand(&out, path, test.exportType); err != nil {
			t.Fatalf("export %s: %v", test.exportType, err)
		}
		if !strings.Contains(out.String(), "Successfully exported 7 day(s)") {
			t.Fatalf("unexpected output: %q", out.String())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		test.check(t, data)
	}
}

func TestExportUnknownType(t *testing.T) {
	var out bytes.Buffer
	err := HandleExportCommand(&out, filepath.Join(t.TempDir(), "week.xml"), "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown export type") {
		t.Fatalf("expected unknown export type error, got %v", err)
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		StartView:     "overview",
		ClockFormat:   "15:04",
		ResultsDriver: "sqlite3",
		ResultsDSN:    filepath.Join(t.TempDir(), "results.db"),
	}
}

func TestBenchWithoutSave(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	err := HandleBenchCommand(&out, cfg, config.DefaultStyles(), BenchOptions{Label: "quick", Iterations: 2})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	text := out.String()
	for _, want := range []string{"label: quick", "OPERATION", "activate/first", "render/day"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if _, err := os.Stat(cfg.ResultsDSN); !os.IsNotExist(err) {
		t.Fatalf("expected no results database without --save")
	}
}

func TestBenchSaveAndResults(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	err := HandleBenchCommand(&out, cfg, config.DefaultStyles(), BenchOptions{Label: "saved", Iterations: 2, Save: true})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if !strings.Contains(out.String(), "Saved run ") {
		t.Fatalf("expected saved message:\n%s", out.String())
	}

	out.Reset()
	if err := HandleResultsCommand(strings.NewReader(""), &out, cfg, ResultsOptions{Limit: 10}); err != nil {
		t.Fatalf("results: %v", err)
	}
	if !strings.Contains(out.String(), "saved") {
		t.Fatalf("expected stored run in listing:\n%s", out.String())
	}

	out.Reset()
	err = HandleResultsCommand(strings.NewReader("n\n"), &out, cfg, ResultsOptions{Purge: true})
	if err != nil {
		t.Fatalf("purge cancelled: %v", err)
	}
	if !strings.Contains(out.String(), "Operation cancelled.") {
		t.Fatalf("expected cancellation:\n%s", out.String())
	}

	out.Reset()
	err = HandleResultsCommand(strings.NewReader("y\n"), &out, cfg, ResultsOptions{Purge: true})
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if !strings.Contains(out.String(), "Successfully deleted 1 run(s)") {
		t.Fatalf("expected purge count:\n%s", out.String())
	}

	out.Reset()
	if err := HandleResultsCommand(strings.NewReader(""), &out, cfg, ResultsOptions{}); err != nil {
		t.Fatalf("results: %v", err)
	}
	if !strings.Contains(out.String(), "No stored runs") {
		t.Fatalf("expected empty listing:\n%s", out.String())
	}
}

func TestResultsUnknownRun(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	err := HandleResultsCommand(strings.NewReader(""), &out, cfg, ResultsOptions{RunID: "missing"})
	if err == nil || !strings.Contains(err.Error(), "run not found") {
		t.Fatalf("expected run not found, got %v", err)
	}
}
