package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"weekplan/pkg/planner"
)

// DaySchedule is the exported form of one day
type DaySchedule struct {
	Day    string              `json:"day" yaml:"day"`
	Title  string              `json:"title" yaml:"title"`
	Theme  planner.Theme       `json:"theme" yaml:"theme"`
	Blocks []planner.TimeBlock `json:"blocks" yaml:"blocks"`
}

// BuildWeek generates every day of the week in declared order
func BuildWeek() ([]DaySchedule, error) {
	gen := planner.NewGenerator()
	week := make([]DaySchedule, 0, len(planner.Days))
	for _, day := range planner.Days {
		tmpl, err := gen.Template(string(day))
		if err != nil {
			return nil, err
		}
		blocks, err := gen.Generate(string(day))
		if err != nil {
			return nil, err
		}
		week = append(week, DaySchedule{
			Day:    string(day),
			Title:  tmpl.Title,
			Theme:  tmpl.Theme,
			Blocks: blocks,
		})
	}
	return week, nil
}

// EncodeWeek renders the week in the given export type (json, yaml, txt)
func EncodeWeek(week []DaySchedule, exportType string) ([]byte, error) {
	switch exportType {
	case "json":
		return json.MarshalIndent(week, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(week)
	case "txt":
		var lines []string
		for _, day := range week {
			lines = append(lines, fmt.Sprintf("\n%s (%s):", planner.ViewID(day.Day).DisplayName(), day.Title))
			for _, b := range day.Blocks {
				lines = append(lines, fmt.Sprintf("- %s %s: %s", b.Time, b.Activity, b.Description))
			}
		}
		return []byte(strings.TrimSpace(strings.Join(lines, "\n")) + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown export type: %s", exportType)
	}
}

// HandleExportCommand writes the whole week to filename
func HandleExportCommand(w io.Writer, filename, exportType string) error {
	week, err := BuildWeek()
	if err != nil {
		return err
	}

	content, err := EncodeWeek(week, exportType)
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Fprintf(w, "Successfully exported %d day(s) to %s\n", len(week), filename)
	return nil
}
