package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"weekplan/pkg/planner"
)

// HandleShowCommand prints the schedule of one day
func HandleShowCommand(w io.Writer, dayID string) error {
	day := planner.ViewID(strings.ToLower(strings.TrimSpace(dayID)))

	// Go through a session so the day is generated the same way the TUI does it
	session := planner.NewSession()
	if err := session.Activate(string(day)); err != nil {
		return err
	}
	blocks, err := session.GetContent(string(day))
	if err != nil {
		return err
	}
	tmpl, err := planner.NewGenerator().Template(string(day))
	if err != nil {
		return err
	}

	heading := color.New(color.Bold)
	fmt.Fprintln(w, heading.Sprintf("%s · %s", day.DisplayName(), tmpl.Title))
	fmt.Fprintln(w)

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow(heading.Sprint("TIME"), heading.Sprint("ACTIVITY"), heading.Sprint("DESCRIPTION"))
	for _, b := range blocks {
		table.AddRow(b.Time, b.Activity, b.Description)
	}
	fmt.Fprintln(w, table)
	return nil
}
