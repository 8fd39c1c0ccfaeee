package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"weekplan/pkg/planner"
	"weekplan/pkg/utils"
)

const (
	// Overview card size including the border
	cardWidth  = 26
	cardHeight = 6
	maxColumns = 4

	// Lines above the card grid: title bar and a blank line
	overviewHeaderLines = 2
)

// activate switches the planner to id. Failures are recoverable: they are
// logged, shown in the status line and leave the current view in place.
func (m *Model) activate(id string) {
	if err := m.switcher.Activate(id); err != nil {
		utils.Log("Activate %q failed: %v", id, err)
		m.err = err
		return
	}
	utils.Log("Activated %s", id)
	m.err = nil
	m.syncWithActive()
}

// syncWithActive points the card cursor and the table at the active view
func (m *Model) syncWithActive() {
	active := m.switcher.Active()
	if i := active.DayIndex(); i >= 0 {
		m.cursor = i
	}
	m.refreshTable()
}

// refreshTable loads the active day's schedule into the table
func (m *Model) refreshTable() {
	active := m.switcher.Active()
	if !active.IsDay() {
		m.table.SetRows(nil)
		return
	}

	blocks, err := m.switcher.GetContent(string(active))
	if err != nil {
		m.err = err
		return
	}

	rows := make([]table.Row, 0, len(blocks))
	for _, b := range blocks {
		rows = append(rows, table.Row{b.Time, b.Activity, b.Description})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// resize adapts the table to the terminal size
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	if width > 4 {
		m.table.SetWidth(width - 4)
	}
	if height > 8 {
		m.table.SetHeight(min(height-8, planner.BlocksPerDay+2))
	}
}

// columns returns how many overview cards fit on one row
func (m Model) columns() int {
	if m.width <= 0 {
		return maxColumns
	}
	cols := m.width / cardWidth
	if cols < 1 {
		return 1
	}
	if cols > maxColumns {
		return maxColumns
	}
	return cols
}

// cardAt returns the day under the terminal cell x, y of the overview
func (m Model) cardAt(x, y int) (planner.ViewID, bool) {
	if x < 0 || y < overviewHeaderLines {
		return "", false
	}
	col := x / cardWidth
	row := (y - overviewHeaderLines) / cardHeight
	cols := m.columns()
	if col >= cols {
		return "", false
	}
	i := row*cols + col
	if i >= len(planner.Days) {
		return "", false
	}
	return planner.Days[i], true
}

// gradient renders text on a background blended from one hex colour to another
func gradient(text, from, to string, fg lipgloss.Color) string {
	start, err1 := colorful.Hex(from)
	end, err2 := colorful.Hex(to)
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(fg).Bold(true).Render(text)
	}

	runes := []rune(text)
	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		bg := start.BlendLab(end, t).Clamped().Hex()
		sb.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(fg).
			Bold(true).
			Render(string(r)))
	}
	return sb.String()
}
