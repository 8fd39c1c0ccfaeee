package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"weekplan/pkg/planner"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		active := m.switcher.Active()
		if active == planner.Overview {
			sb.WriteString(m.renderOverview())
		} else {
			sb.WriteString(m.renderDay(active))
		}

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("Error: %v", m.err)))
	}

	// Add help status bar at the bottom
	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

// titleBar renders the accent coloured header with the clock on the right
func (m Model) titleBar(title string) string {
	bar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(title)

	if m.config.ShowClock && m.clock != "" {
		clock := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(m.clock)
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, "  ", clock)
	}
	return bar
}

// renderOverview renders the grid of day cards
func (m Model) renderOverview() string {
	var sb strings.Builder

	sb.WriteString(m.titleBar(" Weekly Planner "))
	sb.WriteString("\n\n")

	cols := m.columns()
	var rows []string
	var row []string
	for i, day := range planner.Days {
		row = append(row, m.renderCard(day, i == m.cursor))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	sb.WriteString("\n")

	loaded := 0
	for _, day := range planner.Days {
		if ok, _ := m.switcher.IsLoaded(string(day)); ok {
			loaded++
		}
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(
		fmt.Sprintf("Showing week overview (%d of %d days opened)", loaded, len(planner.Days))))
	sb.WriteString("\n")

	return sb.String()
}

// renderCard renders one day card of the overview
func (m Model) renderCard(day planner.ViewID, selected bool) string {
	inner := cardWidth - 4 // border and padding
	theme := m.styles.Theme(day)

	title := ""
	if tmpl, err := m.templates.Template(string(day)); err == nil {
		title = tmpl.Title
	}

	status := "not opened yet"
	if loaded, _ := m.switcher.IsLoaded(string(day)); loaded {
		status = fmt.Sprintf("%d time blocks", planner.BlocksPerDay)
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(day.DisplayName()),
		title,
		gradient(strings.Repeat(" ", inner), theme.From, theme.To, lipgloss.Color(m.styles.SelectedTextColor)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.BorderColor)).Render(status),
	}

	borderColor := m.styles.BorderColor
	if selected {
		borderColor = m.styles.AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		Render(strings.Join(lines, "\n"))
}

// renderDay renders the schedule of a day view
func (m Model) renderDay(day planner.ViewID) string {
	var sb strings.Builder

	theme := m.styles.Theme(day)
	title := day.DisplayName()
	if tmpl, err := m.templates.Template(string(day)); err == nil {
		title = fmt.Sprintf("%s · %s", title, tmpl.Title)
	}
	header := gradient(" "+title+" ", theme.From, theme.To, lipgloss.Color(m.styles.SelectedTextColor))
	if m.config.ShowClock && m.clock != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ",
			lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(m.clock))
	}
	sb.WriteString(header)
	sb.WriteString("\n\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(
		fmt.Sprintf("Showing %s (%d time blocks)", string(day), len(m.table.Rows()))))
	sb.WriteString("\n")

	return sb.String()
}

// renderHelp renders the fullscreen list of key bindings
func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(strings.Join(binding.Keys(), ", "))))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.ShowOverview)
	addCommand(m.keyMap.JumpToToday)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Navigation Commands"))
	sb.WriteString("\n\n")
	addCommand(m.keyMap.PrevDay)
	addCommand(m.keyMap.NextDay)
	addCommand(m.keyMap.OpenDay)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Days"))
	sb.WriteString("\n\n")
	for _, day := range planner.Days {
		addCommand(m.keyMap.Days[day])
	}

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(b key.Binding, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(b.Help().Key), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		if m.switcher.Active() == planner.Overview {
			addAction(m.keyMap.PrevDay, "prev")
			addAction(m.keyMap.NextDay, "next")
			addAction(m.keyMap.OpenDay, "open")
		} else {
			addAction(m.keyMap.PrevDay, "prev day")
			addAction(m.keyMap.NextDay, "next day")
			addAction(m.keyMap.ShowOverview, "week")
		}
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render("1-7"), descStyle.Render("day")))
		addAction(m.keyMap.JumpToToday, "today")
		addAction(m.keyMap.ShowHelp, "help")
		addAction(m.keyMap.QuitApp, "quit")

	case HelpViewMode:
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(m.keyMap.ShowHelp.Help().Key+"/esc"), descStyle.Render("back")))
		addAction(m.keyMap.QuitApp, "quit")
	}

	return strings.Join(actions, separator)
}
