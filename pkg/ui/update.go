package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"weekplan/pkg/planner"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case clockTickMsg:
		// Samples arrive twice a second, the clock redraws at most once
		if m.clockGate.AllowAt(time.Time(msg)) {
			m.clock = time.Time(msg).Format(m.config.ClockFormat)
		}
		return m, tickClock()

	case tea.MouseMsg:
		if m.mode == NormalMode && m.switcher.Active() == planner.Overview && msg.Type == tea.MouseLeft {
			if day, ok := m.cardAt(msg.X, msg.Y); ok {
				m.activate(string(day))
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			active := m.switcher.Active()

			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode
				return m, nil

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ShowOverview):
				m.activate(string(planner.Overview))

			case key.Matches(msg, m.keyMap.PrevDay):
				if active == planner.Overview {
					m.cursor = (m.cursor + len(planner.Days) - 1) % len(planner.Days)
				} else {
					m.activate(string(planner.PrevDay(active)))
				}

			case key.Matches(msg, m.keyMap.NextDay):
				if active == planner.Overview {
					m.cursor = (m.cursor + 1) % len(planner.Days)
				} else {
					m.activate(string(planner.NextDay(active)))
				}

			case key.Matches(msg, m.keyMap.OpenDay) && active == planner.Overview:
				m.activate(string(planner.Days[m.cursor]))
				return m, nil

			case key.Matches(msg, m.keyMap.JumpToToday):
				m.activate(string(planner.DayForWeekday(m.now().Weekday())))

			default:
				for _, day := range planner.Days {
					if key.Matches(msg, m.keyMap.Days[day]) {
						m.activate(string(day))
						break
					}
				}
			}

		case HelpViewMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp), msg.String() == "esc":
				m.mode = NormalMode
			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	// Only scroll the schedule while a day is visible
	if m.mode == NormalMode && m.switcher.Active().IsDay() {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
