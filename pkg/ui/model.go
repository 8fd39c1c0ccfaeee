package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weekplan/pkg/config"
	"weekplan/pkg/keymaps"
	"weekplan/pkg/planner"
	"weekplan/pkg/utils"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode   InputMode = iota
	HelpViewMode // Mode for displaying help
)

const (
	// clockPoll is how often the clock is sampled; clockGate limits redraws
	clockPoll     = 500 * time.Millisecond
	clockInterval = time.Second
)

// clockTickMsg carries the time of a clock sample
type clockTickMsg time.Time

// Model represents the application state
type Model struct {
	table         table.Model
	switcher      *planner.Switcher
	templates     *planner.TemplateGenerator
	width, height int
	err           error

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	mode InputMode

	// Overview card selection (index into planner.Days)
	cursor int

	clock     string
	clockGate *utils.Gate
	now       func() time.Time
}

// NewModel creates a new UI model over switcher and activates the
// configured start view
func NewModel(switcher *planner.Switcher, cfg config.Config, styles config.Styles) Model {
	m := newModel(switcher, cfg, styles)
	if cfg.StartView != "" {
		m.activate(cfg.StartView)
	}
	return m
}

func newModel(switcher *planner.Switcher, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "Time", Width: 10},
		{Title: "Activity", Width: 24},
		{Title: "Description", Width: 56},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithWidth(96),
		table.WithHeight(planner.BlocksPerDay+2), // header takes two lines
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	m := Model{
		table:     t,
		switcher:  switcher,
		templates: planner.NewGenerator(),
		config:    cfg,
		styles:    styles,
		keyMap:    keymaps.BuildKeyMap(cfg.KeyMap),
		mode:      NormalMode,
		clockGate: utils.NewGate(clockInterval),
		now:       time.Now,
	}
	m.syncWithActive()
	return m
}

// Init starts the clock when it is enabled
func (m Model) Init() tea.Cmd {
	if !m.config.ShowClock {
		return nil
	}
	return tickClock()
}

func tickClock() tea.Cmd {
	return tea.Tick(clockPoll, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Err returns the last recoverable error reported by the planner
func (m Model) Err() error {
	return m.err
}

// Switcher returns the planner session driven by the model
func (m Model) Switcher() *planner.Switcher {
	return m.switcher
}

// Render draws the active view of switcher without changing it
func Render(switcher *planner.Switcher, cfg config.Config, styles config.Styles, width, height int) string {
	m := newModel(switcher, cfg, styles)
	m.resize(width, height)
	return m.View()
}
