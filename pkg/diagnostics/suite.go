package diagnostics

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"weekplan/pkg/planner"
	"weekplan/pkg/utils"
)

// RenderFunc renders the active view of a session to a string
type RenderFunc func(s *planner.Switcher) string

// Run is one labelled execution of the suite
type Run struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	Label      string    `json:"label" yaml:"label"`
	Iterations int       `json:"iterations" yaml:"iterations"`
	Created    time.Time `json:"created" yaml:"created"`
	Metrics    []Metric  `json:"metrics" yaml:"metrics"`
}

// Suite measures the core planner operations
type Suite struct {
	Label      string
	Iterations int

	// Render is optional; without it the render metrics are skipped
	Render RenderFunc

	now func() time.Time
}

// NewSuite creates a suite with the given label and iteration count
func NewSuite(label string, iterations int, render RenderFunc) *Suite {
	return &Suite{Label: label, Iterations: iterations, Render: render, now: time.Now}
}

// Run executes every measurement and verifies the view invariants afterwards
func (s *Suite) Run() (Run, error) {
	n := s.Iterations
	if n < 1 {
		n = 1
	}
	run := Run{ID: uuid.New(), Label: s.Label, Iterations: n, Created: s.now()}
	utils.Log("Starting diagnostics run %s (%d iterations)", run.ID, n)

	run.Metrics = append(run.Metrics, Measure("registry/new", n, func(int) {
		planner.NewRegistry()
	}))

	gen := planner.NewGenerator()
	run.Metrics = append(run.Metrics, Measure("generate/week", n, func(int) {
		for _, day := range planner.Days {
			gen.Generate(string(day))
		}
	}))

	// A fresh session per iteration keeps every activation a first one
	fresh := make([]*planner.Switcher, n)
	for i := range fresh {
		fresh[i] = planner.NewSession()
	}
	var firstErr error
	run.Metrics = append(run.Metrics, Measure("activate/first", n, func(i int) {
		day := planner.Days[i%len(planner.Days)]
		if err := fresh[i].Activate(string(day)); err != nil && firstErr == nil {
			firstErr = err
		}
	}))
	if firstErr != nil {
		return run, fmt.Errorf("first activation: %w", firstErr)
	}

	session := planner.NewSession()
	if err := session.Activate(string(planner.Monday)); err != nil {
		return run, err
	}
	run.Metrics = append(run.Metrics, Measure("activate/repeat", n, func(int) {
		session.Activate(string(planner.Monday))
	}))

	run.Metrics = append(run.Metrics, Measure("activate/week-cycle", n, func(int) {
		for _, id := range planner.Order {
			session.Activate(string(id))
		}
	}))

	run.Metrics = append(run.Metrics, Measure("content/read", n, func(i int) {
		session.GetContent(string(planner.Days[i%len(planner.Days)]))
	}))

	if s.Render != nil {
		if err := session.Activate(string(planner.Overview)); err != nil {
			return run, err
		}
		run.Metrics = append(run.Metrics, Measure("render/overview", n, func(int) {
			s.Render(session)
		}))
		if err := session.Activate(string(planner.Friday)); err != nil {
			return run, err
		}
		run.Metrics = append(run.Metrics, Measure("render/day", n, func(int) {
			s.Render(session)
		}))
	}

	if err := Verify(session); err != nil {
		return run, err
	}
	utils.Log("Finished diagnostics run %s", run.ID)
	return run, nil
}

// Verify checks that exactly one view is active and every loaded day holds
// a full schedule
func Verify(s *planner.Switcher) error {
	active := 0
	for _, v := range s.Registry().Views() {
		if v.Active() {
			active++
		}
		if v.ID().IsDay() && v.Loaded() && len(v.Content()) != planner.BlocksPerDay {
			return fmt.Errorf("%s is loaded with %d blocks, expected %d", v.ID(), len(v.Content()), planner.BlocksPerDay)
		}
	}
	if active != 1 {
		return fmt.Errorf("expected exactly one active view, found %d", active)
	}
	return nil
}
