package diagnostics

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"weekplan/pkg/planner"
)

func TestMeasure(t *testing.T) {
	t.Parallel()
	calls := 0
	m := Measure("noop", 5, func(i int) {
		if i != calls {
			t.Errorf("iteration index %d, expected %d", i, calls)
		}
		calls++
	})

	if calls != 5 || m.Iterations != 5 {
		t.Fatalf("expected 5 calls, got calls=%d iterations=%d", calls, m.Iterations)
	}
	if m.Min > m.Mean || m.Mean > m.Max {
		t.Fatalf("expected min <= mean <= max, got %v %v %v", m.Min, m.Mean, m.Max)
	}
	if m.Total < m.Max {
		t.Fatalf("total %v smaller than max %v", m.Total, m.Max)
	}
}

func TestMeasureAtLeastOnce(t *testing.T) {
	t.Parallel()
	calls := 0
	m := Measure("noop", 0, func(int) { calls++ })
	if calls != 1 || m.Iterations != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestSuiteRun(t *testing.T) {
	t.Parallel()
	created := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	rendered := 0
	suite := NewSuite("test", 3, func(s *planner.Switcher) string {
		rendered++
		return string(s.Active())
	})
	suite.now = func() time.Time { return created }

	run, err := suite.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if run.ID == uuid.Nil {
		t.Fatalf("expected run id")
	}
	if run.Label != "test" || run.Iterations != 3 || !run.Created.Equal(created) {
		t.Fatalf("unexpected run header: %+v", run)
	}

	var names []string
	for _, m := range run.Metrics {
		names = append(names, m.Name)
		if m.Iterations != 3 {
			t.Errorf("%s ran %d iterations", m.Name, m.Iterations)
		}
	}
	expected := "registry/new,generate/week,activate/first,activate/repeat,activate/week-cycle,content/read,render/overview,render/day"
	if got := strings.Join(names, ","); got != expected {
		t.Fatalf("metrics = %s\nexpected %s", got, expected)
	}
	if rendered != 6 {
		t.Fatalf("expected 6 renders, got %d", rendered)
	}
}

func TestSuiteWithoutRenderer(t *testing.T) {
	t.Parallel()
	run, err := NewSuite("bare", 2, nil).Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, m := range run.Metrics {
		if strings.HasPrefix(m.Name, "render/") {
			t.Fatalf("unexpected render metric %s", m.Name)
		}
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()
	s := planner.NewSession()
	if err := s.Activate("sunday"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := Verify(s); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
