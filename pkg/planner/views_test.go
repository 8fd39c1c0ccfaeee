package planner

import (
	"errors"
	"testing"
	"time"
)

func TestViewID_IsDay(t *testing.T) {
	tests := []struct {
		id       ViewID
		expected bool
	}{
		{Overview, false},
		{Monday, true},
		{Wednesday, true},
		{Sunday, true},
		{ViewID("funday"), false},
	}

	for _, test := range tests {
		if got := test.id.IsDay(); got != test.expected {
			t.Errorf("ViewID(%s).IsDay() = %v, expected %v", test.id, got, test.expected)
		}
	}
}

func TestDayForWeekday(t *testing.T) {
	tests := []struct {
		weekday  time.Weekday
		expected ViewID
	}{
		{time.Monday, Monday},
		{time.Saturday, Saturday},
		{time.Sunday, Sunday},
	}

	for _, test := range tests {
		if got := DayForWeekday(test.weekday); got != test.expected {
			t.Errorf("DayForWeekday(%s) = %s, expected %s", test.weekday, got, test.expected)
		}
	}
}

func TestNextPrevDayWrap(t *testing.T) {
	if got := NextDay(Sunday); got != Monday {
		t.Errorf("NextDay(sunday) = %s", got)
	}
	if got := PrevDay(Monday); got != Sunday {
		t.Errorf("PrevDay(monday) = %s", got)
	}
	if got := NextDay(Overview); got != Monday {
		t.Errorf("NextDay(overview) = %s", got)
	}
	if got := PrevDay(Overview); got != Sunday {
		t.Errorf("PrevDay(overview) = %s", got)
	}
}

func TestRegistryOrderAndLookup(t *testing.T) {
	r := NewRegistry()
	views := r.Views()
	if len(views) != len(Order) {
		t.Fatalf("expected %d views, got %d", len(Order), len(views))
	}
	for i, v := range views {
		if v.ID() != Order[i] {
			t.Fatalf("view %d is %s, expected %s", i, v.ID(), Order[i])
		}
	}

	v, err := r.Lookup("thursday")
	if err != nil {
		t.Fatalf("lookup thursday: %v", err)
	}
	if v.ID() != Thursday || v.Active() || v.Loaded() || v.Content() != nil {
		t.Fatalf("unexpected initial thursday state")
	}

	var notFound *NotFoundError
	if _, err := r.Lookup("funday"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := NewSwitcher(NewRegistry(), NewGenerator())
	b := NewSwitcher(NewRegistry(), NewGenerator())

	if err := a.Activate("monday"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if b.Active() != Overview {
		t.Fatalf("second session was affected by the first")
	}
	if loaded, _ := b.IsLoaded("monday"); loaded {
		t.Fatalf("second session monday should not be loaded")
	}
}
