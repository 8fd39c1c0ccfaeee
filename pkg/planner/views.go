package planner

import (
	"strings"
	"time"
)

// ViewID identifies one of the planner views
type ViewID string

const (
	Overview  ViewID = "overview"
	Monday    ViewID = "monday"
	Tuesday   ViewID = "tuesday"
	Wednesday ViewID = "wednesday"
	Thursday  ViewID = "thursday"
	Friday    ViewID = "friday"
	Saturday  ViewID = "saturday"
	Sunday    ViewID = "sunday"
)

// Order is the declared iteration order of all views
var Order = []ViewID{Overview, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Days lists the day views only, Monday first
var Days = Order[1:]

// String returns the string representation of ViewID
func (id ViewID) String() string {
	return string(id)
}

// IsDay returns true for any view other than the overview
func (id ViewID) IsDay() bool {
	for _, d := range Days {
		if d == id {
			return true
		}
	}
	return false
}

// Valid reports whether id is a member of the view set
func (id ViewID) Valid() bool {
	return id == Overview || id.IsDay()
}

// DayIndex returns the position of a day view in Days, or -1
func (id ViewID) DayIndex() int {
	for i, d := range Days {
		if d == id {
			return i
		}
	}
	return -1
}

// DayForWeekday maps a time.Weekday onto its day view
func DayForWeekday(wd time.Weekday) ViewID {
	// time.Sunday is 0, Days starts on Monday
	return Days[(int(wd)+6)%7]
}

// NextDay returns the day after id, wrapping Sunday to Monday.
// The overview maps onto Monday.
func NextDay(id ViewID) ViewID {
	i := id.DayIndex()
	if i < 0 {
		return Monday
	}
	return Days[(i+1)%len(Days)]
}

// PrevDay returns the day before id, wrapping Monday to Sunday.
// The overview maps onto Sunday.
func PrevDay(id ViewID) ViewID {
	i := id.DayIndex()
	if i < 0 {
		return Sunday
	}
	return Days[(i+len(Days)-1)%len(Days)]
}

// DisplayName returns the capitalised view name, e.g. "Monday"
func (id ViewID) DisplayName() string {
	s := string(id)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
