package planner

import "fmt"

// NotFoundError is returned when a view identifier is not part of the view set
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("view not found: %q", e.ID)
}

// UnknownDayError is returned when a day identifier is not one of the seven days
type UnknownDayError struct {
	Day string
}

func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("unknown day: %q", e.Day)
}
