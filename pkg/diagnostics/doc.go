// Package diagnostics measures the planner's view switching, lazy schedule
// generation and rendering, and packages the timings as a labelled run.
package diagnostics
