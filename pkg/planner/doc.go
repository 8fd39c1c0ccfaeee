// Package planner holds the view lifecycle of the weekly planner: the registry
// of the overview and seven day views, the switcher that keeps exactly one of
// them active, and the generator that lazily fills a day with its schedule.
package planner
