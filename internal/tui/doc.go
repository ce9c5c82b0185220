// Package tui implements the full-screen lesson browser: a lesson list, a
// scrollable pane with the output of the last run, and a status line with
// a sparkline of recent lesson durations.
package tui
