// Package logging provides a unified logging interface for the curriculum runner.
// Diagnostics (lesson start/finish, sample-file activity) go through it; lesson
// text never does, since lesson output is the product and belongs on stdout.
package logging
