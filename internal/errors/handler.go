package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape sequences used when reporting errors.
// The cli package implements it on top of the active ui theme so that this
// package stays free of presentation imports.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleLessonError reports a lesson failure on out and maps it to an exit code.
// A nil error yields ExitSuccess without output.
//
// Parameters:
//   - err: The error returned by the lesson run (possibly wrapped).
//   - duration: How long the run took before failing.
//   - out: Destination for the report.
//   - colors: Escape sequences for highlighting.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleLessonError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	var timeoutErr TimeoutError
	switch {
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sRun timed out after %s: %v%s\n", colors.Yellow(), duration, err, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sRun canceled after %s.%s\n", colors.Yellow(), duration, colors.Reset())
		return ExitErrorCanceled
	}

	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	}

	var lessonErr LessonError
	if errors.As(err, &lessonErr) {
		fmt.Fprintf(out, "%sLesson failed: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorLesson
	}

	fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	return ExitErrorGeneric
}
