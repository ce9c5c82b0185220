package orchestration

import (
	"io"
	"sync"
	"time"
)

// LessonResult is the outcome of a single lesson run. It is the shared
// domain type between orchestration and presentation.
type LessonResult struct {
	// Name is the registry key of the lesson.
	Name string
	// Title is the catalog description of the lesson.
	Title string
	// Output holds everything the lesson printed, even when it failed.
	Output []byte
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is non-nil when the lesson could not complete.
	Err error
}

// ProgressUpdate reports the completion of one lesson.
type ProgressUpdate struct {
	// Index is the lesson's position in the run.
	Index int
	// Name is the registry key of the lesson.
	Name string
	// Value is the completion of that lesson, from 0 to 1.
	Value float64
}

// ProgressReporter displays progress while lessons run.
//
// DisplayProgress is started in its own goroutine and must call wg.Done once
// progressChan is closed and drained.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numLessons int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numLessons int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numLessons int, out io.Writer) {
	f(wg, progressChan, numLessons, out)
}

// NullProgressReporter drains the channel without output. It is used in
// quiet mode and when stderr is not a terminal.
type NullProgressReporter struct{}

// DisplayProgress drains progressChan.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders the run summary.
type ResultPresenter interface {
	PresentSummaryTable(results []LessonResult, out io.Writer)
	ErrorHandler
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler reports a failed run and returns its exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// LessonObserver is notified after every lesson run. The metrics recorder
// implements it.
type LessonObserver interface {
	ObserveLesson(name string, duration time.Duration, err error)
}
