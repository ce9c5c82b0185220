package orchestration

import (
	"time"

	"github.com/agbru/curriculum/internal/format"
)

// ProgressAggregator folds per-lesson updates into an overall completion and
// an ETA. The CLI spinner and the TUI both consume it.
type ProgressAggregator struct {
	state      *format.ProgressWithETA
	numLessons int
	completed  int
}

// NewProgressAggregator returns an aggregator for numLessons lessons, or nil
// when there is nothing to track.
func NewProgressAggregator(numLessons int) *ProgressAggregator {
	if numLessons <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:      format.NewProgressWithETA(numLessons),
		numLessons: numLessons,
	}
}

// AggregatedProgress is the view of the run after one update.
type AggregatedProgress struct {
	// Index and Name identify the lesson that sent the update.
	Index int
	Name  string
	// Completed counts lessons that reached 1.
	Completed int
	// AverageProgress is the overall completion, from 0 to 1.
	AverageProgress float64
	ETA             time.Duration
}

// Update records one progress update.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if update.Value >= 1 {
		a.completed++
	}
	avg, eta := a.state.UpdateWithETA(update.Index, update.Value)
	return AggregatedProgress{
		Index:           update.Index,
		Name:            update.Name,
		Completed:       a.completed,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current overall completion.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current estimate without updating it.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumLessons returns the number of tracked lessons.
func (a *ProgressAggregator) NumLessons() int {
	return a.numLessons
}

// DrainChannel discards every update until progressChan is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
