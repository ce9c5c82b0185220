//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/curriculum/internal/format"
	"github.com/agbru/curriculum/internal/orchestration"
)

const (
	// ProgressRefreshRate is the spinner frame interval and the rate at
	// which the ETA is refreshed between lesson completions.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 20
)

// Spinner abstracts the terminal spinner so that DisplayProgress can be
// tested without a terminal.
type Spinner interface {
	// Start begins the animation.
	Start()
	// Stop halts the animation and clears the line.
	Stop()
	// UpdateSuffix sets the text shown after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with the number of finished lessons, a
// progress bar and an ETA until progressChan is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numLessons int, out io.Writer) {
	displayProgress(wg, progressChan, numLessons, newSpinner(out))
}

func displayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numLessons int, s Spinner) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numLessons)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s.UpdateSuffix(progressSuffix(0, numLessons, 0, 0, ""))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	completed, last := 0, ""
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			p := agg.Update(update)
			completed, last = p.Completed, p.Name
			s.UpdateSuffix(progressSuffix(completed, numLessons, p.AverageProgress, p.ETA, last))
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(completed, numLessons, agg.CalculateAverage(), agg.GetETA(), last))
		}
	}
}

// progressSuffix renders " 3/11 [bar] 27% ETA 5s (last: files)".
func progressSuffix(done, total int, avg float64, eta time.Duration, last string) string {
	s := fmt.Sprintf(" Lessons %d/%d %s %3.0f%%", done, total, format.ProgressBar(avg, ProgressBarWidth), avg*100)
	if done > 0 && done < total {
		s += " ETA " + format.FormatETA(eta)
	}
	if last != "" {
		s += " (last: " + last + ")"
	}
	return s
}
