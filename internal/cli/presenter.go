package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/format"
	"github.com/agbru/curriculum/internal/orchestration"
	"github.com/agbru/curriculum/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner on a terminal.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress shows the spinner until progressChan is closed.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numLessons int, out io.Writer) {
	DisplayProgress(wg, progressChan, numLessons, out)
}

// CLIResultPresenter renders the run summary as a bordered table.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
)

// Status cells of the summary table.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// PresentSummaryTable prints one row per lesson, in run order.
func (p CLIResultPresenter) PresentSummaryTable(results []orchestration.LessonResult, out io.Writer) {
	theme := ui.GetCurrentTUITheme()
	rows := make([][]string, 0, len(results))
	var total time.Duration
	for _, r := range results {
		status := StatusOK
		if r.Err != nil {
			status = StatusFailed
		}
		total += r.Duration
		rows = append(rows, []string{r.Name, p.FormatDuration(r.Duration), status})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Lesson", "Duration", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(theme.Accent)
			case col == 1:
				return style.Align(lipgloss.Right)
			case col == 2 && row >= 0 && row < len(rows) && rows[row][2] == StatusFailed:
				return style.Foreground(theme.Error)
			case col == 2:
				return style.Foreground(theme.Success)
			}
			return style
		})

	fmt.Fprintf(out, "\n--- Run Summary ---\n")
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "Lesson time: %s\n", p.FormatDuration(total))
}

// FormatDuration formats a lesson duration; zero reads "< 1µs".
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// HandleError reports a failed run with the active theme's colors.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleLessonError(err, duration, out, ui.Palette{})
}
