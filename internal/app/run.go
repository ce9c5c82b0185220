package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/curriculum/internal/cli"
	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/logging"
	"github.com/agbru/curriculum/internal/metrics"
	"github.com/agbru/curriculum/internal/orchestration"
)

// runLessons runs the selected lessons. Lesson text goes to out, everything
// else (configuration, progress, summary, diagnostics) to the error writer so
// that out only depends on the seed and the lesson selection.
func (a *Application) runLessons(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	lessons, err := orchestration.SelectLessons(a.Config, a.Registry)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if a.Config.Verbose && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, lessons, a.ErrWriter)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if !a.Config.Quiet && isTerminal(a.ErrWriter) {
		reporter = cli.CLIProgressReporter{}
	}

	recorder := metrics.NewRecorder()
	start := time.Now()
	results, err := orchestration.ExecuteLessons(ctx, lessons, a.Config, out, orchestration.ExecOptions{
		Reporter:    reporter,
		ProgressOut: a.ErrWriter,
		Logger:      a.Logger,
		Observer:    recorder,
	})
	recorder.ObserveRun(time.Since(start))
	if err != nil {
		a.Logger.Error("writing lesson output failed", err)
		return apperrors.ExitErrorGeneric
	}

	code := orchestration.AnalyzeResults(results, a.Config, cli.CLIResultPresenter{}, a.ErrWriter)
	if a.Config.MetricsFile != "" {
		if err := recorder.WriteToTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("writing metrics failed", err, logging.String("path", a.Config.MetricsFile))
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		} else {
			a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
		}
	}
	return code
}
