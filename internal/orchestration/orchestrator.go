package orchestration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/curriculum/internal/config"
	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/logging"
)

// ProgressBufferMultiplier sizes the progress channel relative to the number
// of lessons so that lesson goroutines never block on a slow display.
const ProgressBufferMultiplier = 2

const tracerName = "github.com/agbru/curriculum/internal/orchestration"

// ExecOptions carries the collaborators of ExecuteLessons. The zero value is
// usable: no progress display, no logging, no observer.
type ExecOptions struct {
	// Reporter displays progress on ProgressOut.
	Reporter    ProgressReporter
	ProgressOut io.Writer
	// Logger receives diagnostics and is handed to every lesson.
	Logger logging.Logger
	// Observer is notified after each lesson.
	Observer LessonObserver
}

// ExecuteLessons runs lessons concurrently, at most cfg.Jobs at a time, each
// into its own buffer. Outputs are written to out in the order of lessons as
// soon as every earlier lesson has finished, so the text on out does not
// depend on scheduling.
//
// A failing lesson does not stop the others. Lessons that have not started
// when ctx is done are recorded as failed with the context error.
//
// Parameters:
//   - ctx: Cancellation and deadline for the whole run.
//   - lessons: The lessons to run, in curriculum order.
//   - cfg: The application configuration (jobs, seed, sample directory).
//   - out: Destination of the lesson text.
//   - opts: Progress, logging and observation hooks.
//
// Returns:
//   - []LessonResult: One result per lesson, in the order of lessons.
//   - error: The first error writing to out, if any.
func ExecuteLessons(ctx context.Context, lessons []lesson.Lesson, cfg config.AppConfig, out io.Writer, opts ExecOptions) ([]LessonResult, error) {
	if opts.Reporter == nil {
		opts.Reporter = NullProgressReporter{}
	}
	if opts.ProgressOut == nil {
		opts.ProgressOut = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}

	results := make([]LessonResult, len(lessons))
	done := make([]chan struct{}, len(lessons))
	for i := range done {
		done[i] = make(chan struct{})
	}
	progressChan := make(chan ProgressUpdate, len(lessons)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go opts.Reporter.DisplayProgress(&displayWg, progressChan, len(lessons), opts.ProgressOut)

	var writeErr error
	var emitWg sync.WaitGroup
	emitWg.Add(1)
	go func() {
		defer emitWg.Done()
		for i := range results {
			<-done[i]
			if writeErr != nil {
				continue
			}
			if _, err := out.Write(results[i].Output); err != nil {
				writeErr = fmt.Errorf("writing output of %q: %w", results[i].Name, err)
			}
		}
	}()

	var g errgroup.Group
	g.SetLimit(max(cfg.Jobs, 1))
	tracer := otel.Tracer(tracerName)

	for i, l := range lessons {
		idx, current := i, l
		if err := ctx.Err(); err != nil {
			results[idx] = LessonResult{
				Name:  current.Name(),
				Title: current.Title(),
				Err:   apperrors.LessonError{Lesson: current.Name(), Cause: err},
			}
			close(done[idx])
			continue
		}
		g.Go(func() error {
			defer close(done[idx])
			results[idx] = runLesson(ctx, tracer, current, cfg, opts.Logger)
			if opts.Observer != nil {
				opts.Observer.ObserveLesson(current.Name(), results[idx].Duration, results[idx].Err)
			}
			progressChan <- ProgressUpdate{Index: idx, Name: current.Name(), Value: 1}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()
	emitWg.Wait()

	return results, writeErr
}

func runLesson(ctx context.Context, tracer trace.Tracer, l lesson.Lesson, cfg config.AppConfig, logger logging.Logger) (res LessonResult) {
	ctx, span := tracer.Start(ctx, "lesson "+l.Name(), trace.WithAttributes(
		attribute.String("lesson.name", l.Name()),
		attribute.Int64("lesson.seed", int64(cfg.Seed)),
	))
	defer span.End()

	var buf bytes.Buffer
	env := lesson.NewEnv(&buf, cfg.Seed, cfg.SampleDir, logger)
	start := time.Now()
	res = LessonResult{Name: l.Name(), Title: l.Title()}

	defer func() {
		if r := recover(); r != nil {
			res.Err = apperrors.LessonError{Lesson: l.Name(), Cause: fmt.Errorf("panic: %v", r)}
		}
		res.Output = buf.Bytes()
		res.Duration = time.Since(start)
		span.SetAttributes(attribute.Int("lesson.output_bytes", len(res.Output)))
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
			logger.Error("lesson failed", res.Err, logging.String("lesson", l.Name()))
			return
		}
		logger.Debug("lesson finished", logging.String("lesson", l.Name()), logging.Int("bytes", len(res.Output)))
	}()

	if err := l.Run(ctx, env); err != nil {
		res.Err = err
	} else if err := env.Out.Err(); err != nil {
		res.Err = apperrors.LessonError{Lesson: l.Name(), Cause: err}
	}
	return res
}

// AnalyzeResults prints the run summary and maps the outcome to an exit code.
// The table is skipped when cfg.Quiet is set; failures are always reported.
//
// Parameters:
//   - results: The results of ExecuteLessons.
//   - cfg: The application configuration.
//   - presenter: Renders the table and the error report.
//   - out: Destination of the summary.
//
// Returns:
//   - int: ExitSuccess, or the exit code of the first failure in curriculum order.
func AnalyzeResults(results []LessonResult, cfg config.AppConfig, presenter ResultPresenter, out io.Writer) int {
	var firstErr error
	var total time.Duration
	failures := 0
	for _, r := range results {
		total += r.Duration
		if r.Err != nil {
			failures++
			if firstErr == nil {
				firstErr = r.Err
			}
		}
	}

	if !cfg.Quiet {
		presenter.PresentSummaryTable(results, out)
	}

	if failures > 0 {
		fmt.Fprintf(out, "\nRun status: failure. %d of %d lessons did not complete.\n", failures, len(results))
		return presenter.HandleError(firstErr, total, out)
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "\nRun status: success. %d lessons completed.\n", len(results))
	}
	return apperrors.ExitSuccess
}
