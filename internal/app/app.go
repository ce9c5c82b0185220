// Package app wires configuration, the lesson registry and the presentation
// layers into the curriculum command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agbru/curriculum/internal/cli"
	"github.com/agbru/curriculum/internal/config"
	"github.com/agbru/curriculum/internal/curriculum"
	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/logging"
	"github.com/agbru/curriculum/internal/tui"
	"github.com/agbru/curriculum/internal/ui"
)

// Application represents one invocation of the curriculum command.
type Application struct {
	Config    config.AppConfig
	Registry  *lesson.Registry
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry replaces the curriculum with a custom set of lessons.
func WithRegistry(r *lesson.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger sets the diagnostics logger. The default writes human readable
// lines to the error writer.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = curriculum.NewRegistry()
	}
	if app.Logger == nil {
		console := zerolog.ConsoleWriter{Out: errWriter, NoColor: true, TimeFormat: "15:04:05"}
		app.Logger = logging.NewZerologAdapter(zerolog.New(console).With().Timestamp().Str("component", "runner").Logger())
	}

	programName := "curriculum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the mode selected by the configuration and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.List:
		cli.PrintCatalog(out, a.Registry.All())
		return apperrors.ExitSuccess
	case a.Config.Interactive:
		return a.runInteractive(ctx, out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	}
	return a.runLessons(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runInteractive starts the line-oriented prompt on stdin.
func (a *Application) runInteractive(ctx context.Context, out io.Writer) int {
	repl := cli.NewREPL(a.Registry, cli.REPLConfig{
		Seed:      a.Config.Seed,
		SampleDir: a.Config.SampleDir,
		Timeout:   a.Config.Timeout,
		Logger:    a.Logger,
	})
	repl.SetOutput(out)
	repl.Start(ctx)
	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

// runTUI launches the lesson browser. Each run started from the browser is
// bounded by the configured timeout, the browser itself is not.
func (a *Application) runTUI(ctx context.Context) int {
	return tui.Run(ctx, a.Registry.All(), a.Config, Version)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
