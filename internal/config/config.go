// Package config defines the runner configuration: command-line flags,
// CURRICULUM_* environment overrides and their validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/curriculum/internal/errors"
)

const (
	// EnvPrefix prefixes every environment variable read by the runner.
	EnvPrefix = "CURRICULUM_"

	// AllLessons selects the whole curriculum.
	AllLessons = "all"

	// DefaultSeed seeds the random generator handed to lessons.
	DefaultSeed uint64 = 42

	// DefaultTimeout bounds a complete run.
	DefaultTimeout = 5 * time.Minute

	// MaxJobs caps --jobs.
	MaxJobs = 64
)

// SupportedShells lists the shells accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig aggregates the runner's configuration.
type AppConfig struct {
	// Lesson is the raw --lesson value: a name, a comma list or "all".
	Lesson string
	// Lessons is Lesson resolved against the registry, in curriculum order
	// for "all" and in the given order otherwise.
	Lessons []string

	Seed        uint64
	SampleDir   string
	Jobs        int
	Timeout     time.Duration
	Quiet       bool
	Verbose     bool
	NoColor     bool
	List        bool
	Interactive bool
	TUI         bool
	MetricsFile string
	Completion  string
	ShowVersion bool
}

// DefaultSampleDir is the directory the file lesson writes to.
func DefaultSampleDir() string {
	return filepath.Join(os.TempDir(), "data_samples")
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(available []string) error {
	if c.Jobs < 1 || c.Jobs > MaxJobs {
		return apperrors.NewConfigError("--jobs must be between 1 and %d, got %d", MaxJobs, c.Jobs)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.Interactive && c.TUI {
		return apperrors.NewConfigError("--interactive and --tui are mutually exclusive")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for --completion (supported: %s)",
			c.Completion, strings.Join(SupportedShells, ", "))
	}
	if strings.TrimSpace(c.SampleDir) == "" {
		return apperrors.NewConfigError("--sample-dir must not be empty")
	}
	_, err := ResolveLessons(c.Lesson, available)
	return err
}

// ResolveLessons expands a --lesson value into registry names.
// Duplicates are dropped; unknown names produce a ConfigError.
func ResolveLessons(spec string, available []string) ([]string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, AllLessons) {
		return slices.Clone(available), nil
	}

	var out []string
	for part := range strings.SplitSeq(spec, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !slices.Contains(available, name) {
			return nil, apperrors.NewConfigError("unknown lesson %q (available: %s)",
				name, strings.Join(available, ", "))
		}
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, apperrors.NewConfigError("--lesson selects no lessons")
	}
	return out, nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Priority is flags, then CURRICULUM_* environment variables, then defaults.
// flag.ErrHelp is returned unchanged when -h or --help is given.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableLessons []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Runs the lessons of a self-study Go and data-analysis course.")
		fmt.Fprintf(errorWriter, "\nLessons: %s\n\nOptions:\n", strings.Join(availableLessons, ", "))
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEnvironment variables (%s*) apply to flags not given explicitly.\n", EnvPrefix)
	}

	config := AppConfig{}
	fs.StringVar(&config.Lesson, "lesson", AllLessons, "Lesson to run: a name, a comma-separated list, or 'all'.")
	fs.StringVar(&config.Lesson, "l", AllLessons, "Shorthand for --lesson.")
	fs.Uint64Var(&config.Seed, "seed", DefaultSeed, "Seed of the random generator given to lessons.")
	fs.StringVar(&config.SampleDir, "sample-dir", DefaultSampleDir(), "Directory where the file lesson writes its samples.")
	fs.IntVar(&config.Jobs, "jobs", 1, "Number of lessons executed concurrently. Output order is unaffected.")
	fs.IntVar(&config.Jobs, "j", 1, "Shorthand for --jobs.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of a complete run.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Suppress the run summary.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging on stderr.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (NO_COLOR is also honoured).")
	fs.BoolVar(&config.List, "list", false, "List the available lessons and exit.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive prompt.")
	fs.BoolVar(&config.Interactive, "i", false, "Shorthand for --interactive.")
	fs.BoolVar(&config.TUI, "tui", false, "Browse lessons in a full-screen terminal UI.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh, fish or powershell.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information and exit.")
	fs.BoolVar(&config.ShowVersion, "V", false, "Shorthand for --version.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := applyEnvOverrides(&config, fs); err != nil {
		return AppConfig{}, err
	}

	if err := config.Validate(availableLessons); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	config.Lessons, _ = ResolveLessons(config.Lesson, availableLessons)
	return config, nil
}
