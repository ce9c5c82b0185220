package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/curriculum/internal/config"
	"github.com/agbru/curriculum/internal/format"
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/logging"
	"github.com/agbru/curriculum/internal/orchestration"
	"github.com/agbru/curriculum/internal/ui"
)

// REPLConfig holds the settings of an interactive session.
type REPLConfig struct {
	// Seed is handed to every lesson run from the prompt.
	Seed uint64
	// SampleDir is where the file lesson writes its samples.
	SampleDir string
	// Timeout bounds each run.
	Timeout time.Duration
	// Logger receives lesson diagnostics.
	Logger logging.Logger
}

// REPL is an interactive prompt for running lessons one at a time.
type REPL struct {
	config   REPLConfig
	registry *lesson.Registry
	in       io.Reader
	out      io.Writer
	runs     int
}

// NewREPL creates a prompt over registry reading stdin and writing stdout.
func NewREPL(registry *lesson.Registry, cfg REPLConfig) *REPL {
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}
	return &REPL{
		config:   cfg,
		registry: registry,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput replaces the input reader.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput replaces the output writer.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads commands until "exit", end of input, or cancellation of ctx.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for ctx.Err() == nil {
		fmt.Fprint(r.out, ui.ColorGreen()+"learn> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.processCommand(ctx, input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s        %sGo & Data Analysis Course - Interactive Mode%s      %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range [][2]string{
		{"run <lesson>", "Run a lesson by name or catalog number"},
		{"list", "List the lessons"},
		{"seed <n>", "Change the random seed"},
		{"status", "Display the session settings"},
		{"help", "Display this help"},
		{"exit / quit", "Leave interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %s%-13s%s - %s\n", ui.ColorYellow(), c[0], ui.ColorReset(), c[1])
	}
	fmt.Fprintf(r.out, "A bare lesson name or number also runs it.\n")
}

// processCommand executes one line of input. It returns false on exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "run", "r":
		r.cmdRun(ctx, args)
	case "list", "ls":
		PrintCatalog(r.out, r.registry.All())
	case "seed":
		r.cmdSeed(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if _, err := r.resolve(cmd); err == nil {
			r.cmdRun(ctx, parts)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

// resolve accepts a registry name or a 1-based catalog number.
func (r *REPL) resolve(arg string) (lesson.Lesson, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		all := r.registry.All()
		if n < 1 || n > len(all) {
			return nil, fmt.Errorf("no lesson number %d (1-%d)", n, len(all))
		}
		return all[n-1], nil
	}
	return r.registry.Get(strings.ToLower(arg))
}

func (r *REPL) cmdRun(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: run <lesson>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	lessons := make([]lesson.Lesson, 0, len(args))
	for _, arg := range args {
		l, err := r.resolve(arg)
		if err != nil {
			fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		lessons = append(lessons, l)
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()
	cfg := config.AppConfig{Jobs: 1, Seed: r.config.Seed, SampleDir: r.config.SampleDir}
	results, err := orchestration.ExecuteLessons(ctx, lessons, cfg, r.out, orchestration.ExecOptions{Logger: r.config.Logger})
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	for _, res := range results {
		r.runs++
		if res.Err != nil {
			fmt.Fprintf(r.out, "%s%s failed: %v%s\n", ui.ColorRed(), res.Name, res.Err, ui.ColorReset())
			continue
		}
		fmt.Fprintf(r.out, "%s%s finished in %s%s\n", ui.ColorGreen(), res.Name, format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	}
}

func (r *REPL) cmdSeed(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: seed <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	seed, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid seed: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Seed = seed
	fmt.Fprintf(r.out, "Seed changed to: %s%d%s\n", ui.ColorGreen(), seed, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent settings:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Seed:        %s%d%s\n", ui.ColorCyan(), r.config.Seed, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:     %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Sample dir:  %s%s%s\n", ui.ColorCyan(), r.config.SampleDir, ui.ColorReset())
	fmt.Fprintf(r.out, "  Lessons run: %s%d%s\n", ui.ColorCyan(), r.runs, ui.ColorReset())
	fmt.Fprintln(r.out)
}
