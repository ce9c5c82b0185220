package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/curriculum/internal/config"
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/ui"
)

// PrintCatalog lists lessons in curriculum order with their index, which
// the interactive prompt also accepts in place of a name.
func PrintCatalog(out io.Writer, lessons []lesson.Lesson) {
	width := 0
	for _, l := range lessons {
		width = max(width, len(l.Name()))
	}
	fmt.Fprintf(out, "%sAvailable lessons:%s\n", ui.ColorBold(), ui.ColorReset())
	for i, l := range lessons {
		fmt.Fprintf(out, "  %2d. %s%-*s%s  %s\n", i+1, ui.ColorYellow(), width, l.Name(), ui.ColorReset(), l.Title())
	}
}

// PrintExecutionConfig describes the run about to start. It is shown in
// verbose mode, on the diagnostic stream.
func PrintExecutionConfig(cfg config.AppConfig, lessons []lesson.Lesson, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Running %s%d%s lesson(s) with %s%d%s job(s), seed %s%d%s, timeout %s%s%s.\n",
		ui.ColorMagenta(), len(lessons), ui.ColorReset(),
		ui.ColorCyan(), cfg.Jobs, ui.ColorReset(),
		ui.ColorCyan(), cfg.Seed, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Sample directory: %s\n", cfg.SampleDir)
	fmt.Fprintf(out, "Environment: %d logical processors, Go %s.\n", runtime.NumCPU(), runtime.Version())
}
