package tui

import (
	"time"

	"github.com/agbru/curriculum/internal/orchestration"
	"github.com/agbru/curriculum/internal/sysmon"
)

// ProgressMsg reports that one more lesson of a run has finished.
type ProgressMsg struct {
	Generation uint64
	Completed  int
	Total      int
	Last       string
}

// RunDoneMsg carries the outcome of a run started from the browser.
type RunDoneMsg struct {
	Generation uint64
	Output     string
	Results    []orchestration.LessonResult
	Err        error
}

// TickMsg refreshes the elapsed time of a running run. Each run has its own
// tick chain; ticks of an earlier generation end their chain.
type TickMsg struct {
	Generation uint64
	Time       time.Time
}

// SysStatsMsg carries a system CPU and memory sample taken during a run.
type SysStatsMsg sysmon.Stats
