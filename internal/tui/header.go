package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/curriculum/internal/format"
	"github.com/agbru/curriculum/internal/sysmon"
)

// HeaderModel renders the top bar: title, version, seed, run timer and,
// once sampled, system load.
type HeaderModel struct {
	version   string
	seed      uint64
	startTime time.Time
	endTime   time.Time
	width     int
	now       func() time.Time
	sys       *sysmon.Stats
}

// NewHeaderModel creates a header with a stopped timer.
func NewHeaderModel(version string, seed uint64) HeaderModel {
	return HeaderModel{version: version, seed: seed, now: time.Now}
}

// Start restarts the run timer.
func (h *HeaderModel) Start() {
	h.startTime = h.now()
	h.endTime = time.Time{}
}

// Stop freezes the run timer.
func (h *HeaderModel) Stop() {
	h.endTime = h.now()
}

// SetSeed updates the displayed seed.
func (h *HeaderModel) SetSeed(seed uint64) { h.seed = seed }

// SetSysStats records the latest system sample.
func (h *HeaderModel) SetSysStats(s sysmon.Stats) { h.sys = &s }

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// View renders the header.
func (h HeaderModel) View() string {
	title := "Course Browser"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	pipe := dimStyle.Render(" | ")
	row := titleStyle.Render(title) + pipe + accentStyle.Render(fmt.Sprintf("seed %d", h.seed))
	if !h.startTime.IsZero() {
		end := h.endTime
		if end.IsZero() {
			end = h.now()
		}
		row += pipe + accentStyle.Render("Elapsed: "+format.FormatExecutionDuration(end.Sub(h.startTime)))
	}
	if h.sys != nil {
		row += pipe + dimStyle.Render(h.sys.Label())
	}
	return headerStyle.Width(max(h.width, lipgloss.Width(row)+2)).Render(row)
}
