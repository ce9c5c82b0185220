// Package sysmon samples system-wide CPU and memory usage for the lesson
// browser header.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sampler returns the current Stats. Sample is the production sampler.
type Sampler func() Stats

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = clampPercent(vmem.UsedPercent)
	}
	return s
}

// Label renders s as "cpu 12% mem 40%".
func (s Stats) Label() string {
	return fmt.Sprintf("cpu %.0f%% mem %.0f%%", s.CPUPercent, s.MemPercent)
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
