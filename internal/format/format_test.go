package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
		{1500*time.Millisecond + 300*time.Microsecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.input); got != tt.expected {
			t.Errorf("FormatNumberString(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestProgressState(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(4)
	ps.Update(0, 1)
	ps.Update(1, 1)
	ps.Update(2, 2)  // clamped to 1
	ps.Update(3, -1) // clamped to 0
	ps.Update(9, 1)  // ignored

	if got := ps.CalculateAverage(); got != 0.75 {
		t.Errorf("average = %f, want 0.75", got)
	}
	if got := NewProgressState(0).CalculateAverage(); got != 0 {
		t.Errorf("empty average = %f, want 0", got)
	}
}

func TestProgressWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(2)
	if p.GetETA() != 0 {
		t.Errorf("initial ETA = %v, want 0", p.GetETA())
	}

	p.Update(0, 0.5)
	p.progressRate = 0.1
	eta := p.GetETA()
	// 75% remaining at 10%/s.
	if eta < 7*time.Second || eta > 8*time.Second {
		t.Errorf("ETA = %v, want about 7.5s", eta)
	}

	p.progressRate = 1e-9
	if got := p.GetETA(); got > maxETA {
		t.Errorf("ETA = %v, should be capped at %v", got, maxETA)
	}

	progress, _ := p.UpdateWithETA(1, 1)
	if progress != 0.75 {
		t.Errorf("progress = %f, want 0.75", progress)
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta      time.Duration
		expected string
	}{
		{0, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{time.Hour, "1h"},
		{time.Hour + 15*time.Minute, "1h15m"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.expected {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.expected)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		expected string
	}{
		{0.0, "░░░░"},
		{0.5, "██░░"},
		{1.2, "████"},
		{-0.1, "░░░░"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.progress, 4); got != tt.expected {
			t.Errorf("ProgressBar(%f) = %s; want %s", tt.progress, got, tt.expected)
		}
	}

	line := FormatProgressBarWithETA(0.5, 30*time.Second, 10)
	for _, want := range []string{"[", "]", "50.0%", "ETA: 30s"} {
		if !strings.Contains(line, want) {
			t.Errorf("FormatProgressBarWithETA = %q, missing %q", line, want)
		}
	}
}
