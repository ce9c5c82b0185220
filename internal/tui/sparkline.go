package tui

import "time"

// sparklineChars maps levels 0..7 to Unicode block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RingBuffer is a fixed-capacity circular buffer of samples.
type RingBuffer struct {
	data  []float64
	head  int
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity (at least 1).
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{data: make([]float64, max(capacity, 1))}
}

// Push adds a sample, overwriting the oldest when full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of samples held.
func (r *RingBuffer) Len() int { return r.count }

// Slice returns the samples oldest first.
func (r *RingBuffer) Slice() []float64 {
	out := make([]float64, r.count)
	start := (r.head - r.count + len(r.data)) % len(r.data)
	for i := range out {
		out[i] = r.data[(start+i)%len(r.data)]
	}
	return out
}

// DurationHistory keeps the most recent lesson durations.
type DurationHistory struct {
	buf *RingBuffer
}

// NewDurationHistory keeps up to capacity durations.
func NewDurationHistory(capacity int) DurationHistory {
	return DurationHistory{buf: NewRingBuffer(capacity)}
}

// Add records one duration.
func (h DurationHistory) Add(d time.Duration) {
	h.buf.Push(d.Seconds())
}

// Sparkline renders the history scaled to its largest value.
func (h DurationHistory) Sparkline() string {
	return RenderSparkline(h.buf.Slice())
}

// RenderSparkline draws values relative to the largest one. Negative
// values are drawn as zero.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		level := 0
		if peak > 0 && v > 0 {
			level = min(int(v/peak*7+0.5), 7)
		}
		runes[i] = sparklineChars[level]
	}
	return string(runes)
}
