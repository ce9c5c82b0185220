package tui

import (
	"slices"
	"testing"
	"time"
)

func TestRingBuffer(t *testing.T) {
	t.Parallel()
	r := NewRingBuffer(3)
	if got := r.Slice(); len(got) != 0 {
		t.Errorf("empty Slice() = %v", got)
	}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push(v)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if got := r.Slice(); !slices.Equal(got, []float64{3, 4, 5}) {
		t.Errorf("Slice() = %v, want [3 4 5]", got)
	}
}

func TestRingBufferZeroCapacity(t *testing.T) {
	t.Parallel()
	r := NewRingBuffer(0)
	r.Push(1)
	r.Push(2)
	if got := r.Slice(); !slices.Equal(got, []float64{2}) {
		t.Errorf("Slice() = %v, want [2]", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"all zero", []float64{0, 0}, "▁▁"},
		{"scaled to peak", []float64{0, 1, 2, 4}, "▁▃▅█"},
		{"negative clamps", []float64{-3, 5}, "▁█"},
	}
	for _, tt := range tests {
		if got := RenderSparkline(tt.values); got != tt.want {
			t.Errorf("%s: RenderSparkline(%v) = %q, want %q", tt.name, tt.values, got, tt.want)
		}
	}
}

func TestDurationHistory(t *testing.T) {
	t.Parallel()
	h := NewDurationHistory(2)
	h.Add(time.Second)
	h.Add(2 * time.Second)
	h.Add(4 * time.Second)
	if got := h.Sparkline(); got != "▅█" {
		t.Errorf("Sparkline() = %q, want ▅█", got)
	}
}
