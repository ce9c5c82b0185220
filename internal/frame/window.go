package frame

import (
	"math"
	"slices"
)

// Window is a trailing window over a series.
type Window struct {
	s    *Series
	size int
}

// Rolling returns a trailing window of size rows.
func (s *Series) Rolling(size int) Window { return Window{s: s, size: size} }

// Mean averages each full window; the first size-1 rows are missing, as is
// any window containing a missing value.
func (w Window) Mean() *Series {
	n := w.s.Len()
	out := newNulls(w.s.name, Float, n)
	if w.size <= 0 {
		return out
	}
	for i := w.size - 1; i < n; i++ {
		var sum float64
		for k := i - w.size + 1; k <= i; k++ {
			sum += w.s.Float(k)
		}
		out.nums[i] = sum / float64(w.size)
	}
	out.labels = slices.Clone(w.s.labels)
	return out
}

// CumSum returns the running sum, skipping missing values.
func (s *Series) CumSum() *Series {
	out := newNulls(s.name, Float, s.Len())
	var sum float64
	for i := range s.Len() {
		if s.IsNull(i) {
			continue
		}
		sum += s.Float(i)
		out.nums[i] = sum
	}
	if s.kind == Int {
		out.kind = Int
	}
	out.labels = slices.Clone(s.labels)
	return out
}

// PctChange returns the fractional change from the previous row.
func (s *Series) PctChange() *Series {
	out := newNulls(s.name, Float, s.Len())
	for i := 1; i < s.Len(); i++ {
		prev, cur := s.Float(i-1), s.Float(i)
		if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
			continue
		}
		out.nums[i] = cur/prev - 1
	}
	out.labels = slices.Clone(s.labels)
	return out
}
