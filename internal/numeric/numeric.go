// Package numeric provides the array helpers used by the numeric lessons on
// top of gonum: range construction, linear-interpolation percentiles,
// uniqueness, masks and vector formatting.
package numeric

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Arange returns values from start (inclusive) to stop (exclusive) spaced by step.
func Arange(start, stop, step float64) []float64 {
	if step == 0 || (step > 0 && start >= stop) || (step < 0 && start <= stop) {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Full returns a slice of n copies of v.
func Full(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Percentile returns the p-th percentile (0 to 100) of xs using linear
// interpolation between the closest ranks. It returns NaN for empty input.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	return percentileSorted(sorted, p)
}

// Percentiles is Percentile for several ranks at once.
func Percentiles(xs []float64, ps ...float64) []float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	out := make([]float64, len(ps))
	for i, p := range ps {
		if len(sorted) == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = percentileSorted(sorted, p)
	}
	return out
}

func percentileSorted(sorted []float64, p float64) float64 {
	p = min(max(p, 0), 100)
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Median is the 50th percentile.
func Median(xs []float64) float64 { return Percentile(xs, 50) }

// Unique returns the sorted distinct values of xs.
func Unique(xs []float64) []float64 {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}

// UniqueCounts returns the sorted distinct values and how often each occurs.
func UniqueCounts(xs []float64) (values []float64, counts []int) {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			values = append(values, v)
			counts = append(counts, 0)
		}
		counts[len(counts)-1]++
	}
	return values, counts
}

// Argsort returns the indices that would sort xs ascending. xs is not modified.
func Argsort(xs []float64) []int {
	sorted := slices.Clone(xs)
	inds := make([]int, len(xs))
	floats.Argsort(sorted, inds)
	return inds
}

// Mask evaluates pred on every element.
func Mask(xs []float64, pred func(float64) bool) []bool {
	out := make([]bool, len(xs))
	for i, v := range xs {
		out[i] = pred(v)
	}
	return out
}

// Select keeps the elements whose mask entry is true.
func Select(xs []float64, mask []bool) []float64 {
	var out []float64
	for i, keep := range mask {
		if keep && i < len(xs) {
			out = append(out, xs[i])
		}
	}
	return out
}

// Where picks ifTrue or ifFalse per element depending on pred.
func Where(xs []float64, pred func(float64) bool, ifTrue, ifFalse func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		if pred(v) {
			out[i] = ifTrue(v)
		} else {
			out[i] = ifFalse(v)
		}
	}
	return out
}

// Clip limits every element to [lo, hi].
func Clip(xs []float64, lo, hi float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = min(max(v, lo), hi)
	}
	return out
}

// Diff returns the first discrete difference.
func Diff(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	out := make([]float64, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		out[i-1] = xs[i] - xs[i-1]
	}
	return out
}

// CumSum returns the running sum.
func CumSum(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	return floats.CumSum(make([]float64, len(xs)), xs)
}

// CumProd returns the running product.
func CumProd(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	return floats.CumProd(make([]float64, len(xs)), xs)
}

// Round rounds x half away from zero to the given number of decimals.
func Round(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}

// RoundAll applies Round to every element.
func RoundAll(xs []float64, decimals int) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = Round(v, decimals)
	}
	return out
}

// Apply maps fn over xs.
func Apply(xs []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = fn(v)
	}
	return out
}

// FormatFloat renders v in its shortest exact form, with a trailing ".0"
// on integral values ("3.0", "2.5", "NaN").
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FormatVector renders xs as "[1.0 2.5 3.0]".
func FormatVector(xs []float64) string {
	parts := make([]string, len(xs))
	for i, v := range xs {
		parts[i] = FormatFloat(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatVectorPrec renders xs with a fixed number of decimals.
func FormatVectorPrec(xs []float64, prec int) string {
	parts := make([]string, len(xs))
	for i, v := range xs {
		parts[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatInts renders xs as "[1 2 3]".
func FormatInts(xs []int) string {
	return strings.ReplaceAll(fmt.Sprint(xs), ",", "")
}

// FormatBools renders a mask as "[true false]".
func FormatBools(xs []bool) string {
	return fmt.Sprint(xs)
}

// FormatMatrix renders m with gonum's matrix formatter, one row per line.
func FormatMatrix(m mat.Matrix) string {
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}

// Ints converts integer literals to float64.
func Ints(xs ...int) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}
	return out
}
