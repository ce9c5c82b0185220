package statistics

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/agbru/curriculum/internal/numeric"
)

// Summary mirrors the rows of a describe() table.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// IQR is the interquartile range.
func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }

// Describe computes the summary of xs, ignoring NaN values.
func Describe(xs []float64) Summary {
	clean := DropNaN(xs)
	if len(clean) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}
	q := numeric.Percentiles(clean, 25, 50, 75)
	return Summary{
		Count:  len(clean),
		Mean:   stat.Mean(clean, nil),
		Std:    SampleStd(clean),
		Min:    floats.Min(clean),
		Q1:     q[0],
		Median: q[1],
		Q3:     q[2],
		Max:    floats.Max(clean),
	}
}

// DropNaN returns xs without NaN values.
func DropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean is the arithmetic mean.
func Mean(xs []float64) float64 { return stat.Mean(xs, nil) }

// Median is the 50th percentile.
func Median(xs []float64) float64 { return numeric.Median(xs) }

// Variance is the population variance (divisor n).
func Variance(xs []float64) float64 {
	n := float64(len(xs))
	if n < 2 {
		return 0
	}
	return stat.Variance(xs, nil) * (n - 1) / n
}

// Std is the population standard deviation.
func Std(xs []float64) float64 { return math.Sqrt(Variance(xs)) }

// SampleVariance is the unbiased variance (divisor n-1).
func SampleVariance(xs []float64) float64 { return stat.Variance(xs, nil) }

// SampleStd is the sample standard deviation.
func SampleStd(xs []float64) float64 { return stat.StdDev(xs, nil) }

// Mode returns the most common value and its count. Ties resolve to the
// smallest value.
func Mode(xs []float64) (value float64, count int) {
	if len(xs) == 0 {
		return math.NaN(), 0
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	run := 0
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > count {
			value, count = v, run
		}
	}
	return value, count
}

// Skew is the biased sample skewness m3 / m2^1.5.
func Skew(xs []float64) float64 {
	m2 := stat.Moment(2, xs, nil)
	if m2 == 0 {
		return math.NaN()
	}
	return stat.Moment(3, xs, nil) / math.Pow(m2, 1.5)
}

// Kurtosis is the biased excess kurtosis m4 / m2^2 - 3.
func Kurtosis(xs []float64) float64 {
	m2 := stat.Moment(2, xs, nil)
	if m2 == 0 {
		return math.NaN()
	}
	return stat.Moment(4, xs, nil)/(m2*m2) - 3
}

// ZScores standardizes xs with the population standard deviation.
func ZScores(xs []float64) []float64 {
	mean, std := Mean(xs), Std(xs)
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = (v - mean) / std
	}
	return out
}

// Rank assigns 1-based ranks, averaging ties.
func Rank(xs []float64) []float64 {
	idx := numeric.Argsort(xs)
	ranks := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}
