package statistics

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInsufficientData is returned when a test has too few observations.
var ErrInsufficientData = errors.New("insufficient data")

// TestResult is the outcome of a hypothesis test.
type TestResult struct {
	Statistic float64
	PValue    float64
	DF        float64
}

// Decide renders the decision at significance level alpha.
func Decide(p, alpha float64) string {
	if p < alpha {
		return "Reject H0"
	}
	return "Fail to reject H0"
}

// TTest1Samp tests whether the mean of xs equals mu.
func TTest1Samp(xs []float64, mu float64) (TestResult, error) {
	n := float64(len(xs))
	if n < 2 {
		return TestResult{}, ErrInsufficientData
	}
	mean, sd := stat.MeanStdDev(xs, nil)
	t := (mean - mu) / (sd / math.Sqrt(n))
	if sd == 0 {
		t = math.NaN()
		if mean != mu {
			t = math.Copysign(math.Inf(1), mean-mu)
		}
	}
	return TestResult{Statistic: t, PValue: twoSidedT(t, n-1), DF: n - 1}, nil
}

// TTestInd is the two-sample t-test assuming equal variances.
func TTestInd(a, b []float64) (TestResult, error) {
	n1, n2 := float64(len(a)), float64(len(b))
	if n1 < 2 || n2 < 2 {
		return TestResult{}, ErrInsufficientData
	}
	df := n1 + n2 - 2
	pooled := ((n1-1)*stat.Variance(a, nil) + (n2-1)*stat.Variance(b, nil)) / df
	t := (stat.Mean(a, nil) - stat.Mean(b, nil)) / math.Sqrt(pooled*(1/n1+1/n2))
	return TestResult{Statistic: t, PValue: twoSidedT(t, df), DF: df}, nil
}

// TTestRel is the paired t-test on a-b.
func TTestRel(a, b []float64) (TestResult, error) {
	if len(a) != len(b) {
		return TestResult{}, errors.New("paired samples must have equal length")
	}
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	return TTest1Samp(diff, 0)
}

// FOneway is the one-way ANOVA across groups.
func FOneway(groups ...[]float64) (TestResult, error) {
	k := len(groups)
	if k < 2 {
		return TestResult{}, ErrInsufficientData
	}
	var all []float64
	for _, g := range groups {
		if len(g) == 0 {
			return TestResult{}, ErrInsufficientData
		}
		all = append(all, g...)
	}
	grand := stat.Mean(all, nil)

	var ssb, ssw float64
	for _, g := range groups {
		m := stat.Mean(g, nil)
		ssb += float64(len(g)) * (m - grand) * (m - grand)
		for _, v := range g {
			ssw += (v - m) * (v - m)
		}
	}
	dfb, dfw := float64(k-1), float64(len(all)-k)
	if dfw <= 0 {
		return TestResult{}, ErrInsufficientData
	}
	f := (ssb / dfb) / (ssw / dfw)
	dist := distuv.F{D1: dfb, D2: dfw}
	return TestResult{Statistic: f, PValue: 1 - dist.CDF(f), DF: dfb}, nil
}

// Chi2Result is the outcome of a contingency-table test.
type Chi2Result struct {
	Statistic float64
	PValue    float64
	DOF       int
	Expected  [][]float64
}

// Chi2Contingency tests independence of the rows and columns of an observed
// frequency table. Yates' continuity correction is applied when DOF is 1.
func Chi2Contingency(observed [][]float64) (Chi2Result, error) {
	rows := len(observed)
	if rows < 2 || len(observed[0]) < 2 {
		return Chi2Result{}, ErrInsufficientData
	}
	cols := len(observed[0])
	rowSums := make([]float64, rows)
	colSums := make([]float64, cols)
	var total float64
	for i, row := range observed {
		if len(row) != cols {
			return Chi2Result{}, errors.New("ragged contingency table")
		}
		for j, v := range row {
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}
	// a zero row or column sum gives a zero expected frequency
	if slices.Contains(rowSums, 0) || slices.Contains(colSums, 0) {
		return Chi2Result{}, ErrInsufficientData
	}

	dof := (rows - 1) * (cols - 1)
	expected := make([][]float64, rows)
	var chi2 float64
	for i := range observed {
		expected[i] = make([]float64, cols)
		for j, o := range observed[i] {
			e := rowSums[i] * colSums[j] / total
			expected[i][j] = e
			d := math.Abs(o - e)
			if dof == 1 {
				d = max(d-0.5, 0)
			}
			chi2 += d * d / e
		}
	}
	dist := distuv.ChiSquared{K: float64(dof)}
	return Chi2Result{Statistic: chi2, PValue: 1 - dist.CDF(chi2), DOF: dof, Expected: expected}, nil
}
