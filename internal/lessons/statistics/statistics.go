// Package statistics is the statistics lesson: descriptive measures,
// correlation, distributions and classical hypothesis tests on seeded
// random samples.
package statistics

import (
	"context"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/agbru/curriculum/internal/frame"
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/numeric"
	stats "github.com/agbru/curriculum/internal/statistics"
)

const alpha = 0.05

// New returns the statistics lesson.
func New() lesson.Lesson { return statisticsLesson{} }

type statisticsLesson struct{}

func (statisticsLesson) Name() string { return "statistics" }
func (statisticsLesson) Title() string {
	return "Descriptive statistics, correlation, distributions and tests"
}

// Run draws the shared samples first, so that every section sees the same
// heights, weights and scores, then prints the sections in order.
func (l statisticsLesson) Run(ctx context.Context, env *lesson.Env) error {
	s := drawSamples(env.Rand.NormFloat64)
	script := &lesson.Script{
		LessonName:  l.Name(),
		LessonTitle: l.Title(),
		Heading:     "STATISTICS - Descriptive, Correlation, Distributions",
		Sections: []lesson.Section{
			{Title: "DESCRIPTIVE STATISTICS:", Show: s.descriptive},
			{Title: "CORRELATION ANALYSIS:", Show: s.correlation},
			{Title: "PROBABILITY DISTRIBUTIONS:", Show: s.distributions},
			{Title: "HYPOTHESIS TESTING:", Show: hypothesis},
			{Title: "ANOVA (Analysis of Variance):", Show: anova},
			{Title: "CHI-SQUARE TEST:", Show: chiSquare},
			{Title: "PRACTICAL EXAMPLE - Grade Analysis:", Show: grades},
		},
		Summary: summary,
	}
	return script.Run(ctx, env)
}

type samples struct {
	heights, weights, scores []float64
}

func drawSamples(draw func() float64) samples {
	return samples{
		heights: stats.NormalSample(draw, 170, 10, 100),
		weights: stats.NormalSample(draw, 70, 10, 100),
		scores:  stats.NormalSample(draw, 75, 12, 100),
	}
}

func (s samples) descriptive(env *lesson.Env) {
	out := env.Out
	h := s.heights
	d := stats.Describe(h)
	mode, _ := stats.Mode(h)

	out.Println("\nHeights dataset (cm):")
	out.Printf("  Mean: %.2f\n", d.Mean)
	out.Printf("  Median: %.2f\n", d.Median)
	out.Printf("  Mode: %.2f\n", mode)
	out.Printf("  Std Dev: %.2f\n", stats.Std(h))
	out.Printf("  Variance: %.2f\n", stats.Variance(h))
	out.Printf("  Min: %.2f\n", d.Min)
	out.Printf("  Max: %.2f\n", d.Max)
	out.Printf("  Range: %.2f\n", d.Max-d.Min)

	out.Println("\nQuartiles:")
	out.Printf("  Q1 (25%%): %.2f\n", d.Q1)
	out.Printf("  Q2 (50%%): %.2f\n", d.Median)
	out.Printf("  Q3 (75%%): %.2f\n", d.Q3)
	out.Printf("  IQR: %.2f\n", d.IQR())

	out.Println("\nSkewness and Kurtosis:")
	out.Printf("  Skewness: %.4f\n", stats.Skew(h))
	out.Printf("  Kurtosis: %.4f\n", stats.Kurtosis(h))

	out.Println("\n\nFrame Describe() output:")
	out.Println(s.table().Describe())
}

func (s samples) table() *frame.Frame {
	return frame.MustNew(
		frame.NewFloats("Height", s.heights...),
		frame.NewFloats("Weight", s.weights...),
		frame.NewFloats("TestScore", s.scores...),
	)
}

func (s samples) correlation(env *lesson.Env) {
	out := env.Out
	r, p := stats.Pearson(s.heights, s.weights)
	out.Printf("\nPearson correlation (Height vs Weight): %.4f\n", r)
	out.Printf("  Correlation coefficient: %.4f\n", r)
	out.Printf("  P-value: %.6f\n", p)

	rho, p := stats.Spearman(s.heights, s.weights)
	out.Printf("\nSpearman correlation (Height vs Weight): %.4f\n", rho)
	out.Printf("  P-value: %.6f\n", p)

	names := []string{"Height", "Weight", "TestScore"}
	corr := stats.CorrelationMatrix(s.heights, s.weights, s.scores)
	out.Println("\n\nCorrelation matrix:")
	out.Println(roundedFrame(corr, names, names, 6))
}

// roundedFrame labels m and rounds every cell for display.
func roundedFrame(m mat.Matrix, columns, index []string, decimals int) *frame.Frame {
	r, c := m.Dims()
	rounded := mat.NewDense(r, c, nil)
	rounded.Apply(func(_, _ int, v float64) float64 { return numeric.Round(v, decimals) }, m)
	f, err := frame.FromMatrix(rounded, columns, index)
	if err != nil {
		panic(err)
	}
	return f
}

func (s samples) distributions(env *lesson.Env) {
	out := env.Out
	out.Println("\nNormal distribution:")
	for _, z := range []float64{0, 1, 2} {
		out.Printf("  P(Z < %g): %.4f\n", z, stats.NormCDF(z))
	}
	out.Printf("  Density at 0: %.4f\n", stats.NormPDF(0))

	z := stats.ZScores(s.heights)
	out.Println("\nZ-score standardization of heights:")
	out.Printf("  Mean of standardized: %.6f\n", positiveZero(numeric.Round(stats.Mean(z), 6)))
	out.Printf("  Std of standardized: %.6f\n", stats.Std(z))

	out.Println("\n\nOther distributions:")
	out.Printf("  Binomial P(X=5, n=10, p=0.5): %.4f\n", stats.BinomPMF(5, 10, 0.5))
	out.Printf("  Exponential pdf at x=2: %.4f\n", stats.ExponPDF(2, 1))
	out.Printf("  Chi-square pdf at x=4, df=3: %.4f\n", stats.Chi2PDF(4, 3))
}

// positiveZero turns -0 into 0 so that it prints without a sign.
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func reportTest(env *lesson.Env, res stats.TestResult, pFormat string) {
	env.Out.Printf("  T-statistic: %.4f\n", res.Statistic)
	env.Out.Printf("  P-value: "+pFormat+"\n", res.PValue)
	env.Out.Printf("  Result: %s (α=%.2f)\n", stats.Decide(res.PValue, alpha), alpha)
}

func hypothesis(env *lesson.Env) {
	out := env.Out
	sample1 := stats.NormalSample(env.Rand.NormFloat64, 100, 15, 30)
	sample2 := stats.NormalSample(env.Rand.NormFloat64, 105, 15, 30)

	out.Println("\nOne-sample t-test:")
	out.Println("H0: Population mean = 100")
	if res, err := stats.TTest1Samp(sample1, 100); err == nil {
		reportTest(env, res, "%.4f")
	}

	out.Println("\n\nTwo-sample t-test:")
	out.Println("H0: Population means are equal")
	if res, err := stats.TTestInd(sample1, sample2); err == nil {
		reportTest(env, res, "%.4f")
	}

	out.Println("\n\nPaired t-test:")
	before := []int{85, 89, 87, 90, 86}
	after := []int{92, 94, 91, 96, 93}
	out.Printf("  Before: %v\n", before)
	out.Printf("  After: %v\n", after)
	if res, err := stats.TTestRel(numeric.Ints(before...), numeric.Ints(after...)); err == nil {
		reportTest(env, res, "%.6f")
	}
}

func anova(env *lesson.Env) {
	out := env.Out
	groups := make([][]float64, 3)
	for i, mu := range []float64{100, 105, 110} {
		groups[i] = stats.NormalSample(env.Rand.NormFloat64, mu, 10, 20)
	}
	out.Println("Testing if three groups have different means:")
	res, err := stats.FOneway(groups...)
	if err != nil {
		out.Printf("  Error: %v\n", err)
		return
	}
	out.Printf("  F-statistic: %.4f\n", res.Statistic)
	out.Printf("  P-value: %.4f\n", res.PValue)
	out.Printf("  Result: %s (α=%.2f)\n", stats.Decide(res.PValue, alpha), alpha)
}

// Contingency is the observed table of the chi-square example.
var Contingency = [][]float64{{20, 10}, {15, 25}}

func chiSquare(env *lesson.Env) {
	out := env.Out
	out.Println("\nContingency table:")
	out.Println(formatTable(Contingency))

	res, err := stats.Chi2Contingency(Contingency)
	if err != nil {
		out.Printf("  Error: %v\n", err)
		return
	}
	out.Println("\nChi-square test results:")
	out.Printf("  Chi-square statistic: %.4f\n", res.Statistic)
	out.Printf("  P-value: %.4f\n", res.PValue)
	out.Printf("  Degrees of freedom: %d\n", res.DOF)
	out.Printf("  Expected frequencies:\n%s\n", formatTable(res.Expected))
}

func formatTable(rows [][]float64) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = numeric.FormatVector(row)
	}
	return "[" + strings.Join(lines, "\n ") + "]"
}

// Grades builds the grade dataset: n students with normally distributed
// midterm and final scores and an attendance percentage in [60, 100).
func Grades(r interface {
	NormFloat64() float64
	IntN(int) int
}, n int) *frame.Frame {
	ids := make([]int, n)
	attendance := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	midterm := numeric.RoundAll(stats.NormalSample(r.NormFloat64, 75, 10, n), 2)
	final := numeric.RoundAll(stats.NormalSample(r.NormFloat64, 78, 10, n), 2)
	for i := range attendance {
		attendance[i] = 60 + r.IntN(40)
	}
	return frame.MustNew(
		frame.NewInts("StudentID", ids...),
		frame.NewFloats("Midterm", midterm...),
		frame.NewFloats("Final", final...),
		frame.NewInts("Attendance", attendance...),
	)
}

// PerformanceEdges are the right-closed bins of final scores and
// PerformanceLabels their letter grades.
var (
	PerformanceEdges  = []float64{0, 60, 70, 80, 90, 100}
	PerformanceLabels = []string{"F", "D", "C", "B", "A"}
)

func grades(env *lesson.Env) {
	out := env.Out
	df := Grades(env.Rand, 50)
	out.Println("\nGrades dataset:")
	out.Println(df.Head(10))

	midterm, final := df.MustCol("Midterm").Floats(), df.MustCol("Final").Floats()
	for _, c := range []struct {
		name   string
		values []float64
	}{{"Midterm", midterm}, {"Final", final}} {
		out.Printf("\n\n%s statistics:\n", c.name)
		out.Printf("  Mean: %.2f\n", stats.Mean(c.values))
		out.Printf("  Median: %.2f\n", stats.Median(c.values))
		out.Printf("  Std Dev: %.2f\n", stats.SampleStd(c.values))
	}

	r, _ := stats.Pearson(midterm, final)
	out.Printf("\nCorrelation (Midterm vs Final): %.4f\n", r)
	r, _ = stats.Pearson(df.MustCol("Attendance").Floats(), final)
	out.Printf("Correlation (Attendance vs Final): %.4f\n", r)

	out.Println("\n\nPaired t-test (Midterm vs Final):")
	if res, err := stats.TTestRel(midterm, final); err == nil {
		out.Printf("  T-statistic: %.4f\n", res.Statistic)
		out.Printf("  P-value: %.4f\n", res.PValue)
		verdict := "No significant difference"
		if res.PValue < alpha {
			verdict = "Significant difference"
		}
		out.Printf("  Result: %s\n", verdict)
	}

	perf, err := df.MustCol("Final").Cut(PerformanceEdges, PerformanceLabels)
	if err != nil {
		out.Printf("  Error: %v\n", err)
		return
	}
	out.Println("\n\nPerformance distribution:")
	out.Println(perf.Rename("Performance").ValueCounts().SortIndex(PerformanceLabels...))
	out.Printf("(%d of %d students fall outside the 0-100 bands)\n", countNull(perf), perf.Len())
}

func countNull(s *frame.Series) int {
	n := 0
	for i := range s.Len() {
		if s.IsNull(i) {
			n++
		}
	}
	return n
}

const summary = `
Statistics key concepts:

1. DESCRIPTIVE STATISTICS:
   - Central tendency: mean, median, mode
   - Dispersion: variance, std dev, range, IQR
   - Shape: skewness, kurtosis
   - Quartiles: Q1, Q2, Q3

2. CORRELATION:
   - Pearson: linear relationship (-1 to 1)
   - Spearman: rank-based, non-linear
   - P-value: statistical significance
   - Correlation matrix: pairwise correlations

3. PROBABILITY DISTRIBUTIONS:
   - Normal (Gaussian): most common
   - Binomial: discrete, successes/failures
   - Exponential: waiting times
   - Chi-square: categorical

4. HYPOTHESIS TESTING:
   - H0: Null hypothesis (no effect)
   - H1: Alternative hypothesis (effect exists)
   - P-value: probability of observing the data if H0 is true
   - α (alpha): significance level (typically 0.05)
   - Reject H0 if p-value < α

5. COMMON TESTS:
   - T-test: compare means
   - ANOVA: compare 3+ groups
   - Chi-square: test independence
   - Correlation: test relationships

6. EFFECT SIZE:
   - How large is the observed effect?
   - Statistical significance ≠ practical significance

7. BEST PRACTICES:
   - Always check assumptions
   - Use the appropriate test for the data type
   - Report effect size, not just p-value
   - Be skeptical of p-hacking
   - Replicate findings when possible
`
