package numeric

import (
	"math"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestArangeLinspace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"arange 0..10 step 2", Arange(0, 10, 2), []float64{0, 2, 4, 6, 8}},
		{"arange fractional", Arange(0, 1, 0.25), []float64{0, 0.25, 0.5, 0.75}},
		{"arange descending", Arange(5, 0, -2), []float64{5, 3, 1}},
		{"arange empty", Arange(3, 1, 1), nil},
		{"linspace", Linspace(0, 1, 5), []float64{0, 0.25, 0.5, 0.75, 1}},
		{"linspace single", Linspace(7, 9, 1), []float64{7}},
		{"full", Full(3, 1), []float64{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !floats.EqualApprox(tt.got, tt.want, 1e-12) || len(tt.got) != len(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()
	data := []float64{23, 45, 56, 12, 78, 34, 56, 89, 12, 45}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 12},
		{25, 25.75},
		{50, 45},
		{75, 56},
		{90, 79.1},
		{100, 89},
	}
	for _, tt := range tests {
		if got := Percentile(data, tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !math.IsNaN(Percentile(nil, 50)) {
		t.Error("Percentile of empty input should be NaN")
	}
	if got := Percentiles(data, 25, 50); got[0] != 25.75 || got[1] != 45 {
		t.Errorf("Percentiles = %v", got)
	}
}

func TestPercentileWithinBounds_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("percentile lies between min and max and is monotone in p", prop.ForAll(
		func(xs []float64, p float64) bool {
			if len(xs) == 0 {
				return true
			}
			v := Percentile(xs, p)
			if v < floats.Min(xs) || v > floats.Max(xs) {
				return false
			}
			return Percentile(xs, p/2) <= v
		},
		gen.SliceOf(gen.Float64Range(-1e6, 1e6)),
		gen.Float64Range(0, 100),
	))
	properties.TestingRun(t)
}

func TestUniqueAndCounts(t *testing.T) {
	t.Parallel()
	xs := []float64{3, 1, 2, 3, 3, 1}
	if got := Unique(xs); !slices.Equal(got, []float64{1, 2, 3}) {
		t.Errorf("Unique = %v", got)
	}
	values, counts := UniqueCounts(xs)
	if !slices.Equal(values, []float64{1, 2, 3}) || !slices.Equal(counts, []int{2, 1, 3}) {
		t.Errorf("UniqueCounts = %v, %v", values, counts)
	}
	if !slices.Equal(xs, []float64{3, 1, 2, 3, 3, 1}) {
		t.Error("input must not be modified")
	}
}

func TestArgsortDoesNotModifyInput(t *testing.T) {
	t.Parallel()
	xs := []float64{30, 10, 20}
	if got := Argsort(xs); !slices.Equal(got, []int{1, 2, 0}) {
		t.Errorf("Argsort = %v", got)
	}
	if xs[0] != 30 {
		t.Error("input must not be modified")
	}
}

func TestElementwiseHelpers(t *testing.T) {
	t.Parallel()
	xs := []float64{1, 5, 10, 15, 20}
	big := func(v float64) bool { return v > 8 }

	if got := Select(xs, Mask(xs, big)); !slices.Equal(got, []float64{10, 15, 20}) {
		t.Errorf("Select(Mask) = %v", got)
	}
	if got := Where(xs, big, func(v float64) float64 { return v }, func(float64) float64 { return 0 }); !slices.Equal(got, []float64{0, 0, 10, 15, 20}) {
		t.Errorf("Where = %v", got)
	}
	if got := Clip(xs, 5, 15); !slices.Equal(got, []float64{5, 5, 10, 15, 15}) {
		t.Errorf("Clip = %v", got)
	}
	if got := Diff(xs); !slices.Equal(got, []float64{4, 5, 5, 5}) {
		t.Errorf("Diff = %v", got)
	}
	if got := CumSum([]float64{1, 2, 3}); !slices.Equal(got, []float64{1, 3, 6}) {
		t.Errorf("CumSum = %v", got)
	}
	if got := CumProd([]float64{1, 2, 3, 4}); !slices.Equal(got, []float64{1, 2, 6, 24}) {
		t.Errorf("CumProd = %v", got)
	}
	if got := Round(2.345, 2); got != 2.35 && got != 2.34 {
		t.Errorf("Round = %v", got)
	}
	if got := Round(78.66666, 2); got != 78.67 {
		t.Errorf("Round = %v, want 78.67", got)
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()
	tests := []struct {
		got, want string
	}{
		{FormatFloat(3), "3.0"},
		{FormatFloat(2.5), "2.5"},
		{FormatFloat(math.NaN()), "NaN"},
		{FormatVector([]float64{1, 2.5}), "[1.0 2.5]"},
		{FormatVectorPrec([]float64{1, 2.346}, 2), "[1.00 2.35]"},
		{FormatInts([]int{1, 2, 3}), "[1 2 3]"},
		{FormatBools([]bool{true, false}), "[true false]"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}

	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if out := FormatMatrix(m); out == "" {
		t.Error("FormatMatrix returned empty output")
	}
}
