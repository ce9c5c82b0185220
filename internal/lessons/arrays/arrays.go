// Package arrays is the numeric array lesson built on gonum vectors and
// matrices.
package arrays

import (
	"reflect"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/numeric"
	"github.com/agbru/curriculum/internal/statistics"
)

// New returns the arrays lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "arrays",
		LessonTitle: "Numeric arrays and matrices with gonum",
		Heading:     "ARRAY BASICS - Vector Operations and Statistics",
		Sections: []lesson.Section{
			{Title: "ARRAY CREATION:", Show: creation},
			{Title: "ARRAY PROPERTIES:", Show: properties},
			{Title: "INDEXING AND SLICING:", Show: indexing},
			{Title: "ARRAY OPERATIONS:", Show: operations},
			{Title: "BROADCASTING:", Show: broadcasting},
			{Title: "AGGREGATION FUNCTIONS:", Show: aggregation},
			{Title: "STATISTICAL FUNCTIONS:", Show: statisticalFunctions},
			{Title: "RESHAPING AND TRANSPOSING:", Show: reshaping},
			{Title: "SORTING AND UNIQUE:", Show: sorting},
			{Title: "USEFUL FUNCTIONS:", Show: useful},
			{Title: "PRACTICAL EXAMPLE - Data Analysis:", Show: practical},
		},
		Summary: summary,
	}
}

var vec = numeric.FormatVector

func matrix(m mat.Matrix) string { return numeric.FormatMatrix(m) }

func creation(env *lesson.Env) {
	out := env.Out
	ints := []int{1, 2, 3, 4, 5}
	out.Printf("Slice of ints: %v\n", ints)
	out.Printf("Type: %T, len: %d\n", ints, len(ints))

	arr := numeric.Ints(ints...)
	out.Printf("\nFloat vector: %s\n", vec(arr))

	a2 := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	r, c := a2.Dims()
	out.Printf("\n2D matrix:\n%s\n", matrix(a2))
	out.Printf("Dims: (%d, %d)\n", r, c)

	out.Printf("\nArange(0, 10, 2): %s\n", vec(numeric.Arange(0, 10, 2)))
	out.Printf("Linspace(0, 1, 5): %s\n", vec(numeric.Linspace(0, 1, 5)))

	out.Printf("\nZeros (3x3):\n%s\n", matrix(mat.NewDense(3, 3, nil)))
	out.Printf("\nOnes (2x4):\n%s\n", matrix(mat.NewDense(2, 4, numeric.Full(8, 1))))
	eye := mat.NewDiagDense(3, numeric.Full(3, 1))
	out.Printf("\nIdentity matrix (3x3):\n%s\n", matrix(eye))

	random := make([]float64, 9)
	for i := range random {
		random[i] = numeric.Round(env.Rand.Float64(), 4)
	}
	out.Printf("\nRandom matrix (3x3, seeded):\n%s\n", matrix(mat.NewDense(3, 3, random)))

	randInts := make([]int, 5)
	for i := range randInts {
		randInts[i] = 1 + env.Rand.IntN(9)
	}
	out.Printf("\nRandom integers 1-9: %v\n", randInts)
}

func properties(env *lesson.Env) {
	out := env.Out
	m := mat.NewDense(3, 3, numeric.Ints(1, 2, 3, 4, 5, 6, 7, 8, 9))
	r, c := m.Dims()
	out.Printf("Matrix:\n%s\n\n", matrix(m))
	out.Printf("Dims (rows, cols): (%d, %d)\n", r, c)
	out.Printf("Size (total elements): %d\n", r*c)
	out.Printf("Element type: %T\n", m.At(0, 0))
	out.Printf("Bytes per element: %d\n", reflect.TypeFor[float64]().Size())
	out.Printf("Backing slice length: %d (row-major, stride %d)\n", len(m.RawMatrix().Data), m.RawMatrix().Stride)
}

func indexing(env *lesson.Env) {
	out := env.Out
	m := mat.NewDense(3, 4, numeric.Arange(1, 13, 1))
	r, c := m.Dims()
	out.Printf("Matrix:\n%s\n\n", matrix(m))

	out.Printf("At(0, 0): %v\n", m.At(0, 0))
	out.Printf("At(2, 3): %v\n", m.At(2, 3))
	out.Printf("At(r-1, c-1): %v\n", m.At(r-1, c-1))

	out.Printf("\nRow 0: %s\n", vec(mat.Row(nil, 0, m)))
	out.Printf("Column 0: %s\n", vec(mat.Col(nil, 0, m)))
	sub := m.Slice(1, 3, 1, 3)
	out.Printf("Slice(1, 3, 1, 3):\n%s\n", matrix(sub))

	data := m.RawMatrix().Data
	out.Printf("\nBoolean mask (> 5): %s\n", vec(numeric.Select(data, numeric.Mask(data, func(v float64) bool { return v > 5 }))))

	picked := mat.NewDense(2, c, nil)
	for i, row := range []int{0, 2} {
		picked.SetRow(i, mat.Row(nil, row, m))
	}
	out.Printf("Rows [0, 2]:\n%s\n", matrix(picked))
}

func operations(env *lesson.Env) {
	out := env.Out
	a := numeric.Ints(1, 2, 3, 4, 5)
	b := numeric.Ints(2, 4, 6, 8, 10)
	out.Printf("a: %s\n", vec(a))
	out.Printf("b: %s\n\n", vec(b))

	tmp := make([]float64, len(a))
	out.Printf("Addition (a + b): %s\n", vec(floats.AddTo(tmp, a, b)))
	out.Printf("Subtraction (a - b): %s\n", vec(floats.SubTo(tmp, a, b)))
	out.Printf("Multiplication (a * b): %s\n", vec(floats.MulTo(tmp, a, b)))
	out.Printf("Division (a / b): %s\n", vec(floats.DivTo(tmp, a, b)))
	out.Printf("Power (a ^ 2): %s\n", vec(floats.MulTo(tmp, a, a)))

	out.Println("\nScalar operations:")
	plus := append([]float64(nil), a...)
	floats.AddConst(10, plus)
	out.Printf("a + 10: %s\n", vec(plus))
	times := append([]float64(nil), a...)
	floats.Scale(2, times)
	out.Printf("a * 2: %s\n", vec(times))
	out.Printf("Dot product a . b: %v\n", floats.Dot(a, b))

	m1 := mat.NewDense(2, 2, numeric.Ints(1, 2, 3, 4))
	m2 := mat.NewDense(2, 2, numeric.Ints(5, 6, 7, 8))
	var prod, elem mat.Dense
	prod.Mul(m1, m2)
	elem.MulElem(m1, m2)
	out.Println("\nMatrix operations:")
	out.Printf("m1 x m2 (matrix multiplication):\n%s\n", matrix(&prod))
	out.Printf("m1 .* m2 (element-wise):\n%s\n", matrix(&elem))
	out.Printf("Determinant of m1: %.1f\n", mat.Det(m1))
}

func broadcasting(env *lesson.Env) {
	out := env.Out
	m := mat.NewDense(2, 3, numeric.Ints(1, 2, 3, 4, 5, 6))
	out.Printf("Matrix (2x3):\n%s\n\n", matrix(m))

	var plus mat.Dense
	plus.Apply(func(_, _ int, v float64) float64 { return v + 10 }, m)
	out.Printf("m + 10:\n%s\n\n", matrix(&plus))

	row := numeric.Ints(1, 2, 3)
	var rowAdded mat.Dense
	rowAdded.Apply(func(_, j int, v float64) float64 { return v + row[j] }, m)
	out.Printf("m + [1 2 3] (row added to every row):\n%s\n", matrix(&rowAdded))
	out.Println("Go has no implicit broadcasting: Apply makes the expansion explicit.")
}

func axisSums(m mat.Matrix) (cols, rows []float64) {
	r, c := m.Dims()
	cols = make([]float64, c)
	rows = make([]float64, r)
	for j := range c {
		cols[j] = floats.Sum(mat.Col(nil, j, m))
	}
	for i := range r {
		rows[i] = floats.Sum(mat.Row(nil, i, m))
	}
	return cols, rows
}

func aggregation(env *lesson.Env) {
	out := env.Out
	m := mat.NewDense(3, 4, numeric.Arange(1, 13, 1))
	data := m.RawMatrix().Data
	out.Printf("Matrix:\n%s\n\n", matrix(m))

	cols, rows := axisSums(m)
	out.Printf("Sum: %s\n", numeric.FormatFloat(mat.Sum(m)))
	out.Printf("Sum along axis 0 (columns): %s\n", vec(cols))
	out.Printf("Sum along axis 1 (rows): %s\n", vec(rows))

	out.Printf("\nMean: %s\n", numeric.FormatFloat(stat.Mean(data, nil)))
	r, _ := m.Dims()
	colMeans := make([]float64, len(cols))
	for j, sum := range cols {
		colMeans[j] = sum / float64(r)
	}
	out.Printf("Mean along axis 0: %s\n", vec(colMeans))

	out.Printf("\nMin: %s\n", numeric.FormatFloat(mat.Min(m)))
	out.Printf("Max: %s\n", numeric.FormatFloat(mat.Max(m)))

	out.Printf("\nStandard deviation (population): %.4f\n", statistics.Std(data))
	out.Printf("Variance (population): %.4f\n", statistics.Variance(data))
}

var sampleData = numeric.Ints(23, 45, 56, 12, 78, 34, 56, 89, 12, 45)

func statisticalFunctions(env *lesson.Env) {
	out := env.Out
	data := sampleData
	out.Printf("Data: %s\n\n", vec(data))

	out.Printf("Mean: %.2f\n", statistics.Mean(data))
	out.Printf("Median: %.2f\n", statistics.Median(data))
	out.Printf("Standard deviation: %.2f\n", statistics.Std(data))
	out.Printf("Variance: %.2f\n", statistics.Variance(data))

	lo, hi := floats.Min(data), floats.Max(data)
	out.Printf("\nMin: %s\n", numeric.FormatFloat(lo))
	out.Printf("Max: %s\n", numeric.FormatFloat(hi))
	out.Printf("Range: %s\n", numeric.FormatFloat(hi-lo))

	out.Printf("\n25th percentile: %s\n", numeric.FormatFloat(numeric.Percentile(data, 25)))
	out.Printf("50th percentile (median): %s\n", numeric.FormatFloat(numeric.Percentile(data, 50)))
	out.Printf("75th percentile: %s\n", numeric.FormatFloat(numeric.Percentile(data, 75)))
	out.Printf("\nQuantiles: %s\n", vec(numeric.Percentiles(data, 25, 50, 75)))
}

func reshaping(env *lesson.Env) {
	out := env.Out
	flat := numeric.Arange(0, 12, 1)
	out.Printf("Original vector: %s\n", vec(flat))

	m := mat.NewDense(3, 4, flat)
	out.Printf("\nReshaped (3, 4):\n%s\n", matrix(m))

	out.Println("\nReshaped (2, 2, 3) as two 2x3 blocks:")
	for k := range 2 {
		block := mat.NewDense(2, 3, flat[k*6:(k+1)*6])
		out.Printf("block %d:\n%s\n", k, matrix(block))
	}

	out.Printf("\nFlattened: %s\n", vec(mat.DenseCopyOf(m).RawMatrix().Data))

	m2 := mat.NewDense(2, 3, numeric.Ints(1, 2, 3, 4, 5, 6))
	out.Printf("\nOriginal 2D:\n%s\n", matrix(m2))
	out.Printf("Transposed:\n%s\n", matrix(m2.T()))
}

func sorting(env *lesson.Env) {
	out := env.Out
	arr := numeric.Ints(5, 2, 8, 2, 9, 1, 5, 5)
	out.Printf("Vector: %s\n\n", vec(arr))

	sorted := slices.Clone(arr)
	slices.Sort(sorted)
	out.Printf("Sorted: %s\n", vec(sorted))
	out.Printf("Argsort (indices): %v\n", numeric.Argsort(arr))
	out.Printf("Unique values: %s\n", vec(numeric.Unique(arr)))

	values, counts := numeric.UniqueCounts(arr)
	out.Println("\nUnique values and counts:")
	for i, v := range values {
		out.Printf("  %s: %d times\n", numeric.FormatFloat(v), counts[i])
	}
}

func useful(env *lesson.Env) {
	out := env.Out
	arr := numeric.Ints(1, 2, 3, 4, 5)
	out.Printf("Vector: %s\n\n", vec(arr))

	out.Printf("Cumulative sum: %s\n", vec(numeric.CumSum(arr)))
	out.Printf("Cumulative product: %s\n", vec(numeric.CumProd(arr)))
	out.Printf("Differences: %s\n", vec(numeric.Diff(arr)))

	labels := make([]string, len(arr))
	for i, v := range arr {
		labels[i] = "No"
		if v > 3 {
			labels[i] = "Yes"
		}
	}
	out.Printf("\nWhere (v > 3): [%s]\n", strings.Join(labels, " "))
	doubledAbove := numeric.Where(arr, func(v float64) bool { return v > 3 },
		func(v float64) float64 { return v * 2 },
		func(v float64) float64 { return v })
	out.Printf("Where (v > 3 doubled): %s\n", vec(doubledAbove))
	out.Printf("Clipped [2, 4]: %s\n", vec(numeric.Clip(arr, 2, 4)))
}

// GradeCounts buckets scores into A (>= 90) through F (< 60).
func GradeCounts(scores []float64) map[string]int {
	counts := map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "F": 0}
	for _, s := range scores {
		switch {
		case s >= 90:
			counts["A"]++
		case s >= 80:
			counts["B"]++
		case s >= 70:
			counts["C"]++
		case s >= 60:
			counts["D"]++
		default:
			counts["F"]++
		}
	}
	return counts
}

func practical(env *lesson.Env) {
	out := env.Out
	raw := statistics.NormalSample(env.Rand.NormFloat64, 75, 10, 30)
	scores := numeric.RoundAll(numeric.Clip(raw, 0, 100), 0)

	out.Printf("Test Scores (30 students):\n")
	for i := 0; i < len(scores); i += 10 {
		out.Printf("%s\n", vec(scores[i:i+10]))
	}

	out.Println("\nSTATISTICS:")
	out.Printf("  Mean: %.2f\n", statistics.Mean(scores))
	out.Printf("  Median: %.2f\n", statistics.Median(scores))
	out.Printf("  Std Dev: %.2f\n", statistics.Std(scores))
	out.Printf("  Min: %s\n", numeric.FormatFloat(floats.Min(scores)))
	out.Printf("  Max: %s\n", numeric.FormatFloat(floats.Max(scores)))

	out.Println("\nGRADE DISTRIBUTION:")
	counts := GradeCounts(scores)
	for _, g := range []string{"A", "B", "C", "D", "F"} {
		n := counts[g]
		out.Printf("  %s: %d students (%.1f%%)\n", g, n, float64(n)/float64(len(scores))*100)
	}
}

const summary = `
Array Key Concepts:

1. CREATION:
   - []float64 literals and mat.NewDense for matrices
   - Arange: range with step; Linspace: evenly spaced values
   - mat.NewDense(r, c, nil) for zeros, NewDiagDense for identity
   - A seeded math/rand/v2 generator for reproducible random data

2. INDEXING AND SLICING:
   - Zero-based indexing, At(i, j) for matrices
   - mat.Row, mat.Col and Slice for sub-views
   - Boolean masks select matching elements

3. OPERATIONS:
   - Element-wise: floats.AddTo, SubTo, MulTo, DivTo
   - Matrix product: Dense.Mul; element-wise: MulElem
   - No implicit broadcasting: use Apply

4. AGGREGATION:
   - floats.Sum, stat.Mean, mat.Min, mat.Max
   - Column and row reductions through mat.Col and mat.Row

5. RESHAPING:
   - A Dense is a view over a row-major slice
   - T() returns a transposed view without copying

6. BEST PRACTICES:
   - Reuse destination slices to avoid allocations
   - Prefer gonum over hand-written loops for linear algebra
   - Seed random generators for reproducibility
`
