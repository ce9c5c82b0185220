package statistics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Pearson returns the linear correlation coefficient of x and y and the
// two-sided p-value of the hypothesis that it is zero.
func Pearson(x, y []float64) (r, p float64) {
	r = stat.Correlation(x, y, nil)
	return r, correlationPValue(r, len(x))
}

// Spearman is the Pearson correlation of the ranks.
func Spearman(x, y []float64) (rho, p float64) {
	rho = stat.Correlation(Rank(x), Rank(y), nil)
	return rho, correlationPValue(rho, len(x))
}

func correlationPValue(r float64, n int) float64 {
	df := float64(n - 2)
	if df <= 0 || math.IsNaN(r) {
		return math.NaN()
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	return twoSidedT(t, df)
}

// CorrelationMatrix returns the pairwise Pearson correlations of columns,
// which must all have the same length.
func CorrelationMatrix(columns ...[]float64) *mat.SymDense {
	if len(columns) == 0 {
		return nil
	}
	n := len(columns[0])
	data := mat.NewDense(n, len(columns), nil)
	for j, col := range columns {
		data.SetCol(j, col)
	}
	dst := mat.NewSymDense(len(columns), nil)
	stat.CorrelationMatrix(dst, data, nil)
	return dst
}

func twoSidedT(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}
