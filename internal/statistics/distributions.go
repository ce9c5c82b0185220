package statistics

import "gonum.org/v1/gonum/stat/distuv"

// StandardNormal is N(0, 1).
var StandardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormCDF is P(Z < z) for the standard normal.
func NormCDF(z float64) float64 { return StandardNormal.CDF(z) }

// NormPDF is the standard normal density.
func NormPDF(z float64) float64 { return StandardNormal.Prob(z) }

// BinomPMF is P(X = k) for X ~ Binomial(n, p).
func BinomPMF(k, n int, p float64) float64 {
	return distuv.Binomial{N: float64(n), P: p}.Prob(float64(k))
}

// ExponPDF is the exponential density with the given rate.
func ExponPDF(x, rate float64) float64 {
	return distuv.Exponential{Rate: rate}.Prob(x)
}

// Chi2PDF is the chi-square density with df degrees of freedom.
func Chi2PDF(x, df float64) float64 {
	return distuv.ChiSquared{K: df}.Prob(x)
}

// NormalSample draws n values from N(mu, sigma) using draw as the source of
// standard normal deviates.
func NormalSample(draw func() float64, mu, sigma float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mu + sigma*draw()
	}
	return out
}
