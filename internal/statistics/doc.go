// Package statistics implements the descriptive statistics, correlations and
// classical hypothesis tests demonstrated by the statistics lesson.
//
// Moments and correlations come from gonum/stat; p-values are computed from
// the gonum/stat/distuv distribution functions. Conventions follow the usual
// scientific Python defaults: population variance for Variance/Std, linear
// percentile interpolation, biased skewness and excess kurtosis, two-sided
// p-values.
package statistics
