// Package frame is a small labelled columnar table used by the tabular-data
// lessons.
//
// A Frame is an ordered set of equally long Series. Numeric series hold
// float64 values with NaN as the missing marker; integer and boolean series
// share that storage and differ only in how they are typed and printed.
// String series carry an explicit validity mask. Every operation returns a
// new Frame; inputs are never modified.
package frame
