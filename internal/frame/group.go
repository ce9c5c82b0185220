package frame

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/agbru/curriculum/internal/statistics"
)

// AggFunc reduces the present values of a group to one number.
type AggFunc struct {
	Name string
	Fn   func([]float64) float64
	// Int marks results that are always integral, such as counts.
	Int bool
}

var (
	Count  = AggFunc{Name: "count", Fn: func(xs []float64) float64 { return float64(len(xs)) }, Int: true}
	Sum    = AggFunc{Name: "sum", Fn: aggSum}
	Mean   = AggFunc{Name: "mean", Fn: aggMean}
	Median = AggFunc{Name: "median", Fn: statistics.Median}
	Min    = AggFunc{Name: "min", Fn: aggMin}
	Max    = AggFunc{Name: "max", Fn: aggMax}
	Std    = AggFunc{Name: "std", Fn: statistics.SampleStd}
)

// Custom wraps an arbitrary reduction.
func Custom(name string, fn func([]float64) float64) AggFunc {
	return AggFunc{Name: name, Fn: fn}
}

func aggSum(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs)
}

func aggMean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Sum(xs) / float64(len(xs))
}

func aggMin(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Min(xs)
}

func aggMax(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Max(xs)
}

// Agg requests fn over Column, producing a column called Name
// (default "<Column>_<fn>", or fn's name when the group-by has a single
// aggregated column).
type Agg struct {
	Column string
	Func   AggFunc
	Name   string
}

// Grouped is the result of GroupBy: rows partitioned by the distinct values
// of the key columns, groups ordered by key.
type Grouped struct {
	frame  *Frame
	keys   []string
	groups []group
}

type group struct {
	values []string
	rows   []int
}

// GroupBy partitions the rows of f by the key columns. Every row belongs to
// exactly one group: rows with a missing key form their own "NaN" group,
// sorted after the present keys. Groups are sorted by key, numerically for
// numeric keys.
func (f *Frame) GroupBy(keys ...string) (*Grouped, error) {
	keyCols := make([]*Series, len(keys))
	for k, name := range keys {
		c, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		keyCols[k] = c
	}

	byKey := map[string]int{}
	g := &Grouped{frame: f, keys: keys}
	rows, _ := f.Shape()
	var first []int
	for i := range rows {
		key := f.rowKey(i, keyCols)
		k, ok := byKey[key]
		if !ok {
			k = len(g.groups)
			byKey[key] = k
			values := make([]string, len(keyCols))
			for j, c := range keyCols {
				values[j] = c.Str(i)
			}
			g.groups = append(g.groups, group{values: values})
			first = append(first, i)
		}
		g.groups[k].rows = append(g.groups[k].rows, i)
	}

	order := positionsInt(len(g.groups))
	slices.SortStableFunc(order, func(a, b int) int {
		for _, c := range keyCols {
			if r := compareCells(c, first[a], first[b]); r != 0 {
				return r
			}
		}
		return 0
	})
	sorted := make([]group, len(order))
	for k, i := range order {
		sorted[k] = g.groups[i]
	}
	g.groups = sorted
	return g, nil
}

// Len returns the number of groups.
func (g *Grouped) Len() int { return len(g.groups) }

// Keys returns the key values of every group.
func (g *Grouped) Keys() [][]string {
	out := make([][]string, len(g.groups))
	for i, gr := range g.groups {
		out[i] = slices.Clone(gr.values)
	}
	return out
}

// Frames returns the sub-frame of every group, in group order.
func (g *Grouped) Frames() []*Frame {
	out := make([]*Frame, len(g.groups))
	for i, gr := range g.groups {
		out[i] = g.frame.Take(gr.rows)
	}
	return out
}

func (g *Grouped) labels() []string {
	out := make([]string, len(g.groups))
	for i, gr := range g.groups {
		out[i] = strings.Join(gr.values, ", ")
	}
	return out
}

func (g *Grouped) reduce(column string, fn AggFunc, name string) (*Series, error) {
	c, err := g.frame.Col(column)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(g.groups))
	for i, gr := range g.groups {
		values[i] = fn.Fn(c.take(gr.rows).present())
	}
	s := NewFloats(name, values...)
	if fn.Int || (c.kind == Int && (fn.Name == "sum" || fn.Name == "min" || fn.Name == "max") && allIntegral(values)) {
		s.kind = Int
	}
	return s, nil
}

// Aggregate reduces one column with fn and returns it labelled by group key.
func (g *Grouped) Aggregate(column string, fn AggFunc) (*Series, error) {
	s, err := g.reduce(column, fn, column)
	if err != nil {
		return nil, err
	}
	return s.WithLabels(g.labels()), nil
}

// Agg applies every aggregation and returns one row per group, indexed by
// the group key.
func (g *Grouped) Agg(aggs ...Agg) (*Frame, error) {
	single := true
	for _, a := range aggs {
		if a.Column != aggs[0].Column {
			single = false
		}
	}

	out := &Frame{index: g.labels(), indexName: strings.Join(g.keys, ", ")}
	for _, a := range aggs {
		name := a.Name
		if name == "" {
			name = a.Column + "_" + a.Func.Name
			if single {
				name = a.Func.Name
			}
		}
		s, err := g.reduce(a.Column, a.Func, name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(out.Columns(), name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		out.cols = append(out.cols, s)
	}
	return out, nil
}

// Filter keeps the rows of every group for which keep returns true, in
// original row order.
func (g *Grouped) Filter(keep func(*Frame) bool) *Frame {
	var idx []int
	for _, gr := range g.groups {
		if keep(g.frame.Take(gr.rows)) {
			idx = append(idx, gr.rows...)
		}
	}
	slices.Sort(idx)
	return g.frame.Take(idx)
}

// Apply reduces column with an arbitrary function, like Aggregate with a
// Custom AggFunc.
func (g *Grouped) Apply(column, name string, fn func([]float64) float64) (*Series, error) {
	s, err := g.reduce(column, Custom(name, fn), name)
	if err != nil {
		return nil, err
	}
	return s.WithLabels(g.labels()), nil
}
