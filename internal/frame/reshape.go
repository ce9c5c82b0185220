package frame

import (
	"fmt"
	"math"
	"slices"
)

// First takes the first present value of a group.
var First = AggFunc{Name: "first", Fn: func(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return xs[0]
}}

// Pivot spreads values into a table indexed by the distinct values of index
// with one column per distinct value of columns, reducing duplicates with agg.
// Combinations absent from f are missing.
func (f *Frame) Pivot(index, columns, values string, agg AggFunc) (*Frame, error) {
	rowGroups, err := f.GroupBy(index)
	if err != nil {
		return nil, err
	}
	colGroups, err := f.GroupBy(columns)
	if err != nil {
		return nil, err
	}
	cells, err := f.GroupBy(index, columns)
	if err != nil {
		return nil, err
	}
	valCol, err := f.Col(values)
	if err != nil {
		return nil, err
	}

	reduced := map[[2]string]float64{}
	for _, gr := range cells.groups {
		reduced[[2]string{gr.values[0], gr.values[1]}] = agg.Fn(valCol.take(gr.rows).present())
	}

	rowLabels := rowGroups.labels()
	out := &Frame{index: rowLabels, indexName: index, columnsName: columns}
	for _, cg := range colGroups.groups {
		colName := cg.values[0]
		data := make([]float64, len(rowLabels))
		for i, r := range rowLabels {
			v, ok := reduced[[2]string{r, colName}]
			if !ok {
				v = math.NaN()
			}
			data[i] = v
		}
		s := NewFloats(colName, data...)
		if agg.Int || (valCol.kind == Int && agg.Name != "mean" && agg.Name != "median" && agg.Name != "std" && allIntegral(data)) {
			s.kind = Int
		}
		out.cols = append(out.cols, s)
	}
	return out, nil
}

// PivotMulti is Pivot with several reductions; column names are
// "<agg>_<column value>".
func (f *Frame) PivotMulti(index, columns, values string, aggs ...AggFunc) (*Frame, error) {
	var parts []*Frame
	for _, agg := range aggs {
		p, err := f.Pivot(index, columns, values, agg)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	out := &Frame{index: parts[0].index, indexName: index, columnsName: columns}
	for k, p := range parts {
		for _, c := range p.cols {
			out.cols = append(out.cols, c.Rename(aggs[k].Name+"_"+c.name))
		}
	}
	return out, nil
}

func (f *Frame) axisNames() (string, string) {
	idx, cols := f.indexName, f.columnsName
	if idx == "" {
		idx = "index"
	}
	if cols == "" {
		cols = "column"
	}
	return idx, cols
}

// Stack turns a wide table into long form: one row per present cell with
// the row label, the column label and the value.
func (f *Frame) Stack() *Frame {
	idxName, colName := f.axisNames()
	labels := f.Index()
	var rowLabels, colLabels []string
	var values []float64
	allInt := true
	for i, label := range labels {
		for _, c := range f.cols {
			if c.IsNull(i) {
				continue
			}
			rowLabels = append(rowLabels, label)
			colLabels = append(colLabels, c.name)
			values = append(values, c.Float(i))
			allInt = allInt && c.kind == Int
		}
	}
	value := NewFloats("value", values...)
	if allInt {
		value.kind = Int
	}
	return MustNew(NewStrings(idxName, rowLabels...), NewStrings(colName, colLabels...), value)
}

// Unstack is the inverse of Stack: the long frame's index, columns and
// values columns become a wide table.
func (f *Frame) Unstack(index, columns, values string) (*Frame, error) {
	return f.Pivot(index, columns, values, First)
}

// Melt unpivots every column not in idVars into (varName, valueName) pairs.
// Rows are ordered by variable, then by original row.
func (f *Frame) Melt(idVars []string, varName, valueName string) (*Frame, error) {
	var valueCols []*Series
	for _, c := range f.cols {
		if !slices.Contains(idVars, c.name) {
			valueCols = append(valueCols, c)
		}
	}
	ids := make([]*Series, len(idVars))
	for k, name := range idVars {
		c, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		ids[k] = c
	}

	rows, _ := f.Shape()
	var idx []int
	var variables []string
	var values []any
	for _, c := range valueCols {
		for i := range rows {
			idx = append(idx, i)
			variables = append(variables, c.name)
			values = append(values, c.Value(i))
		}
	}

	var cols []*Series
	for _, id := range ids {
		s := id.take(idx)
		s.labels = nil
		cols = append(cols, s)
	}
	valueSeries, err := seriesFromValues(valueName, values)
	if err != nil {
		return nil, err
	}
	cols = append(cols, NewStrings(varName, variables...), valueSeries)
	return New(cols...)
}

// Crosstab counts the co-occurrences of two categorical series. With
// margins, an "All" row and column hold the totals.
func Crosstab(rows, cols *Series, margins bool) (*Frame, error) {
	if rows.Len() != cols.Len() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, rows.Len(), cols.Len())
	}
	tmp := MustNew(rows.Rename("row"), cols.Rename("col"), NewInts("n", make([]int, rows.Len())...))
	counts, err := tmp.Pivot("row", "col", "n", Count)
	if err != nil {
		return nil, err
	}
	counts = counts.FillNA(0)
	for _, c := range counts.cols {
		c.kind = Int
	}
	counts.indexName, counts.columnsName = rows.name, cols.name
	if !margins {
		return counts, nil
	}

	r, _ := counts.Shape()
	totals := make([]float64, r)
	colTotals := make([]float64, 0, len(counts.cols)+1)
	for _, c := range counts.cols {
		for i, v := range c.nums {
			totals[i] += v
		}
		colTotals = append(colTotals, c.Sum())
	}
	all := NewFloats("All", totals...)
	all.kind = Int
	counts.cols = append(counts.cols, all)

	colTotals = append(colTotals, float64(rows.Len()))
	for j, c := range counts.cols {
		c.nums = append(c.nums, colTotals[j])
	}
	counts.index = append(counts.index, "All")
	return counts, nil
}
