package frame

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/agbru/curriculum/internal/statistics"
)

// SortKey orders rows by one column.
type SortKey struct {
	Column     string
	Descending bool
}

// Asc and Desc build sort keys.
func Asc(col string) SortKey  { return SortKey{Column: col} }
func Desc(col string) SortKey { return SortKey{Column: col, Descending: true} }

// Sort orders rows by keys, stably. Missing values sort last.
func (f *Frame) Sort(keys ...SortKey) (*Frame, error) {
	cols := make([]*Series, len(keys))
	for k, key := range keys {
		c, err := f.Col(key.Column)
		if err != nil {
			return nil, err
		}
		cols[k] = c
	}
	rows, _ := f.Shape()
	idx := positionsInt(rows)
	slices.SortStableFunc(idx, func(a, b int) int {
		for k, c := range cols {
			if r := compareCells(c, a, b); r != 0 {
				if c.IsNull(a) || c.IsNull(b) {
					return r
				}
				if keys[k].Descending {
					return -r
				}
				return r
			}
		}
		return 0
	})
	return f.Take(idx), nil
}

func compareCells(c *Series, a, b int) int {
	na, nb := c.IsNull(a), c.IsNull(b)
	switch {
	case na && nb:
		return 0
	case na:
		return 1
	case nb:
		return -1
	}
	if c.kind == String {
		return strings.Compare(c.strs[a], c.strs[b])
	}
	return cmp.Compare(c.nums[a], c.nums[b])
}

func positionsInt(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Rank assigns 1-based ranks to the values, averaging ties. Missing values
// keep a missing rank.
func (s *Series) Rank() *Series {
	var present []float64
	var where []int
	for i := range s.Len() {
		if !s.IsNull(i) {
			present = append(present, s.Float(i))
			where = append(where, i)
		}
	}
	out := newNulls(s.name, Float, s.Len())
	for k, r := range statistics.Rank(present) {
		out.nums[where[k]] = r
	}
	out.labels = slices.Clone(s.labels)
	return out
}

// IsNull returns a boolean frame marking missing cells.
func (f *Frame) IsNull() *Frame {
	rows, _ := f.Shape()
	out := &Frame{index: f.index, indexName: f.indexName}
	for _, c := range f.cols {
		mask := make([]bool, rows)
		for i := range mask {
			mask[i] = c.IsNull(i)
		}
		out.cols = append(out.cols, NewBools(c.name, mask...))
	}
	return out
}

// NullCounts returns the number of missing values per column.
func (f *Frame) NullCounts() *Series {
	counts := make([]int, len(f.cols))
	for j, c := range f.cols {
		for i := range c.Len() {
			if c.IsNull(i) {
				counts[j]++
			}
		}
	}
	return NewInts("", counts...).WithLabels(f.Columns())
}

// DropNA removes every row with at least one missing value.
func (f *Frame) DropNA() *Frame {
	rows, _ := f.Shape()
	mask := make([]bool, rows)
	for i := range mask {
		mask[i] = true
		for _, c := range f.cols {
			if c.IsNull(i) {
				mask[i] = false
				break
			}
		}
	}
	return f.Filter(mask)
}

// FillNA replaces missing numeric values with v.
func (f *Frame) FillNA(v float64) *Frame {
	out := f.copyCols()
	for _, c := range out.cols {
		if c.kind == String {
			continue
		}
		for i, x := range c.nums {
			if math.IsNaN(x) {
				c.nums[i] = v
			}
		}
	}
	return out
}

// FFill propagates the last present value forward.
func (f *Frame) FFill() *Frame {
	out := f.copyCols()
	for _, c := range out.cols {
		for i := 1; i < c.Len(); i++ {
			if !c.IsNull(i) || c.IsNull(i-1) {
				continue
			}
			if c.kind == String {
				c.strs[i], c.valid[i] = c.strs[i-1], true
			} else {
				c.nums[i] = c.nums[i-1]
			}
		}
	}
	return out
}

func (f *Frame) rowKey(i int, cols []*Series) string {
	parts := make([]string, len(cols))
	for j, c := range cols {
		parts[j] = c.key(i)
	}
	return strings.Join(parts, "\x1f")
}

// Duplicated marks every row equal to an earlier row.
func (f *Frame) Duplicated() []bool {
	rows, _ := f.Shape()
	seen := make(map[string]bool, rows)
	out := make([]bool, rows)
	for i := range rows {
		key := f.rowKey(i, f.cols)
		out[i] = seen[key]
		seen[key] = true
	}
	return out
}

// DropDuplicates keeps the first occurrence of every distinct row.
func (f *Frame) DropDuplicates() *Frame {
	dup := f.Duplicated()
	keep := make([]bool, len(dup))
	for i, d := range dup {
		keep[i] = !d
	}
	return f.Filter(keep)
}

// Concat stacks frames vertically with a fresh positional index. Columns
// are the union in first-seen order; absent columns are missing.
func Concat(frames ...*Frame) *Frame {
	var names []string
	kinds := map[string]Kind{}
	for _, fr := range frames {
		for _, c := range fr.cols {
			if _, ok := kinds[c.name]; !ok {
				names = append(names, c.name)
				kinds[c.name] = c.kind
			} else if kinds[c.name] != c.kind {
				kinds[c.name] = unifyKinds(kinds[c.name], c.kind)
			}
		}
	}

	out := &Frame{}
	for _, name := range names {
		var parts []*Series
		for _, fr := range frames {
			rows, _ := fr.Shape()
			c, err := fr.Col(name)
			if err != nil {
				c = newNulls(name, kinds[name], rows)
			}
			parts = append(parts, c)
		}
		out.cols = append(out.cols, concatSeries(name, kinds[name], parts))
	}
	return out
}

func unifyKinds(a, b Kind) Kind {
	if a == String || b == String {
		return String
	}
	return Float
}

func concatSeries(name string, kind Kind, parts []*Series) *Series {
	var all []any
	for _, p := range parts {
		for i := range p.Len() {
			all = append(all, p.Value(i))
		}
	}
	s, _ := seriesFromValues(name, all)
	if kind == String && s.kind != String {
		s = NewStrings(name, s.Strings()...)
	}
	if kind == Float && s.kind == Int {
		s.kind = Float
	}
	return s
}

// Join selects which keys survive a Merge.
type Join string

const (
	Inner Join = "inner"
	Left  Join = "left"
	Right Join = "right"
	Outer Join = "outer"
)

// Merge joins left and right on the column on. Non-key columns present on
// both sides get "_x" and "_y" suffixes.
func Merge(left, right *Frame, on string, how Join) (*Frame, error) {
	lk, err := left.Col(on)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	rk, err := right.Col(on)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}

	rightRows := map[string][]int{}
	for i := range rk.Len() {
		rightRows[rk.key(i)] = append(rightRows[rk.key(i)], i)
	}

	var li, ri []int
	matchedRight := make([]bool, rk.Len())
	for i := range lk.Len() {
		matches := rightRows[lk.key(i)]
		if len(matches) == 0 {
			if how == Left || how == Outer {
				li, ri = append(li, i), append(ri, -1)
			}
			continue
		}
		for _, j := range matches {
			li, ri = append(li, i), append(ri, j)
			matchedRight[j] = true
		}
	}
	if how == Right || how == Outer {
		for j, matched := range matchedRight {
			if !matched {
				li, ri = append(li, -1), append(ri, j)
			}
		}
	}
	if how == Right {
		// right joins follow the right frame's row order
		order := positionsInt(len(ri))
		slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(ri[a], ri[b]) })
		li, ri = permute(li, order), permute(ri, order)
	}

	leftNames, rightNames := left.Columns(), right.Columns()
	out := &Frame{}

	key := lk.take(li)
	fromRight := rk.take(ri)
	for k, i := range li {
		if i < 0 {
			copyCell(key, k, fromRight, k)
		}
	}
	if lk.kind != Float && key.kind == Float && allIntegral(key.nums) {
		key.kind = lk.kind
	}
	key.labels = nil
	out.cols = append(out.cols, key)

	for _, c := range left.cols {
		if c.name == on {
			continue
		}
		s := c.take(li)
		if slices.Contains(rightNames, c.name) {
			s.name += "_x"
		}
		out.cols = append(out.cols, s)
	}
	for _, c := range right.cols {
		if c.name == on {
			continue
		}
		s := c.take(ri)
		if slices.Contains(leftNames, c.name) {
			s.name += "_y"
		}
		out.cols = append(out.cols, s)
	}
	return out, nil
}

func permute(xs []int, order []int) []int {
	out := make([]int, len(order))
	for k, i := range order {
		out[k] = xs[i]
	}
	return out
}

func copyCell(dst *Series, i int, src *Series, j int) {
	if dst.kind == String {
		dst.strs[i] = src.Str(j)
		if dst.valid != nil {
			dst.valid[i] = !src.IsNull(j)
		}
		return
	}
	dst.nums[i] = src.Float(j)
}

// Describe summarizes every numeric column: count, mean, std, min,
// quartiles and max.
func (f *Frame) Describe() *Frame {
	stats := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	out := &Frame{index: stats}
	for _, c := range f.cols {
		if !c.kind.IsNumeric() {
			continue
		}
		s := statistics.Describe(c.Floats())
		out.cols = append(out.cols, NewFloats(c.name,
			float64(s.Count), s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max))
	}
	return out
}
