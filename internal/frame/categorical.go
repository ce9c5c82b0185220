package frame

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cut assigns each value to a right-closed bin (edges[k], edges[k+1]] and
// returns the bin labels. Values outside every bin are missing.
func (s *Series) Cut(edges []float64, labels []string) (*Series, error) {
	if len(edges) < 2 || len(labels) != len(edges)-1 {
		return nil, fmt.Errorf("cut: %d labels for %d edges", len(labels), len(edges))
	}
	if !slices.IsSorted(edges) {
		return nil, fmt.Errorf("cut: edges must increase")
	}
	out := newNulls(s.name, String, s.Len())
	for i := range s.Len() {
		v := s.Float(i)
		if math.IsNaN(v) {
			continue
		}
		for k := 0; k+1 < len(edges); k++ {
			if v > edges[k] && v <= edges[k+1] {
				out.strs[i], out.valid[i] = labels[k], true
				break
			}
		}
	}
	out.labels = slices.Clone(s.labels)
	return out, nil
}

// Categorical is a string series restricted to a fixed set of categories.
type Categorical struct {
	Values     []string
	Categories []string
	Ordered    bool
}

// NewCategorical validates values against categories.
func NewCategorical(values, categories []string, ordered bool) (*Categorical, error) {
	for _, v := range values {
		if !slices.Contains(categories, v) {
			return nil, fmt.Errorf("value %q is not a category (%s)", v, strings.Join(categories, ", "))
		}
	}
	return &Categorical{Values: slices.Clone(values), Categories: slices.Clone(categories), Ordered: ordered}, nil
}

// Codes returns the category position of every value.
func (c *Categorical) Codes() []int {
	out := make([]int, len(c.Values))
	for i, v := range c.Values {
		out[i] = slices.Index(c.Categories, v)
	}
	return out
}

// Less compares two categories by their declared order.
func (c *Categorical) Less(a, b string) bool {
	return slices.Index(c.Categories, a) < slices.Index(c.Categories, b)
}

// Counts returns how often every category occurs, in category order,
// including unused categories.
func (c *Categorical) Counts() *Series {
	counts := make([]int, len(c.Categories))
	for _, code := range c.Codes() {
		counts[code]++
	}
	return NewInts("count", counts...).WithLabels(c.Categories)
}

// Series returns the values as a string series.
func (c *Categorical) Series(name string) *Series {
	return NewStrings(name, c.Values...)
}

// ValueCounts counts the present values, most frequent first; ties keep
// ascending value order.
func (s *Series) ValueCounts() *Series {
	counts := map[string]int{}
	var keys []string
	for i := range s.Len() {
		if s.IsNull(i) {
			continue
		}
		k := s.Str(i)
		if counts[k] == 0 {
			keys = append(keys, k)
		}
		counts[k]++
	}
	slices.Sort(keys)
	slices.SortStableFunc(keys, func(a, b string) int { return cmp.Compare(counts[b], counts[a]) })

	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = counts[k]
	}
	return NewInts("count", values...).WithLabels(keys)
}

// SortIndex orders a labelled series by its labels, or by the given label
// order when one is provided.
func (s *Series) SortIndex(order ...string) *Series {
	if s.labels == nil {
		return s.clone()
	}
	idx := positionsInt(s.Len())
	rank := func(label string) int {
		if i := slices.Index(order, label); i >= 0 {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		if r := cmp.Compare(rank(s.labels[a]), rank(s.labels[b])); r != 0 {
			return r
		}
		return strings.Compare(s.labels[a], s.labels[b])
	})
	return s.take(idx)
}

// SortValues orders a series by value.
func (s *Series) SortValues(descending bool) *Series {
	idx := positionsInt(s.Len())
	slices.SortStableFunc(idx, func(a, b int) int {
		r := compareCells(s, a, b)
		if descending && !s.IsNull(a) && !s.IsNull(b) {
			return -r
		}
		return r
	})
	return s.take(idx)
}

// Upper upper-cases string values.
func (s *Series) Upper() *Series { return s.MapString(strings.ToUpper) }

// Lower lower-cases string values.
func (s *Series) Lower() *Series { return s.MapString(strings.ToLower) }

// Title capitalizes every word and lower-cases the rest.
func (s *Series) Title() *Series {
	return s.MapString(func(v string) string { return cases.Title(language.English).String(v) })
}

// SplitPart splits every value on sep (whitespace when empty) and keeps
// part k. Values with fewer parts become missing.
func (s *Series) SplitPart(sep string, k int) *Series {
	out := newNulls(s.name, String, s.Len())
	for i := range s.Len() {
		if s.IsNull(i) {
			continue
		}
		var parts []string
		if sep == "" {
			parts = strings.Fields(s.Str(i))
		} else {
			parts = strings.Split(s.Str(i), sep)
		}
		if k < len(parts) {
			out.strs[i], out.valid[i] = parts[k], true
		}
	}
	return out
}
