package frame

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind is the element type of a Series.
type Kind uint8

const (
	Float Kind = iota
	Int
	Bool
	String
)

// Dtype returns the conventional dtype name of k.
func (k Kind) Dtype() string {
	switch k {
	case Int:
		return "int64"
	case Bool:
		return "bool"
	case String:
		return "object"
	default:
		return "float64"
	}
}

// IsNumeric reports whether k stores numbers.
func (k Kind) IsNumeric() bool { return k == Float || k == Int }

// Series is a named column. Labels, when set, name the rows for display.
type Series struct {
	name   string
	kind   Kind
	nums   []float64
	strs   []string
	valid  []bool // string kind only; nil means every value is present
	labels []string
}

// NewFloats returns a float64 series.
func NewFloats(name string, values ...float64) *Series {
	return &Series{name: name, kind: Float, nums: slices.Clone(values)}
}

// NewInts returns an int64 series.
func NewInts(name string, values ...int) *Series {
	nums := make([]float64, len(values))
	for i, v := range values {
		nums[i] = float64(v)
	}
	return &Series{name: name, kind: Int, nums: nums}
}

// NewBools returns a boolean series.
func NewBools(name string, values ...bool) *Series {
	nums := make([]float64, len(values))
	for i, v := range values {
		if v {
			nums[i] = 1
		}
	}
	return &Series{name: name, kind: Bool, nums: nums}
}

// NewStrings returns a string series with every value present.
func NewStrings(name string, values ...string) *Series {
	return &Series{name: name, kind: String, strs: slices.Clone(values)}
}

func newNulls(name string, kind Kind, n int) *Series {
	s := &Series{name: name, kind: kind}
	if kind == String {
		s.strs = make([]string, n)
		s.valid = make([]bool, n)
		return s
	}
	if kind == Int || kind == Bool {
		s.kind = Float
	}
	s.nums = make([]float64, n)
	for i := range s.nums {
		s.nums[i] = math.NaN()
	}
	return s
}

func (s *Series) Name() string { return s.name }
func (s *Series) Kind() Kind   { return s.kind }

// Len returns the number of values.
func (s *Series) Len() int {
	if s.kind == String {
		return len(s.strs)
	}
	return len(s.nums)
}

// Rename returns a copy of s called name.
func (s *Series) Rename(name string) *Series {
	c := s.clone()
	c.name = name
	return c
}

// WithLabels returns a copy of s whose rows print with labels.
func (s *Series) WithLabels(labels []string) *Series {
	c := s.clone()
	c.labels = slices.Clone(labels)
	return c
}

// Labels returns the row labels, or nil.
func (s *Series) Labels() []string { return slices.Clone(s.labels) }

func (s *Series) clone() *Series {
	return &Series{
		name:   s.name,
		kind:   s.kind,
		nums:   slices.Clone(s.nums),
		strs:   slices.Clone(s.strs),
		valid:  slices.Clone(s.valid),
		labels: slices.Clone(s.labels),
	}
}

// IsNull reports whether row i is missing.
func (s *Series) IsNull(i int) bool {
	if s.kind == String {
		return s.valid != nil && !s.valid[i]
	}
	return math.IsNaN(s.nums[i])
}

// Float returns row i as a number. String rows parse as float or yield NaN.
func (s *Series) Float(i int) float64 {
	if s.kind == String {
		if s.IsNull(i) {
			return math.NaN()
		}
		v, err := strconv.ParseFloat(s.strs[i], 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
	return s.nums[i]
}

// Str returns row i as display text.
func (s *Series) Str(i int) string {
	if s.IsNull(i) {
		return "NaN"
	}
	switch s.kind {
	case String:
		return s.strs[i]
	case Bool:
		if s.nums[i] != 0 {
			return "True"
		}
		return "False"
	case Int:
		return strconv.FormatInt(int64(s.nums[i]), 10)
	default:
		return strconv.FormatFloat(s.nums[i], 'f', -1, 64)
	}
}

// missingKey stands for a missing cell in row keys. No formatted value
// contains a NUL byte, so it never collides with a present value.
const missingKey = "\x00"

// key returns row i as a hashable key that keeps missing distinct from any
// present value, including the string "NaN".
func (s *Series) key(i int) string {
	if s.IsNull(i) {
		return missingKey
	}
	return s.Str(i)
}

// Value returns row i as a Go value: float64, int, bool, string or nil.
func (s *Series) Value(i int) any {
	if s.IsNull(i) {
		return nil
	}
	switch s.kind {
	case String:
		return s.strs[i]
	case Bool:
		return s.nums[i] != 0
	case Int:
		return int(s.nums[i])
	default:
		return s.nums[i]
	}
}

// Floats returns a copy of the numeric values.
func (s *Series) Floats() []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.Float(i)
	}
	return out
}

// Strings returns a copy of the values as display text.
func (s *Series) Strings() []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.Str(i)
	}
	return out
}

// Bools returns the values as a mask; non-zero numbers are true.
func (s *Series) Bools() []bool {
	out := make([]bool, s.Len())
	for i := range out {
		out[i] = !s.IsNull(i) && s.kind != String && s.nums[i] != 0
	}
	return out
}

// take returns the rows at idx; a negative index yields a missing value.
func (s *Series) take(idx []int) *Series {
	out := &Series{name: s.name, kind: s.kind}
	hasMissing := slices.ContainsFunc(idx, func(i int) bool { return i < 0 })
	if s.kind == String {
		out.strs = make([]string, len(idx))
		if s.valid != nil || hasMissing {
			out.valid = make([]bool, len(idx))
		}
		for k, i := range idx {
			if i < 0 {
				continue
			}
			out.strs[k] = s.strs[i]
			if out.valid != nil {
				out.valid[k] = !s.IsNull(i)
			}
		}
	} else {
		out.nums = make([]float64, len(idx))
		for k, i := range idx {
			if i < 0 {
				out.nums[k] = math.NaN()
				continue
			}
			out.nums[k] = s.nums[i]
		}
		if hasMissing && s.kind != Float {
			out.kind = Float
		}
	}
	if s.labels != nil {
		out.labels = make([]string, len(idx))
		for k, i := range idx {
			if i >= 0 {
				out.labels[k] = s.labels[i]
			}
		}
	}
	return out
}

// Apply maps fn over the numeric values into a float64 series.
func (s *Series) Apply(fn func(float64) float64) *Series {
	out := NewFloats(s.name, s.Floats()...)
	for i, v := range out.nums {
		if !math.IsNaN(v) {
			out.nums[i] = fn(v)
		}
	}
	out.labels = slices.Clone(s.labels)
	return out
}

// Label maps every numeric value to a string, e.g. "High" / "Low".
func (s *Series) Label(fn func(float64) string) *Series {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = fn(s.Float(i))
	}
	return NewStrings(s.name, out...)
}

// MapValues looks every value up in m by its display text. Values missing
// from m become missing.
func (s *Series) MapValues(m map[string]string) *Series {
	out := &Series{name: s.name, kind: String, strs: make([]string, s.Len()), valid: make([]bool, s.Len())}
	for i := range out.strs {
		if v, ok := m[s.Str(i)]; ok && !s.IsNull(i) {
			out.strs[i], out.valid[i] = v, true
		}
	}
	return out
}

// MapString maps fn over string values; missing values stay missing.
func (s *Series) MapString(fn func(string) string) *Series {
	out := s.clone()
	if out.kind != String {
		out = NewStrings(s.name, s.Strings()...)
	}
	for i := range out.strs {
		if !out.IsNull(i) {
			out.strs[i] = fn(out.strs[i])
		}
	}
	return out
}

// Compare evaluates pred on every numeric value; missing values are false.
func (s *Series) Compare(pred func(float64) bool) []bool {
	out := make([]bool, s.Len())
	for i := range out {
		out[i] = !s.IsNull(i) && pred(s.Float(i))
	}
	return out
}

// Gt is Compare with v < x.
func (s *Series) Gt(v float64) []bool { return s.Compare(func(x float64) bool { return x > v }) }

// Eq compares display text.
func (s *Series) Eq(v string) []bool { return s.MatchString(func(x string) bool { return x == v }) }

// IsIn reports membership of each display value in values.
func (s *Series) IsIn(values ...string) []bool {
	return s.MatchString(func(x string) bool { return slices.Contains(values, x) })
}

// StartsWith matches string prefixes.
func (s *Series) StartsWith(prefix string) []bool {
	return s.MatchString(func(x string) bool { return strings.HasPrefix(x, prefix) })
}

// MatchString evaluates pred on every present value's display text.
func (s *Series) MatchString(pred func(string) bool) []bool {
	out := make([]bool, s.Len())
	for i := range out {
		out[i] = !s.IsNull(i) && pred(s.Str(i))
	}
	return out
}

// And combines masks element-wise.
func And(masks ...[]bool) []bool {
	if len(masks) == 0 {
		return nil
	}
	out := slices.Clone(masks[0])
	for _, m := range masks[1:] {
		for i := range out {
			out[i] = out[i] && m[i]
		}
	}
	return out
}

// Or combines masks element-wise.
func Or(masks ...[]bool) []bool {
	if len(masks) == 0 {
		return nil
	}
	out := slices.Clone(masks[0])
	for _, m := range masks[1:] {
		for i := range out {
			out[i] = out[i] || m[i]
		}
	}
	return out
}

// Scale multiplies every value by f, keeping integer kind when the result
// stays integral.
func (s *Series) Scale(f float64) *Series {
	out := s.Apply(func(v float64) float64 { return v * f })
	if s.kind == Int && allIntegral(out.nums) {
		out.kind = Int
	}
	return out
}

// Sum adds the present values.
func (s *Series) Sum() float64 {
	var sum float64
	for i := range s.Len() {
		if !s.IsNull(i) {
			sum += s.Float(i)
		}
	}
	return sum
}

// Mean averages the present values.
func (s *Series) Mean() float64 { return aggMean(s.present()) }

func (s *Series) present() []float64 {
	out := make([]float64, 0, s.Len())
	for i := range s.Len() {
		if !s.IsNull(i) {
			out = append(out, s.Float(i))
		}
	}
	return out
}

func allIntegral(xs []float64) bool {
	for _, v := range xs {
		if math.IsNaN(v) || v != math.Trunc(v) {
			return false
		}
	}
	return true
}

// String renders the series with its row labels (or positions).
func (s *Series) String() string {
	labels := s.labels
	if labels == nil {
		labels = positions(s.Len())
	}
	values := formatColumn(s)
	lw, vw := maxWidth(labels), maxWidth(values)
	var b strings.Builder
	for i := range values {
		fmt.Fprintf(&b, "%-*s  %*s\n", lw, labels[i], vw, values[i])
	}
	fmt.Fprintf(&b, "Name: %s, dtype: %s", s.name, s.kind.Dtype())
	return b.String()
}
