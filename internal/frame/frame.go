package frame

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("column not found")
	// ErrLengthMismatch is returned when columns differ in length.
	ErrLengthMismatch = errors.New("columns must have equal length")
	// ErrDuplicateColumn is returned when a column name is used twice.
	ErrDuplicateColumn = errors.New("duplicate column name")
)

// Frame is an ordered collection of equally long, uniquely named columns
// with optional row labels.
type Frame struct {
	cols      []*Series
	index     []string
	indexName string
	// columnsName names the axis of the column labels, set by reshaping.
	columnsName string
}

// New builds a frame from columns.
func New(cols ...*Series) (*Frame, error) {
	f := &Frame{}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c.name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.name)
		}
		seen[c.name] = true
		if len(f.cols) > 0 && c.Len() != f.cols[0].Len() {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrLengthMismatch, c.name, c.Len(), f.cols[0].Len())
		}
		c = c.clone()
		c.labels = nil
		f.cols = append(f.cols, c)
	}
	return f, nil
}

// MustNew is New for literal data known to be consistent.
func MustNew(cols ...*Series) *Frame {
	f, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// FromRows builds a frame from row-major literal values. The kind of each
// column is inferred from its values: int, float64, bool or string. nil is
// a missing value.
func FromRows(columns []string, rows [][]any) (*Frame, error) {
	cols := make([]*Series, len(columns))
	for j, name := range columns {
		values := make([]any, len(rows))
		for i, row := range rows {
			if len(row) != len(columns) {
				return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrLengthMismatch, i, len(row), len(columns))
			}
			values[i] = row[j]
		}
		s, err := seriesFromValues(name, values)
		if err != nil {
			return nil, err
		}
		cols[j] = s
	}
	return New(cols...)
}

// FromRecords builds a frame from records keyed by column name.
func FromRecords(columns []string, records []map[string]any) (*Frame, error) {
	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = make([]any, len(columns))
		for j, c := range columns {
			rows[i][j] = rec[c]
		}
	}
	return FromRows(columns, rows)
}

func seriesFromValues(name string, values []any) (*Series, error) {
	kind := Int
	for _, v := range values {
		switch v.(type) {
		case nil:
		case int, int64:
		case float64:
			if kind == Int {
				kind = Float
			}
		case bool:
			if kind != String {
				kind = Bool
			}
		case string:
			kind = String
		default:
			return nil, fmt.Errorf("column %q: unsupported value type %T", name, v)
		}
	}

	if kind == String {
		s := newNulls(name, String, len(values))
		for i, v := range values {
			if v == nil {
				continue
			}
			s.strs[i], s.valid[i] = fmt.Sprint(v), true
		}
		return s, nil
	}

	s := newNulls(name, Float, len(values))
	hasNull := false
	for i, v := range values {
		switch x := v.(type) {
		case nil:
			hasNull = true
		case int:
			s.nums[i] = float64(x)
		case int64:
			s.nums[i] = float64(x)
		case float64:
			s.nums[i] = x
		case bool:
			if x {
				s.nums[i] = 1
			} else {
				s.nums[i] = 0
			}
		}
	}
	s.kind = kind
	if hasNull && kind != Float {
		s.kind = Float
	}
	return s, nil
}

// FromMatrix wraps a gonum matrix with column names and optional row labels.
func FromMatrix(m mat.Matrix, columns []string, index []string) (*Frame, error) {
	r, c := m.Dims()
	if len(columns) != c {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrLengthMismatch, len(columns), c)
	}
	if index != nil && len(index) != r {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLengthMismatch, len(index), r)
	}
	cols := make([]*Series, c)
	for j := range c {
		values := make([]float64, r)
		for i := range r {
			values[i] = m.At(i, j)
		}
		cols[j] = NewFloats(columns[j], values...)
	}
	f, err := New(cols...)
	if err != nil {
		return nil, err
	}
	f.index = slices.Clone(index)
	return f, nil
}

// Matrix copies the named numeric columns into a rows×len(columns) matrix.
func (f *Frame) Matrix(columns ...string) (*mat.Dense, error) {
	rows, _ := f.Shape()
	if rows == 0 || len(columns) == 0 {
		return nil, errors.New("empty selection")
	}
	m := mat.NewDense(rows, len(columns), nil)
	for j, name := range columns {
		c, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		m.SetCol(j, c.Floats())
	}
	return m, nil
}

// Shape returns (rows, columns).
func (f *Frame) Shape() (int, int) {
	if len(f.cols) == 0 {
		return len(f.index), 0
	}
	return f.cols[0].Len(), len(f.cols)
}

// Size is rows × columns.
func (f *Frame) Size() int {
	r, c := f.Shape()
	return r * c
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}
	return names
}

// Dtypes returns the dtype name of every column.
func (f *Frame) Dtypes() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.kind.Dtype()
	}
	return out
}

// Index returns the row labels; positions when none were set.
func (f *Frame) Index() []string {
	if f.index != nil {
		return slices.Clone(f.index)
	}
	rows, _ := f.Shape()
	return positions(rows)
}

// WithIndex returns a copy of f labelled by index under name.
func (f *Frame) WithIndex(name string, index []string) *Frame {
	out := f.copyCols()
	out.index = slices.Clone(index)
	out.indexName = name
	return out
}

// ResetIndex turns row labels back into positions.
func (f *Frame) ResetIndex() *Frame {
	out := f.copyCols()
	out.index, out.indexName = nil, ""
	return out
}

func (f *Frame) copyCols() *Frame {
	out := &Frame{index: slices.Clone(f.index), indexName: f.indexName, columnsName: f.columnsName}
	for _, c := range f.cols {
		out.cols = append(out.cols, c.clone())
	}
	return out
}

// Col returns the named column.
func (f *Frame) Col(name string) (*Series, error) {
	for _, c := range f.cols {
		if c.name == name {
			s := c.clone()
			s.labels = f.index
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// MustCol is Col for names known to exist.
func (f *Frame) MustCol(name string) *Series {
	s, err := f.Col(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Select keeps the named columns in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := &Frame{index: slices.Clone(f.index), indexName: f.indexName}
	for _, name := range names {
		c, err := f.Col(name)
		if err != nil {
			return nil, err
		}
		c.labels = nil
		out.cols = append(out.cols, c)
	}
	return out, nil
}

// Drop removes the named columns; unknown names are ignored.
func (f *Frame) Drop(names ...string) *Frame {
	out := &Frame{index: slices.Clone(f.index), indexName: f.indexName}
	for _, c := range f.cols {
		if !slices.Contains(names, c.name) {
			out.cols = append(out.cols, c.clone())
		}
	}
	return out
}

// WithColumn adds s, or replaces the column of the same name in place.
func (f *Frame) WithColumn(s *Series) (*Frame, error) {
	rows, ncols := f.Shape()
	if ncols > 0 && s.Len() != rows {
		return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrLengthMismatch, s.name, s.Len(), rows)
	}
	out := f.copyCols()
	c := s.clone()
	c.labels = nil
	for i, existing := range out.cols {
		if existing.name == s.name {
			out.cols[i] = c
			return out, nil
		}
	}
	out.cols = append(out.cols, c)
	return out, nil
}

// MustWithColumn is WithColumn for series derived from f itself.
func (f *Frame) MustWithColumn(s *Series) *Frame {
	out, err := f.WithColumn(s)
	if err != nil {
		panic(err)
	}
	return out
}

// Take returns the rows at idx in that order.
func (f *Frame) Take(idx []int) *Frame {
	out := &Frame{indexName: f.indexName}
	for _, c := range f.cols {
		out.cols = append(out.cols, c.take(idx))
	}
	labels := f.Index()
	out.index = make([]string, len(idx))
	for k, i := range idx {
		out.index[k] = labels[i]
	}
	return out
}

// Filter keeps the rows whose mask entry is true.
func (f *Frame) Filter(mask []bool) *Frame {
	var idx []int
	for i, keep := range mask {
		if keep {
			idx = append(idx, i)
		}
	}
	return f.Take(idx)
}

// ILoc returns rows [start, end) by position.
func (f *Frame) ILoc(start, end int) *Frame {
	rows, _ := f.Shape()
	start, end = clampRange(start, end, rows)
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return f.Take(idx)
}

// Head returns the first n rows.
func (f *Frame) Head(n int) *Frame { return f.ILoc(0, n) }

// Tail returns the last n rows.
func (f *Frame) Tail(n int) *Frame {
	rows, _ := f.Shape()
	return f.ILoc(rows-n, rows)
}

// At returns the cell at (row, col) by position.
func (f *Frame) At(row, col int) (any, error) {
	rows, ncols := f.Shape()
	if row < 0 || row >= rows || col < 0 || col >= ncols {
		return nil, fmt.Errorf("position (%d, %d) out of range for shape (%d, %d)", row, col, rows, ncols)
	}
	return f.cols[col].Value(row), nil
}

// Records returns one map per row keyed by column name.
func (f *Frame) Records() []map[string]any {
	rows, _ := f.Shape()
	out := make([]map[string]any, rows)
	for i := range rows {
		rec := make(map[string]any, len(f.cols))
		for _, c := range f.cols {
			rec[c.name] = c.Value(i)
		}
		out[i] = rec
	}
	return out
}

func clampRange(start, end, n int) (int, int) {
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return start, end
}

func positions(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
