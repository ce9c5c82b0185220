package frame

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const maxDisplayPrecision = 6

// formatColumn renders every value of s as display text. Float columns share
// one precision: the smallest that shows every value exactly, capped at six
// decimals, and at least one.
func formatColumn(s *Series) []string {
	out := make([]string, s.Len())
	if s.kind != Float {
		for i := range out {
			out[i] = s.Str(i)
		}
		return out
	}

	prec := 1
	for _, v := range s.nums {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if dot := strings.IndexByte(text, '.'); dot >= 0 {
			prec = max(prec, min(len(text)-dot-1, maxDisplayPrecision))
		}
	}
	for i, v := range s.nums {
		if math.IsNaN(v) {
			out[i] = "NaN"
			continue
		}
		out[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}
	return out
}

func maxWidth(values []string) int {
	w := 0
	for _, v := range values {
		w = max(w, utf8.RuneCountInString(v))
	}
	return w
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(w-utf8.RuneCountInString(s), 0)) + s
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(w-utf8.RuneCountInString(s), 0))
}

// String renders f as an aligned text table: row labels on the left,
// right-aligned values, one header line with the column names.
func (f *Frame) String() string {
	rows, ncols := f.Shape()
	if ncols == 0 || rows == 0 {
		return fmt.Sprintf("Empty DataFrame\nColumns: [%s]\nIndex: []", strings.Join(f.Columns(), ", "))
	}

	labels := f.Index()
	labelWidth := max(maxWidth(labels), utf8.RuneCountInString(f.indexName))
	cells := make([][]string, ncols)
	widths := make([]int, ncols)
	for j, c := range f.cols {
		cells[j] = formatColumn(c)
		widths[j] = max(maxWidth(cells[j]), utf8.RuneCountInString(c.name))
	}

	var b strings.Builder
	b.WriteString(padRight(f.indexName, labelWidth))
	for j, c := range f.cols {
		b.WriteString("  ")
		b.WriteString(padLeft(c.name, widths[j]))
	}
	for i := range rows {
		b.WriteString("\n")
		b.WriteString(padRight(labels[i], labelWidth))
		for j := range f.cols {
			b.WriteString("  ")
			b.WriteString(padLeft(cells[j][i], widths[j]))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Info writes a structural summary: row count, and per column the
// non-null count and dtype.
func (f *Frame) Info(w io.Writer) error {
	rows, ncols := f.Shape()
	var b strings.Builder
	fmt.Fprintln(&b, "<class 'Frame'>")
	if rows > 0 {
		fmt.Fprintf(&b, "Index: %d entries, %s to %s\n", rows, f.Index()[0], f.Index()[rows-1])
	} else {
		fmt.Fprintln(&b, "Index: 0 entries")
	}
	fmt.Fprintf(&b, "Data columns (total %d columns):\n", ncols)

	names := f.Columns()
	nameWidth := max(maxWidth(names), len("Column"))
	fmt.Fprintf(&b, " #   %s  Non-Null Count  Dtype\n", padRight("Column", nameWidth))
	fmt.Fprintf(&b, "---  %s  --------------  -----\n", strings.Repeat("-", nameWidth))
	counts := map[string]int{}
	for j, c := range f.cols {
		nonNull := 0
		for i := range rows {
			if !c.IsNull(i) {
				nonNull++
			}
		}
		counts[c.kind.Dtype()]++
		fmt.Fprintf(&b, " %-3d %s  %-14s  %s\n", j, padRight(c.name, nameWidth), fmt.Sprintf("%d non-null", nonNull), c.kind.Dtype())
	}

	var parts []string
	for _, dt := range []string{"bool", "float64", "int64", "object"} {
		if n := counts[dt]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s(%d)", dt, n))
		}
	}
	fmt.Fprintf(&b, "dtypes: %s\n", strings.Join(parts, ", "))
	_, err := io.WriteString(w, b.String())
	return err
}
