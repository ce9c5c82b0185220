package frame

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func employees(t *testing.T) *Frame {
	t.Helper()
	f, err := FromRows(
		[]string{"Name", "Age", "Salary", "Department"},
		[][]any{
			{"Alice", 28, 75000, "Engineering"},
			{"Bob", 35, 85000, "Sales"},
			{"Charlie", 42, 95000, "Engineering"},
			{"Diana", 31, 82000, "Marketing"},
		})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return f
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	if _, err := New(NewInts("a", 1, 2), NewInts("b", 1)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("want ErrLengthMismatch, got %v", err)
	}
	if _, err := New(NewInts("a", 1), NewInts("a", 2)); !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("want ErrDuplicateColumn, got %v", err)
	}
	if _, err := FromRows([]string{"a", "b"}, [][]any{{1}}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("ragged rows: want ErrLengthMismatch, got %v", err)
	}
	if _, err := employees(t).Col("Bonus"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("want ErrColumnNotFound, got %v", err)
	}
}

func TestInspection(t *testing.T) {
	t.Parallel()
	f := employees(t)

	if r, c := f.Shape(); r != 4 || c != 4 {
		t.Errorf("Shape = (%d, %d), want (4, 4)", r, c)
	}
	if f.Size() != 16 {
		t.Errorf("Size = %d, want 16", f.Size())
	}
	if got := f.Dtypes(); !slices.Equal(got, []string{"object", "int64", "int64", "object"}) {
		t.Errorf("Dtypes = %v", got)
	}
	if got := f.Head(2).MustCol("Name").Strings(); !slices.Equal(got, []string{"Alice", "Bob"}) {
		t.Errorf("Head(2) = %v", got)
	}
	if got := f.Tail(2).Index(); !slices.Equal(got, []string{"2", "3"}) {
		t.Errorf("Tail(2) index = %v", got)
	}
	if v, err := f.At(1, 2); err != nil || v != 85000 {
		t.Errorf("At(1, 2) = %v, %v", v, err)
	}
	if _, err := f.At(9, 0); err == nil {
		t.Error("At out of range should fail")
	}

	out := f.String()
	for _, want := range []string{"Name", "Charlie", "95000", "Marketing"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}

	var info bytes.Buffer
	if err := f.Info(&info); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(info.String(), "4 non-null") || !strings.Contains(info.String(), "int64(2), object(2)") {
		t.Errorf("unexpected Info output:\n%s", info.String())
	}

	d := f.Describe()
	if got := d.Columns(); !slices.Equal(got, []string{"Age", "Salary"}) {
		t.Errorf("Describe columns = %v", got)
	}
	if got := d.MustCol("Age").Float(0); got != 4 {
		t.Errorf("Describe count = %v, want 4", got)
	}
}

func TestSelectionAndFiltering(t *testing.T) {
	t.Parallel()
	f := employees(t)
	salary := f.MustCol("Salary")

	high := f.Filter(salary.Gt(80000))
	if got := high.MustCol("Name").Strings(); !slices.Equal(got, []string{"Bob", "Charlie", "Diana"}) {
		t.Errorf("salary > 80000 = %v", got)
	}
	if got := high.Index(); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("filter should keep original labels, got %v", got)
	}

	eng := f.Filter(And(f.MustCol("Department").Eq("Engineering"), salary.Gt(80000)))
	if got := eng.MustCol("Name").Strings(); !slices.Equal(got, []string{"Charlie"}) {
		t.Errorf("engineers > 80000 = %v", got)
	}
	if r, _ := f.Filter(f.MustCol("Department").IsIn("Engineering", "Sales")).Shape(); r != 3 {
		t.Errorf("IsIn kept %d rows, want 3", r)
	}
	if got := f.Filter(f.MustCol("Name").StartsWith("C")).MustCol("Name").Strings(); !slices.Equal(got, []string{"Charlie"}) {
		t.Errorf("StartsWith = %v", got)
	}

	sub, err := f.Select("Name", "Age")
	if err != nil || !slices.Equal(sub.Columns(), []string{"Name", "Age"}) {
		t.Errorf("Select = %v, %v", sub, err)
	}
}

func TestDerivedColumns(t *testing.T) {
	t.Parallel()
	f := employees(t)
	salary := f.MustCol("Salary")

	f = f.MustWithColumn(salary.Scale(0.1).Rename("Bonus"))
	if got := f.MustCol("Bonus").Floats(); math.Abs(got[0]-7500) > 1e-6 {
		t.Errorf("Bonus = %v", got)
	}
	f = f.MustWithColumn(f.MustCol("Salary").Label(func(v float64) string {
		if v > 85000 {
			return "Senior"
		}
		return "Junior"
	}).Rename("Level"))
	if got := f.MustCol("Level").Strings(); !slices.Equal(got, []string{"Junior", "Junior", "Senior", "Junior"}) {
		t.Errorf("Level = %v", got)
	}
	groups := f.MustCol("Age").MapValues(map[string]string{"28": "Junior", "35": "Mid", "42": "Senior"})
	if !groups.IsNull(3) || groups.Str(1) != "Mid" {
		t.Errorf("MapValues = %v", groups.Strings())
	}
	if _, err := f.WithColumn(NewInts("Short", 1)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("want ErrLengthMismatch, got %v", err)
	}
}

func TestSortAndRank(t *testing.T) {
	t.Parallel()
	f := employees(t)

	desc, err := f.Sort(Desc("Salary"))
	if err != nil {
		t.Fatal(err)
	}
	if got := desc.MustCol("Name").Strings(); !slices.Equal(got, []string{"Charlie", "Bob", "Diana", "Alice"}) {
		t.Errorf("Sort desc = %v", got)
	}
	multi, _ := f.Sort(Asc("Department"), Asc("Salary"))
	if got := multi.MustCol("Name").Strings(); !slices.Equal(got, []string{"Alice", "Charlie", "Diana", "Bob"}) {
		t.Errorf("multi sort = %v", got)
	}
	if got := f.MustCol("Salary").Rank().Floats(); !slices.Equal(got, []float64{1, 3, 4, 2}) {
		t.Errorf("Rank = %v", got)
	}
}

func missingFrame() *Frame {
	nan := math.NaN()
	return MustNew(
		NewFloats("A", 1, 2, nan, 4),
		NewFloats("B", 5, nan, nan, 8),
		NewInts("C", 9, 10, 11, 12),
	)
}

func TestMissingData(t *testing.T) {
	t.Parallel()
	f := missingFrame()

	if got := f.NullCounts().Floats(); !slices.Equal(got, []float64{1, 2, 0}) {
		t.Errorf("NullCounts = %v", got)
	}
	if got := f.IsNull().MustCol("B").Strings(); !slices.Equal(got, []string{"False", "True", "True", "False"}) {
		t.Errorf("IsNull(B) = %v", got)
	}
	if got := f.DropNA().Index(); !slices.Equal(got, []string{"0", "3"}) {
		t.Errorf("DropNA kept %v", got)
	}
	if got := f.FillNA(0).MustCol("B").Floats(); !slices.Equal(got, []float64{5, 0, 0, 8}) {
		t.Errorf("FillNA = %v", got)
	}
	if got := f.FFill().MustCol("B").Floats(); !slices.Equal(got, []float64{5, 5, 5, 8}) {
		t.Errorf("FFill = %v", got)
	}
	if !math.IsNaN(f.MustCol("B").Float(1)) {
		t.Error("operations must not modify their input")
	}
}

func TestDuplicates(t *testing.T) {
	t.Parallel()
	f := MustNew(NewInts("A", 1, 2, 2, 3, 3, 3), NewStrings("B", "x", "y", "y", "z", "z", "z"))
	if got := f.Duplicated(); !slices.Equal(got, []bool{false, false, true, false, true, true}) {
		t.Errorf("Duplicated = %v", got)
	}
	if got := f.DropDuplicates().Index(); !slices.Equal(got, []string{"0", "1", "3"}) {
		t.Errorf("DropDuplicates kept %v", got)
	}
}

func TestConcatAndMerge(t *testing.T) {
	t.Parallel()
	df1 := MustNew(NewStrings("key", "A", "B", "C"), NewInts("value1", 1, 2, 3))
	df2 := MustNew(NewStrings("key", "A", "B", "D"), NewInts("value2", 4, 5, 6))

	cat := Concat(df1, df2)
	if r, c := cat.Shape(); r != 6 || c != 3 {
		t.Errorf("Concat shape = (%d, %d), want (6, 3)", r, c)
	}
	if !cat.MustCol("value1").IsNull(3) || cat.MustCol("value2").Float(3) != 4 {
		t.Errorf("Concat should fill absent columns with NaN:\n%s", cat)
	}

	tests := []struct {
		how  Join
		keys []string
	}{
		{Inner, []string{"A", "B"}},
		{Left, []string{"A", "B", "C"}},
		{Right, []string{"A", "B", "D"}},
		{Outer, []string{"A", "B", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.how), func(t *testing.T) {
			t.Parallel()
			m, err := Merge(df1, df2, "key", tt.how)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.MustCol("key").Strings(); !slices.Equal(got, tt.keys) {
				t.Errorf("keys = %v, want %v", got, tt.keys)
			}
		})
	}

	left, _ := Merge(df1, df2, "key", Left)
	if !left.MustCol("value2").IsNull(2) {
		t.Error("unmatched left row should have a missing value2")
	}

	budgets := MustNew(NewStrings("key", "A"), NewInts("value1", 100))
	m, _ := Merge(df1, budgets, "key", Inner)
	if got := m.Columns(); !slices.Equal(got, []string{"key", "value1_x", "value1_y"}) {
		t.Errorf("suffixed columns = %v", got)
	}
	if _, err := Merge(df1, df2, "missing", Inner); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("want ErrColumnNotFound, got %v", err)
	}
}

func sales() *Frame {
	return MustNew(
		NewStrings("Product", "Laptop", "Mouse", "Keyboard", "Monitor", "Laptop", "Mouse"),
		NewStrings("Region", "North", "South", "North", "East", "South", "East"),
		NewStrings("Quarter", "Q1", "Q1", "Q2", "Q2", "Q1", "Q2"),
		NewInts("Sales", 15000, 2000, 3000, 8000, 18000, 2500),
	)
}

func TestGroupBy(t *testing.T) {
	t.Parallel()
	g, err := sales().GroupBy("Product")
	if err != nil {
		t.Fatal(err)
	}
	total, err := g.Aggregate("Sales", Sum)
	if err != nil {
		t.Fatal(err)
	}
	if got := total.Labels(); !slices.Equal(got, []string{"Keyboard", "Laptop", "Monitor", "Mouse"}) {
		t.Errorf("group order = %v", got)
	}
	if got := total.Floats(); !slices.Equal(got, []float64{3000, 33000, 8000, 4500}) {
		t.Errorf("sums = %v", got)
	}
	if total.Kind() != Int {
		t.Errorf("sum of ints should stay int, got %s", total.Kind().Dtype())
	}

	stats, err := g.Agg(Agg{Column: "Sales", Func: Count}, Agg{Column: "Sales", Func: Mean}, Agg{Column: "Sales", Func: Max})
	if err != nil {
		t.Fatal(err)
	}
	if got := stats.Columns(); !slices.Equal(got, []string{"count", "mean", "max"}) {
		t.Errorf("Agg columns = %v", got)
	}
	if got := stats.MustCol("mean").Floats(); got[1] != 16500 || got[3] != 2250 {
		t.Errorf("means = %v", got)
	}

	spread, _ := g.Apply("Sales", "range", func(xs []float64) float64 { return slices.Max(xs) - slices.Min(xs) })
	if got := spread.Floats(); !slices.Equal(got, []float64{0, 3000, 0, 500}) {
		t.Errorf("custom range = %v", got)
	}

	big := g.Filter(func(sub *Frame) bool { return sub.MustCol("Sales").Mean() > 5000 })
	if got := big.MustCol("Product").Strings(); !slices.Equal(got, []string{"Laptop", "Monitor", "Laptop"}) {
		t.Errorf("group filter = %v", got)
	}

	multi, err := sales().GroupBy("Region", "Quarter")
	if err != nil || multi.Len() != 4 {
		t.Errorf("multi-key groups = %d, %v", multi.Len(), err)
	}
}

func TestPivotStackMelt(t *testing.T) {
	t.Parallel()
	data := MustNew(
		NewStrings("Region", "North", "South", "East", "West", "North", "South", "East", "West", "North", "South", "East", "West"),
		NewStrings("Product", "A", "B", "A", "B", "A", "B", "A", "B", "A", "B", "A", "B"),
		NewInts("Sales", 10000, 15000, 12000, 18000, 11000, 16000, 13000, 19000, 14000, 17000, 15000, 20000),
	)
	pivot, err := data.Pivot("Region", "Product", "Sales", Sum)
	if err != nil {
		t.Fatal(err)
	}
	if got := pivot.Index(); !slices.Equal(got, []string{"East", "North", "South", "West"}) {
		t.Errorf("pivot index = %v", got)
	}
	if got := pivot.MustCol("A").Floats(); got[1] != 35000 || !math.IsNaN(got[2]) {
		t.Errorf("pivot column A = %v", got)
	}

	stacked := pivot.Stack()
	if r, _ := stacked.Shape(); r != 4 {
		t.Errorf("Stack should drop missing cells, got %d rows", r)
	}
	back, err := stacked.Unstack("Region", "Product", "value")
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != pivot.String() {
		t.Errorf("Unstack(Stack) differs:\n%s\nvs\n%s", back, pivot)
	}

	both, _ := data.PivotMulti("Region", "Product", "Sales", Sum, Mean)
	if got := both.Columns(); !slices.Equal(got, []string{"sum_A", "sum_B", "mean_A", "mean_B"}) {
		t.Errorf("PivotMulti columns = %v", got)
	}

	wide := MustNew(NewInts("ID", 1, 2, 3), NewInts("Q1", 100, 150, 200), NewInts("Q2", 120, 160, 210))
	long, err := wide.Melt([]string{"ID"}, "Quarter", "Sales")
	if err != nil {
		t.Fatal(err)
	}
	if got := long.Columns(); !slices.Equal(got, []string{"ID", "Quarter", "Sales"}) {
		t.Errorf("Melt columns = %v", got)
	}
	if got := long.MustCol("Sales").Floats(); !slices.Equal(got, []float64{100, 150, 200, 120, 160, 210}) {
		t.Errorf("Melt values = %v", got)
	}
}

func TestCrosstab(t *testing.T) {
	t.Parallel()
	age := NewStrings("Age", "Young", "Young", "Old", "Old", "Young", "Old", "Young", "Old")
	sat := NewStrings("Satisfaction", "Yes", "No", "Yes", "Yes", "Yes", "No", "No", "Yes")

	ct, err := Crosstab(age, sat, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := ct.Index(); !slices.Equal(got, []string{"Old", "Young", "All"}) {
		t.Errorf("index = %v", got)
	}
	if got := ct.MustCol("Yes").Floats(); !slices.Equal(got, []float64{3, 2, 5}) {
		t.Errorf("Yes = %v", got)
	}
	if got := ct.MustCol("All").Floats(); !slices.Equal(got, []float64{4, 4, 8}) {
		t.Errorf("All = %v", got)
	}
}

func TestWindowFunctions(t *testing.T) {
	t.Parallel()
	s := NewInts("Sales", 100, 120, 115, 140)

	rolling := s.Rolling(3).Mean()
	if !rolling.IsNull(1) || math.Abs(rolling.Float(2)-335.0/3) > 1e-9 {
		t.Errorf("rolling mean = %v", rolling.Floats())
	}
	if got := s.CumSum().Floats(); !slices.Equal(got, []float64{100, 220, 335, 475}) {
		t.Errorf("cumsum = %v", got)
	}
	pct := s.PctChange()
	if !pct.IsNull(0) || math.Abs(pct.Float(1)-0.2) > 1e-12 {
		t.Errorf("pct change = %v", pct.Floats())
	}
}

func TestCutCategoricalStrings(t *testing.T) {
	t.Parallel()
	years := NewInts("YearsExperience", 5, 3, 6, 4, 2, 7, 0)
	levels, err := years.Cut([]float64{0, 3, 6, 10}, []string{"Junior", "Mid", "Senior"})
	if err != nil {
		t.Fatal(err)
	}
	if got := levels.Strings(); !slices.Equal(got, []string{"Mid", "Junior", "Mid", "Mid", "Junior", "Senior", "NaN"}) {
		t.Errorf("Cut = %v", got)
	}
	if _, err := years.Cut([]float64{0, 3}, []string{"a", "b"}); err == nil {
		t.Error("label/edge mismatch should fail")
	}

	size, err := NewCategorical([]string{"S", "M", "L", "M", "S"}, []string{"S", "M", "L", "XL"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := size.Codes(); !slices.Equal(got, []int{0, 1, 2, 1, 0}) {
		t.Errorf("Codes = %v", got)
	}
	if !size.Less("M", "XL") {
		t.Error("ordered categories should compare by declaration order")
	}
	if got := size.Counts().Floats(); !slices.Equal(got, []float64{2, 2, 1, 0}) {
		t.Errorf("Counts = %v", got)
	}
	if _, err := NewCategorical([]string{"purple"}, []string{"red"}, false); err == nil {
		t.Error("unknown category should fail")
	}

	vc := levels.ValueCounts()
	if got := vc.Labels(); !slices.Equal(got, []string{"Mid", "Junior", "Senior"}) {
		t.Errorf("ValueCounts labels = %v", got)
	}
	if got := vc.SortIndex("Junior", "Mid", "Senior").Floats(); !slices.Equal(got, []float64{2, 3, 1}) {
		t.Errorf("SortIndex = %v", got)
	}

	names := NewStrings("Name", "alice johnson", "bob SMITH")
	if got := names.Title().Strings(); !slices.Equal(got, []string{"Alice Johnson", "Bob Smith"}) {
		t.Errorf("Title = %v", got)
	}
	if got := names.Upper().Str(1); got != "BOB SMITH" {
		t.Errorf("Upper = %q", got)
	}
	if got := names.SplitPart("", 0).Strings(); !slices.Equal(got, []string{"alice", "bob"}) {
		t.Errorf("SplitPart = %v", got)
	}
	if got := NewStrings("Email", "a@example.com").SplitPart("@", 1).Str(0); got != "example.com" {
		t.Errorf("domain = %q", got)
	}
}

func TestMatrixRoundTrip(t *testing.T) {
	t.Parallel()
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	f, err := FromMatrix(m, []string{"A", "B"}, []string{"row1", "row2"})
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Index(); !slices.Equal(got, []string{"row1", "row2"}) {
		t.Errorf("index = %v", got)
	}
	back, err := f.Matrix("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(m, back) {
		t.Errorf("Matrix round trip differs")
	}
}

func TestRecords(t *testing.T) {
	t.Parallel()
	f := employees(t)
	recs := f.Records()
	if recs[2]["Name"] != "Charlie" || recs[2]["Salary"] != 95000 {
		t.Errorf("record 2 = %v", recs[2])
	}
	back, err := FromRecords(f.Columns(), recs)
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != f.String() {
		t.Errorf("FromRecords(Records) differs:\n%s\nvs\n%s", back, f)
	}
}

func TestGroupByKeepsMissingKeys(t *testing.T) {
	t.Parallel()
	f, err := FromRows([]string{"Region", "Sales"}, [][]any{
		{"North", 10}, {nil, 5}, {"South", 7}, {nil, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	g, err := f.GroupBy("Region")
	if err != nil {
		t.Fatal(err)
	}
	keys := g.Keys()
	if len(keys) != 3 || keys[0][0] != "North" || keys[1][0] != "South" || keys[2][0] != "NaN" {
		t.Fatalf("Keys() = %v, want [North South NaN]", keys)
	}
	sums, err := g.Aggregate("Sales", Sum)
	if err != nil {
		t.Fatal(err)
	}
	if got := sums.Floats(); !slices.Equal(got, []float64{10, 7, 6}) {
		t.Errorf("group sums = %v, want [10 7 6]", got)
	}
	if sums.Sum() != f.MustCol("Sales").Sum() {
		t.Errorf("group total %v differs from column total %v", sums.Sum(), f.MustCol("Sales").Sum())
	}
}

func TestMissingIsDistinctFromNaNString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rows [][]any
		want []bool
	}{
		{"string NaN then missing", [][]any{{"NaN"}, {nil}}, []bool{false, false}},
		{"missing twice", [][]any{{nil}, {"x"}, {nil}}, []bool{false, false, true}},
		{"string NaN twice", [][]any{{"NaN"}, {"NaN"}}, []bool{false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := FromRows([]string{"v"}, tt.rows)
			if err != nil {
				t.Fatal(err)
			}
			if got := f.Duplicated(); !slices.Equal(got, tt.want) {
				t.Errorf("Duplicated() = %v, want %v", got, tt.want)
			}
		})
	}

	left, _ := FromRows([]string{"k", "a"}, [][]any{{"NaN", 1}, {nil, 2}})
	right, _ := FromRows([]string{"k", "b"}, [][]any{{"NaN", 10}})
	merged, err := Merge(left, right, "k", Inner)
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := merged.Shape(); r != 1 {
		t.Errorf("inner merge matched %d rows, want only the string key", r)
	}
}
