// Package frames is the tabular data lesson: building, inspecting,
// filtering, cleaning, joining and grouping frames.
package frames

import (
	"gonum.org/v1/gonum/mat"

	"github.com/agbru/curriculum/internal/frame"
	"github.com/agbru/curriculum/internal/lesson"
)

// New returns the frames lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "frames",
		LessonTitle: "Tabular data: creating and manipulating frames",
		Heading:     "DATAFRAMES - Creation and Manipulation",
		Sections: []lesson.Section{
			{Title: "CREATING DATAFRAMES:", Show: creating},
			{Title: "DATAFRAME INSPECTION:", Show: inspection},
			{Title: "SELECTING DATA:", Show: selecting},
			{Title: "FILTERING DATA:", Show: filtering},
			{Title: "ADDING AND MODIFYING COLUMNS:", Show: modifying},
			{Title: "HANDLING MISSING DATA:", Show: missing},
			{Title: "SORTING AND RANKING:", Show: sorting},
			{Title: "DUPLICATE HANDLING:", Show: duplicates},
			{Title: "CONCATENATION AND MERGING:", Show: merging},
			{Title: "PRACTICAL EXAMPLE - Sales Data Analysis:", Show: sales},
		},
		Summary: summary,
	}
}

// must unwraps results computed from literal data, where an error means
// the lesson itself is wrong.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// staff is the running example shared by most sections.
func staff() *frame.Frame {
	return frame.MustNew(
		frame.NewStrings("Name", "Alice", "Bob", "Charlie", "Diana"),
		frame.NewInts("Age", 28, 35, 42, 31),
		frame.NewInts("Salary", 75000, 85000, 95000, 82000),
		frame.NewStrings("Department", "Engineering", "Sales", "Engineering", "Marketing"),
	)
}

func creating(env *lesson.Env) {
	out := env.Out
	out.Println("From columns:")
	out.Println(staff())

	records := []map[string]any{
		{"id": 1, "name": "Alice", "salary": 75000},
		{"id": 2, "name": "Bob", "salary": 85000},
		{"id": 3, "name": "Charlie", "salary": 95000},
	}
	out.Println("\n\nFrom a slice of records:")
	out.Println(must(frame.FromRecords([]string{"id", "name", "salary"}, records)))

	values := make([]float64, 12)
	for i := range values {
		values[i] = env.Rand.NormFloat64()
	}
	m := mat.NewDense(4, 3, values)
	out.Println("\n\nFrom a gonum matrix:")
	out.Println(must(frame.FromMatrix(m, []string{"A", "B", "C"}, []string{"row1", "row2", "row3", "row4"})))
}

func inspection(env *lesson.Env) {
	out := env.Out
	df := staff()
	rows, cols := df.Shape()

	out.Println("\nFrame info:")
	out.Printf("Shape: (%d, %d)\n", rows, cols)
	out.Printf("Size: %d\n", df.Size())
	out.Printf("Columns: %v\n", df.Columns())
	out.Printf("Index: %v\n", df.Index())

	out.Println("\nData types:")
	for i, name := range df.Columns() {
		out.Printf("%-12s%s\n", name, df.Dtypes()[i])
	}

	out.Println("\nBasic statistics:")
	out.Println(df.Describe())

	out.Println("\nFirst 2 rows:")
	out.Println(df.Head(2))

	out.Println("\nLast 2 rows:")
	out.Println(df.Tail(2))

	out.Println("\nInfo about the frame:")
	_ = df.Info(out)
}

func selecting(env *lesson.Env) {
	out := env.Out
	df := staff()

	out.Println("Select column 'Name':")
	name := df.MustCol("Name")
	out.Println(name)
	out.Printf("Type: %T\n", name)

	out.Println("\n\nSelect multiple columns:")
	out.Println(must(df.Select("Name", "Age")))

	out.Println("\n\nSelect first 2 rows:")
	out.Println(df.ILoc(0, 2))

	out.Println("\n\nSelect specific cell (row 1, col 2):")
	out.Printf("At(1, 2): %v\n", must(df.At(1, 2)))

	out.Println("\n\nRows 0 through 2 of 'Name' (inclusive):")
	out.Println(df.ILoc(0, 3).MustCol("Name"))
}

func filtering(env *lesson.Env) {
	out := env.Out
	df := staff()
	salary, dept := df.MustCol("Salary"), df.MustCol("Department")

	out.Println("Employees with salary > 80000:")
	out.Println(df.Filter(salary.Gt(80000)))

	out.Println("\n\nEngineers earning > 80000:")
	out.Println(df.Filter(frame.And(dept.Eq("Engineering"), salary.Gt(80000))))

	out.Println("\n\nEmployees in Engineering or Sales:")
	out.Println(df.Filter(dept.IsIn("Engineering", "Sales")))

	out.Println("\n\nNames starting with 'C':")
	out.Println(df.Filter(df.MustCol("Name").StartsWith("C")))
}

func modifying(env *lesson.Env) {
	out := env.Out
	df := staff()

	bonus := df.MustCol("Salary").Apply(func(v float64) float64 { return v / 10 }).Rename("Bonus")
	df = df.MustWithColumn(bonus)
	out.Println("Added Bonus column:")
	out.Println(df)

	raised := df.MustCol("Salary").Apply(func(v float64) float64 { return v * 105 / 100 })
	df = df.MustWithColumn(raised)
	out.Println("\n\nAfter 5% salary increase:")
	out.Println(df)

	level := df.MustCol("Salary").Label(func(v float64) string {
		if v > 85000 {
			return "Senior"
		}
		return "Junior"
	}).Rename("Level")
	df = df.MustWithColumn(level)
	out.Println("\n\nAdded Level column:")
	out.Println(df)

	ageGroups := map[string]string{"28": "Junior", "35": "Mid", "42": "Senior", "31": "Mid"}
	df = df.MustWithColumn(df.MustCol("Age").MapValues(ageGroups).Rename("AgeGroup"))
	out.Println("\n\nAdded AgeGroup using a lookup map:")
	out.Println(df)
}

func withGaps() *frame.Frame {
	return must(frame.FromRows([]string{"A", "B", "C"}, [][]any{
		{1, 5, 9},
		{2, nil, 10},
		{nil, nil, 11},
		{4, 8, 12},
	}))
}

func missing(env *lesson.Env) {
	out := env.Out
	df := withGaps()

	out.Println("Frame with missing values:")
	out.Println(df)

	out.Println("\n\nCheck for missing values:")
	out.Println(df.IsNull())

	out.Println("\n\nCount missing values:")
	out.Println(df.NullCounts())

	out.Println("\n\nAfter DropNA():")
	out.Println(df.DropNA())

	out.Println("\n\nAfter FillNA(0):")
	out.Println(df.FillNA(0))

	out.Println("\n\nForward fill (propagate values forward):")
	out.Println(df.FFill())
}

func sorting(env *lesson.Env) {
	out := env.Out
	df := staff()

	out.Println("Original frame:")
	out.Println(df)

	out.Println("\n\nSorted by Salary (ascending):")
	out.Println(must(df.Sort(frame.Asc("Salary"))))

	out.Println("\n\nSorted by Salary (descending):")
	out.Println(must(df.Sort(frame.Desc("Salary"))))

	out.Println("\n\nMultiple column sort:")
	out.Println(must(df.Sort(frame.Asc("Department"), frame.Asc("Salary"))))

	out.Println("\n\nRank by salary:")
	out.Println(df.MustCol("Salary").Rank())
}

func duplicates(env *lesson.Env) {
	out := env.Out
	df := frame.MustNew(
		frame.NewInts("A", 1, 2, 2, 3, 3, 3),
		frame.NewStrings("B", "x", "y", "y", "z", "z", "z"),
	)

	out.Println("Frame with duplicates:")
	out.Println(df)

	out.Println("\n\nCheck duplicates:")
	out.Println(frame.NewBools("", df.Duplicated()...))

	out.Println("\n\nAfter DropDuplicates():")
	out.Println(df.DropDuplicates())
}

func merging(env *lesson.Env) {
	out := env.Out
	df1 := frame.MustNew(
		frame.NewStrings("key", "A", "B", "C"),
		frame.NewInts("value1", 1, 2, 3),
	)
	df2 := frame.MustNew(
		frame.NewStrings("key", "A", "B", "D"),
		frame.NewInts("value2", 4, 5, 6),
	)

	out.Println("Frame 1:")
	out.Println(df1)
	out.Println("\n\nFrame 2:")
	out.Println(df2)

	out.Println("\n\nConcatenate (row-wise):")
	out.Println(frame.Concat(df1, df2))

	out.Println("\n\nMerge on 'key' (inner join):")
	out.Println(must(frame.Merge(df1, df2, "key", frame.Inner)))

	out.Println("\n\nMerge on 'key' (left join):")
	out.Println(must(frame.Merge(df1, df2, "key", frame.Left)))
}

// Sales is the dataset of the practical example.
func Sales() *frame.Frame {
	return frame.MustNew(
		frame.NewStrings("Product", "Laptop", "Mouse", "Keyboard", "Monitor", "Laptop", "Mouse"),
		frame.NewStrings("Region", "North", "South", "North", "East", "South", "East"),
		frame.NewStrings("Quarter", "Q1", "Q1", "Q2", "Q2", "Q1", "Q2"),
		frame.NewInts("Sales", 15000, 2000, 3000, 8000, 18000, 2500),
	)
}

// Categorize labels a sale "High" above 5000 and "Low" otherwise.
func Categorize(v float64) string {
	if v > 5000 {
		return "High"
	}
	return "Low"
}

func sales(env *lesson.Env) {
	out := env.Out
	df := Sales()
	out.Println("Sales data:")
	out.Println(df)

	total := func(key string, fn frame.AggFunc) *frame.Series {
		return must(must(df.GroupBy(key)).Aggregate("Sales", fn))
	}
	out.Println("\n\nTotal sales by product:")
	out.Println(total("Product", frame.Sum))
	out.Println("\n\nTotal sales by region:")
	out.Println(total("Region", frame.Sum))
	out.Println("\n\nAverage sales by quarter:")
	out.Println(total("Quarter", frame.Mean))

	df = df.MustWithColumn(df.MustCol("Sales").Label(Categorize).Rename("Category"))
	out.Println("\n\nWith Category column:")
	out.Println(df)
}

const summary = `
Frame key operations:

1. CREATION:
   - From columns: frame.MustNew(frame.NewStrings(...), ...)
   - From records: frame.FromRecords(columns, []map[string]any{...})
   - From gonum matrices: frame.FromMatrix(m, columns, index)
   - From rows: frame.FromRows(columns, [][]any{...})

2. INSPECTION:
   - Head(n), Tail(n)
   - Shape(), Size()
   - Info(w), Describe()
   - Dtypes()

3. SELECTION:
   - MustCol("column"): single column (Series)
   - Select("col1", "col2"): several columns
   - ILoc(start, end), At(row, col): by position

4. FILTERING:
   - Filter(mask): boolean indexing
   - Series.Gt, Eq, IsIn, StartsWith build masks
   - frame.And / frame.Or combine them

5. MODIFICATION:
   - WithColumn(series): add or replace a column
   - Series.Apply(func): transform values
   - Series.MapValues(map): remap values

6. MISSING DATA:
   - IsNull(), NullCounts()
   - DropNA(): remove incomplete rows
   - FillNA(value), FFill(): fill gaps

7. GROUPING AND AGGREGATION:
   - GroupBy("col") then Aggregate or Agg
   - frame.Sum, frame.Mean, frame.Count

8. BEST PRACTICES:
   - Every operation returns a new frame
   - Check the error of lookups by column name
   - Chain operations for readability
   - Use Apply/Label/MapValues for transformations
`
