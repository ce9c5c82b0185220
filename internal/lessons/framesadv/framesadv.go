// Package framesadv is the advanced tabular data lesson: grouping,
// joining, pivoting, reshaping and window functions.
package framesadv

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agbru/curriculum/internal/frame"
	"github.com/agbru/curriculum/internal/lesson"
)

// New returns the advanced frames lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "frames-advanced",
		LessonTitle: "Tabular data: group-by, joins, pivots and reshaping",
		Heading:     "DATAFRAMES ADVANCED - GroupBy, Merge, Pivot Tables",
		Sections: []lesson.Section{
			{Title: "SAMPLE DATA:", Show: sample},
			{Title: "GROUPBY OPERATIONS:", Show: grouping},
			{Title: "MERGING AND JOINING:", Show: joining},
			{Title: "PIVOT TABLES:", Show: pivoting},
			{Title: "RESHAPING DATA:", Show: reshaping},
			{Title: "WINDOW FUNCTIONS:", Show: windows},
			{Title: "STRING OPERATIONS:", Show: stringOps},
			{Title: "CATEGORICAL DATA:", Show: categorical},
			{Title: "CROSS TABULATION:", Show: crosstab},
			{Title: "PRACTICAL EXAMPLE - Sales Analysis Pipeline:", Show: pipeline},
		},
		Summary: summary,
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Employees is the dataset most sections start from.
func Employees() *frame.Frame {
	return frame.MustNew(
		frame.NewInts("EmployeeID", 1, 2, 3, 4, 5, 6),
		frame.NewStrings("Name", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank"),
		frame.NewStrings("Department", "Engineering", "Sales", "Engineering", "Marketing", "Sales", "Engineering"),
		frame.NewInts("Salary", 95000, 75000, 90000, 85000, 72000, 98000),
		frame.NewInts("YearsExperience", 5, 3, 6, 4, 2, 7),
	)
}

// ExperienceLevel bins years of experience into (0, 3], (3, 6] and (6, 10].
func ExperienceLevel(years *frame.Series) (*frame.Series, error) {
	levels, err := years.Cut([]float64{0, 3, 6, 10}, []string{"Junior", "Mid", "Senior"})
	if err != nil {
		return nil, err
	}
	return levels.Rename("ExperienceLevel"), nil
}

// SalaryRange is the spread between the largest and smallest value.
func SalaryRange(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}
	return hi - lo
}

func sample(env *lesson.Env) {
	env.Out.Println("Sample employee data:")
	env.Out.Println(Employees())
}

func grouping(env *lesson.Env) {
	out := env.Out
	df := Employees()
	byDept := must(df.GroupBy("Department"))

	out.Println("\nAverage salary by department:")
	out.Println(must(byDept.Aggregate("Salary", frame.Mean)))

	out.Println("\n\nMultiple aggregations by department:")
	out.Println(must(byDept.Agg(
		frame.Agg{Column: "Salary", Func: frame.Count},
		frame.Agg{Column: "Salary", Func: frame.Mean},
		frame.Agg{Column: "Salary", Func: frame.Min},
		frame.Agg{Column: "Salary", Func: frame.Max},
		frame.Agg{Column: "Salary", Func: frame.Sum},
	)))

	out.Println("\n\nGroup by department and experience level:")
	df = df.MustWithColumn(must(ExperienceLevel(df.MustCol("YearsExperience"))))
	out.Println(must(must(df.GroupBy("Department", "ExperienceLevel")).Agg(
		frame.Agg{Column: "Salary", Func: frame.Count},
		frame.Agg{Column: "Salary", Func: frame.Mean},
		frame.Agg{Column: "YearsExperience", Func: frame.Mean},
	)))

	out.Println("\n\nCustom aggregation (salary range):")
	out.Println(must(byDept.Apply("Salary", "SalaryRange", SalaryRange)))

	out.Println("\n\nDepartments with average salary > $85000:")
	out.Println(byDept.Filter(func(g *frame.Frame) bool {
		return g.MustCol("Salary").Mean() > 85000
	}))
}

func departments() *frame.Frame {
	return frame.MustNew(
		frame.NewStrings("Department", "Engineering", "Sales", "Marketing"),
		frame.NewInts("Budget", 500000, 300000, 200000),
		frame.NewStrings("Manager", "John", "Sarah", "Mike"),
	)
}

func projects() *frame.Frame {
	return frame.MustNew(
		frame.NewInts("ProjectID", 101, 102, 103, 104),
		frame.NewStrings("ProjectName", "AI Platform", "Mobile App", "Web Redesign", "Data Pipeline"),
		frame.NewStrings("Department", "Engineering", "Engineering", "Marketing", "Engineering"),
		frame.NewInts("Budget", 100000, 80000, 50000, 120000),
	)
}

func joining(env *lesson.Env) {
	out := env.Out
	employees, depts := Employees(), departments()

	out.Println("Departments frame:")
	out.Println(depts)
	out.Println("\n\nProjects frame:")
	out.Println(projects())

	out.Println("\n\nInner merge (employees with departments):")
	inner := must(frame.Merge(employees, depts, "Department", frame.Inner))
	out.Println(must(inner.Select("Name", "Department", "Salary", "Budget")))

	out.Println("\n\nLeft merge (keep all employees):")
	left := must(frame.Merge(employees, depts, "Department", frame.Left))
	out.Println(must(left.Select("Name", "Department", "Salary", "Budget")).DropDuplicates())

	out.Println("\n\nMultiple merges (employees, departments, projects):")
	both := must(frame.Merge(left, projects(), "Department", frame.Left))
	out.Println(must(both.Select("Name", "Department", "Salary", "Budget_x", "Manager")).DropDuplicates())
}

// monthlySales is twelve months of sales cycling over four regions.
func monthlySales() *frame.Frame {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]string, 12)
	regions := make([]string, 12)
	products := make([]string, 12)
	for i := range dates {
		dates[i] = start.AddDate(0, i, 0).Format(time.DateOnly)
		regions[i] = []string{"North", "South", "East", "West"}[i%4]
		products[i] = []string{"A", "B"}[i%2]
	}
	return frame.MustNew(
		frame.NewStrings("Date", dates...),
		frame.NewStrings("Region", regions...),
		frame.NewStrings("Product", products...),
		frame.NewInts("Sales", 10000, 15000, 12000, 18000, 11000, 16000, 13000, 19000, 14000, 17000, 15000, 20000),
	)
}

func pivoting(env *lesson.Env) {
	out := env.Out
	sales := monthlySales()
	out.Println("Sales data:")
	out.Println(sales.Head(8))

	out.Println("\n\nPivot: sales by region and product:")
	out.Println(must(sales.Pivot("Region", "Product", "Sales", frame.Sum)))

	out.Println("\n\nPivot: sum and mean by region and product:")
	out.Println(must(sales.PivotMulti("Region", "Product", "Sales", frame.Sum, frame.Mean)))
}

func reshaping(env *lesson.Env) {
	out := env.Out
	pivot := must(monthlySales().Pivot("Region", "Product", "Sales", frame.Sum))
	out.Println("Original pivot table:")
	out.Println(pivot)

	stacked := pivot.Stack()
	out.Println("\n\nStacked (wide to long):")
	out.Println(stacked)

	out.Println("\n\nUnstacked back:")
	out.Println(must(stacked.Unstack("Region", "Product", "value")))

	wide := frame.MustNew(
		frame.NewInts("ID", 1, 2, 3),
		frame.NewInts("Q1", 100, 150, 200),
		frame.NewInts("Q2", 120, 160, 210),
		frame.NewInts("Q3", 140, 170, 220),
	)
	out.Println("\n\nWide format:")
	out.Println(wide)

	out.Println("\n\nMelted to long format:")
	out.Println(must(wide.Melt([]string{"ID"}, "Quarter", "Sales")))
}

func windows(env *lesson.Env) {
	out := env.Out
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]string, 10)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(time.DateOnly)
	}
	ts := frame.MustNew(
		frame.NewStrings("Date", dates...),
		frame.NewInts("Sales", 100, 120, 115, 140, 135, 160, 155, 180, 175, 200),
	)
	out.Println("Time series data:")
	out.Println(ts)

	sales := ts.MustCol("Sales")
	ts = ts.MustWithColumn(sales.Rolling(3).Mean().Rename("Rolling_Mean"))
	out.Println("\n\n3-period rolling mean:")
	out.Println(ts)

	ts = ts.MustWithColumn(sales.CumSum().Rename("Cumsum"))
	out.Println("\n\nCumulative sum:")
	out.Println(ts)

	ts = ts.MustWithColumn(sales.PctChange().Rename("PctChange"))
	out.Println("\n\nPercent change:")
	out.Println(ts)
}

func stringOps(env *lesson.Env) {
	out := env.Out
	df := frame.MustNew(
		frame.NewStrings("Name", "alice johnson", "bob SMITH", "charlie brown"),
		frame.NewStrings("Email", "alice@example.com", "bob@example.com", "charlie@example.com"),
	)
	out.Println("Original data:")
	out.Println(df)

	name, email := df.MustCol("Name"), df.MustCol("Email")
	for _, s := range []*frame.Series{
		name.Upper().Rename("NameUpper"),
		name.Title().Rename("NameTitle"),
		name.SplitPart("", 0).Rename("FirstName"),
		email.SplitPart("@", 1).Rename("Domain"),
	} {
		df = df.MustWithColumn(s)
	}
	out.Println("\n\nString methods:")
	out.Println(df)
}

func categorical(env *lesson.Env) {
	out := env.Out
	color := must(frame.NewCategorical(
		[]string{"red", "blue", "red", "green", "blue"},
		[]string{"red", "blue", "green", "yellow"}, false))
	size := must(frame.NewCategorical(
		[]string{"S", "M", "L", "M", "S"},
		[]string{"S", "M", "L", "XL"}, true))

	out.Println("Categorical data:")
	out.Println(frame.MustNew(color.Series("Color"), size.Series("Size")))
	out.Printf("\nColor categories: %v\n", color.Categories)
	out.Printf("Size categories: %v\n", size.Categories)
	out.Printf("Size is ordered: %t\n", size.Ordered)
	out.Printf("Size codes: %v\n", size.Codes())
	out.Printf("M < L: %t\n", size.Less("M", "L"))

	out.Println("\nColor counts (unused categories included):")
	out.Println(color.Counts())
}

func crosstab(env *lesson.Env) {
	out := env.Out
	survey := frame.MustNew(
		frame.NewStrings("Age", "Young", "Young", "Old", "Old", "Young", "Old", "Young", "Old"),
		frame.NewStrings("Satisfaction", "Yes", "No", "Yes", "Yes", "Yes", "No", "No", "Yes"),
	)
	out.Println("Survey data:")
	out.Println(survey)

	age, satisfied := survey.MustCol("Age"), survey.MustCol("Satisfaction")
	out.Println("\n\nCrosstab (Age vs Satisfaction):")
	out.Println(must(frame.Crosstab(age, satisfied, false)))

	out.Println("\n\nCrosstab with margins:")
	out.Println(must(frame.Crosstab(age, satisfied, true)))
}

// RandomSales draws n days of sales starting on 2023-01-01, taking every
// random choice from intN.
func RandomSales(intN func(int) int, n int) *frame.Frame {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	products := []string{"Laptop", "Mouse", "Keyboard", "Monitor"}
	regions := []string{"North", "South", "East", "West"}

	date, month := make([]string, n), make([]string, n)
	product, region := make([]string, n), make([]string, n)
	sales, quantity := make([]int, n), make([]int, n)
	for i := range n {
		day := start.AddDate(0, 0, i)
		date[i], month[i] = day.Format(time.DateOnly), day.Format("2006-01")
		product[i] = products[intN(len(products))]
		region[i] = regions[intN(len(regions))]
		sales[i] = 1000 + intN(4000)
		quantity[i] = 1 + intN(19)
	}
	return frame.MustNew(
		frame.NewStrings("Date", date...),
		frame.NewStrings("Month", month...),
		frame.NewStrings("Product", product...),
		frame.NewStrings("Region", region...),
		frame.NewInts("Sales", sales...),
		frame.NewInts("Quantity", quantity...),
	)
}

func pipeline(env *lesson.Env) {
	out := env.Out
	df := RandomSales(env.Rand.IntN, 100)

	out.Println("Step 1: Group by product and get total sales")
	bySales := must(must(df.GroupBy("Product")).Aggregate("Sales", frame.Sum)).SortValues(true)
	out.Println(bySales)
	p := message.NewPrinter(language.English)
	out.Println(p.Sprintf("Total revenue: $%d", int(df.MustCol("Sales").Sum())))

	out.Println("\n\nStep 2: Add monthly aggregation")
	monthly := must(must(df.GroupBy("Month")).Agg(
		frame.Agg{Column: "Sales", Func: frame.Sum, Name: "Sales"},
		frame.Agg{Column: "Quantity", Func: frame.Sum, Name: "Quantity"},
	))
	out.Println(monthly.Head(5))

	out.Println("\n\nStep 3: Pivot table - Sales by Product and Region")
	out.Println(must(df.Pivot("Product", "Region", "Sales", frame.Sum)))

	rows, _ := df.Shape()
	out.Printf("\nAnalysed %d daily records.\n", rows)
}

const summary = `
Advanced frame operations:

1. GROUPBY:
   - GroupBy("col").Agg(...)
   - Multiple aggregations per column
   - Custom reductions with Apply
   - Filter whole groups with Filter

2. MERGING:
   - frame.Merge: SQL-like joins
   - how: frame.Inner, Left, Right, Outer
   - on: the shared key column

3. PIVOT TABLES:
   - Pivot(index, columns, values, agg)
   - PivotMulti for several reductions
   - Reorganize data efficiently

4. RESHAPING:
   - Stack() / Unstack(): wide and long
   - Melt(): unpivot data

5. WINDOW FUNCTIONS:
   - Rolling(n).Mean(): moving calculations
   - CumSum(): cumulative totals
   - PctChange(): percent change

6. STRING OPERATIONS:
   - Upper(), Lower(), Title()
   - SplitPart(sep, k)
   - StartsWith, MatchString for masks

7. CATEGORICAL DATA:
   - frame.NewCategorical for fixed categories
   - Ordered categories compare by position

8. CROSS TABULATION:
   - frame.Crosstab: frequency tables
   - useful for exploratory analysis

9. BEST PRACTICES:
   - Chain operations for readability
   - Use GroupBy for aggregations
   - Check lookup errors on column names
   - Categoricals for repeated values
`
