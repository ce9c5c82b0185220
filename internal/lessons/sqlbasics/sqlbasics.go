// Package sqlbasics is the SQL lesson. Every run works on a private
// in-memory SQLite database that disappears when the lesson ends.
package sqlbasics

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/frame"
	"github.com/agbru/curriculum/internal/lesson"
)

//go:embed schema.sql
var schema string

// ErrDuplicateDepartment is returned when a department name is taken.
var ErrDuplicateDepartment = errors.New("department already exists")

// New returns the SQL lesson.
func New() lesson.Lesson { return sqlLesson{} }

type sqlLesson struct{}

func (sqlLesson) Name() string  { return "sql" }
func (sqlLesson) Title() string { return "SQL basics on an in-memory SQLite database" }

func (l sqlLesson) Run(ctx context.Context, env *lesson.Env) error {
	db, err := Open(ctx)
	if err != nil {
		return apperrors.LessonError{Lesson: l.Name(), Cause: err}
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			env.Logger.Error("close database", cerr)
		}
	}()

	c := &course{ctx: ctx, db: db}
	script := &lesson.Script{
		LessonName:  l.Name(),
		LessonTitle: l.Title(),
		Heading:     "SQL BASICS - Querying an In-Memory SQLite Database",
		Setup:       func(*lesson.Env) error { return Seed(ctx, db) },
		Sections: []lesson.Section{
			{Title: "CREATING TABLES:", Show: c.tables},
			{Title: "INSERTING DATA:", Show: c.inserting},
			{Title: "SELECT, WHERE AND ORDER BY:", Show: c.selecting},
			{Title: "AGGREGATE FUNCTIONS:", Show: c.aggregates},
			{Title: "GROUP BY AND HAVING:", Show: c.grouping},
			{Title: "JOINS:", Show: c.joins},
			{Title: "UPDATE, DELETE AND TRANSACTIONS:", Show: c.transactions},
			{Title: "CONSTRAINTS AND ERRORS:", Show: c.constraints},
			{Title: "PRACTICAL EXAMPLE - Department Report:", Show: c.report},
		},
		Summary: summary,
	}
	return script.Run(ctx, env)
}

// Open returns a fresh in-memory database with the lesson schema applied.
// The pool is limited to one connection because every SQLite connection to
// ":memory:" opens a separate database.
func Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// Department is a row of the departments table.
type Department struct {
	ID     int
	Name   string
	Budget int
}

// Employee is a row of the employees table. A zero DepartmentID stores NULL.
type Employee struct {
	Name         string
	DepartmentID int
	Salary       int
	HireYear     int
}

// Departments and Employees are the rows Seed inserts.
var (
	Departments = []Department{
		{1, "Engineering", 500000},
		{2, "Sales", 300000},
		{3, "Marketing", 200000},
		{4, "Research", 150000},
	}
	Employees = []Employee{
		{"Alice", 1, 95000, 2019},
		{"Bob", 2, 75000, 2021},
		{"Charlie", 1, 90000, 2018},
		{"Diana", 3, 85000, 2020},
		{"Eve", 2, 72000, 2022},
		{"Frank", 1, 98000, 2017},
		{"Grace", 0, 60000, 2023},
	}
)

// Seed inserts the sample rows in one transaction.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, d := range Departments {
		if err := AddDepartment(ctx, tx, d); err != nil {
			return err
		}
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO employees (name, department_id, salary, hire_year) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare employee insert: %w", err)
	}
	defer stmt.Close()
	for _, e := range Employees {
		var dept sql.NullInt64
		if e.DepartmentID != 0 {
			dept = sql.NullInt64{Int64: int64(e.DepartmentID), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, e.Name, dept, e.Salary, e.HireYear); err != nil {
			return fmt.Errorf("insert employee %q: %w", e.Name, err)
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// AddDepartment inserts d, reporting ErrDuplicateDepartment when its name
// is already taken.
func AddDepartment(ctx context.Context, db execer, d Department) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO departments (id, name, budget) VALUES (?, ?, ?)`, d.ID, d.Name, d.Budget)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %q", ErrDuplicateDepartment, d.Name)
	}
	if err != nil {
		return fmt.Errorf("insert department %q: %w", d.Name, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

// Query runs a SELECT and collects the result set into a frame.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) (*frame.Frame, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var data [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return frame.FromRows(columns, data)
}

type course struct {
	ctx context.Context
	db  *sql.DB
}

// show prints the statement and its result table.
func (c *course) show(out *lesson.Printer, query string, args ...any) {
	out.Println(strings.TrimSpace(query))
	f, err := Query(c.ctx, c.db, query, args...)
	if err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	out.Println(f)
}

func (c *course) tables(env *lesson.Env) {
	out := env.Out
	out.Println("Schema (embedded in the binary):")
	out.Println(strings.TrimSpace(schema))
	out.Println("\nObjects in sqlite_master:")
	c.show(out, `SELECT type, name FROM sqlite_master WHERE name NOT LIKE 'sqlite_%' ORDER BY type, name`)
}

func (c *course) inserting(env *lesson.Env) {
	out := env.Out
	out.Printf("Seeded %d departments and %d employees in one transaction.\n", len(Departments), len(Employees))

	res, err := c.db.ExecContext(c.ctx,
		`INSERT INTO employees (name, department_id, salary, hire_year) VALUES (?, ?, ?, ?)`,
		"Heidi", 3, 88000, 2024)
	if err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	id, _ := res.LastInsertId()
	n, _ := res.RowsAffected()
	out.Printf("\nInserted Heidi with a placeholder query: id=%d, rows affected=%d\n", id, n)

	var count int
	if err := c.db.QueryRowContext(c.ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	out.Printf("Employees now: %d\n", count)
}

func (c *course) selecting(env *lesson.Env) {
	out := env.Out
	c.show(out, `SELECT name, salary FROM employees WHERE salary > ? ORDER BY salary DESC`, 80000)
	out.Println()
	c.show(out, `SELECT name, hire_year FROM employees WHERE hire_year BETWEEN 2019 AND 2021 ORDER BY hire_year`)
	out.Println()
	c.show(out, `SELECT name FROM employees WHERE name LIKE '%a%' ORDER BY name LIMIT 3`)
	out.Println()
	c.show(out, `SELECT name FROM employees WHERE department_id IS NULL`)
}

func (c *course) aggregates(env *lesson.Env) {
	out := env.Out
	c.show(out, `
SELECT COUNT(*) AS n, SUM(salary) AS total, AVG(salary) AS average,
       MIN(salary) AS lowest, MAX(salary) AS highest
FROM employees`)

	var avg float64
	if err := c.db.QueryRowContext(c.ctx, `SELECT AVG(salary) FROM employees`).Scan(&avg); err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	out.Printf("\nScanned into a float64: %.2f\n", avg)
}

func (c *course) grouping(env *lesson.Env) {
	out := env.Out
	c.show(out, `
SELECT d.name AS department, COUNT(*) AS headcount, ROUND(AVG(e.salary), 2) AS avg_salary
FROM employees e JOIN departments d ON d.id = e.department_id
GROUP BY d.name
ORDER BY d.name`)
	out.Println()
	c.show(out, `
SELECT d.name AS department, COUNT(*) AS headcount
FROM employees e JOIN departments d ON d.id = e.department_id
GROUP BY d.name
HAVING COUNT(*) > 1
ORDER BY headcount DESC, d.name`)
}

func (c *course) joins(env *lesson.Env) {
	out := env.Out
	out.Println("INNER JOIN keeps matching rows only:")
	c.show(out, `
SELECT e.name, d.name AS department
FROM employees e INNER JOIN departments d ON d.id = e.department_id
ORDER BY e.id`)
	out.Println("\nLEFT JOIN keeps every employee:")
	c.show(out, `
SELECT e.name, d.name AS department
FROM employees e LEFT JOIN departments d ON d.id = e.department_id
ORDER BY e.id`)
	out.Println("\nDepartments without employees:")
	c.show(out, `
SELECT d.name FROM departments d
LEFT JOIN employees e ON e.department_id = d.id
WHERE e.id IS NULL`)
}

func (c *course) transactions(env *lesson.Env) {
	out := env.Out
	total := func() int {
		var sum int
		_ = c.db.QueryRowContext(c.ctx, `SELECT SUM(salary) FROM employees`).Scan(&sum)
		return sum
	}
	out.Printf("Payroll before: %d\n", total())

	tx, err := c.db.BeginTx(c.ctx, nil)
	if err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	res, err := tx.ExecContext(c.ctx, `UPDATE employees SET salary = salary * 11 / 10 WHERE department_id = 2`)
	if err != nil {
		_ = tx.Rollback()
		out.Printf("Error: %v\n", err)
		return
	}
	n, _ := res.RowsAffected()
	out.Printf("UPDATE gave %d Sales employees a 10%% raise inside a transaction\n", n)
	if err := tx.Rollback(); err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	out.Printf("After ROLLBACK: %d\n", total())

	res, err = c.db.ExecContext(c.ctx, `DELETE FROM employees WHERE hire_year < ?`, 2018)
	if err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	n, _ = res.RowsAffected()
	out.Printf("\nDELETE removed %d employee(s) hired before 2018\n", n)
	out.Printf("Payroll after DELETE: %d\n", total())
}

func (c *course) constraints(env *lesson.Env) {
	out := env.Out
	err := AddDepartment(c.ctx, c.db, Department{ID: 5, Name: "Sales", Budget: 1})
	switch {
	case errors.Is(err, ErrDuplicateDepartment):
		out.Printf("UNIQUE constraint: %v\n", err)
	case err != nil:
		out.Printf("Error: %v\n", err)
	default:
		out.Println("Unexpected: duplicate accepted")
	}

	err = AddDepartment(c.ctx, c.db, Department{ID: 6, Name: "Legal", Budget: -5})
	out.Printf("CHECK constraint: %v\n", err != nil)

	_, err = c.db.ExecContext(c.ctx,
		`INSERT INTO employees (name, department_id, salary, hire_year) VALUES ('Ivan', 99, 1, 2024)`)
	out.Printf("FOREIGN KEY constraint: %v\n", err != nil)

	_, err = Query(c.ctx, c.db, `SELECT nope FROM employees`)
	out.Printf("Bad column: %v\n", err != nil)
}

func (c *course) report(env *lesson.Env) {
	out := env.Out
	f, err := Query(c.ctx, c.db, `
SELECT COALESCE(d.name, 'Unassigned') AS department, e.salary
FROM employees e LEFT JOIN departments d ON d.id = e.department_id`)
	if err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	g, err := f.GroupBy("department")
	if err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	report, err := g.Agg(
		frame.Agg{Column: "salary", Func: frame.Count, Name: "headcount"},
		frame.Agg{Column: "salary", Func: frame.Sum, Name: "payroll"},
		frame.Agg{Column: "salary", Func: frame.Max, Name: "top_salary"},
	)
	if err != nil {
		out.Printf("Error: %v\n", err)
		return
	}
	out.Println("Query results loaded into a frame and grouped:")
	out.Println(report)
}

const summary = `
SQL key concepts:

1. DATA DEFINITION:
   - CREATE TABLE with types and constraints
   - PRIMARY KEY, UNIQUE, CHECK, REFERENCES
   - CREATE INDEX for faster lookups

2. DATA MANIPULATION:
   - INSERT with ? placeholders, never string concatenation
   - UPDATE ... WHERE, DELETE ... WHERE
   - Transactions: BEGIN, COMMIT, ROLLBACK

3. QUERYING:
   - SELECT columns FROM table WHERE condition
   - ORDER BY, LIMIT, LIKE, BETWEEN, IS NULL

4. AGGREGATION:
   - COUNT, SUM, AVG, MIN, MAX
   - GROUP BY to aggregate per group
   - HAVING to filter groups

5. JOINS:
   - INNER JOIN: matching rows only
   - LEFT JOIN: every row of the left table

6. FROM GO:
   - database/sql with the "sqlite" driver
   - QueryContext / ExecContext with a context
   - Always close rows and check rows.Err()
   - Inspect driver errors with errors.As
`
