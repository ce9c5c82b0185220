// Package files is the file-handling lesson. It is the only lesson that
// touches the filesystem, and only inside its sample directory.
package files

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/logging"
)

// Names of the files the lesson writes into its sample directory.
const (
	TextFile      = "sample.txt"
	CSVFile       = "employees.csv"
	TSVFile       = "data.tsv"
	JSONFile      = "students.json"
	YAMLFile      = "students.yaml"
	EmployeesJSON = "employees.json"
	LogFile       = "app.log"

	protectedFile = "protected.txt"
)

// SampleFiles lists every file a complete run leaves behind.
var SampleFiles = []string{TextFile, CSVFile, TSVFile, JSONFile, YAMLFile, EmployeesJSON, LogFile}

// New returns the file-handling lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "files",
		LessonTitle: "Text, CSV, JSON and YAML files, file info and error kinds",
		Setup:       setup,
		Sections: []lesson.Section{
			{Title: "FILE HANDLING - Text, CSV, JSON and YAML Files", Show: intro},
			{Title: "WORKING WITH TEXT FILES", Show: textFiles},
			{Title: "WORKING WITH CSV FILES", Show: csvFiles},
			{Title: "WORKING WITH JSON FILES", Show: jsonFiles},
			{Title: "WORKING WITH YAML FILES", Show: yamlFiles},
			{Title: "FILE OPERATIONS", Show: fileOperations},
			{Title: "ERROR HANDLING IN FILE OPERATIONS", Show: errorHandling},
			{Title: "PRACTICAL EXAMPLES", Show: practical},
			{Title: "DEFER AND CLOSE", Show: deferAndClose},
		},
		Summary: summary,
	}
}

// setup creates the sample directory and removes files left by an earlier
// run so that listings and sizes are identical every time.
func setup(env *lesson.Env) error {
	if env.SampleDir == "" {
		return errors.New("sample directory is not set")
	}
	if err := os.MkdirAll(env.SampleDir, 0o755); err != nil {
		return fmt.Errorf("create sample directory: %w", err)
	}
	for _, name := range append(slices.Clone(SampleFiles), protectedFile) {
		err := os.Remove(filepath.Join(env.SampleDir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove stale %s: %w", name, err)
		}
	}
	env.Logger.Debug("sample directory ready", logging.String("dir", env.SampleDir))
	return nil
}

func path(env *lesson.Env, name string) string {
	return filepath.Join(env.SampleDir, name)
}

func intro(env *lesson.Env) {
	env.Out.Printf("Sample directory: %s\n", env.SampleDir)
}

func textFiles(env *lesson.Env) {
	out := env.Out
	textFile := path(env, TextFile)

	content := "Hello, World!\nThis is a text file.\nGo makes file handling explicit.\n"
	if err := os.WriteFile(textFile, []byte(content), 0o644); err != nil {
		out.Printf("Error writing file: %v\n", err)
		return
	}
	out.Printf("Created text file: %s\n", TextFile)

	out.Println("\nReading entire file:")
	data, err := os.ReadFile(textFile)
	if err != nil {
		out.Printf("Error reading file: %v\n", err)
	} else {
		out.Printf("Content:\n%s\n", data)
	}

	out.Println("Reading line by line:")
	if f, err := os.Open(textFile); err != nil {
		out.Printf("Error reading file: %v\n", err)
	} else {
		scanner := bufio.NewScanner(f)
		for n := 1; scanner.Scan(); n++ {
			out.Printf("  Line %d: %s\n", n, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			out.Printf("Error scanning file: %v\n", err)
		}
		f.Close()
	}

	out.Println("\nReading all lines into a slice:")
	out.Printf("Lines: %q\n", slices.Collect(strings.Lines(string(data))))

	out.Println("\nAppending to file:")
	f, err := os.OpenFile(textFile, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		out.Printf("Error appending: %v\n", err)
		return
	}
	_, werr := f.WriteString("This line was appended.\n")
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		out.Printf("Error appending: %v\n", err)
		return
	}
	out.Println("Line appended successfully")
}

var employees = []Employee{
	{1, "Alice Johnson", "Engineering", 120000},
	{2, "Bob Smith", "Marketing", 90000},
	{3, "Charlie Brown", "Sales", 85000},
	{4, "Diana Prince", "Engineering", 130000},
}

func csvFiles(env *lesson.Env) {
	out := env.Out
	csvFile := path(env, CSVFile)

	rows := make([][]string, len(employees))
	for i, e := range employees {
		rows[i] = e.record()
	}
	if err := writeCSV(csvFile, ',', employeeHeader, rows); err != nil {
		out.Printf("Error writing CSV: %v\n", err)
		return
	}
	out.Printf("Created CSV file: %s\n", CSVFile)

	out.Println("\nReading CSV file (simple):")
	records, err := readRows(csvFile)
	if err != nil {
		out.Printf("Error reading CSV: %v\n", err)
	}
	for i, rec := range records {
		out.Printf("  Row %d: %q\n", i+1, rec)
	}

	out.Println("\nReading CSV file keyed by header:")
	dicts, err := readDicts(csvFile)
	if err != nil {
		out.Printf("Error reading CSV: %v\n", err)
	}
	for _, row := range dicts {
		out.Printf("  %s - %s ($%s)\n", row["Name"], row["Department"], row["Salary"])
	}

	tsv := [][]string{{"A", "B", "C"}, {"D", "E", "F"}}
	if err := writeCSV(path(env, TSVFile), '\t', []string{"Column1", "Column2", "Column3"}, tsv); err != nil {
		out.Printf("Error writing TSV: %v\n", err)
		return
	}
	out.Printf("Created TSV file: %s\n", TSVFile)
}

var roster = Roster{Students: []Student{
	{ID: 101, Name: "Alice", Age: 20, Grades: []int{85, 90, 88}, Active: true},
	{ID: 102, Name: "Bob", Age: 21, Grades: []int{92, 88, 95}, Active: true},
	{ID: 103, Name: "Charlie", Age: 20, Grades: []int{78, 82, 80}, Active: false},
}}

func jsonFiles(env *lesson.Env) {
	out := env.Out
	jsonFile := path(env, JSONFile)

	if err := writeJSON(jsonFile, roster); err != nil {
		out.Printf("Error writing JSON: %v\n", err)
		return
	}
	out.Printf("Created JSON file: %s\n", JSONFile)

	out.Println("\nReading JSON file:")
	var loaded Roster
	if err := readJSON(jsonFile, &loaded); err != nil {
		out.Printf("Error reading JSON: %v\n", err)
	} else {
		out.Println("Loaded data:")
		for _, s := range loaded.Students {
			out.Printf("  %s: Average = %.1f\n", s.Name, s.Average())
		}
	}

	out.Println("\nWorking with JSON strings:")
	var parsed map[string]any
	if err := json.Unmarshal([]byte(`{"name": "David", "age": 22, "city": "New York"}`), &parsed); err != nil {
		out.Printf("Error parsing JSON: %v\n", err)
	} else {
		out.Printf("Parsed from string: %v\n", parsed)
	}

	product := struct {
		Product string `json:"product"`
		Price   int    `json:"price"`
		InStock bool   `json:"in_stock"`
	}{"Laptop", 1200, true}
	encoded, _ := json.MarshalIndent(product, "", "  ")
	out.Printf("Converted to JSON string:\n%s\n", encoded)

	var bad Roster
	if err := json.Unmarshal([]byte(`{"students": "not a list"}`), &bad); err != nil {
		out.Printf("\nDecoding into the wrong shape fails: %v\n", err)
	}
}

func yamlFiles(env *lesson.Env) {
	out := env.Out
	yamlFile := path(env, YAMLFile)

	if err := writeYAML(yamlFile, roster); err != nil {
		out.Printf("Error writing YAML: %v\n", err)
		return
	}
	out.Printf("Created YAML file: %s\n", YAMLFile)

	data, err := os.ReadFile(yamlFile)
	if err != nil {
		out.Printf("Error reading YAML: %v\n", err)
		return
	}
	out.Printf("\nYAML document:\n%s", data)

	var loaded Roster
	if err := readYAML(yamlFile, &loaded); err != nil {
		out.Printf("Error reading YAML: %v\n", err)
		return
	}
	out.Printf("Loaded %d students, first is %s with grades %v\n",
		len(loaded.Students), loaded.Students[0].Name, loaded.Students[0].Grades)
}

func fileOperations(env *lesson.Env) {
	out := env.Out

	_, err := os.Stat(path(env, "test.txt"))
	out.Printf("\nFile exists: %t\n", err == nil)

	csvFile := path(env, CSVFile)
	now := env.Now()
	if err := os.Chtimes(csvFile, now, now); err != nil {
		out.Printf("Error setting times: %v\n", err)
	}
	if info, err := os.Stat(csvFile); err == nil {
		out.Printf("File size: %d bytes\n", info.Size())
		out.Printf("Last modified: %s\n", info.ModTime().UTC().Format(time.ANSIC))
	}

	out.Printf("\nFiles in the sample directory:\n")
	entries, err := os.ReadDir(env.SampleDir)
	if err != nil {
		out.Printf("Error listing directory: %v\n", err)
	}
	for _, e := range entries {
		if e.Type().IsRegular() {
			out.Printf("  - %s\n", e.Name())
		}
	}

	out.Println("\nUsing filepath.Glob and os.Stat:")
	info, err := os.Stat(env.SampleDir)
	out.Printf("Directory exists: %t\n", err == nil)
	out.Printf("Is directory: %t\n", err == nil && info.IsDir())
	matches, _ := filepath.Glob(filepath.Join(env.SampleDir, "*.*"))
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
			out.Printf("  - %s (%d bytes, ext %s)\n", filepath.Base(m), fi.Size(), filepath.Ext(m))
		}
	}
}

// describeOpenError classifies err the way the lesson reports it.
func describeOpenError(err error) string {
	switch {
	case err == nil:
		return "no error"
	case errors.Is(err, fs.ErrNotExist):
		return "Error: File not found"
	case errors.Is(err, fs.ErrPermission):
		return "Error: Permission denied"
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("Error: %s: %v", pathErr.Op, pathErr.Err)
	}
	return "Error: " + err.Error()
}

func errorHandling(env *lesson.Env) {
	out := env.Out

	out.Println("\nHandling a missing file (fs.ErrNotExist):")
	_, err := os.ReadFile(path(env, "nonexistent.txt"))
	out.Printf("  %s\n", describeOpenError(err))

	out.Println("\nHandling a permission error (fs.ErrPermission):")
	protected := path(env, protectedFile)
	if err := os.WriteFile(protected, []byte("secret\n"), 0o000); err != nil {
		out.Printf("  Could not create the protected file: %v\n", err)
	} else {
		_, err := os.ReadFile(protected)
		if err == nil {
			out.Println("  Error: Permission denied (simulated: this user bypasses file permissions)")
		} else {
			out.Printf("  %s\n", describeOpenError(err))
		}
		_ = os.Remove(protected)
	}

	out.Println("\nHandling a general error (*fs.PathError):")
	_, err = os.ReadFile(env.SampleDir)
	out.Printf("  %s\n", describeOpenError(err))
}

func practical(env *lesson.Env) {
	out := env.Out
	csvFile := path(env, CSVFile)

	out.Println("\nExample 1: Read CSV and filter Engineering employees")
	rows, err := readDicts(csvFile)
	if err != nil {
		out.Printf("  Error: %v\n", err)
	}
	for _, row := range rows {
		if row["Department"] == "Engineering" {
			out.Printf("  %s: $%s\n", row["Name"], row["Salary"])
		}
	}

	out.Println("\nExample 2: Convert CSV to JSON format")
	converted := make([]Employee, 0, len(rows))
	for _, row := range rows {
		e, err := employeeFromRow(row)
		if err != nil {
			out.Printf("  Error: %v\n", err)
			continue
		}
		converted = append(converted, e)
	}
	if err := writeJSON(path(env, EmployeesJSON), converted); err != nil {
		out.Printf("  Error: %v\n", err)
	} else {
		out.Printf("  Converted %d rows and saved to %s\n", len(converted), EmployeesJSON)
	}

	out.Println("\nExample 3: Writing log file")
	var b strings.Builder
	for i := range 3 {
		ts := env.Now().Add(time.Duration(i) * time.Second).Format(time.DateTime)
		fmt.Fprintf(&b, "[%s] Log entry %d: Application started\n", ts, i+1)
	}
	if err := os.WriteFile(path(env, LogFile), []byte(b.String()), 0o644); err != nil {
		out.Printf("  Error: %v\n", err)
	} else {
		out.Printf("  Log file created: %s\n", LogFile)
	}

	out.Println("\nExample 4: Parse JSON and summarize")
	var loaded Roster
	if err := readJSON(path(env, JSONFile), &loaded); err != nil {
		out.Printf("  Error: %v\n", err)
		return
	}
	total := len(loaded.Students)
	ages, active := 0, 0
	for _, s := range loaded.Students {
		ages += s.Age
		if s.Active {
			active++
		}
	}
	out.Printf("  Total students: %d\n", total)
	out.Printf("  Average age: %.1f\n", float64(ages)/float64(total))
	out.Printf("  Active students: %d\n", active)
}

func deferAndClose(env *lesson.Env) {
	env.Out.Println(`
Benefits of defer f.Close():
1. The file is closed on every return path
2. Open and close sit next to each other
3. Works together with early error returns

Example:
    f, err := os.Open("file.txt")
    if err != nil {
        return err
    }
    defer f.Close()

For writes, also check the error of Close:
    if err := f.Close(); err != nil {
        return err
    }`)
}

const summary = `
os.OpenFile Flags:
- os.O_RDONLY: Read (os.Open)
- os.O_WRONLY|os.O_CREATE|os.O_TRUNC: Write, overwriting (os.Create)
- os.O_APPEND: Append
- os.O_EXCL: Create new file only
- os.O_RDWR: Read and write

Text File Operations:
- os.ReadFile: Read entire file
- bufio.Scanner: Read line by line
- os.WriteFile: Write entire file
- f.WriteString: Write a string

CSV Operations:
- csv.NewReader / ReadAll: Read records
- csv.NewWriter / Write / WriteAll: Write records
- Set Comma to change the delimiter

JSON and YAML Operations:
- json.Marshal / MarshalIndent: Encode values
- json.Unmarshal: Decode into structs or maps
- yaml.Marshal / yaml.Unmarshal: Same API for YAML
- Struct tags choose the field names

Best Practices:
1. Always check errors, including from Close on writes
2. Use defer to close files
3. Use errors.Is with fs.ErrNotExist and fs.ErrPermission
4. Use path/filepath for portable paths
5. Decode into structs rather than map[string]any
6. Use MarshalIndent for human-readable JSON
`
