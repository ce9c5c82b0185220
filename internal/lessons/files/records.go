package files

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Student is one record of the structured-file examples.
type Student struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Age    int    `json:"age" yaml:"age"`
	Grades []int  `json:"grades" yaml:"grades"`
	Active bool   `json:"active" yaml:"active"`
}

// Average returns the mean grade, or 0 without grades.
func (s Student) Average() float64 {
	if len(s.Grades) == 0 {
		return 0
	}
	total := 0
	for _, g := range s.Grades {
		total += g
	}
	return float64(total) / float64(len(s.Grades))
}

// Roster is the top-level document of students.json and students.yaml.
type Roster struct {
	Students []Student `json:"students" yaml:"students"`
}

// Employee is a row of employees.csv and an element of employees.json.
type Employee struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Salary     int    `json:"salary"`
}

var employeeHeader = []string{"ID", "Name", "Department", "Salary"}

func (e Employee) record() []string {
	return []string{strconv.Itoa(e.ID), e.Name, e.Department, strconv.Itoa(e.Salary)}
}

// writeCSV writes header and rows to path using delim as field separator.
func writeCSV(path string, delim rune, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delim
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

// readRows returns every record of the CSV file at path, header included.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return csv.NewReader(f).ReadAll()
}

// readDicts reads a CSV file keyed by its header row.
func readDicts(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	var out []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = rec[i]
		}
		out = append(out, row)
	}
	return out, nil
}

// employeeFromRow converts a CSV row keyed by header into an Employee.
func employeeFromRow(row map[string]string) (Employee, error) {
	id, err := strconv.Atoi(row["ID"])
	if err != nil {
		return Employee{}, fmt.Errorf("parse ID: %w", err)
	}
	salary, err := strconv.Atoi(row["Salary"])
	if err != nil {
		return Employee{}, fmt.Errorf("parse Salary: %w", err)
	}
	return Employee{ID: id, Name: row["Name"], Department: row["Department"], Salary: salary}, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}
