package framesadv

import (
	"bytes"
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/curriculum/internal/lesson"
)

func run(t *testing.T, seed uint64) string {
	t.Helper()
	var buf bytes.Buffer
	if err := New().Run(context.Background(), lesson.NewEnv(&buf, seed, "", nil)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return buf.String()
}

func TestFramesAdvancedOutput(t *testing.T) {
	t.Parallel()
	out := run(t, 42)

	for _, want := range []string{
		"DATAFRAMES ADVANCED - GroupBy, Merge, Pivot Tables\n",
		"\nGROUPBY OPERATIONS:\n------------------------------------------------------------\n",
		"Engineering  94333.333333\nMarketing    85000.000000\nSales        73500.000000\nName: Salary, dtype: float64",
		"Engineering  8000.0\nMarketing       0.0\nSales        3000.0\nName: SalaryRange, dtype: float64",
		"Age    No  Yes\nOld     1    3\nYoung   2    2\n",
		"Color categories: [red blue green yellow]",
		"Size is ordered: true",
		"Size codes: [0 1 2 1 0]",
		"M < L: true",
		"red     2\nblue    2\ngreen   1\nyellow  0\nName: count, dtype: int64",
		"Bob Smith",
		"example.com",
		"Budget_x",
		"Analysed 100 daily records.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFramesAdvancedSeeded(t *testing.T) {
	t.Parallel()
	if run(t, 11) != run(t, 11) {
		t.Error("equal seeds must produce equal output")
	}
	if run(t, 11) == run(t, 12) {
		t.Error("the sales pipeline should depend on the seed")
	}
}

func TestExperienceLevel(t *testing.T) {
	t.Parallel()
	got, err := ExperienceLevel(Employees().MustCol("YearsExperience"))
	if err != nil {
		t.Fatalf("ExperienceLevel() error = %v", err)
	}
	want := []string{"Mid", "Junior", "Mid", "Mid", "Junior", "Senior"}
	if !slices.Equal(got.Strings(), want) {
		t.Errorf("ExperienceLevel() = %v, want %v", got.Strings(), want)
	}
}

func TestSalaryRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{85000}, 0},
		{"spread", []float64{95000, 90000, 98000}, 8000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SalaryRange(tt.in); got != tt.want {
				t.Errorf("SalaryRange(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRandomSalesBounds(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(nil)
	properties.Property("sales and quantities stay in range", prop.ForAll(
		func(seed uint64, n int) bool {
			r := rand.New(rand.NewPCG(seed, seed))
			df := RandomSales(r.IntN, n)
			rows, cols := df.Shape()
			if rows != n || cols != 6 {
				return false
			}
			for _, v := range df.MustCol("Sales").Floats() {
				if v < 1000 || v >= 5000 {
					return false
				}
			}
			for _, v := range df.MustCol("Quantity").Floats() {
				if v < 1 || v >= 20 {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
		gen.IntRange(1, 120),
	))
	properties.TestingRun(t)
}

func TestRandomSalesMonths(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 1))
	months := RandomSales(r.IntN, 100).MustCol("Month").Strings()
	if months[0] != "2023-01" || months[99] != "2023-04" {
		t.Errorf("months span %s..%s, want 2023-01..2023-04", months[0], months[99])
	}
}
