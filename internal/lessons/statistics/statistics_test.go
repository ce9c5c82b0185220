package statistics

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	apperrors "github.com/agbru/curriculum/internal/errors"
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

func TestStatisticsOutput(t *testing.T) {
	t.Parallel()
	out := run(t, 42)

	for _, want := range []string{
		"STATISTICS - Descriptive, Correlation, Distributions\n",
		"\nDESCRIPTIVE STATISTICS:\n------------------------------------------------------------\n",
		"  P(Z < 0): 0.5000\n  P(Z < 1): 0.8413\n  P(Z < 2): 0.9772\n",
		"  Std of standardized: 1.000000",
		"  Binomial P(X=5, n=10, p=0.5): 0.2461",
		"  Exponential pdf at x=2: 0.1353",
		"  Chi-square pdf at x=4, df=3: 0.1080",
		"  Before: [85 89 87 90 86]\n  After: [92 94 91 96 93]\n  T-statistic: -9.9469\n",
		"  Chi-square statistic: 4.7250\n  P-value: 0.0297\n  Degrees of freedom: 1\n",
		"  Expected frequencies:\n[[15.0 15.0]\n [20.0 20.0]]\n",
		"Contingency table:\n[[20.0 10.0]\n [15.0 25.0]]\n",
		"Midterm statistics:",
		"Name: count, dtype: int64",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Mean of standardized: -") {
		t.Error("standardized mean printed with a sign")
	}
}

func TestStatisticsSeeded(t *testing.T) {
	t.Parallel()
	if run(t, 5) != run(t, 5) {
		t.Error("equal seeds must produce equal output")
	}
	if run(t, 5) == run(t, 6) {
		t.Error("samples should depend on the seed")
	}
}

func TestStatisticsCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := New().Run(ctx, lesson.NewEnv(&buf, 1, "", nil))
	var le apperrors.LessonError
	if !errors.As(err, &le) || !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want a canceled LessonError", err)
	}
}

func TestGrades(t *testing.T) {
	t.Parallel()
	df := Grades(rand.New(rand.NewPCG(9, 9)), 50)
	rows, cols := df.Shape()
	if rows != 50 || cols != 4 {
		t.Fatalf("Shape() = (%d, %d), want (50, 4)", rows, cols)
	}
	for i, v := range df.MustCol("Attendance").Floats() {
		if v < 60 || v >= 100 {
			t.Errorf("attendance[%d] = %v, want [60, 100)", i, v)
		}
	}
	if got := df.MustCol("StudentID").Floats()[49]; got != 50 {
		t.Errorf("last StudentID = %v, want 50", got)
	}
}

func TestPositiveZero(t *testing.T) {
	t.Parallel()
	negZero := 0.0
	negZero = -negZero
	if got := positiveZero(negZero); got != 0 || 1/got < 0 {
		t.Errorf("positiveZero(-0) = %v with a negative sign", got)
	}
	if got := positiveZero(-1.5); got != -1.5 {
		t.Errorf("positiveZero(-1.5) = %v", got)
	}
}
