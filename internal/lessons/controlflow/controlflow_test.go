package controlflow

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agbru/curriculum/internal/lesson"
)

func runLesson(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := New().Run(context.Background(), lesson.NewEnv(&buf, 42, t.TempDir(), nil)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return buf.String()
}

func TestControlFlowOutput(t *testing.T) {
	t.Parallel()
	out := runLesson(t)

	for _, want := range []string{
		"Score 75: Grade C",
		"Age 17: minor",
		"Saturday: weekend",
		"  case 1\n  case 2\n",
		"Found 7 at index 3",
		"0 2 4 6 8 10 \n",
		"First even number: 8",
		"Breaking at 3",
		"Loop completed normally: false",
		"Found 5 in matrix at (1, 1)",
		"1 2 Fizz 4 Buzz Fizz 7 8 Fizz Buzz 11 Fizz 13 14 FizzBuzz \n",
		"Final Total: 37",
		"Attempt 3: Password entered: secret123\nLogin successful!",
		"2 is prime | 3 is prime | 5 is prime | 7 is prime | 11 is prime | 13 is prime | 17 is prime | 19 is prime | \n",
		"Charlie: 78 - Needs improvement",
		"Value 4 appears 4 times",
		"Even numbers: [2 4 6 8 10]",
		"Squared: [1 4 9 16 25]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "  case 3") {
		t.Error("fallthrough should stop after case 2")
	}
}

func TestGrade(t *testing.T) {
	t.Parallel()
	tests := []struct {
		score int
		want  string
	}{
		{95, "A"}, {90, "A"}, {85, "B"}, {70, "C"}, {60, "D"}, {59, "F"},
	}
	for _, tt := range tests {
		if got := grade(tt.score); got != tt.want {
			t.Errorf("grade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	t.Parallel()
	var primes []int
	for n := range 30 {
		if isPrime(n) {
			primes = append(primes, n)
		}
	}
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(primes) != len(want) {
		t.Fatalf("isPrime found %v, want %v", primes, want)
	}
	for i := range want {
		if primes[i] != want[i] {
			t.Fatalf("isPrime found %v, want %v", primes, want)
		}
	}
}

func TestControlFlowHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := New().Run(ctx, lesson.NewEnv(&buf, 1, "", nil)); err == nil {
		t.Fatal("expected an error from a canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("no section should print after cancellation, got %q", buf.String())
	}
}
