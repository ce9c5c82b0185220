package basics

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

func TestBasicsOutput(t *testing.T) {
	t.Parallel()
	out := runLesson(t)

	tests := []struct {
		name string
		want string
	}{
		{"first banner", "============================================================\nVARIABLES AND DATA TYPES\n"},
		{"type of int", "Age: 28 (Type: int)"},
		{"integer division", "Integer Division: 15 / 4 = 3"},
		{"float division", "Division (float): 15 / 4 = 3.75"},
		{"power", "Exponentiation: 15 ^ 4 = 50625"},
		{"logical", "Can drive (age >= 18 && hasLicense): true"},
		{"slicing", "Characters 0-4: 'Hello'"},
		{"every second", "Every 2nd character: 'HloWrd'"},
		{"title case", "Title case: 'Hello World'"},
		{"grouping", "Locale-aware grouping: 1,234,567"},
		{"conversion error", `Invalid conversion caught: strconv.Atoi: parsing "forty-two": invalid syntax`},
		{"shadowing", "Outside block: x = outer"},
		{"circle area", "Circle area with radius 10: 314.16"},
		{"summary", "SUMMARY\n============================================================\n\nKey Concepts Covered:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q", tt.want)
			}
		})
	}

	if !strings.HasPrefix(out, "====") {
		t.Error("first banner should not be preceded by a blank line")
	}
	if !strings.HasSuffix(out, "gofmt on every file\n\n") {
		t.Errorf("unexpected output tail: %q", out[len(out)-40:])
	}
}

func TestBasicsDeterministic(t *testing.T) {
	t.Parallel()
	if runLesson(t) != runLesson(t) {
		t.Error("two runs produced different output")
	}
}
