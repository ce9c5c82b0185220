package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("lesson", "basics"), "lesson", "basics"},
		{"Int", Int("sections", 9), "sections", 9},
		{"Uint64", Uint64("seed", 42), "seed", uint64(42)},
		{"Float64", Float64("ms", 1.5), "ms", 1.5},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}

	errBoom := errors.New("boom")
	if f := Err(errBoom); f.Key != "error" || f.Value != errBoom {
		t.Errorf("Err(errBoom) = %+v", f)
	}
}

// TestNewLogger tests the component-tagged logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "runner")
	logger.Info("lesson finished", String("lesson", "files"), Int("bytes", 2048))

	output := buf.String()
	for _, want := range []string{"runner", "lesson finished", "files", "2048", "info"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

// TestZerologAdapter_Error tests the Error method.
func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{"with error", errors.New("permission denied"), []string{"sample write failed", "permission denied", "error"}},
		{"with nil error", nil, []string{"sample write failed", "error"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Error("sample write failed", tt.err, String("path", "/tmp/x"))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

// TestZerologAdapter_Debug verifies debug entries honour the logger level.
func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)).Debug("section", String("title", "LISTS"))
	if !strings.Contains(buf.String(), "LISTS") {
		t.Errorf("debug output missing field, got: %s", buf.String())
	}

	buf.Reset()
	NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel)).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry should be filtered at info level, got: %s", buf.String())
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

// TestStdLoggerAdapter covers the prefixes written by the std adapter.
func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

	adapter.Info("started", String("lesson", "sql"))
	adapter.Debug("row", Int("id", 3))
	adapter.Error("failed", errors.New("boom"))
	adapter.Printf("value is %d", 123)
	adapter.Println("a", "b")

	output := buf.String()
	for _, want := range []string{"[INFO] started lesson=sql", "[DEBUG] row id=3", "[ERROR] failed: boom", "value is 123", "a b"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

// TestLoggerInterface verifies both adapters implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
	Discard.Info("dropped")
}
