package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/curriculum into a temporary directory.
// go test runs in the package directory, so the module root is two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "curriculum"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/curriculum")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build curriculum: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	binPath := buildBinary(t)
	sampleDir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		wantOut  string // case-insensitive substring of stdout+stderr
		wantCode int
	}{
		{"Help", []string{"--help"}, "usage", 0},
		{"Version", []string{"--version"}, "curriculum", 0},
		{"List", []string{"--list"}, "frames-advanced", 0},
		{"Basics", []string{"--lesson", "basics"}, "SUMMARY", 0},
		{"Files", []string{"--lesson", "files", "--sample-dir", sampleDir}, "employees.csv", 0},
		{"SQL", []string{"--lesson", "sql", "--quiet"}, "JOIN", 0},
		{"Unknown lesson", []string{"--lesson", "nope"}, "unknown lesson", 4},
		{"Completion", []string{"--completion", "fish"}, "complete -c curriculum", 0},
		{"Bad jobs", []string{"--jobs", "0"}, "--jobs", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}

// TestCLI_Deterministic runs every lesson but the file lesson, whose output
// carries real file timestamps, twice with the same seed and compares stdout.
func TestCLI_Deterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	binPath := buildBinary(t)
	const deterministicLessons = "basics,controlflow,functions,collections,types,arrays,frames,frames-advanced,statistics,sql"
	run := func(jobs string) string {
		cmd := exec.Command(binPath, "--lesson", deterministicLessons, "--seed", "7", "--jobs", jobs, "--quiet")
		cmd.Env = append(os.Environ(), "NO_COLOR=1")
		out, err := cmd.Output()
		if err != nil {
			t.Fatalf("curriculum --jobs %s: %v", jobs, err)
		}
		return string(out)
	}
	if a, b := run("1"), run("4"); a != b {
		t.Error("stdout differs between runs with the same seed")
	}
}
