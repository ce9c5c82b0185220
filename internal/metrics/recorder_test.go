package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecorderWriteToTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveLesson("basics", 3*time.Millisecond, nil)
	r.ObserveLesson("basics", 2*time.Millisecond, nil)
	r.ObserveLesson("files", time.Millisecond, errors.New("no sample dir"))
	r.ObserveRun(10 * time.Millisecond)

	path := filepath.Join(t.TempDir(), "run.prom")
	if err := r.WriteToTextfile(path); err != nil {
		t.Fatalf("WriteToTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		`curriculum_lessons_run_total{lesson="basics",status="success"} 2`,
		`curriculum_lessons_run_total{lesson="files",status="failure"} 1`,
		`curriculum_lesson_duration_seconds_count{lesson="basics"} 2`,
		"curriculum_run_duration_seconds 0.01",
		"curriculum_memory_heap_alloc_bytes",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics file missing %q", want)
		}
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	t.Parallel()
	a, b := NewRecorder(), NewRecorder()
	a.ObserveLesson("sql", time.Millisecond, nil)
	families, err := b.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range families {
		if f.GetName() == "curriculum_lessons_run_total" && len(f.GetMetric()) != 0 {
			t.Error("a fresh recorder already has lesson counts")
		}
	}
}

func TestWriteToTextfileEmptyPath(t *testing.T) {
	t.Parallel()
	if err := NewRecorder().WriteToTextfile(""); err == nil {
		t.Error("WriteToTextfile(\"\") succeeded")
	}
}
