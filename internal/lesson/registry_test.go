package lesson

import (
	"context"
	"errors"
	"slices"
	"testing"

	apperrors "github.com/agbru/curriculum/internal/errors"
)

func stub(name string) Lesson {
	return &Script{LessonName: name, LessonTitle: name + " title"}
}

func TestRegistryKeepsCurriculumOrder(t *testing.T) {
	t.Parallel()
	r := NewRegistry(stub("zeta"), stub("alpha"), stub("mid"))

	if got, want := r.List(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if len(r.All()) != 3 {
		t.Errorf("All() returned %d lessons", len(r.All()))
	}
}

func TestRegistryRegisterErrors(t *testing.T) {
	t.Parallel()
	r := NewRegistry(stub("basics"))

	if err := r.Register(stub("basics")); err == nil {
		t.Error("duplicate registration should fail")
	}
	if err := r.Register(stub("")); err == nil {
		t.Error("empty name should fail")
	}
	if err := r.Register(nil); err == nil {
		t.Error("nil lesson should fail")
	}
}

func TestRegistryGet(t *testing.T) {
	t.Parallel()
	r := NewRegistry(stub("basics"), stub("files"))

	l, err := r.Get("files")
	if err != nil || l.Name() != "files" {
		t.Fatalf("Get(files) = %v, %v", l, err)
	}
	if _, err := r.Get("pandas"); !errors.Is(err, apperrors.ErrUnknownLesson) {
		t.Errorf("Get(pandas) error = %v, want ErrUnknownLesson", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet should panic on unknown lessons")
		}
	}()
	r.MustGet("pandas")
}

func TestRegistrySelect(t *testing.T) {
	t.Parallel()
	r := NewRegistry(stub("a"), stub("b"), stub("c"))

	got, err := r.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Name() != "c" || got[1].Name() != "a" {
		t.Errorf("Select kept wrong order: %s, %s", got[0].Name(), got[1].Name())
	}
	if _, err := r.Select([]string{"a", "x"}); err == nil {
		t.Error("Select with unknown name should fail")
	}
}

func TestScriptRunHonoursCancellation(t *testing.T) {
	t.Parallel()
	var ran []string
	s := &Script{
		LessonName: "demo",
		Sections: []Section{
			{Title: "ONE", Show: func(*Env) { ran = append(ran, "one") }},
			{Title: "TWO", Show: func(*Env) { ran = append(ran, "two") }},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx, NewEnv(&discard{}, 1, "", nil))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	var lessonErr apperrors.LessonError
	if !errors.As(err, &lessonErr) || lessonErr.Lesson != "demo" {
		t.Errorf("error should be a LessonError for demo, got %v", err)
	}
	if len(ran) != 0 {
		t.Errorf("no section should run after cancellation, ran %v", ran)
	}
}

func TestScriptRunSetupFailure(t *testing.T) {
	t.Parallel()
	s := &Script{
		LessonName: "files",
		Setup:      func(*Env) error { return errors.New("mkdir denied") },
		Sections:   []Section{{Title: "X", Show: func(*Env) { t.Error("section must not run") }}},
	}
	if err := s.Run(context.Background(), NewEnv(&discard{}, 1, "", nil)); err == nil {
		t.Fatal("expected setup error")
	}
}

type discard struct{}

func (*discard) Write(b []byte) (int, error) { return len(b), nil }
