package orchestration

import (
	"testing"

	"github.com/agbru/curriculum/internal/config"
	"github.com/agbru/curriculum/internal/lesson"
)

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n       int
		wantNil bool
	}{
		{3, false},
		{1, false},
		{0, true},
		{-1, true},
	}
	for _, tt := range tests {
		agg := NewProgressAggregator(tt.n)
		if (agg == nil) != tt.wantNil {
			t.Errorf("NewProgressAggregator(%d) nil = %v, want %v", tt.n, agg == nil, tt.wantNil)
			continue
		}
		if agg != nil && agg.NumLessons() != tt.n {
			t.Errorf("NumLessons() = %d, want %d", agg.NumLessons(), tt.n)
		}
	}
}

func TestProgressAggregatorUpdate(t *testing.T) {
	t.Parallel()
	agg := NewProgressAggregator(4)
	got := agg.Update(ProgressUpdate{Index: 2, Name: "files", Value: 1})
	if got.Completed != 1 || got.Name != "files" || got.Index != 2 {
		t.Errorf("Update() = %+v", got)
	}
	if got.AverageProgress != 0.25 {
		t.Errorf("AverageProgress = %v, want 0.25", got.AverageProgress)
	}
	agg.Update(ProgressUpdate{Index: 0, Value: 0.5})
	got = agg.Update(ProgressUpdate{Index: 1, Value: 1})
	if got.Completed != 2 {
		t.Errorf("Completed = %d, want 2", got.Completed)
	}
	if avg := agg.CalculateAverage(); avg != 0.625 {
		t.Errorf("CalculateAverage() = %v, want 0.625", avg)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan ProgressUpdate, 3)
	ch <- ProgressUpdate{Index: 0, Value: 1}
	ch <- ProgressUpdate{Index: 1, Value: 1}
	close(ch)
	DrainChannel(ch)
	if len(ch) != 0 {
		t.Errorf("%d updates left after DrainChannel", len(ch))
	}
}

func TestSelectLessons(t *testing.T) {
	t.Parallel()
	reg := lesson.NewRegistry(&fakeLesson{name: "basics"}, &fakeLesson{name: "files"}, &fakeLesson{name: "sql"})
	tests := []struct {
		name    string
		cfg     config.AppConfig
		want    []string
		wantErr bool
	}{
		{"all", config.AppConfig{Lesson: "all"}, []string{"basics", "files", "sql"}, false},
		{"resolved names win", config.AppConfig{Lesson: "all", Lessons: []string{"sql"}}, []string{"sql"}, false},
		{"list keeps the requested order", config.AppConfig{Lesson: "sql,basics"}, []string{"sql", "basics"}, false},
		{"unknown", config.AppConfig{Lesson: "nope"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SelectLessons(tt.cfg, reg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SelectLessons() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SelectLessons() returned %d lessons, want %d", len(got), len(tt.want))
			}
			for i, l := range got {
				if l.Name() != tt.want[i] {
					t.Errorf("lesson %d = %s, want %s", i, l.Name(), tt.want[i])
				}
			}
		})
	}
}
