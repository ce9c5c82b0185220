package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/curriculum/internal/config"
	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/sysmon"
)

func testLessons() []lesson.Lesson {
	hello := &lesson.Script{
		LessonName:  "hello",
		LessonTitle: "Greetings",
		Sections: []lesson.Section{{
			Title: "GREETING",
			Show:  func(env *lesson.Env) { env.Out.Println("Hello, Alice!") },
		}},
		Summary: "Printing is easy.",
	}
	broken := &lesson.Script{
		LessonName:  "broken",
		LessonTitle: "Cannot start",
		Setup:       func(*lesson.Env) error { return errors.New("no sample dir") },
	}
	return []lesson.Lesson{hello, broken}
}

func sized(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), testLessons(), config.AppConfig{Seed: 1}, "v1.2.0")
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return tm.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runDone executes the commands of a batch until it finds the run result.
func runDone(t *testing.T, cmd tea.Cmd) RunDoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("no command returned")
	}
	switch msg := cmd().(type) {
	case RunDoneMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if done, ok := c().(RunDoneMsg); ok {
				return done
			}
		}
	}
	t.Fatal("no RunDoneMsg produced")
	return RunDoneMsg{}
}

func TestModelInitialView(t *testing.T) {
	t.Parallel()
	if got := NewModel(context.Background(), testLessons(), config.AppConfig{}, "dev").View(); got != "Initializing..." {
		t.Errorf("View() before sizing = %q", got)
	}
	view := sized(t).View()
	for _, want := range []string{"Course Browser v1.2.0", "seed 1", "Lessons", "1. hello", "Greetings", "Select a lesson", "2 lessons"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelRunsSelectedLesson(t *testing.T) {
	t.Parallel()
	m := sized(t)
	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)
	if !m.running || m.generation != 1 {
		t.Fatalf("running = %v, generation = %d", m.running, m.generation)
	}
	done := runDone(t, cmd)
	tm, _ = m.Update(done)
	m = tm.(Model)

	if m.running {
		t.Error("run still marked as running")
	}
	if !strings.Contains(m.output.View(), "Hello, Alice!") {
		t.Errorf("output pane = %q", m.output.View())
	}
	if !strings.Contains(m.status, "hello finished in") {
		t.Errorf("status = %q", m.status)
	}
	if m.ExitCode() != apperrors.ExitSuccess {
		t.Errorf("ExitCode() = %d", m.ExitCode())
	}
	if m.history.buf.Len() != 1 {
		t.Errorf("history holds %d durations, want 1", m.history.buf.Len())
	}
}

func TestModelRunAllReportsFailures(t *testing.T) {
	t.Parallel()
	m := sized(t)
	tm, cmd := m.Update(runes("a"))
	m = tm.(Model)
	done := runDone(t, cmd)
	if len(done.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(done.Results))
	}
	tm, _ = m.Update(done)
	m = tm.(Model)
	if m.ExitCode() != apperrors.ExitErrorLesson {
		t.Errorf("ExitCode() = %d, want %d", m.ExitCode(), apperrors.ExitErrorLesson)
	}
	if !strings.Contains(m.status, "1 of 2 lesson(s) failed") {
		t.Errorf("status = %q", m.status)
	}
	if item := m.lessons.Items()[1].(lessonItem); !strings.Contains(item.Title(), "failed") {
		t.Errorf("broken item title = %q", item.Title())
	}
}

func TestModelIgnoresStaleMessages(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m.generation = 3
	tm, _ := m.Update(RunDoneMsg{Generation: 2, Output: "old"})
	if strings.Contains(tm.(Model).output.View(), "old") {
		t.Error("stale run replaced the output")
	}
	tm, _ = m.Update(ProgressMsg{Generation: 2, Completed: 1, Total: 2, Last: "x"})
	if strings.Contains(tm.(Model).status, "Running") {
		t.Error("stale progress updated the status")
	}
}

func TestModelKeys(t *testing.T) {
	t.Parallel()
	m := sized(t)

	tm, _ := m.Update(runes("+"))
	m = tm.(Model)
	tm, _ = m.Update(runes("+"))
	m = tm.(Model)
	tm, _ = m.Update(runes("-"))
	m = tm.(Model)
	if m.config.Seed != 2 || !strings.Contains(m.header.View(), "seed 2") {
		t.Errorf("seed = %d, header %q", m.config.Seed, m.header.View())
	}

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = tm.(Model)
	if !m.focusOutput {
		t.Error("tab did not focus the output pane")
	}

	tm, _ = m.Update(runes("?"))
	if !tm.(Model).help.ShowAll {
		t.Error("? did not expand the help")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestModelNavigation(t *testing.T) {
	t.Parallel()
	m := sized(t)
	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = tm.(Model)
	if item := m.lessons.SelectedItem().(lessonItem); item.lesson.Name() != "broken" {
		t.Errorf("selected %q after down, want broken", item.lesson.Name())
	}
}

func TestModelShowsSystemLoad(t *testing.T) {
	t.Parallel()
	m := sized(t)
	if _, cmd := m.Update(TickMsg{}); cmd != nil {
		t.Error("idle browser should not keep ticking")
	}

	fake := func() sysmon.Stats { return sysmon.Stats{CPUPercent: 12, MemPercent: 34} }
	msg := sampleSysStatsCmd(fake)()
	tm, _ := m.Update(msg)
	if view := tm.(Model).View(); !strings.Contains(view, "cpu 12% mem 34%") {
		t.Errorf("header missing the system sample:\n%s", view)
	}
}

func TestModelDropsTicksOfEarlierRuns(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m.running = true
	m.generation = 2
	m.sample = func() sysmon.Stats { return sysmon.Stats{} }

	if _, cmd := m.Update(TickMsg{Generation: 1}); cmd != nil {
		t.Error("tick of a replaced run kept its chain alive")
	}
	if _, cmd := m.Update(TickMsg{Generation: 2}); cmd == nil {
		t.Error("tick of the current run should schedule the next one")
	}
}
