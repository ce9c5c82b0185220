package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/curriculum/internal/config"
	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/format"
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/orchestration"
	"github.com/agbru/curriculum/internal/sysmon"
)

// Layout constants.
const (
	headerHeight  = 1
	footerHeight  = 2
	minBodyHeight = 6
	minListWidth  = 28
	historySize   = 24
)

const welcomeText = "Select a lesson and press enter to run it.\n" +
	"Press a to run the whole curriculum, tab to scroll this pane.\n"

// lessonItem is a list entry. It implements list.DefaultItem.
type lessonItem struct {
	lesson lesson.Lesson
	index  int
	status string
}

func (i lessonItem) Title() string {
	t := fmt.Sprintf("%2d. %s", i.index+1, i.lesson.Name())
	if i.status != "" {
		t += "  " + i.status
	}
	return t
}

func (i lessonItem) Description() string { return i.lesson.Title() }
func (i lessonItem) FilterValue() string { return i.lesson.Name() }

// ExecutionState tracks the run started from the browser, if any.
type ExecutionState struct {
	cancel     context.CancelFunc
	generation uint64
	running    bool
	progress   ProgressMsg
	exitCode   int
}

// LayoutManager holds the terminal size and derives panel sizes.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) listWidth() int {
	return max(l.width/3, minListWidth)
}

func (l LayoutManager) outputWidth() int {
	return max(l.width-l.listWidth(), 10)
}

// Model is the root bubbletea model of the lesson browser.
type Model struct {
	header  HeaderModel
	lessons list.Model
	output  viewport.Model
	help    help.Model
	keymap  KeyMap
	history DurationHistory

	ExecutionState
	LayoutManager

	parentCtx   context.Context
	config      config.AppConfig
	ref         *programRef
	focusOutput bool
	status      string
	sample      sysmon.Sampler
}

// NewModel creates a browser over lessons, in curriculum order.
func NewModel(parentCtx context.Context, lessons []lesson.Lesson, cfg config.AppConfig, version string) Model {
	items := make([]list.Item, len(lessons))
	for i, l := range lessons {
		items[i] = lessonItem{lesson: l, index: i}
	}
	lst := list.New(items, list.NewDefaultDelegate(), minListWidth, minBodyHeight)
	lst.Title = "Lessons"
	lst.SetShowHelp(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.KeyMap.Quit.SetEnabled(false)

	out := viewport.New(40, minBodyHeight)
	out.SetContent(welcomeText)

	return Model{
		header:         NewHeaderModel(version, cfg.Seed),
		lessons:        lst,
		output:         out,
		help:           help.New(),
		keymap:         DefaultKeyMap(),
		history:        NewDurationHistory(historySize),
		ExecutionState: ExecutionState{exitCode: apperrors.ExitSuccess},
		parentCtx:      parentCtx,
		config:         cfg,
		ref:            &programRef{},
		status:         fmt.Sprintf("%d lessons", len(lessons)),
		sample:         sysmon.Sample,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation && m.running {
			m.progress = msg
			m.status = fmt.Sprintf("Running %d/%d (last: %s)", msg.Completed, msg.Total, msg.Last)
		}
		return m, nil

	case RunDoneMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		return m.finishRun(msg), nil

	case TickMsg:
		if m.running && msg.Generation == m.generation {
			return m, tea.Batch(tickCmd(m.generation), sampleSysStatsCmd(m.sample))
		}
		return m, nil

	case SysStatsMsg:
		m.header.SetSysStats(sysmon.Stats(msg))
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layoutPanels()
		return m, nil

	case key.Matches(msg, m.keymap.Focus):
		m.focusOutput = !m.focusOutput
		return m, nil

	case key.Matches(msg, m.keymap.SeedUp):
		m.config.Seed++
		m.header.SetSeed(m.config.Seed)
		return m, nil

	case key.Matches(msg, m.keymap.SeedDown):
		m.config.Seed--
		m.header.SetSeed(m.config.Seed)
		return m, nil

	case key.Matches(msg, m.keymap.Run):
		item, ok := m.lessons.SelectedItem().(lessonItem)
		if !ok {
			return m, nil
		}
		return m.startRun([]lesson.Lesson{item.lesson})

	case key.Matches(msg, m.keymap.RunAll):
		all := make([]lesson.Lesson, 0, len(m.lessons.Items()))
		for _, it := range m.lessons.Items() {
			all = append(all, it.(lessonItem).lesson)
		}
		return m.startRun(all)
	}

	var cmd tea.Cmd
	if m.focusOutput {
		m.output, cmd = m.output.Update(msg)
	} else {
		m.lessons, cmd = m.lessons.Update(msg)
	}
	return m, cmd
}

// startRun cancels any run in flight and starts a new generation.
func (m Model) startRun(lessons []lesson.Lesson) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	var ctx context.Context
	var cancel context.CancelFunc
	if m.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(m.parentCtx, m.config.Timeout)
	} else {
		ctx, cancel = context.WithCancel(m.parentCtx)
	}
	m.cancel = cancel
	m.running = true
	m.progress = ProgressMsg{Total: len(lessons)}
	m.status = fmt.Sprintf("Running %d lesson(s)...", len(lessons))
	m.header.Start()

	cfg := m.config
	cfg.Jobs = max(cfg.Jobs, 1)
	return m, tea.Batch(runCmd(ctx, cancel, m.ref, lessons, cfg, m.generation), tickCmd(m.generation))
}

func (m Model) finishRun(msg RunDoneMsg) Model {
	m.running = false
	m.cancel = nil
	m.header.Stop()

	failed := 0
	for _, r := range msg.Results {
		m.history.Add(r.Duration)
		status := successStyle.Render("ok")
		if r.Err != nil {
			failed++
			status = errorStyle.Render("failed")
		}
		m.setItemStatus(r.Name, status)
	}

	content := msg.Output
	if msg.Err != nil {
		content += "\n" + msg.Err.Error() + "\n"
	}
	for _, r := range msg.Results {
		if r.Err != nil {
			content += fmt.Sprintf("\n%s: %v\n", r.Name, r.Err)
		}
	}
	m.output.SetContent(content)
	m.output.GotoTop()
	m.focusOutput = true

	switch {
	case failed > 0:
		m.exitCode = apperrors.ExitErrorLesson
		m.status = fmt.Sprintf("%d of %d lesson(s) failed", failed, len(msg.Results))
	case len(msg.Results) == 1:
		m.status = fmt.Sprintf("%s finished in %s", msg.Results[0].Name, format.FormatExecutionDuration(msg.Results[0].Duration))
	default:
		m.status = fmt.Sprintf("%d lessons finished", len(msg.Results))
	}
	return m
}

func (m *Model) setItemStatus(name, status string) {
	for i, it := range m.lessons.Items() {
		item := it.(lessonItem)
		if item.lesson.Name() == name {
			item.status = status
			m.lessons.SetItem(i, item)
			return
		}
	}
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	body := m.bodyHeight()
	m.lessons.SetSize(m.listWidth()-2, body-2)
	m.output.Width = m.outputWidth() - 2
	m.output.Height = body - 2
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	listPanel, outPanel := focusedPanelStyle, panelStyle
	if m.focusOutput {
		listPanel, outPanel = panelStyle, focusedPanelStyle
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPanel.Width(m.listWidth()-2).Height(m.bodyHeight()-2).Render(m.lessons.View()),
		outPanel.Width(m.outputWidth()-2).Height(m.bodyHeight()-2).Render(m.output.View()),
	)

	status := m.status
	if spark := m.history.Sparkline(); spark != "" {
		status += dimStyle.Render("  durations ") + accentStyle.Render(spark)
	}
	if m.output.TotalLineCount() > m.output.Height {
		status += dimStyle.Render(fmt.Sprintf("  %3.0f%%", m.output.ScrollPercent()*100))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		status,
		m.help.View(m.keymap),
	)
}

// ExitCode returns ExitErrorLesson when any run of the session had a
// failing lesson.
func (m Model) ExitCode() int {
	return m.exitCode
}

func runCmd(ctx context.Context, cancel context.CancelFunc, ref *programRef, lessons []lesson.Lesson, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		var buf bytes.Buffer
		results, err := orchestration.ExecuteLessons(ctx, lessons, cfg, &buf, orchestration.ExecOptions{
			Reporter: &TUIProgressReporter{ref: ref, generation: gen},
		})
		return RunDoneMsg{Generation: gen, Output: strings.TrimLeft(buf.String(), "\n"), Results: results, Err: err}
	}
}

// sampleSysStatsCmd samples system load off the UI goroutine.
func sampleSysStatsCmd(sample sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sample())
	}
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Generation: gen, Time: t}
	})
}

// Run starts the browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, lessons []lesson.Lesson, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, lessons, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	final, err := p.Run()
	if m, ok := final.(Model); ok && m.cancel != nil {
		m.cancel()
	}
	switch {
	case ctx.Err() != nil:
		return apperrors.ExitErrorCanceled
	case err != nil && !errors.Is(err, tea.ErrProgramKilled):
		return apperrors.ExitErrorGeneric
	}
	if m, ok := final.(Model); ok {
		return m.ExitCode()
	}
	return apperrors.ExitSuccess
}
