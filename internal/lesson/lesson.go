package lesson

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	apperrors "github.com/agbru/curriculum/internal/errors"
	"github.com/agbru/curriculum/internal/logging"
)

// Lesson is a standalone, independently runnable tutorial.
type Lesson interface {
	// Name is the registry key, e.g. "basics".
	Name() string
	// Title is the human-readable description shown in the catalog.
	Title() string
	// Run prints the lesson to env.Out. It returns an error only when the
	// demonstration itself cannot proceed.
	Run(ctx context.Context, env *Env) error
}

// Env is the complete environment available to a lesson.
type Env struct {
	// Out receives the lesson text.
	Out *Printer
	// Rand is seeded by the runner so that "random" examples are reproducible.
	Rand *rand.Rand
	// SampleDir is the directory the file lesson writes its samples to.
	SampleDir string
	// Now is the clock used for anything time-dependent in the output.
	Now func() time.Time
	// Logger is for diagnostics on stderr, never for lesson text.
	Logger logging.Logger
}

// FixedTime is the instant reported by the default lesson clock.
var FixedTime = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

// NewEnv builds an Env writing to w with a generator seeded by seed and a
// clock frozen at FixedTime.
func NewEnv(w io.Writer, seed uint64, sampleDir string, logger logging.Logger) *Env {
	if logger == nil {
		logger = logging.Discard
	}
	return &Env{
		Out:       NewPrinter(w),
		Rand:      rand.New(rand.NewPCG(seed, seed)),
		SampleDir: sampleDir,
		Now:       func() time.Time { return FixedTime },
		Logger:    logger,
	}
}

// Section is one concept of a Script, printed under its own banner.
type Section struct {
	Title string
	Show  func(env *Env)
}

// Script is a Lesson made of sections run top to bottom, followed by the
// SUMMARY block.
type Script struct {
	LessonName  string
	LessonTitle string
	// Heading, when set, is printed once as a banner and sections are then
	// printed as sub-sections under it.
	Heading string
	// Setup runs before the first section. Its error aborts the lesson.
	Setup    func(env *Env) error
	Sections []Section
	Summary  string
}

func (s *Script) Name() string  { return s.LessonName }
func (s *Script) Title() string { return s.LessonTitle }

// Run prints every section and the summary. Cancellation is honoured
// between sections.
func (s *Script) Run(ctx context.Context, env *Env) error {
	if s.Setup != nil {
		if err := s.Setup(env); err != nil {
			return apperrors.LessonError{Lesson: s.LessonName, Cause: err}
		}
	}

	if s.Heading != "" {
		env.Out.Banner(s.Heading)
	}
	for i, section := range s.Sections {
		if err := ctx.Err(); err != nil {
			return apperrors.LessonError{Lesson: s.LessonName, Cause: err}
		}
		env.Logger.Debug("section",
			logging.String("lesson", s.LessonName),
			logging.Int("index", i+1),
			logging.String("title", section.Title))
		if s.Heading != "" {
			env.Out.Section(section.Title)
		} else {
			env.Out.Banner(section.Title)
		}
		section.Show(env)
	}

	if s.Summary != "" {
		env.Out.Summary(s.Summary)
	}
	if err := env.Out.Err(); err != nil {
		return apperrors.LessonError{Lesson: s.LessonName, Cause: err}
	}
	return nil
}
