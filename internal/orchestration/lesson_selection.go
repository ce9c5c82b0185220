package orchestration

import (
	"github.com/agbru/curriculum/internal/config"
	"github.com/agbru/curriculum/internal/lesson"
)

// SelectLessons returns the lessons named by the configuration: the whole
// curriculum for "all", the requested order otherwise.
func SelectLessons(cfg config.AppConfig, registry *lesson.Registry) ([]lesson.Lesson, error) {
	names := cfg.Lessons
	if len(names) == 0 {
		var err error
		if names, err = config.ResolveLessons(cfg.Lesson, registry.List()); err != nil {
			return nil, err
		}
	}
	return registry.Select(names)
}
