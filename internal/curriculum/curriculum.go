// Package curriculum assembles the lessons in the order they are taught.
package curriculum

import (
	"github.com/agbru/curriculum/internal/lesson"
	"github.com/agbru/curriculum/internal/lessons/arrays"
	"github.com/agbru/curriculum/internal/lessons/basics"
	"github.com/agbru/curriculum/internal/lessons/collections"
	"github.com/agbru/curriculum/internal/lessons/controlflow"
	"github.com/agbru/curriculum/internal/lessons/files"
	"github.com/agbru/curriculum/internal/lessons/frames"
	"github.com/agbru/curriculum/internal/lessons/framesadv"
	"github.com/agbru/curriculum/internal/lessons/functions"
	"github.com/agbru/curriculum/internal/lessons/sqlbasics"
	"github.com/agbru/curriculum/internal/lessons/statistics"
	"github.com/agbru/curriculum/internal/lessons/types"
)

// Lessons returns a fresh instance of every lesson in curriculum order:
// programming fundamentals first, then data analysis.
func Lessons() []lesson.Lesson {
	return []lesson.Lesson{
		basics.New(),
		controlflow.New(),
		functions.New(),
		collections.New(),
		files.New(),
		types.New(),
		arrays.New(),
		frames.New(),
		framesadv.New(),
		statistics.New(),
		sqlbasics.New(),
	}
}

// NewRegistry returns a registry holding the whole curriculum.
func NewRegistry() *lesson.Registry {
	return lesson.NewRegistry(Lessons()...)
}
