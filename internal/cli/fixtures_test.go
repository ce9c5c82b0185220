package cli

import (
	"github.com/agbru/curriculum/internal/lesson"
)

// testRegistry returns two tiny lessons; "dice" prints a seeded number.
func testRegistry() *lesson.Registry {
	hello := &lesson.Script{
		LessonName:  "hello",
		LessonTitle: "Greetings",
		Sections: []lesson.Section{{
			Title: "GREETING",
			Show:  func(env *lesson.Env) { env.Out.Println("Hello, Alice!") },
		}},
		Summary: "Printing is easy.",
	}
	dice := &lesson.Script{
		LessonName:  "dice",
		LessonTitle: "Random numbers",
		Sections: []lesson.Section{{
			Title: "ROLL",
			Show:  func(env *lesson.Env) { env.Out.Printf("rolled %d\n", 1+env.Rand.IntN(6)) },
		}},
		Summary: "Seeds make runs repeatable.",
	}
	return lesson.NewRegistry(hello, dice)
}
