package lesson

import (
	"fmt"
	"sync"

	apperrors "github.com/agbru/curriculum/internal/errors"
)

// Registry holds lessons in registration (curriculum) order.
type Registry struct {
	mu      sync.RWMutex
	lessons []Lesson
	byName  map[string]Lesson
}

// NewRegistry returns a registry pre-filled with lessons.
// It panics on duplicate names, like Register.
func NewRegistry(lessons ...Lesson) *Registry {
	r := &Registry{byName: make(map[string]Lesson)}
	for _, l := range lessons {
		if err := r.Register(l); err != nil {
			panic(err)
		}
	}
	return r
}

// Register appends l to the curriculum.
func (r *Registry) Register(l Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l == nil || l.Name() == "" {
		return fmt.Errorf("lesson must have a name")
	}
	if _, exists := r.byName[l.Name()]; exists {
		return fmt.Errorf("lesson %q already registered", l.Name())
	}
	r.byName[l.Name()] = l
	r.lessons = append(r.lessons, l)
	return nil
}

// Get returns the lesson registered under name.
func (r *Registry) Get(name string) (Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownLesson, name)
	}
	return l, nil
}

// MustGet is like Get but panics on unknown names.
func (r *Registry) MustGet(name string) Lesson {
	l, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return l
}

// List returns the lesson names in curriculum order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.lessons))
	for i, l := range r.lessons {
		names[i] = l.Name()
	}
	return names
}

// All returns the lessons in curriculum order.
func (r *Registry) All() []Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Lesson(nil), r.lessons...)
}

// Select returns the named lessons in the given order.
func (r *Registry) Select(names []string) ([]Lesson, error) {
	out := make([]Lesson, 0, len(names))
	for _, name := range names {
		l, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
