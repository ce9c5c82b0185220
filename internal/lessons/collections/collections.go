// Package collections covers slices, arrays, maps and sets.
package collections

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/agbru/curriculum/internal/lesson"
)

// New returns the collections lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "collections",
		LessonTitle: "Slices, arrays, maps and sets",
		Sections: []lesson.Section{
			{Title: "SLICES - Ordered, Growable Sequences", Show: slicesSection},
			{Title: "ARRAYS AND STRUCTS - Fixed-Size Values", Show: arraysSection},
			{Title: "MAPS - Key-Value Mappings", Show: mapsSection},
			{Title: "SETS - Unique Collections", Show: setsSection},
			{Title: "COMPARISON OF DATA STRUCTURES", Show: comparison},
			{Title: "PRACTICAL EXAMPLES", Show: practical},
		},
		Summary: summary,
	}
}

// Set is an unordered collection of unique values.
type Set[T cmp.Ordered] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T cmp.Ordered](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Discard removes v if present.
func (s Set[T]) Discard(v T) { delete(s, v) }

// Contains reports whether v is in s.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the elements in ascending order.
func (s Set[T]) Sorted() []T { return slices.Sorted(maps.Keys(s)) }

func (s Set[T]) Len() int { return len(s) }

// Equal reports whether s and o hold the same elements.
func (s Set[T]) Equal(o Set[T]) bool { return len(s) == len(o) && s.IsSubset(o) }

func (s Set[T]) IsSuperset(o Set[T]) bool { return o.IsSubset(s) }

// IsSubset reports whether every element of s is in o.
func (s Set[T]) IsSubset(o Set[T]) bool {
	for v := range s {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether s and o share no element.
func (s Set[T]) IsDisjoint(o Set[T]) bool {
	return s.Intersection(o).Len() == 0
}

func (s Set[T]) Union(o Set[T]) Set[T] {
	u := maps.Clone(s)
	maps.Copy(u, o)
	return u
}

func (s Set[T]) Intersection(o Set[T]) Set[T] {
	r := Set[T]{}
	for v := range s {
		if o.Contains(v) {
			r.Add(v)
		}
	}
	return r
}

func (s Set[T]) Difference(o Set[T]) Set[T] {
	r := Set[T]{}
	for v := range s {
		if !o.Contains(v) {
			r.Add(v)
		}
	}
	return r
}

func (s Set[T]) SymmetricDifference(o Set[T]) Set[T] {
	return s.Difference(o).Union(o.Difference(s))
}

func slicesSection(env *lesson.Env) {
	out := env.Out
	numbers := []int{1, 2, 3, 4, 5}
	mixed := []any{1, "string", 3.14, true, nil}

	out.Printf("Numbers slice: %v\n", numbers)
	out.Printf("Mixed []any: %v\n", mixed)
	out.Printf("Slice length: %d, capacity: %d\n", len(numbers), cap(numbers))

	out.Printf("\nFirst element: %d\n", numbers[0])
	out.Printf("Last element: %d\n", numbers[len(numbers)-1])
	out.Printf("Second to last: %d\n", numbers[len(numbers)-2])

	out.Printf("Elements 1-3: %v\n", numbers[1:4])
	out.Printf("First 3 elements: %v\n", numbers[:3])
	out.Printf("Last 3 elements: %v\n", numbers[len(numbers)-3:])
	var everyOther []int
	for i := 0; i < len(numbers); i += 2 {
		everyOther = append(everyOther, numbers[i])
	}
	out.Printf("Every 2nd element: %v\n", everyOther)
	reversed := slices.Clone(numbers)
	slices.Reverse(reversed)
	out.Printf("Reversed: %v\n", reversed)

	out.Println("\nSlice operations:")
	colors := []string{"red", "blue", "green"}
	colors = append(colors, "yellow")
	out.Printf("After append(\"yellow\"): %v\n", colors)
	colors = slices.Insert(colors, 1, "orange")
	out.Printf("After slices.Insert(1, \"orange\"): %v\n", colors)
	if i := slices.Index(colors, "blue"); i >= 0 {
		colors = slices.Delete(colors, i, i+1)
	}
	out.Printf("After deleting \"blue\": %v\n", colors)
	popped := colors[len(colors)-1]
	colors = colors[:len(colors)-1]
	out.Printf("After pop: %v, popped value: %s\n", colors, popped)
	colors = append(colors, "purple", "pink")
	out.Printf("After append(\"purple\", \"pink\"): %v\n", colors)

	out.Println("\nSlice copying:")
	original := []int{1, 2, 3}
	alias := original
	independent := slices.Clone(original)
	alias[0] = 100
	out.Printf("Original: %v, Alias: %v (share the backing array)\n", original, alias)
	original[1] = 200
	out.Printf("Original: %v, Clone: %v (unaffected)\n", original, independent)

	numbers = []int{3, 1, 4, 1, 5, 9, 2, 6}
	out.Printf("\nOriginal: %v\n", numbers)
	out.Printf("Sorted: %v\n", slices.Sorted(slices.Values(numbers)))
	desc := slices.Clone(numbers)
	slices.SortFunc(desc, func(a, b int) int { return cmp.Compare(b, a) })
	out.Printf("Sorted descending: %v\n", desc)
	slices.Sort(numbers)
	out.Printf("After slices.Sort: %v\n", numbers)

	out.Println("\nBuilding slices with loops:")
	var squares []int
	for x := 1; x <= 5; x++ {
		squares = append(squares, x*x)
	}
	out.Printf("Squares 1-5: %v\n", squares)
	var evenSquares []int
	for x := 1; x <= 10; x++ {
		if x%2 == 0 {
			evenSquares = append(evenSquares, x*x)
		}
	}
	out.Printf("Squares of even numbers 1-10: %v\n", evenSquares)
	matrix := make([][]int, 3)
	for i := range matrix {
		matrix[i] = make([]int, 3)
		for j := range matrix[i] {
			matrix[i][j] = (i + 1) * (j + 1)
		}
	}
	out.Printf("3x3 multiplication table: %v\n", matrix)
}

type person struct {
	Name string
	Age  int
	Job  string
}

func swap(x, y int) (int, int) { return y, x }

func arraysSection(env *lesson.Env) {
	out := env.Out
	coordinates := [2]int{10, 20}
	p := person{"Alice", 28, "Engineer"}
	out.Printf("Coordinates array: %v (length fixed at %d)\n", coordinates, len(coordinates))
	out.Printf("Person struct: %+v\n", p)

	copied := coordinates
	copied[0] = 99
	out.Printf("Arrays are values: original %v, copy %v\n", coordinates, copied)

	out.Printf("\nFields: name=%s, age=%d, job=%s\n", p.Name, p.Age, p.Job)

	x, y := 5, 10
	out.Printf("Before swap: x=%d, y=%d\n", x, y)
	x, y = y, x
	out.Printf("After swap: x=%d, y=%d\n", x, y)
	x, y = swap(x, y)
	out.Printf("Swapped back with a function: x=%d, y=%d\n", x, y)

	values := [...]int{1, 2, 3, 2, 4, 2}
	count := 0
	for _, v := range values {
		if v == 2 {
			count++
		}
	}
	out.Printf("\nArray: %v\n", values)
	out.Printf("Count of 2: %d\n", count)
	out.Printf("Index of 3: %d\n", slices.Index(values[:], 3))

	a1, a2 := []int{1, 2, 3}, []int{4, 5, 6}
	out.Printf("\nCombined: %v\n", slices.Concat(a1, a2))
	out.Printf("Repeated: %v\n", slices.Repeat(a1, 2))

	asSlice := coordinates[:]
	var asArray [3]int
	copy(asArray[:], []int{1, 2, 3})
	out.Printf("Array to slice: %v\n", asSlice)
	out.Printf("Slice to array: %v\n", asArray)

	type point struct{ X, Y int }
	visited := map[point]bool{{0, 0}: true, {1, 2}: true}
	out.Printf("Comparable structs as map keys: visited (1,2)? %t\n", visited[point{1, 2}])
}

func mapsSection(env *lesson.Env) {
	out := env.Out
	p := map[string]any{
		"name":       "Alice",
		"age":        28,
		"city":       "Boston",
		"occupation": "Engineer",
	}
	out.Printf("Person: %v\n", p)
	out.Printf("Map length: %d\n", len(p))

	out.Println("\nAccessing values:")
	out.Printf("Name: %v\n", p["name"])
	out.Printf("Age: %v\n", p["age"])
	country, ok := p["country"]
	out.Printf("Country: %v (present: %t)\n", country, ok)
	if _, ok := p["country"]; !ok {
		country = "USA"
	}
	out.Printf("Country with default: %v\n", country)

	p["email"] = "alice@example.com"
	out.Printf("After adding email: %v\n", p)
	p["age"] = 29
	out.Printf("After updating age: %v\n", p)
	delete(p, "email")
	out.Printf("After deleting email: %v\n", p)
	popped := p["occupation"]
	delete(p, "occupation")
	out.Printf("After removing occupation: %v, removed value: %v\n", p, popped)

	out.Println("\nMap iteration order is random; sort the keys for stable output:")
	keys := slices.Sorted(maps.Keys(p))
	out.Printf("Keys: %v\n", keys)
	for _, k := range keys {
		out.Printf("  %s: %v\n", k, p[k])
	}

	d1 := map[string]int{"a": 1, "b": 2}
	d2 := map[string]int{"c": 3, "d": 4}
	merged := maps.Clone(d1)
	maps.Copy(merged, d2)
	out.Printf("\nMerged: %v\n", merged)

	out.Println("\nBuilding maps with loops:")
	squares := make(map[int]int)
	for x := 1; x <= 5; x++ {
		squares[x] = x * x
	}
	out.Printf("Squares: %v\n", squares)
	evenSquares := make(map[int]int)
	for x := 2; x <= 10; x += 2 {
		evenSquares[x] = x * x
	}
	out.Printf("Even squares: %v\n", evenSquares)

	type pair struct {
		key   string
		value int
	}
	fromPairs := make(map[string]int)
	for _, kv := range []pair{{"a", 1}, {"b", 2}, {"c", 3}} {
		fromPairs[kv.key] = kv.value
	}
	out.Printf("Map from pairs: %v\n", fromPairs)

	type employee struct {
		Position string
		Salary   int
	}
	company := map[string]map[string]employee{
		"employees": {
			"alice": {"Engineer", 100000},
			"bob":   {"Manager", 120000},
		},
	}
	out.Printf("\nNested map - Alice's position: %s\n", company["employees"]["alice"].Position)
}

func setsSection(env *lesson.Env) {
	out := env.Out
	numbers := NewSet(1, 2, 3, 4, 5)
	colors := NewSet("red", "blue", "green", "red")
	out.Printf("Numbers set: %v\n", numbers.Sorted())
	out.Printf("Colors set: %v\n", colors.Sorted())
	out.Printf("Set length: %d\n", colors.Len())

	colors.Add("yellow")
	out.Printf("After Add(\"yellow\"): %v\n", colors.Sorted())
	colors.Discard("blue")
	out.Printf("After Discard(\"blue\"): %v\n", colors.Sorted())

	s1 := NewSet(1, 2, 3, 4, 5)
	s2 := NewSet(4, 5, 6, 7, 8)
	out.Println("\nSet operations:")
	out.Printf("Union: %v\n", s1.Union(s2).Sorted())
	out.Printf("Intersection: %v\n", s1.Intersection(s2).Sorted())
	out.Printf("Difference: %v\n", s1.Difference(s2).Sorted())
	out.Printf("Symmetric difference: %v\n", s1.SymmetricDifference(s2).Sorted())
	out.Printf("Is disjoint: %t\n", s1.IsDisjoint(NewSet(10, 11)))
	out.Printf("Is subset: %t\n", s2.IsSubset(s1))
	out.Printf("Is superset: %t\n", s1.IsSuperset(NewSet(1, 2)))

	withDuplicates := []int{1, 2, 2, 3, 3, 3, 4, 4, 4, 4}
	out.Printf("\nRemoving duplicates: %v\n", NewSet(withDuplicates...).Sorted())
	out.Printf("Compact on a sorted slice: %v\n", slices.Compact(slices.Clone(withDuplicates)))

	sq := Set[int]{}
	for x := 1; x <= 5; x++ {
		sq.Add(x * x)
	}
	out.Printf("Squares set: %v\n", sq.Sorted())
}

func comparison(env *lesson.Env) {
	rows := []struct {
		name  string
		props []string
	}{
		{"Slice", []string{"Ordered", "Mutable", "Duplicates OK", "Linear lookup"}},
		{"Array", []string{"Ordered", "Fixed size", "Value semantics", "Comparable"}},
		{"Map", []string{"Unordered", "Mutable", "Keys unique", "Fast lookup"}},
		{"Set", []string{"Unordered", "Mutable", "Unique items", "Fast membership"}},
	}
	for _, r := range rows {
		env.Out.Printf("%s: %s\n", r.name, strings.Join(r.props, ", "))
	}
}

// WordFrequency counts whitespace-separated words.
func WordFrequency(sentence string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(sentence) {
		counts[w]++
	}
	return counts
}

// GroupBy buckets items by the key returned from key, keeping input order
// within each bucket.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		groups[k] = append(groups[k], it)
	}
	return groups
}

type graded struct {
	Name  string
	Grade string
}

func practical(env *lesson.Env) {
	out := env.Out

	out.Println("\nExample 1: Count word frequency")
	out.Printf("Word frequency: %v\n", WordFrequency("go go is awesome go"))

	out.Println("\nExample 2: Find common elements")
	common := NewSet(1, 2, 3, 4, 5).Intersection(NewSet(4, 5, 6, 7, 8))
	out.Printf("Common elements: %v\n", common.Sorted())

	out.Println("\nExample 3: Group by category")
	students := []graded{
		{"Alice", "A"},
		{"Bob", "B"},
		{"Charlie", "A"},
		{"Diana", "C"},
	}
	byGrade := GroupBy(students, func(s graded) string { return s.Grade })
	for _, g := range slices.Sorted(maps.Keys(byGrade)) {
		names := make([]string, 0, len(byGrade[g]))
		for _, s := range byGrade[g] {
			names = append(names, s.Name)
		}
		out.Printf("Grade %s: %v\n", g, names)
	}

	out.Println("\nExample 4: Process nested data")
	type user struct {
		ID     int
		Name   string
		Scores []int
	}
	users := []user{
		{1, "Alice", []int{85, 90, 88}},
		{2, "Bob", []int{92, 88, 95}},
		{3, "Charlie", []int{78, 82, 80}},
	}
	for _, u := range users {
		total := 0
		for _, s := range u.Scores {
			total += s
		}
		out.Printf("%s: Average score = %.1f\n", u.Name, float64(total)/float64(len(u.Scores)))
	}
}

const summary = `
Data Structure Overview:

SLICE []int{1, 2, 3}:
- Ordered, growable view over a backing array
- Index-based access, len and cap
- Use for: Sequences, collections needing modification
- Tools: append, copy, slices.Insert/Delete/Sort/Index/Clone

ARRAY [3]int{1, 2, 3}:
- Fixed size, part of the type
- Copied on assignment, comparable, usable as map keys
- Use for: Small fixed collections, coordinates

MAP map[string]int{"key": 1}:
- Key-value pairs, unordered iteration
- Fast key lookup, comma-ok idiom for presence
- Use for: Mappings, indexes, counters
- Tools: delete, maps.Keys/Clone/Copy

SET map[T]struct{}:
- Unique items built on a map
- Fast membership testing
- Use for: Deduplication, set algebra

Key Differences:
- Slices and maps are references to shared data; arrays are values
- Slices keep order; map iteration order is randomized
- Sort map keys before printing for reproducible output

Best Practices:
- Preallocate with make when the size is known
- Use slices.Clone when an independent copy is needed
- Use structs instead of maps for fixed records
- Check presence with v, ok := m[k]
`
