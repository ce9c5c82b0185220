// Package functions covers function declarations, variadic and optional
// parameters, closures, generic map/filter/reduce, wrappers and recursion.
package functions

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/agbru/curriculum/internal/lesson"
)

// New returns the functions lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "functions",
		LessonTitle: "Functions, closures, generics and higher-order functions",
		Sections: []lesson.Section{
			{Title: "BASIC FUNCTIONS", Show: basicFunctions},
			{Title: "DEFAULT PARAMETERS AND OPTIONS", Show: optionalParameters},
			{Title: "VARIADIC PARAMETERS", Show: variadic},
			{Title: "ANONYMOUS FUNCTIONS", Show: anonymous},
			{Title: "MAP FUNCTION", Show: mapSection},
			{Title: "FILTER FUNCTION", Show: filterSection},
			{Title: "REDUCE FUNCTION", Show: reduceSection},
			{Title: "HIGHER-ORDER FUNCTIONS", Show: higherOrder},
			{Title: "DECORATORS (Function Wrappers)", Show: decorators},
			{Title: "PRACTICAL EXAMPLES", Show: practical},
		},
		Summary: summary,
	}
}

// Map returns f applied to every element of s.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter keeps the elements for which keep returns true.
func Filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s from the left starting at init.
func Reduce[T, A any](s []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Compose applies fns right to left: Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

func greet() string { return "Hello!" }

func add(a, b int) int { return a + b }

func divide(a, b int) (quotient, remainder int) {
	return a / b, a % b
}

var errDivisionByZero = errors.New("division by zero")

func safeDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivisionByZero
	}
	return a / b, nil
}

func appendTo(item int, list []int) []int {
	return append(list, item)
}

func basicFunctions(env *lesson.Env) {
	out := env.Out
	out.Printf("greet(): %s\n", greet())
	out.Printf("add(5, 3) = %d\n", add(5, 3))

	q, r := divide(17, 5)
	out.Printf("divide(17, 5) = quotient: %d, remainder: %d\n", q, r)

	if v, err := safeDivide(10, 4); err == nil {
		out.Printf("safeDivide(10, 4) = %v\n", v)
	}
	if _, err := safeDivide(1, 0); err != nil {
		out.Printf("safeDivide(1, 0) error: %v\n", err)
	}

	list1 := appendTo(1, nil)
	list2 := appendTo(2, nil)
	out.Printf("list1: %v, list2: %v\n", list1, list2)
}

func power(base int, exponent ...int) int {
	e := 2
	if len(exponent) > 0 {
		e = exponent[0]
	}
	result := 1
	for range e {
		result *= base
	}
	return result
}

// personOptions stands in for keyword arguments.
type personOptions struct {
	City       string
	Occupation string
}

func describePerson(name string, age int, opts personOptions) string {
	if opts.City == "" {
		opts.City = "Unknown"
	}
	if opts.Occupation == "" {
		opts.Occupation = "Unemployed"
	}
	return fmt.Sprintf("%s, %d, lives in %s, works as %s", name, age, opts.City, opts.Occupation)
}

type greeting struct {
	name     string
	greeting string
	punct    string
}

type greetingOption func(*greeting)

func withGreeting(g string) greetingOption { return func(o *greeting) { o.greeting = g } }
func withPunctuation(p string) greetingOption {
	return func(o *greeting) { o.punct = p }
}

func newGreeting(name string, opts ...greetingOption) string {
	g := greeting{name: name, greeting: "Hello", punct: "."}
	for _, opt := range opts {
		opt(&g)
	}
	return g.greeting + ", " + g.name + g.punct
}

func optionalParameters(env *lesson.Env) {
	out := env.Out
	out.Printf("power(5) = %d\n", power(5))
	out.Printf("power(5, 3) = %d\n", power(5, 3))

	out.Println("\nOptions struct in place of keyword arguments:")
	out.Println(describePerson("Alice", 28, personOptions{}))
	out.Println(describePerson("Bob", 35, personOptions{City: "New York"}))
	out.Println(describePerson("Charlie", 42, personOptions{Occupation: "Engineer", City: "Seattle"}))

	out.Println("\nFunctional options:")
	out.Println(newGreeting("Alice"))
	out.Println(newGreeting("Bob", withGreeting("Welcome"), withPunctuation("!")))
}

func sumNumbers(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

func printDetails(out *lesson.Printer, details map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(details)) {
		out.Printf("  %s: %v\n", key, details[key])
	}
}

func flexible(out *lesson.Printer, required string, extra []int, details map[string]any) {
	out.Printf("Required: %s\n", required)
	out.Printf("Additional args: %v\n", extra)
	out.Printf("Keyword args: %v\n", details)
}

func variadic(env *lesson.Env) {
	out := env.Out
	out.Printf("sumNumbers(1, 2, 3) = %d\n", sumNumbers(1, 2, 3))
	out.Printf("sumNumbers(10, 20, 30, 40, 50) = %d\n", sumNumbers(10, 20, 30, 40, 50))
	nums := []int{4, 5, 6}
	out.Printf("sumNumbers(nums...) = %d\n", sumNumbers(nums...))

	out.Println("\nprintDetails() with a map of named values (printed in key order):")
	printDetails(out, map[string]any{"name": "Alice", "age": 28, "city": "Boston"})

	out.Println("\nflexible(\"needed\", []int{1, 2, 3}, map[string]any{...}):")
	flexible(out, "needed", []int{1, 2, 3}, map[string]any{"name": "Alice", "age": 28})
}

func anonymous(env *lesson.Env) {
	out := env.Out
	square := func(x int) int { return x * x }
	out.Printf("Function literal square: square(5) = %d\n", square(5))

	addFn := func(x, y int) int { return x + y }
	out.Printf("Function literal add: addFn(3, 7) = %d\n", addFn(3, 7))

	classify := func(x int) string {
		if x%2 == 0 {
			return "Even"
		}
		return "Odd"
	}
	out.Printf("Function literal classify: classify(7) = %s, classify(8) = %s\n", classify(7), classify(8))

	doubled := Map([]int{1, 2, 3, 4, 5}, func(x int) int { return x * 2 })
	out.Printf("\nFunction literal with Map - double numbers: %v\n", doubled)

	result := func(a, b int) int { return a * b }(6, 7)
	out.Printf("Immediately invoked: %d\n", result)
}

func milesToKm(miles float64) float64 { return miles * 1.60934 }

func mapSection(env *lesson.Env) {
	out := env.Out
	km := Map([]float64{1, 2, 5, 10}, milesToKm)
	out.Printf("Miles to KM: %s\n", formatFloats(km, 4))

	discounted := Map([]float64{10, 20, 30, 40}, func(p float64) float64 { return p * 0.9 })
	out.Printf("10%% discount: %s\n", formatFloats(discounted, 1))

	a, b := []int{1, 2, 3}, []int{10, 20, 30}
	sums := make([]int, len(a))
	for i := range a {
		sums[i] = a[i] + b[i]
	}
	out.Printf("Sum of two slices: %v\n", sums)

	out.Printf("Map to another type: %q\n", Map([]int{1, 2, 3}, func(i int) string { return strings.Repeat("*", i) }))
}

func formatFloats(xs []float64, prec int) string {
	parts := Map(xs, func(x float64) string { return fmt.Sprintf("%.*f", prec, x) })
	return "[" + strings.Join(parts, " ") + "]"
}

func isEven(n int) bool { return n%2 == 0 }

type gradedStudent struct {
	Name  string
	Grade int
}

func filterSection(env *lesson.Env) {
	out := env.Out
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out.Printf("Even numbers: %v\n", Filter(numbers, isEven))
	out.Printf("Odd numbers: %v\n", Filter(numbers, func(n int) bool { return n%2 != 0 }))
	out.Printf("Numbers > 5: %v\n", Filter(numbers, func(n int) bool { return n > 5 }))

	students := []gradedStudent{
		{"Alice", 85},
		{"Bob", 62},
		{"Charlie", 91},
		{"Diana", 58},
	}
	passing := Filter(students, func(s gradedStudent) bool { return s.Grade >= 70 })
	names := Map(passing, func(s gradedStudent) string { return s.Name })
	out.Printf("\nPassing students: %v\n", names)

	out.Printf("slices.DeleteFunc keeps the rest in place: %v\n",
		slices.DeleteFunc(slices.Clone(numbers), isEven))
}

func reduceSection(env *lesson.Env) {
	out := env.Out
	numbers := []int{1, 2, 3, 4, 5}
	product := Reduce(numbers, 1, func(acc, x int) int { return acc * x })
	out.Printf("Product of %v: %d\n", numbers, product)

	numbers = []int{3, 1, 4, 1, 5, 9, 2, 6}
	maxNum := Reduce(numbers[1:], numbers[0], func(acc, x int) int { return max(acc, x) })
	out.Printf("Maximum of %v: %d\n", numbers, maxNum)
	out.Printf("slices.Max agrees: %d\n", slices.Max(numbers))

	words := []string{"Go", "is", "awesome"}
	sentence := Reduce(words[1:], words[0], func(acc, w string) string { return acc + " " + w })
	out.Printf("Sentence: %s\n", sentence)
}

func makeMultiplier(n int) func(int) int {
	return func(x int) int { return x * n }
}

func applyTwice(f func(int) int, x int) int {
	return f(f(x))
}

func counter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

func higherOrder(env *lesson.Env) {
	out := env.Out
	times3 := makeMultiplier(3)
	times5 := makeMultiplier(5)
	out.Printf("times3(4) = %d\n", times3(4))
	out.Printf("times5(4) = %d\n", times5(4))

	double := func(x int) int { return x * 2 }
	out.Printf("\napplyTwice(double, 5) = %d\n", applyTwice(double, 5))

	next := counter()
	next()
	next()
	out.Printf("Closure keeps state: third call returns %d\n", next())
}

func uppercase(f func() string) func() string {
	return func() string { return strings.ToUpper(f()) }
}

func repeat(times int) func(func() string) func() string {
	return func(f func() string) func() string {
		return func() string { return strings.Repeat(f()+" ", times) }
	}
}

func decorators(env *lesson.Env) {
	out := env.Out
	greetWrapped := uppercase(func() string { return "hello world" })
	out.Printf("With wrapper: %s\n", greetWrapped())

	sayHello := repeat(3)(func() string { return "Hello" })
	out.Printf("Repeated: %s\n", sayHello())

	var calls []string
	traced := func(name string, f func(int) int) func(int) int {
		return func(x int) int {
			calls = append(calls, fmt.Sprintf("%s(%d)", name, x))
			return f(x)
		}
	}
	sq := traced("square", func(x int) int { return x * x })
	sq(3)
	sq(4)
	out.Printf("Tracing wrapper recorded: %v\n", calls)
}

func factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}

type scoreRecord struct {
	Name  string
	Score int
}

func practical(env *lesson.Env) {
	out := env.Out
	out.Println("\nExample 1: Data transformation pipeline")
	raw := []scoreRecord{
		{"alice", 85},
		{"bob", 92},
		{"charlie", 78},
	}
	passing := Filter(raw, func(r scoreRecord) bool { return r.Score >= 80 })
	transformed := Map(passing, func(r scoreRecord) scoreRecord {
		r.Name = strings.ToUpper(r.Name)
		return r
	})
	out.Printf("Filtered and transformed: %+v\n", transformed)

	out.Printf("\nExample 2: factorial(5) = %d\n", factorial(5))

	addOne := func(x int) int { return x + 1 }
	multiplyByTwo := func(x int) int { return x * 2 }
	square := func(x int) int { return x * x }
	composed := Compose(addOne, multiplyByTwo, square)
	out.Printf("\nExample 3: Compose(addOne, multiplyByTwo, square)(5) = %d\n", composed(5))
}

const summary = `
Key Concepts:

1. FUNCTION DECLARATIONS:
   - func keyword, typed parameters and results
   - Multiple return values, usually (value, error)
   - Named results document what is returned

2. OPTIONAL PARAMETERS:
   - Go has no default arguments
   - Use an options struct or functional options instead

3. VARIADIC PARAMETERS:
   - nums ...int collects extra arguments into a slice
   - Spread a slice with nums...
   - A map[string]any can carry named values when truly needed

4. FUNCTION LITERALS:
   - Anonymous functions assigned to variables or passed inline
   - Closures capture variables from the enclosing scope

5. GENERIC HELPERS:
   - Map: apply a function to every element
   - Filter: keep elements matching a predicate
   - Reduce: fold elements into one value
   - The slices package covers many common cases

6. HIGHER-ORDER FUNCTIONS:
   - Functions that take or return functions
   - Wrappers play the role of decorators
   - Enables function composition

7. BEST PRACTICES:
   - Use meaningful function names
   - Write doc comments on exported functions
   - Keep functions focused on one task
   - Return errors instead of panicking
   - Consider readability over cleverness
`
