// Package controlflow is the conditionals and loops lesson.
package controlflow

import (
	"math"
	"strconv"

	"github.com/agbru/curriculum/internal/lesson"
)

// New returns the control flow lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "controlflow",
		LessonTitle: "if/else, switch, for loops, break/continue and labels",
		Sections: []lesson.Section{
			{Title: "IF/ELSE STATEMENTS", Show: ifElse},
			{Title: "SWITCH STATEMENTS", Show: switches},
			{Title: "WHILE-STYLE LOOPS", Show: whileLoops},
			{Title: "FOR LOOPS", Show: forLoops},
			{Title: "NESTED LOOPS", Show: nestedLoops},
			{Title: "PRACTICAL EXAMPLES", Show: practical},
			{Title: "COMMON PATTERNS", Show: patterns},
		},
		Summary: summary,
	}
}

func grade(score int) string {
	if score >= 90 {
		return "A"
	} else if score >= 80 {
		return "B"
	} else if score >= 70 {
		return "C"
	} else if score >= 60 {
		return "D"
	}
	return "F"
}

func ifElse(env *lesson.Env) {
	out := env.Out

	age := 20
	if age >= 18 {
		out.Printf("Age %d: You are an adult\n", age)
	}

	temperature := 15
	if temperature > 25 {
		out.Printf("Temperature %d: It's hot\n", temperature)
	} else {
		out.Printf("Temperature %d: It's cold\n", temperature)
	}

	score := 75
	out.Printf("Score %d: Grade %s\n", score, grade(score))

	username, password := "admin", "secure123"
	if username == "admin" {
		if password == "secure123" {
			out.Println("Login successful!")
		} else {
			out.Println("Incorrect password")
		}
	} else {
		out.Println("User not found")
	}

	// Go has no ternary operator.
	age = 17
	status := "minor"
	if age >= 18 {
		status = "adult"
	}
	out.Printf("Age %d: %s\n", age, status)

	if n, err := strconv.Atoi("12"); err == nil {
		out.Printf("If with init statement: parsed %d\n", n)
	}
}

func switches(env *lesson.Env) {
	out := env.Out

	for _, day := range []string{"Saturday", "Monday"} {
		switch day {
		case "Saturday", "Sunday":
			out.Printf("%s: weekend\n", day)
		default:
			out.Printf("%s: weekday\n", day)
		}
	}

	score := 85
	switch {
	case score >= 90:
		out.Printf("Tagless switch: %d is excellent\n", score)
	case score >= 80:
		out.Printf("Tagless switch: %d is good\n", score)
	default:
		out.Printf("Tagless switch: %d needs work\n", score)
	}

	out.Println("\nFallthrough from 1:")
	switch n := 1; n {
	case 1:
		out.Println("  case 1")
		fallthrough
	case 2:
		out.Println("  case 2")
	case 3:
		out.Println("  case 3")
	}
}

func whileLoops(env *lesson.Env) {
	out := env.Out

	out.Println("\nCounting with a condition-only for loop (1 to 5):")
	count := 1
	for count <= 5 {
		out.Printf("Count: %d\n", count)
		count++
	}

	out.Println("\nLoop with break (search):")
	searchValue := 7
	numbers := []int{2, 4, 6, 7, 9, 11}
	found := false
	index := 0
	for index < len(numbers) {
		if numbers[index] == searchValue {
			out.Printf("Found %d at index %d\n", searchValue, index)
			found = true
			break
		}
		index++
	}
	if !found {
		out.Printf("%d not found\n", searchValue)
	}

	out.Println("\nLoop with continue (skip even numbers):")
	count = 0
	for count < 10 {
		count++
		if count%2 == 0 {
			continue
		}
		out.Printf("Odd number: %d\n", count)
	}
}

func forLoops(env *lesson.Env) {
	out := env.Out

	out.Println("\nThree-clause for loop (1 to 5):")
	for i := 1; i <= 5; i++ {
		out.Printf("Number: %d\n", i)
	}

	out.Println("\nFor loop with step (0 to 10, step 2):")
	for i := 0; i <= 10; i += 2 {
		out.Printf("%d ", i)
	}
	out.Blank()

	out.Println("\nRange over an integer (Go 1.22+):")
	for i := range 3 {
		out.Printf("%d ", i)
	}
	out.Blank()

	fruits := []string{"apple", "banana", "cherry", "date"}
	out.Println("\nRange over a slice:")
	for _, fruit := range fruits {
		out.Printf("- %s\n", fruit)
	}

	out.Println("\nRange with index and value:")
	for i, fruit := range fruits {
		out.Printf("  [%d] %s\n", i, fruit)
	}

	out.Println("\nFor loop with break (find first even number):")
	for _, num := range []int{1, 3, 5, 7, 8, 9, 11} {
		if num%2 == 0 {
			out.Printf("First even number: %d\n", num)
			break
		}
	}

	out.Println("\nFor loop with continue (skip odd numbers):")
	for num := 1; num <= 10; num++ {
		if num%2 != 0 {
			continue
		}
		out.Printf("Even: %d\n", num)
	}

	out.Println("\nDetecting a loop that completed without break:")
	completed := true
	for i := 1; i < 10; i++ {
		if i == 3 {
			out.Printf("Breaking at %d\n", i)
			completed = false
			break
		}
		out.Printf("Iteration %d\n", i)
	}
	out.Printf("Loop completed normally: %t\n", completed)
}

func nestedLoops(env *lesson.Env) {
	out := env.Out

	out.Println("\nMultiplication table (3x3):")
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			out.Printf("%d*%d=%d | ", i, j, i*j)
		}
		out.Blank()
	}

	out.Println("\nLabeled break out of a nested loop:")
	matrix := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	target := 5
search:
	for r, row := range matrix {
		for c, num := range row {
			if num == target {
				out.Printf("Found %d in matrix at (%d, %d)\n", target, r, c)
				break search
			}
		}
	}
}

type student struct {
	name  string
	score int
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d <= int(math.Sqrt(float64(n))); d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func practical(env *lesson.Env) {
	out := env.Out

	out.Println("\nExample 1: FizzBuzz (1 to 15):")
	for i := 1; i <= 15; i++ {
		s := ""
		if i%3 == 0 {
			s += "Fizz"
		}
		if i%5 == 0 {
			s += "Buzz"
		}
		if s == "" {
			s = strconv.Itoa(i)
		}
		out.Printf("%s ", s)
	}
	out.Blank()

	out.Println("\nExample 2: Sum of numbers 1-10 (skip if divisible by 3):")
	total := 0
	for i := 1; i <= 10; i++ {
		if i%3 == 0 {
			continue
		}
		total += i
		out.Printf("Adding %d, Total: %d\n", i, total)
	}
	out.Printf("Final Total: %d\n", total)

	out.Println("\nExample 3: Password validation (simulated):")
	const maxAttempts = 3
	correct := "secret123"
	entered := []string{"wrong1", "wrong2", "secret123"}
	loggedIn := false
	for attempt := 0; attempt < maxAttempts; attempt++ {
		out.Printf("Attempt %d: Password entered: %s\n", attempt+1, entered[attempt])
		if entered[attempt] == correct {
			out.Println("Login successful!")
			loggedIn = true
			break
		}
		out.Println("Incorrect password, try again")
	}
	if !loggedIn {
		out.Println("Maximum attempts exceeded. Access denied.")
	}

	out.Println("\nExample 4: Prime numbers from 2 to 20:")
	for n := 2; n <= 20; n++ {
		if isPrime(n) {
			out.Printf("%d is prime | ", n)
		}
	}
	out.Blank()

	out.Println("\nExample 5: Processing a slice of structs:")
	students := []student{
		{"Alice", 85},
		{"Bob", 92},
		{"Charlie", 78},
		{"Diana", 95},
	}
	for _, s := range students {
		var status string
		switch {
		case s.score >= 90:
			status = "Excellent"
		case s.score >= 80:
			status = "Good"
		default:
			status = "Needs improvement"
		}
		out.Printf("%s: %d - %s\n", s.name, s.score, status)
	}
}

func patterns(env *lesson.Env) {
	out := env.Out

	out.Println("\nPattern 1: Count occurrences of a value:")
	data := []int{1, 2, 2, 3, 3, 3, 4, 4, 4, 4}
	target, count := 4, 0
	for _, v := range data {
		if v == target {
			count++
		}
	}
	out.Printf("Value %d appears %d times\n", target, count)

	out.Println("\nPattern 2: Filter even numbers:")
	var evens []int
	for n := 1; n <= 10; n++ {
		if n%2 == 0 {
			evens = append(evens, n)
		}
	}
	out.Printf("Even numbers: %v\n", evens)

	out.Println("\nPattern 3: Transform (square) numbers:")
	squared := make([]int, 0, 5)
	for _, n := range []int{1, 2, 3, 4, 5} {
		squared = append(squared, n*n)
	}
	out.Printf("Squared: %v\n", squared)
}

const summary = `
Control Flow Structures:

1. IF/ELSE:
   - Single condition: if
   - Multiple conditions: if / else if / else
   - Init statements: if v, err := f(); err == nil
   - No ternary operator: assign a default, then override

2. SWITCH:
   - Cases do not fall through unless fallthrough is written
   - A tagless switch replaces long if/else chains

3. LOOPS:
   - for is the only loop keyword
   - Condition-only for acts as a while loop
   - range iterates slices, maps, strings, channels and integers
   - break exits early, continue skips to the next iteration

4. NESTED LOOPS:
   - A labeled break exits the outer loop directly

5. BEST PRACTICES:
   - Keep conditions simple and readable
   - Return early to reduce nesting
   - Avoid deeply nested loops (>3 levels)
   - Extract loop bodies into small functions
`
