// Package basics is the first lesson: variables, types, operators, strings,
// conversions, printing, scope and constants.
package basics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agbru/curriculum/internal/lesson"
)

// New returns the basics lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "basics",
		LessonTitle: "Variables, types, operators, strings and conversion",
		Sections: []lesson.Section{
			{Title: "VARIABLES AND DATA TYPES", Show: variables},
			{Title: "ARITHMETIC OPERATORS", Show: arithmetic},
			{Title: "COMPARISON OPERATORS", Show: comparison},
			{Title: "LOGICAL OPERATORS", Show: logical},
			{Title: "STRING OPERATIONS", Show: stringOps},
			{Title: "TYPE CONVERSION", Show: conversion},
			{Title: "INPUT/OUTPUT OPERATIONS", Show: inputOutput},
			{Title: "VARIABLE SCOPE", Show: scope},
			{Title: "CONSTANTS", Show: constants},
		},
		Summary: summary,
	}
}

func variables(env *lesson.Env) {
	out := env.Out
	name := "Alice"
	age := 28
	height := 5.7
	isActive := true

	out.Printf("Name: %s (Type: %T)\n", name, name)
	out.Printf("Age: %d (Type: %T)\n", age, age)
	out.Printf("Height: %v (Type: %T)\n", height, height)
	out.Printf("Active: %t (Type: %T)\n", isActive, isActive)

	x, y, z := 10, 20, 30
	out.Printf("\nMultiple assignment: x=%d, y=%d, z=%d\n", x, y, z)

	var zeroInt int
	var zeroString string
	var zeroBool bool
	out.Printf("Zero values: int=%d, string=%q, bool=%t\n", zeroInt, zeroString, zeroBool)
}

func arithmetic(env *lesson.Env) {
	out := env.Out
	a, b := 15, 4

	out.Printf("Addition: %d + %d = %d\n", a, b, a+b)
	out.Printf("Subtraction: %d - %d = %d\n", a, b, a-b)
	out.Printf("Multiplication: %d * %d = %d\n", a, b, a*b)
	out.Printf("Division (float): %d / %d = %v\n", a, b, float64(a)/float64(b))
	out.Printf("Integer Division: %d / %d = %d\n", a, b, a/b)
	out.Printf("Modulus: %d %% %d = %d\n", a, b, a%b)
	out.Printf("Exponentiation: %d ^ %d = %v\n", a, b, math.Pow(float64(a), float64(b)))
}

func comparison(env *lesson.Env) {
	out := env.Out
	num1, num2 := 10, 20

	out.Printf("%d == %d: %t\n", num1, num2, num1 == num2)
	out.Printf("%d != %d: %t\n", num1, num2, num1 != num2)
	out.Printf("%d < %d: %t\n", num1, num2, num1 < num2)
	out.Printf("%d > %d: %t\n", num1, num2, num1 > num2)
	out.Printf("%d <= %d: %t\n", num1, num2, num1 <= num2)
	out.Printf("%d >= %d: %t\n", num1, num2, num1 >= num2)
}

func logical(env *lesson.Env) {
	out := env.Out
	p, q := true, false

	out.Printf("true && false: %t\n", p && q)
	out.Printf("true || false: %t\n", p || q)
	out.Printf("!true: %t\n", !p)

	age := 25
	hasLicense := true
	canDrive := age >= 18 && hasLicense
	out.Printf("\nCan drive (age >= 18 && hasLicense): %t\n", canDrive)
}

func stringOps(env *lesson.Env) {
	out := env.Out
	str1, str2 := "Hello", "World"

	result := str1 + " " + str2
	out.Printf("Concatenation: '%s'\n", result)
	out.Printf("Repetition: '%s'\n", strings.Repeat("Ha", 3))
	out.Printf("Length of '%s': %d\n", result, len(result))

	out.Printf("First character: '%c'\n", result[0])
	out.Printf("Last character: '%c'\n", result[len(result)-1])
	out.Printf("Characters 0-4: '%s'\n", result[0:5])

	var every2nd strings.Builder
	for i := 0; i < len(result); i += 2 {
		every2nd.WriteByte(result[i])
	}
	out.Printf("Every 2nd character: '%s'\n", every2nd.String())

	out.Printf("Uppercase: '%s'\n", strings.ToUpper(result))
	out.Printf("Lowercase: '%s'\n", strings.ToLower(result))
	out.Printf("Title case: '%s'\n", cases.Title(language.English).String("hello wORLD"))

	price := 29.99
	quantity := 3
	out.Println("\nString Formatting Examples:")
	out.Printf("Using Printf: Price = $%.2f, Quantity = %d\n", price, quantity)
	out.Println("Using Sprintf: " + fmt.Sprintf("Price = $%.2f, Quantity = %d", price, quantity))
	out.Println("Using strconv: Price = $" + strconv.FormatFloat(price, 'f', 2, 64) + ", Quantity = " + strconv.Itoa(quantity))

	grouped := message.NewPrinter(language.English)
	out.Println("Locale-aware grouping: " + grouped.Sprintf("%d", 1234567))
}

func conversion(env *lesson.Env) {
	out := env.Out

	strNum := "42"
	convertedInt, _ := strconv.Atoi(strNum)
	out.Printf("String '%s' to int: %d (Type: %T)\n", strNum, convertedInt, convertedInt)

	strFloat := "3.14"
	convertedFloat, _ := strconv.ParseFloat(strFloat, 64)
	out.Printf("String '%s' to float: %v (Type: %T)\n", strFloat, convertedFloat, convertedFloat)

	num := 100
	convertedStr := strconv.Itoa(num)
	out.Printf("Integer %d to string: '%s' (Type: %T)\n", num, convertedStr, convertedStr)

	out.Printf("Non-empty string is truthy: %t\n", "Hello" != "")
	out.Printf("Empty string is truthy: %t\n", "" != "")

	if _, err := strconv.Atoi("forty-two"); err != nil {
		out.Printf("Invalid conversion caught: %v\n", err)
	}
}

func inputOutput(env *lesson.Env) {
	out := env.Out
	out.Println("Multiple arguments:", 1, 2, 3, 4, 5)
	out.Println("Custom separator: " + strings.Join([]string{"1", "2", "3"}, " -> "))
	out.Printf("Custom end character: Line 1 | ")
	out.Println("Line 2")

	out.Println("\n[Simulated Input Example - a real program would read os.Stdin]")
	userInput := "42"
	out.Printf("User entered: %s\n", userInput)
	number, _ := strconv.Atoi(userInput)
	out.Printf("Converted to integer: %d\n", number)
}

var globalVar = "I'm package-level"

func demonstrateScope(out *lesson.Printer) {
	localVar := "I'm local"
	out.Printf("Inside function - Local: %s\n", localVar)
	out.Printf("Inside function - Package: %s\n", globalVar)
}

func scope(env *lesson.Env) {
	out := env.Out
	out.Printf("Before function - Package: %s\n", globalVar)
	demonstrateScope(out)
	out.Printf("After function - Package: %s\n", globalVar)

	x := "outer"
	{
		x := "shadowed"
		out.Printf("Inside block: x = %s\n", x)
	}
	out.Printf("Outside block: x = %s\n", x)
}

const (
	pi          = 3.14159
	maxAttempts = 5
	databaseURL = "postgresql://localhost:5432/mydb"
)

func constants(env *lesson.Env) {
	out := env.Out
	radius := 10.0
	area := pi * radius * radius
	out.Printf("Circle area with radius %v: %.2f\n", radius, area)
	out.Printf("Max retry attempts: %d\n", maxAttempts)
	out.Printf("Database URL: %s\n", databaseURL)
}

const summary = `
Key Concepts Covered:
1. Variables - declared with var or :=, statically typed, zero-valued
2. Data Types - int, float64, string, bool
3. Operators - Arithmetic, comparison, logical
4. String Operations - Concatenation, slicing, strings package, formatting
5. Type Conversion - strconv, with errors for invalid input
6. Input/Output - fmt printing, simulated input
7. Variable Scope - package, function and block scope
8. Constants - const blocks

Best Practices:
- Use meaningful variable names (camelCase)
- Prefer fmt verbs for formatting
- Always check conversion errors
- Use comments to explain complex logic
- Run gofmt on every file
`
