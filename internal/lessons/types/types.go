// Package types is the object-oriented lesson expressed with Go structs,
// methods, embedding and interfaces.
package types

import (
	"errors"
	"fmt"

	"github.com/agbru/curriculum/internal/lesson"
)

// New returns the types lesson.
func New() lesson.Lesson {
	return &lesson.Script{
		LessonName:  "types",
		LessonTitle: "Structs, methods, embedding, interfaces and composition",
		Sections: []lesson.Section{
			{Title: "STRUCTS AND METHODS", Show: structsAndMethods},
			{Title: "FIELDS AND POINTER RECEIVERS", Show: bankAccount},
			{Title: "EMBEDDING", Show: embedding},
			{Title: "INTERFACES AND POLYMORPHISM", Show: polymorphism},
			{Title: "ENCAPSULATION (Exported/Unexported Identifiers)", Show: encapsulation},
			{Title: "STRINGER AND OPERATOR-LIKE METHODS", Show: specialMethods},
			{Title: "CONSTRUCTOR FUNCTIONS", Show: constructors},
			{Title: "COMPOSITION", Show: composition},
			{Title: "PRACTICAL EXAMPLE - Library System", Show: librarySystem},
		},
		Summary: summary,
	}
}

func structsAndMethods(env *lesson.Env) {
	out := env.Out
	var dir Directory

	out.Println("\nCreating values:")
	p1 := dir.NewPerson("Alice", 28)
	p2 := dir.NewPerson("Bob", 35)
	p3 := dir.NewPerson("Charlie", 42)
	for _, p := range []*Person{p1, p2, p3} {
		out.Println(p.Introduce())
	}
	out.Printf("Total population: %d\n", dir.Population())

	out.Printf("\nBefore birthday: %v\n", p1)
	out.Println(p1.HaveBirthday())
	out.Printf("After birthday: %v\n", p1)
	out.Printf("Go syntax (%%#v): %#v\n", *p1)
}

func bankAccount(env *lesson.Env) {
	out := env.Out
	out.Println("\nBankAccount example:")
	acct := NewBankAccount("ACC001", "Alice", 1000)

	report := func(action string, amount int, err error) {
		if err != nil {
			out.Printf("%s $%d failed: %v\n", action, amount, err)
			return
		}
		out.Printf("%s $%d. New balance: $%d\n", action, amount, acct.Balance())
	}
	report("Deposited", 500, acct.Deposit(500))
	report("Withdrew", 200, acct.Withdraw(200))
	err := acct.Withdraw(2000)
	report("Withdrew", 2000, err)
	out.Printf("errors.Is(err, ErrInsufficientFunds): %t\n", errors.Is(err, ErrInsufficientFunds))
	report("Deposited", -5, acct.Deposit(-5))

	out.Printf("\nTransaction history for %s:\n", acct.Owner)
	for _, tx := range acct.History() {
		out.Printf("  - %s\n", tx)
	}
}

func embedding(env *lesson.Env) {
	out := env.Out
	out.Println("\nEmbedding example:")
	dog := NewDog("Rex", 5, "Labrador")
	cat := NewCat("Whiskers", 3)

	out.Println(dog.Describe())
	out.Println(dog.Speak())
	out.Println(dog.Fetch())
	out.Printf("Promoted field dog.Name = %s, breed %s\n", dog.Name, dog.Breed)
	out.Printf("Embedded method still reachable: %s\n", dog.Animal.Speak())

	out.Println("\n" + cat.Describe())
	out.Println(cat.Speak())
	out.Println(cat.Scratch())
}

func polymorphism(env *lesson.Env) {
	out := env.Out
	speakers := []Speaker{
		NewDog("Buddy", 4, "Golden Retriever"),
		NewCat("Mittens", 2),
		Animal{Name: "Unknown", Age: 1},
	}

	out.Println("\nCalling Speak() through the Speaker interface:")
	for _, s := range speakers {
		out.Printf("  %s\n", s.Speak())
	}

	out.Println("\nType switch on the concrete type:")
	for _, s := range speakers {
		switch v := s.(type) {
		case Dog:
			out.Printf("  Dog of breed %s\n", v.Breed)
		case Cat:
			out.Printf("  Cat (indoor: %t)\n", v.Indoor)
		default:
			out.Printf("  %T\n", v)
		}
	}

	if d, ok := speakers[0].(Dog); ok {
		out.Printf("\nType assertion: %s\n", d.Fetch())
	}
}

func encapsulation(env *lesson.Env) {
	out := env.Out
	out.Println("\nEncapsulation example:")
	s := NewStudent("John", "STU001")
	out.Println(s.AddCourse("Go"))
	out.Println(s.AddCourse("SQL"))
	out.Printf("Courses: %v\n", s.Courses())
	out.Printf("GPA: %.1f\n", s.GPA())

	if err := s.SetGPA(3.8); err == nil {
		out.Printf("GPA set to %.1f\n", s.GPA())
	}
	if err := s.SetGPA(5); err != nil {
		out.Printf("Rejected: %v\n", err)
	}

	courses := s.Courses()
	courses[0] = "Tampered"
	out.Printf("Mutating the returned copy leaves the student intact: %v\n", s.Courses())
	out.Printf("\nExported field Name: %s, ID through accessor: %s\n", s.Name, s.ID())
	out.Println("Unexported fields (gpa, courses) cannot be named outside the package.")
}

func specialMethods(env *lesson.Env) {
	out := env.Out
	r1 := Rectangle{5, 3}
	r2 := Rectangle{5, 3}
	r3 := Rectangle{4, 6}

	out.Println("\nString() and GoString():")
	out.Printf("%%v: %v\n", r1)
	out.Printf("%%#v: %#v\n", r1)

	out.Printf("\nEquality (==, structs are comparable): r1 == r2: %t\n", r1 == r2)
	out.Printf("Less: r1.Less(r3): %t\n", r1.Less(r3))

	out.Printf("\nAdd: r1.Add(r3): %v\n", r1.Add(r3))
	out.Printf("Scale: r1.Scale(2): %v\n", r1.Scale(2))

	out.Printf("\nPerimeter: %d\n", r1.Perimeter())
	out.Printf("Area: %d\n", r1.Area())
}

func constructors(env *lesson.Env) {
	out := env.Out
	out.Println("\nConstructor functions example:")
	out.Printf("Freezing point: %v\n", Temperature{0})
	out.Printf("Room temperature: %v\n", FromFahrenheit(68))
	out.Printf("Absolute zero: %v\n", AbsoluteZero())
}

func composition(env *lesson.Env) {
	out := env.Out
	out.Println("\nComposition example:")
	car := Car{Make: "Ford", Model: "Mustang", Engine: Engine{Horsepower: 400}}
	out.Println(car.Start())
}

func librarySystem(env *lesson.Env) {
	out := env.Out
	out.Println("\nLibrary system example:")
	book1 := &Book{Title: "Go Basics", Author: "John Smith", ISBN: "123456", Year: 2023}
	book2 := &Book{Title: "Data Science", Author: "Jane Doe", ISBN: "234567", Year: 2022}
	member := &Member{Name: "Alice Johnson", ID: "M001"}
	other := &Member{Name: "Bob", ID: "M002"}

	attempt := func(verb string, m *Member, b *Book, err error) {
		if err != nil {
			out.Printf("%s could not %s: %v\n", m.Name, verb, err)
			return
		}
		out.Printf("%s %sed '%s'\n", m.Name, verb, b.Title)
	}

	out.Println(book1)
	attempt("borrow", member, book1, member.Borrow(book1))
	out.Println(book1)
	attempt("borrow", member, book2, member.Borrow(book2))
	attempt("borrow", other, book1, other.Borrow(book1))
	out.Printf("Books borrowed: %v\n", member.Borrowed())
	attempt("return", other, book1, other.Return(book1))
	attempt("return", member, book1, member.Return(book1))
	out.Println(book1)
	out.Printf("Books borrowed: %v\n", member.Borrowed())
}

var _ fmt.Stringer = Rectangle{}

const summary = `
Type System Concepts:

1. STRUCTS AND METHODS:
   - A struct groups fields; a method is a function with a receiver
   - Value receivers work on a copy; pointer receivers can mutate
   - No classes and no constructors built into the language

2. FIELDS:
   - Zero values make many structs usable without initialization
   - Shared counters live in an explicit value, not in the type

3. EMBEDDING:
   - An embedded struct promotes its fields and methods
   - The outer type can shadow a promoted method
   - Embedding is composition, not subtyping

4. INTERFACES:
   - Satisfied implicitly by any type with the right methods
   - Type switches and assertions recover the concrete type
   - Keep interfaces small: accept interfaces, return structs

5. ENCAPSULATION:
   - Capitalized identifiers are exported from the package
   - Lowercase identifiers are private to the package
   - Return copies of internal slices

6. STRINGER AND OPERATOR-LIKE METHODS:
   - String() controls %v, GoString() controls %#v
   - Structs with comparable fields support ==
   - Operators cannot be overloaded: write Add, Less, Scale

7. CONSTRUCTOR FUNCTIONS:
   - NewX functions validate and initialize
   - Alternate constructors are plain package functions

8. COMPOSITION:
   - Has-a relationships through fields
   - Prefer small types composed together

Best Practices:
- Use meaningful type and method names
- Keep types focused on one responsibility
- Return errors instead of status strings
- Be consistent with value or pointer receivers per type
- Document exported types with doc comments
`
