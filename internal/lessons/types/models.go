package types

import (
	"errors"
	"fmt"
	"slices"
)

// Person is a named individual with an age.
type Person struct {
	Name string
	Age  int
}

// Introduce returns the person's self-introduction.
func (p Person) Introduce() string {
	return fmt.Sprintf("Hi, I'm %s and I'm %d years old", p.Name, p.Age)
}

// HaveBirthday increments the age. It needs a pointer receiver to mutate p.
func (p *Person) HaveBirthday() string {
	p.Age++
	return fmt.Sprintf("%s is now %d years old", p.Name, p.Age)
}

func (p Person) String() string { return fmt.Sprintf("Person(%s, %d)", p.Name, p.Age) }

func (p Person) GoString() string { return fmt.Sprintf("Person{Name: %q, Age: %d}", p.Name, p.Age) }

// Directory creates people and counts them, replacing a class-level counter.
type Directory struct {
	population int
}

func (d *Directory) NewPerson(name string, age int) *Person {
	d.population++
	return &Person{Name: name, Age: age}
}

func (d *Directory) Population() int { return d.population }

// Account errors.
var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// BankAccount keeps a balance and a transaction history.
type BankAccount struct {
	Number  string
	Owner   string
	balance int
	history []string
}

// NewBankAccount opens an account with an initial balance.
func NewBankAccount(number, owner string, balance int) *BankAccount {
	return &BankAccount{Number: number, Owner: owner, balance: balance}
}

func (a *BankAccount) Deposit(amount int) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	a.balance += amount
	a.history = append(a.history, fmt.Sprintf("Deposit: $%d", amount))
	return nil
}

func (a *BankAccount) Withdraw(amount int) error {
	if amount > a.balance {
		return fmt.Errorf("withdraw $%d: %w", amount, ErrInsufficientFunds)
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	a.balance -= amount
	a.history = append(a.history, fmt.Sprintf("Withdrawal: $%d", amount))
	return nil
}

func (a *BankAccount) Balance() int { return a.balance }

// History returns a copy so callers cannot rewrite past transactions.
func (a *BankAccount) History() []string { return slices.Clone(a.history) }

// Speaker is anything that makes a sound.
type Speaker interface {
	Speak() string
}

// Animal holds what every animal shares.
type Animal struct {
	Name string
	Age  int
}

func (a Animal) Speak() string    { return a.Name + " makes a sound" }
func (a Animal) Describe() string { return fmt.Sprintf("%s is %d years old", a.Name, a.Age) }

// Dog embeds Animal and overrides Speak.
type Dog struct {
	Animal
	Breed string
}

func NewDog(name string, age int, breed string) Dog {
	return Dog{Animal: Animal{Name: name, Age: age}, Breed: breed}
}

func (d Dog) Speak() string { return d.Name + " barks: Woof!" }
func (d Dog) Fetch() string { return d.Name + " is fetching" }

// Cat embeds Animal and overrides Speak.
type Cat struct {
	Animal
	Indoor bool
}

func NewCat(name string, age int) Cat {
	return Cat{Animal: Animal{Name: name, Age: age}, Indoor: true}
}

func (c Cat) Speak() string   { return c.Name + " meows: Meow!" }
func (c Cat) Scratch() string { return c.Name + " is scratching the furniture" }

// Student hides its GPA and courses behind methods.
type Student struct {
	Name    string
	id      string
	gpa     float64
	courses []string
}

func NewStudent(name, id string) *Student {
	return &Student{Name: name, id: id, gpa: 4.0}
}

func (s *Student) AddCourse(course string) string {
	s.courses = append(s.courses, course)
	return "Added " + course
}

func (s *Student) Courses() []string { return slices.Clone(s.courses) }

func (s *Student) ID() string { return s.id }

// SetGPA accepts values in [0, 4].
func (s *Student) SetGPA(gpa float64) error {
	if gpa < 0 || gpa > 4.0 {
		return fmt.Errorf("invalid GPA %v: must be between 0 and 4", gpa)
	}
	s.gpa = gpa
	return nil
}

func (s *Student) GPA() float64 { return s.gpa }

// Rectangle demonstrates the methods Go uses instead of operator overloading.
type Rectangle struct {
	Width, Height int
}

func (r Rectangle) String() string   { return fmt.Sprintf("Rectangle (%d x %d)", r.Width, r.Height) }
func (r Rectangle) GoString() string { return fmt.Sprintf("Rectangle{%d, %d}", r.Width, r.Height) }
func (r Rectangle) Area() int        { return r.Width * r.Height }
func (r Rectangle) Perimeter() int   { return 2 * (r.Width + r.Height) }

// Less orders rectangles by area.
func (r Rectangle) Less(o Rectangle) bool { return r.Area() < o.Area() }

func (r Rectangle) Add(o Rectangle) Rectangle {
	return Rectangle{r.Width + o.Width, r.Height + o.Height}
}

func (r Rectangle) Scale(f int) Rectangle { return Rectangle{r.Width * f, r.Height * f} }

// Temperature is stored in Celsius.
type Temperature struct {
	Celsius float64
}

const (
	celsiusToFahrenheit = 9.0 / 5.0
	fahrenheitOffset    = 32
	absoluteZero        = -273.15
)

// FromFahrenheit plays the part of an alternate constructor.
func FromFahrenheit(f float64) Temperature {
	return Temperature{(f - fahrenheitOffset) * 5 / 9}
}

func AbsoluteZero() Temperature { return Temperature{absoluteZero} }

func (t Temperature) Fahrenheit() float64 {
	return t.Celsius*celsiusToFahrenheit + fahrenheitOffset
}

func (t Temperature) String() string {
	return fmt.Sprintf("%g°C = %.2f°F", t.Celsius, t.Fahrenheit())
}

// Engine is a car component.
type Engine struct {
	Horsepower int
}

func (e Engine) Start() string { return fmt.Sprintf("Engine started with %dhp", e.Horsepower) }

// Car has an Engine rather than being one.
type Car struct {
	Make, Model string
	Engine      Engine
}

func (c Car) Start() string { return fmt.Sprintf("%s %s: %s", c.Make, c.Model, c.Engine.Start()) }
