package types

import (
	"errors"
	"fmt"
	"slices"
)

// Library errors.
var (
	ErrAlreadyBorrowed = errors.New("already borrowed")
	ErrNotBorrower     = errors.New("not borrowed by this member")
)

// Book is a library item; BorrowedBy is empty while it is available.
type Book struct {
	Title      string
	Author     string
	ISBN       string
	Year       int
	BorrowedBy string
}

func (b *Book) String() string {
	status := "(Available)"
	if b.BorrowedBy != "" {
		status = "(Borrowed by " + b.BorrowedBy + ")"
	}
	return fmt.Sprintf("%s by %s %s", b.Title, b.Author, status)
}

// Member borrows and returns books.
type Member struct {
	Name     string
	ID       string
	borrowed []string
}

func (m *Member) Borrow(b *Book) error {
	if b.BorrowedBy != "" {
		return fmt.Errorf("book %q: %w", b.Title, ErrAlreadyBorrowed)
	}
	b.BorrowedBy = m.Name
	m.borrowed = append(m.borrowed, b.Title)
	return nil
}

func (m *Member) Return(b *Book) error {
	if b.BorrowedBy != m.Name {
		return fmt.Errorf("book %q: %w", b.Title, ErrNotBorrower)
	}
	b.BorrowedBy = ""
	if i := slices.Index(m.borrowed, b.Title); i >= 0 {
		m.borrowed = slices.Delete(m.borrowed, i, i+1)
	}
	return nil
}

func (m *Member) Borrowed() []string { return slices.Clone(m.borrowed) }
