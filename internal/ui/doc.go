// Package ui holds the color themes shared by the command-line output, the
// interactive prompt and the lesson browser. Lesson output itself is never
// colored so that runs stay byte-for-byte reproducible.
package ui
