// Package lesson defines what a curriculum lesson is and how it is run.
//
// A lesson is a linear demonstration program: it prints a banner per concept
// section, builds small literal data, calls the operation being taught and
// prints the result, then closes with a SUMMARY block. Lessons share no state
// and take no input. Everything a lesson may touch is carried by Env.
//
// Most lessons are declared as a Script, an ordered list of sections. The
// Registry keeps lessons in curriculum order for the runner.
package lesson
