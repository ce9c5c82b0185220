// Package orchestration runs a selection of lessons, bounded by the configured
// number of jobs, and reports the outcome. Lesson text is always emitted in
// curriculum order, whatever order the lessons finish in. Presentation is
// kept behind the ProgressReporter and ResultPresenter interfaces.
package orchestration
