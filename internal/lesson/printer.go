package lesson

import (
	"fmt"
	"io"
	"strings"
)

// RuleWidth is the width of banner and section rules.
const RuleWidth = 60

var (
	bannerRule  = strings.Repeat("=", RuleWidth)
	sectionRule = strings.Repeat("-", RuleWidth)
)

// Printer writes lesson text. The first write error is kept and every
// subsequent call becomes a no-op; check it with Err.
type Printer struct {
	w       io.Writer
	err     error
	started bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Write implements io.Writer so that library renderers can print directly.
func (p *Printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	p.started = true
	n, err := p.w.Write(b)
	if err != nil {
		p.err = err
	}
	return n, err
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// Printf writes formatted text without a trailing newline.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p, format, args...)
}

// Println writes its operands separated by spaces and a newline.
func (p *Printer) Println(args ...any) {
	_, _ = fmt.Fprintln(p, args...)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	_, _ = io.WriteString(p, "\n")
}

// Banner writes a title between two "=" rules. Every banner but the first
// of the output is preceded by a blank line.
func (p *Printer) Banner(title string) {
	if p.started {
		p.Blank()
	}
	p.Printf("%s\n%s\n%s\n", bannerRule, title, bannerRule)
}

// Section writes a sub-section heading: a blank line, the title and a "-" rule.
func (p *Printer) Section(title string) {
	p.Printf("\n%s\n%s\n", title, sectionRule)
}

// Summary writes the closing SUMMARY banner followed by the prose block.
func (p *Printer) Summary(text string) {
	p.Banner("SUMMARY")
	p.Printf("\n%s\n\n", strings.TrimSpace(text))
}
