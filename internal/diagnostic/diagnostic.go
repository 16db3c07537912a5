package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic is the single failure shape the parser reports: a label
// (usually a file path or "<expr>"), a message, and the 1-based line and
// column of the furthest failure point. The original source text is kept
// so Render can excerpt the offending line.
type Diagnostic struct {
	Label   string
	Message string
	Line    int
	Column  int

	source string
}

// New creates a Diagnostic for a position in source
func New(label, message string, line, column int, source string) *Diagnostic {
	return &Diagnostic{
		Label:   label,
		Message: message,
		Line:    line,
		Column:  column,
		source:  source,
	}
}

// Error returns the one-line header, so a Diagnostic can travel as an error
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d failure: %s", d.Label, d.Line, d.Column, d.Message)
}

// Render returns the full human-readable message: the header, the offending
// source line, and a caret under the failing column.
//
// Output format:
//
//	input.m:1:5 failure: expected ']', got end of input
//	  f[1+
//	      ^
func (d *Diagnostic) Render() string {
	var sb strings.Builder
	sb.WriteString(d.Error())

	lines := strings.Split(d.source, "\n")
	if d.Line < 1 || d.Line > len(lines) {
		return sb.String()
	}
	excerpt := strings.ReplaceAll(lines[d.Line-1], "\t", " ")

	col := d.Column
	if col < 1 {
		col = 1
	}
	if col > len(excerpt)+1 {
		col = len(excerpt) + 1
	}

	sb.WriteString("\n  ")
	sb.WriteString(excerpt)
	sb.WriteString("\n  ")
	sb.WriteString(strings.Repeat(" ", col-1))
	sb.WriteString("^")
	return sb.String()
}
