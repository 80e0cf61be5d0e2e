// Package diag renders structured parse errors to a human-readable sink.
// The reporter keeps the full original source for the duration of one parse
// so label ranges can be re-sliced on demand; it never re-lexes anything.
package diag

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a diagnostic.
type Kind uint8

const (
	// InvalidSyntax marks a structural mismatch: the wrong token where the
	// grammar required another.
	InvalidSyntax Kind = iota
	// ExpectedToken marks a specific required token, such as a closing
	// delimiter, that was absent.
	ExpectedToken
)

func (k Kind) String() string {
	switch k {
	case InvalidSyntax:
		return "Invalid Syntax"
	case ExpectedToken:
		return "Expected Token"
	}
	return "Unknown"
}

// Label points a diagnostic at a half-open byte range of the source, with a
// short annotation to print beneath the extracted snippet.
type Label struct {
	Start int
	End   int
	Text  string
}

// NewLabel creates a label over [start, end).
func NewLabel(start, end int, text string) Label {
	return Label{Start: start, End: end, Text: text}
}

// Reporter formats diagnostics and writes them to a sink, keeping every
// rendered diagnostic in order so callers can return them programmatically.
// It holds the source text it was constructed with and is only meant to be
// used within the single parse that owns it.
type Reporter struct {
	source   string
	sink     io.Writer
	rendered []string

	errStyle   lipgloss.Style
	locStyle   lipgloss.Style
	labelStyle lipgloss.Style
	noteStyle  lipgloss.Style
}

// NewReporter creates a reporter over the given source. Styling degrades to
// plain text automatically when the sink is not a terminal.
func NewReporter(source string, sink io.Writer) *Reporter {
	ren := lipgloss.NewRenderer(sink)
	return &Reporter{
		source:     source,
		sink:       sink,
		errStyle:   ren.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		locStyle:   ren.NewStyle().Foreground(lipgloss.Color("11")),
		labelStyle: ren.NewStyle().Foreground(lipgloss.Color("9")),
		noteStyle:  ren.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Emit renders one diagnostic and writes it to the sink. Labels render in
// the order given. Emit never fails; a sink write error is ignored because
// the rendered text is still retained for Diagnostics.
func (r *Reporter) Emit(kind Kind, line, column uint32, filename string, labels []Label, note string) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - %s\n", r.errStyle.Render("Error"), kind)
	fmt.Fprintf(&b, "= at %s\n\n", r.locStyle.Render(fmt.Sprintf("%s:%d:%d", filename, line, column)))

	for _, label := range labels {
		snippet := r.slice(label.Start, label.End)
		for _, srcLine := range strings.Split(snippet, "\n") {
			fmt.Fprintf(&b, "| %s\n", srcLine)
		}
		fmt.Fprintf(&b, "|%s^^-- %s\n", r.caretPad(label.Start), r.labelStyle.Render(label.Text))
	}

	fmt.Fprintf(&b, "\n= note: %s\n", r.noteStyle.Render(note))

	out := b.String()
	r.rendered = append(r.rendered, out)
	io.WriteString(r.sink, out)
}

// Diagnostics returns every rendered diagnostic in emission order.
func (r *Reporter) Diagnostics() []string {
	return r.rendered
}

// Count returns the number of diagnostics emitted so far.
func (r *Reporter) Count() int {
	return len(r.rendered)
}

// caretPad indents the `^^--` marker by the label's start offset so it
// points under the offending range. Out-of-range starts clamp the same way
// slice does.
func (r *Reporter) caretPad(start int) string {
	if start < 0 {
		start = 0
	}
	if start > len(r.source) {
		start = len(r.source)
	}
	return strings.Repeat(" ", start+1)
}

// slice extracts a label range from the source. Out-of-range offsets are
// clamped and misaligned ones snapped back to rune boundaries, so a bad
// label degrades to an odd snippet instead of a panic.
func (r *Reporter) slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(r.source) {
		end = len(r.source)
	}
	if start > end {
		return ""
	}
	for start > 0 && start < len(r.source) && !utf8.RuneStart(r.source[start]) {
		start--
	}
	for end > start && end < len(r.source) && !utf8.RuneStart(r.source[end]) {
		end--
	}
	return r.source[start:end]
}
