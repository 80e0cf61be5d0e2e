package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-lang/lyra/pkg/compiler/diag"
)

func TestEmitRendersToSinkAndList(t *testing.T) {
	source := "let x 10"
	var sink bytes.Buffer
	r := diag.NewReporter(source, &sink)

	r.Emit(diag.InvalidSyntax, 1, 7, "main.ly",
		[]diag.Label{diag.NewLabel(6, 8, "unexpected token")},
		"expected to find token `=`")

	require.Equal(t, 1, r.Count())
	out := r.Diagnostics()[0]

	assert.Equal(t, out, sink.String())
	assert.Contains(t, out, "Error - Invalid Syntax")
	assert.Contains(t, out, "= at main.ly:1:7")
	assert.Contains(t, out, "| 10")
	// The caret pads to the label's start so it sits under the range.
	assert.Contains(t, out, "|"+strings.Repeat(" ", 7)+"^^-- unexpected token")
	assert.Contains(t, out, "= note: expected to find token `=`")
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Invalid Syntax", diag.InvalidSyntax.String())
	assert.Equal(t, "Expected Token", diag.ExpectedToken.String())
}

func TestLabelsRenderInOrder(t *testing.T) {
	source := "(1 + 2"
	var sink bytes.Buffer
	r := diag.NewReporter(source, &sink)

	r.Emit(diag.ExpectedToken, 1, 7, "main.ly",
		[]diag.Label{
			diag.NewLabel(0, 1, "opened here"),
			diag.NewLabel(5, 6, "last token"),
		},
		"expected `)` to close this grouping")

	out := r.Diagnostics()[0]
	first := strings.Index(out, "opened here")
	second := strings.Index(out, "last token")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestMultilineLabel(t *testing.T) {
	source := "\"\nab\n"
	var sink bytes.Buffer
	r := diag.NewReporter(source, &sink)

	r.Emit(diag.InvalidSyntax, 1, 1, "main.ly",
		[]diag.Label{diag.NewLabel(0, len(source), "unterminated")},
		"unterminated string literal")

	// Each source line of the snippet gets its own gutter.
	out := r.Diagnostics()[0]
	assert.Contains(t, out, "| \"\n| ab\n")
}

func TestOutOfRangeLabelsClamp(t *testing.T) {
	source := "short"
	var sink bytes.Buffer
	r := diag.NewReporter(source, &sink)

	assert.NotPanics(t, func() {
		r.Emit(diag.InvalidSyntax, 1, 1, "main.ly",
			[]diag.Label{
				diag.NewLabel(-3, 100, "whole thing"),
				diag.NewLabel(40, 50, "past the end"),
				diag.NewLabel(3, 1, "inverted"),
				diag.NewLabel(len(source), len(source), "at the end"),
			},
			"stress")
	})

	out := r.Diagnostics()[0]
	assert.Contains(t, out, "| short")
	assert.Contains(t, out, "past the end")
	assert.Contains(t, out, "at the end")
}

// An empty label sitting exactly at end of input is what the parser emits
// when it points at the EOF token, for example after an unterminated string
// swallows the rest of the source.
func TestLabelAtEndOfInput(t *testing.T) {
	source := `let s = "abc`
	var sink bytes.Buffer
	r := diag.NewReporter(source, &sink)

	require.NotPanics(t, func() {
		r.Emit(diag.InvalidSyntax, 1, 13, "main.ly",
			[]diag.Label{diag.NewLabel(len(source), len(source), "not an expression")},
			"expected an expression, found `end of file`")
	})

	out := r.Diagnostics()[0]
	assert.Contains(t, out, "not an expression")
	assert.Contains(t, out, "= note: expected an expression, found `end of file`")
}

func TestLabelSnapsToRuneBoundary(t *testing.T) {
	source := "héllo"
	var sink bytes.Buffer
	r := diag.NewReporter(source, &sink)

	// Offset 2 lands inside the two-byte é; the snippet must stay valid
	// UTF-8 rather than splitting the rune.
	r.Emit(diag.InvalidSyntax, 1, 1, "main.ly",
		[]diag.Label{diag.NewLabel(2, 4, "middle")},
		"boundary")

	for _, d := range r.Diagnostics() {
		assert.True(t, strings.Contains(d, "é") || !strings.Contains(d, "�"))
	}
}

func TestDiagnosticsAccumulateInOrder(t *testing.T) {
	var sink bytes.Buffer
	r := diag.NewReporter("a b c", &sink)

	r.Emit(diag.InvalidSyntax, 1, 1, "main.ly", nil, "first")
	r.Emit(diag.ExpectedToken, 1, 3, "main.ly", nil, "second")
	r.Emit(diag.InvalidSyntax, 1, 5, "main.ly", nil, "third")

	require.Equal(t, 3, r.Count())
	diags := r.Diagnostics()
	assert.Contains(t, diags[0], "first")
	assert.Contains(t, diags[1], "second")
	assert.Contains(t, diags[2], "third")

	// The sink saw all three in sequence.
	assert.Equal(t, strings.Join(diags, ""), sink.String())
}

func TestNoLabels(t *testing.T) {
	var sink bytes.Buffer
	r := diag.NewReporter("x", &sink)

	r.Emit(diag.InvalidSyntax, 2, 9, "repl.ly", nil, "unknown character `?` found in source")

	out := r.Diagnostics()[0]
	assert.Contains(t, out, "= at repl.ly:2:9")
	assert.Contains(t, out, "= note: unknown character `?` found in source")
	assert.NotContains(t, out, "^^--")
}
