package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-lang/lyra/pkg/compiler/parser"
	"github.com/lyra-lang/lyra/pkg/compiler/printer"
)

func render(t *testing.T, src string) string {
	t.Helper()
	stmts, diags := parser.Parse(src, "test.ly")
	require.Empty(t, diags)
	return printer.Print(stmts)
}

func TestPrint(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3;", "(+ 1 (* 2 3))\n"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3)\n"},
		{"-x;", "(- x)\n"},
		{"!a && b;", "(&& (! a) b)\n"},
		{`f(1, "two");`, "(call f 1 \"two\")\n"},
		{"x += 1;", "(= x (+ x 1))\n"},
		{"let mut n = 0;", "(let mut n 0)\n"},
		{"return 'c';", "(return 'c')\n"},
		{"return;", "(return)\n"},
		{"if a { 1; } else { 2; }", "(if a (block 1) (block 2))\n"},
		{"while a < 10 { a += 1; }", "(while (< a 10) (block (= a (+ a 1))))\n"},
		{"for xs { f(x); }", "(for xs (block (call f x)))\n"},
		{"match x { 1 { a; } 2 { b; } }", "(match x (case 1 (block a)) (case 2 (block b)))\n"},
		{"1.5 == true;", "(== 1.5 true)\n"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, render(t, tc.src), "source %q", tc.src)
	}
}

func TestPrintMultipleStatements(t *testing.T) {
	out := render(t, "let x = 1;\nx + 2;")
	assert.Equal(t, "(let x 1)\n(+ x 2)\n", out)
}

func TestPrintEmpty(t *testing.T) {
	assert.Empty(t, printer.Print(nil))
}
