// Package printer renders syntax trees as s-expressions, one statement per
// line. The output is meant for inspecting what the parser built, not for
// round-tripping back into source.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lyra-lang/lyra/pkg/compiler/ast"
)

// Print renders a statement list.
func Print(stmts []ast.Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		writeStmt(&b, stmt)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeStmt(b *strings.Builder, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		writeExpr(b, s.Expr)

	case *ast.LetStmt:
		b.WriteString("(let ")
		if s.Mutable {
			b.WriteString("mut ")
		}
		b.WriteString(s.Name)
		if s.Value != nil {
			b.WriteByte(' ')
			writeExpr(b, s.Value)
		}
		b.WriteByte(')')

	case *ast.ReturnStmt:
		b.WriteString("(return")
		if s.Value != nil {
			b.WriteByte(' ')
			writeExpr(b, s.Value)
		}
		b.WriteByte(')')

	default:
		fmt.Fprintf(b, "(?stmt %T)", stmt)
	}
}

func writeExpr(b *strings.Builder, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		writeLit(b, e.Value)

	case *ast.Ident:
		b.WriteString(e.Name)

	case *ast.Binary:
		fmt.Fprintf(b, "(%s ", e.Op)
		writeExpr(b, e.LHS)
		b.WriteByte(' ')
		writeExpr(b, e.RHS)
		b.WriteByte(')')

	case *ast.Unary:
		fmt.Fprintf(b, "(%s ", e.Op)
		writeExpr(b, e.RHS)
		b.WriteByte(')')

	case *ast.Grouping:
		b.WriteString("(group ")
		writeExpr(b, e.Expr)
		b.WriteByte(')')

	case *ast.Call:
		b.WriteString("(call ")
		b.WriteString(e.Name)
		for _, arg := range e.Args {
			b.WriteByte(' ')
			writeExpr(b, arg)
		}
		b.WriteByte(')')

	case *ast.Assign:
		b.WriteString("(= ")
		b.WriteString(e.Name)
		b.WriteByte(' ')
		writeExpr(b, e.Value)
		b.WriteByte(')')

	case *ast.If:
		b.WriteString("(if ")
		writeExpr(b, e.Cond)
		b.WriteByte(' ')
		writeExpr(b, e.Then)
		if e.Else != nil {
			b.WriteByte(' ')
			writeExpr(b, e.Else)
		}
		b.WriteByte(')')

	case *ast.Block:
		b.WriteString("(block")
		for _, stmt := range e.Stmts {
			b.WriteByte(' ')
			writeStmt(b, stmt)
		}
		b.WriteByte(')')

	case *ast.While:
		b.WriteString("(while ")
		writeExpr(b, e.Expr)
		b.WriteByte(' ')
		writeExpr(b, e.Body)
		b.WriteByte(')')

	case *ast.For:
		b.WriteString("(for ")
		writeExpr(b, e.Expr)
		b.WriteByte(' ')
		writeExpr(b, e.Body)
		b.WriteByte(')')

	case *ast.Match:
		b.WriteString("(match ")
		writeExpr(b, e.Expr)
		for _, c := range e.Cases {
			b.WriteString(" (case ")
			writeExpr(b, c.Pattern)
			b.WriteByte(' ')
			writeExpr(b, c.Body)
			b.WriteByte(')')
		}
		b.WriteByte(')')

	case nil:
		b.WriteString("<nil>")

	default:
		fmt.Fprintf(b, "(?expr %T)", expr)
	}
}

func writeLit(b *strings.Builder, lit ast.Lit) {
	switch l := lit.(type) {
	case ast.IntLit:
		b.WriteString(strconv.FormatInt(l.Value, 10))
	case ast.FloatLit:
		b.WriteString(strconv.FormatFloat(l.Value, 'g', -1, 64))
	case ast.CharLit:
		b.WriteString(strconv.QuoteRune(l.Value))
	case ast.StrLit:
		b.WriteString(strconv.Quote(l.Value))
	case ast.BoolLit:
		b.WriteString(strconv.FormatBool(l.Value))
	default:
		fmt.Fprintf(b, "(?lit %T)", lit)
	}
}
