// Package parser builds Lyra syntax trees. It pulls tokens from the scanner
// one or two at a time, resolves operator precedence by climbing, and
// reports malformed input through the diagnostics reporter without ever
// aborting, so one parse surfaces as many independent errors as the input
// warrants.
package parser

import (
	"io"
	"os"

	"github.com/lyra-lang/lyra/pkg/compiler/ast"
	"github.com/lyra-lang/lyra/pkg/compiler/diag"
	"github.com/lyra-lang/lyra/pkg/compiler/lexer"
)

// Parser holds the cursor state for one parse of one source unit: a
// two-token lookahead window over the scanner plus the reporter and the
// filename used for error display. It is not safe for concurrent use.
type Parser struct {
	scanner  *lexer.Scanner
	reporter *diag.Reporter
	filename string

	cur  lexer.Token
	peek lexer.Token
}

// New creates a parser for one source unit, reporting diagnostics to
// stderr.
func New(source, filename string) *Parser {
	return NewWithSink(source, filename, os.Stderr)
}

// NewWithSink creates a parser whose diagnostics render to the given sink.
func NewWithSink(source, filename string, sink io.Writer) *Parser {
	p := &Parser{
		scanner:  lexer.NewScanner(source),
		reporter: diag.NewReporter(source, sink),
		filename: filename,
	}
	// Prime the window so cur and peek are both set.
	p.advance()
	p.advance()
	return p
}

// Parse is the boundary contract for collaborators: it runs the front end
// over one source unit and returns the syntax tree together with every
// rendered diagnostic, in discovery order.
func Parse(source, filename string) ([]ast.Stmt, []string) {
	p := NewWithSink(source, filename, io.Discard)
	stmts := p.Parse()
	return stmts, p.Diagnostics()
}

// Parse consumes the whole source unit and returns its statements.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for p.cur.Kind != lexer.KindEOF {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Diagnostics returns the rendered diagnostics emitted so far, in order.
func (p *Parser) Diagnostics() []string {
	return p.reporter.Diagnostics()
}

// advance shifts peek into cur and pulls a fresh token from the scanner.
// Error tokens are reported and skipped here, so the grammar above never
// sees them.
func (p *Parser) advance() {
	p.cur = p.peek
	for {
		tok := p.scanner.Next()
		if tok.Kind != lexer.KindError {
			p.peek = tok
			return
		}
		p.reporter.Emit(diag.InvalidSyntax, tok.Line, tok.Column, p.filename, nil, tok.Text)
	}
}

// consume advances past the current token after checking that it matches
// the expected kind. On a mismatch it reports InvalidSyntax and leaves the
// found token in place so the grammar can resynchronize on it; parsing
// always continues.
func (p *Parser) consume(expected lexer.Kind, message string, labels ...diag.Label) {
	if p.cur.Kind != expected {
		p.report(diag.InvalidSyntax, p.cur, message, labels...)
		return
	}
	p.advance()
}

// closing is consume for required closing delimiters, which report as
// ExpectedToken.
func (p *Parser) closing(expected lexer.Kind, message string, labels ...diag.Label) {
	if p.cur.Kind != expected {
		p.report(diag.ExpectedToken, p.cur, message, labels...)
		return
	}
	p.advance()
}

func (p *Parser) report(kind diag.Kind, tok lexer.Token, message string, labels ...diag.Label) {
	p.reporter.Emit(kind, tok.Line, tok.Column, p.filename, labels, message)
}

func (p *Parser) tokenLabel(tok lexer.Token, text string) diag.Label {
	return diag.NewLabel(tok.Start, tok.End, text)
}

// position spans from a leading token to a byte end.
func (p *Parser) position(from lexer.Token, end int) ast.Position {
	return ast.Position{
		Span:   ast.Span{Start: from.Start, End: end},
		Line:   from.Line,
		Column: from.Column,
	}
}

func tokenPos(tok lexer.Token) ast.Position {
	return ast.Position{
		Span:   ast.Span{Start: tok.Start, End: tok.End},
		Line:   tok.Line,
		Column: tok.Column,
	}
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case lexer.KindLet:
		return p.parseLet()
	case lexer.KindReturn:
		return p.parseReturn()
	default:
		expr := p.parseExpression(precAssign)
		if expr == nil {
			return nil
		}
		p.terminate(expr)
		return &ast.ExprStmt{Expr: expr}
	}
}

// terminate consumes the statement terminator. Block-shaped expressions
// close themselves, so the semicolon is optional after them; a statement
// that runs into `}` or end of input is also left alone, which keeps one
// missing semicolon at one diagnostic.
func (p *Parser) terminate(after ast.Expr) {
	if p.cur.Kind == lexer.KindSemicolon {
		p.advance()
		return
	}
	if blockShaped(after) || p.cur.Kind == lexer.KindEOF || p.cur.Kind == lexer.KindCloseBrace {
		return
	}
	p.report(diag.InvalidSyntax, p.cur, "expected `;` after this statement",
		p.tokenLabel(p.cur, "unexpected token"))
}

func blockShaped(e ast.Expr) bool {
	switch e.(type) {
	case *ast.If, *ast.Block, *ast.While, *ast.For, *ast.Match:
		return true
	}
	return false
}

// parseLet parses `let [mut] name = value;`.
func (p *Parser) parseLet() ast.Stmt {
	letTok := p.cur
	p.advance()

	mutable := false
	if p.cur.Kind == lexer.KindMut {
		mutable = true
		p.advance()
	}

	name := ""
	if p.cur.Kind == lexer.KindIdent {
		name = p.cur.Text
		p.advance()
	} else {
		p.report(diag.InvalidSyntax, p.cur, "expected a name after `let`",
			p.tokenLabel(p.cur, "not a name"))
	}

	p.consume(lexer.KindEqual, "expected to find token `=`",
		p.tokenLabel(p.cur, "unexpected token"))

	value := p.parseExpression(precAssign)
	p.terminate(nil)

	end := letTok.End
	if value != nil {
		end = value.Pos().End
	}
	return &ast.LetStmt{
		Name:     name,
		Mutable:  mutable,
		Value:    value,
		Position: p.position(letTok, end),
	}
}

// parseReturn parses `return [value];`.
func (p *Parser) parseReturn() ast.Stmt {
	retTok := p.cur
	p.advance()

	var value ast.Expr
	if p.cur.Kind != lexer.KindSemicolon &&
		p.cur.Kind != lexer.KindCloseBrace &&
		p.cur.Kind != lexer.KindEOF {
		value = p.parseExpression(precAssign)
	}
	p.terminate(nil)

	end := retTok.End
	if value != nil {
		end = value.Pos().End
	}
	return &ast.ReturnStmt{Value: value, Position: p.position(retTok, end)}
}
