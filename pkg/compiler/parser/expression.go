package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/lyra-lang/lyra/pkg/compiler/ast"
	"github.com/lyra-lang/lyra/pkg/compiler/diag"
	"github.com/lyra-lang/lyra/pkg/compiler/lexer"
)

// parseExpression implements precedence climbing: parse a prefix-position
// left-hand side, then fold infix operators whose precedence is at least
// minPrec. The right-hand side of a binary operator is parsed one level
// tighter, so operators of equal precedence stay in this loop and
// associate to the left.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	lhs := p.parsePrefix()
	if lhs == nil {
		return nil
	}

	for {
		prec := precedenceOf(p.cur.Kind).Infix
		if prec == precNone || prec < minPrec {
			return lhs
		}

		switch p.cur.Kind {
		case lexer.KindOpenParen:
			callee, ok := lhs.(*ast.Ident)
			if !ok {
				return lhs
			}
			lhs = p.parseCall(callee)

		case lexer.KindEqual, lexer.KindPlusEqual, lexer.KindMinusEqual,
			lexer.KindStarEqual, lexer.KindSlashEqual:
			lhs = p.parseAssign(lhs)

		case lexer.KindDot:
			// Member access holds the call slot in the precedence table
			// but has no grammar rule yet.
			return lhs

		default:
			op, ok := binaryOp(p.cur.Kind)
			if !ok {
				return lhs
			}
			p.advance()
			rhs := p.parseExpression(prec + 1)
			if rhs == nil {
				return lhs
			}
			lhs = &ast.Binary{
				Op:       op,
				LHS:      lhs,
				RHS:      rhs,
				Position: spanned(lhs, rhs.Pos().End),
			}
		}
	}
}

// parsePrefix parses whatever can begin an expression: a literal, a name, a
// grouped sub-expression, a prefix operator, or one of the block-shaped
// constructs. Input that cannot begin an expression is reported, skipped,
// and yields nil.
func (p *Parser) parsePrefix() ast.Expr {
	tok := p.cur

	switch tok.Kind {
	case lexer.KindInt:
		return p.parseIntLiteral()

	case lexer.KindFloat:
		return p.parseFloatLiteral()

	case lexer.KindStr:
		p.advance()
		return &ast.Literal{Value: ast.StrLit{Value: tok.Text}, Position: tokenPos(tok)}

	case lexer.KindChar:
		p.advance()
		r, _ := utf8.DecodeRuneInString(tok.Text)
		return &ast.Literal{Value: ast.CharLit{Value: r}, Position: tokenPos(tok)}

	case lexer.KindTrue:
		p.advance()
		return &ast.Literal{Value: ast.BoolLit{Value: true}, Position: tokenPos(tok)}

	case lexer.KindFalse:
		p.advance()
		return &ast.Literal{Value: ast.BoolLit{Value: false}, Position: tokenPos(tok)}

	case lexer.KindIdent:
		p.advance()
		return &ast.Ident{Name: tok.Text, Position: tokenPos(tok)}

	case lexer.KindOpenParen:
		return p.parseGrouping()

	case lexer.KindMinus, lexer.KindBang:
		p.advance()
		rhs := p.parseExpression(precUnary)
		if rhs == nil {
			return nil
		}
		op := ast.OpNegate
		if tok.Kind == lexer.KindBang {
			op = ast.OpNot
		}
		return &ast.Unary{Op: op, RHS: rhs, Position: p.position(tok, rhs.Pos().End)}

	case lexer.KindIf:
		return p.parseIf()
	case lexer.KindWhile:
		return p.parseWhile()
	case lexer.KindFor:
		return p.parseFor()
	case lexer.KindMatch:
		return p.parseMatch()
	case lexer.KindOpenBrace:
		return p.parseBlock()
	}

	p.report(diag.InvalidSyntax, tok,
		fmt.Sprintf("expected an expression, found `%s`", describe(tok)),
		p.tokenLabel(tok, "not an expression"))
	if tok.Kind != lexer.KindEOF {
		p.advance()
	}
	return nil
}

func (p *Parser) parseIntLiteral() ast.Expr {
	tok := p.cur
	p.advance()

	value, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		p.report(diag.InvalidSyntax, tok,
			fmt.Sprintf("integer literal `%s` is out of range", tok.Text),
			p.tokenLabel(tok, "does not fit in 64 bits"))
	}
	return &ast.Literal{Value: ast.IntLit{Value: value}, Position: tokenPos(tok)}
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	tok := p.cur
	p.advance()

	value, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		p.report(diag.InvalidSyntax, tok,
			fmt.Sprintf("float literal `%s` is out of range", tok.Text),
			p.tokenLabel(tok, "does not fit in 64 bits"))
	}
	return &ast.Literal{Value: ast.FloatLit{Value: value}, Position: tokenPos(tok)}
}

func (p *Parser) parseGrouping() ast.Expr {
	open := p.cur
	p.advance()

	inner := p.parseExpression(precAssign)

	end := p.cur.End
	if inner != nil && p.cur.Kind != lexer.KindCloseParen {
		end = inner.Pos().End
	}
	p.closing(lexer.KindCloseParen, "expected `)` to close this grouping",
		diag.NewLabel(open.Start, open.End, "opened here"))

	if inner == nil {
		return nil
	}
	return &ast.Grouping{Expr: inner, Position: p.position(open, end)}
}

// parseCall parses the ordered argument list after a named callee. The
// opening paren is the current token.
func (p *Parser) parseCall(callee *ast.Ident) ast.Expr {
	p.advance()

	var args []ast.Expr
	for p.cur.Kind != lexer.KindCloseParen && p.cur.Kind != lexer.KindEOF {
		arg := p.parseExpression(precAssign)
		if arg == nil {
			break
		}
		args = append(args, arg)
		if p.cur.Kind != lexer.KindComma {
			break
		}
		p.advance()
	}

	end := p.cur.End
	p.closing(lexer.KindCloseParen,
		fmt.Sprintf("expected `)` to close the arguments of `%s`", callee.Name),
		p.tokenLabel(p.cur, "unexpected token"))

	pos := callee.Pos()
	return &ast.Call{
		Name: callee.Name,
		Args: args,
		Position: ast.Position{
			Span:   ast.Span{Start: pos.Start, End: end},
			Line:   pos.Line,
			Column: pos.Column,
		},
	}
}

// parseAssign parses the value of an assignment. The operator is the
// current token; compound operators desugar into a binary expression over
// the target. The value is parsed at assignment level, so chained
// assignment associates to the right.
func (p *Parser) parseAssign(lhs ast.Expr) ast.Expr {
	opTok := p.cur
	p.advance()

	value := p.parseExpression(precAssign)

	target, ok := lhs.(*ast.Ident)
	if !ok {
		p.report(diag.InvalidSyntax, opTok, "invalid assignment target",
			diag.NewLabel(lhs.Pos().Start, lhs.Pos().End, "cannot be assigned to"))
		return lhs
	}
	if value == nil {
		return lhs
	}

	if op, compound := compoundOp(opTok.Kind); compound {
		value = &ast.Binary{
			Op:       op,
			LHS:      &ast.Ident{Name: target.Name, Position: target.Position},
			RHS:      value,
			Position: spanned(target, value.Pos().End),
		}
	}
	return &ast.Assign{
		Name:     target.Name,
		Value:    value,
		Position: spanned(target, value.Pos().End),
	}
}

// parseIf parses `if cond { ... } [else { ... } | else if ...]`.
func (p *Parser) parseIf() ast.Expr {
	ifTok := p.cur
	p.advance()

	cond := p.parseExpression(precAssign)
	then := p.parseBlock()

	var elseArm ast.Expr
	if p.cur.Kind == lexer.KindElse {
		p.advance()
		if p.cur.Kind == lexer.KindIf {
			elseArm = p.parseIf()
		} else {
			elseArm = p.parseBlock()
		}
	}

	end := then.Pos().End
	if elseArm != nil {
		end = elseArm.Pos().End
	}
	return &ast.If{Cond: cond, Then: then, Else: elseArm, Position: p.position(ifTok, end)}
}

func (p *Parser) parseWhile() ast.Expr {
	whileTok := p.cur
	p.advance()

	expr := p.parseExpression(precAssign)
	body := p.parseBlock()

	return &ast.While{Expr: expr, Body: body, Position: p.position(whileTok, body.Pos().End)}
}

func (p *Parser) parseFor() ast.Expr {
	forTok := p.cur
	p.advance()

	expr := p.parseExpression(precAssign)
	body := p.parseBlock()

	return &ast.For{Expr: expr, Body: body, Position: p.position(forTok, body.Pos().End)}
}

// parseMatch parses `match scrutinee { pattern { ... } ... }`. A comma
// after a case is allowed and skipped.
func (p *Parser) parseMatch() ast.Expr {
	matchTok := p.cur
	p.advance()

	scrutinee := p.parseExpression(precAssign)
	p.consume(lexer.KindOpenBrace, "expected `{` after the match scrutinee",
		p.tokenLabel(p.cur, "unexpected token"))

	var cases []ast.Case
	for p.cur.Kind != lexer.KindCloseBrace && p.cur.Kind != lexer.KindEOF {
		pattern := p.parseExpression(precAssign)
		if pattern == nil {
			continue
		}
		body := p.parseBlock()
		cases = append(cases, ast.Case{Pattern: pattern, Body: body})
		if p.cur.Kind == lexer.KindComma {
			p.advance()
		}
	}

	end := p.cur.End
	if p.cur.Kind == lexer.KindEOF {
		p.report(diag.ExpectedToken, p.cur,
			"expected `}` to close the match before end of file",
			diag.NewLabel(matchTok.Start, matchTok.End, "match started here"))
	} else {
		p.advance()
	}
	return &ast.Match{Expr: scrutinee, Cases: cases, Position: p.position(matchTok, end)}
}

// parseBlock parses a brace-delimited statement list. Reaching end of input
// before the closing brace is a diagnosable error, not a silent stop.
func (p *Parser) parseBlock() *ast.Block {
	open := p.cur
	p.consume(lexer.KindOpenBrace, "expected `{` to open a block",
		p.tokenLabel(p.cur, "unexpected token"))

	var stmts []ast.Stmt
	for p.cur.Kind != lexer.KindCloseBrace && p.cur.Kind != lexer.KindEOF {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	end := p.cur.End
	if p.cur.Kind == lexer.KindEOF {
		p.report(diag.ExpectedToken, p.cur,
			"expected `}` to close the block before end of file",
			diag.NewLabel(open.Start, open.End, "opened here"))
	} else {
		p.advance()
	}
	return &ast.Block{Stmts: stmts, Position: p.position(open, end)}
}

// spanned covers from an expression's start to a byte end.
func spanned(from ast.Expr, end int) ast.Position {
	pos := from.Pos()
	return ast.Position{
		Span:   ast.Span{Start: pos.Start, End: end},
		Line:   pos.Line,
		Column: pos.Column,
	}
}

func binaryOp(kind lexer.Kind) (ast.BinOp, bool) {
	switch kind {
	case lexer.KindPlus:
		return ast.OpPlus, true
	case lexer.KindMinus:
		return ast.OpMinus, true
	case lexer.KindStar:
		return ast.OpStar, true
	case lexer.KindSlash:
		return ast.OpSlash, true
	case lexer.KindEqualEqual:
		return ast.OpEqualEqual, true
	case lexer.KindBangEqual:
		return ast.OpBangEqual, true
	case lexer.KindGreater:
		return ast.OpGreater, true
	case lexer.KindGreaterEqual:
		return ast.OpGreaterEqual, true
	case lexer.KindLess:
		return ast.OpLess, true
	case lexer.KindLessEqual:
		return ast.OpLessEqual, true
	case lexer.KindAnd:
		return ast.OpAnd, true
	case lexer.KindOr:
		return ast.OpOr, true
	}
	return 0, false
}

func compoundOp(kind lexer.Kind) (ast.BinOp, bool) {
	switch kind {
	case lexer.KindPlusEqual:
		return ast.OpPlus, true
	case lexer.KindMinusEqual:
		return ast.OpMinus, true
	case lexer.KindStarEqual:
		return ast.OpStar, true
	case lexer.KindSlashEqual:
		return ast.OpSlash, true
	}
	return 0, false
}

func describe(tok lexer.Token) string {
	if tok.Kind == lexer.KindEOF {
		return "end of file"
	}
	return tok.String()
}
