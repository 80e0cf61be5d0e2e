package parser

import "github.com/lyra-lang/lyra/pkg/compiler/lexer"

// Precedence pairs the priority a token has when it begins an expression
// (prefix) with the priority it has when it continues one after a left
// operand (infix). precNone means the token cannot serve that role.
type Precedence struct {
	Prefix int
	Infix  int
}

// Precedence levels, loosest binding first.
const (
	precNone = iota
	precAssign
	precOr
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precCall
)

// precedenceOf returns the precedence pair for a token kind. The table is
// small and pure, so it is recomputed per token rather than cached.
func precedenceOf(kind lexer.Kind) Precedence {
	switch kind {
	case lexer.KindEqual, lexer.KindPlusEqual, lexer.KindMinusEqual,
		lexer.KindStarEqual, lexer.KindSlashEqual:
		return Precedence{Infix: precAssign}

	case lexer.KindOr:
		return Precedence{Infix: precOr}

	case lexer.KindAnd:
		return Precedence{Infix: precAnd}

	case lexer.KindEqualEqual, lexer.KindBangEqual:
		return Precedence{Infix: precEquality}

	case lexer.KindGreater, lexer.KindGreaterEqual,
		lexer.KindLess, lexer.KindLessEqual:
		return Precedence{Infix: precComparison}

	case lexer.KindPlus:
		return Precedence{Infix: precTerm}

	// Prefix minus binds tighter than any binary operator.
	case lexer.KindMinus:
		return Precedence{Prefix: precUnary, Infix: precTerm}

	case lexer.KindStar, lexer.KindSlash:
		return Precedence{Infix: precFactor}

	case lexer.KindBang:
		return Precedence{Prefix: precUnary}

	// Call level. `(` after a named callee is the only implemented
	// consumer; member access on `.` is declared here but has no grammar
	// rule yet.
	case lexer.KindOpenParen, lexer.KindDot:
		return Precedence{Infix: precCall}
	}

	return Precedence{}
}
