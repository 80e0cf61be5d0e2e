package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyra-lang/lyra/pkg/compiler/lexer"
)

func TestPrecedenceOrdering(t *testing.T) {
	infix := func(k lexer.Kind) int { return precedenceOf(k).Infix }

	assert.Greater(t, infix(lexer.KindStar), infix(lexer.KindPlus))
	assert.Greater(t, infix(lexer.KindSlash), infix(lexer.KindMinus))
	assert.Greater(t, infix(lexer.KindPlus), infix(lexer.KindLess))
	assert.Greater(t, infix(lexer.KindLess), infix(lexer.KindEqualEqual))
	assert.Greater(t, infix(lexer.KindEqualEqual), infix(lexer.KindAnd))
	assert.Greater(t, infix(lexer.KindAnd), infix(lexer.KindOr))
	assert.Greater(t, infix(lexer.KindOr), infix(lexer.KindEqual))

	assert.Equal(t, infix(lexer.KindPlus), infix(lexer.KindMinus))
	assert.Equal(t, infix(lexer.KindStar), infix(lexer.KindSlash))
	assert.Equal(t, infix(lexer.KindLess), infix(lexer.KindGreaterEqual))
}

func TestPrecedenceRoles(t *testing.T) {
	// Minus works in both positions; unary binds tighter than any binary.
	minus := precedenceOf(lexer.KindMinus)
	assert.Equal(t, precUnary, minus.Prefix)
	assert.Equal(t, precTerm, minus.Infix)
	assert.Greater(t, minus.Prefix, precedenceOf(lexer.KindStar).Infix)

	// Bang is prefix only.
	bang := precedenceOf(lexer.KindBang)
	assert.Equal(t, precUnary, bang.Prefix)
	assert.Equal(t, precNone, bang.Infix)

	// Calls and member access sit at the top infix level.
	assert.Equal(t, precCall, precedenceOf(lexer.KindOpenParen).Infix)
	assert.Equal(t, precCall, precedenceOf(lexer.KindDot).Infix)

	// Assignment operators all share the lowest binding level.
	for _, k := range []lexer.Kind{
		lexer.KindEqual, lexer.KindPlusEqual, lexer.KindMinusEqual,
		lexer.KindStarEqual, lexer.KindSlashEqual,
	} {
		assert.Equal(t, precAssign, precedenceOf(k).Infix, "kind %s", k)
	}

	// Tokens with no operator role stop the climbing loop.
	for _, k := range []lexer.Kind{
		lexer.KindInt, lexer.KindIdent, lexer.KindSemicolon,
		lexer.KindCloseParen, lexer.KindEOF, lexer.KindLet,
	} {
		assert.Equal(t, precNone, precedenceOf(k).Infix, "kind %s", k)
		assert.Equal(t, precNone, precedenceOf(k).Prefix, "kind %s", k)
	}
}
