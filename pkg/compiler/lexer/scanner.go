package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner performs lexical analysis on Lyra source. It computes one token
// per call to Next and keeps a byte cursor plus line/column counters, so
// every token points back at the exact source range it came from.
//
// The scanner never fails: input it cannot classify becomes a KindError
// token carrying a message, and the stream continues after it. After the
// end of input, Next returns KindEOF forever.
type Scanner struct {
	source string
	cursor int
	line   uint32
	column uint32
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

var keywords = map[string]Kind{
	"class":  KindClass,
	"else":   KindElse,
	"false":  KindFalse,
	"for":    KindFor,
	"fun":    KindFun,
	"if":     KindIf,
	"impls":  KindImpls,
	"import": KindImport,
	"match":  KindMatch,
	"mut":    KindMut,
	"return": KindReturn,
	"trait":  KindTrait,
	"true":   KindTrue,
	"let":    KindLet,
	"while":  KindWhile,
}

// Next returns the next token from the source.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	line, column, start := s.line, s.column, s.cursor

	if s.atEnd() {
		return Token{Kind: KindEOF, Line: line, Column: column, Start: start, End: start}
	}

	r := s.next()

	switch r {
	case '(':
		return s.token(KindOpenParen, "", start, line, column)
	case ')':
		return s.token(KindCloseParen, "", start, line, column)
	case '[':
		return s.token(KindOpenBracket, "", start, line, column)
	case ']':
		return s.token(KindCloseBracket, "", start, line, column)
	case '{':
		return s.token(KindOpenBrace, "", start, line, column)
	case '}':
		return s.token(KindCloseBrace, "", start, line, column)
	case ',':
		return s.token(KindComma, "", start, line, column)
	case ';':
		return s.token(KindSemicolon, "", start, line, column)

	case '.':
		// `.` alone, `..`, or `..=`
		if s.peek() == '.' {
			s.advance()
			if s.peek() == '=' {
				s.advance()
				return s.token(KindRangeInclusive, "", start, line, column)
			}
			return s.token(KindRange, "", start, line, column)
		}
		return s.token(KindDot, "", start, line, column)

	// `&` and `|` only exist as the doubled forms
	case '&':
		return s.pair('&', KindAnd, start, line, column)
	case '|':
		return s.pair('|', KindOr, start, line, column)

	case '=':
		return s.singleOrDouble(KindEqual, KindEqualEqual, start, line, column)
	case '!':
		return s.singleOrDouble(KindBang, KindBangEqual, start, line, column)
	case '>':
		return s.singleOrDouble(KindGreater, KindGreaterEqual, start, line, column)
	case '<':
		return s.singleOrDouble(KindLess, KindLessEqual, start, line, column)
	case '+':
		return s.singleOrDouble(KindPlus, KindPlusEqual, start, line, column)
	case '-':
		return s.singleOrDouble(KindMinus, KindMinusEqual, start, line, column)
	case '*':
		return s.singleOrDouble(KindStar, KindStarEqual, start, line, column)
	case '/':
		return s.singleOrDouble(KindSlash, KindSlashEqual, start, line, column)

	case '"':
		return s.scanString(start, line, column)
	case '\'':
		return s.scanChar(start, line, column)
	}

	switch {
	case isDigit(r):
		return s.scanNumber(start, line, column)
	case isIdentStart(r):
		return s.scanIdent(start, line, column)
	}

	return s.errorToken(fmt.Sprintf("unknown character `%c` found in source", r), start, line, column)
}

func (s *Scanner) token(kind Kind, text string, start int, line, column uint32) Token {
	return Token{Kind: kind, Text: text, Line: line, Column: column, Start: start, End: s.cursor}
}

func (s *Scanner) errorToken(message string, start int, line, column uint32) Token {
	return s.token(KindError, message, start, line, column)
}

// pair expects the rune just consumed to repeat immediately, as in `&&` and
// `||`. There is no single-character fallback for these operators.
func (s *Scanner) pair(want rune, kind Kind, start int, line, column uint32) Token {
	if s.peek() == want {
		s.advance()
		return s.token(kind, "", start, line, column)
	}
	return s.errorToken(
		fmt.Sprintf("lone `%c` is not an operator, expected `%c%c`", want, want, want),
		start, line, column,
	)
}

// singleOrDouble resolves operators like `=`/`==` with one character of
// lookahead: a following `=` is consumed into the compound form.
func (s *Scanner) singleOrDouble(single, double Kind, start int, line, column uint32) Token {
	if s.peek() == '=' {
		s.advance()
		return s.token(double, "", start, line, column)
	}
	return s.token(single, "", start, line, column)
}

func (s *Scanner) scanString(start int, line, column uint32) Token {
	var value strings.Builder

	for {
		if s.atEnd() {
			return s.errorToken(
				"unterminated string literal, expected closing quote before end of file",
				start, line, column,
			)
		}
		r := s.peek()
		if r == '"' {
			s.advance()
			return s.token(KindStr, value.String(), start, line, column)
		}
		if r == '\\' {
			s.advance()
			if s.atEnd() {
				continue
			}
			switch e := s.next(); e {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			case '\\', '"', '\'':
				value.WriteRune(e)
			default:
				// Unknown escapes pass through verbatim.
				value.WriteByte('\\')
				value.WriteRune(e)
			}
			continue
		}
		value.WriteRune(s.next())
	}
}

func (s *Scanner) scanChar(start int, line, column uint32) Token {
	if s.atEnd() {
		return s.errorToken(
			"unterminated char literal, expected closing single quote",
			start, line, column,
		)
	}

	value := s.next()
	if value == '\'' {
		return s.errorToken(
			"empty char literal, expected a character between the quotes",
			start, line, column,
		)
	}

	if s.peek() != '\'' {
		return s.errorToken(
			"unterminated char literal, expected closing single quote",
			start, line, column,
		)
	}
	s.advance()

	return s.token(KindChar, string(value), start, line, column)
}

// scanNumber consumes a maximal run of decimal digits, becoming a float if a
// dot with further digits follows. A second dot is never absorbed: `4.2.1`
// lexes as Float(4.2), Dot, Int(1). Values stay as digit strings here; range
// checking belongs to the consumer.
func (s *Scanner) scanNumber(start int, line, column uint32) Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	kind := KindInt
	if s.peek() == '.' && isDigit(s.peekAfter(1)) {
		kind = KindFloat
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.token(kind, s.source[start:s.cursor], start, line, column)
}

// scanIdent consumes a maximal identifier and only then classifies it
// against the keyword set, so `classy` can never split into `class` + `y`.
func (s *Scanner) scanIdent(start int, line, column uint32) Token {
	for isIdentContinue(s.peek()) {
		s.advance()
	}

	text := s.source[start:s.cursor]
	if kind, ok := keywords[text]; ok {
		return s.token(kind, "", start, line, column)
	}
	return s.token(KindIdent, text, start, line, column)
}

// skipWhitespace discards Pattern_White_Space. Newlines go through a
// dedicated path that bumps the line counter and resets the column.
func (s *Scanner) skipWhitespace() {
	for !s.atEnd() {
		r := s.peek()
		switch {
		case r == '\n':
			s.advanceLine()
		case unicode.Is(unicode.Pattern_White_Space, r):
			s.advance()
		default:
			return
		}
	}
}

// next consumes one rune while staying newline-aware, so multi-line tokens
// such as strings keep the line counter accurate.
func (s *Scanner) next() rune {
	if s.peek() == '\n' {
		s.advanceLine()
		return '\n'
	}
	return s.advance()
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.cursor:])
	s.cursor += size
	s.column++
	return r
}

func (s *Scanner) advanceLine() {
	s.cursor++ // `\n` is a single byte
	s.line++
	s.column = 1
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.cursor:])
	return r
}

func (s *Scanner) peekAfter(offset int) rune {
	if s.cursor+offset >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.cursor+offset:])
	return r
}

func (s *Scanner) atEnd() bool {
	return s.cursor >= len(s.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Identifier classes follow the go/scanner convention: letters and `_`
// start an identifier, letters and digits continue one.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
