package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota

	// KindError carries a message in Token.Text describing why the scanner
	// could not classify the input. It flows through the token stream like
	// any other kind; the parser decides what to do with it.
	KindError

	// single character tokens
	KindOpenParen    // (
	KindCloseParen   // )
	KindOpenBracket  // [
	KindCloseBracket // ]
	KindOpenBrace    // {
	KindCloseBrace   // }
	KindComma        // ,
	KindDot          // .
	KindSemicolon    // ;

	// two or more character tokens
	KindAnd            // &&
	KindOr             // ||
	KindRange          // ..
	KindRangeInclusive // ..=

	// single or double character tokens
	KindEqual        // =
	KindEqualEqual   // ==
	KindBang         // !
	KindBangEqual    // !=
	KindGreater      // >
	KindGreaterEqual // >=
	KindLess         // <
	KindLessEqual    // <=
	KindPlus         // +
	KindPlusEqual    // +=
	KindMinus        // -
	KindMinusEqual   // -=
	KindStar         // *
	KindStarEqual    // *=
	KindSlash        // /
	KindSlashEqual   // /=

	// literals; the decoded or raw text lives in Token.Text
	KindStr
	KindChar
	KindInt
	KindFloat

	KindIdent

	// keywords
	// true and false are boolean literals, but they are lexed as keywords
	// and turned into literal nodes by the parser.
	KindClass
	KindElse
	KindFalse
	KindFor
	KindFun
	KindIf
	KindImpls
	KindImport
	KindMatch
	KindMut
	KindReturn
	KindTrait
	KindTrue
	KindLet
	KindWhile
)

var kindNames = [...]string{
	KindEOF:            "Eof",
	KindError:          "Error",
	KindOpenParen:      "OpenParen",
	KindCloseParen:     "CloseParen",
	KindOpenBracket:    "OpenBracket",
	KindCloseBracket:   "CloseBracket",
	KindOpenBrace:      "OpenBrace",
	KindCloseBrace:     "CloseBrace",
	KindComma:          "Comma",
	KindDot:            "Dot",
	KindSemicolon:      "Semicolon",
	KindAnd:            "And",
	KindOr:             "Or",
	KindRange:          "Range",
	KindRangeInclusive: "RangeInclusive",
	KindEqual:          "Equal",
	KindEqualEqual:     "EqualEqual",
	KindBang:           "Bang",
	KindBangEqual:      "BangEqual",
	KindGreater:        "Greater",
	KindGreaterEqual:   "GreaterEqual",
	KindLess:           "Less",
	KindLessEqual:      "LessEqual",
	KindPlus:           "Plus",
	KindPlusEqual:      "PlusEqual",
	KindMinus:          "Minus",
	KindMinusEqual:     "MinusEqual",
	KindStar:           "Star",
	KindStarEqual:      "StarEqual",
	KindSlash:          "Slash",
	KindSlashEqual:     "SlashEqual",
	KindStr:            "Str",
	KindChar:           "Char",
	KindInt:            "Int",
	KindFloat:          "Float",
	KindIdent:          "Ident",
	KindClass:          "Class",
	KindElse:           "Else",
	KindFalse:          "False",
	KindFor:            "For",
	KindFun:            "Fun",
	KindIf:             "If",
	KindImpls:          "Impls",
	KindImport:         "Import",
	KindMatch:          "Match",
	KindMut:            "Mut",
	KindReturn:         "Return",
	KindTrait:          "Trait",
	KindTrue:           "True",
	KindLet:            "Let",
	KindWhile:          "While",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is a classified lexeme pointing back to the source. Line and Column
// locate the first character; [Start, End) is the byte span of the whole
// lexeme. Text carries the payload for literal, identifier and error kinds
// and is empty for fixed-shape tokens.
type Token struct {
	Kind   Kind
	Text   string
	Line   uint32
	Column uint32
	Start  int
	End    int
}

// Lexeme returns the raw source slice the token was produced from.
func (t Token) Lexeme(source string) string {
	if t.Start < 0 || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return source[t.Start:t.End]
}

func (t Token) String() string {
	if t.Text != "" {
		return t.Kind.String() + "(" + t.Text + ")"
	}
	return t.Kind.String()
}
