// Package ast defines the syntax tree produced by the parser. Nodes own
// their children root-to-leaves and carry a Position pointing back at the
// source range they were built from.
package ast

import "fmt"

// Span is a half-open byte range into the original source.
type Span struct {
	Start int
	End   int
}

// Position locates a node: its byte span plus the line and column of its
// first character.
type Position struct {
	Span
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is any node in the syntax tree.
type Node interface {
	Pos() Position
}

// Stmt is a standalone unit of the program.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a node that denotes a value.
type Expr interface {
	Node
	exprNode()
}

// ExprStmt wraps an expression used in statement position.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) Pos() Position { return s.Expr.Pos() }
func (s *ExprStmt) stmtNode()     {}

// LetStmt declares a binding: `let [mut] name = value;`.
type LetStmt struct {
	Name     string
	Mutable  bool
	Value    Expr
	Position Position
}

func (s *LetStmt) Pos() Position { return s.Position }
func (s *LetStmt) stmtNode()     {}

// ReturnStmt returns an optional value from the enclosing function. Value
// is nil for a bare `return;`.
type ReturnStmt struct {
	Value    Expr
	Position Position
}

func (s *ReturnStmt) Pos() Position { return s.Position }
func (s *ReturnStmt) stmtNode()     {}

// Literal is a literal value expression.
type Literal struct {
	Value    Lit
	Position Position
}

func (e *Literal) Pos() Position { return e.Position }
func (e *Literal) exprNode()     {}

// Binary applies an infix operator to two operands. Its span covers both.
type Binary struct {
	Op       BinOp
	LHS      Expr
	RHS      Expr
	Position Position
}

func (e *Binary) Pos() Position { return e.Position }
func (e *Binary) exprNode()     {}

// Unary applies a prefix operator to its operand.
type Unary struct {
	Op       UnaryOp
	RHS      Expr
	Position Position
}

func (e *Unary) Pos() Position { return e.Position }
func (e *Unary) exprNode()     {}

// Ident references a name.
type Ident struct {
	Name     string
	Position Position
}

func (e *Ident) Pos() Position { return e.Position }
func (e *Ident) exprNode()     {}

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Expr     Expr
	Position Position
}

func (e *Grouping) Pos() Position { return e.Position }
func (e *Grouping) exprNode()     {}

// Call invokes a named callee with ordered arguments.
type Call struct {
	Name     string
	Args     []Expr
	Position Position
}

func (e *Call) Pos() Position { return e.Position }
func (e *Call) exprNode()     {}

// Assign stores a value into a named target. Compound assignment operators
// are desugared by the parser, so Value already contains the folded binary
// expression.
type Assign struct {
	Name     string
	Value    Expr
	Position Position
}

func (e *Assign) Pos() Position { return e.Position }
func (e *Assign) exprNode()     {}

// If is a conditional expression with an optional else arm. Else is nil, a
// *Block, or another *If for an else-if chain.
type If struct {
	Cond     Expr
	Then     *Block
	Else     Expr
	Position Position
}

func (e *If) Pos() Position { return e.Position }
func (e *If) exprNode()     {}

// Block is a brace-delimited statement list in expression position.
type Block struct {
	Stmts    []Stmt
	Position Position
}

func (e *Block) Pos() Position { return e.Position }
func (e *Block) exprNode()     {}

// While loops over Body while the governing expression holds.
type While struct {
	Expr     Expr
	Body     *Block
	Position Position
}

func (e *While) Pos() Position { return e.Position }
func (e *While) exprNode()     {}

// For loops over Body, governed by a single expression.
type For struct {
	Expr     Expr
	Body     *Block
	Position Position
}

func (e *For) Pos() Position { return e.Position }
func (e *For) exprNode()     {}

// Match pairs a scrutinee with an ordered list of cases.
type Match struct {
	Expr     Expr
	Cases    []Case
	Position Position
}

func (e *Match) Pos() Position { return e.Position }
func (e *Match) exprNode()     {}

// Case pairs a pattern expression with the statements run when it matches.
type Case struct {
	Pattern Expr
	Body    *Block
}

// Lit is a literal payload carried by a Literal expression.
type Lit interface {
	litNode()
}

type IntLit struct{ Value int64 }

type FloatLit struct{ Value float64 }

type CharLit struct{ Value rune }

type StrLit struct{ Value string }

type BoolLit struct{ Value bool }

func (IntLit) litNode()   {}
func (FloatLit) litNode() {}
func (CharLit) litNode()  {}
func (StrLit) litNode()   {}
func (BoolLit) litNode()  {}

// BinOp enumerates infix operators.
type BinOp uint8

const (
	OpPlus BinOp = iota
	OpMinus
	OpStar
	OpSlash
	OpEqualEqual
	OpBangEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpAnd
	OpOr
)

var binOpNames = [...]string{
	OpPlus:         "+",
	OpMinus:        "-",
	OpStar:         "*",
	OpSlash:        "/",
	OpEqualEqual:   "==",
	OpBangEqual:    "!=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpAnd:          "&&",
	OpOr:           "||",
}

func (op BinOp) String() string {
	if int(op) < len(binOpNames) {
		return binOpNames[op]
	}
	return "?"
}

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	OpNegate UnaryOp = iota // -
	OpNot                   // !
)

func (op UnaryOp) String() string {
	if op == OpNegate {
		return "-"
	}
	return "!"
}
