package cir

import (
	"fmt"
	"strconv"

	"sable/types"
)

// Lit is a literal value.
type Lit interface {
	// LitType returns the built-in constructor type of the literal.
	LitType() types.Type

	// Repr returns the source form of the literal.
	Repr() string
}

// IntLit is a signed 32-bit integer literal.
type IntLit struct {
	Value int32
}

func (il IntLit) LitType() types.Type {
	return types.ConType{Name: types.ConInt}
}

func (il IntLit) Repr() string {
	return strconv.FormatInt(int64(il.Value), 10)
}

// FloatLit is a double-precision float literal.
type FloatLit struct {
	Value float64
}

func (fl FloatLit) LitType() types.Type {
	return types.ConType{Name: types.ConFloat}
}

func (fl FloatLit) Repr() string {
	return strconv.FormatFloat(fl.Value, 'g', -1, 64)
}

// StrLit is a string literal.
type StrLit struct {
	Value string
}

func (sl StrLit) LitType() types.Type {
	return types.ConType{Name: types.ConString}
}

func (sl StrLit) Repr() string {
	return strconv.Quote(sl.Value)
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (bl BoolLit) LitType() types.Type {
	return types.ConType{Name: types.ConBool}
}

func (bl BoolLit) Repr() string {
	return strconv.FormatBool(bl.Value)
}

// -----------------------------------------------------------------------------

// BinOp represents a binary operator.
type BinOp int

// Enumeration of binary operators.
const (
	OpAdd BinOp = iota // +
	OpSub              // -
	OpMul              // *
	OpDiv              // /
	OpRem              // %
	OpAnd              // &&
	OpOr               // ||
	OpBitXor           // ^
	OpBitAnd           // &
	OpBitOr            // |
	OpShl              // <<
	OpShr              // >>
	OpEq               // ==
	OpLt               // <
	OpLe               // <=
	OpNe               // !=
	OpGe               // >=
	OpGt               // >
)

var binOpStrings = map[BinOp]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpRem:    "%",
	OpAnd:    "&&",
	OpOr:     "||",
	OpBitXor: "^",
	OpBitAnd: "&",
	OpBitOr:  "|",
	OpShl:    "<<",
	OpShr:    ">>",
	OpEq:     "==",
	OpLt:     "<",
	OpLe:     "<=",
	OpNe:     "!=",
	OpGe:     ">=",
	OpGt:     ">",
}

func (op BinOp) String() string {
	if s, ok := binOpStrings[op]; ok {
		return s
	}

	return fmt.Sprintf("BinOp(%d)", int(op))
}

// IsComparison returns whether the operator yields a Bool regardless of its
// operand type.
func (op BinOp) IsComparison() bool {
	return OpEq <= op && op <= OpGt
}

// UnOp represents a unary operator.
type UnOp int

// Enumeration of unary operators.
const (
	OpNot UnOp = iota // !
	OpNeg             // -
)

func (op UnOp) String() string {
	if op == OpNot {
		return "!"
	}

	return "-"
}
