package types

import "fmt"

// Type represents a Sable data type as it exists after inference: the
// annotation codegen reads off every IR node.  Type is a closed sum; all
// consumers switch exhaustively over the variants below.
type Type interface {
	// Returns whether this type is structurally equal to the other type. This
	// should only be called within methods of type instances: external code
	// uses Equals.
	equals(other Type) bool

	// Returns the canonical representative string for this type.  Two types
	// are structurally equal exactly when their representative strings are
	// equal, so Repr doubles as a map key for memoized layout decisions.
	Repr() string
}

// Equals returns whether two types are structurally equal.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// Names of the built-in primitive type constructors.
const (
	ConInt    = "Int"
	ConFloat  = "Float"
	ConString = "String"
	ConBool   = "Bool"
)

// VoidType represents the absence of a value.
type VoidType struct{}

func (vt VoidType) equals(other Type) bool {
	_, ok := other.(VoidType)
	return ok
}

func (vt VoidType) Repr() string {
	return "Void"
}

// -----------------------------------------------------------------------------

// VarType represents an unresolved type variable.  Var types only exist
// before inference completes: one reaching codegen is an internal error.
type VarType struct {
	Name string
}

func (vt VarType) equals(other Type) bool {
	if ovt, ok := other.(VarType); ok {
		return vt.Name == ovt.Name
	}

	return false
}

func (vt VarType) Repr() string {
	return "'" + vt.Name
}

// -----------------------------------------------------------------------------

// ConType represents a named primitive or nominal type: `Int`, `Bool`, or a
// user-defined type name.
type ConType struct {
	Name string
}

func (ct ConType) equals(other Type) bool {
	if oct, ok := other.(ConType); ok {
		return ct.Name == oct.Name
	}

	return false
}

func (ct ConType) Repr() string {
	return ct.Name
}

// -----------------------------------------------------------------------------

// ArrowType represents a function type from From to To.
type ArrowType struct {
	From, To Type
}

func (at *ArrowType) equals(other Type) bool {
	if oat, ok := other.(*ArrowType); ok {
		return at.From.equals(oat.From) && at.To.equals(oat.To)
	}

	return false
}

func (at *ArrowType) Repr() string {
	return fmt.Sprintf("(%s -> %s)", at.From.Repr(), at.To.Repr())
}

// -----------------------------------------------------------------------------

// ProdType represents a right-associated binary product.  N-ary parameter
// lists and closure environments are encoded as nested pairs of this form.
type ProdType struct {
	Left, Right Type
}

func (pt *ProdType) equals(other Type) bool {
	if opt, ok := other.(*ProdType); ok {
		return pt.Left.equals(opt.Left) && pt.Right.equals(opt.Right)
	}

	return false
}

func (pt *ProdType) Repr() string {
	return fmt.Sprintf("(%s * %s)", pt.Left.Repr(), pt.Right.Repr())
}

// -----------------------------------------------------------------------------

// CompType represents the application of a generic type Fn to an argument
// type Arg.  No lowering is defined for composites yet: the constructor is a
// reserved extension point for the producing phase.
type CompType struct {
	Fn, Arg Type
}

func (ct *CompType) equals(other Type) bool {
	if oct, ok := other.(*CompType); ok {
		return ct.Fn.equals(oct.Fn) && ct.Arg.equals(oct.Arg)
	}

	return false
}

func (ct *CompType) Repr() string {
	return fmt.Sprintf("%s[%s]", ct.Fn.Repr(), ct.Arg.Repr())
}

// -----------------------------------------------------------------------------

// Product builds the binary product of two types.
func Product(left, right Type) Type {
	return &ProdType{Left: left, Right: right}
}

// ProductN right-folds a non-empty ordered sequence of types into nested
// binary products: ProductN(a, b, c) = (a * (b * c)).  The caller must never
// pass zero types.
func ProductN(ts ...Type) Type {
	if len(ts) == 0 {
		panic("cannot build the product of zero types")
	}

	res := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		res = &ProdType{Left: ts[i], Right: res}
	}

	return res
}

// Flatten decomposes a right-nested product left to right, reconstructing the
// sequence ProductN was built from.  Non-product types flatten to themselves.
func Flatten(t Type) []Type {
	var ts []Type
	for {
		pt, ok := t.(*ProdType)
		if !ok {
			return append(ts, t)
		}

		ts = append(ts, pt.Left)
		t = pt.Right
	}
}
