package cir

import (
	"sable/types"
)

// Term represents a closure-converted expression.  Every lambda has already
// been lifted to a top-level FunDef: the only function values left are the
// closures materialized by MakeCls.  Term is a closed sum; consumers switch
// exhaustively over the variants below.
type Term interface {
	term()
}

// TaggedTerm pairs a term with its resolved scheme.  The scheme is the sole
// channel through which codegen learns a node's runtime representation.
type TaggedTerm struct {
	ty   types.Scheme
	node Term
}

// NewTagged tags a term with a scheme.
func NewTagged(ty types.Scheme, node Term) *TaggedTerm {
	return &TaggedTerm{ty: ty, node: node}
}

// Scheme returns the scheme annotating this node.
func (tt *TaggedTerm) Scheme() types.Scheme {
	return tt.ty
}

// Body returns the term carried by this node.
func (tt *TaggedTerm) Body() Term {
	return tt.node
}

// SetScheme sets a resolved scheme onto the node.  This is the single
// controlled mutation of the IR: elaboration replaces the placeholder once,
// before lowering begins.
func (tt *TaggedTerm) SetScheme(ty types.Scheme) {
	tt.ty = ty
}

// Type extracts the resolved type of this node.  The error is an upstream
// inference defect: the node still carries an unresolved slot.
func (tt *TaggedTerm) Type() (types.Type, error) {
	return tt.ty.Body()
}

// -----------------------------------------------------------------------------

// VarDecl is a binder: a name paired with its resolved scheme.  Bound names
// are unique within their binding scope; renaming happened upstream.
type VarDecl struct {
	Name string
	Ty   types.Scheme
}

// -----------------------------------------------------------------------------

// LitTerm is a literal value.
type LitTerm struct {
	Value Lit
}

// VarTerm is a reference to a bound identifier.
type VarTerm struct {
	Name string
}

// ListTerm is a list of elements: `[a, b]`.
type ListTerm struct {
	Elems []*TaggedTerm
}

// BlockTerm is a statement sequence evaluating to its last element:
// `{ print(a); print(b); 1 }`.
type BlockTerm struct {
	Terms []*TaggedTerm
}

// MakeClsTerm allocates the closure value described by Cls, binds it to
// Binder, and evaluates Then in the extended scope.  This is the only site
// where closure environments are materialized.
type MakeClsTerm struct {
	Binder VarDecl
	Cls    *Closure
	Then   *TaggedTerm
}

// ApplyClsTerm invokes a closure value through its indirect entry point.
type ApplyClsTerm struct {
	Callee *TaggedTerm
	Args   []*TaggedTerm
}

// ApplyDirTerm invokes a known, closure-free global function directly.  No
// environment extraction occurs: the callee is statically known to capture
// nothing.
type ApplyDirTerm struct {
	Target VarDecl
	Args   []*TaggedTerm
}

// BinaryTerm is a binary operator application: `a + b`.
type BinaryTerm struct {
	Op       BinOp
	Lhs, Rhs *TaggedTerm
}

// UnaryTerm is a unary operator application: `!a`, `-b`.
type UnaryTerm struct {
	Op      UnOp
	Operand *TaggedTerm
}

// LetTerm binds the value of Bound to Binder and evaluates In:
// `let a = b in a + 1`.
type LetTerm struct {
	Binder VarDecl
	Bound  *TaggedTerm
	In     *TaggedTerm
}

// IfTerm is a conditional expression: `if (a == b) 1 else 0`.  Both arms
// rejoin: the expression evaluates to the value of the taken arm.
type IfTerm struct {
	Cond *TaggedTerm
	Then *TaggedTerm
	Else *TaggedTerm
}

func (*LitTerm) term()      {}
func (*VarTerm) term()      {}
func (*ListTerm) term()     {}
func (*BlockTerm) term()    {}
func (*MakeClsTerm) term()  {}
func (*ApplyClsTerm) term() {}
func (*ApplyDirTerm) term() {}
func (*BinaryTerm) term()   {}
func (*UnaryTerm) term()    {}
func (*LetTerm) term()      {}
func (*IfTerm) term()       {}
