package types

import (
	"fmt"
	"strings"
)

// Scheme represents a type optionally generalized over type variables.  Every
// IR node carries a scheme; codegen only ever sees resolved ones.
type Scheme interface {
	// Body returns the type enclosed by the scheme.  Accessing the body of an
	// unresolved slot returns an UnresolvedError: inference did not complete
	// for the node carrying this scheme.
	Body() (Type, error)

	// Repr returns the representative string for the scheme.
	Repr() string
}

// UnresolvedError indicates an attempt to extract the type from a scheme that
// inference never resolved.  It always marks a defect in an upstream phase.
type UnresolvedError struct{}

func (ue *UnresolvedError) Error() string {
	return "scheme is an unresolved slot"
}

// -----------------------------------------------------------------------------

// MonoScheme is a monomorphic scheme: `Int * Int -> Float`.
type MonoScheme struct {
	typ Type
}

// Mono wraps a type in a monomorphic scheme.
func Mono(typ Type) Scheme {
	return &MonoScheme{typ: typ}
}

func (ms *MonoScheme) Body() (Type, error) {
	return ms.typ, nil
}

func (ms *MonoScheme) Repr() string {
	return ms.typ.Repr()
}

// -----------------------------------------------------------------------------

// PolyScheme is a scheme universally quantified over a list of type variable
// names: `forall a. a * a -> a`.  Instantiation happens upstream; the bound
// name list is preserved exactly because lowering decisions depend on arity.
type PolyScheme struct {
	names []string
	typ   Type
}

// Poly generalizes a type over the given type variable names.
func Poly(names []string, typ Type) Scheme {
	return &PolyScheme{names: names, typ: typ}
}

func (ps *PolyScheme) Body() (Type, error) {
	return ps.typ, nil
}

// Names returns the universally quantified type variable names.
func (ps *PolyScheme) Names() []string {
	return ps.names
}

func (ps *PolyScheme) Repr() string {
	return fmt.Sprintf("forall %s. %s", strings.Join(ps.names, " "), ps.typ.Repr())
}

// -----------------------------------------------------------------------------

// SlotScheme is the placeholder scheme of a node whose type has not been
// inferred yet.  No slot may survive into the IR consumed by codegen.
type SlotScheme struct{}

// Slot returns the unresolved placeholder scheme.
func Slot() Scheme {
	return &SlotScheme{}
}

func (ss *SlotScheme) Body() (Type, error) {
	return nil, &UnresolvedError{}
}

func (ss *SlotScheme) Repr() string {
	return "_"
}

// -----------------------------------------------------------------------------

// Arrow builds the monomorphic scheme of a function type from from to to.
func Arrow(from, to Type) Scheme {
	return Mono(&ArrowType{From: from, To: to})
}

// Con builds the monomorphic scheme of a named type.
func Con(name string) Scheme {
	return Mono(ConType{Name: name})
}

// SchemeEquals returns whether two schemes have structurally equal bodies and
// the same quantification shape.
func SchemeEquals(a, b Scheme) bool {
	return a.Repr() == b.Repr()
}
