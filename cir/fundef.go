package cir

import (
	"fmt"

	"sable/types"
)

// FunDef represents one lambda-lifted global function.  It is created once by
// closure conversion, immutable afterward, and consumed exactly once by
// codegen to emit one native function plus, if it captures anything, one
// environment struct type.
type FunDef struct {
	name     string
	params   []VarDecl
	freevars []VarDecl
	body     *TaggedTerm
	ty       types.Scheme
}

// NewFunDef creates a function definition.  params excludes captured
// variables; freevars is the ordered list of variables the body references
// from its defining environment.  The freevar order is load-bearing: it fixes
// the field order of the environment struct closures pass at call time.
func NewFunDef(name string, ty types.Scheme, params, freevars []VarDecl, body *TaggedTerm) *FunDef {
	return &FunDef{
		name:     name,
		params:   params,
		freevars: freevars,
		body:     body,
		ty:       ty,
	}
}

// Name returns the function's global identifier.  It is also the emitted
// symbol name: the mapping must stay stable for reproducible builds.
func (fd *FunDef) Name() string {
	return fd.name
}

// Params returns the declared parameter list, excluding captured variables.
func (fd *FunDef) Params() []VarDecl {
	return fd.params
}

// FreeVars returns the ordered captured-variable list.
func (fd *FunDef) FreeVars() []VarDecl {
	return fd.freevars
}

// Body returns the function body.
func (fd *FunDef) Body() *TaggedTerm {
	return fd.body
}

// Type returns the function's declared scheme.
func (fd *FunDef) Type() types.Scheme {
	return fd.ty
}

// -----------------------------------------------------------------------------

// Closure describes a closure value: the global function it dispatches to and
// the concrete identifiers captured at the allocation site, positionally
// aligned with the entry function's freevar list.
type Closure struct {
	entry    string
	actualFV []string
}

// NewClosure creates a closure descriptor.
func NewClosure(entry string, actualFV []string) *Closure {
	return &Closure{entry: entry, actualFV: actualFV}
}

// Entry returns the name of the FunDef the closure invokes.
func (c *Closure) Entry() string {
	return c.entry
}

// ActualFV returns the captured identifiers in entry freevar order.
func (c *Closure) ActualFV() []string {
	return c.actualFV
}

// Check validates the closure against its entry function.  A positional
// mismatch between the captured identifiers and the target's freevar list is
// a closure-conversion defect, never a recoverable condition.
func (c *Closure) Check(target *FunDef) error {
	if len(c.actualFV) != len(target.freevars) {
		return &ArityMismatchError{
			Entry: c.entry,
			Want:  len(target.freevars),
			Got:   len(c.actualFV),
		}
	}

	return nil
}

// ArityMismatchError indicates a closure whose captured-variable list does
// not match its entry function's freevar list.
type ArityMismatchError struct {
	Entry string
	Want  int
	Got   int
}

func (ame *ArityMismatchError) Error() string {
	return fmt.Sprintf(
		"closure over `%s` captures %d variables but its entry expects %d",
		ame.Entry, ame.Got, ame.Want,
	)
}

// -----------------------------------------------------------------------------

// Program is the lowered form of one compilation unit: the lambda-lifted
// function definitions plus the unit's top-level term.
type Program struct {
	// Funcs is the list of lifted function definitions, in emission order.
	Funcs []*FunDef

	// Entry is the top-level term evaluated by the unit's entry function.
	Entry *TaggedTerm
}

// LookupFunc returns the function definition named name, if any.
func (p *Program) LookupFunc(name string) (*FunDef, bool) {
	for _, fd := range p.Funcs {
		if fd.name == name {
			return fd, true
		}
	}

	return nil, false
}
