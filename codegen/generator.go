package codegen

import (
	"fmt"

	"sable/cir"
	"sable/llvm"
	"sable/report"
	"sable/types"
)

// Generator holds the state of one code generation run: one compilation unit
// lowered into one LLVM module.  Generation is single-threaded and performs no
// I/O; the caller decides what to do with the finished module.
type Generator struct {
	// The LLVM context owning everything generated.
	ctx *llvm.Context

	// The LLVM module being generated.
	mod llvm.Module

	// The IR builder for this generator.
	irb llvm.IRBuilder

	// The pass manager run over each finished function.
	fpm llvm.FunctionPassManager

	// The program being lowered.
	prog *cir.Program

	// The declared functions of the module by IR name.
	fns map[string]declaredFn

	// The memoized aggregate types of the module keyed by type repr.
	structTypes map[string]llvm.StructType

	// The current LLVM function being generated.
	fn llvm.Function

	// The stack of local scopes.  Every name maps to its stack slot.
	scopes []map[string]llvm.Value

	// Whether the optimization pipeline runs over finished functions.
	optimize bool
}

// declaredFn pairs a declared LLVM function with its creation type.
type declaredFn struct {
	fn llvm.Function
	ty llvm.FunctionType
}

// Generate lowers a closure-converted program into a new LLVM module named
// name.  Every generated function is verified; if optimize is set, the
// standard pass pipeline runs over it first.  The returned module is owned by
// ctx and lives until ctx is disposed.
func Generate(ctx *llvm.Context, prog *cir.Program, name string, optimize bool) (llvm.Module, error) {
	g := Generator{
		ctx:         ctx,
		mod:         ctx.NewModule(name),
		irb:         ctx.NewBuilder(),
		prog:        prog,
		fns:         make(map[string]declaredFn),
		structTypes: make(map[string]llvm.StructType),
		optimize:    optimize,
	}

	g.fpm = ctx.NewFunctionPassManager(g.mod)
	g.fpm.AddStandardPasses()

	// Declare every function up front so bodies can reference functions
	// defined after them.
	for _, fd := range prog.Funcs {
		if err := g.declareFunDef(fd); err != nil {
			return g.mod, err
		}
	}

	// Generate all the function bodies.
	for _, fd := range prog.Funcs {
		if err := g.generateFunDef(fd); err != nil {
			return g.mod, err
		}
	}

	// Generate the unit entry function around the top-level term.
	if err := g.generateEntry(); err != nil {
		return g.mod, err
	}

	g.fpm.Finalize()
	return g.mod, nil
}

// -----------------------------------------------------------------------------

// VerifyError indicates that a generated function failed LLVM verification.
// It always marks a defect in the generator itself, never in the input.
type VerifyError struct {
	FuncName string
}

func (ve *VerifyError) Error() string {
	return fmt.Sprintf("generated function `%s` failed verification", ve.FuncName)
}

// UnknownFunctionError indicates a closure or direct call referencing a
// function the program never defines or declares.
type UnknownFunctionError struct {
	Name string
}

func (ufe *UnknownFunctionError) Error() string {
	return fmt.Sprintf("reference to unknown function `%s`", ufe.Name)
}

// -----------------------------------------------------------------------------

// pushScope pushes a new local scope onto the scope stack.
func (g *Generator) pushScope() {
	g.scopes = append(g.scopes, make(map[string]llvm.Value))
}

// popScope pops the top local scope off the scope stack.
func (g *Generator) popScope() {
	g.scopes = g.scopes[:len(g.scopes)-1]
}

// defineLocal binds name to its stack slot in the innermost scope.
func (g *Generator) defineLocal(name string, slot llvm.Value) {
	g.scopes[len(g.scopes)-1][name] = slot
}

// lookupLocal finds the stack slot of name, searching innermost scope first.
func (g *Generator) lookupLocal(name string) (llvm.Value, bool) {
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if slot, ok := g.scopes[i][name]; ok {
			return slot, true
		}
	}

	return nil, false
}

// -----------------------------------------------------------------------------

// runPasses optimizes and verifies a finished function.
func (g *Generator) runPasses(name string, fn llvm.Function) error {
	if g.optimize {
		g.fpm.Run(fn)
	}

	if !fn.Verify() {
		return &VerifyError{FuncName: name}
	}

	return nil
}

// schemeType extracts the resolved type from a scheme, reporting an ICE if the
// scheme is still an unresolved slot: no slot may survive into codegen.
func schemeType(what string, s types.Scheme) types.Type {
	typ, err := s.Body()
	if err != nil {
		report.ReportICE("%s carries an unresolved scheme", what)
	}

	return typ
}

// isVoid returns whether typ is the void type.
func isVoid(typ types.Type) bool {
	_, ok := typ.(types.VoidType)
	return ok
}
