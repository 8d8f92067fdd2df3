package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sable/cir"
	"sable/llvm"
	"sable/types"
)

func intScheme() types.Scheme {
	return types.Con(types.ConInt)
}

func intLit(n int32) *cir.TaggedTerm {
	return cir.NewTagged(intScheme(), &cir.LitTerm{Value: cir.IntLit{Value: n}})
}

// lowerProgram generates prog into a fresh context without optimization so
// that the emitted shape is inspectable, failing the test on any error.
func lowerProgram(t *testing.T, prog *cir.Program) llvm.Module {
	ctx := llvm.NewContext()
	t.Cleanup(ctx.Dispose)

	mod, err := Generate(ctx, prog, "test", false)
	require.NoError(t, err)

	return mod
}

// closureProgram builds the standard capture scenario:
//
//	fun adder(x) [base] = x + base
//	let base = 40 in let inc = closure(adder, [base]) in inc(2)
func closureProgram() *cir.Program {
	intType := types.ConType{Name: types.ConInt}
	clsTy := types.Arrow(intType, intType)

	adder := cir.NewFunDef(
		"adder",
		types.Arrow(intType, intType),
		[]cir.VarDecl{{Name: "x", Ty: intScheme()}},
		[]cir.VarDecl{{Name: "base", Ty: intScheme()}},
		cir.NewTagged(intScheme(), &cir.BinaryTerm{
			Op:  cir.OpAdd,
			Lhs: cir.NewTagged(intScheme(), &cir.VarTerm{Name: "x"}),
			Rhs: cir.NewTagged(intScheme(), &cir.VarTerm{Name: "base"}),
		}),
	)

	entry := cir.NewTagged(intScheme(), &cir.LetTerm{
		Binder: cir.VarDecl{Name: "base", Ty: intScheme()},
		Bound:  intLit(40),
		In: cir.NewTagged(intScheme(), &cir.MakeClsTerm{
			Binder: cir.VarDecl{Name: "inc", Ty: clsTy},
			Cls:    cir.NewClosure("adder", []string{"base"}),
			Then: cir.NewTagged(intScheme(), &cir.ApplyClsTerm{
				Callee: cir.NewTagged(clsTy, &cir.VarTerm{Name: "inc"}),
				Args:   []*cir.TaggedTerm{intLit(2)},
			}),
		}),
	})

	return &cir.Program{Funcs: []*cir.FunDef{adder}, Entry: entry}
}

func TestFreevarsAddEnvParameter(t *testing.T) {
	intType := types.ConType{Name: types.ConInt}

	identity := cir.NewFunDef(
		"identity",
		types.Arrow(intType, intType),
		[]cir.VarDecl{{Name: "x", Ty: intScheme()}},
		nil,
		cir.NewTagged(intScheme(), &cir.VarTerm{Name: "x"}),
	)

	mod := lowerProgram(t, &cir.Program{
		Funcs: []*cir.FunDef{identity},
		Entry: intLit(0),
	})

	fn, ok := mod.GetFunction("identity")
	require.True(t, ok)

	// A zero-freevar function takes exactly its declared parameters.
	assert.Equal(t, 1, fn.NumParams())
}

func TestCaptureLowering(t *testing.T) {
	mod := lowerProgram(t, closureProgram())

	adder, ok := mod.GetFunction("adder")
	require.True(t, ok)

	// One declared parameter plus the trailing environment pointer.
	assert.Equal(t, 2, adder.NumParams())

	// The entry block unpacks the captured variable through the env struct.
	ir := mod.String()
	assert.Contains(t, ir, "%base = load")
	assert.Contains(t, ir, "getelementptr")
	assert.Contains(t, ir, "bitcast")

	main, ok := mod.GetFunction("main")
	require.True(t, ok)
	assert.False(t, main.IsDeclaration())
}

func TestIfLowersToPhi(t *testing.T) {
	entry := cir.NewTagged(intScheme(), &cir.LetTerm{
		Binder: cir.VarDecl{Name: "x", Ty: intScheme()},
		Bound: cir.NewTagged(intScheme(), &cir.IfTerm{
			Cond: cir.NewTagged(types.Con(types.ConBool), &cir.BinaryTerm{
				Op:  cir.OpLt,
				Lhs: intLit(1),
				Rhs: intLit(2),
			}),
			Then: intLit(1),
			Else: intLit(0),
		}),
		In: cir.NewTagged(intScheme(), &cir.VarTerm{Name: "x"}),
	})

	mod := lowerProgram(t, &cir.Program{Entry: entry})

	main, ok := mod.GetFunction("main")
	require.True(t, ok)

	// Entry, both arms, and the join block.
	assert.Equal(t, 4, main.NumBlocks())

	// The join block starts with a phi over exactly the two arm values.
	var join llvm.BasicBlock
	found := false
	for it := main.Blocks(); it.Next(); {
		if it.Item().Name() == "if.exit" {
			join = it.Item()
			found = true
		}
	}
	require.True(t, found, "the join block should exist")

	first, exists := join.First()
	require.True(t, exists)

	phi := llvm.PHINodeInstruction{Instruction: first}
	assert.Equal(t, 2, phi.NumIncoming())
}

// constantCondProgram binds x = 1 and selects it through a conditional whose
// condition is literally true: `let x = 1 in if true then x else 0`.
func constantCondProgram() *cir.Program {
	entry := cir.NewTagged(intScheme(), &cir.LetTerm{
		Binder: cir.VarDecl{Name: "x", Ty: intScheme()},
		Bound:  intLit(1),
		In: cir.NewTagged(intScheme(), &cir.IfTerm{
			Cond: cir.NewTagged(types.Con(types.ConBool), &cir.LitTerm{
				Value: cir.BoolLit{Value: true},
			}),
			Then: cir.NewTagged(intScheme(), &cir.VarTerm{Name: "x"}),
			Else: intLit(0),
		}),
	})

	return &cir.Program{Entry: entry}
}

func TestConstantCondBranchShape(t *testing.T) {
	mod := lowerProgram(t, constantCondProgram())

	// The condition lowers to a constant branch and the taken arm feeds the
	// bound value through the join phi.
	ir := mod.String()
	assert.Contains(t, ir, "br i1 true")
	assert.Contains(t, ir, "phi i32")
	assert.Contains(t, ir, "%x = load")
}

func TestConstantCondFoldsToBoundValue(t *testing.T) {
	ctx := llvm.NewContext()
	t.Cleanup(ctx.Dispose)

	mod, err := Generate(ctx, constantCondProgram(), "test", true)
	require.NoError(t, err)

	// With the constant branch folded and the slots promoted, the program's
	// value is the bound constant itself.
	main, ok := mod.GetFunction("main")
	require.True(t, ok)
	assert.Equal(t, 1, main.NumBlocks())
	assert.Contains(t, mod.String(), "ret i32 1")
}

func TestDirectCallDeclaresExternal(t *testing.T) {
	intType := types.ConType{Name: types.ConInt}

	entry := cir.NewTagged(intScheme(), &cir.BlockTerm{
		Terms: []*cir.TaggedTerm{
			cir.NewTagged(types.Mono(types.VoidType{}), &cir.ApplyDirTerm{
				Target: cir.VarDecl{
					Name: "print_int",
					Ty:   types.Mono(&types.ArrowType{From: intType, To: types.VoidType{}}),
				},
				Args: []*cir.TaggedTerm{intLit(7)},
			}),
			intLit(0),
		},
	})

	mod := lowerProgram(t, &cir.Program{Entry: entry})

	ext, ok := mod.GetFunction("print_int")
	require.True(t, ok)
	assert.True(t, ext.IsDeclaration())
	assert.Equal(t, 1, ext.NumParams())
}

func TestUnknownClosureEntry(t *testing.T) {
	ctx := llvm.NewContext()
	t.Cleanup(ctx.Dispose)

	intType := types.ConType{Name: types.ConInt}
	entry := cir.NewTagged(intScheme(), &cir.MakeClsTerm{
		Binder: cir.VarDecl{Name: "f", Ty: types.Arrow(intType, intType)},
		Cls:    cir.NewClosure("ghost", nil),
		Then:   intLit(0),
	})

	_, err := Generate(ctx, &cir.Program{Entry: entry}, "test", false)
	require.Error(t, err)

	var ufe *UnknownFunctionError
	assert.ErrorAs(t, err, &ufe)
	assert.Equal(t, "ghost", ufe.Name)
}

func TestClosureArityMismatchAborts(t *testing.T) {
	ctx := llvm.NewContext()
	t.Cleanup(ctx.Dispose)

	prog := closureProgram()

	// Re-bind the closure with an empty capture list against the one-freevar
	// entry.
	intType := types.ConType{Name: types.ConInt}
	prog.Entry = cir.NewTagged(intScheme(), &cir.MakeClsTerm{
		Binder: cir.VarDecl{Name: "inc", Ty: types.Arrow(intType, intType)},
		Cls:    cir.NewClosure("adder", nil),
		Then:   intLit(0),
	})

	_, err := Generate(ctx, prog, "test", false)
	require.Error(t, err)

	var ame *cir.ArityMismatchError
	assert.ErrorAs(t, err, &ame)
	assert.Equal(t, 1, ame.Want)
	assert.Equal(t, 0, ame.Got)
}

func TestDumpIsIdempotent(t *testing.T) {
	mod := lowerProgram(t, closureProgram())

	first := mod.String()
	second := mod.String()

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "; ModuleID ="))
}

func TestOptimizedFunctionsStillVerify(t *testing.T) {
	ctx := llvm.NewContext()
	t.Cleanup(ctx.Dispose)

	mod, err := Generate(ctx, closureProgram(), "test", true)
	require.NoError(t, err)

	adder, ok := mod.GetFunction("adder")
	require.True(t, ok)

	// The straight-line body collapses to a single block and mem2reg strips
	// the parameter spill slots.
	assert.Equal(t, 1, adder.NumBlocks())

	unoptimized := lowerProgram(t, closureProgram())
	assert.Less(t, len(mod.String()), len(unoptimized.String()))
}
