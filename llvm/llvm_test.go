package llvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	ctx := NewContext()
	t.Cleanup(ctx.Dispose)
	return ctx
}

func TestStructType(t *testing.T) {
	ctx := newTestContext(t)

	st := ctx.NewStructType(false, ctx.Int32Type(), ctx.DoubleType())

	assert.Equal(t, 2, st.NumFields())
	assert.False(t, st.IsPacked())
	assert.Equal(t, IntegerTypeKind, st.FieldType(0).Kind())
	assert.Equal(t, DoubleTypeKind, st.FieldType(1).Kind())
}

func TestFunctionType(t *testing.T) {
	ctx := newTestContext(t)

	ft := NewFunctionType(ctx.VoidType(), []Type{ctx.Int32Type(), ctx.Int1Type()}, false)

	assert.Equal(t, 2, ft.NumParams())
	assert.False(t, ft.IsVarArg())
	assert.Equal(t, VoidTypeKind, ft.ReturnType().Kind())
}

func TestModuleFunctions(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")

	ft := NewFunctionType(ctx.Int32Type(), nil, false)
	mod.AddFunction("f", ft)

	fn, exists := mod.GetFunction("f")
	assert.True(t, exists)
	assert.Equal(t, "f", fn.Name())
	assert.True(t, fn.IsDeclaration())

	_, exists = mod.GetFunction("missing")
	assert.False(t, exists)

	// DeclareFunction fetches the existing declaration instead of duplicating
	// it.
	again := mod.DeclareFunction("f", ft)
	assert.Equal(t, "f", again.Name())

	count := 0
	for it := mod.Functions(); it.Next(); {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestIntArrayAndPointerTypes(t *testing.T) {
	ctx := newTestContext(t)

	assert.Equal(t, uint(1), ctx.Int1Type().BitWidth())
	assert.Equal(t, uint(16), ctx.Int16Type().BitWidth())
	assert.Equal(t, uint(32), ctx.Int32Type().BitWidth())

	at := NewArrayType(ctx.Int8Type(), 16)
	assert.Equal(t, ArrayTypeKind, at.Kind())
	assert.Equal(t, 16, at.Len())

	pt := NewPointerType(ctx.DoubleType())
	assert.Equal(t, PointerTypeKind, pt.Kind())
	assert.Equal(t, DoubleTypeKind, pt.ElemType().Kind())
}

func TestIterationStopsAtEnd(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")
	irb := ctx.NewBuilder()

	ft := NewFunctionType(ctx.Int32Type(), []Type{ctx.Int32Type()}, false)
	fn := mod.AddFunction("twice", ft)

	entry := fn.AppendBlock("entry")
	irb.MoveToEnd(entry)
	doubled := irb.BuildAdd(fn.GetParam(0), fn.GetParam(0), "doubled")
	irb.BuildRet(doubled)

	// Walking past the last element terminates instead of fetching through a
	// nil handle.
	instrs := 0
	for it := entry.Instructions(); it.Next(); {
		instrs++
	}
	assert.Equal(t, 2, instrs)

	blocks := 0
	for it := fn.Blocks(); it.Next(); {
		blocks++
	}
	assert.Equal(t, 1, blocks)

	// A bodiless declaration yields an immediately exhausted iterator.
	decl := mod.AddFunction("external", ft)
	for it := decl.Blocks(); it.Next(); {
		t.Fatal("a declaration should have no blocks to yield")
	}

	fns := 0
	for it := mod.Functions(); it.Next(); {
		fns++
	}
	assert.Equal(t, 2, fns)
}

func TestBuildFunctionBody(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")
	irb := ctx.NewBuilder()

	ft := NewFunctionType(ctx.Int32Type(), []Type{ctx.Int32Type()}, false)
	fn := mod.AddFunction("inc", ft)

	bb := fn.AppendBlock("entry")
	irb.MoveToEnd(bb)
	sum := irb.BuildAdd(fn.GetParam(0), ctx.ConstInt32(1), "sum")
	irb.BuildRet(sum)

	assert.Equal(t, 1, fn.NumBlocks())
	assert.True(t, fn.Verify())

	assert.Equal(t, 2, sum.NumOperands())
	assert.False(t, sum.GetOperand(0).IsConstant())
	assert.True(t, sum.GetOperand(1).IsConstant())

	term, exists := bb.Terminator()
	require.True(t, exists)
	assert.True(t, term.IsTerminator())
}

func TestPhiIncoming(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")
	irb := ctx.NewBuilder()

	ft := NewFunctionType(ctx.Int32Type(), []Type{ctx.Int1Type()}, false)
	fn := mod.AddFunction("select", ft)

	entry := fn.AppendBlock("entry")
	left := fn.AppendBlock("left")
	right := fn.AppendBlock("right")
	join := fn.AppendBlock("join")

	irb.MoveToEnd(entry)
	br := irb.BuildCondBr(fn.GetParam(0), left, right)
	assert.Equal(t, 2, br.NumSuccessors())
	assert.Equal(t, "left", br.GetSuccessor(0).Name())
	assert.Equal(t, "right", br.GetSuccessor(1).Name())

	irb.MoveToEnd(left)
	irb.BuildBr(join)
	irb.MoveToEnd(right)
	irb.BuildBr(join)

	irb.MoveToEnd(join)
	phi := irb.BuildPhi(ctx.Int32Type(), "value")
	phi.AddIncoming(
		PHIIncoming{Value: ctx.ConstInt32(1), Block: left},
		PHIIncoming{Value: ctx.ConstInt32(0), Block: right},
	)
	irb.BuildRet(phi)

	assert.Equal(t, 2, phi.NumIncoming())
	assert.Equal(t, "left", phi.GetIncoming(0).Block.Name())
	assert.Equal(t, "right", phi.GetIncoming(1).Block.Name())
	assert.True(t, fn.Verify())
}

func TestModuleVerify(t *testing.T) {
	ctx := newTestContext(t)
	mod := ctx.NewModule("test")
	irb := ctx.NewBuilder()

	ft := NewFunctionType(ctx.Int32Type(), nil, false)
	fn := mod.AddFunction("zero", ft)
	irb.MoveToEnd(fn.AppendBlock("entry"))
	irb.BuildRet(ctx.ConstInt32(0))

	assert.NoError(t, mod.Verify())
	assert.Equal(t, mod.String(), mod.String())
}
