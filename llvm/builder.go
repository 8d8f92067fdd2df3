package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
*/
import "C"

import "unsafe"

// IRBuilder is used to build LLVM instructions.  A builder is positioned at a
// point inside a basic block and inserts every built instruction there.
type IRBuilder struct {
	c C.LLVMBuilderRef
}

// NewBuilder creates a new IR builder in the context.  The builder starts
// unpositioned: it must be moved into a block before any instruction is built.
func (c *Context) NewBuilder() (irb IRBuilder) {
	irb.c = C.LLVMCreateBuilderInContext(c.c)
	c.takeOwnership(irb)
	return
}

// dispose disposes of the IR builder.
func (irb IRBuilder) dispose() {
	C.LLVMDisposeBuilder(irb.c)
}

// -----------------------------------------------------------------------------

// Block returns the basic block the builder is currently positioned in.
func (irb IRBuilder) Block() (bb BasicBlock) {
	bb.c = C.LLVMGetInsertBlock(irb.c)
	return
}

// MoveToEnd moves the builder to the end of bb.
func (irb IRBuilder) MoveToEnd(bb BasicBlock) {
	C.LLVMPositionBuilderAtEnd(irb.c, bb.c)
}

// MoveBefore moves the builder immediately before instr.
func (irb IRBuilder) MoveBefore(instr Instruction) {
	C.LLVMPositionBuilderBefore(irb.c, instr.c)
}

// -----------------------------------------------------------------------------

// buildResult wraps an instruction ref produced by a build call.
func buildResult(vref C.LLVMValueRef) (instr Instruction) {
	instr.c = vref
	return
}

// BuildRet builds a `ret` instruction returning value.
func (irb IRBuilder) BuildRet(value Value) (term Terminator) {
	term.c = C.LLVMBuildRet(irb.c, value.ptr())
	return
}

// BuildRetVoid builds a `ret void` instruction.
func (irb IRBuilder) BuildRetVoid() (term Terminator) {
	term.c = C.LLVMBuildRetVoid(irb.c)
	return
}

// BuildBr builds an unconditional `br` instruction to dest.
func (irb IRBuilder) BuildBr(dest BasicBlock) (term Terminator) {
	term.c = C.LLVMBuildBr(irb.c, dest.c)
	return
}

// BuildCondBr builds a conditional `br` instruction on cond: to thenBlock if
// cond is true and to elseBlock otherwise.
func (irb IRBuilder) BuildCondBr(cond Value, thenBlock, elseBlock BasicBlock) (term Terminator) {
	term.c = C.LLVMBuildCondBr(irb.c, cond.ptr(), thenBlock.c, elseBlock.c)
	return
}

// -----------------------------------------------------------------------------

// BuildAlloca builds an `alloca` instruction allocating a stack slot of typ.
func (irb IRBuilder) BuildAlloca(typ Type, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildAlloca(irb.c, typ.ptr(), cname))
}

// BuildLoad builds a `load` instruction loading a value of typ from ptr.
func (irb IRBuilder) BuildLoad(typ Type, ptr Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildLoad2(irb.c, typ.ptr(), ptr.ptr(), cname))
}

// BuildStore builds a `store` instruction storing value to ptr.
func (irb IRBuilder) BuildStore(value, ptr Value) Instruction {
	return buildResult(C.LLVMBuildStore(irb.c, value.ptr(), ptr.ptr()))
}

// BuildStructGEP builds a `getelementptr` instruction computing the address
// of field ndx of the struct of structType pointed to by ptr.
func (irb IRBuilder) BuildStructGEP(structType Type, ptr Value, ndx int, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildStructGEP2(irb.c, structType.ptr(), ptr.ptr(), (C.uint)(ndx), cname))
}

// BuildBitCast builds a `bitcast` instruction reinterpreting value as toType.
func (irb IRBuilder) BuildBitCast(value Value, toType Type, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildBitCast(irb.c, value.ptr(), toType.ptr(), cname))
}

// BuildGlobalStringPtr builds a global string constant and returns an `i8*`
// pointer to its first character.
func (irb IRBuilder) BuildGlobalStringPtr(s, name string) Value {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildGlobalStringPtr(irb.c, cs, cname))
}

// -----------------------------------------------------------------------------

// BuildCall builds a `call` instruction calling fn, which must have the
// function type funcType, with args.
func (irb IRBuilder) BuildCall(funcType FunctionType, fn Value, args []Value, name string) Instruction {
	var argArrPtr *C.LLVMValueRef
	if len(args) > 0 {
		argArr := make([]C.LLVMValueRef, len(args))
		for i, arg := range args {
			argArr[i] = arg.ptr()
		}

		argArrPtr = byref(&argArr[0])
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildCall2(irb.c, funcType.c, fn.ptr(), argArrPtr, (C.uint)(len(args)), cname))
}

// BuildPhi builds an empty `phi` instruction of typ.  Incoming values are
// attached separately with AddIncoming once the predecessor blocks exist.
func (irb IRBuilder) BuildPhi(typ Type, name string) (pni PHINodeInstruction) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	pni.c = C.LLVMBuildPhi(irb.c, typ.ptr(), cname)
	return
}

// -----------------------------------------------------------------------------

// BuildAdd builds an `add` instruction.
func (irb IRBuilder) BuildAdd(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildAdd(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildSub builds a `sub` instruction.
func (irb IRBuilder) BuildSub(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildSub(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildMul builds a `mul` instruction.
func (irb IRBuilder) BuildMul(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildMul(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildSDiv builds an `sdiv` instruction.
func (irb IRBuilder) BuildSDiv(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildSDiv(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildSRem builds an `srem` instruction.
func (irb IRBuilder) BuildSRem(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildSRem(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildFAdd builds an `fadd` instruction.
func (irb IRBuilder) BuildFAdd(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildFAdd(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildFSub builds an `fsub` instruction.
func (irb IRBuilder) BuildFSub(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildFSub(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildFMul builds an `fmul` instruction.
func (irb IRBuilder) BuildFMul(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildFMul(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildFDiv builds an `fdiv` instruction.
func (irb IRBuilder) BuildFDiv(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildFDiv(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildFRem builds an `frem` instruction.
func (irb IRBuilder) BuildFRem(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildFRem(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildAnd builds a bitwise `and` instruction.
func (irb IRBuilder) BuildAnd(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildAnd(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildOr builds a bitwise `or` instruction.
func (irb IRBuilder) BuildOr(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildOr(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildXor builds a bitwise `xor` instruction.
func (irb IRBuilder) BuildXor(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildXor(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildShl builds a `shl` instruction.
func (irb IRBuilder) BuildShl(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildShl(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// BuildAShr builds an arithmetic `ashr` instruction.
func (irb IRBuilder) BuildAShr(lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildAShr(irb.c, lhs.ptr(), rhs.ptr(), cname))
}

// -----------------------------------------------------------------------------

// BuildICmp builds an `icmp` instruction comparing two integer values with
// the given predicate.
func (irb IRBuilder) BuildICmp(pred IntPredicate, lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildICmp(irb.c, (C.LLVMIntPredicate)(pred), lhs.ptr(), rhs.ptr(), cname))
}

// BuildFCmp builds an `fcmp` instruction comparing two floating-point values
// with the given predicate.
func (irb IRBuilder) BuildFCmp(pred RealPredicate, lhs, rhs Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildFCmp(irb.c, (C.LLVMRealPredicate)(pred), lhs.ptr(), rhs.ptr(), cname))
}

// -----------------------------------------------------------------------------

// BuildNeg builds an integer negation instruction.
func (irb IRBuilder) BuildNeg(operand Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildNeg(irb.c, operand.ptr(), cname))
}

// BuildFNeg builds an `fneg` instruction.
func (irb IRBuilder) BuildFNeg(operand Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildFNeg(irb.c, operand.ptr(), cname))
}

// BuildNot builds a bitwise complement instruction.
func (irb IRBuilder) BuildNot(operand Value, name string) Instruction {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return buildResult(C.LLVMBuildNot(irb.c, operand.ptr(), cname))
}
