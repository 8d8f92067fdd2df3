package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
#include "llvm-c/Analysis.h"
*/
import "C"

import "unsafe"

// Instruction represents an LLVM instruction.
type Instruction struct {
	UserValue
}

// IsTerminator returns whether the instruction is a terminator.
func (instr Instruction) IsTerminator() bool {
	return C.LLVMIsATerminatorInst(instr.c) != nil
}

// Parent returns the parent block of the instruction.
func (instr Instruction) Parent() BasicBlock {
	return BasicBlock{c: C.LLVMGetInstructionParent(instr.c)}
}

// -----------------------------------------------------------------------------

// IntPredicate represents the predicate of an `icmp` instruction.
type IntPredicate C.LLVMIntPredicate

// Enumeration of valid int predicates.
const (
	IntEQ  IntPredicate = C.LLVMIntEQ
	IntNE  IntPredicate = C.LLVMIntNE
	IntUGT IntPredicate = C.LLVMIntUGT
	IntUGE IntPredicate = C.LLVMIntUGE
	IntULT IntPredicate = C.LLVMIntULT
	IntULE IntPredicate = C.LLVMIntULE
	IntSGT IntPredicate = C.LLVMIntSGT
	IntSGE IntPredicate = C.LLVMIntSGE
	IntSLT IntPredicate = C.LLVMIntSLT
	IntSLE IntPredicate = C.LLVMIntSLE
)

// RealPredicate represents the predicate of an `fcmp` instruction.
type RealPredicate C.LLVMRealPredicate

// Enumeration of the ordered real predicates the back end emits.
const (
	RealOEQ RealPredicate = C.LLVMRealOEQ
	RealOGT RealPredicate = C.LLVMRealOGT
	RealOGE RealPredicate = C.LLVMRealOGE
	RealOLT RealPredicate = C.LLVMRealOLT
	RealOLE RealPredicate = C.LLVMRealOLE
	RealONE RealPredicate = C.LLVMRealONE
)

// -----------------------------------------------------------------------------

// Terminator represents a terminator instruction.
type Terminator struct {
	Instruction
}

// NumSuccessors returns the number of successors of this terminator.
func (term Terminator) NumSuccessors() int {
	return int(C.LLVMGetNumSuccessors(term.c))
}

// GetSuccessor gets the successor of this terminator at ndx.
func (term Terminator) GetSuccessor(ndx int) BasicBlock {
	if 0 <= ndx && ndx < term.NumSuccessors() {
		return BasicBlock{c: C.LLVMGetSuccessor(term.c, (C.uint)(ndx))}
	}

	panic("error: successor index out of bounds")
}

// -----------------------------------------------------------------------------

// PHINodeInstruction represents a `phi` instruction.
type PHINodeInstruction struct {
	Instruction
}

// PHIIncoming represents an incoming in a `phi` instruction.
type PHIIncoming struct {
	// The incoming value.
	Value Value

	// The incoming block.
	Block BasicBlock
}

// AddIncoming attaches incoming (value, predecessor block) pairs to the PHI
// node.  The phi is created empty first so that predecessor branches can
// reference its block before the join's inputs are known; incoming pairs are
// attached once all predecessors exist.
func (pni PHINodeInstruction) AddIncoming(incoming ...PHIIncoming) {
	if len(incoming) == 0 {
		return
	}

	incomingValues := make([]C.LLVMValueRef, len(incoming))
	incomingBlocks := make([]C.LLVMBasicBlockRef, len(incoming))

	for i, inc := range incoming {
		incomingValues[i] = inc.Value.ptr()
		incomingBlocks[i] = inc.Block.c
	}

	C.LLVMAddIncoming(pni.c, byref(&incomingValues[0]), byref(&incomingBlocks[0]), (C.uint)(len(incoming)))
}

// NumIncoming returns the number of incoming pairs of the PHI node.
func (pni PHINodeInstruction) NumIncoming() int {
	return int(C.LLVMCountIncoming(pni.c))
}

// GetIncoming returns the incoming pair of the PHI node at ndx.
func (pni PHINodeInstruction) GetIncoming(ndx int) (incoming PHIIncoming) {
	if 0 <= ndx && ndx < pni.NumIncoming() {
		incoming.Value = valueBase{c: C.LLVMGetIncomingValue(pni.c, (C.uint)(ndx))}
		incoming.Block = BasicBlock{c: C.LLVMGetIncomingBlock(pni.c, (C.uint)(ndx))}
		return
	}

	panic("error: incoming index out of bounds")
}

// -----------------------------------------------------------------------------

// BasicBlock represents an LLVM basic block.
type BasicBlock struct {
	c C.LLVMBasicBlockRef
}

// Name returns the name of the basic block.
func (bb BasicBlock) Name() string {
	return C.GoString(C.LLVMGetBasicBlockName(bb.c))
}

// Terminator returns the terminator instruction of the basic block.
func (bb BasicBlock) Terminator() (in Instruction, exists bool) {
	termPtr := C.LLVMGetBasicBlockTerminator(bb.c)

	if termPtr != nil {
		in.c = termPtr
		exists = true
	}

	return
}

// Parent returns the parent function of the basic block.
func (bb BasicBlock) Parent() (fn Function) {
	fn.c = C.LLVMGetBasicBlockParent(bb.c)
	return
}

// instrIter is an iterator over the instructions of a basic block.
type instrIter struct {
	curr, next C.LLVMValueRef
}

func (it *instrIter) Item() (instr Instruction) {
	instr.c = it.curr
	return
}

func (it *instrIter) Next() bool {
	it.curr = it.next
	if it.curr == nil {
		return false
	}

	it.next = C.LLVMGetNextInstruction(it.curr)
	return true
}

// Instructions returns an iterator over the instructions of the basic block.
func (bb BasicBlock) Instructions() Iterator[Instruction] {
	return &instrIter{next: C.LLVMGetFirstInstruction(bb.c)}
}

// First returns the first instruction in the basic block.
func (bb BasicBlock) First() (instr Instruction, exists bool) {
	instrPtr := C.LLVMGetFirstInstruction(bb.c)

	if instrPtr != nil {
		instr.c = instrPtr
		exists = true
	}

	return
}

// -----------------------------------------------------------------------------

// Function represents an LLVM function: a global value refined to function
// identity.  Functions are borrowed from their parent module.
type Function struct {
	valueBase

	// The parent module context of the function.
	mctx C.LLVMContextRef
}

// NumParams returns the number of parameters of the function.
func (f Function) NumParams() int {
	return int(C.LLVMCountParams(f.c))
}

// GetParam returns the function parameter at index ndx.
func (f Function) GetParam(ndx int) (p Value) {
	if 0 <= ndx && ndx < f.NumParams() {
		return valueBase{c: C.LLVMGetParam(f.c, (C.uint)(ndx))}
	}

	panic("error: parameter index out of bounds")
}

// IsDeclaration returns whether the function has no body.
func (f Function) IsDeclaration() bool {
	return C.LLVMIsDeclaration(f.c) == 1
}

// ValueType returns the function type of the function.
func (f Function) ValueType() FunctionType {
	return FunctionType{typeBase{c: C.LLVMGlobalGetValueType(f.c)}}
}

// NumBlocks returns the number of basic blocks in the function body.
func (f Function) NumBlocks() int {
	return int(C.LLVMCountBasicBlocks(f.c))
}

// EntryBlock returns the entry basic block of the function.
func (f Function) EntryBlock() BasicBlock {
	return BasicBlock{c: C.LLVMGetEntryBasicBlock(f.c)}
}

// bodyIter is an iterator over the basic blocks of a function.
type bodyIter struct {
	curr, next C.LLVMBasicBlockRef
}

func (it *bodyIter) Item() (bb BasicBlock) {
	bb.c = it.curr
	return
}

func (it *bodyIter) Next() bool {
	it.curr = it.next
	if it.curr == nil {
		return false
	}

	it.next = C.LLVMGetNextBasicBlock(it.curr)
	return true
}

// Blocks returns an iterator over the basic blocks of the function.
func (f Function) Blocks() Iterator[BasicBlock] {
	return &bodyIter{next: C.LLVMGetFirstBasicBlock(f.c)}
}

// AppendBlock appends a new named basic block to the function in the
// function's context.
func (f Function) AppendBlock(name string) (bb BasicBlock) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	bb.c = C.LLVMAppendBasicBlockInContext(f.mctx, f.c, cname)
	return
}

// Verify checks the function for structural validity.  The check reports
// pass/fail only: a failing verification marks an internal-consistency defect
// in the emitted body, not a user-facing condition.
func (f Function) Verify() bool {
	return C.LLVMVerifyFunction(f.c, C.LLVMReturnStatusAction) == 0
}
