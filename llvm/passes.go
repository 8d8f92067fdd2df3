package llvm

/*
#include "llvm-c/Core.h"
#include "llvm-c/Transforms/InstCombine.h"
#include "llvm-c/Transforms/Scalar.h"
#include "llvm-c/Transforms/Utils.h"
*/
import "C"

// FunctionPassManager runs function-level optimization passes over the
// functions of a single module.
type FunctionPassManager struct {
	c C.LLVMPassManagerRef
}

// NewFunctionPassManager creates a new function pass manager for m.
func (c *Context) NewFunctionPassManager(m Module) (fpm FunctionPassManager) {
	fpm.c = C.LLVMCreateFunctionPassManagerForModule(m.c)
	c.takeOwnership(fpm)
	return
}

// dispose disposes of the pass manager.
func (fpm FunctionPassManager) dispose() {
	C.LLVMDisposePassManager(fpm.c)
}

// AddStandardPasses populates the pass manager with the standard first-stage
// scalar optimization pipeline and initializes it.
func (fpm FunctionPassManager) AddStandardPasses() {
	C.LLVMAddBasicAliasAnalysisPass(fpm.c)
	C.LLVMAddInstructionCombiningPass(fpm.c)
	C.LLVMAddReassociatePass(fpm.c)
	C.LLVMAddGVNPass(fpm.c)
	C.LLVMAddCFGSimplificationPass(fpm.c)
	C.LLVMAddMergedLoadStoreMotionPass(fpm.c)
	C.LLVMAddSCCPPass(fpm.c)
	C.LLVMAddPromoteMemoryToRegisterPass(fpm.c)
	C.LLVMAddTailCallEliminationPass(fpm.c)

	C.LLVMInitializeFunctionPassManager(fpm.c)
}

// Run runs the added passes over fn, returning whether any pass changed it.
func (fpm FunctionPassManager) Run(fn Function) bool {
	return C.LLVMRunFunctionPassManager(fpm.c, fn.c) == 1
}

// Finalize finalizes the pass manager after all functions have been run.
func (fpm FunctionPassManager) Finalize() {
	C.LLVMFinalizeFunctionPassManager(fpm.c)
}
