package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
#include "llvm-c/Analysis.h"
*/
import "C"

import (
	"errors"
	"unsafe"
)

// Module represents an LLVM module: a named container of global function
// definitions.  Modules are created through and owned by a context; the
// context releases the module exactly once on disposal.
type Module struct {
	c    C.LLVMModuleRef
	mctx C.LLVMContextRef
}

// NewModule creates a new module with the given name in the context.
func (c *Context) NewModule(name string) (m Module) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	m.c = C.LLVMModuleCreateWithNameInContext(cname, c.c)
	m.mctx = c.c
	c.takeOwnership(m)
	return
}

// dispose disposes of the module.
func (m Module) dispose() {
	C.LLVMDisposeModule(m.c)
}

// Dump prints the LLVM IR of the module to standard out.
func (m Module) Dump() {
	C.LLVMDumpModule(m.c)
}

// String renders the module's textual IR form.  Rendering has no side
// effects: dumping twice without intervening mutation yields identical text.
func (m Module) String() string {
	cstr := C.LLVMPrintModuleToString(m.c)
	defer C.LLVMDisposeMessage(cstr)

	return C.GoString(cstr)
}

// WriteToFile writes the LLVM IR of the module to a file.
func (m Module) WriteToFile(filepath string) error {
	var errMsg *C.char

	cfpath := C.CString(filepath)
	defer C.free(unsafe.Pointer(cfpath))

	if C.LLVMPrintModuleToFile(m.c, cfpath, byref(&errMsg)) != 0 {
		defer C.LLVMDisposeMessage(errMsg)
		return errors.New(C.GoString(errMsg))
	}

	return nil
}

// -----------------------------------------------------------------------------

// Name returns the name of the module.
func (m Module) Name() string {
	var strlen C.size_t
	str := C.LLVMGetModuleIdentifier(m.c, byref(&strlen))
	return C.GoStringN(str, (C.int)(strlen))
}

// SetName sets the name of the module.
func (m Module) SetName(name string) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.LLVMSetModuleIdentifier(m.c, cname, (C.size_t)(len(name)))
}

// -----------------------------------------------------------------------------

// AddFunction adds a new function to the module with the given type.
func (m Module) AddFunction(name string, funcType FunctionType) (fn Function) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	fn.c = C.LLVMAddFunction(m.c, cname, funcType.c)
	fn.mctx = m.mctx
	return
}

// GetFunction returns the declared function corresponding to name.
func (m Module) GetFunction(name string) (fn Function, exists bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	fnPtr := C.LLVMGetNamedFunction(m.c, cname)
	if fnPtr != nil {
		fn.c = fnPtr
		exists = true
	}

	fn.mctx = m.mctx
	return
}

// DeclareFunction fetches the function declared under name or, if no such
// declaration exists yet, adds one with the given type.
func (m Module) DeclareFunction(name string, funcType FunctionType) Function {
	if fn, exists := m.GetFunction(name); exists {
		return fn
	}

	return m.AddFunction(name, funcType)
}

// funcIter is an iterator over the functions of a module.
type funcIter struct {
	mctx       C.LLVMContextRef
	curr, next C.LLVMValueRef
}

func (it *funcIter) Item() (fn Function) {
	fn.c = it.curr
	fn.mctx = it.mctx
	return
}

func (it *funcIter) Next() bool {
	it.curr = it.next
	if it.curr == nil {
		return false
	}

	it.next = C.LLVMGetNextFunction(it.curr)
	return true
}

// Functions returns an iterator over the functions of the module.
func (m Module) Functions() Iterator[Function] {
	return &funcIter{mctx: m.mctx, next: C.LLVMGetFirstFunction(m.c)}
}

// -----------------------------------------------------------------------------

// Verify verifies that the module is correct/well-formed.
func (m Module) Verify() error {
	var cmsg *C.char

	if C.LLVMVerifyModule(m.c, C.LLVMReturnStatusAction, byref(&cmsg)) == 1 {
		msg := C.GoString(cmsg)
		C.LLVMDisposeMessage(cmsg)

		return errors.New(msg)
	}

	return nil
}
