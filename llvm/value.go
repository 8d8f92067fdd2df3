package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
*/
import "C"
import "unsafe"

// ValueKind represents a kind of LLVM value.
type ValueKind C.LLVMValueKind

// Enumeration of the LLVM value kinds the back end works with.
const (
	ArgumentValueKind            ValueKind = C.LLVMArgumentValueKind
	FunctionValueKind            ValueKind = C.LLVMFunctionValueKind
	ConstantIntValueKind         ValueKind = C.LLVMConstantIntValueKind
	ConstantFPValueKind          ValueKind = C.LLVMConstantFPValueKind
	ConstantPointerNullValueKind ValueKind = C.LLVMConstantPointerNullValueKind
	ConstantDataArrayValueKind   ValueKind = C.LLVMConstantDataArrayValueKind
	UndefValueValueKind          ValueKind = C.LLVMUndefValueValueKind
	InstructionValueKind         ValueKind = C.LLVMInstructionValueKind
)

// Value is an interface used to represent all LLVM values.  Like types,
// values are borrowed views: they are valid only as long as the module or
// context that owns them, and copying one duplicates the reference, not the
// underlying resource.
type Value interface {
	// ptr returns the internal LLVM object pointer to the value.
	ptr() C.LLVMValueRef

	// Type returns the type of the LLVM value.
	Type() Type

	// Kind returns the kind of the LLVM value.
	Kind() ValueKind

	// Name returns the name of the value.
	Name() string

	// SetName sets the name of the value to name.
	SetName(name string)

	// IsConstant returns whether the value is constant.
	IsConstant() bool

	// Dump prints the value to standard out.
	Dump()
}

// valueBase is the base type for all values.
type valueBase struct {
	c C.LLVMValueRef
}

func (v valueBase) ptr() C.LLVMValueRef {
	return v.c
}

func (v valueBase) Type() Type {
	return typeBase{c: C.LLVMTypeOf(v.c)}
}

func (v valueBase) Kind() ValueKind {
	return ValueKind(C.LLVMGetValueKind(v.c))
}

func (v valueBase) Name() string {
	var strlen C.size_t
	return C.GoString(C.LLVMGetValueName2(v.c, byref(&strlen)))
}

func (v valueBase) SetName(name string) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.LLVMSetValueName2(v.c, cname, (C.size_t)(len(name)))
}

func (v valueBase) IsConstant() bool {
	return C.LLVMIsConstant(v.c) == 1
}

func (v valueBase) Dump() {
	C.LLVMDumpValue(v.c)
}

// -----------------------------------------------------------------------------

// Constant represents an LLVM constant value.
type Constant struct {
	valueBase
}

// ConstNull creates a new constant null value of type typ.
func ConstNull(typ Type) (c Constant) {
	c.c = C.LLVMConstNull(typ.ptr())
	return
}

// ConstInt creates a new integer constant of type intType, with value n, and
// signedness signed.
func ConstInt(intType IntegerType, n uint64, signed bool) (c Constant) {
	c.c = C.LLVMConstInt(intType.c, (C.ulonglong)(n), llvmBool(signed))
	return
}

// ConstReal creates a new real constant of type floatType with value n.
func ConstReal(floatType Type, n float64) (c Constant) {
	c.c = C.LLVMConstReal(floatType.ptr(), (C.double)(n))
	return
}

// IsNull returns whether or not the given constant is null.
func (c Constant) IsNull() bool {
	return C.LLVMIsNull(c.c) == 1
}

// -----------------------------------------------------------------------------

// ConstString creates a new constant NUL-terminated string in the context.
func (c *Context) ConstString(s string) (cv Constant) {
	cs := C.CString(s)
	defer freeString(cs)

	cv.c = C.LLVMConstStringInContext(c.c, cs, (C.uint)(len(s)), llvmBool(false))
	return
}

// ConstInt32 creates a new signed 32-bit integer constant in the context.
func (c *Context) ConstInt32(n int32) Constant {
	return ConstInt(c.Int32Type(), uint64(uint32(n)), true)
}

// ConstUInt8 creates a new unsigned 8-bit integer constant in the context.
func (c *Context) ConstUInt8(n uint8) Constant {
	return ConstInt(c.Int8Type(), uint64(n), false)
}

// ConstBool creates a new `i1` constant in the context.
func (c *Context) ConstBool(b bool) Constant {
	if b {
		return ConstInt(c.Int1Type(), 1, false)
	}

	return ConstInt(c.Int1Type(), 0, false)
}

// ConstDouble creates a new `double` constant in the context.
func (c *Context) ConstDouble(n float64) Constant {
	return ConstReal(c.DoubleType(), n)
}

// -----------------------------------------------------------------------------

// UserValue represents an LLVM value which has operands.
type UserValue struct {
	valueBase
}

// NumOperands returns the number of operands of the value.
func (uv UserValue) NumOperands() int {
	return int(C.LLVMGetNumOperands(uv.c))
}

// GetOperand retrieves the operand at index ndx.
func (uv UserValue) GetOperand(ndx int) Value {
	return valueBase{c: C.LLVMGetOperand(uv.c, (C.uint)(ndx))}
}
