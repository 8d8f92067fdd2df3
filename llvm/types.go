package llvm

/*
#include <stdlib.h>

#include "llvm-c/Core.h"
*/
import "C"

import "unsafe"

// TypeKind identifies a specific kind of LLVM type.
type TypeKind C.LLVMTypeKind

// Enumeration of the possible type kinds.
const (
	VoidTypeKind     TypeKind = C.LLVMVoidTypeKind
	DoubleTypeKind   TypeKind = C.LLVMDoubleTypeKind
	IntegerTypeKind  TypeKind = C.LLVMIntegerTypeKind
	FunctionTypeKind TypeKind = C.LLVMFunctionTypeKind
	StructTypeKind   TypeKind = C.LLVMStructTypeKind
	ArrayTypeKind    TypeKind = C.LLVMArrayTypeKind
	PointerTypeKind  TypeKind = C.LLVMPointerTypeKind
	LabelTypeKind    TypeKind = C.LLVMLabelTypeKind
)

// Type is an interface used to represent all LLVM types.  Types are borrowed
// views into a context: they stay valid exactly as long as the context that
// allocated them and are never released individually.
type Type interface {
	// ptr returns the internal LLVM object pointer to the type.
	ptr() C.LLVMTypeRef

	// Kind returns the type's type kind.
	Kind() TypeKind

	// Dump prints the type to standard out.
	Dump()
}

// typeBase is the base struct used to build LLVM types.
type typeBase struct {
	c C.LLVMTypeRef
}

func (tb typeBase) ptr() C.LLVMTypeRef {
	return tb.c
}

func (tb typeBase) Kind() TypeKind {
	return TypeKind(C.LLVMGetTypeKind(tb.c))
}

func (tb typeBase) Dump() {
	C.LLVMDumpType(tb.c)
}

// -----------------------------------------------------------------------------

// IntegerType represents an LLVM integer type.
type IntegerType struct {
	typeBase
}

// BitWidth returns the bit width of the integer type.
func (it IntegerType) BitWidth() uint {
	return uint(C.LLVMGetIntTypeWidth(it.c))
}

// Int1Type returns a new `i1` type in the context.
func (c *Context) Int1Type() (it IntegerType) {
	it.c = C.LLVMInt1TypeInContext(c.c)
	return
}

// Int8Type returns a new `i8` type in the context.
func (c *Context) Int8Type() (it IntegerType) {
	it.c = C.LLVMInt8TypeInContext(c.c)
	return
}

// Int16Type returns a new `i16` type in the context.
func (c *Context) Int16Type() (it IntegerType) {
	it.c = C.LLVMInt16TypeInContext(c.c)
	return
}

// Int32Type returns a new `i32` type in the context.
func (c *Context) Int32Type() (it IntegerType) {
	it.c = C.LLVMInt32TypeInContext(c.c)
	return
}

// DoubleType returns a new LLVM `double` type in the context.
func (c *Context) DoubleType() Type {
	return typeBase{c: C.LLVMDoubleTypeInContext(c.c)}
}

// VoidType returns a new LLVM `void` type in the context.
func (c *Context) VoidType() Type {
	return typeBase{c: C.LLVMVoidTypeInContext(c.c)}
}

// -----------------------------------------------------------------------------

// PointerType represents an LLVM pointer type.
type PointerType struct {
	typeBase
}

// NewPointerType returns a new pointer type to elemType in address space 0.
func NewPointerType(elemType Type) (pt PointerType) {
	pt.c = C.LLVMPointerType(elemType.ptr(), 0)
	return
}

// ElemType returns the element type of the pointer.
func (pt PointerType) ElemType() Type {
	return typeBase{c: C.LLVMGetElementType(pt.c)}
}

// -----------------------------------------------------------------------------

// StructType represents an LLVM struct type.
type StructType struct {
	typeBase
}

// NewStructType returns a new literal struct type in the context with the
// given field types.  If packed, no padding is inserted between fields.
func (c *Context) NewStructType(packed bool, fieldTypes ...Type) (st StructType) {
	var fieldArrPtr *C.LLVMTypeRef
	if len(fieldTypes) > 0 {
		fieldArr := make([]C.LLVMTypeRef, len(fieldTypes))
		for i, fieldType := range fieldTypes {
			fieldArr[i] = fieldType.ptr()
		}

		fieldArrPtr = byref(&fieldArr[0])
	}

	st.c = C.LLVMStructTypeInContext(c.c, fieldArrPtr, (C.uint)(len(fieldTypes)), llvmBool(packed))
	return
}

// NumFields returns the number of fields of the struct type.
func (st StructType) NumFields() int {
	return int(C.LLVMCountStructElementTypes(st.c))
}

// FieldType returns the type of the struct field at ndx.
func (st StructType) FieldType(ndx int) Type {
	return typeBase{c: C.LLVMStructGetTypeAtIndex(st.c, (C.uint)(ndx))}
}

// IsPacked returns whether the struct type is packed.
func (st StructType) IsPacked() bool {
	return C.LLVMIsPackedStruct(st.c) == 1
}

// -----------------------------------------------------------------------------

// ArrayType represents an LLVM array type.
type ArrayType struct {
	typeBase
}

// NewArrayType returns a new array type of length n over elemType.
func NewArrayType(elemType Type, n int) (at ArrayType) {
	at.c = C.LLVMArrayType(elemType.ptr(), (C.uint)(n))
	return
}

// Len returns the length of the array type.
func (at ArrayType) Len() int {
	return int(C.LLVMGetArrayLength(at.c))
}

// -----------------------------------------------------------------------------

// FunctionType represents an LLVM function type.
type FunctionType struct {
	typeBase
}

// NewFunctionType returns a new function type.  If isVarArg, the function
// accepts additional arguments past its declared parameters.
func NewFunctionType(returnType Type, paramTypes []Type, isVarArg bool) (ft FunctionType) {
	var paramArrPtr *C.LLVMTypeRef
	if len(paramTypes) > 0 {
		paramArr := make([]C.LLVMTypeRef, len(paramTypes))
		for i, paramType := range paramTypes {
			paramArr[i] = paramType.ptr()
		}

		paramArrPtr = byref(&paramArr[0])
	}

	ft.c = C.LLVMFunctionType(returnType.ptr(), paramArrPtr, (C.uint)(len(paramTypes)), llvmBool(isVarArg))
	return
}

// IsVarArg returns whether or not the function type is variadic.
func (ft FunctionType) IsVarArg() bool {
	return C.LLVMIsFunctionVarArg(ft.c) == 1
}

// ReturnType returns the return type of the function type.
func (ft FunctionType) ReturnType() Type {
	return typeBase{c: C.LLVMGetReturnType(ft.c)}
}

// NumParams returns the number of parameters of the function type.
func (ft FunctionType) NumParams() int {
	return int(C.LLVMCountParamTypes(ft.c))
}

// -----------------------------------------------------------------------------

// freeString frees a C string allocated for an LLVM call.
func freeString(cs *C.char) {
	C.free(unsafe.Pointer(cs))
}
