package codegen

import (
	"sable/cir"
	"sable/llvm"
	"sable/report"
	"sable/types"
	"sable/util"
)

// convType converts typ to the LLVM type of its runtime values.
func (g *Generator) convType(typ types.Type) llvm.Type {
	switch v := typ.(type) {
	case types.ConType:
		return g.convConType(v)
	case *types.ArrowType:
		// Function values are pointers to closure records regardless of
		// signature: the concrete entry type is recovered at each call site.
		return llvm.NewPointerType(g.closureStructType())
	case *types.ProdType:
		return g.prodStructType(v)
	case types.VoidType:
		report.ReportICE("void type used where a value is required")
		return nil
	case types.VarType:
		report.ReportICE("unresolved type variable `%s` reached code generation", v.Name)
		return nil
	case *types.CompType:
		report.ReportICE("composite type `%s` has no defined lowering", v.Repr())
		return nil
	default:
		report.ReportICE("type codegen not implemented")
		return nil
	}
}

// convReturnType converts typ to its LLVM type assuming typ is a return type:
// void is only meaningful in this position.
func (g *Generator) convReturnType(typ types.Type) llvm.Type {
	if isVoid(typ) {
		return g.ctx.VoidType()
	}

	return g.convType(typ)
}

// convConType converts a named constructor type to its LLVM type.
func (g *Generator) convConType(ct types.ConType) llvm.Type {
	switch ct.Name {
	case types.ConInt:
		return g.ctx.Int32Type()
	case types.ConFloat:
		return g.ctx.DoubleType()
	case types.ConBool:
		return g.ctx.Int1Type()
	case types.ConString:
		return llvm.NewPointerType(g.ctx.Int8Type())
	default:
		report.ReportICE("unknown type constructor `%s`", ct.Name)
		return nil
	}
}

// -----------------------------------------------------------------------------

// closureStructType returns the uniform closure record type `{ i8*, i8* }`:
// the type-erased entry pointer followed by the type-erased environment
// pointer.
func (g *Generator) closureStructType() llvm.StructType {
	const key = "$closure"

	if st, ok := g.structTypes[key]; ok {
		return st
	}

	i8Ptr := llvm.NewPointerType(g.ctx.Int8Type())
	st := g.ctx.NewStructType(false, i8Ptr, i8Ptr)
	g.structTypes[key] = st
	return st
}

// prodStructType returns the memoized struct type of a product, one field per
// flattened component.
func (g *Generator) prodStructType(pt *types.ProdType) llvm.StructType {
	if st, ok := g.structTypes[pt.Repr()]; ok {
		return st
	}

	fields := util.Map(types.Flatten(pt), g.convType)

	st := g.ctx.NewStructType(false, fields...)
	g.structTypes[pt.Repr()] = st
	return st
}

// envStructType returns the memoized environment struct type of a captured
// variable list, one field per freevar in declaration order.
func (g *Generator) envStructType(freevars []cir.VarDecl) llvm.StructType {
	fvTypes := util.Map(freevars, func(fv cir.VarDecl) types.Type {
		return schemeType("captured variable `"+fv.Name+"`", fv.Ty)
	})

	key := "$env" + types.ProductN(fvTypes...).Repr()
	if st, ok := g.structTypes[key]; ok {
		return st
	}

	fields := util.Map(fvTypes, g.convType)

	st := g.ctx.NewStructType(false, fields...)
	g.structTypes[key] = st
	return st
}

// -----------------------------------------------------------------------------

// funDefType builds the LLVM function type of a function definition: one
// native parameter per declared parameter plus, if the function captures
// anything, one trailing type-erased environment parameter.
func (g *Generator) funDefType(fd *cir.FunDef) llvm.FunctionType {
	params := make([]llvm.Type, 0, len(fd.Params())+1)
	for _, p := range fd.Params() {
		params = append(params, g.convType(schemeType("parameter `"+p.Name+"`", p.Ty)))
	}

	if len(fd.FreeVars()) > 0 {
		params = append(params, llvm.NewPointerType(g.ctx.Int8Type()))
	}

	returnType := g.convReturnType(schemeType("body of `"+fd.Name()+"`", fd.Body().Scheme()))
	return llvm.NewFunctionType(returnType, params, false)
}

// arrowFuncType builds the LLVM function type of an external direct-call
// target from its arrow scheme: the parameter product flattens to the native
// parameter list.
func (g *Generator) arrowFuncType(name string, s types.Scheme) llvm.FunctionType {
	at, ok := schemeType("target `"+name+"`", s).(*types.ArrowType)
	if !ok {
		report.ReportICE("direct call target `%s` does not have a function type", name)
	}

	var params []llvm.Type
	if !isVoid(at.From) {
		for _, paramType := range types.Flatten(at.From) {
			params = append(params, g.convType(paramType))
		}
	}

	return llvm.NewFunctionType(g.convReturnType(at.To), params, false)
}
