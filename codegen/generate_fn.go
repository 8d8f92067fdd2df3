package codegen

import (
	"sable/cir"
	"sable/llvm"
	"sable/types"
)

// declareFunDef declares the LLVM function of a function definition.  The
// definition's name is the emitted symbol name, unchanged.
func (g *Generator) declareFunDef(fd *cir.FunDef) error {
	fnType := g.funDefType(fd)
	fn := g.mod.AddFunction(fd.Name(), fnType)

	g.fns[fd.Name()] = declaredFn{fn: fn, ty: fnType}
	return nil
}

// generateFunDef generates the body of a declared function definition.
func (g *Generator) generateFunDef(fd *cir.FunDef) error {
	g.fn = g.fns[fd.Name()].fn

	entry := g.fn.AppendBlock("entry")
	g.irb.MoveToEnd(entry)

	g.pushScope()
	defer g.popScope()

	// Spill every parameter into a stack slot so that all local names are
	// loaded uniformly; mem2reg promotes the slots afterwards.
	for i, p := range fd.Params() {
		paramType := g.convType(schemeType("parameter `"+p.Name+"`", p.Ty))

		slot := g.irb.BuildAlloca(paramType, p.Name+".addr")
		g.irb.BuildStore(g.fn.GetParam(i), slot)
		g.defineLocal(p.Name, slot)
	}

	// Unpack the environment: the trailing i8* parameter points at the env
	// struct, whose fields are the captured variables in freevar order.
	if freevars := fd.FreeVars(); len(freevars) > 0 {
		envST := g.envStructType(freevars)
		envParam := g.fn.GetParam(len(fd.Params()))
		envPtr := g.irb.BuildBitCast(envParam, llvm.NewPointerType(envST), "env")

		for i, fv := range freevars {
			fvType := g.convType(schemeType("captured variable `"+fv.Name+"`", fv.Ty))

			fieldPtr := g.irb.BuildStructGEP(envST, envPtr, i, fv.Name+".field")
			fvValue := g.irb.BuildLoad(fvType, fieldPtr, fv.Name)

			slot := g.irb.BuildAlloca(fvType, fv.Name+".addr")
			g.irb.BuildStore(fvValue, slot)
			g.defineLocal(fv.Name, slot)
		}
	}

	result, err := g.generateTerm(fd.Body())
	if err != nil {
		return err
	}

	bodyType, err := fd.Body().Type()
	if err != nil {
		return err
	}

	if isVoid(bodyType) {
		g.irb.BuildRetVoid()
	} else {
		g.irb.BuildRet(result)
	}

	return g.runPasses(fd.Name(), g.fn)
}

// generateEntry generates the unit entry function `main` around the program's
// top-level term.  The process exit code is the term's value if it is an Int
// and zero otherwise.
func (g *Generator) generateEntry() error {
	fnType := llvm.NewFunctionType(g.ctx.Int32Type(), nil, false)
	g.fn = g.mod.AddFunction("main", fnType)

	entry := g.fn.AppendBlock("entry")
	g.irb.MoveToEnd(entry)

	g.pushScope()
	defer g.popScope()

	result, err := g.generateTerm(g.prog.Entry)
	if err != nil {
		return err
	}

	entryType, err := g.prog.Entry.Type()
	if err != nil {
		return err
	}

	if types.Equals(entryType, types.ConType{Name: types.ConInt}) {
		g.irb.BuildRet(result)
	} else {
		g.irb.BuildRet(g.ctx.ConstInt32(0))
	}

	return g.runPasses("main", g.fn)
}
