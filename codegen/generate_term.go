package codegen

import (
	"sable/cir"
	"sable/llvm"
	"sable/report"
	"sable/types"
)

// generateTerm generates a tagged term, returning its runtime value.  Terms of
// void type generate to a nil value: no consumer may use one.
func (g *Generator) generateTerm(tt *cir.TaggedTerm) (llvm.Value, error) {
	switch v := tt.Body().(type) {
	case *cir.LitTerm:
		return g.generateLit(v.Value), nil
	case *cir.VarTerm:
		return g.generateVar(tt, v)
	case *cir.ListTerm:
		return g.generateList(tt, v)
	case *cir.BlockTerm:
		{
			var last llvm.Value
			for _, term := range v.Terms {
				value, err := g.generateTerm(term)
				if err != nil {
					return nil, err
				}

				last = value
			}

			return last, nil
		}
	case *cir.MakeClsTerm:
		return g.generateMakeCls(v)
	case *cir.ApplyClsTerm:
		return g.generateApplyCls(tt, v)
	case *cir.ApplyDirTerm:
		return g.generateApplyDir(tt, v)
	case *cir.BinaryTerm:
		return g.generateBinary(v)
	case *cir.UnaryTerm:
		return g.generateUnary(v)
	case *cir.LetTerm:
		return g.generateLet(v)
	case *cir.IfTerm:
		return g.generateIf(tt, v)
	default:
		report.ReportICE("term codegen not implemented")
		return nil, nil
	}
}

// generateLit generates a literal value.
func (g *Generator) generateLit(lit cir.Lit) llvm.Value {
	switch v := lit.(type) {
	case cir.IntLit:
		return g.ctx.ConstInt32(v.Value)
	case cir.FloatLit:
		return g.ctx.ConstDouble(v.Value)
	case cir.BoolLit:
		return g.ctx.ConstBool(v.Value)
	case cir.StrLit:
		return g.irb.BuildGlobalStringPtr(v.Value, "str")
	default:
		report.ReportICE("literal codegen not implemented")
		return nil
	}
}

// generateVar generates a reference to a bound identifier: a load from its
// stack slot.
func (g *Generator) generateVar(tt *cir.TaggedTerm, v *cir.VarTerm) (llvm.Value, error) {
	slot, ok := g.lookupLocal(v.Name)
	if !ok {
		report.ReportICE("reference to unbound variable `%s`", v.Name)
	}

	varType, err := tt.Type()
	if err != nil {
		return nil, err
	}

	return g.irb.BuildLoad(g.convType(varType), slot, v.Name), nil
}

// generateList generates a list literal as a product struct value.
func (g *Generator) generateList(tt *cir.TaggedTerm, v *cir.ListTerm) (llvm.Value, error) {
	listType, err := tt.Type()
	if err != nil {
		return nil, err
	}

	pt, ok := listType.(*types.ProdType)
	if !ok {
		report.ReportICE("list term whose type is not a product")
	}

	st := g.prodStructType(pt)
	listPtr := g.irb.BuildAlloca(st, "list")

	for i, elem := range v.Elems {
		elemValue, err := g.generateTerm(elem)
		if err != nil {
			return nil, err
		}

		fieldPtr := g.irb.BuildStructGEP(st, listPtr, i, "list.field")
		g.irb.BuildStore(elemValue, fieldPtr)
	}

	return g.irb.BuildLoad(st, listPtr, "list.value"), nil
}

// -----------------------------------------------------------------------------

// generateMakeCls materializes a closure record, binds it, and generates the
// body of the binding.  The record stores the type-erased entry pointer and a
// pointer to an environment struct holding every captured variable in the
// entry's freevar order.
func (g *Generator) generateMakeCls(v *cir.MakeClsTerm) (llvm.Value, error) {
	target, ok := g.prog.LookupFunc(v.Cls.Entry())
	if !ok {
		return nil, &UnknownFunctionError{Name: v.Cls.Entry()}
	}

	if err := v.Cls.Check(target); err != nil {
		return nil, err
	}

	i8Ptr := llvm.NewPointerType(g.ctx.Int8Type())

	// Pack the captured variables into the environment struct.
	var envErased llvm.Value = llvm.ConstNull(i8Ptr)
	if freevars := target.FreeVars(); len(freevars) > 0 {
		envST := g.envStructType(freevars)
		envPtr := g.irb.BuildAlloca(envST, v.Binder.Name+".env")

		for i, fvName := range v.Cls.ActualFV() {
			slot, ok := g.lookupLocal(fvName)
			if !ok {
				report.ReportICE("closure captures unbound variable `%s`", fvName)
			}

			fvType := g.convType(schemeType("captured variable `"+fvName+"`", freevars[i].Ty))
			fvValue := g.irb.BuildLoad(fvType, slot, fvName)

			fieldPtr := g.irb.BuildStructGEP(envST, envPtr, i, fvName+".field")
			g.irb.BuildStore(fvValue, fieldPtr)
		}

		envErased = g.irb.BuildBitCast(envPtr, i8Ptr, v.Binder.Name+".env.erased")
	}

	// Build the closure record itself.
	clsST := g.closureStructType()
	clsPtr := g.irb.BuildAlloca(clsST, v.Binder.Name)

	entryErased := g.irb.BuildBitCast(g.fns[target.Name()].fn, i8Ptr, v.Cls.Entry()+".erased")
	g.irb.BuildStore(entryErased, g.irb.BuildStructGEP(clsST, clsPtr, 0, "cls.fn"))
	g.irb.BuildStore(envErased, g.irb.BuildStructGEP(clsST, clsPtr, 1, "cls.env"))

	// Bind the closure pointer and generate the continuation.
	slot := g.irb.BuildAlloca(llvm.NewPointerType(clsST), v.Binder.Name+".addr")
	g.irb.BuildStore(clsPtr, slot)

	g.pushScope()
	defer g.popScope()
	g.defineLocal(v.Binder.Name, slot)

	return g.generateTerm(v.Then)
}

// generateApplyCls generates an indirect call through a closure record: the
// entry pointer is recovered to its concrete function type and called with
// the arguments plus the record's environment pointer.
func (g *Generator) generateApplyCls(tt *cir.TaggedTerm, v *cir.ApplyClsTerm) (llvm.Value, error) {
	clsValue, err := g.generateTerm(v.Callee)
	if err != nil {
		return nil, err
	}

	i8Ptr := llvm.NewPointerType(g.ctx.Int8Type())
	clsST := g.closureStructType()

	entryErased := g.irb.BuildLoad(i8Ptr, g.irb.BuildStructGEP(clsST, clsValue, 0, "cls.fn"), "fn.erased")
	envPtr := g.irb.BuildLoad(i8Ptr, g.irb.BuildStructGEP(clsST, clsValue, 1, "cls.env"), "env")

	args := make([]llvm.Value, 0, len(v.Args)+1)
	paramTypes := make([]llvm.Type, 0, len(v.Args)+1)
	for _, arg := range v.Args {
		argValue, err := g.generateTerm(arg)
		if err != nil {
			return nil, err
		}

		argType, err := arg.Type()
		if err != nil {
			return nil, err
		}

		args = append(args, argValue)
		paramTypes = append(paramTypes, g.convType(argType))
	}

	args = append(args, envPtr)
	paramTypes = append(paramTypes, i8Ptr)

	resultType, err := tt.Type()
	if err != nil {
		return nil, err
	}

	fnType := llvm.NewFunctionType(g.convReturnType(resultType), paramTypes, false)
	fn := g.irb.BuildBitCast(entryErased, llvm.NewPointerType(fnType), "fn")

	if isVoid(resultType) {
		g.irb.BuildCall(fnType, fn, args, "")
		return nil, nil
	}

	return g.irb.BuildCall(fnType, fn, args, "call"), nil
}

// generateApplyDir generates a direct call to a known closure-free function.
// Targets the program never defines are declared as externals from their
// scheme.
func (g *Generator) generateApplyDir(tt *cir.TaggedTerm, v *cir.ApplyDirTerm) (llvm.Value, error) {
	df, ok := g.fns[v.Target.Name]
	if !ok {
		fnType := g.arrowFuncType(v.Target.Name, v.Target.Ty)
		df = declaredFn{fn: g.mod.DeclareFunction(v.Target.Name, fnType), ty: fnType}
		g.fns[v.Target.Name] = df
	}

	args := make([]llvm.Value, len(v.Args))
	for i, arg := range v.Args {
		argValue, err := g.generateTerm(arg)
		if err != nil {
			return nil, err
		}

		args[i] = argValue
	}

	resultType, err := tt.Type()
	if err != nil {
		return nil, err
	}

	if isVoid(resultType) {
		g.irb.BuildCall(df.ty, df.fn, args, "")
		return nil, nil
	}

	return g.irb.BuildCall(df.ty, df.fn, args, "call"), nil
}

// -----------------------------------------------------------------------------

// Comparison operators by operand class.
var intPredicates = map[cir.BinOp]llvm.IntPredicate{
	cir.OpEq: llvm.IntEQ,
	cir.OpNe: llvm.IntNE,
	cir.OpLt: llvm.IntSLT,
	cir.OpLe: llvm.IntSLE,
	cir.OpGe: llvm.IntSGE,
	cir.OpGt: llvm.IntSGT,
}

var realPredicates = map[cir.BinOp]llvm.RealPredicate{
	cir.OpEq: llvm.RealOEQ,
	cir.OpNe: llvm.RealONE,
	cir.OpLt: llvm.RealOLT,
	cir.OpLe: llvm.RealOLE,
	cir.OpGe: llvm.RealOGE,
	cir.OpGt: llvm.RealOGT,
}

// generateBinary generates a binary operator application.
func (g *Generator) generateBinary(v *cir.BinaryTerm) (llvm.Value, error) {
	lhs, err := g.generateTerm(v.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := g.generateTerm(v.Rhs)
	if err != nil {
		return nil, err
	}

	operandType, err := v.Lhs.Type()
	if err != nil {
		return nil, err
	}

	isFloat := types.Equals(operandType, types.ConType{Name: types.ConFloat})

	if v.Op.IsComparison() {
		if isFloat {
			return g.irb.BuildFCmp(realPredicates[v.Op], lhs, rhs, "cmp"), nil
		}

		return g.irb.BuildICmp(intPredicates[v.Op], lhs, rhs, "cmp"), nil
	}

	switch v.Op {
	case cir.OpAdd:
		if isFloat {
			return g.irb.BuildFAdd(lhs, rhs, "add"), nil
		}
		return g.irb.BuildAdd(lhs, rhs, "add"), nil
	case cir.OpSub:
		if isFloat {
			return g.irb.BuildFSub(lhs, rhs, "sub"), nil
		}
		return g.irb.BuildSub(lhs, rhs, "sub"), nil
	case cir.OpMul:
		if isFloat {
			return g.irb.BuildFMul(lhs, rhs, "mul"), nil
		}
		return g.irb.BuildMul(lhs, rhs, "mul"), nil
	case cir.OpDiv:
		if isFloat {
			return g.irb.BuildFDiv(lhs, rhs, "div"), nil
		}
		return g.irb.BuildSDiv(lhs, rhs, "div"), nil
	case cir.OpRem:
		if isFloat {
			return g.irb.BuildFRem(lhs, rhs, "rem"), nil
		}
		return g.irb.BuildSRem(lhs, rhs, "rem"), nil
	case cir.OpAnd, cir.OpBitAnd:
		return g.irb.BuildAnd(lhs, rhs, "and"), nil
	case cir.OpOr, cir.OpBitOr:
		return g.irb.BuildOr(lhs, rhs, "or"), nil
	case cir.OpBitXor:
		return g.irb.BuildXor(lhs, rhs, "xor"), nil
	case cir.OpShl:
		return g.irb.BuildShl(lhs, rhs, "shl"), nil
	case cir.OpShr:
		return g.irb.BuildAShr(lhs, rhs, "shr"), nil
	default:
		report.ReportICE("codegen for binary operator `%s` not implemented", v.Op)
		return nil, nil
	}
}

// generateUnary generates a unary operator application.
func (g *Generator) generateUnary(v *cir.UnaryTerm) (llvm.Value, error) {
	operand, err := g.generateTerm(v.Operand)
	if err != nil {
		return nil, err
	}

	switch v.Op {
	case cir.OpNot:
		return g.irb.BuildNot(operand, "not"), nil
	case cir.OpNeg:
		operandType, err := v.Operand.Type()
		if err != nil {
			return nil, err
		}

		if types.Equals(operandType, types.ConType{Name: types.ConFloat}) {
			return g.irb.BuildFNeg(operand, "neg"), nil
		}

		return g.irb.BuildNeg(operand, "neg"), nil
	default:
		report.ReportICE("codegen for unary operator `%s` not implemented", v.Op)
		return nil, nil
	}
}

// -----------------------------------------------------------------------------

// generateLet generates a let binding: the bound value is spilled into a
// stack slot visible only while generating the body.
func (g *Generator) generateLet(v *cir.LetTerm) (llvm.Value, error) {
	bound, err := g.generateTerm(v.Bound)
	if err != nil {
		return nil, err
	}

	boundType, err := v.Bound.Type()
	if err != nil {
		return nil, err
	}

	g.pushScope()
	defer g.popScope()

	// A void binding evaluates for effect only: there is no value to bind.
	if !isVoid(boundType) {
		slot := g.irb.BuildAlloca(g.convType(boundType), v.Binder.Name+".addr")
		g.irb.BuildStore(bound, slot)
		g.defineLocal(v.Binder.Name, slot)
	}

	return g.generateTerm(v.In)
}

// generateIf generates a conditional expression.  Both arms branch to a join
// block; a phi over the arm values produces the expression's value.  The phi
// is built empty and its incomings attached only after both arms exist, since
// each arm's exit block is not known until its body is generated.
func (g *Generator) generateIf(tt *cir.TaggedTerm, v *cir.IfTerm) (llvm.Value, error) {
	cond, err := g.generateTerm(v.Cond)
	if err != nil {
		return nil, err
	}

	thenBlock := g.fn.AppendBlock("if.then")
	elseBlock := g.fn.AppendBlock("if.else")
	joinBlock := g.fn.AppendBlock("if.exit")

	g.irb.BuildCondBr(cond, thenBlock, elseBlock)

	g.irb.MoveToEnd(thenBlock)
	thenValue, err := g.generateTerm(v.Then)
	if err != nil {
		return nil, err
	}
	thenExit := g.irb.Block()
	g.irb.BuildBr(joinBlock)

	g.irb.MoveToEnd(elseBlock)
	elseValue, err := g.generateTerm(v.Else)
	if err != nil {
		return nil, err
	}
	elseExit := g.irb.Block()
	g.irb.BuildBr(joinBlock)

	g.irb.MoveToEnd(joinBlock)

	resultType, err := tt.Type()
	if err != nil {
		return nil, err
	}

	if isVoid(resultType) {
		return nil, nil
	}

	phi := g.irb.BuildPhi(g.convType(resultType), "if.value")
	phi.AddIncoming(
		llvm.PHIIncoming{Value: thenValue, Block: thenExit},
		llvm.PHIIncoming{Value: elseValue, Block: elseExit},
	)

	return phi, nil
}
