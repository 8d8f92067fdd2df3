package cmd

import (
	"sable/cir"
	"sable/types"
)

// demoProgram builds the built-in demonstration unit:
//
//	fun adder(x) = x + base        -- captures base
//
//	let base = if (6 > 2) 40 else 0 in
//	let inc = closure(adder, [base]) in
//	inc(2)
//
// The unit exits with code 42.
func demoProgram() *cir.Program {
	intType := types.ConType{Name: types.ConInt}
	intTy := types.Con(types.ConInt)
	boolTy := types.Con(types.ConBool)
	clsTy := types.Arrow(intType, intType)

	intLit := func(n int32) *cir.TaggedTerm {
		return cir.NewTagged(intTy, &cir.LitTerm{Value: cir.IntLit{Value: n}})
	}

	adder := cir.NewFunDef(
		"adder",
		types.Arrow(intType, intType),
		[]cir.VarDecl{{Name: "x", Ty: intTy}},
		[]cir.VarDecl{{Name: "base", Ty: intTy}},
		cir.NewTagged(intTy, &cir.BinaryTerm{
			Op:  cir.OpAdd,
			Lhs: cir.NewTagged(intTy, &cir.VarTerm{Name: "x"}),
			Rhs: cir.NewTagged(intTy, &cir.VarTerm{Name: "base"}),
		}),
	)

	entry := cir.NewTagged(intTy, &cir.LetTerm{
		Binder: cir.VarDecl{Name: "base", Ty: intTy},
		Bound: cir.NewTagged(intTy, &cir.IfTerm{
			Cond: cir.NewTagged(boolTy, &cir.BinaryTerm{
				Op:  cir.OpGt,
				Lhs: intLit(6),
				Rhs: intLit(2),
			}),
			Then: intLit(40),
			Else: intLit(0),
		}),
		In: cir.NewTagged(intTy, &cir.MakeClsTerm{
			Binder: cir.VarDecl{Name: "inc", Ty: clsTy},
			Cls:    cir.NewClosure("adder", []string{"base"}),
			Then: cir.NewTagged(intTy, &cir.ApplyClsTerm{
				Callee: cir.NewTagged(clsTy, &cir.VarTerm{Name: "inc"}),
				Args:   []*cir.TaggedTerm{intLit(2)},
			}),
		}),
	})

	return &cir.Program{Funcs: []*cir.FunDef{adder}, Entry: entry}
}
