package cir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sable/types"
)

func TestTermRepr(t *testing.T) {
	intLit := func(n int32) *TaggedTerm {
		return NewTagged(intScheme(), &LitTerm{Value: IntLit{Value: n}})
	}

	testCases := []struct {
		name     string
		term     Term
		expected string
	}{
		{"literal", &LitTerm{Value: IntLit{Value: 42}}, "42"},
		{"string literal", &LitTerm{Value: StrLit{Value: "hi"}}, `"hi"`},
		{"var", &VarTerm{Name: "x"}, "x"},
		{"list", &ListTerm{Elems: []*TaggedTerm{intLit(1), intLit(2)}}, "[1, 2]"},
		{
			"binary",
			&BinaryTerm{Op: OpLe, Lhs: intLit(1), Rhs: intLit(2)},
			"(1 <= 2)",
		},
		{
			"unary",
			&UnaryTerm{Op: OpNeg, Operand: intLit(3)},
			"(-3)",
		},
		{
			"let",
			&LetTerm{
				Binder: VarDecl{Name: "a", Ty: intScheme()},
				Bound:  intLit(1),
				In:     NewTagged(intScheme(), &VarTerm{Name: "a"}),
			},
			"let a = 1 in a",
		},
		{
			"if",
			&IfTerm{
				Cond: NewTagged(types.Con(types.ConBool), &LitTerm{Value: BoolLit{Value: true}}),
				Then: intLit(1),
				Else: intLit(0),
			},
			"if true 1 else 0",
		},
		{
			"make closure",
			&MakeClsTerm{
				Binder: VarDecl{Name: "inc", Ty: intScheme()},
				Cls:    NewClosure("adder", []string{"base"}),
				Then:   NewTagged(intScheme(), &VarTerm{Name: "inc"}),
			},
			"make_closure inc = (adder, [base]) in inc",
		},
		{
			"apply closure",
			&ApplyClsTerm{
				Callee: NewTagged(intScheme(), &VarTerm{Name: "inc"}),
				Args:   []*TaggedTerm{intLit(2)},
			},
			"apply_closure inc(2)",
		},
		{
			"apply direct",
			&ApplyDirTerm{
				Target: VarDecl{Name: "print", Ty: intScheme()},
				Args:   []*TaggedTerm{intLit(7)},
			},
			"apply_direct print(7)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewTagged(intScheme(), tc.term).Repr())
		})
	}
}

func TestFunDefRepr(t *testing.T) {
	assert.Equal(t, "fun adder(x: Int) [base: Int] =\n  (x + base)", adderDef().Repr())
}
