package cir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sable/types"
)

func intScheme() types.Scheme {
	return types.Con(types.ConInt)
}

// adderDef builds `fun adder(x) [base] = x + base`.
func adderDef() *FunDef {
	return NewFunDef(
		"adder",
		types.Arrow(types.ConType{Name: types.ConInt}, types.ConType{Name: types.ConInt}),
		[]VarDecl{{Name: "x", Ty: intScheme()}},
		[]VarDecl{{Name: "base", Ty: intScheme()}},
		NewTagged(intScheme(), &BinaryTerm{
			Op:  OpAdd,
			Lhs: NewTagged(intScheme(), &VarTerm{Name: "x"}),
			Rhs: NewTagged(intScheme(), &VarTerm{Name: "base"}),
		}),
	)
}

func TestClosureCheck(t *testing.T) {
	target := adderDef()

	assert.NoError(t, NewClosure("adder", []string{"base"}).Check(target))
}

func TestClosureCheckArityMismatch(t *testing.T) {
	target := adderDef()

	testCases := []struct {
		name     string
		actualFV []string
	}{
		{"too few", nil},
		{"too many", []string{"base", "extra"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewClosure("adder", tc.actualFV).Check(target)
			assert.Error(t, err)

			var ame *ArityMismatchError
			assert.ErrorAs(t, err, &ame)
			assert.Equal(t, "adder", ame.Entry)
			assert.Equal(t, 1, ame.Want)
			assert.Equal(t, len(tc.actualFV), ame.Got)
		})
	}
}

func TestProgramLookupFunc(t *testing.T) {
	prog := &Program{Funcs: []*FunDef{adderDef()}}

	fd, ok := prog.LookupFunc("adder")
	assert.True(t, ok)
	assert.Equal(t, "adder", fd.Name())

	_, ok = prog.LookupFunc("missing")
	assert.False(t, ok)
}

func TestTaggedTermSetScheme(t *testing.T) {
	tt := NewTagged(types.Slot(), &VarTerm{Name: "x"})

	_, err := tt.Type()
	assert.Error(t, err)

	tt.SetScheme(intScheme())

	typ, err := tt.Type()
	assert.NoError(t, err)
	assert.True(t, types.Equals(typ, types.ConType{Name: types.ConInt}))
}
