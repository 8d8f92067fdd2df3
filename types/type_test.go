package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductNFoldsRight(t *testing.T) {
	a := ConType{Name: ConInt}
	b := ConType{Name: ConFloat}
	c := ConType{Name: ConBool}

	prod := ProductN(a, b, c)

	pt, ok := prod.(*ProdType)
	assert.True(t, ok, "product of three types should be a product")
	assert.True(t, Equals(pt.Left, a))

	inner, ok := pt.Right.(*ProdType)
	assert.True(t, ok, "the fold should nest to the right")
	assert.True(t, Equals(inner.Left, b))
	assert.True(t, Equals(inner.Right, c))
}

func TestProductNSingle(t *testing.T) {
	a := ConType{Name: ConString}

	// A single component folds to itself, not to a degenerate product.
	assert.True(t, Equals(ProductN(a), a))
}

func TestProductNEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { ProductN() })
}

func TestFlattenRoundTrip(t *testing.T) {
	components := []Type{
		ConType{Name: ConInt},
		&ArrowType{From: ConType{Name: ConInt}, To: ConType{Name: ConBool}},
		ConType{Name: ConFloat},
		ConType{Name: ConString},
	}

	flat := Flatten(ProductN(components...))

	assert.Equal(t, len(components), len(flat))
	for i, comp := range components {
		assert.True(t, Equals(flat[i], comp), "component %d should survive the round trip", i)
	}
}

func TestFlattenNonProduct(t *testing.T) {
	a := ConType{Name: ConInt}

	flat := Flatten(a)

	assert.Equal(t, 1, len(flat))
	assert.True(t, Equals(flat[0], a))
}

func TestEquals(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  Type
		equal bool
	}{
		{"same constructor", ConType{Name: ConInt}, ConType{Name: ConInt}, true},
		{"different constructor", ConType{Name: ConInt}, ConType{Name: ConBool}, false},
		{"void", VoidType{}, VoidType{}, true},
		{"void vs con", VoidType{}, ConType{Name: ConInt}, false},
		{"same var", VarType{Name: "a"}, VarType{Name: "a"}, true},
		{"different var", VarType{Name: "a"}, VarType{Name: "b"}, false},
		{
			"same arrow",
			&ArrowType{From: ConType{Name: ConInt}, To: ConType{Name: ConBool}},
			&ArrowType{From: ConType{Name: ConInt}, To: ConType{Name: ConBool}},
			true,
		},
		{
			"flipped arrow",
			&ArrowType{From: ConType{Name: ConInt}, To: ConType{Name: ConBool}},
			&ArrowType{From: ConType{Name: ConBool}, To: ConType{Name: ConInt}},
			false,
		},
		{
			"product associativity matters",
			ProductN(ConType{Name: ConInt}, ConType{Name: ConInt}, ConType{Name: ConInt}),
			Product(Product(ConType{Name: ConInt}, ConType{Name: ConInt}), ConType{Name: ConInt}),
			false,
		},
		{
			"same composite",
			&CompType{Fn: ConType{Name: "List"}, Arg: ConType{Name: ConInt}},
			&CompType{Fn: ConType{Name: "List"}, Arg: ConType{Name: ConInt}},
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, Equals(tc.a, tc.b))

			// Repr is the canonical form: equality of types and equality of
			// reprs must agree.
			assert.Equal(t, tc.equal, tc.a.Repr() == tc.b.Repr())
		})
	}
}
