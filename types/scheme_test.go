package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonoBody(t *testing.T) {
	s := Mono(ConType{Name: ConInt})

	body, err := s.Body()
	assert.NoError(t, err)
	assert.True(t, Equals(body, ConType{Name: ConInt}))
}

func TestPolyBody(t *testing.T) {
	inner := &ArrowType{From: VarType{Name: "a"}, To: VarType{Name: "a"}}
	s := Poly([]string{"a"}, inner)

	body, err := s.Body()
	assert.NoError(t, err)
	assert.True(t, Equals(body, inner))

	ps := s.(*PolyScheme)
	assert.Equal(t, []string{"a"}, ps.Names())
}

func TestSlotBody(t *testing.T) {
	_, err := Slot().Body()

	assert.Error(t, err)

	var ue *UnresolvedError
	assert.ErrorAs(t, err, &ue)
}

func TestSchemeRepr(t *testing.T) {
	testCases := []struct {
		name     string
		scheme   Scheme
		expected string
	}{
		{"con", Con(ConBool), "Bool"},
		{"arrow", Arrow(ConType{Name: ConInt}, ConType{Name: ConInt}), "(Int -> Int)"},
		{"poly", Poly([]string{"a", "b"}, Product(VarType{Name: "a"}, VarType{Name: "b"})), "forall a b. ('a * 'b)"},
		{"slot", Slot(), "_"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.scheme.Repr())
		})
	}
}

func TestSchemeEquals(t *testing.T) {
	assert.True(t, SchemeEquals(Con(ConInt), Mono(ConType{Name: ConInt})))
	assert.False(t, SchemeEquals(Con(ConInt), Con(ConBool)))

	// A quantified scheme is distinct from its unquantified body.
	mono := Mono(VarType{Name: "a"})
	poly := Poly([]string{"a"}, VarType{Name: "a"})
	assert.False(t, SchemeEquals(mono, poly))
}
