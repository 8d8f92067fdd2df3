package cir

import (
	"fmt"
	"strings"

	"sable/util"
)

// Repr returns the full textual representation of the program.
func (p *Program) Repr() string {
	sb := strings.Builder{}

	for _, fd := range p.Funcs {
		sb.WriteString(fd.Repr())
		sb.WriteString("\n\n")
	}

	sb.WriteString(p.Entry.Repr())
	sb.WriteRune('\n')

	return sb.String()
}

// Repr returns the textual representation of the function definition.
func (fd *FunDef) Repr() string {
	sb := strings.Builder{}

	sb.WriteString("fun ")
	sb.WriteString(fd.name)
	sb.WriteRune('(')
	sb.WriteString(strings.Join(util.Map(fd.params, declRepr), ", "))
	sb.WriteRune(')')

	if len(fd.freevars) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(util.Map(fd.freevars, declRepr), ", "))
		sb.WriteRune(']')
	}

	sb.WriteString(" =\n  ")
	sb.WriteString(fd.body.Repr())

	return sb.String()
}

// declRepr renders a binder with its scheme.
func declRepr(vd VarDecl) string {
	return vd.Name + ": " + vd.Ty.Repr()
}

// Repr returns the textual representation of the carried term.
func (tt *TaggedTerm) Repr() string {
	switch v := tt.node.(type) {
	case *LitTerm:
		return v.Value.Repr()
	case *VarTerm:
		return v.Name
	case *ListTerm:
		return "[" + strings.Join(util.Map(v.Elems, (*TaggedTerm).Repr), ", ") + "]"
	case *BlockTerm:
		return "{ " + strings.Join(util.Map(v.Terms, (*TaggedTerm).Repr), "; ") + " }"
	case *MakeClsTerm:
		return fmt.Sprintf(
			"make_closure %s = (%s, [%s]) in %s",
			v.Binder.Name, v.Cls.entry, strings.Join(v.Cls.actualFV, ", "), v.Then.Repr(),
		)
	case *ApplyClsTerm:
		return fmt.Sprintf(
			"apply_closure %s(%s)",
			v.Callee.Repr(), strings.Join(util.Map(v.Args, (*TaggedTerm).Repr), ", "),
		)
	case *ApplyDirTerm:
		return fmt.Sprintf(
			"apply_direct %s(%s)",
			v.Target.Name, strings.Join(util.Map(v.Args, (*TaggedTerm).Repr), ", "),
		)
	case *BinaryTerm:
		return fmt.Sprintf("(%s %s %s)", v.Lhs.Repr(), v.Op, v.Rhs.Repr())
	case *UnaryTerm:
		return fmt.Sprintf("(%s%s)", v.Op, v.Operand.Repr())
	case *LetTerm:
		return fmt.Sprintf("let %s = %s in %s", v.Binder.Name, v.Bound.Repr(), v.In.Repr())
	case *IfTerm:
		return fmt.Sprintf("if %s %s else %s", v.Cond.Repr(), v.Then.Repr(), v.Else.Repr())
	default:
		return "<unknown term>"
	}
}
