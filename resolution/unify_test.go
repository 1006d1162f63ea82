package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(name string) *Term                    { return NewVariable(name) }
func c(name string) *Term                    { return NewConstant(name) }
func f(name string, args ...*Term) *Term     { return NewFunction(name, args) }
func pos(pred string, args ...*Term) *Literal { return NewLiteral(pred, args, false) }
func neg(pred string, args ...*Term) *Literal { return NewLiteral(pred, args, true) }

func TestUnifyTermsIdentical(t *testing.T) {
	x := f("f", v("x"), c("A"))
	y := f("f", v("x"), c("A"))

	theta, ok := UnifyTerms(x, y, nil)
	require.True(t, ok)
	assert.Empty(t, theta, "identical terms need no bindings")
}

func TestUnifyTermsVariableAgainstConstant(t *testing.T) {
	theta, ok := UnifyTerms(v("x"), c("A"), nil)
	require.True(t, ok)
	require.Len(t, theta, 1)
	assert.True(t, theta["x"].Equal(c("A")))
}

func TestUnifyTermsSoundness(t *testing.T) {
	x := f("f", v("x"), c("B"))
	y := f("f", c("A"), v("y"))

	theta, ok := UnifyTerms(x, y, nil)
	require.True(t, ok)
	assert.True(t, x.Apply(theta).Equal(y.Apply(theta)), "mgu must make both terms equal")
}

func TestUnifyTermsIdempotence(t *testing.T) {
	x := f("f", v("x"), v("y"))
	y := f("f", v("y"), c("A"))

	theta, ok := UnifyTerms(x, y, nil)
	require.True(t, ok)

	once := x.Apply(theta)
	twice := once.Apply(theta)
	assert.True(t, once.Equal(twice), "applying a substitution twice must equal applying it once")
}

func TestUnifyTermsOccursCheck(t *testing.T) {
	_, ok := UnifyTerms(v("x"), f("f", v("x")), nil)
	assert.False(t, ok, "x must not unify with f(x)")

	_, ok = UnifyTerms(v("x"), f("g", f("f", v("x"))), nil)
	assert.False(t, ok, "occurs check must look through nested functions")
}

func TestUnifyTermsOccursCheckThroughBinding(t *testing.T) {
	// x уже связан с y: связывание y с f(x) зациклило бы подстановку
	theta, ok := UnifyTerms(v("x"), v("y"), nil)
	require.True(t, ok)

	_, ok = UnifyTerms(v("y"), f("f", v("x")), theta)
	assert.False(t, ok)
}

func TestUnifyTermsSymmetry(t *testing.T) {
	cases := []struct {
		name string
		x, y *Term
		ok   bool
	}{
		{"var against constant", v("x"), c("A"), true},
		{"var against function", v("x"), f("f", c("A")), true},
		{"distinct constants", c("A"), c("B"), false},
		{"constant against function", c("A"), f("f", v("x")), false},
		{"function heads differ", f("f", v("x")), f("g", v("x")), false},
		{"arity differs", f("f", v("x")), f("f", v("x"), v("y")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, okXY := UnifyTerms(tc.x, tc.y, nil)
			_, okYX := UnifyTerms(tc.y, tc.x, nil)
			assert.Equal(t, tc.ok, okXY)
			assert.Equal(t, okXY, okYX, "unification must succeed in both directions or neither")
		})
	}
}

func TestUnifyTermsMostGeneral(t *testing.T) {
	// τ = {x/A, y/A} унифицирует x и y, но σ = mgu(x, y) обязан быть
	// общее: τ получается из σ дозамыканием ρ
	sigma, ok := UnifyTerms(v("x"), v("y"), nil)
	require.True(t, ok)

	tau := Theta{"x": c("A"), "y": c("A")}
	rho := Theta{"x": c("A"), "y": c("A")}
	for _, term := range []*Term{v("x"), v("y")} {
		viaSigma := term.Apply(sigma).Apply(rho)
		viaTau := term.Apply(tau)
		assert.True(t, viaSigma.Equal(viaTau))
	}
}

func TestApplyChasesBindingChains(t *testing.T) {
	theta := Theta{"x": v("y"), "y": c("A")}

	assert.True(t, v("x").Apply(theta).Equal(c("A")), "x -> y -> A must resolve to A")
	assert.True(t, f("f", v("x")).Apply(theta).Equal(f("f", c("A"))))

	lit := pos("P", v("x"), v("z"))
	applied := lit.Apply(theta)
	assert.Equal(t, "P(A, z)", applied.String())
}

func TestApplyLeavesUnboundVariables(t *testing.T) {
	theta := Theta{"x": v("y")}
	assert.True(t, v("x").Apply(theta).Equal(v("y")))
	assert.True(t, v("z").Apply(theta).Equal(v("z")))
}

func TestUnifyLiterals(t *testing.T) {
	theta, ok := Unify(pos("P", v("x")), pos("P", c("A")), nil)
	require.True(t, ok)
	assert.True(t, theta["x"].Equal(c("A")))

	_, ok = Unify(pos("P", v("x")), neg("P", c("A")), nil)
	assert.False(t, ok, "opposite signs must not unify directly")

	_, ok = Unify(pos("P", v("x")), pos("Q", v("x")), nil)
	assert.False(t, ok, "distinct predicates must not unify")

	_, ok = Unify(pos("P", v("x")), pos("P", v("x"), v("y")), nil)
	assert.False(t, ok, "distinct arities must not unify")
}

func TestRenameApart(t *testing.T) {
	base := NewClause([]*Literal{pos("P", v("x")), pos("Q", v("y"))})
	other := NewClause([]*Literal{neg("P", f("f", v("x"))), pos("R", v("z"))})
	other.Name = "C2"

	renamed := renameApart(base, other)
	assert.Equal(t, "C2", renamed.Name)
	assert.Equal(t, "¬P(f(x')) ∨ R(z)", renamed.String(), "only colliding variables are renamed")

	// без пересечения переменных клауза возвращается как есть
	disjoint := NewClause([]*Literal{pos("S", v("w"))})
	assert.Same(t, disjoint, renameApart(base, disjoint))
}
