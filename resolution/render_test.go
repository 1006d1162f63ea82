package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepWordAgreement(t *testing.T) {
	cases := map[int]string{
		1:   "шаг",
		2:   "шага",
		4:   "шага",
		5:   "шагов",
		11:  "шагов",
		12:  "шагов",
		14:  "шагов",
		21:  "шаг",
		22:  "шага",
		104: "шага",
		111: "шагов",
	}
	for n, want := range cases {
		assert.Equal(t, want, stepWord(n), "n=%d", n)
	}
}

func TestThetaString(t *testing.T) {
	assert.Equal(t, "{}", Theta{}.String())

	theta := Theta{
		"y": c("B"),
		"x": f("f", c("A")),
	}
	// переменные упорядочены по имени
	assert.Equal(t, "{x/f(A), y/B}", theta.String())
}

func TestClauseString(t *testing.T) {
	assert.Equal(t, "□", clause().String())
	assert.Equal(t, "P", clause(pos("P")).String())
	assert.Equal(t, "¬P(x) ∨ Q(f(A, y))", clause(neg("P", v("x")), pos("Q", f("f", c("A"), v("y")))).String())
}

func TestNewClauseDeduplicates(t *testing.T) {
	c := clause(pos("P", c("A")), neg("Q"), pos("P", c("A")))
	assert.Equal(t, "P(A) ∨ ¬Q", c.String(), "duplicate literals are coalesced, first occurrence order kept")
}
