package resolution_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logicprover/formula"
	"logicprover/resolution"
)

func newEngine(t *testing.T, d formula.Dialect, text string) *resolution.Engine {
	t.Helper()
	clauses, err := formula.Compile(text, d)
	require.NoError(t, err)
	engine := resolution.NewEngine()
	engine.SetClauses(clauses)
	return engine
}

func prove(t *testing.T, d formula.Dialect, text string) resolution.ProofResult {
	t.Helper()
	return newEngine(t, d, text).Prove(context.Background())
}

func TestProvePropositionalContradiction(t *testing.T) {
	result := prove(t, formula.DialectA, "P, ¬P")

	require.True(t, result.Success)
	assert.Equal(t, resolution.StatusProved, result.Status)
	assert.Equal(t, 1, result.Steps)
	assert.Contains(t, result.FullLog, "Формула доказана за 1 шаг")
	assert.Contains(t, result.ShortLog, "Начальная C1: P")
	assert.Contains(t, result.ShortLog, "Начальная C2: ¬P")
	assert.Contains(t, result.ShortLog, "-> □ (пустая клауза)")
}

func TestProveBindsVariableToConstant(t *testing.T) {
	result := prove(t, formula.DialectA, "P(A), ¬P(x)")

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Steps)
	assert.Contains(t, result.FullLog, "(унификация: {x/A})")
}

func TestProveSplitGoal(t *testing.T) {
	result := prove(t, formula.DialectA, "P(x) ∨ Q(x), ¬P(A), ¬Q(A)")

	require.True(t, result.Success)
	assert.Equal(t, 2, result.Steps)
	// в полезный путь входят ровно три начальные клаузы и две резолюции
	assert.Equal(t, 3, strings.Count(result.ShortLog, "Начальная"))
	assert.Equal(t, 2, strings.Count(result.ShortLog, "Шаг"))
	assert.Contains(t, result.ShortLog, "(унификация: {x/A})")
}

func TestProveAfterCNF(t *testing.T) {
	result := prove(t, formula.DialectA, "A -> B, A, ¬B")

	require.True(t, result.Success)
	assert.Contains(t, result.FullLog, "C1: ¬A ∨ B")
	assert.Contains(t, result.FullLog, "Формула доказана за 2 шага")
}

func TestProveRenamesApart(t *testing.T) {
	// P(x) и ¬P(f(x)) разрешимы только после разведения переменных:
	// без него унификацию запретила бы проверка вхождения
	result := prove(t, formula.DialectB, "P(x), ¬P(f(x))")

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Steps)
	assert.Contains(t, result.FullLog, "x'")
	assert.Contains(t, result.FullLog, "-> □")
}

func TestNotProvenWhenWorklistDrains(t *testing.T) {
	result := prove(t, formula.DialectA, "P, ¬Q")

	require.False(t, result.Success)
	assert.Equal(t, resolution.StatusNotProven, result.Status)
	assert.Equal(t, 0, result.Steps)
	assert.Contains(t, result.FullLog, "Формула не доказана")
	assert.Contains(t, result.ShortLog, "Доказательство не найдено")
}

func TestStepLimitAborts(t *testing.T) {
	// ¬P(x) ∨ P(f(x)) порождает из P(A) ∨ Q(A) бесконечную серию
	// Q(A) ∨ P(f(...f(A)...))
	engine := newEngine(t, formula.DialectB, "¬P(x) ∨ P(f(x)), P(A) ∨ Q(A)")
	engine.StepLimit = 5
	result := engine.Prove(context.Background())

	require.False(t, result.Success)
	assert.Equal(t, resolution.StatusStepLimit, result.Status)
	assert.Contains(t, result.FullLog, "Превышен лимит шагов")
	assert.Contains(t, result.ShortLog, "за отведенное число шагов: 5")
}

func TestInitialTautologyRemoved(t *testing.T) {
	engine := newEngine(t, formula.DialectA, "P(x) ∨ ¬P(x), Q, ¬Q")
	result := engine.Prove(context.Background())

	require.True(t, result.Success)
	assert.Contains(t, result.FullLog, "Удалено тавтологий/наддизъюнктов: 1")
	// выжившие перенумерованы заново
	assert.Contains(t, result.FullLog, "C1: Q")
	assert.Contains(t, result.FullLog, "C2: ¬Q")
	for _, clause := range engine.Clauses() {
		assert.False(t, resolution.IsTautology(clause))
	}
}

func TestInitialSubsumedRemoved(t *testing.T) {
	// P(x) поглощает P(A) ∨ R(B): последняя вычеркивается до поиска
	result := prove(t, formula.DialectA, "P(A) ∨ R(B), P(x), ¬P(C)")

	require.True(t, result.Success)
	assert.Contains(t, result.FullLog, "Удалено тавтологий/наддизъюнктов: 1")
	assert.Contains(t, result.FullLog, "C1: P(x)")
}

func TestStoreKeepsSubsumptionInvariant(t *testing.T) {
	engine := newEngine(t, formula.DialectA, "P(x) ∨ Q(x), ¬P(A), ¬Q(A)")
	engine.Prove(context.Background())

	store := engine.Clauses()
	for _, d := range store {
		for _, c := range store {
			if d == c {
				continue
			}
			assert.False(t, resolution.Subsumes(d, c),
				"%s must not subsume retained %s", d.Name, c.Name)
		}
	}
}

func TestProveCanceledContext(t *testing.T) {
	engine := newEngine(t, formula.DialectA, "P, ¬P")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := engine.Prove(ctx)
	require.False(t, result.Success)
	assert.Equal(t, resolution.StatusCanceled, result.Status)
}

func TestProveDeterministic(t *testing.T) {
	text := "P(x) ∨ Q(x), ¬P(A), ¬Q(A), R(B) ∨ ¬P(B)"
	first := prove(t, formula.DialectA, text)
	for i := 0; i < 3; i++ {
		again := prove(t, formula.DialectA, text)
		assert.Equal(t, first.FullLog, again.FullLog)
		assert.Equal(t, first.ShortLog, again.ShortLog)
	}
}
