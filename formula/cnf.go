package formula

import (
	"fmt"

	"logicprover/resolution"
)

// CNF приводит формулу к конъюнктивной нормальной форме тремя
// проходами: устранение импликаций, нормальная форма отрицаний,
// дистрибуция дизъюнкции над конъюнкцией.
func CNF(f Formula) Formula {
	return distribute(toNNF(eliminateImplications(f)))
}

// eliminateImplications заменяет A -> B на ¬A ∨ B.
func eliminateImplications(f Formula) Formula {
	switch n := f.(type) {
	case *Pred:
		return n
	case *Not:
		return &Not{Sub: eliminateImplications(n.Sub)}
	case *And:
		return &And{Left: eliminateImplications(n.Left), Right: eliminateImplications(n.Right)}
	case *Or:
		return &Or{Left: eliminateImplications(n.Left), Right: eliminateImplications(n.Right)}
	case *Implies:
		return &Or{
			Left:  &Not{Sub: eliminateImplications(n.Left)},
			Right: eliminateImplications(n.Right),
		}
	}
	panic(fmt.Sprintf("внутренняя ошибка: неизвестный узел формулы %T", f))
}

// toNNF опускает отрицания до атомов: ¬¬A => A, ¬(A ∧ B) => ¬A ∨ ¬B,
// ¬(A ∨ B) => ¬A ∧ ¬B. Импликаций к этому моменту быть не должно.
func toNNF(f Formula) Formula {
	switch n := f.(type) {
	case *Pred:
		return n
	case *And:
		return &And{Left: toNNF(n.Left), Right: toNNF(n.Right)}
	case *Or:
		return &Or{Left: toNNF(n.Left), Right: toNNF(n.Right)}
	case *Not:
		switch sub := n.Sub.(type) {
		case *Pred:
			return n
		case *Not:
			return toNNF(sub.Sub)
		case *And:
			return &Or{Left: toNNF(&Not{Sub: sub.Left}), Right: toNNF(&Not{Sub: sub.Right})}
		case *Or:
			return &And{Left: toNNF(&Not{Sub: sub.Left}), Right: toNNF(&Not{Sub: sub.Right})}
		}
	}
	panic(fmt.Sprintf("внутренняя ошибка: импликация или неизвестный узел %T в НФО", f))
}

// distribute проталкивает ∨ под ∧: A ∨ (B ∧ C) => (A ∨ B) ∧ (A ∨ C),
// пока ни у одного узла ∨ не останется потомка ∧. Перезаписанные
// поддеревья дистрибутируются повторно до неподвижной точки.
func distribute(f Formula) Formula {
	switch n := f.(type) {
	case *And:
		return &And{Left: distribute(n.Left), Right: distribute(n.Right)}
	case *Or:
		left := distribute(n.Left)
		right := distribute(n.Right)
		if a, ok := left.(*And); ok {
			return distribute(&And{
				Left:  &Or{Left: a.Left, Right: right},
				Right: &Or{Left: a.Right, Right: right},
			})
		}
		if a, ok := right.(*And); ok {
			return distribute(&And{
				Left:  &Or{Left: left, Right: a.Left},
				Right: &Or{Left: left, Right: a.Right},
			})
		}
		return &Or{Left: left, Right: right}
	default:
		return f
	}
}

// ExtractClauses извлекает клаузы из формулы в КНФ: конъюнкты
// верхнего уровня разделяются, каждый собирает свои литералы.
// Не-литерал на месте листа — ошибка переписывания КНФ.
func ExtractClauses(f Formula) []*resolution.Clause {
	conj := conjuncts(f)
	clauses := make([]*resolution.Clause, 0, len(conj))
	for _, c := range conj {
		disj := disjuncts(c)
		lits := make([]*resolution.Literal, 0, len(disj))
		for _, leaf := range disj {
			lits = append(lits, toLiteral(leaf))
		}
		clauses = append(clauses, resolution.NewClause(lits))
	}
	return clauses
}

func conjuncts(f Formula) []Formula {
	if a, ok := f.(*And); ok {
		return append(conjuncts(a.Left), conjuncts(a.Right)...)
	}
	return []Formula{f}
}

func disjuncts(f Formula) []Formula {
	if o, ok := f.(*Or); ok {
		return append(disjuncts(o.Left), disjuncts(o.Right)...)
	}
	return []Formula{f}
}

func toLiteral(f Formula) *resolution.Literal {
	switch n := f.(type) {
	case *Pred:
		return resolution.NewLiteral(n.Name, n.Args, false)
	case *Not:
		if p, ok := n.Sub.(*Pred); ok {
			return resolution.NewLiteral(p.Name, p.Args, true)
		}
	}
	panic(fmt.Sprintf("внутренняя ошибка: не литерал %T после КНФ", f))
}
