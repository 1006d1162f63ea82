package resolution

import "sort"

// ==========================================
// 4. Стратегии вычеркивания
// ==========================================

// IsTautology проверяет, содержит ли клауза литерал и унифицируемое
// с ним отрицание (P и ¬P). Такая клауза истинна всегда и бесполезна
// для вывода.
func IsTautology(c *Clause) bool {
	for i, lit1 := range c.Literals {
		for j, lit2 := range c.Literals {
			if i >= j {
				continue
			}
			if lit1.Predicate != lit2.Predicate || lit1.Negated == lit2.Negated {
				continue
			}
			if _, ok := Unify(lit1, lit2.Negate(), nil); ok {
				return true
			}
		}
	}
	return false
}

// Subsumes проверяет, поглощает ли клауза d клаузу c: каждый литерал d
// унифицируем с каким-либо литералом c. Литералы проверяются независимо,
// с пустой подстановкой для каждого.
func Subsumes(d, c *Clause) bool {
	if d.IsEmpty() && !c.IsEmpty() {
		return false
	}
	for _, dLit := range d.Literals {
		found := false
		for _, cLit := range c.Literals {
			if _, ok := Unify(dLit, cLit, nil); ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// removeSubsumed удаляет из множества клауз все поглощённые другими.
// Кандидаты перебираются от коротких к длинным: короткая клауза скорее
// поглотит длинную, чем наоборот. Выжившие возвращаются в исходном
// порядке.
func removeSubsumed(clauses []*Clause) []*Clause {
	if len(clauses) == 0 {
		return clauses
	}

	order := make([]int, len(clauses))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(clauses[order[i]].Literals) < len(clauses[order[j]].Literals)
	})

	kept := make([]bool, len(clauses))
	for _, idx := range order {
		subsumed := false
		for other := range clauses {
			if kept[other] && Subsumes(clauses[other], clauses[idx]) {
				subsumed = true
				break
			}
		}
		kept[idx] = !subsumed
	}

	result := make([]*Clause, 0, len(clauses))
	for i, c := range clauses {
		if kept[i] {
			result = append(result, c)
		}
	}
	return result
}
