package resolution

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ==========================================
// 6. Восстановление пути доказательства
// ==========================================

// clauseIndex извлекает числовой индекс из имени вида C17.
func clauseIndex(name string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "C"))
	if err != nil {
		return 0
	}
	return n
}

// ancestors рекурсивно собирает всех предков клаузы по карте родителей.
func (e *Engine) ancestors(name string, into map[string]bool) {
	if into[name] {
		return
	}
	into[name] = true
	if d, ok := e.parents[name]; ok {
		e.ancestors(d.Left, into)
		e.ancestors(d.Right, into)
	}
}

// topoSort упорядочивает выведенные клаузы так, чтобы каждая шла
// после обоих своих родителей.
func (e *Engine) topoSort(names []string) []string {
	visited := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		if d, ok := e.parents[name]; ok {
			if _, derived := e.parents[d.Left]; derived {
				visit(d.Left)
			}
			if _, derived := e.parents[d.Right]; derived {
				visit(d.Right)
			}
		}
		result = append(result, name)
	}
	for _, name := range names {
		visit(name)
	}
	return result
}

// reconstructProof строит минимальную последовательность шагов,
// приводящую к пустой клаузе: участвующие начальные клаузы,
// выведенные предки в топологическом порядке и завершающая резолюция
// nameA и nameB в □. Шаги пути — подмножество шагов полного лога
// поиска (совпадающее с ним, если бесполезных шагов не было).
func (e *Engine) reconstructProof(nameA, nameB string) []string {
	all := make(map[string]bool)
	e.ancestors(nameA, all)
	e.ancestors(nameB, all)

	var initials, derived []string
	for name := range all {
		if clauseIndex(name) <= e.initial {
			initials = append(initials, name)
		} else {
			derived = append(derived, name)
		}
	}
	sortByIndex(initials)
	sortByIndex(derived)
	derived = e.topoSort(derived)

	lines := []string{"Полезные резолюции (шаги):"}
	for _, name := range initials {
		lines = append(lines, fmt.Sprintf("Начальная %s: %s", name, e.dict[name]))
	}
	stepNumber := 1
	for _, name := range derived {
		d := e.parents[name]
		lines = append(lines, derivedStep(stepNumber, name, d.Left, d.Right, d.Theta, e.dict[name]))
		stepNumber++
	}
	lines = append(lines, fmt.Sprintf("Шаг %d: Резолюция %s и %s -> □ (пустая клауза)", stepNumber, nameA, nameB))
	return lines
}

func sortByIndex(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return clauseIndex(names[i]) < clauseIndex(names[j])
	})
}
