package resolution

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ==========================================
// 5. Движок Резолюций (Resolution Engine)
// ==========================================

// DefaultStepLimit — предел числа шагов поиска по умолчанию.
const DefaultStepLimit = 1000

// Status — исход поиска опровержения.
type Status int

const (
	StatusProved    Status = iota // выведена пустая клауза
	StatusNotProven               // рабочий список исчерпан без противоречия
	StatusStepLimit               // превышен предел числа шагов
	StatusCanceled                // поиск прерван через контекст
)

// Derivation — родители выведенной клаузы и использованная подстановка.
type Derivation struct {
	Left  string
	Right string
	Theta Theta
}

// ProofResult — результат доказательства с двумя видами логов.
type ProofResult struct {
	Success  bool
	Status   Status
	Steps    int
	FullLog  string // полный лог со всеми резолюциями
	ShortLog string // краткий лог — только цепочка к противоречию
}

// Engine — движок поиска опровержения методом резолюций.
// Клаузы получают стабильные имена C1, C2, ...; выведенные клаузы
// записываются в карту родителей, по которой потом восстанавливается
// минимальный путь доказательства.
type Engine struct {
	store     []*Clause
	dict      map[string]*Clause
	parents   map[string]Derivation
	usedPairs map[pair]bool
	initial   int // число начальных клауз после вычеркивания
	nextNum   int

	// StepLimit — предел числа записанных шагов поиска: поиск
	// прерывается, как только записанных шагов становится больше
	// StepLimit (последний, StepLimit+1-й, шаг остаётся в логе).
	StepLimit int
	// PreferConstants управляет вторичным ключом эвристики перебора:
	// true — клаузы с константами раньше (быстрее замыкает цель,
	// засеянную отрицанием утверждения), false — позже.
	PreferConstants bool
}

// NewEngine создаёт новый движок резолюций.
func NewEngine() *Engine {
	return &Engine{
		dict:            make(map[string]*Clause),
		parents:         make(map[string]Derivation),
		usedPairs:       make(map[pair]bool),
		StepLimit:       DefaultStepLimit,
		PreferConstants: true,
	}
}

// SetClauses загружает начальные клаузы и присваивает им имена C1..Cn
// в порядке ввода. Последняя клауза по соглашению — отрицание цели.
func (e *Engine) SetClauses(clauses []*Clause) {
	e.store = make([]*Clause, 0, len(clauses))
	e.dict = make(map[string]*Clause, len(clauses))
	e.parents = make(map[string]Derivation)
	e.usedPairs = make(map[pair]bool)
	for i, c := range clauses {
		c.Name = fmt.Sprintf("C%d", i+1)
		e.store = append(e.store, c)
		e.dict[c.Name] = c
	}
	e.initial = len(clauses)
	e.nextNum = len(clauses) + 1
}

// Clauses возвращает текущее содержимое хранилища клауз.
func (e *Engine) Clauses() []*Clause {
	out := make([]*Clause, len(e.store))
	copy(out, e.store)
	return out
}

// pair — ключ пары клауз по именам. Ключ по именам, а не по адресам:
// структурно равные клаузы, попавшие в хранилище в разные моменты,
// образуют одну и ту же пару.
type pair [2]string

func makePair(a, b string) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// resolvent — одна резольвента вместе с использованной подстановкой.
type resolvent struct {
	clause *Clause
	theta  Theta
}

// resolvePair возвращает все резольвенты двух клауз. Перед унификацией
// переменные второй клаузы разводятся с переменными первой.
func resolvePair(c1, c2 *Clause) []resolvent {
	c2 = renameApart(c1, c2)

	var resolvents []resolvent
	for i, l1 := range c1.Literals {
		for j, l2 := range c2.Literals {
			// ищем пару L и ¬L над одним предикатом
			if l1.Predicate != l2.Predicate || l1.Negated == l2.Negated {
				continue
			}
			theta, ok := Unify(l1, l2.Negate(), nil)
			if !ok {
				continue
			}

			newLits := make([]*Literal, 0, len(c1.Literals)+len(c2.Literals)-2)
			for k, l := range c1.Literals {
				if k != i {
					newLits = append(newLits, l.Apply(theta))
				}
			}
			for k, l := range c2.Literals {
				if k != j {
					newLits = append(newLits, l.Apply(theta))
				}
			}
			// NewClause склеивает совпавшие литералы
			resolvents = append(resolvents, resolvent{NewClause(newLits), theta})
		}
	}
	return resolvents
}

// sortedStore возвращает снимок хранилища, упорядоченный для перебора:
// короткие клаузы раньше, вторичный ключ — наличие констант.
func (e *Engine) sortedStore() []*Clause {
	out := make([]*Clause, len(e.store))
	copy(out, e.store)
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := len(out[i].Literals), len(out[j].Literals)
		if li != lj {
			return li < lj
		}
		hi, hj := out[i].hasConstants(), out[j].hasConstants()
		if hi == hj {
			return false
		}
		if e.PreferConstants {
			return hi
		}
		return hj
	})
	return out
}

// renumber заменяет хранилище выжившими после вычеркивания клаузами
// и перенумеровывает их C1..Cm.
func (e *Engine) renumber(survivors []*Clause) {
	e.store = survivors
	e.dict = make(map[string]*Clause, len(survivors))
	for i, c := range survivors {
		c.Name = fmt.Sprintf("C%d", i+1)
		e.dict[c.Name] = c
	}
	e.initial = len(survivors)
	e.nextNum = len(survivors) + 1
}

// subsumedByStore проверяет, поглощена ли резольвента какой-либо
// клаузой хранилища (в том числе её точной копией).
func (e *Engine) subsumedByStore(r *Clause) bool {
	for _, existing := range e.store {
		if Subsumes(existing, r) {
			return true
		}
	}
	return false
}

// removeSubsumedBy удаляет из хранилища все клаузы, поглощённые r.
// Записи в словаре имён и карте родителей сохраняются: они нужны
// для восстановления пути доказательства.
func (e *Engine) removeSubsumedBy(r *Clause) {
	filtered := e.store[:0]
	for _, c := range e.store {
		if !Subsumes(r, c) {
			filtered = append(filtered, c)
		}
	}
	e.store = filtered
}

// Prove запускает поиск опровержения. Отмена контекста проверяется
// между итерациями основного цикла.
func (e *Engine) Prove(ctx context.Context) ProofResult {
	var logLines []string
	logLines = append(logLines, "Начальные клаузы:")
	for _, c := range e.store {
		logLines = append(logLines, fmt.Sprintf("%s: %s", c.Name, c))
	}

	// стратегия вычеркивания: тавтологии и поглощённые клаузы
	pruned := make([]*Clause, 0, len(e.store))
	for _, c := range e.store {
		if !IsTautology(c) {
			pruned = append(pruned, c)
		}
	}
	pruned = removeSubsumed(pruned)
	if len(pruned) != len(e.store) {
		logLines = append(logLines, fmt.Sprintf("Удалено тавтологий/наддизъюнктов: %d", len(e.store)-len(pruned)))
		e.renumber(pruned)
		for _, c := range e.store {
			logLines = append(logLines, fmt.Sprintf("%s: %s", c.Name, c))
		}
	}

	if len(e.store) == 0 {
		logLines = append(logLines, "Формула не доказана")
		return e.failure(StatusNotProven, nil, logLines, "Доказательство не найдено — краткий лог недоступен.")
	}

	// множество поддержки: в рабочий список попадает только
	// последняя клауза — отрицание доказываемого утверждения
	active := []*Clause{e.store[len(e.store)-1]}
	var steps []string

	for len(active) > 0 {
		if ctx.Err() != nil {
			logLines = append(logLines, "Поиск прерван")
			return e.failure(StatusCanceled, steps, logLines, "Поиск прерван — краткий лог недоступен.")
		}

		current := active[0]
		active = active[1:]

		for _, other := range e.sortedStore() {
			if other.Name == current.Name {
				continue
			}
			key := makePair(current.Name, other.Name)
			if e.usedPairs[key] {
				continue
			}
			e.usedPairs[key] = true

			for _, r := range resolvePair(current, other) {
				if IsTautology(r.clause) {
					continue
				}

				// пустая резольвента — противоречие найдено
				if r.clause.IsEmpty() {
					steps = append(steps, terminalStep(len(steps)+1, current.Name, other.Name, r.theta))
					logLines = append(logLines, "Полная последовательность шагов:")
					logLines = append(logLines, steps...)
					logLines = append(logLines, fmt.Sprintf("Формула доказана за %d %s", len(steps), stepWord(len(steps))))
					short := e.reconstructProof(current.Name, other.Name)
					return ProofResult{
						Success:  true,
						Status:   StatusProved,
						Steps:    len(steps),
						FullLog:  strings.Join(logLines, "\n"),
						ShortLog: strings.Join(short, "\n"),
					}
				}

				if e.subsumedByStore(r.clause) {
					continue
				}
				// обратное поглощение: новая клауза вытесняет
				// все поглощённые ею
				e.removeSubsumedBy(r.clause)

				name := fmt.Sprintf("C%d", e.nextNum)
				e.nextNum++
				r.clause.Name = name
				e.store = append(e.store, r.clause)
				active = append(active, r.clause)
				e.dict[name] = r.clause
				e.parents[name] = Derivation{Left: current.Name, Right: other.Name, Theta: r.theta}
				steps = append(steps, derivedStep(len(steps)+1, name, current.Name, other.Name, r.theta, r.clause))

				if len(steps) > e.StepLimit {
					logLines = append(logLines, "Полная последовательность шагов:")
					logLines = append(logLines, steps...)
					logLines = append(logLines, "Превышен лимит шагов")
					return e.failure(StatusStepLimit, steps, logLines,
						fmt.Sprintf("Не удалось найти решение за отведенное число шагов: %d.", e.StepLimit))
				}
			}
		}
	}

	if len(steps) > 0 {
		logLines = append(logLines, "Полная последовательность шагов:")
		logLines = append(logLines, steps...)
	}
	logLines = append(logLines, "Формула не доказана")
	return e.failure(StatusNotProven, steps, logLines, "Доказательство не найдено — краткий лог недоступен.")
}

func (e *Engine) failure(status Status, steps, logLines []string, short string) ProofResult {
	return ProofResult{
		Success:  false,
		Status:   status,
		Steps:    len(steps),
		FullLog:  strings.Join(logLines, "\n"),
		ShortLog: short,
	}
}
