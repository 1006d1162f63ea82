package resolution

import (
	"fmt"
	"strings"
)

// ==========================================
// 1. Базовые структуры (Термы, Литералы)
// ==========================================

// TermKind — вид терма.
type TermKind int

const (
	TermVariable TermKind = iota // переменная
	TermConstant                 // константа
	TermFunction                 // функциональный терм f(t1, ..., tn)
)

// Term — терм: переменная, константа или применение функции.
// Термы неизменяемы; равенство всегда структурное.
type Term struct {
	Kind TermKind
	Name string
	Args []*Term // только для функций
}

func NewVariable(name string) *Term {
	return &Term{Kind: TermVariable, Name: name}
}

func NewConstant(name string) *Term {
	return &Term{Kind: TermConstant, Name: name}
}

func NewFunction(name string, args []*Term) *Term {
	return &Term{Kind: TermFunction, Name: name, Args: args}
}

func (t *Term) String() string {
	if t.Kind != TermFunction {
		return t.Name
	}
	argsStrs := make([]string, len(t.Args))
	for i, arg := range t.Args {
		argsStrs[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", t.Name, strings.Join(argsStrs, ", "))
}

// Equal проверяет структурное равенство двух термов.
func (t *Term) Equal(other *Term) bool {
	if t.Kind != other.Kind || t.Name != other.Name || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// collectVars добавляет в set имена всех переменных терма.
func (t *Term) collectVars(set map[string]bool) {
	switch t.Kind {
	case TermVariable:
		set[t.Name] = true
	case TermFunction:
		for _, arg := range t.Args {
			arg.collectVars(set)
		}
	}
}

// containsConstant сообщает, встречается ли в терме константа.
func (t *Term) containsConstant() bool {
	switch t.Kind {
	case TermConstant:
		return true
	case TermFunction:
		for _, arg := range t.Args {
			if arg.containsConstant() {
				return true
			}
		}
	}
	return false
}

// Literal — литерал: применение предиката, возможно под отрицанием.
type Literal struct {
	Predicate string
	Args      []*Term
	Negated   bool
}

func NewLiteral(predicate string, args []*Term, negated bool) *Literal {
	return &Literal{
		Predicate: predicate,
		Args:      args,
		Negated:   negated,
	}
}

func (l *Literal) String() string {
	prefix := ""
	if l.Negated {
		prefix = "¬"
	}
	if len(l.Args) == 0 {
		return prefix + l.Predicate
	}
	argsStrs := make([]string, len(l.Args))
	for i, arg := range l.Args {
		argsStrs[i] = arg.String()
	}
	return fmt.Sprintf("%s%s(%s)", prefix, l.Predicate, strings.Join(argsStrs, ", "))
}

// Negate возвращает копию литерала с инвертированным знаком.
func (l *Literal) Negate() *Literal {
	return NewLiteral(l.Predicate, l.Args, !l.Negated)
}

// Equal проверяет равенство двух литералов.
func (l *Literal) Equal(other *Literal) bool {
	if l.Predicate != other.Predicate || l.Negated != other.Negated {
		return false
	}
	if len(l.Args) != len(other.Args) {
		return false
	}
	for i := range l.Args {
		if !l.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

func (l *Literal) collectVars(set map[string]bool) {
	for _, arg := range l.Args {
		arg.collectVars(set)
	}
}
