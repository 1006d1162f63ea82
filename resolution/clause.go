package resolution

import "strings"

// ==========================================
// 2. Клауза
// ==========================================

// Clause — клауза (дизъюнкция литералов). Пустая клауза означает
// противоречие □. Имя присваивается движком при добавлении в хранилище;
// начальные клаузы перенумеровываются, если вычеркивание перед поиском
// удалило часть из них, выведенные клаузы имя больше не меняют.
type Clause struct {
	Name     string
	Literals []*Literal
}

// NewClause строит клаузу, удаляя повторяющиеся литералы.
// Порядок первых вхождений сохраняется: он определяет порядок
// перебора пар при резолюции и воспроизводимость поиска.
func NewClause(literals []*Literal) *Clause {
	seen := make(map[string]bool, len(literals))
	unique := make([]*Literal, 0, len(literals))
	for _, lit := range literals {
		key := lit.String()
		if !seen[key] {
			seen[key] = true
			unique = append(unique, lit)
		}
	}
	return &Clause{Literals: unique}
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "□" // пустая клауза (противоречие)
	}
	parts := make([]string, len(c.Literals))
	for i, lit := range c.Literals {
		parts[i] = lit.String()
	}
	return strings.Join(parts, " ∨ ")
}

// IsEmpty проверяет, является ли клауза пустой (противоречие).
func (c *Clause) IsEmpty() bool {
	return len(c.Literals) == 0
}

// Equal проверяет равенство двух клауз по содержанию литералов.
func (c *Clause) Equal(other *Clause) bool {
	if len(c.Literals) != len(other.Literals) {
		return false
	}
	for i := range c.Literals {
		if !c.Literals[i].Equal(other.Literals[i]) {
			return false
		}
	}
	return true
}

// vars возвращает множество имён переменных клаузы.
func (c *Clause) vars() map[string]bool {
	set := make(map[string]bool)
	for _, lit := range c.Literals {
		lit.collectVars(set)
	}
	return set
}

// hasConstants сообщает, упоминает ли клауза хотя бы одну константу.
// Используется вторичным ключом эвристики перебора хранилища.
func (c *Clause) hasConstants() bool {
	for _, lit := range c.Literals {
		for _, arg := range lit.Args {
			if arg.containsConstant() {
				return true
			}
		}
	}
	return false
}
