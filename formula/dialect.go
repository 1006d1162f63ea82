// Package formula разбирает текстовые логические формулы и приводит их
// к конъюнктивной нормальной форме — списку клауз для движка резолюций.
package formula

import (
	"fmt"
	"unicode"

	"logicprover/resolution"
)

// Dialect — соглашение о классификации идентификаторов в термах.
type Dialect int

const (
	// DialectA: переменная — любой идентификатор со строчной буквы,
	// остальное — константы; функциональные термы не поддерживаются,
	// предикатом может быть любое имя.
	DialectA Dialect = iota
	// DialectB: переменная — одна строчная буква; константа —
	// идентификатор с заглавной буквы или многосимвольный строчный;
	// функция — строчное имя с аргументами; предикат — имя с
	// заглавной буквы.
	DialectB
)

// ParseDialect разбирает имя диалекта из командной строки.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "a", "A":
		return DialectA, nil
	case "b", "B":
		return DialectB, nil
	}
	return DialectA, fmt.Errorf("неизвестный диалект %q (ожидается a или b)", name)
}

// classifyTerm строит терм по имени аргумента без собственных аргументов.
func (d Dialect) classifyTerm(name string) *resolution.Term {
	switch d {
	case DialectB:
		if isSingleLowerLetter(name) {
			return resolution.NewVariable(name)
		}
		return resolution.NewConstant(name)
	default:
		if isLowerInitial(name) {
			return resolution.NewVariable(name)
		}
		return resolution.NewConstant(name)
	}
}

// allowsPredicate проверяет допустимость имени в позиции предиката.
func (d Dialect) allowsPredicate(name string) bool {
	if d != DialectB {
		return true
	}
	return !isLowerInitial(name)
}

// isLowerInitial проверяет, начинается ли имя со строчной буквы.
func isLowerInitial(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r) && unicode.IsLetter(r)
	}
	return false
}

// isSingleLowerLetter проверяет, является ли строка одной строчной буквой.
func isSingleLowerLetter(s string) bool {
	runes := []rune(s)
	if len(runes) != 1 {
		return false
	}
	return unicode.IsLower(runes[0]) && unicode.IsLetter(runes[0])
}
