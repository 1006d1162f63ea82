package resolution

import (
	"fmt"
	"sort"
	"strings"
)

// ==========================================
// 7. Форматирование
// ==========================================

// String форматирует подстановку в виде {x/A, y/f(B)}.
// Переменные упорядочены по имени для детерминированного вывода.
func (theta Theta) String() string {
	if len(theta) == 0 {
		return "{}"
	}
	vars := make([]string, 0, len(theta))
	for v := range theta {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = fmt.Sprintf("%s/%s", v, theta[v])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// stepWord согласует слово «шаг» с числительным.
func stepWord(n int) string {
	if n%10 == 1 && n%100 != 11 {
		return "шаг"
	}
	if n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14) {
		return "шага"
	}
	return "шагов"
}

// derivedStep форматирует строку лога для выведенной резольвенты.
func derivedStep(num int, name, left, right string, theta Theta, c *Clause) string {
	if len(theta) == 0 {
		return fmt.Sprintf("Шаг %d - %s: Резолюция %s и %s -> %s: %s", num, name, left, right, name, c)
	}
	return fmt.Sprintf("Шаг %d - %s: Резолюция %s и %s (унификация: %s) -> %s: %s", num, name, left, right, theta, name, c)
}

// terminalStep форматирует строку лога для завершающей резолюции в □.
func terminalStep(num int, left, right string, theta Theta) string {
	if len(theta) == 0 {
		return fmt.Sprintf("Шаг %d: Резолюция %s и %s -> □", num, left, right)
	}
	return fmt.Sprintf("Шаг %d: Резолюция %s и %s (унификация: %s) -> □", num, left, right, theta)
}
