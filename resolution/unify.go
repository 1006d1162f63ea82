package resolution

// ==========================================
// 3. Унификация
// ==========================================

// Theta — подстановка (отображение имени переменной на терм: x -> Const).
// Подстановка строится инкрементально без композиции, поэтому значение
// переменной может само быть переменной; Apply дочитывает такие цепочки
// до неподвижной точки.
type Theta map[string]*Term

// copyTheta создаёт копию подстановки.
func copyTheta(original Theta) Theta {
	if original == nil {
		return make(Theta)
	}
	copied := make(Theta, len(original))
	for k, v := range original {
		copied[k] = v
	}
	return copied
}

// Apply применяет подстановку к терму. Для переменной значение
// дочитывается по цепочке x -> y -> ... до несвязанной переменной
// или составного терма.
func (t *Term) Apply(theta Theta) *Term {
	if len(theta) == 0 {
		return t
	}
	switch t.Kind {
	case TermVariable:
		cur := t
		for cur.Kind == TermVariable {
			next, ok := theta[cur.Name]
			if !ok {
				return cur
			}
			cur = next
		}
		return cur.Apply(theta)
	case TermConstant:
		return t
	default:
		newArgs := make([]*Term, len(t.Args))
		for i, arg := range t.Args {
			newArgs[i] = arg.Apply(theta)
		}
		return NewFunction(t.Name, newArgs)
	}
}

// Apply применяет подстановку к литералу.
func (l *Literal) Apply(theta Theta) *Literal {
	if len(theta) == 0 {
		return l
	}
	newArgs := make([]*Term, len(l.Args))
	for i, arg := range l.Args {
		newArgs[i] = arg.Apply(theta)
	}
	return NewLiteral(l.Predicate, newArgs, l.Negated)
}

// Unify пытается унифицировать два литерала, расширяя подстановку theta.
// Возвращает nil, false если унификация невозможна. Знак литералов
// должен совпадать: резолюция сама инвертирует один из них.
func Unify(x, y *Literal, theta Theta) (Theta, bool) {
	if theta == nil {
		theta = make(Theta)
	}
	if x.Predicate != y.Predicate || x.Negated != y.Negated || len(x.Args) != len(y.Args) {
		return nil, false
	}
	return unifyArgs(x.Args, y.Args, theta)
}

// UnifyTerms пытается унифицировать два терма.
func UnifyTerms(x, y *Term, theta Theta) (Theta, bool) {
	if theta == nil {
		theta = make(Theta)
	}
	return unifyTerms(x, y, theta)
}

func unifyTerms(x, y *Term, theta Theta) (Theta, bool) {
	// термы уже одинаковы — подстановка не нужна
	if x.Equal(y) {
		return theta, true
	}
	if x.Kind == TermVariable {
		return unifyVar(x, y, theta)
	}
	if y.Kind == TermVariable {
		return unifyVar(y, x, theta)
	}
	// применения функций: одинаковая голова, попарно аргументы
	if x.Kind == TermFunction && y.Kind == TermFunction {
		if x.Name != y.Name || len(x.Args) != len(y.Args) {
			return nil, false
		}
		return unifyArgs(x.Args, y.Args, theta)
	}
	// разные константы либо несовместимые виды термов
	return nil, false
}

// unifyArgs унифицирует два списка термов слева направо, протягивая theta.
func unifyArgs(xs, ys []*Term, theta Theta) (Theta, bool) {
	if len(xs) != len(ys) {
		return nil, false
	}
	for i := range xs {
		newTheta, ok := unifyTerms(xs[i], ys[i], theta)
		if !ok {
			return nil, false
		}
		theta = newTheta
	}
	return theta, true
}

// unifyVar унифицирует переменную с термом.
func unifyVar(varTerm, x *Term, theta Theta) (Theta, bool) {
	// переменная уже связана — унифицируем её значение
	if val, exists := theta[varTerm.Name]; exists {
		return unifyTerms(val, x, theta)
	}
	// x — связанная переменная: унифицируем с её значением
	if x.Kind == TermVariable {
		if val, exists := theta[x.Name]; exists {
			return unifyTerms(varTerm, val, theta)
		}
	}
	// проверка вхождения до связывания: x не унифицируем с f(x)
	if occurs(varTerm.Name, x, theta) {
		return nil, false
	}
	newTheta := copyTheta(theta)
	newTheta[varTerm.Name] = x
	return newTheta, true
}

// occurs проверяет, входит ли переменная name в терм t
// после применения текущей подстановки.
func occurs(name string, t *Term, theta Theta) bool {
	return containsVar(name, t.Apply(theta))
}

func containsVar(name string, t *Term) bool {
	switch t.Kind {
	case TermVariable:
		return t.Name == name
	case TermFunction:
		for _, arg := range t.Args {
			if containsVar(name, arg) {
				return true
			}
		}
	}
	return false
}

// renameApart переименовывает переменные other, совпадающие с
// переменными base: одноимённые переменные разных клауз логически
// различны, и без разведения резолюция P(x) с ¬P(f(x)) была бы
// невозможна. К имени добавляются штрихи до тех пор, пока оно
// не станет свежим для обеих клауз.
func renameApart(base, other *Clause) *Clause {
	baseVars := base.vars()
	otherVars := other.vars()

	rename := make(map[string]string)
	taken := make(map[string]bool, len(baseVars)+len(otherVars))
	for v := range baseVars {
		taken[v] = true
	}
	for v := range otherVars {
		taken[v] = true
	}
	for v := range otherVars {
		if !baseVars[v] {
			continue
		}
		fresh := v + "'"
		for taken[fresh] {
			fresh += "'"
		}
		taken[fresh] = true
		rename[v] = fresh
	}
	if len(rename) == 0 {
		return other
	}

	newLits := make([]*Literal, len(other.Literals))
	for i, lit := range other.Literals {
		newArgs := make([]*Term, len(lit.Args))
		for j, arg := range lit.Args {
			newArgs[j] = renameTerm(arg, rename)
		}
		newLits[i] = NewLiteral(lit.Predicate, newArgs, lit.Negated)
	}
	renamed := NewClause(newLits)
	renamed.Name = other.Name
	return renamed
}

func renameTerm(t *Term, rename map[string]string) *Term {
	switch t.Kind {
	case TermVariable:
		if fresh, ok := rename[t.Name]; ok {
			return NewVariable(fresh)
		}
		return t
	case TermConstant:
		return t
	default:
		newArgs := make([]*Term, len(t.Args))
		for i, arg := range t.Args {
			newArgs[i] = renameTerm(arg, rename)
		}
		return NewFunction(t.Name, newArgs)
	}
}
