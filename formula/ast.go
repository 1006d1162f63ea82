package formula

import "logicprover/resolution"

// Formula — синтаксическое дерево формулы над связками ¬, ∧, ∨, ->.
// Замкнутая сумма: новых видов узлов не предполагается, обход —
// type switch по пяти вариантам.
type Formula interface {
	isFormula()
}

// Pred — применение предиката, в том числе нульарное.
type Pred struct {
	Name string
	Args []*resolution.Term
}

// Not — отрицание.
type Not struct {
	Sub Formula
}

// And — конъюнкция.
type And struct {
	Left, Right Formula
}

// Or — дизъюнкция.
type Or struct {
	Left, Right Formula
}

// Implies — импликация.
type Implies struct {
	Left, Right Formula
}

func (*Pred) isFormula()    {}
func (*Not) isFormula()     {}
func (*And) isFormula()     {}
func (*Or) isFormula()      {}
func (*Implies) isFormula() {}
