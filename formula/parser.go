package formula

import (
	"fmt"
	"strings"

	"logicprover/resolution"
)

// Грамматика, от низшего приоритета к высшему:
//
//	implication := or ( IMPLIES implication )?   — правоассоциативна
//	or          := and ( OR and )*
//	and         := unary ( AND unary )*
//	unary       := NOT unary | atom
//	atom        := LPAREN implication RPAREN | NAME ( LPAREN args? RPAREN )?
//	args        := term ( COMMA term )*
//	term        := NAME ( LPAREN args RPAREN )?   — вложение только в диалекте B
type parser struct {
	tokens  []Token
	pos     int
	dialect Dialect
}

// Parse разбирает одну формулу.
func Parse(s string, d Dialect) (Formula, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, dialect: d}
	node, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenEnd {
		return nil, &SyntaxError{Pos: p.peek().Pos, Msg: "лишние токены после формулы"}
	}
	return node, nil
}

// SplitTopLevel разбивает ввод по запятым верхнего уровня — тем,
// что не лежат внутри скобок. Каждая часть — отдельная формула.
func SplitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + len(",")
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// Compile разбирает текст (несколько формул через запятые верхнего
// уровня), приводит каждую формулу к КНФ и возвращает общий список клауз.
func Compile(text string, d Dialect) ([]*resolution.Clause, error) {
	var clauses []*resolution.Clause
	for _, part := range SplitTopLevel(text) {
		f, err := Parse(part, d)
		if err != nil {
			return nil, fmt.Errorf("формула %q: %w", strings.TrimSpace(part), err)
		}
		clauses = append(clauses, ExtractClauses(CNF(f))...)
	}
	return clauses, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEnd {
		p.pos++
	}
	return tok
}

func (p *parser) consume(tt TokenType) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("ожидался %s, а получено %s %q", tt, tok.Type, tok.Text)}
	}
	return p.next(), nil
}

// импликация (низший приоритет)
func (p *parser) parseImplication() (Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == TokenImplies {
		p.next()
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		return &Implies{Left: left, Right: right}, nil
	}
	return left, nil
}

// ∨
func (p *parser) parseOr() (Formula, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = &Or{Left: node, Right: right}
	}
	return node, nil
}

// ∧
func (p *parser) parseAnd() (Formula, error) {
	node, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node = &And{Left: node, Right: right}
	}
	return node, nil
}

// ¬
func (p *parser) parseUnary() (Formula, error) {
	if p.peek().Type == TokenNot {
		p.next()
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{Sub: sub}, nil
	}
	return p.parseAtom()
}

// скобки или предикат
func (p *parser) parseAtom() (Formula, error) {
	tok := p.peek()

	if tok.Type == TokenLParen {
		p.next()
		node, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRParen); err != nil {
			return nil, err
		}
		return node, nil
	}

	if tok.Type == TokenName {
		p.next()
		if !p.dialect.allowsPredicate(tok.Text) {
			return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("имя предиката %q должно начинаться с заглавной буквы", tok.Text)}
		}
		var args []*resolution.Term
		if p.peek().Type == TokenLParen {
			p.next()
			if p.peek().Type != TokenRParen {
				var err error
				args, err = p.parseArgs()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.consume(TokenRParen); err != nil {
				return nil, err
			}
		}
		return &Pred{Name: tok.Text, Args: args}, nil
	}

	return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("неожиданный токен %s в атоме", tok.Type)}
}

func (p *parser) parseArgs() ([]*resolution.Term, error) {
	var args []*resolution.Term
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	args = append(args, term)
	for p.peek().Type == TokenComma {
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, term)
	}
	return args, nil
}

func (p *parser) parseTerm() (*resolution.Term, error) {
	tok, err := p.consume(TokenName)
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenLParen {
		return p.dialect.classifyTerm(tok.Text), nil
	}

	// применение функции внутри аргумента
	if p.dialect != DialectB {
		return nil, &SyntaxError{Pos: p.peek().Pos, Msg: "функциональные термы не поддерживаются в этом диалекте"}
	}
	if !isLowerInitial(tok.Text) {
		return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("имя функции %q должно начинаться со строчной буквы", tok.Text)}
	}
	p.next()
	if p.peek().Type == TokenRParen {
		return nil, &SyntaxError{Pos: p.peek().Pos, Msg: fmt.Sprintf("функция %q без аргументов", tok.Text)}
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenRParen); err != nil {
		return nil, err
	}
	return resolution.NewFunction(tok.Text, args), nil
}
