package parser

import (
	"fmt"

	"github.com/wexlang/wex/internal/ast"
	"github.com/wexlang/wex/internal/lexer"
)

// Parser holds the grammar engine's state for a single parse invocation.
// The memo table and furthest-failure marker are private to that
// invocation; concurrent parses of independent inputs need no coordination.
type Parser struct {
	tokens []lexer.Token
	pos    int

	memo map[memoKey]memoEntry

	// furthest failure point, kept across backtracking for the diagnostic
	furthest    int
	furthestMsg string
}

// New creates a parser over source
func New(source string) *Parser {
	l := lexer.New(source)
	return &Parser{
		tokens:   l.Tokenize(),
		memo:     make(map[memoKey]memoEntry),
		furthest: -1,
	}
}

// rule identifies a grammar rule for memoization
type rule int

const (
	ruleSpan rule = iota
	ruleOr
	ruleAnd
	ruleNot
	ruleEquality
	ruleRelational
	ruleAdditive
	ruleProduct
	ruleUnary
	rulePower
)

type memoKey struct {
	rule rule
	pos  int
}

type memoEntry struct {
	expr ast.Expr
	next int
	err  error
}

// memoized runs fn with its result cached by (rule, start position), so
// repeated attempts at the same position replay the cached outcome instead
// of re-recursing. A failing rule restores the cursor; it has no side
// effects beyond the furthest-failure marker.
func (p *Parser) memoized(r rule, fn func() (ast.Expr, error)) (ast.Expr, error) {
	key := memoKey{rule: r, pos: p.pos}
	if e, ok := p.memo[key]; ok {
		if e.err != nil {
			return nil, e.err
		}
		p.pos = e.next
		return e.expr, nil
	}
	start := p.pos
	expr, err := fn()
	if err != nil {
		p.pos = start
		p.memo[key] = memoEntry{err: err}
		return nil, err
	}
	p.memo[key] = memoEntry{expr: expr, next: p.pos}
	return expr, nil
}

// attempt runs fn and backtracks on failure. Used where the grammar allows
// an operand to be absent, such as the stop slot of a span.
func (p *Parser) attempt(fn func() (ast.Expr, error)) (ast.Expr, bool) {
	start := p.pos
	expr, err := fn()
	if err != nil {
		p.pos = start
		return nil, false
	}
	return expr, true
}

// parseError is an internal failure at a token position. It propagates up
// through the rules; the driver converts the furthest one into a
// diagnostic.
type parseError struct {
	msg string
	pos int
}

func (e *parseError) Error() string { return e.msg }

// failf records a failure at a token index, keeping the furthest one seen
func (p *Parser) failf(pos int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if pos >= p.furthest {
		p.furthest = pos
		p.furthestMsg = msg
	}
	return &parseError{msg: msg, pos: pos}
}

// token returns the token at index idx, clamped to the final token
func (p *Parser) token(idx int) lexer.Token {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx]
}

// current returns the current token
func (p *Parser) current() lexer.Token {
	return p.token(p.pos)
}

// peek returns the next token without consuming
func (p *Parser) peek() lexer.Token {
	return p.token(p.pos + 1)
}

// advance moves to the next token and returns the consumed token
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// check returns true if the current token is of the given type
func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

// match consumes the current token if it matches, returns true if consumed
func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// expectBracketClose consumes a single ']'. A ']]' token here closes this
// bracket and leaves its second half for the enclosing construct, so inputs
// like f[g[1]] lex greedily yet still parse.
func (p *Parser) expectBracketClose() error {
	switch p.current().Type {
	case lexer.RBRACKET:
		p.advance()
		return nil
	case lexer.RRBRACKET:
		p.splitRRBracket()
		return nil
	}
	return p.failf(p.pos, "expected ']', got %s", p.current().Type)
}

// expectPartClose consumes the ']]' ending a Part. A ']' left over from an
// earlier split pairs with whatever sits directly against it: another ']'
// single, or the first half of a ']]' token whose second half then remains
// for the enclosing construct. Runs of five or more ']' characters thread
// through here one construct at a time.
func (p *Parser) expectPartClose() error {
	switch p.current().Type {
	case lexer.RRBRACKET:
		p.advance()
		return nil
	case lexer.RBRACKET:
		cur, next := p.current(), p.peek()
		if next.Line == cur.Line && next.Column == cur.Column+1 {
			switch next.Type {
			case lexer.RBRACKET:
				p.advance()
				p.advance()
				return nil
			case lexer.RRBRACKET:
				p.advance()
				p.splitRRBracket()
				return nil
			}
		}
	}
	return p.failf(p.pos, "expected ']]', got %s", p.current().Type)
}

// splitRRBracket rewrites the current ']]' token into the single ']' that
// remains after consuming its first half. Cached rule results may span the
// reshaped token, so the memo table is dropped.
func (p *Parser) splitRRBracket() {
	tok := p.tokens[p.pos]
	p.tokens[p.pos] = lexer.Token{Type: lexer.RBRACKET, Literal: "]", Line: tok.Line, Column: tok.Column + 1}
	p.memo = make(map[memoKey]memoEntry)
}
