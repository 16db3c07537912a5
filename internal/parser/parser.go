package parser

import (
	"github.com/wexlang/wex/internal/ast"
	"github.com/wexlang/wex/internal/diagnostic"
	"github.com/wexlang/wex/internal/lexer"
)

// Parse runs the grammar engine against a complete input. The entire input
// must be consumed; trailing non-whitespace is a failure, not a truncated
// success. On failure the returned diagnostic carries the line/column of
// the furthest failure point; a failing parse never returns a partial tree.
func Parse(source, label string) (ast.Expr, *diagnostic.Diagnostic) {
	p := New(source)
	expr, err := p.parseExpression()
	if err == nil && !p.check(lexer.EOF) {
		tok := p.current()
		if tok.Type == lexer.ILLEGAL {
			err = p.failf(p.pos, "%s", tok.Literal)
		} else {
			err = p.failf(p.pos, "unexpected %s after expression", tok.Type)
		}
	}
	if err != nil {
		tok := p.token(p.furthest)
		return nil, diagnostic.New(label, p.furthestMsg, tok.Line, tok.Column, source)
	}
	return expr, nil
}

// Expression parsing - precedence levels, loosest binding first:
//
//	1. ;;              (span; start/stop/step slots may be omitted)
//	2. ||              (left-associative)
//	3. &&              (left-associative)
//	4. ! (prefix)
//	5. == !=           (left-associative)
//	6. < >             (left-associative)
//	7. + -             (left-associative)
//	8. * / juxtaposition (left-associative)
//	9. ^               (right-associative)
//	10. - (prefix)
//	11. postfix [[...]] and [...]
//	12. atoms: (e), {...}, number, string, symbol
//
// Each left-associative level is an iterative fold over one tighter-level
// operand and repeated (operator, operand) pairs, which sidesteps the left
// recursion the self-referential grammar would otherwise cause. Rule
// results are memoized per (rule, position) so backtracking replays cached
// outcomes.

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseSpan()
}

// parseSpan recognizes the ;; range shapes: i;;j, i;;, ;;j, ;;, and the
// three-argument forms i;;j;;k, i;;;;k, ;;j;;k, ;;;;k. A missing start
// defaults to 1, a missing stop to All; the step is present only as a
// third argument.
func (p *Parser) parseSpan() (ast.Expr, error) {
	return p.memoized(ruleSpan, func() (ast.Expr, error) {
		var start ast.Expr
		if !p.check(lexer.SEMISEMI) {
			expr, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if !p.check(lexer.SEMISEMI) {
				return expr, nil
			}
			start = expr
		}
		p.advance() // ';;'
		if start == nil {
			start = &ast.Number{Text: "1"}
		}
		stop, ok := p.attempt(p.parseOr)
		if !ok {
			stop = ast.NewForm(ast.OpAll)
		}
		if p.check(lexer.SEMISEMI) {
			p.advance()
			step, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			return ast.NewForm(ast.OpSpan, start, stop, step), nil
		}
		return ast.NewForm(ast.OpSpan, start, stop), nil
	})
}

func (p *Parser) parseOr() (ast.Expr, error) {
	return p.memoized(ruleOr, func() (ast.Expr, error) {
		left, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		for p.check(lexer.OROR) {
			p.advance()
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = ast.NewForm(ast.OpOr, left, right)
		}
		return left, nil
	})
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	return p.memoized(ruleAnd, func() (ast.Expr, error) {
		left, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		for p.check(lexer.ANDAND) {
			p.advance()
			right, err := p.parseNot()
			if err != nil {
				return nil, err
			}
			left = ast.NewForm(ast.OpAnd, left, right)
		}
		return left, nil
	})
}

// parseNot handles prefix '!', which binds looser than comparisons:
// !a == b is Not[Equal[a, b]]
func (p *Parser) parseNot() (ast.Expr, error) {
	return p.memoized(ruleNot, func() (ast.Expr, error) {
		if p.check(lexer.BANG) {
			p.advance()
			operand, err := p.parseNot()
			if err != nil {
				return nil, err
			}
			return ast.NewForm(ast.OpNot, operand), nil
		}
		return p.parseEquality()
	})
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.memoized(ruleEquality, func() (ast.Expr, error) {
		left, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		for {
			var op ast.Op
			switch {
			case p.check(lexer.EQ):
				op = ast.OpEqual
			case p.check(lexer.NEQ):
				op = ast.OpUnequal
			default:
				return left, nil
			}
			p.advance()
			right, err := p.parseRelational()
			if err != nil {
				return nil, err
			}
			left = ast.NewForm(op, left, right)
		}
	})
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	return p.memoized(ruleRelational, func() (ast.Expr, error) {
		left, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		for {
			var op ast.Op
			switch {
			case p.check(lexer.LT):
				op = ast.OpLess
			case p.check(lexer.GT):
				op = ast.OpGreater
			default:
				return left, nil
			}
			p.advance()
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = ast.NewForm(op, left, right)
		}
	})
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.memoized(ruleAdditive, func() (ast.Expr, error) {
		left, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		for {
			var op ast.Op
			switch {
			case p.check(lexer.PLUS):
				op = ast.OpPlus
			case p.check(lexer.MINUS):
				op = ast.OpSubtract
			default:
				return left, nil
			}
			p.advance()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = ast.NewForm(op, left, right)
		}
	})
}

// parseProduct handles '*', '/', and juxtaposition: two adjacent
// tighter-level operands with no operator between them multiply, so "2x"
// and "(a+b)(c+d)" are Times. Juxtaposition fires only when the next token
// can begin an operand; it never swallows ']', '}', ')', ',', or an
// operator belonging to an outer level.
func (p *Parser) parseProduct() (ast.Expr, error) {
	return p.memoized(ruleProduct, func() (ast.Expr, error) {
		left, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		for {
			var op ast.Op
			switch {
			case p.check(lexer.STAR):
				op = ast.OpTimes
				p.advance()
			case p.check(lexer.SLASH):
				op = ast.OpDivide
				p.advance()
			case p.startsOperand():
				op = ast.OpTimes
			default:
				return left, nil
			}
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = ast.NewForm(op, left, right)
		}
	})
}

// startsOperand reports whether the current token can begin a
// multiplication operand
func (p *Parser) startsOperand() bool {
	switch p.current().Type {
	case lexer.IDENT, lexer.NUMBER, lexer.STRING, lexer.LPAREN, lexer.LBRACE:
		return true
	}
	return false
}

// parseUnary handles prefix '-'. A minus directly before a number literal
// folds into a signed Number node ("-5" is one literal); the folding wins
// over the negation rule, so -3^4 is Power[-3, 4]. Any other operand
// becomes Times[-1, operand]. The non-literal negation binds looser than
// '^' and indexing: -a^b is Times[-1, Power[a, b]].
func (p *Parser) parseUnary() (ast.Expr, error) {
	return p.memoized(ruleUnary, func() (ast.Expr, error) {
		if p.check(lexer.MINUS) {
			p.advance()
			if p.check(lexer.NUMBER) {
				tok := p.advance()
				base, err := p.parsePostfixFrom(&ast.Number{Text: "-" + tok.Literal})
				if err != nil {
					return nil, err
				}
				return p.parsePowerFrom(base)
			}
			operand, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return ast.NewForm(ast.OpTimes, &ast.Number{Text: "-1"}, operand), nil
		}
		return p.parsePower()
	})
}

func (p *Parser) parsePower() (ast.Expr, error) {
	return p.memoized(rulePower, func() (ast.Expr, error) {
		base, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		return p.parsePowerFrom(base)
	})
}

// parsePowerFrom parses an optional exponent onto base. '^' is
// right-associative and its exponent admits a prefix minus, so 2^3^4 nests
// to the right and 2^-3 parses.
func (p *Parser) parsePowerFrom(base ast.Expr) (ast.Expr, error) {
	if !p.check(lexer.CARET) {
		return base, nil
	}
	p.advance()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewForm(ast.OpPower, base, exp), nil
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return p.parsePostfixFrom(atom)
}

// parsePostfixFrom folds postfix operators onto expr, left to right:
// [[i, j]] indexing produces Part with the indexed expression as first
// argument, and [args...] produces an application with expr as head,
// which admits curried heads like f[x][y].
func (p *Parser) parsePostfixFrom(expr ast.Expr) (ast.Expr, error) {
	for {
		switch {
		case p.check(lexer.LLBRACKET):
			p.advance()
			args, err := p.parseExprList(lexer.RRBRACKET)
			if err != nil {
				return nil, err
			}
			if err := p.expectPartClose(); err != nil {
				return nil, err
			}
			expr = ast.NewForm(ast.OpPart, append([]ast.Expr{expr}, args...)...)
		case p.check(lexer.LBRACKET):
			p.advance()
			args, err := p.parseExprList(lexer.RBRACKET)
			if err != nil {
				return nil, err
			}
			if err := p.expectBracketClose(); err != nil {
				return nil, err
			}
			expr = &ast.Apply{Head: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

// parseExprList parses zero or more comma-separated expressions up to (but
// not consuming) the closing bracket
func (p *Parser) parseExprList(closer lexer.TokenType) ([]ast.Expr, error) {
	var args []ast.Expr
	if p.atListEnd(closer) {
		return args, nil
	}
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
		if !p.match(lexer.COMMA) {
			return args, nil
		}
	}
}

// atListEnd reports whether the current token closes an argument list.
// Either bracket closer may arrive as its double-width sibling when the
// scanner matched greedily; the close helpers sort that out.
func (p *Parser) atListEnd(closer lexer.TokenType) bool {
	t := p.current().Type
	if t == closer {
		return true
	}
	return (closer == lexer.RBRACKET && t == lexer.RRBRACKET) ||
		(closer == lexer.RRBRACKET && t == lexer.RBRACKET)
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return &ast.Number{Text: tok.Literal}, nil
	case lexer.STRING:
		p.advance()
		return &ast.String{Value: tok.Literal}, nil
	case lexer.IDENT:
		p.advance()
		switch tok.Literal {
		case "All":
			return ast.NewForm(ast.OpAll), nil
		case "True":
			return ast.NewForm(ast.OpTrue), nil
		case "False":
			return ast.NewForm(ast.OpFalse), nil
		}
		return &ast.Symbol{Name: tok.Literal}, nil
	case lexer.LPAREN:
		// grouping only; no node of its own
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.check(lexer.RPAREN) {
			return nil, p.failf(p.pos, "expected ')', got %s", p.current().Type)
		}
		p.advance()
		return expr, nil
	case lexer.LBRACE:
		p.advance()
		if p.check(lexer.RBRACE) {
			p.advance()
			return ast.NewForm(ast.OpList), nil
		}
		var elems []ast.Expr
		for {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if !p.match(lexer.COMMA) {
				break
			}
		}
		if !p.check(lexer.RBRACE) {
			return nil, p.failf(p.pos, "expected '}', got %s", p.current().Type)
		}
		p.advance()
		return ast.NewForm(ast.OpList, elems...), nil
	case lexer.ILLEGAL:
		return nil, p.failf(p.pos, "%s", tok.Literal)
	case lexer.EOF:
		return nil, p.failf(p.pos, "unexpected end of input in expression")
	}
	return nil, p.failf(p.pos, "unexpected %s in expression", tok.Type)
}
