package parser

import (
	"fmt"

	"github.com/sqlshift/sqlshift/pkg/token"
)

// Expression precedence parsing using a Pratt parser.
//
// Precedence levels:
//
//	precLowest     = 0
//	precOr         = 1
//	precAnd        = 2
//	precNot        = 3
//	precComparison = 4  (=, !=, <, >, <=, >=, IS, IN, BETWEEN, LIKE)
//	precAddition   = 5  (+, -, ||)
//	precMultiply   = 6  (*, /, %)
//	precUnary      = 7  (-, +)
const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precComparison
	precAddition
	precMultiply
	precUnary
)

// parseExpr implements Pratt parsing with precedence climbing.
func (p *Parser) parseExpr(minPrec int) Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		prec := infixPrecedence(p.token.Type, p.peek.Type)
		if prec <= minPrec {
			break
		}
		left = p.parseInfix(left)
		if left == nil {
			break
		}
	}
	return left
}

// parsePrefix parses unary operators and primary expressions.
func (p *Parser) parsePrefix() Expr {
	switch p.token.Type {
	case token.NOT:
		p.nextToken()
		return &UnaryExpr{Op: token.NOT, Expr: p.parseExpr(precNot)}
	case token.MINUS:
		p.nextToken()
		return &UnaryExpr{Op: token.MINUS, Expr: p.parseExpr(precUnary)}
	case token.PLUS:
		p.nextToken()
		return &UnaryExpr{Op: token.PLUS, Expr: p.parseExpr(precUnary)}
	default:
		return p.parsePrimary()
	}
}

// infixPrecedence returns the binding power of tok as an infix operator.
// A NOT token only binds as infix when it introduces NOT BETWEEN, NOT IN
// or NOT LIKE, which needs the lookahead token to decide.
func infixPrecedence(tok, peek TokenType) int {
	switch tok {
	case token.OR:
		return precOr
	case token.AND:
		return precAnd
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.IS, token.IN, token.BETWEEN, token.LIKE:
		return precComparison
	case token.NOT:
		switch peek {
		case token.BETWEEN, token.IN, token.LIKE:
			return precComparison
		}
		return precLowest
	case token.PLUS, token.MINUS, token.DPIPE:
		return precAddition
	case token.STAR, token.SLASH, token.PERCENT:
		return precMultiply
	}
	return precLowest
}

// parseInfix parses one infix construct with left as its subject.
func (p *Parser) parseInfix(left Expr) Expr {
	switch p.token.Type {
	case token.IS:
		return p.parseIsNull(left)
	case token.BETWEEN:
		return p.parseBetween(left, false)
	case token.IN:
		return p.parseIn(left, false)
	case token.LIKE:
		return p.parseLike(left, false)
	case token.NOT:
		p.nextToken()
		switch p.token.Type {
		case token.BETWEEN:
			return p.parseBetween(left, true)
		case token.IN:
			return p.parseIn(left, true)
		case token.LIKE:
			return p.parseLike(left, true)
		}
		p.addError(fmt.Sprintf(ErrUnexpectedExpr, p.token.Type))
		return nil
	}

	op := p.token.Type
	prec := infixPrecedence(op, p.peek.Type)
	p.nextToken()
	return &BinaryExpr{Op: op, Left: left, Right: p.parseExpr(prec)}
}

// parseIsNull parses IS [NOT] NULL.
func (p *Parser) parseIsNull(left Expr) Expr {
	p.expect(token.IS)
	not := p.match(token.NOT)
	p.expect(token.NULL)
	return &IsNullExpr{Expr: left, Not: not}
}

// parseBetween parses BETWEEN lower AND upper. The bounds are parsed above
// AND precedence so the range connective is not swallowed as a conjunction.
func (p *Parser) parseBetween(left Expr, not bool) Expr {
	p.expect(token.BETWEEN)
	lower := p.parseExpr(precComparison)
	p.expect(token.AND)
	upper := p.parseExpr(precComparison)
	return &BetweenExpr{Expr: left, Not: not, Lower: lower, Upper: upper}
}

// parseIn parses IN ( expr ["," expr]* ).
func (p *Parser) parseIn(left Expr, not bool) Expr {
	p.expect(token.IN)
	p.expect(token.LPAREN)
	var list []Expr
	for {
		list = append(list, p.parseExpr(precLowest))
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return &InExpr{Expr: left, Not: not, List: list}
}

// parseLike parses LIKE pattern.
func (p *Parser) parseLike(left Expr, not bool) Expr {
	p.expect(token.LIKE)
	return &LikeExpr{Expr: left, Not: not, Pattern: p.parseExpr(precComparison)}
}

// parsePrimary parses literals, placeholders, column references and
// parenthesized expressions.
func (p *Parser) parsePrimary() Expr {
	tok := p.token
	switch tok.Type {
	case token.NUMBER:
		p.nextToken()
		return &Literal{Kind: LiteralNumber, Text: tok.Literal}
	case token.STRING:
		p.nextToken()
		return &Literal{Kind: LiteralString, Text: tok.Literal}
	case token.TRUE:
		p.nextToken()
		return &Literal{Kind: LiteralBool, Text: "TRUE"}
	case token.FALSE:
		p.nextToken()
		return &Literal{Kind: LiteralBool, Text: "FALSE"}
	case token.NULL:
		p.nextToken()
		return &Literal{Kind: LiteralNull, Text: "NULL"}
	case token.NAMEDPARAM, token.QUESTIONPARAM, token.DOLLARPARAM:
		p.nextToken()
		return p.newPlaceholder(tok)
	case token.IDENT:
		p.nextToken()
		ref := &ColumnRef{Name: tok.Literal}
		if p.match(token.DOT) {
			ref.Table = ref.Name
			ref.Name = p.expectIdent()
		}
		return ref
	case token.LPAREN:
		p.nextToken()
		inner := p.parseExpr(precLowest)
		p.expect(token.RPAREN)
		return &ParenExpr{Expr: inner}
	default:
		p.addError(fmt.Sprintf(ErrUnexpectedExpr, tok.Type))
		p.nextToken()
		return nil
	}
}
