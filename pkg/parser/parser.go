// Package parser provides SQL parsing for the transpilation subset.
//
// # Usage
//
//	res, err := parser.Parse("SELECT * FROM users WHERE id = :id", src)
//	if err != nil {
//	    // handle error
//	}
//
// The parser requires a source dialect: the dialect decides which
// placeholder style is legal in the input and which concrete column type
// tokens map to abstract types.
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for a subset of SQL:
//
//	statement → create_table | insert | select | update | delete
//	create_table → CREATE TABLE [IF NOT EXISTS] name ( column_def ["," column_def]* )
//	insert       → INSERT INTO name ( cols ) [output] VALUES row ["," row]* [returning]
//	select       → SELECT items FROM name [WHERE expr]
//	update       → UPDATE name SET assign ["," assign]* [output] [WHERE expr] [returning]
//	delete       → DELETE FROM name [output] [WHERE expr] [returning]
//
// RETURNING and OUTPUT clauses both parse into the neutral ReturningClause;
// INSERTED/DELETED row qualifiers are stripped during parsing.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/token"
)

// Result is the outcome of parsing one statement: the dialect-neutral AST
// plus the placeholder inventory in textual occurrence order. Slots is the
// number of canonical parameter slots the statement binds.
type Result struct {
	Stmt         Statement
	Placeholders []*Placeholder
	Slots        int
}

// Parser parses SQL into a dialect-neutral AST.
type Parser struct {
	lexer   *Lexer
	token   Token // current token
	peek    Token // lookahead token
	errors  []error
	dialect *dialect.Dialect

	placeholders []*Placeholder
	namedSlots   map[string]int
	slots        int
}

// NewParser creates a new parser for the given SQL input and source dialect.
func NewParser(sql string, d *dialect.Dialect) *Parser {
	p := &Parser{
		lexer:      NewLexer(sql, d),
		dialect:    d,
		namedSlots: make(map[string]int),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a single SQL statement in the given source dialect.
func Parse(sql string, d *dialect.Dialect) (*Result, error) {
	p := NewParser(sql, d)
	stmt := p.parseStatement()
	p.match(token.SEMICOLON)
	if stmt != nil && !p.check(token.EOF) && len(p.errors) == 0 {
		p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, token.EOF))
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return &Result{
		Stmt:         stmt,
		Placeholders: p.placeholders,
		Slots:        p.slots,
	}, nil
}

// Dialect returns the parser's source dialect.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
	if p.peek.Type == token.ILLEGAL {
		p.addLexError(p.peek)
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, t))
	return false
}

// expectIdent consumes the current token as an identifier and returns its
// literal. Unreserved keywords are accepted as identifiers.
func (p *Parser) expectIdent() string {
	if p.check(token.IDENT) || token.IsKeyword(p.token.Type) {
		lit := p.token.Literal
		p.nextToken()
		return lit
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, token.IDENT))
	return ""
}

// addError adds a parse error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}

// addLexError records a scan failure surfaced as an ILLEGAL token.
func (p *Parser) addLexError(tok Token) {
	msg := tok.Literal
	if msg != ErrUnterminatedString {
		msg = fmt.Sprintf(ErrIllegalCharacter, tok.Literal)
	}
	p.errors = append(p.errors, &LexError{
		Pos:     tok.Pos,
		Message: msg,
	})
}

// ---------- Placeholder Tracking ----------

// newPlaceholder records one placeholder occurrence and assigns its
// canonical slot. Named placeholders dedupe by identifier; positional and
// numbered markers each claim a fresh slot per occurrence.
func (p *Parser) newPlaceholder(tok Token) *Placeholder {
	var ph *Placeholder
	switch tok.Type {
	case token.NAMEDPARAM:
		name := strings.ToLower(tok.Literal)
		slot, seen := p.namedSlots[name]
		if !seen {
			slot = p.slots
			p.slots++
			p.namedSlots[name] = slot
		}
		ph = &Placeholder{Name: name, Slot: slot}
	case token.QUESTIONPARAM:
		ph = &Placeholder{Slot: p.slots}
		p.slots++
	case token.DOLLARPARAM:
		n, err := strconv.Atoi(tok.Literal)
		if err != nil || n < 1 {
			p.addError(fmt.Sprintf(ErrBadParamNumber, tok.Literal))
			n = 1
		}
		ph = &Placeholder{Number: n, Slot: p.slots}
		p.slots++
	}
	p.placeholders = append(p.placeholders, ph)
	return ph
}
