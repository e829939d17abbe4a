package parser

import "fmt"

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("scan error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrUnexpectedExpr     = "unexpected token %s in expression"
	ErrUnterminatedString = "unterminated string literal"
	ErrIllegalCharacter   = "illegal character %q"
	ErrUnknownType        = "unknown column type %s in %s dialect"
	ErrBadParamNumber     = "numbered placeholder $%s must start at $1"
	ErrDuplicateReturning = "statement has both OUTPUT and RETURNING clauses"
	ErrExpectedStatement  = "expected CREATE, INSERT, SELECT, UPDATE or DELETE, found %s"
)
