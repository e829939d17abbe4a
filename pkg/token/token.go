// Package token defines the lexical token types for SQL transpilation.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Placeholders (dialect binding markers)
	NAMEDPARAM    // :name
	QUESTIONPARAM // ?
	DOLLARPARAM   // $1, $2, ...

	// Operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	DPIPE     // ||
	EQ        // =
	NE        // != or <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DOT       // .
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;

	// Keywords (alphabetical)
	ALWAYS
	AND
	AS
	AUTOINCREMENT
	AUTO_INCREMENT //nolint:revive // Matches the MySQL keyword spelling
	BETWEEN
	CREATE
	DEFAULT
	DELETE
	EXISTS
	FALSE
	FROM
	GENERATED
	IDENTITY
	IF
	IN
	INSERT
	INTO
	IS
	KEY
	LIKE
	NOT
	NULL
	OR
	OUTPUT
	PRIMARY
	RETURNING
	SELECT
	SET
	TABLE
	TRUE
	UNIQUE
	UPDATE
	VALUES
	WHERE
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	NAMEDPARAM:    "NAMEDPARAM",
	QUESTIONPARAM: "?",
	DOLLARPARAM:   "DOLLARPARAM",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	DPIPE:     "||",
	EQ:        "=",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DOT:       ".",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	SEMICOLON: ";",

	ALWAYS:         "ALWAYS",
	AND:            "AND",
	AS:             "AS",
	AUTOINCREMENT:  "AUTOINCREMENT",
	AUTO_INCREMENT: "AUTO_INCREMENT",
	BETWEEN:        "BETWEEN",
	CREATE:         "CREATE",
	DEFAULT:        "DEFAULT",
	DELETE:         "DELETE",
	EXISTS:         "EXISTS",
	FALSE:          "FALSE",
	FROM:           "FROM",
	GENERATED:      "GENERATED",
	IDENTITY:       "IDENTITY",
	IF:             "IF",
	IN:             "IN",
	INSERT:         "INSERT",
	INTO:           "INTO",
	IS:             "IS",
	KEY:            "KEY",
	LIKE:           "LIKE",
	NOT:            "NOT",
	NULL:           "NULL",
	OR:             "OR",
	OUTPUT:         "OUTPUT",
	PRIMARY:        "PRIMARY",
	RETURNING:      "RETURNING",
	SELECT:         "SELECT",
	SET:            "SET",
	TABLE:          "TABLE",
	TRUE:           "TRUE",
	UNIQUE:         "UNIQUE",
	UPDATE:         "UPDATE",
	VALUES:         "VALUES",
	WHERE:          "WHERE",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{
	"always":         ALWAYS,
	"and":            AND,
	"as":             AS,
	"autoincrement":  AUTOINCREMENT,
	"auto_increment": AUTO_INCREMENT,
	"between":        BETWEEN,
	"create":         CREATE,
	"default":        DEFAULT,
	"delete":         DELETE,
	"exists":         EXISTS,
	"false":          FALSE,
	"from":           FROM,
	"generated":      GENERATED,
	"identity":       IDENTITY,
	"if":             IF,
	"in":             IN,
	"insert":         INSERT,
	"into":           INTO,
	"is":             IS,
	"key":            KEY,
	"like":           LIKE,
	"not":            NOT,
	"null":           NULL,
	"or":             OR,
	"output":         OUTPUT,
	"primary":        PRIMARY,
	"returning":      RETURNING,
	"select":         SELECT,
	"set":            SET,
	"table":          TABLE,
	"true":           TRUE,
	"unique":         UNIQUE,
	"update":         UPDATE,
	"values":         VALUES,
	"where":          WHERE,
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a keyword, the keyword token type is returned.
// Otherwise, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= ALWAYS && t <= WHERE
}

// IsPlaceholder returns true if the token type is a parameter placeholder.
func IsPlaceholder(t TokenType) bool {
	return t == NAMEDPARAM || t == QUESTIONPARAM || t == DOLLARPARAM
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
