package parser

import (
	"strings"
	"unicode"

	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/token"
)

// Lexer tokenizes SQL input for one source dialect. The dialect determines
// which placeholder glyph (":name", "?" or "$N") is scanned as a parameter
// marker; everything else is dialect-independent.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	dialect *dialect.Dialect
}

// NewLexer creates a new Lexer for the given input and source dialect.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		dialect: d,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	var tok Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '%':
		tok = l.newToken(token.PERCENT, "%")
	case '=':
		tok = l.newToken(token.EQ, "=")
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = Token{Type: token.LE, Literal: "<=", Pos: pos}
		case '>':
			l.readChar()
			tok = Token{Type: token.NE, Literal: "<>", Pos: pos}
		default:
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: token.GE, Literal: ">=", Pos: pos}
		} else {
			tok = l.newToken(token.GT, ">")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: token.NE, Literal: "!=", Pos: pos}
		} else {
			tok = l.newToken(token.ILLEGAL, "!")
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = Token{Type: token.DPIPE, Literal: "||", Pos: pos}
		} else {
			tok = l.newToken(token.ILLEGAL, "|")
		}
	case '.':
		tok = l.newToken(token.DOT, ".")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case ';':
		tok = l.newToken(token.SEMICOLON, ";")
	case ':':
		return l.readNamedParam(pos)
	case '?':
		if l.style() != dialect.PlaceholderQuestion {
			tok = l.newToken(token.ILLEGAL, "?")
			break
		}
		tok = l.newToken(token.QUESTIONPARAM, "?")
	case '$':
		return l.readDollarParam(pos)
	case '\'':
		body, terminated := l.readString()
		if !terminated {
			return Token{Type: token.ILLEGAL, Literal: ErrUnterminatedString, Pos: pos}
		}
		return Token{Type: token.STRING, Literal: body, Pos: pos}
	case '"':
		// Quoted identifier (ANSI style)
		return Token{Type: token.IDENT, Literal: l.readQuotedIdentifier(), Pos: pos}
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			literal := l.readIdentifier()
			return Token{
				Type:    token.LookupIdent(strings.ToLower(literal)),
				Literal: literal,
				Pos:     pos,
			}
		case isDigit(l.ch):
			return Token{Type: token.NUMBER, Literal: l.readNumber(), Pos: pos}
		default:
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// style returns the source dialect's placeholder style.
func (l *Lexer) style() dialect.PlaceholderStyle {
	return l.dialect.Placeholder
}

// readNamedParam scans ":name". The colon glyph only acts as a placeholder
// marker for colon-named dialects.
func (l *Lexer) readNamedParam(pos Position) Token {
	next := l.peekChar()
	if l.style() != dialect.PlaceholderColonNamed || !(isLetter(next) || next == '_') {
		l.readChar()
		return Token{Type: token.ILLEGAL, Literal: ":", Pos: pos}
	}
	l.readChar() // skip ':'
	return Token{Type: token.NAMEDPARAM, Literal: l.readIdentifier(), Pos: pos}
}

// readDollarParam scans "$N" for dollar-numbered dialects.
func (l *Lexer) readDollarParam(pos Position) Token {
	if l.style() != dialect.PlaceholderDollar || !isDigit(l.peekChar()) {
		l.readChar()
		return Token{Type: token.ILLEGAL, Literal: "$", Pos: pos}
	}
	l.readChar() // skip '$'
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return Token{Type: token.DOLLARPARAM, Literal: l.input[start:l.pos], Pos: pos}
}

// newToken creates a new token.
func (l *Lexer) newToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal, Pos: l.currentPos()}
}

// skipWhitespaceAndComments skips whitespace, line comments (-- ...) and
// block comments (/* ... */).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}

		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar() // skip '/'
			l.readChar() // skip '*'
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // skip '*'
					l.readChar() // skip '/'
					break
				}
				l.readChar()
			}
			continue
		}

		break
	}
}

// readString reads a single-quoted string literal.
// Handles doubled single quotes as escape: 'it''s' -> it's.
// Returns false if the input ends before the closing quote.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for l.ch != 0 {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				result.WriteByte('\'')
				l.readChar() // skip first quote
				l.readChar() // skip second quote
			} else {
				l.readChar() // skip closing quote
				return result.String(), true
			}
		} else {
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
	return result.String(), false
}

// readQuotedIdentifier reads a double-quoted identifier.
// Handles doubled double quotes as escape: "col""name" -> col"name.
func (l *Lexer) readQuotedIdentifier() string {
	l.readChar() // skip opening quote

	var result strings.Builder
	for l.ch != 0 {
		if l.ch == '"' {
			if l.peekChar() == '"' {
				result.WriteByte('"')
				l.readChar() // skip first quote
				l.readChar() // skip second quote
			} else {
				l.readChar() // skip closing quote
				break
			}
		} else {
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
	return result.String()
}

// readIdentifier reads an unquoted identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.readChar() // skip 'e' or 'E'
		if l.ch == '+' || l.ch == '-' {
			l.readChar() // skip sign
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
