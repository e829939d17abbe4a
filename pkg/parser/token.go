package parser

import "github.com/sqlshift/sqlshift/pkg/token"

// TokenType is an alias for token.TokenType.
type TokenType = token.TokenType

// Token is an alias for token.Token.
type Token = token.Token

// Position is an alias for token.Position.
type Position = token.Position
