package parser

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/token"
)

// Statement represents a dialect-neutral SQL statement.
type Statement interface {
	stmtNode()
}

// Expr represents an expression in a WHERE clause, VALUES row, or DEFAULT.
type Expr interface {
	exprNode()
}

// ---------- Statement Types ----------

// CreateTableStmt represents a CREATE TABLE statement. Column order is
// significant and preserved.
type CreateTableStmt struct {
	Name        string
	IfNotExists bool
	Columns     []*ColumnDef
}

func (*CreateTableStmt) stmtNode() {}

// ColumnDef represents one column definition with its constraints.
// The column type is stored abstractly; concrete type tokens are applied
// when rendering for a target dialect.
type ColumnDef struct {
	Name          string
	Type          dialect.DataType
	PrimaryKey    bool
	NotNull       bool
	Unique        bool
	AutoIncrement bool
	Default       Expr
}

// InsertStmt represents an INSERT statement with one or more VALUES rows.
type InsertStmt struct {
	Table     string
	Columns   []string
	Rows      [][]Expr
	Returning *ReturningClause
}

func (*InsertStmt) stmtNode() {}

// SelectStmt represents a basic single-table SELECT.
type SelectStmt struct {
	Items []SelectItem
	Table string
	Where Expr
}

func (*SelectStmt) stmtNode() {}

// SelectItem is one projection entry: a bare star or an expression.
type SelectItem struct {
	Star bool
	Expr Expr
}

// UpdateStmt represents an UPDATE statement.
type UpdateStmt struct {
	Table       string
	Assignments []Assignment
	Where       Expr
	Returning   *ReturningClause
}

func (*UpdateStmt) stmtNode() {}

// Assignment is one SET entry: column = expr.
type Assignment struct {
	Column string
	Value  Expr
}

// DeleteStmt represents a DELETE statement.
type DeleteStmt struct {
	Table     string
	Where     Expr
	Returning *ReturningClause
}

func (*DeleteStmt) stmtNode() {}

// ReturningClause is the neutral form of "give back columns from the
// affected rows". RETURNING (sqlite, postgres) and OUTPUT (tsql) both parse
// into it; INSERTED/DELETED qualifiers are stripped on parse.
//
// Virtual is empty after parsing. The clause mapper sets it to "INSERTED"
// or "DELETED" when the target dialect renders the clause as OUTPUT.
type ReturningClause struct {
	Items   []ReturningItem
	Virtual string
}

// ReturningItem is one returned column, or a star, optionally qualified by
// a real table name.
type ReturningItem struct {
	Star      bool
	Qualifier string
	Column    string
}

// ---------- Expression Types ----------

// ColumnRef is a possibly qualified column reference.
type ColumnRef struct {
	Table string
	Name  string
}

func (*ColumnRef) exprNode() {}

// LiteralKind classifies a literal value.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBool
	LiteralNull
)

// Literal is a literal value. Text holds the raw value: the digits of a
// number, the unquoted body of a string, or TRUE/FALSE/NULL.
type Literal struct {
	Kind LiteralKind
	Text string
}

func (*Literal) exprNode() {}

// Placeholder is a parameter marker. Slot is the canonical zero-based index
// assigned in textual occurrence order; named placeholders share a slot
// across repeated references to the same identifier. Number carries the
// declared number of a $N placeholder (1-based), zero otherwise.
type Placeholder struct {
	Name   string
	Number int
	Slot   int
}

func (*Placeholder) exprNode() {}

// BinaryExpr is a binary operation (comparison, arithmetic, AND/OR).
type BinaryExpr struct {
	Op    token.TokenType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is a prefix operation (NOT, unary minus/plus).
type UnaryExpr struct {
	Op   token.TokenType
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// BetweenExpr is subject [NOT] BETWEEN lower AND upper.
type BetweenExpr struct {
	Expr  Expr
	Not   bool
	Lower Expr
	Upper Expr
}

func (*BetweenExpr) exprNode() {}

// InExpr is subject [NOT] IN (list).
type InExpr struct {
	Expr Expr
	Not  bool
	List []Expr
}

func (*InExpr) exprNode() {}

// LikeExpr is subject [NOT] LIKE pattern.
type LikeExpr struct {
	Expr    Expr
	Not     bool
	Pattern Expr
}

func (*LikeExpr) exprNode() {}

// IsNullExpr is subject IS [NOT] NULL.
type IsNullExpr struct {
	Expr Expr
	Not  bool
}

func (*IsNullExpr) exprNode() {}

// ParenExpr preserves explicit grouping parentheses.
type ParenExpr struct {
	Expr Expr
}

func (*ParenExpr) exprNode() {}
