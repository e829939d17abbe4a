package parser

import (
	"fmt"
	"strings"

	"github.com/sqlshift/sqlshift/pkg/token"
)

// parseStatement dispatches on the leading keyword.
func (p *Parser) parseStatement() Statement {
	switch p.token.Type {
	case token.CREATE:
		return p.parseCreateTable()
	case token.INSERT:
		return p.parseInsert()
	case token.SELECT:
		return p.parseSelect()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	default:
		p.addError(fmt.Sprintf(ErrExpectedStatement, p.token.Type))
		return nil
	}
}

// ---------- CREATE TABLE ----------

// parseCreateTable parses:
//
//	CREATE TABLE [IF NOT EXISTS] name ( column_def ["," column_def]* )
func (p *Parser) parseCreateTable() Statement {
	stmt := &CreateTableStmt{}

	p.expect(token.CREATE)
	p.expect(token.TABLE)

	if p.check(token.IF) {
		p.nextToken()
		p.expect(token.NOT)
		p.expect(token.EXISTS)
		stmt.IfNotExists = true
	}

	stmt.Name = p.expectIdent()
	p.expect(token.LPAREN)

	for {
		col := p.parseColumnDef()
		if col == nil {
			return nil
		}
		stmt.Columns = append(stmt.Columns, col)
		if !p.match(token.COMMA) {
			break
		}
	}

	p.expect(token.RPAREN)
	return stmt
}

// parseColumnDef parses one column definition: name, type, constraints.
func (p *Parser) parseColumnDef() *ColumnDef {
	col := &ColumnDef{Name: p.expectIdent()}

	typeTok := p.token
	raw := p.parseColumnType()
	dt, ok := p.dialect.LookupType(raw)
	if !ok {
		p.errors = append(p.errors, &ParseError{
			Pos:     typeTok.Pos,
			Message: fmt.Sprintf(ErrUnknownType, raw, p.dialect.Name),
		})
		return nil
	}
	col.Type = dt

	for p.parseColumnConstraint(col) {
	}
	return col
}

// parseColumnType consumes a concrete type token, including any
// parenthesized argument list like NVARCHAR(255).
func (p *Parser) parseColumnType() string {
	var sb strings.Builder
	sb.WriteString(p.expectIdent())

	if p.check(token.LPAREN) {
		sb.WriteString(p.token.Literal)
		p.nextToken()
		for !p.check(token.RPAREN) && !p.check(token.EOF) {
			sb.WriteString(p.token.Literal)
			p.nextToken()
		}
		sb.WriteString(")")
		p.expect(token.RPAREN)
	}
	return sb.String()
}

// parseColumnConstraint consumes one constraint if present. Every source
// dialect's auto-increment spelling is accepted; the writer emits the
// target dialect's own keyword.
func (p *Parser) parseColumnConstraint(col *ColumnDef) bool {
	switch p.token.Type {
	case token.PRIMARY:
		p.nextToken()
		p.expect(token.KEY)
		col.PrimaryKey = true
	case token.NOT:
		p.nextToken()
		p.expect(token.NULL)
		col.NotNull = true
	case token.UNIQUE:
		p.nextToken()
		col.Unique = true
	case token.DEFAULT:
		p.nextToken()
		col.Default = p.parsePrefix()
	case token.AUTOINCREMENT, token.AUTO_INCREMENT, token.IDENTITY:
		p.nextToken()
		col.AutoIncrement = true
	case token.GENERATED:
		p.nextToken()
		p.expect(token.ALWAYS)
		p.expect(token.AS)
		p.expect(token.IDENTITY)
		col.AutoIncrement = true
	default:
		return false
	}
	return true
}

// ---------- INSERT ----------

// parseInsert parses:
//
//	INSERT INTO name ( cols ) [OUTPUT items] VALUES row ["," row]* [RETURNING items]
//
// The OUTPUT position matches where tsql places it; RETURNING trails the
// statement as in sqlite and postgres. Both feed the same neutral clause.
func (p *Parser) parseInsert() Statement {
	stmt := &InsertStmt{}

	p.expect(token.INSERT)
	p.expect(token.INTO)
	stmt.Table = p.expectIdent()

	p.expect(token.LPAREN)
	for {
		stmt.Columns = append(stmt.Columns, p.expectIdent())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	output := p.parseOutput()

	p.expect(token.VALUES)
	for {
		stmt.Rows = append(stmt.Rows, p.parseValueRow())
		if !p.match(token.COMMA) {
			break
		}
	}

	stmt.Returning = p.mergeReturning(output, p.parseReturning())
	return stmt
}

// parseValueRow parses one parenthesized VALUES tuple.
func (p *Parser) parseValueRow() []Expr {
	p.expect(token.LPAREN)
	var row []Expr
	for {
		row = append(row, p.parseExpr(precLowest))
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return row
}

// ---------- SELECT ----------

// parseSelect parses:
//
//	SELECT items FROM name [WHERE expr]
func (p *Parser) parseSelect() Statement {
	stmt := &SelectStmt{}

	p.expect(token.SELECT)
	for {
		if p.check(token.STAR) {
			p.nextToken()
			stmt.Items = append(stmt.Items, SelectItem{Star: true})
		} else {
			stmt.Items = append(stmt.Items, SelectItem{Expr: p.parseExpr(precLowest)})
		}
		if !p.match(token.COMMA) {
			break
		}
	}

	p.expect(token.FROM)
	stmt.Table = p.expectIdent()

	if p.match(token.WHERE) {
		stmt.Where = p.parseExpr(precLowest)
	}
	return stmt
}

// ---------- UPDATE ----------

// parseUpdate parses:
//
//	UPDATE name SET assign ["," assign]* [OUTPUT items] [WHERE expr] [RETURNING items]
func (p *Parser) parseUpdate() Statement {
	stmt := &UpdateStmt{}

	p.expect(token.UPDATE)
	stmt.Table = p.expectIdent()
	p.expect(token.SET)

	for {
		a := Assignment{Column: p.expectIdent()}
		p.expect(token.EQ)
		a.Value = p.parseExpr(precLowest)
		stmt.Assignments = append(stmt.Assignments, a)
		if !p.match(token.COMMA) {
			break
		}
	}

	output := p.parseOutput()

	if p.match(token.WHERE) {
		stmt.Where = p.parseExpr(precLowest)
	}

	stmt.Returning = p.mergeReturning(output, p.parseReturning())
	return stmt
}

// ---------- DELETE ----------

// parseDelete parses:
//
//	DELETE FROM name [OUTPUT items] [WHERE expr] [RETURNING items]
func (p *Parser) parseDelete() Statement {
	stmt := &DeleteStmt{}

	p.expect(token.DELETE)
	p.expect(token.FROM)
	stmt.Table = p.expectIdent()

	output := p.parseOutput()

	if p.match(token.WHERE) {
		stmt.Where = p.parseExpr(precLowest)
	}

	stmt.Returning = p.mergeReturning(output, p.parseReturning())
	return stmt
}

// ---------- RETURNING / OUTPUT ----------

// parseReturning parses a trailing RETURNING clause, or returns nil.
func (p *Parser) parseReturning() *ReturningClause {
	if !p.match(token.RETURNING) {
		return nil
	}
	return &ReturningClause{Items: p.parseReturningItems()}
}

// parseOutput parses an OUTPUT clause, or returns nil.
func (p *Parser) parseOutput() *ReturningClause {
	if !p.match(token.OUTPUT) {
		return nil
	}
	return &ReturningClause{Items: p.parseReturningItems()}
}

// mergeReturning folds the OUTPUT and RETURNING forms into one clause.
// A statement carrying both is rejected.
func (p *Parser) mergeReturning(output, returning *ReturningClause) *ReturningClause {
	if output != nil && returning != nil {
		p.addError(ErrDuplicateReturning)
		return nil
	}
	if output != nil {
		return output
	}
	return returning
}

// parseReturningItems parses the column list of a RETURNING or OUTPUT
// clause. The INSERTED and DELETED row qualifiers are pseudo tables, not
// schema names, so they are dropped; any other qualifier is preserved.
func (p *Parser) parseReturningItems() []ReturningItem {
	var items []ReturningItem
	for {
		items = append(items, p.parseReturningItem())
		if !p.match(token.COMMA) {
			break
		}
	}
	return items
}

func (p *Parser) parseReturningItem() ReturningItem {
	if p.match(token.STAR) {
		return ReturningItem{Star: true}
	}

	name := p.expectIdent()
	var item ReturningItem
	if p.match(token.DOT) {
		if !isRowQualifier(name) {
			item.Qualifier = name
		}
		if p.match(token.STAR) {
			item.Star = true
			return item
		}
		item.Column = p.expectIdent()
		return item
	}
	item.Column = name
	return item
}

// isRowQualifier reports whether name is a tsql OUTPUT pseudo table.
func isRowQualifier(name string) bool {
	switch strings.ToUpper(name) {
	case "INSERTED", "DELETED":
		return true
	}
	return false
}
