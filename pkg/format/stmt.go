package format

import (
	"github.com/sqlshift/sqlshift/pkg/parser"
	"github.com/sqlshift/sqlshift/pkg/token"
)

func (p *Printer) formatStatement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.CreateTableStmt:
		p.formatCreateTable(s)
	case *parser.InsertStmt:
		p.formatInsert(s)
	case *parser.SelectStmt:
		p.formatSelect(s)
	case *parser.UpdateStmt:
		p.formatUpdate(s)
	case *parser.DeleteStmt:
		p.formatDelete(s)
	}
}

// newline breaks the line unless the output is already at a line start.
// Clause formatters call it at their head so optional clauses never stack
// blank lines.
func (p *Printer) newline() {
	if !p.atLineStart {
		p.writeln()
	}
}

// formatCreateTable emits:
//
//	CREATE TABLE name (
//	  col TYPE constraints,
//	  ...
//	)
func (p *Printer) formatCreateTable(stmt *parser.CreateTableStmt) {
	p.kw(token.CREATE, token.TABLE)
	p.space()
	if stmt.IfNotExists {
		p.kw(token.IF, token.NOT, token.EXISTS)
		p.space()
	}
	p.write(stmt.Name)
	p.write(" (")
	p.writeln()

	p.indent()
	p.formatList(len(stmt.Columns), func(i int) {
		p.formatColumnDef(stmt.Columns[i])
	}, ",", true)
	p.writeln()
	p.dedent()
	p.write(")")
}

func (p *Printer) formatColumnDef(col *parser.ColumnDef) {
	p.write(col.Name)
	p.space()
	p.write(p.dialect.TypeName(col.Type))
	if col.PrimaryKey {
		p.space()
		p.kw(token.PRIMARY, token.KEY)
	}
	if col.AutoIncrement {
		p.space()
		p.write(p.dialect.AutoIncrement())
	}
	if col.NotNull {
		p.space()
		p.kw(token.NOT, token.NULL)
	}
	if col.Unique {
		p.space()
		p.kw(token.UNIQUE)
	}
	if col.Default != nil {
		p.space()
		p.kw(token.DEFAULT)
		p.space()
		p.formatExpr(col.Default)
	}
}

// formatInsert emits:
//
//	INSERT INTO name (
//	  col,
//	  ...
//	)
//	[OUTPUT items]
//	VALUES
//	  (expr, ...),
//	  ...
//	[RETURNING items]
func (p *Printer) formatInsert(stmt *parser.InsertStmt) {
	p.kw(token.INSERT, token.INTO)
	p.space()
	p.write(stmt.Table)
	p.write(" (")
	p.writeln()

	p.indent()
	p.formatList(len(stmt.Columns), func(i int) {
		p.write(stmt.Columns[i])
	}, ",", true)
	p.writeln()
	p.dedent()
	p.write(")")

	p.formatOutputClause(stmt.Returning)

	p.newline()
	p.kw(token.VALUES)
	p.writeln()
	p.indent()
	p.formatList(len(stmt.Rows), func(i int) {
		p.write("(")
		p.formatList(len(stmt.Rows[i]), func(j int) {
			p.formatExpr(stmt.Rows[i][j])
		}, ", ", false)
		p.write(")")
	}, ",", true)
	p.dedent()

	p.formatReturningClause(stmt.Returning)
}

// formatSelect emits:
//
//	SELECT
//	  item,
//	  ...
//	FROM name
//	[WHERE
//	  expr]
func (p *Printer) formatSelect(stmt *parser.SelectStmt) {
	p.kw(token.SELECT)
	p.writeln()
	p.indent()
	p.formatList(len(stmt.Items), func(i int) {
		if stmt.Items[i].Star {
			p.write("*")
		} else {
			p.formatExpr(stmt.Items[i].Expr)
		}
	}, ",", true)
	p.writeln()
	p.dedent()

	p.kw(token.FROM)
	p.space()
	p.write(stmt.Table)

	p.formatWhere(stmt.Where)
}

// formatUpdate emits:
//
//	UPDATE name
//	SET
//	  col = expr,
//	  ...
//	[OUTPUT items]
//	[WHERE
//	  expr]
//	[RETURNING items]
func (p *Printer) formatUpdate(stmt *parser.UpdateStmt) {
	p.kw(token.UPDATE)
	p.space()
	p.write(stmt.Table)
	p.writeln()

	p.kw(token.SET)
	p.writeln()
	p.indent()
	p.formatList(len(stmt.Assignments), func(i int) {
		a := stmt.Assignments[i]
		p.write(a.Column)
		p.write(" = ")
		p.formatExpr(a.Value)
	}, ",", true)
	p.dedent()

	p.formatOutputClause(stmt.Returning)
	p.formatWhere(stmt.Where)
	p.formatReturningClause(stmt.Returning)
}

// formatDelete emits:
//
//	DELETE FROM name
//	[OUTPUT items]
//	[WHERE
//	  expr]
//	[RETURNING items]
func (p *Printer) formatDelete(stmt *parser.DeleteStmt) {
	p.kw(token.DELETE, token.FROM)
	p.space()
	p.write(stmt.Table)

	p.formatOutputClause(stmt.Returning)
	p.formatWhere(stmt.Where)
	p.formatReturningClause(stmt.Returning)
}

// formatWhere emits the WHERE keyword on its own line with the condition
// indented. Top-level AND/OR chains break before each connective.
func (p *Printer) formatWhere(where parser.Expr) {
	if where == nil {
		return
	}
	p.newline()
	p.kw(token.WHERE)
	p.writeln()
	p.indent()
	p.formatCondition(where)
	p.dedent()
}

// formatCondition flattens top-level AND/OR conjunctions onto separate
// lines, connective leading.
func (p *Printer) formatCondition(expr parser.Expr) {
	bin, ok := expr.(*parser.BinaryExpr)
	if !ok || (bin.Op != token.AND && bin.Op != token.OR) {
		p.formatExpr(expr)
		return
	}
	p.formatCondition(bin.Left)
	p.writeln()
	p.kw(bin.Op)
	p.space()
	p.formatExpr(bin.Right)
}

// formatOutputClause emits an OUTPUT clause when the returning clause was
// remapped for an OUTPUT-style target. The Virtual pseudo table qualifies
// every item.
func (p *Printer) formatOutputClause(clause *parser.ReturningClause) {
	if clause == nil || clause.Virtual == "" {
		return
	}
	p.newline()
	p.kw(token.OUTPUT)
	p.space()
	p.formatList(len(clause.Items), func(i int) {
		item := clause.Items[i]
		p.write(clause.Virtual)
		p.write(".")
		if item.Star {
			p.write("*")
		} else {
			p.write(item.Column)
		}
	}, ", ", false)
}

// formatReturningClause emits a trailing RETURNING clause for dialects
// with native support. Remapped clauses (Virtual set) were already emitted
// as OUTPUT; a nil clause, or one dropped by the mapper, emits nothing.
func (p *Printer) formatReturningClause(clause *parser.ReturningClause) {
	if clause == nil || clause.Virtual != "" {
		return
	}
	p.newline()
	p.kw(token.RETURNING)
	p.space()
	p.formatList(len(clause.Items), func(i int) {
		item := clause.Items[i]
		if item.Qualifier != "" {
			p.write(item.Qualifier)
			p.write(".")
		}
		if item.Star {
			p.write("*")
		} else {
			p.write(item.Column)
		}
	}, ", ", false)
}
