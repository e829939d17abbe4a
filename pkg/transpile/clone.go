package transpile

import "github.com/sqlshift/sqlshift/pkg/parser"

// cloneStatement copies a statement deeply enough that remapping its
// returning clause cannot be observed through the parse cache. Expression
// trees are never mutated after parsing, so they are shared.
func cloneStatement(stmt parser.Statement) parser.Statement {
	switch s := stmt.(type) {
	case *parser.InsertStmt:
		c := *s
		c.Returning = cloneReturning(s.Returning)
		return &c
	case *parser.UpdateStmt:
		c := *s
		c.Returning = cloneReturning(s.Returning)
		return &c
	case *parser.DeleteStmt:
		c := *s
		c.Returning = cloneReturning(s.Returning)
		return &c
	case *parser.CreateTableStmt:
		c := *s
		return &c
	case *parser.SelectStmt:
		c := *s
		return &c
	default:
		return stmt
	}
}

func cloneReturning(clause *parser.ReturningClause) *parser.ReturningClause {
	if clause == nil {
		return nil
	}
	c := *clause
	c.Items = make([]parser.ReturningItem, len(clause.Items))
	copy(c.Items, clause.Items)
	return &c
}
