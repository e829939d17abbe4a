package transpile

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/parser"
)

// remap rewrites the statement's returning clause for the target dialect.
// OUTPUT targets get the pseudo table tag the renderer qualifies items
// with: INSERTED for statements that produce rows, DELETED for deletes.
// Targets with no equivalent clause drop it entirely; this loss is defined
// behavior, not an error. Native targets pass through.
//
// The statement must already be a private clone; remap mutates in place.
func remap(stmt parser.Statement, target *dialect.Dialect) parser.Statement {
	switch s := stmt.(type) {
	case *parser.InsertStmt:
		s.Returning = remapClause(s.Returning, target, "INSERTED")
	case *parser.UpdateStmt:
		s.Returning = remapClause(s.Returning, target, "INSERTED")
	case *parser.DeleteStmt:
		s.Returning = remapClause(s.Returning, target, "DELETED")
	}
	return stmt
}

func remapClause(clause *parser.ReturningClause, target *dialect.Dialect, virtual string) *parser.ReturningClause {
	if clause == nil {
		return nil
	}
	switch target.Returning {
	case dialect.ReturningOutput:
		clause.Virtual = virtual
	case dialect.ReturningNone:
		return nil
	default:
		clause.Virtual = ""
	}
	return clause
}
