package format

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/parser"
)

// Statement renders a statement as SQL text for the target dialect.
// Placeholders are emitted in the dialect's own style, abstract column
// types as the dialect's concrete type tokens.
func Statement(stmt parser.Statement, d *dialect.Dialect) string {
	p := newPrinter(d)
	p.formatStatement(stmt)
	return p.String()
}
