package format

import (
	"strconv"
	"strings"

	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/params"
	"github.com/sqlshift/sqlshift/pkg/parser"
	"github.com/sqlshift/sqlshift/pkg/token"
)

func (p *Printer) formatExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.ColumnRef:
		if e.Table != "" {
			p.write(e.Table)
			p.write(".")
		}
		p.write(e.Name)

	case *parser.Literal:
		p.formatLiteral(e)

	case *parser.Placeholder:
		p.formatPlaceholder(e)

	case *parser.BinaryExpr:
		p.formatExpr(e.Left)
		p.space()
		p.write(e.Op.String())
		p.space()
		p.formatExpr(e.Right)

	case *parser.UnaryExpr:
		p.write(e.Op.String())
		if e.Op == token.NOT {
			p.space()
		}
		p.formatExpr(e.Expr)

	case *parser.BetweenExpr:
		p.formatExpr(e.Expr)
		p.space()
		if e.Not {
			p.kw(token.NOT)
			p.space()
		}
		p.kw(token.BETWEEN)
		p.space()
		p.formatExpr(e.Lower)
		p.space()
		p.kw(token.AND)
		p.space()
		p.formatExpr(e.Upper)

	case *parser.InExpr:
		p.formatExpr(e.Expr)
		p.space()
		if e.Not {
			p.kw(token.NOT)
			p.space()
		}
		p.kw(token.IN)
		p.write(" (")
		p.formatList(len(e.List), func(i int) {
			p.formatExpr(e.List[i])
		}, ", ", false)
		p.write(")")

	case *parser.LikeExpr:
		p.formatExpr(e.Expr)
		p.space()
		if e.Not {
			p.kw(token.NOT)
			p.space()
		}
		p.kw(token.LIKE)
		p.space()
		p.formatExpr(e.Pattern)

	case *parser.IsNullExpr:
		p.formatExpr(e.Expr)
		p.space()
		p.kw(token.IS)
		p.space()
		if e.Not {
			p.kw(token.NOT)
			p.space()
		}
		p.kw(token.NULL)

	case *parser.ParenExpr:
		p.write("(")
		p.formatExpr(e.Expr)
		p.write(")")
	}
}

func (p *Printer) formatLiteral(lit *parser.Literal) {
	switch lit.Kind {
	case parser.LiteralString:
		p.write("'")
		p.write(strings.ReplaceAll(lit.Text, "'", "''"))
		p.write("'")
	default:
		p.write(lit.Text)
	}
}

// formatPlaceholder renders the placeholder in the target dialect's style.
// Named targets reuse the source name, or a name synthesized from the
// slot. Numbered targets renumber by slot, so repeated named references
// collapse to the same $N.
func (p *Printer) formatPlaceholder(ph *parser.Placeholder) {
	switch p.dialect.Placeholder {
	case dialect.PlaceholderColonNamed:
		p.write(":")
		p.write(params.Name(ph))
	case dialect.PlaceholderQuestion:
		p.write("?")
	case dialect.PlaceholderDollar:
		p.write("$")
		p.write(strconv.Itoa(ph.Slot + 1))
	}
}
