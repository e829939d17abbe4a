// Package transpile translates SQL statements and their parameter
// payloads between dialects.
//
// The pipeline is parse → canonicalize parameters → remap clauses →
// render. Parsing produces a dialect-neutral tree plus a placeholder
// inventory; the payload is pivoted through a canonical slot-ordered list;
// clause remapping reconciles RETURNING and OUTPUT; rendering emits the
// target dialect's text and payload shape.
//
//	out, err := transpile.New(tsql.TSQL).Transpile(sql, payload, sqlite.SQLite)
//
// A Transpiler is safe for concurrent use. Parse results are cached per
// (sql, source dialect), so repeated statements skip the parser.
//
// Output is always in canonical form: statements are re-rendered even when
// source and target dialects match, so numbered placeholders are renumbered
// in occurrence order and the payload is reordered to follow them.
package transpile

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/format"
	"github.com/sqlshift/sqlshift/pkg/params"
)

// Result is one transpiled statement: target-dialect SQL text and the
// payload in the target's binding shape.
type Result struct {
	SQL     string
	Payload params.Payload
}

// Transpiler translates statements into one fixed target dialect.
type Transpiler struct {
	target *dialect.Dialect
	cache  *parseCache
}

// New creates a Transpiler for the given target dialect.
func New(target *dialect.Dialect) *Transpiler {
	return &Transpiler{
		target: target,
		cache:  newParseCache(),
	}
}

// Target returns the transpiler's target dialect.
func (t *Transpiler) Target() *dialect.Dialect {
	return t.target
}

// Transpile translates one statement and its payload from the source
// dialect into the target dialect.
func (t *Transpiler) Transpile(sql string, payload params.Payload, src *dialect.Dialect) (*Result, error) {
	res, err := t.cache.parse(sql, src)
	if err != nil {
		return nil, err
	}

	// The parse result is shared through the cache; remap works on a
	// private clone.
	stmt := remap(cloneStatement(res.Stmt), t.target)
	out := &Result{SQL: format.Statement(stmt, t.target)}

	// An empty payload transpiles the SQL alone, placeholders included;
	// the caller binds values later.
	if payload.IsEmpty() {
		return out, nil
	}

	list, err := params.Canonicalize(res, src, payload)
	if err != nil {
		return nil, err
	}
	out.Payload = params.Encode(list, res.Placeholders, t.target)
	return out, nil
}

// Transpile is the one-shot form: both dialects resolved by name through
// the registry, no parse caching across calls.
func Transpile(sql string, payload params.Payload, srcName, targetName string) (*Result, error) {
	src, ok := dialect.Get(srcName)
	if !ok {
		return nil, &UnsupportedDialectError{Name: srcName}
	}
	target, ok := dialect.Get(targetName)
	if !ok {
		return nil, &UnsupportedDialectError{Name: targetName}
	}
	return New(target).Transpile(sql, payload, src)
}
