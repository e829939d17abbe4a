// Package params translates parameter payloads between dialect binding
// conventions.
//
// The pivot representation is the canonical list: one value per parameter
// slot, ordered by slot. Named and positional payload shapes exist only at
// the boundaries; Canonicalize decodes the caller's payload into the list
// and Encode serializes the list back into the shape the target dialect
// binds with.
package params

import (
	"fmt"

	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/parser"
)

// List is the canonical parameter list. Index = slot.
type List []any

// Payload is a parameter payload in one dialect's binding shape. Exactly
// one of Named and Positional is set; named styles bind a mapping,
// positional styles bind a sequence.
type Payload struct {
	Named      map[string]any
	Positional []any
}

// IsNamed reports whether the payload carries a mapping.
func (p Payload) IsNamed() bool {
	return p.Named != nil
}

// IsEmpty reports whether the payload carries neither shape. An empty
// payload requests SQL-only transpilation: the statement is rewritten and
// no parameter binding takes place.
func (p Payload) IsEmpty() bool {
	return p.Named == nil && p.Positional == nil
}

// BindingError reports a payload that does not fit the statement's
// placeholders: a missing name, a sequence length mismatch, or a numbered
// placeholder pointing past the end of the sequence.
type BindingError struct {
	Name    string // missing named parameter, when non-empty
	Index   int    // unresolved placeholder number (1-based), when positive
	Message string
}

func (e *BindingError) Error() string {
	return "binding error: " + e.Message
}

func missingName(name string) *BindingError {
	return &BindingError{
		Name:    name,
		Message: fmt.Sprintf("missing named parameter %q", name),
	}
}

func countMismatch(want, got int) *BindingError {
	return &BindingError{
		Message: fmt.Sprintf("statement binds %d parameters, payload has %d", want, got),
	}
}

func unresolvedNumber(n, have int) *BindingError {
	return &BindingError{
		Index:   n,
		Message: fmt.Sprintf("placeholder $%d exceeds payload length %d", n, have),
	}
}

func shapeMismatch(style dialect.PlaceholderStyle, named bool) *BindingError {
	shape := "sequence"
	if named {
		shape = "mapping"
	}
	return &BindingError{
		Message: fmt.Sprintf("%s placeholders cannot bind a %s payload", style, shape),
	}
}

// Canonicalize decodes the caller's payload into the canonical list using
// the parse result's placeholder inventory.
//
// Named payloads are keyed lookups: each distinct name fills the slot it
// claimed at first occurrence, and the mapping's own order is irrelevant.
// Plain positional payloads align element i with slot i. Numbered
// placeholders read element N-1 for $N into the slot of their textual
// occurrence, so a statement may reference the sequence out of order.
func Canonicalize(res *parser.Result, src *dialect.Dialect, payload Payload) (List, error) {
	list := make(List, res.Slots)

	switch src.Placeholder {
	case dialect.PlaceholderColonNamed:
		if payload.Positional != nil {
			return nil, shapeMismatch(src.Placeholder, false)
		}
		// A nil mapping falls through: every placeholder reports its own
		// name as missing, and a placeholder-free statement binds nothing.
		for _, ph := range res.Placeholders {
			v, ok := payload.Named[ph.Name]
			if !ok {
				return nil, missingName(ph.Name)
			}
			list[ph.Slot] = v
		}

	case dialect.PlaceholderQuestion:
		if payload.IsNamed() {
			return nil, shapeMismatch(src.Placeholder, true)
		}
		if len(payload.Positional) != res.Slots {
			return nil, countMismatch(res.Slots, len(payload.Positional))
		}
		copy(list, payload.Positional)

	case dialect.PlaceholderDollar:
		if payload.IsNamed() {
			return nil, shapeMismatch(src.Placeholder, true)
		}
		for _, ph := range res.Placeholders {
			if ph.Number > len(payload.Positional) {
				return nil, unresolvedNumber(ph.Number, len(payload.Positional))
			}
			list[ph.Slot] = payload.Positional[ph.Number-1]
		}
	}

	return list, nil
}

// Encode serializes the canonical list into the target dialect's payload
// shape. Named targets get a mapping keyed by placeholder name, with names
// synthesized from the slot when the source was positional. Question-style
// targets bind one value per textual occurrence, so a deduplicated named
// slot fans out to every occurrence that references it. Dollar-style
// targets bind one value per slot.
func Encode(list List, placeholders []*parser.Placeholder, target *dialect.Dialect) Payload {
	switch target.Placeholder {
	case dialect.PlaceholderColonNamed:
		named := make(map[string]any, len(list))
		for _, ph := range placeholders {
			named[Name(ph)] = list[ph.Slot]
		}
		return Payload{Named: named}

	case dialect.PlaceholderQuestion:
		positional := make([]any, 0, len(placeholders))
		for _, ph := range placeholders {
			positional = append(positional, list[ph.Slot])
		}
		return Payload{Positional: positional}

	default:
		positional := make([]any, len(list))
		copy(positional, list)
		return Payload{Positional: positional}
	}
}

// Name returns the binding name for a placeholder: its own identifier when
// the source was named, otherwise "parameter_<slot+1>".
func Name(ph *parser.Placeholder) string {
	if ph.Name != "" {
		return ph.Name
	}
	return fmt.Sprintf("parameter_%d", ph.Slot+1)
}
