// Package dialect provides SQL dialect descriptors and their registry.
//
// A Dialect is an immutable, read-only description of one SQL variant:
// its placeholder style, its RETURNING/OUTPUT capability, and the mapping
// between abstract column types and concrete type tokens. Concrete dialect
// definitions live in pkg/dialects/*/ packages and register themselves
// at init time.
package dialect

import "strings"

// PlaceholderStyle describes how a dialect marks bound parameters.
type PlaceholderStyle int

const (
	// PlaceholderColonNamed binds parameters by name: ":email".
	PlaceholderColonNamed PlaceholderStyle = iota
	// PlaceholderQuestion binds parameters positionally: "?".
	PlaceholderQuestion
	// PlaceholderDollar binds parameters by declared number: "$1", "$2".
	PlaceholderDollar
)

// String returns the style name.
func (s PlaceholderStyle) String() string {
	switch s {
	case PlaceholderColonNamed:
		return "colon-named"
	case PlaceholderQuestion:
		return "question"
	case PlaceholderDollar:
		return "dollar-numbered"
	default:
		return "unknown"
	}
}

// ReturningMode describes how a dialect expresses "give back columns from
// the affected rows".
type ReturningMode int

const (
	// ReturningNative renders a trailing RETURNING clause (sqlite, postgres).
	ReturningNative ReturningMode = iota
	// ReturningOutput renders an OUTPUT INSERTED./DELETED. clause (tsql).
	ReturningOutput
	// ReturningNone drops the clause entirely (mysql).
	ReturningNone
)

// String returns the mode name.
func (m ReturningMode) String() string {
	switch m {
	case ReturningNative:
		return "RETURNING"
	case ReturningOutput:
		return "OUTPUT"
	case ReturningNone:
		return "unsupported"
	default:
		return "unknown"
	}
}

// DataType is a dialect-neutral classification of a column's storage type.
type DataType int

const (
	TypeInteger DataType = iota
	TypeFloat
	TypeText
	TypeBlob
	TypeBoolean
	TypeDate
	TypeDateTime
	TypeTime
)

// AllTypes lists every abstract data type, in declaration order.
var AllTypes = []DataType{
	TypeInteger, TypeFloat, TypeText, TypeBlob,
	TypeBoolean, TypeDate, TypeDateTime, TypeTime,
}

// String returns the abstract type name.
func (t DataType) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeText:
		return "TEXT"
	case TypeBlob:
		return "BLOB"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeDate:
		return "DATE"
	case TypeDateTime:
		return "DATETIME"
	case TypeTime:
		return "TIME"
	default:
		return "UNKNOWN"
	}
}

// Config is the pure data definition of a dialect, used by New.
type Config struct {
	Name        string
	Placeholder PlaceholderStyle
	Returning   ReturningMode

	// TypeNames maps every abstract type to the concrete type token
	// rendered in DDL. The mapping must be total.
	TypeNames map[DataType]string

	// TypeAliases adds extra reverse lookups for concrete type names the
	// dialect accepts on input but never renders (e.g. "INT" for INTEGER).
	// Keys are upper-case base names without argument lists.
	TypeAliases map[string]DataType

	// AutoIncrement is the DDL keyword sequence for auto-incrementing
	// integer primary keys ("AUTOINCREMENT", "IDENTITY", ...).
	AutoIncrement string
}

// Dialect represents one SQL dialect. Immutable after construction;
// concurrent callers only ever read it.
type Dialect struct {
	Name        string
	Placeholder PlaceholderStyle
	Returning   ReturningMode

	typeNames     map[DataType]string
	typeLookup    map[string]DataType
	autoIncrement string
}

// New constructs a Dialect from its configuration. The reverse type map is
// derived from TypeNames (last declaration order wins for dialects where two
// abstract types share a concrete token) and extended with TypeAliases.
func New(cfg Config) *Dialect {
	d := &Dialect{
		Name:          cfg.Name,
		Placeholder:   cfg.Placeholder,
		Returning:     cfg.Returning,
		typeNames:     make(map[DataType]string, len(cfg.TypeNames)),
		typeLookup:    make(map[string]DataType),
		autoIncrement: cfg.AutoIncrement,
	}
	for _, t := range AllTypes {
		name := cfg.TypeNames[t]
		d.typeNames[t] = name
		base := baseTypeName(name)
		if _, taken := d.typeLookup[base]; !taken {
			d.typeLookup[base] = t
		}
	}
	for alias, t := range cfg.TypeAliases {
		d.typeLookup[strings.ToUpper(alias)] = t
	}
	return d
}

// TypeName returns the concrete type token for an abstract type.
func (d *Dialect) TypeName(t DataType) string {
	return d.typeNames[t]
}

// LookupType resolves a concrete type token (as read from a CREATE TABLE
// statement) back to its abstract type. Argument lists are ignored, so
// NVARCHAR(255) and NVARCHAR(100) both resolve to TEXT.
func (d *Dialect) LookupType(name string) (DataType, bool) {
	t, ok := d.typeLookup[baseTypeName(name)]
	return t, ok
}

// AutoIncrement returns the dialect's auto-increment DDL keyword sequence.
func (d *Dialect) AutoIncrement() string {
	return d.autoIncrement
}

// baseTypeName strips an argument list and upper-cases the type token:
// "nvarchar(255)" -> "NVARCHAR".
func baseTypeName(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return strings.ToUpper(strings.TrimSpace(name))
}
