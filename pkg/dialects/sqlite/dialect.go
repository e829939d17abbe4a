// Package sqlite provides the SQLite dialect definition.
// SQLite binds parameters by name (":email") and supports a native
// RETURNING clause. Its type system is affinity-based, so BOOLEAN columns
// are stored as INTEGER.
package sqlite

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite dialect descriptor.
var SQLite = dialect.New(dialect.Config{
	Name:        "sqlite",
	Placeholder: dialect.PlaceholderColonNamed,
	Returning:   dialect.ReturningNative,
	TypeNames: map[dialect.DataType]string{
		dialect.TypeInteger:  "INTEGER",
		dialect.TypeFloat:    "REAL",
		dialect.TypeText:     "TEXT",
		dialect.TypeBlob:     "BLOB",
		dialect.TypeBoolean:  "INTEGER",
		dialect.TypeDate:     "DATE",
		dialect.TypeDateTime: "DATETIME",
		dialect.TypeTime:     "TIME",
	},
	TypeAliases: map[string]dialect.DataType{
		// Accepted on input; SQLite column types are affinities, so these
		// all appear in the wild.
		"INT":     dialect.TypeInteger,
		"BOOLEAN": dialect.TypeBoolean,
		"FLOAT":   dialect.TypeFloat,
		"DOUBLE":  dialect.TypeFloat,
		"VARCHAR": dialect.TypeText,
	},
	AutoIncrement: "AUTOINCREMENT",
})
