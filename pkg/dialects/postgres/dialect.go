// Package postgres provides the PostgreSQL dialect definition.
// PostgreSQL binds parameters by declared number ("$1", "$2") and supports
// a native RETURNING clause.
package postgres

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect descriptor.
var Postgres = dialect.New(dialect.Config{
	Name:        "postgres",
	Placeholder: dialect.PlaceholderDollar,
	Returning:   dialect.ReturningNative,
	TypeNames: map[dialect.DataType]string{
		dialect.TypeInteger:  "INTEGER",
		dialect.TypeFloat:    "REAL",
		dialect.TypeText:     "TEXT",
		dialect.TypeBlob:     "BYTEA",
		dialect.TypeBoolean:  "BOOLEAN",
		dialect.TypeDate:     "DATE",
		dialect.TypeDateTime: "TIMESTAMP",
		dialect.TypeTime:     "TIME",
	},
	TypeAliases: map[string]dialect.DataType{
		"INT":         dialect.TypeInteger,
		"INT4":        dialect.TypeInteger,
		"FLOAT4":      dialect.TypeFloat,
		"FLOAT8":      dialect.TypeFloat,
		"VARCHAR":     dialect.TypeText,
		"BOOL":        dialect.TypeBoolean,
		"TIMESTAMPTZ": dialect.TypeDateTime,
	},
	AutoIncrement: "GENERATED ALWAYS AS IDENTITY",
})
