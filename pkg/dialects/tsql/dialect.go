// Package tsql provides the Microsoft SQL Server (T-SQL) dialect definition.
// T-SQL binds parameters positionally ("?") and expresses returned rows
// through OUTPUT INSERTED.* / OUTPUT DELETED.* clauses.
package tsql

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
)

func init() {
	dialect.Register(TSQL)
}

// TSQL is the SQL Server dialect descriptor.
var TSQL = dialect.New(dialect.Config{
	Name:        "tsql",
	Placeholder: dialect.PlaceholderQuestion,
	Returning:   dialect.ReturningOutput,
	TypeNames: map[dialect.DataType]string{
		dialect.TypeInteger:  "INTEGER",
		dialect.TypeFloat:    "FLOAT",
		dialect.TypeText:     "NVARCHAR(255)",
		dialect.TypeBlob:     "VARBINARY",
		dialect.TypeBoolean:  "BIT",
		dialect.TypeDate:     "DATE",
		dialect.TypeDateTime: "DATETIME",
		dialect.TypeTime:     "TIME",
	},
	TypeAliases: map[string]dialect.DataType{
		"INT":       dialect.TypeInteger,
		"REAL":      dialect.TypeFloat,
		"VARCHAR":   dialect.TypeText,
		"TEXT":      dialect.TypeText,
		"DATETIME2": dialect.TypeDateTime,
	},
	AutoIncrement: "IDENTITY",
})
