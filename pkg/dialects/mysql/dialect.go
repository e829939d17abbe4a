// Package mysql provides the MySQL dialect definition.
// MySQL binds parameters positionally ("?") and has no RETURNING
// equivalent: the clause is dropped during transpilation.
package mysql

import (
	"github.com/sqlshift/sqlshift/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect descriptor.
var MySQL = dialect.New(dialect.Config{
	Name:        "mysql",
	Placeholder: dialect.PlaceholderQuestion,
	Returning:   dialect.ReturningNone,
	TypeNames: map[dialect.DataType]string{
		dialect.TypeInteger:  "INTEGER",
		dialect.TypeFloat:    "DOUBLE",
		dialect.TypeText:     "TEXT",
		dialect.TypeBlob:     "BLOB",
		dialect.TypeBoolean:  "TINYINT(1)",
		dialect.TypeDate:     "DATE",
		dialect.TypeDateTime: "DATETIME",
		dialect.TypeTime:     "TIME",
	},
	TypeAliases: map[string]dialect.DataType{
		"INT":     dialect.TypeInteger,
		"FLOAT":   dialect.TypeFloat,
		"REAL":    dialect.TypeFloat,
		"VARCHAR": dialect.TypeText,
		"BOOLEAN": dialect.TypeBoolean,
		"BOOL":    dialect.TypeBoolean,
	},
	AutoIncrement: "AUTO_INCREMENT",
})
