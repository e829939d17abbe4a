package format_test

import (
	"testing"

	"github.com/sqlshift/sqlshift/pkg/dialects/postgres"
	"github.com/sqlshift/sqlshift/pkg/dialects/sqlite"
	"github.com/sqlshift/sqlshift/pkg/dialects/tsql"
	"github.com/sqlshift/sqlshift/pkg/format"
	"github.com/sqlshift/sqlshift/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCreateTable(t *testing.T) {
	sql := "CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, username TEXT NOT NULL UNIQUE, score REAL DEFAULT 0.1)"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	t.Run("sqlite", func(t *testing.T) {
		want := "CREATE TABLE users (\n" +
			"  id INTEGER PRIMARY KEY AUTOINCREMENT,\n" +
			"  username TEXT NOT NULL UNIQUE,\n" +
			"  score REAL DEFAULT 0.1\n" +
			")"
		assert.Equal(t, want, format.Statement(res.Stmt, sqlite.SQLite))
	})

	t.Run("tsql", func(t *testing.T) {
		want := "CREATE TABLE users (\n" +
			"  id INTEGER PRIMARY KEY IDENTITY,\n" +
			"  username NVARCHAR(255) NOT NULL UNIQUE,\n" +
			"  score FLOAT DEFAULT 0.1\n" +
			")"
		assert.Equal(t, want, format.Statement(res.Stmt, tsql.TSQL))
	})

	t.Run("postgres", func(t *testing.T) {
		want := "CREATE TABLE users (\n" +
			"  id INTEGER PRIMARY KEY GENERATED ALWAYS AS IDENTITY,\n" +
			"  username TEXT NOT NULL UNIQUE,\n" +
			"  score REAL DEFAULT 0.1\n" +
			")"
		assert.Equal(t, want, format.Statement(res.Stmt, postgres.Postgres))
	})
}

func TestFormatInsert(t *testing.T) {
	sql := "INSERT INTO users (first_name, last_name) VALUES (:first_name, :last_name) RETURNING id, email"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	want := "INSERT INTO users (\n" +
		"  first_name,\n" +
		"  last_name\n" +
		")\n" +
		"VALUES\n" +
		"  (:first_name, :last_name)\n" +
		"RETURNING id, email"
	assert.Equal(t, want, format.Statement(res.Stmt, sqlite.SQLite))
}

func TestFormatInsertOutputTarget(t *testing.T) {
	sql := "INSERT INTO users (first_name) VALUES (:first_name) RETURNING id"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	stmt := res.Stmt.(*parser.InsertStmt)
	stmt.Returning.Virtual = "INSERTED"

	want := "INSERT INTO users (\n" +
		"  first_name\n" +
		")\n" +
		"OUTPUT INSERTED.id\n" +
		"VALUES\n" +
		"  (?)"
	assert.Equal(t, want, format.Statement(stmt, tsql.TSQL))
}

func TestFormatSelect(t *testing.T) {
	sql := "SELECT * FROM users WHERE users.name = :users_name AND users.age BETWEEN :lower AND :upper"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	want := "SELECT\n" +
		"  *\n" +
		"FROM users\n" +
		"WHERE\n" +
		"  users.name = :users_name\n" +
		"  AND users.age BETWEEN :lower AND :upper"
	assert.Equal(t, want, format.Statement(res.Stmt, sqlite.SQLite))
}

func TestFormatSelectPlaceholderStyles(t *testing.T) {
	sql := "SELECT * FROM t WHERE a = :x AND b = :x AND c = :y"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	t.Run("question", func(t *testing.T) {
		want := "SELECT\n" +
			"  *\n" +
			"FROM t\n" +
			"WHERE\n" +
			"  a = ?\n" +
			"  AND b = ?\n" +
			"  AND c = ?"
		assert.Equal(t, want, format.Statement(res.Stmt, tsql.TSQL))
	})

	t.Run("dollar renumbers by slot", func(t *testing.T) {
		want := "SELECT\n" +
			"  *\n" +
			"FROM t\n" +
			"WHERE\n" +
			"  a = $1\n" +
			"  AND b = $1\n" +
			"  AND c = $2"
		assert.Equal(t, want, format.Statement(res.Stmt, postgres.Postgres))
	})
}

func TestFormatSelectSynthesizedNames(t *testing.T) {
	res, err := parser.Parse("SELECT * FROM t WHERE a = ? AND b = ?", tsql.TSQL)
	require.NoError(t, err)

	want := "SELECT\n" +
		"  *\n" +
		"FROM t\n" +
		"WHERE\n" +
		"  a = :parameter_1\n" +
		"  AND b = :parameter_2"
	assert.Equal(t, want, format.Statement(res.Stmt, sqlite.SQLite))
}

func TestFormatUpdate(t *testing.T) {
	sql := "UPDATE users SET email = :email, admin = FALSE WHERE id = :id RETURNING id"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	want := "UPDATE users\n" +
		"SET\n" +
		"  email = :email,\n" +
		"  admin = FALSE\n" +
		"WHERE\n" +
		"  id = :id\n" +
		"RETURNING id"
	assert.Equal(t, want, format.Statement(res.Stmt, sqlite.SQLite))
}

func TestFormatUpdateOutputTarget(t *testing.T) {
	sql := "UPDATE users SET email = :email WHERE id = :id RETURNING email"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	stmt := res.Stmt.(*parser.UpdateStmt)
	stmt.Returning.Virtual = "INSERTED"

	want := "UPDATE users\n" +
		"SET\n" +
		"  email = ?\n" +
		"OUTPUT INSERTED.email\n" +
		"WHERE\n" +
		"  id = ?"
	assert.Equal(t, want, format.Statement(stmt, tsql.TSQL))
}

func TestFormatDelete(t *testing.T) {
	sql := "DELETE FROM users WHERE id = :id RETURNING id"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	t.Run("native returning", func(t *testing.T) {
		want := "DELETE FROM users\n" +
			"WHERE\n" +
			"  id = :id\n" +
			"RETURNING id"
		assert.Equal(t, want, format.Statement(res.Stmt, sqlite.SQLite))
	})
}

func TestFormatDeleteOutputTarget(t *testing.T) {
	sql := "DELETE FROM users WHERE id = :id RETURNING id"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	stmt := res.Stmt.(*parser.DeleteStmt)
	stmt.Returning.Virtual = "DELETED"

	want := "DELETE FROM users\n" +
		"OUTPUT DELETED.id\n" +
		"WHERE\n" +
		"  id = ?"
	assert.Equal(t, want, format.Statement(stmt, tsql.TSQL))
}

func TestFormatExpressions(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{"string escape", "SELECT * FROM t WHERE a = 'it''s'", "a = 'it''s'"},
		{"in list", "SELECT * FROM t WHERE id IN (1, 2, 3)", "id IN (1, 2, 3)"},
		{"not in", "SELECT * FROM t WHERE id NOT IN (1, 2)", "id NOT IN (1, 2)"},
		{"is null", "SELECT * FROM t WHERE a IS NULL", "a IS NULL"},
		{"is not null", "SELECT * FROM t WHERE a IS NOT NULL", "a IS NOT NULL"},
		{"like", "SELECT * FROM t WHERE a LIKE '%x%'", "a LIKE '%x%'"},
		{"grouping", "SELECT * FROM t WHERE (a = 1 OR b = 2)", "(a = 1 OR b = 2)"},
		{"concat", "SELECT * FROM t WHERE a = b || 'x'", "a = b || 'x'"},
		{"unary minus", "SELECT * FROM t WHERE a = -1", "a = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.Parse(tt.sql, sqlite.SQLite)
			require.NoError(t, err)

			want := "SELECT\n  *\nFROM t\nWHERE\n  " + tt.want
			assert.Equal(t, want, format.Statement(res.Stmt, sqlite.SQLite))
		})
	}
}
