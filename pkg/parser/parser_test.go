package parser_test

import (
	"testing"

	"github.com/sqlshift/sqlshift/pkg/dialect"
	"github.com/sqlshift/sqlshift/pkg/dialects/mysql"
	"github.com/sqlshift/sqlshift/pkg/dialects/postgres"
	"github.com/sqlshift/sqlshift/pkg/dialects/sqlite"
	"github.com/sqlshift/sqlshift/pkg/dialects/tsql"
	"github.com/sqlshift/sqlshift/pkg/parser"
	"github.com/sqlshift/sqlshift/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- CREATE TABLE ----------

func TestParseCreateTable(t *testing.T) {
	sql := `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		score REAL DEFAULT 0.1,
		photo BLOB,
		admin INTEGER NOT NULL
	)`

	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	stmt, ok := res.Stmt.(*parser.CreateTableStmt)
	require.True(t, ok)
	assert.Equal(t, "users", stmt.Name)
	assert.True(t, stmt.IfNotExists)
	require.Len(t, stmt.Columns, 5)

	id := stmt.Columns[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, dialect.TypeInteger, id.Type)
	assert.True(t, id.PrimaryKey)
	assert.True(t, id.AutoIncrement)

	username := stmt.Columns[1]
	assert.Equal(t, dialect.TypeText, username.Type)
	assert.True(t, username.NotNull)
	assert.True(t, username.Unique)

	score := stmt.Columns[2]
	assert.Equal(t, dialect.TypeFloat, score.Type)
	lit, ok := score.Default.(*parser.Literal)
	require.True(t, ok)
	assert.Equal(t, "0.1", lit.Text)

	assert.Equal(t, dialect.TypeBlob, stmt.Columns[3].Type)
}

func TestParseCreateTableAutoIncrementSpellings(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		dialect *dialect.Dialect
	}{
		{"sqlite", "CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT)", sqlite.SQLite},
		{"tsql identity", "CREATE TABLE t (id INTEGER PRIMARY KEY IDENTITY)", tsql.TSQL},
		{"postgres generated", "CREATE TABLE t (id INTEGER PRIMARY KEY GENERATED ALWAYS AS IDENTITY)", postgres.Postgres},
		{"mysql", "CREATE TABLE t (id INTEGER PRIMARY KEY AUTO_INCREMENT)", mysql.MySQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.Parse(tt.sql, tt.dialect)
			require.NoError(t, err)
			stmt := res.Stmt.(*parser.CreateTableStmt)
			require.Len(t, stmt.Columns, 1)
			assert.True(t, stmt.Columns[0].AutoIncrement)
		})
	}
}

func TestParseCreateTableTypeArguments(t *testing.T) {
	res, err := parser.Parse("CREATE TABLE t (name NVARCHAR(255) NOT NULL)", tsql.TSQL)
	require.NoError(t, err)
	stmt := res.Stmt.(*parser.CreateTableStmt)
	require.Len(t, stmt.Columns, 1)
	assert.Equal(t, dialect.TypeText, stmt.Columns[0].Type)
}

func TestParseCreateTableUnknownType(t *testing.T) {
	_, err := parser.Parse("CREATE TABLE t (x GEOMETRY)", sqlite.SQLite)
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "unknown column type")
}

// ---------- INSERT ----------

func TestParseInsert(t *testing.T) {
	sql := "INSERT INTO users (username, email) VALUES (:username, :email) RETURNING id"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	stmt, ok := res.Stmt.(*parser.InsertStmt)
	require.True(t, ok)
	assert.Equal(t, "users", stmt.Table)
	assert.Equal(t, []string{"username", "email"}, stmt.Columns)
	require.Len(t, stmt.Rows, 1)
	require.Len(t, stmt.Rows[0], 2)

	require.NotNil(t, stmt.Returning)
	require.Len(t, stmt.Returning.Items, 1)
	assert.Equal(t, "id", stmt.Returning.Items[0].Column)
	assert.Empty(t, stmt.Returning.Virtual)
}

func TestParseInsertMultiRow(t *testing.T) {
	sql := "INSERT INTO t (a, b) VALUES (1, 2), (3, 4)"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)
	stmt := res.Stmt.(*parser.InsertStmt)
	assert.Len(t, stmt.Rows, 2)
}

func TestParseInsertOutputClause(t *testing.T) {
	sql := "INSERT INTO users (username) OUTPUT INSERTED.id VALUES (?)"
	res, err := parser.Parse(sql, tsql.TSQL)
	require.NoError(t, err)

	stmt := res.Stmt.(*parser.InsertStmt)
	require.NotNil(t, stmt.Returning)
	require.Len(t, stmt.Returning.Items, 1)
	// INSERTED is a pseudo table, stripped on parse
	assert.Empty(t, stmt.Returning.Items[0].Qualifier)
	assert.Equal(t, "id", stmt.Returning.Items[0].Column)
}

func TestParseInsertOutputAndReturningRejected(t *testing.T) {
	sql := "INSERT INTO t (a) OUTPUT INSERTED.id VALUES (?) RETURNING id"
	_, err := parser.Parse(sql, tsql.TSQL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both OUTPUT and RETURNING")
}

// ---------- SELECT ----------

func TestParseSelect(t *testing.T) {
	sql := "SELECT * FROM users WHERE admin = TRUE AND age BETWEEN 18 AND 65"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	stmt, ok := res.Stmt.(*parser.SelectStmt)
	require.True(t, ok)
	require.Len(t, stmt.Items, 1)
	assert.True(t, stmt.Items[0].Star)
	assert.Equal(t, "users", stmt.Table)

	and, ok := stmt.Where.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.AND, and.Op)

	between, ok := and.Right.(*parser.BetweenExpr)
	require.True(t, ok)
	assert.False(t, between.Not)
}

func TestParseSelectExpressions(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"is null", "SELECT * FROM t WHERE last_login IS NULL"},
		{"is not null", "SELECT * FROM t WHERE last_login IS NOT NULL"},
		{"in list", "SELECT * FROM t WHERE id IN (1, 2, 3)"},
		{"not in list", "SELECT * FROM t WHERE id NOT IN (1, 2)"},
		{"like", "SELECT * FROM t WHERE email LIKE '%@example.com'"},
		{"not like", "SELECT * FROM t WHERE email NOT LIKE 'spam%'"},
		{"not between", "SELECT * FROM t WHERE age NOT BETWEEN 1 AND 10"},
		{"concat", "SELECT first || ' ' || last FROM t"},
		{"arithmetic", "SELECT * FROM t WHERE a + b * 2 > 10"},
		{"grouping", "SELECT * FROM t WHERE (a OR b) AND c"},
		{"unary not", "SELECT * FROM t WHERE NOT admin"},
		{"qualified column", "SELECT t.id FROM t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql, sqlite.SQLite)
			assert.NoError(t, err)
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// a = 1 OR b = 2 AND c = 3 parses as a = 1 OR (b = 2 AND c = 3)
	res, err := parser.Parse("SELECT * FROM t WHERE a = 1 OR b = 2 AND c = 3", sqlite.SQLite)
	require.NoError(t, err)

	where := res.Stmt.(*parser.SelectStmt).Where
	or, ok := where.(*parser.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, token.OR, or.Op)

	and, ok := or.Right.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.AND, and.Op)
}

// ---------- UPDATE / DELETE ----------

func TestParseUpdate(t *testing.T) {
	sql := "UPDATE users SET email = :email, admin = FALSE WHERE id = :id RETURNING id, email"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	stmt, ok := res.Stmt.(*parser.UpdateStmt)
	require.True(t, ok)
	assert.Equal(t, "users", stmt.Table)
	require.Len(t, stmt.Assignments, 2)
	assert.Equal(t, "email", stmt.Assignments[0].Column)
	require.NotNil(t, stmt.Where)
	require.NotNil(t, stmt.Returning)
	assert.Len(t, stmt.Returning.Items, 2)
}

func TestParseUpdateOutputClause(t *testing.T) {
	sql := "UPDATE users SET email = ? OUTPUT INSERTED.email WHERE id = ?"
	res, err := parser.Parse(sql, tsql.TSQL)
	require.NoError(t, err)

	stmt := res.Stmt.(*parser.UpdateStmt)
	require.NotNil(t, stmt.Returning)
	assert.Equal(t, "email", stmt.Returning.Items[0].Column)
	require.NotNil(t, stmt.Where)
}

func TestParseDelete(t *testing.T) {
	sql := "DELETE FROM users WHERE id = $1 RETURNING id"
	res, err := parser.Parse(sql, postgres.Postgres)
	require.NoError(t, err)

	stmt, ok := res.Stmt.(*parser.DeleteStmt)
	require.True(t, ok)
	assert.Equal(t, "users", stmt.Table)
	require.NotNil(t, stmt.Where)
	require.NotNil(t, stmt.Returning)
}

func TestParseDeleteOutputClause(t *testing.T) {
	sql := "DELETE FROM users OUTPUT DELETED.id WHERE id = ?"
	res, err := parser.Parse(sql, tsql.TSQL)
	require.NoError(t, err)

	stmt := res.Stmt.(*parser.DeleteStmt)
	require.NotNil(t, stmt.Returning)
	assert.Equal(t, "id", stmt.Returning.Items[0].Column)
}

// ---------- Placeholder Slots ----------

func TestPlaceholderSlotsNamed(t *testing.T) {
	// Repeated names share one slot, assigned in first-occurrence order.
	sql := "SELECT * FROM t WHERE a = :x AND b = :y AND c = :x"
	res, err := parser.Parse(sql, sqlite.SQLite)
	require.NoError(t, err)

	require.Len(t, res.Placeholders, 3)
	assert.Equal(t, 2, res.Slots)
	assert.Equal(t, 0, res.Placeholders[0].Slot)
	assert.Equal(t, 1, res.Placeholders[1].Slot)
	assert.Equal(t, 0, res.Placeholders[2].Slot)
	assert.Equal(t, "x", res.Placeholders[2].Name)
}

func TestPlaceholderSlotsQuestion(t *testing.T) {
	// Every ? is its own slot.
	sql := "UPDATE t SET a = ?, b = ? WHERE c = ?"
	res, err := parser.Parse(sql, tsql.TSQL)
	require.NoError(t, err)

	require.Len(t, res.Placeholders, 3)
	assert.Equal(t, 3, res.Slots)
	for i, ph := range res.Placeholders {
		assert.Equal(t, i, ph.Slot)
	}
}

func TestPlaceholderSlotsDollar(t *testing.T) {
	// Slots follow textual order; Number records the declared index.
	sql := "SELECT * FROM t WHERE a = $3 AND b = $2 AND c = $1"
	res, err := parser.Parse(sql, postgres.Postgres)
	require.NoError(t, err)

	require.Len(t, res.Placeholders, 3)
	assert.Equal(t, 3, res.Slots)
	assert.Equal(t, 3, res.Placeholders[0].Number)
	assert.Equal(t, 0, res.Placeholders[0].Slot)
	assert.Equal(t, 1, res.Placeholders[2].Number)
	assert.Equal(t, 2, res.Placeholders[2].Slot)
}

func TestPlaceholderWrongStyleRejected(t *testing.T) {
	_, err := parser.Parse("SELECT * FROM t WHERE id = ?", sqlite.SQLite)
	require.Error(t, err)
	var lerr *parser.LexError
	assert.ErrorAs(t, err, &lerr)
}

// ---------- Errors ----------

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"not a statement", "DROP TABLE users"},
		{"missing from", "SELECT *"},
		{"missing values", "INSERT INTO t (a)"},
		{"trailing garbage", "SELECT * FROM t garbage extra"},
		{"unterminated string", "SELECT * FROM t WHERE a = 'oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql, sqlite.SQLite)
			assert.Error(t, err)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parser.Parse("SELECT * FROM", sqlite.SQLite)
	require.Error(t, err)
	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos.Line)
}
