package transpile_test

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlshift/sqlshift/pkg/params"
	"github.com/sqlshift/sqlshift/pkg/transpile"
)

// Transpiled output must be directly executable through database/sql:
// positional payloads line up with the emitted placeholder occurrences.
func TestTranspiledStatementExecutes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sql := "INSERT INTO users (username, email) VALUES (:username, :email)"
	payload := params.Payload{Named: map[string]any{
		"username": "john",
		"email":    "john@example.com",
	}}

	res, err := transpile.Transpile(sql, payload, "sqlite", "mysql")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(res.SQL)).
		WithArgs("john", "john@example.com").
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err = db.Exec(res.SQL, res.Payload.Positional...)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranspiledQueryExecutes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sql := "SELECT * FROM users WHERE name = :name AND age BETWEEN :lower AND :upper"
	payload := params.Payload{Named: map[string]any{
		"name": "John", "lower": 18, "upper": 65,
	}}

	res, err := transpile.Transpile(sql, payload, "sqlite", "tsql")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "John")
	mock.ExpectQuery(regexp.QuoteMeta(res.SQL)).
		WithArgs("John", 18, 65).
		WillReturnRows(rows)

	got, err := db.Query(res.SQL, res.Payload.Positional...)
	require.NoError(t, err)
	defer got.Close()

	require.True(t, got.Next())
	var id int
	var name string
	require.NoError(t, got.Scan(&id, &name))
	assert.Equal(t, "John", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
