package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db, "ag:"), mock
}

func TestPostgresStore_Get(t *testing.T) {
	ctx := context.Background()
	kv, mock := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("ag:contributorUser").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"email":"org@fund.org"}`))

	v, found, err := kv.Get(ctx, "contributorUser")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"email":"org@fund.org"}`, v)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("ag:studentUser").
		WillReturnError(sql.ErrNoRows)

	_, found, err = kv.Get(ctx, "studentUser")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Writes(t *testing.T) {
	ctx := context.Background()
	kv, mock := newPostgresMock(t)

	mock.ExpectExec(regexp.QuoteMeta(createTableQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs("ag:scholarships", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
		WithArgs("ag:scholarships").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(clearQuery)).
		WithArgs("ag:").
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, kv.EnsureSchema(ctx))
	require.NoError(t, kv.Set(ctx, "scholarships", "[]"))
	require.NoError(t, kv.Remove(ctx, "scholarships"))
	require.NoError(t, kv.Clear(ctx))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SetError(t *testing.T) {
	kv, mock := newPostgresMock(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs("ag:scholarships", "[]").
		WillReturnError(errors.New("connection reset"))

	err := kv.Set(context.Background(), "scholarships", "[]")
	assert.ErrorContains(t, err, "postgres set scholarships")
	require.NoError(t, mock.ExpectationsWereMet())
}
