package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestWithinTx_Commit(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := Conn(ctx, db).ExecContext(ctx, "UPDATE bookings SET paid = TRUE")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("boom")
	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_NestedJoinsOuter(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		return transactor.WithinTx(ctx, func(inner context.Context) error {
			calls++
			_, isTx := Conn(inner, db).(*sqlx.Tx)
			assert.True(t, isTx)
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginError(t *testing.T) {
	db, mock := setupMockDB(t)
	transactor := NewTransactor(db)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := transactor.WithinTx(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
}

func TestConn_WithoutTx(t *testing.T) {
	db, _ := setupMockDB(t)
	assert.Same(t, db, Conn(context.Background(), db))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}
