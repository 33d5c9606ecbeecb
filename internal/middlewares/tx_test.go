package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxMiddleware(t *testing.T) {
	t.Run("commits after the handler", func(t *testing.T) {
		mockDb, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDb.Close()
		db := sqlx.NewDb(mockDb, "sqlmock")

		mock.ExpectBegin()
		mock.ExpectCommit()

		var sawTx bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawTx = GetTxFromContext(r.Context()) != nil
			w.WriteHeader(http.StatusCreated)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
		TxMiddleware(db)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, sawTx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		mockDb, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDb.Close()
		db := sqlx.NewDb(mockDb, "sqlmock")

		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
		TxMiddleware(db)(failingNext(t)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panic rolls back and repanics", func(t *testing.T) {
		mockDb, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer mockDb.Close()
		db := sqlx.NewDb(mockDb, "sqlmock")

		mock.ExpectBegin()
		mock.ExpectRollback()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reviews", nil)

		assert.PanicsWithValue(t, "boom", func() {
			TxMiddleware(db)(next).ServeHTTP(rec, req)
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTxFromContext_NoTransaction(t *testing.T) {
	assert.Nil(t, GetTxFromContext(context.Background()))
}
