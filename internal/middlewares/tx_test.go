package middlewares

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-image-vault/internal/repositories"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware_Success(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.NotNil(t, GetTxFromContext(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	handler := TxMiddleware(sqlxDB)(next)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollsBackOnErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			sqlxDB, mock := newMockDB(t)

			mock.ExpectBegin()
			mock.ExpectRollback()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})

			rr := httptest.NewRecorder()
			TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/1", nil))

			assert.Equal(t, status, rr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxMiddleware_BeginError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTxMiddleware_CommitError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollsBackOnPanic(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		TxMiddleware(sqlxDB)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_CommitHooks(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		commitErr error
		wantRun   bool
	}{
		{name: "run after commit", status: http.StatusOK, wantRun: true},
		{name: "skipped on rollback", status: http.StatusConflict},
		{name: "skipped on commit error", status: http.StatusOK, commitErr: sql.ErrConnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlxDB, mock := newMockDB(t)
			mock.ExpectBegin()
			switch {
			case tt.status >= http.StatusBadRequest:
				mock.ExpectRollback()
			case tt.commitErr != nil:
				mock.ExpectCommit().WillReturnError(tt.commitErr)
			default:
				mock.ExpectCommit()
			}

			ran := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				repositories.AfterCommit(r.Context(), func() {
					// The transaction is already finished when hooks run.
					assert.NoError(t, mock.ExpectationsWereMet())
					ran = true
				})
				assert.False(t, ran)
				w.WriteHeader(tt.status)
			})

			rr := httptest.NewRecorder()
			TxMiddleware(sqlxDB)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/users/1", nil))

			assert.Equal(t, tt.wantRun, ran)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
