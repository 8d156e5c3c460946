package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitekdb/deeplink/internal/config"
	"github.com/hitekdb/deeplink/internal/types"
)

func testRetryConfig() config.RetryConfig {
	return config.RetryConfig{Attempts: 3, BaseDelaySeconds: 0.001}
}

func TestNewSession(t *testing.T) {
	cfg := config.DatabaseConfig{Path: "/data/users.db", BusyTimeoutMS: 10000}
	s := NewSession(cfg, testRetryConfig(), nil)

	require.NotNil(t, s)
	assert.Nil(t, s.db, "connection should be nil before Open()")
	assert.Equal(t, 3, s.retry.MaxAttempts)
}

func TestSession_QueryBeforeOpen(t *testing.T) {
	s := NewSession(config.DatabaseConfig{Path: "/data/users.db"}, testRetryConfig(), nil)

	_, err := s.Query(context.Background(), "SELECT * FROM users WHERE mobile = ?", "9876543210")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestSession_CloseWithoutOpen(t *testing.T) {
	s := NewSession(config.DatabaseConfig{Path: "/data/users.db"}, testRetryConfig(), nil)

	// Idempotent and safe if never opened
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestSession_QueryMaterializesRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewSessionWithDB(db, testRetryConfig(), nil)

	mock.ExpectQuery("SELECT \\* FROM users WHERE mobile = \\?").
		WithArgs("9876543210").
		WillReturnRows(sqlmock.NewRows([]string{"mobile", "alt_mobile", "name"}).
			AddRow("9876543210", "9123456789", "RAVI KUMAR").
			AddRow("9876543210", nil, "R KUMAR"))

	rows, err := s.Query(context.Background(), "SELECT * FROM users WHERE mobile = ?", "9876543210")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "9876543210", types.ToString(rows[0]["mobile"]))
	assert.Equal(t, "9123456789", types.ToString(rows[0]["alt_mobile"]))
	assert.Equal(t, "RAVI KUMAR", types.ToString(rows[0]["name"]))
	assert.Equal(t, "", types.ToString(rows[1]["alt_mobile"]), "NULL column reads as empty")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_QueryNoMatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewSessionWithDB(db, testRetryConfig(), nil)

	mock.ExpectQuery("SELECT \\* FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"mobile", "name"}))

	rows, err := s.Query(context.Background(), "SELECT * FROM users WHERE mobile = ?", "0000000000")
	require.NoError(t, err)
	assert.Empty(t, rows, "no matches is an empty result, not an error")
}

func TestSession_QueryRetriesOnLocked(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewSessionWithDB(db, testRetryConfig(), nil)

	locked := errors.New("database is locked")
	mock.ExpectQuery("SELECT \\* FROM users").WillReturnError(locked)
	mock.ExpectQuery("SELECT \\* FROM users").WillReturnError(locked)
	mock.ExpectQuery("SELECT \\* FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"mobile"}).AddRow("9876543210"))

	rows, err := s.Query(context.Background(), "SELECT * FROM users WHERE mobile = ?", "9876543210")
	require.NoError(t, err, "a query that succeeds within the attempt limit must succeed")
	require.Len(t, rows, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_QueryExhaustsRetries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewSessionWithDB(db, testRetryConfig(), nil)

	locked := errors.New("database is locked")
	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT \\* FROM users").WillReturnError(locked)
	}

	_, err = s.Query(context.Background(), "SELECT * FROM users WHERE mobile = ?", "9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_QueryPermanentErrorNotRetried(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewSessionWithDB(db, testRetryConfig(), nil)

	// A single expectation: a permanent error must not trigger a second query
	mock.ExpectQuery("SELECT \\* FROM users").
		WillReturnError(errors.New("database disk image is malformed"))

	_, err = s.Query(context.Background(), "SELECT * FROM users WHERE mobile = ?", "9876543210")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_CloseAfterUse(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	s := NewSessionWithDB(db, testRetryConfig(), nil)

	mock.ExpectClose()
	assert.NoError(t, s.Close())

	// Second close is a no-op
	assert.NoError(t, s.Close())

	// Queries after close surface the programmer error immediately
	_, err = s.Query(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, ErrNotConnected)
}
