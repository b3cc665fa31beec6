package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const (
	userKey  = "notes_user"
	tokenKey = "notes_token"
)

func metadataDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	return db
}

func put(ctx context.Context, tx DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES (?, ?)`, key, []byte(value))
	return err
}

func storedKeys(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query(`SELECT key FROM metadata ORDER BY key`)
	require.NoError(t, err)
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		keys = append(keys, k)
	}
	require.NoError(t, rows.Err())
	return keys
}

func TestWithTx_CommitsSessionPair(t *testing.T) {
	db := metadataDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := put(ctx, tx, userKey, `{"username":"bob"}`); err != nil {
			return err
		}
		return put(ctx, tx, tokenKey, "zzz123")
	})
	require.NoError(t, err)

	assert.Equal(t, []string{tokenKey, userKey}, storedKeys(t, db))
	var tok []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, tokenKey).Scan(&tok))
	assert.Equal(t, "zzz123", string(tok))
}

func TestWithTx_FailedTokenWriteDropsUser(t *testing.T) {
	db := metadataDB(t)
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES (?, ?)`, tokenKey, []byte("old"))
	require.NoError(t, err)

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := put(ctx, tx, userKey, `{"username":"bob"}`); err != nil {
			return err
		}
		return put(ctx, tx, tokenKey, "new")
	})
	require.Error(t, err, "duplicate key must fail the transaction")

	assert.Equal(t, []string{tokenKey}, storedKeys(t, db))
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := metadataDB(t)

	assert.PanicsWithValue(t, "encode user", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, put(ctx, tx, userKey, "{}"))
			panic("encode user")
		})
	})
	assert.Empty(t, storedKeys(t, db))
}

func TestWithTx_BeginAndCommitErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errBegin := errors.New("database is locked")
	mock.ExpectBegin().WillReturnError(errBegin)

	called := false
	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, errBegin)
	assert.False(t, called)

	errCommit := errors.New("disk I/O error")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).
		WithArgs(tokenKey, []byte("zzz123")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errCommit)

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return put(ctx, tx, tokenKey, "zzz123")
	})
	require.ErrorIs(t, err, errCommit)
	require.NoError(t, mock.ExpectationsWereMet())
}
