package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n))
	return n
}

func TestTransactionCommits(t *testing.T) {
	db := testDB(t)

	err := Transaction(db, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO users (username, created_at) VALUES (?, ?)", "bob", time.Now().UTC())
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countUsers(t, db))
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := testDB(t)
	boom := errors.New("boom")

	err := Transaction(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO users (username, created_at) VALUES (?, ?)", "bob", time.Now().UTC()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countUsers(t, db))
}

func TestSeedIsAtomic(t *testing.T) {
	db := testDB(t)

	require.NoError(t, Seed(db))
	assert.Equal(t, 1, countUsers(t, db))

	var segs int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM segments").Scan(&segs))
	assert.Equal(t, len(demoSegments), segs)

	// A reseed sees the demo user and leaves everything alone
	require.NoError(t, Seed(db))
	assert.Equal(t, 1, countUsers(t, db))
}
