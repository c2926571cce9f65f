package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/studybananas/internal/db"
)

// NewTestDB opens a fresh SQLite file in a temporary directory with all
// migrations of schema applied.
func NewTestDB(t *testing.T, schema db.Schema) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), string(schema)+".db")
	d, err := db.Open(path, schema)
	require.NoError(t, err)
	return d.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
