package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "console.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO client_state (key, value) VALUES ('k', x'01')`)
	require.NoError(t, err)
}

func TestOpen_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "console.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening an already-migrated database applies nothing and succeeds
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
