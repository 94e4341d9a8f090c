package session_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditdost/portal/core/session"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	newStore := func(t *testing.T) (*session.FileStore, string) {
		t.Helper()
		path := filepath.Join(t.TempDir(), ".creditdost", "token.json")
		return session.NewFileStore(path), path
	}

	t.Run("empty store reports ErrNoToken", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t)
		_, err := store.Token(context.Background())
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("round trips a token", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, _ := newStore(t)

		require.NoError(t, store.Save(ctx, "bearer-abc123"))

		token, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "bearer-abc123", token)
	})

	t.Run("save overwrites the previous token", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, _ := newStore(t)

		require.NoError(t, store.Save(ctx, "first"))
		require.NoError(t, store.Save(ctx, "second"))

		token, err := store.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "second", token)
	})

	t.Run("token file is owner-only", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("file modes are not meaningful on windows")
		}

		ctx := context.Background()
		store, path := newStore(t)
		require.NoError(t, store.Save(ctx, "secret"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("clear removes the token and is idempotent", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, _ := newStore(t)

		require.NoError(t, store.Save(ctx, "token"))
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("corrupt file reads as no token", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, path := newStore(t)

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("empty token field reads as no token", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, path := newStore(t)

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(`{"token":""}`), 0o600))

		_, err := store.Token(ctx)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})
}
