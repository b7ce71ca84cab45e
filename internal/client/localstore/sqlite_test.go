package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestGet_MissingKeyIsNotAnError(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), KeyAuthToken)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, "tok-1"))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, "tok-1", v)

	// Upsert overwrites.
	require.NoError(t, s.Set(ctx, KeyAuthToken, "tok-2"))
	v, err = s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, "tok-2", v)
}

func TestDelete_RemovesKey(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAuthToken, "tok"))
	require.NoError(t, s.Delete(ctx, KeyAuthToken))

	v, err := s.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	require.Empty(t, v)

	// Deleting a missing key is fine.
	require.NoError(t, s.Delete(ctx, KeyAuthToken))
}

func TestSaveAccount_WritesAllKeys(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	acc := Account{Token: "tok", Username: "alice", Email: "alice@example.com"}
	require.NoError(t, s.SaveAccount(ctx, acc))

	token, err := Token(ctx, s)
	require.NoError(t, err)
	require.Equal(t, "tok", token)

	name, err := s.Get(ctx, KeyAccountUsername)
	require.NoError(t, err)
	require.Equal(t, "alice", name)

	email, err := s.Get(ctx, KeyAccountEmail)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)
}

func TestClear_WipesEverything(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAccount(ctx, Account{Token: "tok", Username: "alice"}))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyAuthToken, KeyAccountUsername, KeyAccountEmail} {
		v, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.Empty(t, v, "key %s should be gone", key)
	}
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := "file:reinit?mode=memory&cache=shared"

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Re-running migrations against the same database must be a no-op.
	db2, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })
}
