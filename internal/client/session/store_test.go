package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func rawValue(t *testing.T, db *sql.DB, key string) (string, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return string(v), true
}

// stores runs the shared contract against both implementations.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": NewSQLiteStore(setupDB(t)),
		"memory": NewMemoryStore(),
	}
}

func TestStore_EmptyIsUnauthenticated(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			tok, ok, err := s.Get(context.Background())
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, tok)
		})
	}
}

func TestStore_SetGetClear(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, "abc123"))
			tok, ok, err := s.Get(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, Token("abc123"), tok)

			require.NoError(t, s.Set(ctx, "def456"))
			tok, _, err = s.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, Token("def456"), tok)

			require.NoError(t, s.Clear(ctx))
			_, ok, err = s.Get(ctx)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Clear(ctx), "clearing twice is fine")
		})
	}
}

func TestStore_RejectsEmptyToken(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, s.Set(context.Background(), ""), ErrEmptyToken)
		})
	}
}

func TestSQLiteStore_PersistsJSONEncodedToken(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, s.Set(context.Background(), "abc123"))

	v, ok := rawValue(t, db, TokenKey)
	require.True(t, ok)
	assert.Equal(t, `"abc123"`, v)

	started, ok := rawValue(t, db, StartedKey)
	require.True(t, ok)
	assert.Equal(t, "2024-05-01T12:00:00Z", started)

	at, ok, err := s.StartedAt(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, at.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}

func TestSQLiteStore_ClearRemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "abc123"))
	require.NoError(t, s.Clear(ctx))

	_, ok := rawValue(t, db, TokenKey)
	assert.False(t, ok)
	_, ok = rawValue(t, db, StartedKey)
	assert.False(t, ok)

	_, ok, err := s.StartedAt(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_NullValueIsAbsent(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES (?, ?)`, TokenKey, []byte("null"))
	require.NoError(t, err)

	_, ok, err := NewSQLiteStore(db).Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_GarbageValueIsError(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES (?, ?)`, TokenKey, []byte("abc123"))
	require.NoError(t, err)

	_, ok, err := NewSQLiteStore(db).Get(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_ClosedDB(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	require.NoError(t, db.Close())

	_, _, err := s.Get(context.Background())
	require.Error(t, err)
	require.Error(t, s.Set(context.Background(), "abc"))
	require.Error(t, s.Clear(context.Background()))
}

func TestMemoryStore_NullValueIsAbsent(t *testing.T) {
	m := NewMemoryStore()
	m.SetRaw([]byte("null"))

	_, ok, err := m.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
