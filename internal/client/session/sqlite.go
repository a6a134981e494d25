package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/repositories/metadata"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/dbx"
)

// SQLiteStore keeps the session in the metadata table of the local
// database. The token and its start time are written and removed together.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Get(ctx context.Context) (Token, bool, error) {
	raw, found, err := metadata.NewSQLiteRepository(s.db).Get(ctx, TokenKey)
	if err != nil || !found {
		return "", false, err
	}
	return decodeToken(raw)
}

func (s *SQLiteStore) Set(ctx context.Context, token Token) error {
	raw, err := encodeToken(token)
	if err != nil {
		return err
	}
	started := s.now().UTC().Format(time.RFC3339)

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, raw); err != nil {
			return err
		}
		return repo.Set(ctx, StartedKey, []byte(started))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, StartedKey)
	})
}

// StartedAt returns when the current token was stored. ok is false when no
// session exists or the timestamp is unreadable.
func (s *SQLiteStore) StartedAt(ctx context.Context) (time.Time, bool, error) {
	raw, found, err := metadata.NewSQLiteRepository(s.db).Get(ctx, StartedKey)
	if err != nil || !found {
		return time.Time{}, false, err
	}
	t, perr := time.Parse(time.RFC3339, string(raw))
	if perr != nil {
		return time.Time{}, false, nil
	}
	return t, true, nil
}
