package credentials

import (
	"context"
	"database/sql"

	"github.com/safetytracker/tracker/internal/common"
	"github.com/safetytracker/tracker/internal/dbx"
)

// Store keeps the single bearer credential under common.CredentialKey.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted credential, or "" when none is stored.
func (s *Store) Load(ctx context.Context) (string, error) {
	return NewSQLiteRepository(s.db).Get(ctx, common.CredentialKey)
}

// Save replaces the persisted credential in one transaction.
func (s *Store) Save(ctx context.Context, credential string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Set(ctx, common.CredentialKey, credential)
	})
}

// Delete removes the persisted credential. Deleting a missing credential is
// not an error.
func (s *Store) Delete(ctx context.Context) error {
	return NewSQLiteRepository(s.db).Delete(ctx, common.CredentialKey)
}
