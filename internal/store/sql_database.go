package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// WithinTx runs fn inside a single database transaction. The transaction is
// committed only if fn returns nil; any error from fn rolls everything back,
// so a multi-table mutation is applied atomically or not at all. No read
// outside the transaction ever observes a partially-applied fn.
func (db *DB) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Err(rbErr).Str("func", "DB.WithinTx").Msg("rollback failed")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
