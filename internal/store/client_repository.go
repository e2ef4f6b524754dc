package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/memo-sync/internal/logger"
)

// qb is the shared squirrel builder. SQLite uses ? placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type localRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRepository wires a LocalRepository over an open SQLite connection.
func NewLocalRepository(db *DB, logger *logger.Logger) LocalRepository {
	return &localRepository{
		DB:     db,
		logger: logger,
	}
}
