package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/models"
)

func (l *localRepository) SeedDataset(ctx context.Context, decks []models.Deck, notes []models.Note, cards []models.Card) error {
	log := logger.FromContext(ctx)

	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, d := range decks {
			if _, execErr := tx.ExecContext(ctx, "INSERT INTO decks (id, name) VALUES (?, ?)", d.ID, d.Name); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		for _, n := range notes {
			if _, execErr := tx.ExecContext(ctx,
				"INSERT INTO notes (id, deck_id, front, back, reading, pos, examples, tags, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
				n.ID, n.DeckID, n.Front, n.Back, n.Reading, n.Pos, n.Examples, n.Tags, n.UpdatedAt); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		for _, c := range cards {
			if _, execErr := tx.ExecContext(ctx,
				"INSERT INTO cards (id, note_id, due_at, interval_days, ease, reps, lapses, status, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
				c.ID, c.NoteID, c.DueAt, c.IntervalDays, c.Ease, c.Reps, c.Lapses, c.Status, c.UpdatedAt); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localRepository.SeedDataset").Msg("failed to seed demo dataset")
		return fmt.Errorf("failed to seed demo dataset: %w", err)
	}

	return nil
}

// ClearAllData wipes the four entity collections and flips the mock flags in
// one transaction, so a crash mid-clear can never leave half a dataset
// behind. The watermark reset forces the next sync to run a full pull.
func (l *localRepository) ClearAllData(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"decks", "notes", "cards", "review_logs"} {
			if _, execErr := tx.ExecContext(ctx, "DELETE FROM "+table); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}

		settings := [][2]string{
			{models.SettingMockSeeded, "0"},
			{models.SettingMockClearDone, "1"},
			{models.SettingLastSyncTs, "0"},
		}
		for _, kv := range settings {
			if _, execErr := tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value",
				kv[0], kv[1]); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localRepository.ClearAllData").Msg("failed to clear local data")
		return fmt.Errorf("failed to clear local data: %w", err)
	}

	return nil
}

// PurgeInvalidReviewLogs removes corrupt outbox rows (card_id <= 0) and
// records completion in the same transaction, so the scan runs exactly once
// even if the process dies right after the delete.
func (l *localRepository) PurgeInvalidReviewLogs(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var deleted int64
	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, "DELETE FROM review_logs WHERE card_id <= 0")
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		deleted, execErr = res.RowsAffected()
		if execErr != nil {
			return fmt.Errorf("failed to read deleted row count: %w", execErr)
		}

		settings := [][2]string{
			{models.SettingCleanupV1Done, "1"},
			{models.SettingCleanupV1Deleted, strconv.FormatInt(deleted, 10)},
		}
		for _, kv := range settings {
			if _, execErr := tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value",
				kv[0], kv[1]); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localRepository.PurgeInvalidReviewLogs").Msg("failed to purge invalid review logs")
		return 0, fmt.Errorf("failed to purge invalid review logs: %w", err)
	}

	return int(deleted), nil
}

func (l *localRepository) LocalCounts(ctx context.Context) (models.LocalCounts, error) {
	var counts models.LocalCounts

	for _, q := range []struct {
		table string
		dst   *int
	}{
		{"decks", &counts.Decks},
		{"notes", &counts.Notes},
		{"cards", &counts.Cards},
	} {
		if err := l.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.table).Scan(q.dst); err != nil {
			return models.LocalCounts{}, fmt.Errorf("failed to count %s: %w", q.table, err)
		}
	}

	raw, err := l.GetSetting(ctx, models.SettingLastSyncTs)
	if err == nil {
		if ts, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			counts.LastSyncTs = ts
		}
	}

	return counts, nil
}
