package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/models"
)

func (l *localRepository) AddReviewLog(ctx context.Context, item models.ReviewLog) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := qb.Insert("review_logs").
		Columns("card_id", "rating", "ts", "latency_ms", "uuid", "synced").
		Values(item.CardID, item.Rating, item.Ts, item.LatencyMs, item.UUID, item.Synced).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localRepository.AddReviewLog").
			Int64("card_id", item.CardID).
			Msg("failed to append review log")
		return 0, fmt.Errorf("failed to append review log: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read review log id: %w", err)
	}
	return id, nil
}

func (l *localRepository) PendingReviews(ctx context.Context) ([]models.ReviewLog, error) {
	query, args, err := qb.Select("id", "card_id", "rating", "ts", "latency_ms", "uuid", "synced").
		From("review_logs").
		Where(sq.Eq{"synced": 0}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.ReviewLog
	for rows.Next() {
		var r models.ReviewLog
		if scanErr := rows.Scan(&r.ID, &r.CardID, &r.Rating, &r.Ts, &r.LatencyMs, &r.UUID, &r.Synced); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, r)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating review log rows: %w", rowsErr)
	}

	return items, nil
}

// MarkReviewsSynced flips synced to 1 for the given ids in one transaction.
// The transition is one-way: rows already marked synced are never reset.
func (l *localRepository) MarkReviewsSynced(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := qb.Update("review_logs").
		Set("synced", 1).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localRepository.MarkReviewsSynced").
			Int("ids", len(ids)).
			Msg("failed to mark reviews synced")
		return fmt.Errorf("failed to mark reviews synced: %w", err)
	}

	return nil
}

// TodayReviewCount scans review logs in [dayStart, dayEnd] and, when a deck
// is given, restricts them via an app-side card->deck join.
func (l *localRepository) TodayReviewCount(ctx context.Context, deckID int64, dayStart int64, dayEnd int64) (int, error) {
	rows, err := l.DB.QueryContext(ctx, "SELECT card_id FROM review_logs WHERE ts >= ? AND ts <= ?", dayStart, dayEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	var cardIDs []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			rows.Close()
			return 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		cardIDs = append(cardIDs, id)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating review log rows: %w", err)
	}

	if deckID <= 0 {
		return len(cardIDs), nil
	}

	deckCards := make(map[int64]bool)
	rows, err = l.DB.QueryContext(ctx, `
		SELECT c.id FROM cards c
		JOIN notes n ON n.id = c.note_id
		WHERE n.deck_id = ?`, deckID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			rows.Close()
			return 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		deckCards[id] = true
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating deck card rows: %w", err)
	}

	count := 0
	for _, id := range cardIDs {
		if deckCards[id] {
			count++
		}
	}
	return count, nil
}
