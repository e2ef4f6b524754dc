package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/models"
)

const cardColumns = "id, note_id, due_at, interval_days, ease, reps, lapses, status, updated_at"

func scanCard(row interface{ Scan(dest ...any) error }) (models.Card, error) {
	var c models.Card
	err := row.Scan(&c.ID, &c.NoteID, &c.DueAt, &c.IntervalDays, &c.Ease, &c.Reps, &c.Lapses, &c.Status, &c.UpdatedAt)
	return c, err
}

func (l *localRepository) UpsertCards(ctx context.Context, items []models.Card) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, c := range items {
			if c.Deleted {
				if _, execErr := tx.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", c.ID); execErr != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
				}
				continue
			}

			query, args, buildErr := qb.Insert("cards").
				Columns("id", "note_id", "due_at", "interval_days", "ease", "reps", "lapses", "status", "updated_at").
				Values(c.ID, c.NoteID, c.DueAt, c.IntervalDays, c.Ease, c.Reps, c.Lapses, c.Status, c.UpdatedAt).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					note_id = excluded.note_id,
					due_at = excluded.due_at,
					interval_days = excluded.interval_days,
					ease = excluded.ease,
					reps = excluded.reps,
					lapses = excluded.lapses,
					status = excluded.status,
					updated_at = excluded.updated_at`).
				ToSql()
			if buildErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			}
			if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localRepository.UpsertCards").
			Int("items", len(items)).
			Msg("failed to upsert cards")
		return 0, fmt.Errorf("failed to upsert cards: %w", err)
	}

	return len(items), nil
}

func (l *localRepository) GetCard(ctx context.Context, id int64) (models.Card, error) {
	row := l.DB.QueryRowContext(ctx, "SELECT "+cardColumns+" FROM cards WHERE id = ?", id)
	c, err := scanCard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrRecordNotFound
		}
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return c, nil
}

func (l *localRepository) CardsByNote(ctx context.Context, noteID int64) ([]models.Card, error) {
	query, args, err := qb.Select(cardColumns).
		From("cards").
		Where(sq.Eq{"note_id": noteID}).
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

	var items []models.Card
	for rows.Next() {
		c, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", rowsErr)
	}

	return items, nil
}

func (l *localRepository) NextDueCards(ctx context.Context, deckID int64, limit int) ([]models.StudyCard, error) {
	if limit <= 0 {
		limit = 2
	}

	query, args, err := qb.Select("c.id", "c.note_id", "n.front", "n.back", "n.reading", "n.pos", "n.examples", "c.due_at").
		From("cards c").
		Join("notes n ON n.id = c.note_id").
		Where(sq.Eq{"n.deck_id": deckID}).
		OrderBy("c.due_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.StudyCard
	for rows.Next() {
		var s models.StudyCard
		if scanErr := rows.Scan(&s.CardID, &s.NoteID, &s.Front, &s.Back, &s.Reading, &s.Pos, &s.Examples, &s.DueAt); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, s)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating due card rows: %w", rowsErr)
	}

	return items, nil
}

func (l *localRepository) CardDetail(ctx context.Context, cardID int64) (models.CardDetail, error) {
	row := l.DB.QueryRowContext(ctx, `
		SELECT c.id, c.note_id, n.front, n.back, n.reading, n.pos, n.examples, n.tags,
		       c.due_at, c.interval_days, c.ease, c.reps, c.lapses, c.status
		FROM cards c
		JOIN notes n ON n.id = c.note_id
		WHERE c.id = ?`, cardID)

	var d models.CardDetail
	err := row.Scan(&d.CardID, &d.NoteID, &d.Front, &d.Back, &d.Reading, &d.Pos, &d.Examples, &d.Tags,
		&d.DueAt, &d.IntervalDays, &d.Ease, &d.Reps, &d.Lapses, &d.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CardDetail{}, ErrRecordNotFound
		}
		return models.CardDetail{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return d, nil
}

func (l *localRepository) BumpCardDue(ctx context.Context, cardID int64, dueAt int64, updatedAt int64) error {
	query, args, err := qb.Update("cards").
		Set("due_at", dueAt).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": cardID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to bump due for card %d: %w", cardID, err)
	}
	return nil
}
