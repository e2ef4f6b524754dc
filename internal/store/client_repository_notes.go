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

const noteColumns = "id, deck_id, front, back, reading, pos, examples, tags, updated_at"

func scanNote(row interface{ Scan(dest ...any) error }) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.DeckID, &n.Front, &n.Back, &n.Reading, &n.Pos, &n.Examples, &n.Tags, &n.UpdatedAt)
	return n, err
}

func (l *localRepository) UpsertNotes(ctx context.Context, items []models.Note) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, n := range items {
			if n.Deleted {
				if _, execErr := tx.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", n.ID); execErr != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
				}
				continue
			}

			query, args, buildErr := qb.Insert("notes").
				Columns("id", "deck_id", "front", "back", "reading", "pos", "examples", "tags", "updated_at").
				Values(n.ID, n.DeckID, n.Front, n.Back, n.Reading, n.Pos, n.Examples, n.Tags, n.UpdatedAt).
				Suffix(`ON CONFLICT (id) DO UPDATE SET
					deck_id = excluded.deck_id,
					front = excluded.front,
					back = excluded.back,
					reading = excluded.reading,
					pos = excluded.pos,
					examples = excluded.examples,
					tags = excluded.tags,
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
			Str("func", "localRepository.UpsertNotes").
			Int("items", len(items)).
			Msg("failed to upsert notes")
		return 0, fmt.Errorf("failed to upsert notes: %w", err)
	}

	return len(items), nil
}

func (l *localRepository) GetNote(ctx context.Context, id int64) (models.Note, error) {
	row := l.DB.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM notes WHERE id = ?", id)
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrRecordNotFound
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return n, nil
}

func (l *localRepository) NotesByDeck(ctx context.Context, deckID int64) ([]models.Note, error) {
	query, args, err := qb.Select(noteColumns).
		From("notes").
		Where(sq.Eq{"deck_id": deckID}).
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

	var items []models.Note
	for rows.Next() {
		n, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, n)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", rowsErr)
	}

	return items, nil
}

func (l *localRepository) UpdateNote(ctx context.Context, id int64, patch models.NotePatch, updatedAt int64) error {
	b := qb.Update("notes").Set("updated_at", updatedAt)
	if patch.Front != nil {
		b = b.Set("front", *patch.Front)
	}
	if patch.Back != nil {
		b = b.Set("back", *patch.Back)
	}
	if patch.Reading != nil {
		b = b.Set("reading", *patch.Reading)
	}
	if patch.Pos != nil {
		b = b.Set("pos", *patch.Pos)
	}
	if patch.Examples != nil {
		b = b.Set("examples", *patch.Examples)
	}
	if patch.Tags != nil {
		b = b.Set("tags", *patch.Tags)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update note %d: %w", id, err)
	}
	return nil
}

func (l *localRepository) DeleteNoteCascade(ctx context.Context, id int64) error {
	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, "DELETE FROM cards WHERE note_id = ?", id); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if _, execErr := tx.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	return nil
}
