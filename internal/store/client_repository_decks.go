package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/models"
)

func (l *localRepository) UpsertDecks(ctx context.Context, items []models.Deck) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, d := range items {
			if d.Deleted {
				query, args, buildErr := qb.Delete("decks").Where(sq.Eq{"id": d.ID}).ToSql()
				if buildErr != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
				}
				if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
				}
				continue
			}

			query, args, buildErr := qb.Insert("decks").
				Columns("id", "name").
				Values(d.ID, d.Name).
				Suffix("ON CONFLICT (id) DO UPDATE SET name = excluded.name").
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
			Str("func", "localRepository.UpsertDecks").
			Int("items", len(items)).
			Msg("failed to upsert decks")
		return 0, fmt.Errorf("failed to upsert decks: %w", err)
	}

	return len(items), nil
}

func (l *localRepository) GetDecks(ctx context.Context) ([]models.Deck, error) {
	query, args, err := qb.Select("id", "name").From("decks").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Deck
	for rows.Next() {
		var d models.Deck
		if scanErr := rows.Scan(&d.ID, &d.Name); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, d)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating deck rows: %w", rowsErr)
	}

	return items, nil
}

func (l *localRepository) CountDecks(ctx context.Context) (int, error) {
	var count int
	err := l.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM decks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count decks: %w", err)
	}
	return count, nil
}

func (l *localRepository) UpdateDeckName(ctx context.Context, id int64, name string) error {
	query, args, err := qb.Update("decks").Set("name", name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to rename deck %d: %w", id, err)
	}
	return nil
}

// DeleteDeckCascade removes the deck, its notes and the cards of those notes
// in one transaction. Review logs are kept: they reference cards by id only
// and dangling references are tolerated by design.
func (l *localRepository) DeleteDeckCascade(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := l.DB.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx,
			"DELETE FROM cards WHERE note_id IN (SELECT id FROM notes WHERE deck_id = ?)", id); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if _, execErr := tx.ExecContext(ctx, "DELETE FROM notes WHERE deck_id = ?", id); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if _, execErr := tx.ExecContext(ctx, "DELETE FROM decks WHERE id = ?", id); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localRepository.DeleteDeckCascade").
			Int64("deck_id", id).
			Msg("failed to delete deck")
		return fmt.Errorf("failed to delete deck %d: %w", id, err)
	}

	return nil
}

// DeckSummaries scans the three entity collections once each and joins them
// in application logic. Fine at personal-dataset scale.
func (l *localRepository) DeckSummaries(ctx context.Context, now int64) ([]models.DeckSummary, error) {
	decks, err := l.GetDecks(ctx)
	if err != nil {
		return nil, err
	}

	noteDeck := make(map[int64]int64) // note id -> deck id
	rows, err := l.DB.QueryContext(ctx, "SELECT id, deck_id FROM notes")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	for rows.Next() {
		var noteID, deckID int64
		if scanErr := rows.Scan(&noteID, &deckID); scanErr != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		noteDeck[noteID] = deckID
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	type cardAgg struct{ cards, due int }
	perDeck := make(map[int64]*cardAgg)
	notesPerDeck := make(map[int64]int)
	for _, deckID := range noteDeck {
		notesPerDeck[deckID]++
	}

	rows, err = l.DB.QueryContext(ctx, "SELECT note_id, due_at FROM cards")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	for rows.Next() {
		var noteID, dueAt int64
		if scanErr := rows.Scan(&noteID, &dueAt); scanErr != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		deckID, ok := noteDeck[noteID]
		if !ok {
			continue // dangling card, tolerated
		}
		agg := perDeck[deckID]
		if agg == nil {
			agg = &cardAgg{}
			perDeck[deckID] = agg
		}
		agg.cards++
		if dueAt > 0 && dueAt <= now {
			agg.due++
		}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}

	out := make([]models.DeckSummary, 0, len(decks))
	for _, d := range decks {
		s := models.DeckSummary{ID: d.ID, Name: d.Name, NotesCount: notesPerDeck[d.ID]}
		if agg := perDeck[d.ID]; agg != nil {
			s.CardsCount = agg.cards
			s.DueCount = agg.due
		}
		out = append(out, s)
	}

	return out, nil
}
