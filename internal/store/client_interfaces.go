package store

import (
	"context"

	"github.com/MKhiriev/memo-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalRepository is the low-level local flashcard store covering all five
// collections: decks, notes, cards, review logs and key/value settings.
//
// Upsert methods are tombstone-aware: an item whose Deleted flag is set
// removes the local row instead of storing it. Every Upsert* call and every
// multi-table mutation (MarkReviewsSynced, SeedDataset, ClearAllData,
// PurgeInvalidReviewLogs) runs inside a single transaction.
type LocalRepository interface {
	// UpsertDecks applies a remote deck delta by whole-record replacement
	// and returns the number of items processed.
	UpsertDecks(ctx context.Context, items []models.Deck) (int, error)
	// GetDecks returns all local decks.
	GetDecks(ctx context.Context) ([]models.Deck, error)
	// CountDecks returns the deck collection size.
	CountDecks(ctx context.Context) (int, error)
	// UpdateDeckName renames a deck locally.
	UpdateDeckName(ctx context.Context, id int64, name string) error
	// DeleteDeckCascade removes a deck together with its notes and their
	// cards.
	DeleteDeckCascade(ctx context.Context, id int64) error
	// DeckSummaries returns every deck joined with note/card/due counters.
	// Cards with due_at <= now count as due.
	DeckSummaries(ctx context.Context, now int64) ([]models.DeckSummary, error)

	// UpsertNotes applies a remote note delta by whole-record replacement.
	UpsertNotes(ctx context.Context, items []models.Note) (int, error)
	// GetNote returns a single note or ErrRecordNotFound.
	GetNote(ctx context.Context, id int64) (models.Note, error)
	// NotesByDeck returns all notes referencing the deck.
	NotesByDeck(ctx context.Context, deckID int64) ([]models.Note, error)
	// UpdateNote applies a partial local edit and stamps updated_at.
	UpdateNote(ctx context.Context, id int64, patch models.NotePatch, updatedAt int64) error
	// DeleteNoteCascade removes a note together with its cards.
	DeleteNoteCascade(ctx context.Context, id int64) error

	// UpsertCards applies a remote card delta by whole-record replacement.
	UpsertCards(ctx context.Context, items []models.Card) (int, error)
	// GetCard returns a single card or ErrRecordNotFound.
	GetCard(ctx context.Context, id int64) (models.Card, error)
	// CardsByNote returns all cards owned by the note. A note may own any
	// number of cards; callers must not assume uniqueness.
	CardsByNote(ctx context.Context, noteID int64) ([]models.Card, error)
	// NextDueCards returns up to limit cards of the deck ordered by due
	// time, joined with their note fields.
	NextDueCards(ctx context.Context, deckID int64, limit int) ([]models.StudyCard, error)
	// CardDetail returns the full card view or ErrRecordNotFound.
	CardDetail(ctx context.Context, cardID int64) (models.CardDetail, error)
	// BumpCardDue sets the card's due and updated timestamps after a local
	// rating.
	BumpCardDue(ctx context.Context, cardID int64, dueAt int64, updatedAt int64) error

	// AddReviewLog appends a review to the outbox and returns its local id.
	AddReviewLog(ctx context.Context, log models.ReviewLog) (int64, error)
	// PendingReviews returns every review log with synced = 0.
	PendingReviews(ctx context.Context) ([]models.ReviewLog, error)
	// MarkReviewsSynced flips synced 0 -> 1 for the given local ids.
	MarkReviewsSynced(ctx context.Context, ids []int64) error
	// TodayReviewCount counts review logs within [dayStart, dayEnd],
	// restricted to the deck when deckID > 0.
	TodayReviewCount(ctx context.Context, deckID int64, dayStart int64, dayEnd int64) (int, error)

	// GetSetting returns the value stored under key or ErrSettingNotFound.
	GetSetting(ctx context.Context, key string) (string, error)
	// PutSetting stores value under key, creating the entry on first write.
	PutSetting(ctx context.Context, key string, value string) error

	// SeedDataset bulk-inserts the demo dataset in one transaction.
	SeedDataset(ctx context.Context, decks []models.Deck, notes []models.Note, cards []models.Card) error
	// ClearAllData wipes all four entity collections, resets the watermark
	// to 0 and records the mock-clear completion flags, atomically.
	ClearAllData(ctx context.Context) error
	// PurgeInvalidReviewLogs deletes review logs with card_id <= 0 and
	// records the completion flag plus the deleted count, atomically.
	// Returns the number of rows removed.
	PurgeInvalidReviewLogs(ctx context.Context) (int, error)
	// LocalCounts returns collection sizes plus the current watermark.
	LocalCounts(ctx context.Context) (models.LocalCounts, error)
}
