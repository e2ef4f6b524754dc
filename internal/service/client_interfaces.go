package service

import (
	"context"

	"github.com/MKhiriev/memo-sync/models"
)

// PairingService owns the association between this client and one remote
// endpoint. Pairing state lives in two tiers: the settings collection of the
// local store (primary) and a JSON mirror file next to the database
// (fallback). Save writes both; Get read-repairs the primary from the mirror
// so a primary-store initialization race at boot cannot lose pairing state.
type PairingService interface {
	// Get returns the current pairing config. Missing fields are looked up
	// in the mirror file and, when found there, written back to the primary
	// tier. An unpaired client gets a zero config, not an error.
	Get(ctx context.Context) (models.PairingConfig, error)

	// Save persists the pairing config to both tiers. A mirror write
	// failure is logged, never fatal.
	Save(ctx context.Context, cfg models.PairingConfig) error

	// Pair verifies the token against the remote, persists the config and
	// points the server adapter at the new endpoint. Returns
	// ErrPairingRejected when the server does not accept the token.
	Pair(ctx context.Context, serverURL string, token string) error

	// GetServerID returns the stored remote identity fingerprint, or ""
	// when none has been seen yet.
	GetServerID(ctx context.Context) (string, error)

	// SetServerID stores the remote identity fingerprint.
	SetServerID(ctx context.Context, id string) error

	// GetLastSyncTs returns the reconciliation watermark in Unix
	// milliseconds, 0 when no sync has completed yet.
	GetLastSyncTs(ctx context.Context) (int64, error)

	// SetLastSyncTs advances the watermark.
	SetLastSyncTs(ctx context.Context, ts int64) error

	// FullRefresh resets the watermark to 0 so the next sync behaves as an
	// initial full pull.
	FullRefresh(ctx context.Context) error

	// GetDailyTarget returns the user's daily review goal, falling back to
	// models.DefaultDailyTarget when unset or unparseable.
	GetDailyTarget(ctx context.Context) (int, error)
}

// ClientSyncService runs the reconciliation protocol against the paired
// remote.
type ClientSyncService interface {
	// SyncNow executes one full sync cycle: it collects the pending review
	// outbox, tries the unified sync endpoint first and falls back to the
	// legacy three-call protocol when the unified request fails. At most one
	// cycle is in flight at any time; concurrent callers serialize.
	// Returns ErrNotPaired without any I/O when no endpoint is configured.
	SyncNow(ctx context.Context) (models.SyncCounts, error)
}

// ClientSyncJob is the background scheduler driving ClientSyncService with
// adaptive backoff. It is a self-rescheduling timer, not a fixed interval:
// each cycle completes before the next delay is armed, so runs never
// overlap.
type ClientSyncJob interface {
	// Start launches the scheduler goroutine with the short initial delay.
	// Any previously running job is stopped first. The goroutine exits when
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop signals the scheduler to exit and blocks until it has fully
	// terminated. Safe to call when the job is not running.
	Stop()

	// TriggerNow asks the scheduler to cancel its pending timer and re-arm
	// the short delay, regardless of the current backoff state. reason is a
	// label for the log ("online", "visible", "manual"). An in-flight cycle
	// always completes first; triggers never start a second one.
	TriggerNow(reason string)
}

// MaintenanceService runs the idempotent, flag-gated one-time jobs executed
// at boot. Callers log and swallow errors: a maintenance failure never
// blocks the application from starting.
type MaintenanceService interface {
	// CleanupLegacyReviewLogs deletes review logs with a non-positive
	// card id once, records the deleted count and never repeats. Returns
	// the number of rows removed (0 on repeat runs).
	CleanupLegacyReviewLogs(ctx context.Context) (int, error)

	// SeedMockData inserts the fixed demo dataset iff no server URL is
	// configured and the deck collection is empty. Reports whether it
	// seeded.
	SeedMockData(ctx context.Context) (bool, error)

	// ClearMockAfterPairing wipes all entity collections once a real sync
	// has completed while mock data was still present, and resets the
	// watermark so the next cycle performs a full pull. Reports whether it
	// cleared.
	ClearMockAfterPairing(ctx context.Context) (bool, error)

	// CheckServerIdentity fetches the remote identity fingerprint and, when
	// it differs from the stored one, forces a full refresh plus an
	// immediate sync before persisting the new fingerprint. Reports whether
	// a mismatch was handled.
	CheckServerIdentity(ctx context.Context) (bool, error)
}

// ClientStudyService covers the local review loop: picking due cards,
// recording ratings into the outbox and tracking daily progress.
type ClientStudyService interface {
	// NextDue returns up to limit due cards of the deck joined with their
	// note fields, soonest due first.
	NextDue(ctx context.Context, deckID int64, limit int) ([]models.StudyCard, error)

	// RecordReview validates the rating, appends a review log to the outbox
	// and bumps the card's local due time. Returns the new log's local id.
	// Rejects anything outside the closed rating enum with
	// models.ErrInvalidRating.
	RecordReview(ctx context.Context, cardID int64, rating string, latencyMs *int64) (int64, error)

	// CardDetail returns the full card view for the detail screen.
	CardDetail(ctx context.Context, cardID int64) (models.CardDetail, error)

	// TodayProgress returns today's completed review count for the deck
	// (all decks when deckID <= 0) together with the daily target.
	TodayProgress(ctx context.Context, deckID int64) (done int, target int, err error)
}

// ClientCatalogService covers local browsing and editing of the flashcard
// catalog.
type ClientCatalogService interface {
	// DeckSummaries lists every deck with its note, card and due counters.
	DeckSummaries(ctx context.Context) ([]models.DeckSummary, error)

	// NotesByDeck lists the notes of one deck.
	NotesByDeck(ctx context.Context, deckID int64) ([]models.Note, error)

	// UpdateNote applies a partial local edit and stamps the note's
	// updated time.
	UpdateNote(ctx context.Context, id int64, patch models.NotePatch) error

	// DeleteNote removes a note together with its cards.
	DeleteNote(ctx context.Context, id int64) error

	// RenameDeck changes a deck's name locally.
	RenameDeck(ctx context.Context, id int64, name string) error

	// DeleteDeck removes a deck together with its notes and their cards.
	DeleteDeck(ctx context.Context, id int64) error

	// LocalCounts returns collection sizes plus the current watermark.
	LocalCounts(ctx context.Context) (models.LocalCounts, error)
}
