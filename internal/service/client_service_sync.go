package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/memo-sync/internal/adapter"
	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/internal/store"
	"github.com/MKhiriev/memo-sync/models"
)

type clientSyncService struct {
	local   store.LocalRepository
	adapter adapter.ServerAdapter
	pairing PairingService

	// mu is the single-flight guard: at most one cycle in flight across
	// all call sites (scheduler, boot, manual trigger).
	mu sync.Mutex

	now func() int64
}

// NewClientSyncService builds the reconciliation engine over the local
// store, the server adapter and the pairing state.
func NewClientSyncService(local store.LocalRepository, serverAdapter adapter.ServerAdapter, pairing PairingService) ClientSyncService {
	return &clientSyncService{
		local:   local,
		adapter: serverAdapter,
		pairing: pairing,
		now:     func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *clientSyncService) SyncNow(ctx context.Context) (models.SyncCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	cfg, err := s.pairing.Get(ctx)
	if err != nil {
		return models.SyncCounts{}, fmt.Errorf("load pairing config: %w", err)
	}
	if !cfg.Paired() {
		return models.SyncCounts{}, ErrNotPaired
	}
	s.adapter.SetEndpoint(cfg.ServerURL, cfg.Token)

	// Captured before any request so the fallback watermark never skips
	// past records modified during the cycle.
	startedAt := s.now()

	since, err := s.pairing.GetLastSyncTs(ctx)
	if err != nil {
		return models.SyncCounts{}, fmt.Errorf("load watermark: %w", err)
	}

	uploads, ids, err := s.collectOutbox(ctx)
	if err != nil {
		return models.SyncCounts{}, err
	}

	resp, unifiedErr := s.adapter.PostSync(ctx, models.SyncRequest{
		LastSyncTimestamp: since,
		ReviewLogs:        uploads,
	})
	if unifiedErr == nil && resp.SyncTimestamp <= 0 {
		// Legacy servers answer the unified route with a decodable but
		// empty body. Taking it as success would wipe the watermark and
		// mark the outbox synced against a server that never stored it.
		unifiedErr = errMalformedSyncResponse
	}
	if unifiedErr == nil {
		counts, err := s.applyDelta(ctx, resp.Data)
		if err != nil {
			return models.SyncCounts{}, err
		}
		if err = s.markSynced(ctx, ids); err != nil {
			return models.SyncCounts{}, err
		}
		if err = s.pairing.SetLastSyncTs(ctx, resp.SyncTimestamp); err != nil {
			return models.SyncCounts{}, fmt.Errorf("advance watermark: %w", err)
		}
		counts.Pushed = len(uploads)
		return counts, nil
	}

	log.Warn().Err(unifiedErr).
		Str("func", "clientSyncService.SyncNow").
		Msg("unified sync failed, falling back to legacy protocol")

	return s.legacySync(ctx, since, startedAt, uploads, ids)
}

// legacySync runs the three-call protocol for servers without the unified
// endpoint: full deck list, notes and cards since the watermark, plus a
// separate outbox push. Its watermark is the local clock captured at cycle
// start, a known approximation against clock skew.
func (s *clientSyncService) legacySync(ctx context.Context, since int64, startedAt int64, uploads []models.ReviewUpload, ids []int64) (models.SyncCounts, error) {
	var counts models.SyncCounts

	decks, err := s.adapter.FetchDecks(ctx)
	if err != nil {
		return models.SyncCounts{}, fmt.Errorf("fetch decks: %w", err)
	}
	if counts.Decks, err = s.local.UpsertDecks(ctx, decks); err != nil {
		return models.SyncCounts{}, fmt.Errorf("apply decks: %w", err)
	}

	notes, err := s.adapter.FetchNotes(ctx, since)
	if err != nil {
		return models.SyncCounts{}, fmt.Errorf("fetch notes: %w", err)
	}
	if counts.Notes, err = s.local.UpsertNotes(ctx, notes); err != nil {
		return models.SyncCounts{}, fmt.Errorf("apply notes: %w", err)
	}

	cards, err := s.adapter.FetchCards(ctx, since)
	if err != nil {
		return models.SyncCounts{}, fmt.Errorf("fetch cards: %w", err)
	}
	if counts.Cards, err = s.local.UpsertCards(ctx, cards); err != nil {
		return models.SyncCounts{}, fmt.Errorf("apply cards: %w", err)
	}

	if len(uploads) > 0 {
		pushes := make([]models.ReviewPush, 0, len(uploads))
		for _, u := range uploads {
			pushes = append(pushes, models.ReviewPush{
				CardID:    u.CardID,
				Rating:    u.Rating,
				Ts:        u.ReviewedAt,
				LatencyMs: u.LatencyMs,
				UUID:      u.UUID,
			})
		}

		ack, err := s.adapter.PostReviews(ctx, pushes)
		if err != nil {
			return models.SyncCounts{}, fmt.Errorf("push reviews: %w", err)
		}
		if ack.OK {
			if err = s.markSynced(ctx, ids); err != nil {
				return models.SyncCounts{}, err
			}

			// The server's processed count wins; an ack without one falls
			// back to the local pending count.
			counts.Pushed = ack.Processed
			if counts.Pushed <= 0 {
				counts.Pushed = len(uploads)
			}
		} else {
			// synced never flips back, so an unacknowledged batch stays
			// pending for the next cycle instead of being marked off.
			logger.FromContext(ctx).Warn().
				Str("func", "clientSyncService.legacySync").
				Int("pending", len(uploads)).
				Msg("server did not acknowledge review batch, keeping outbox pending")
		}
	}

	if err = s.pairing.SetLastSyncTs(ctx, startedAt); err != nil {
		return models.SyncCounts{}, fmt.Errorf("advance watermark: %w", err)
	}
	return counts, nil
}

// collectOutbox loads the pending reviews and prepares the wire payload:
// corrupt rows (non-positive card id) are excluded silently, rows whose
// stored rating cannot be normalized are skipped with a warning. Neither is
// deleted here.
func (s *clientSyncService) collectOutbox(ctx context.Context) ([]models.ReviewUpload, []int64, error) {
	pending, err := s.local.PendingReviews(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load pending reviews: %w", err)
	}

	uploads := make([]models.ReviewUpload, 0, len(pending))
	ids := make([]int64, 0, len(pending))
	for _, r := range pending {
		if r.CardID <= 0 {
			continue
		}

		rating, err := models.NormalizeRating(r.Rating)
		if err != nil {
			logger.FromContext(ctx).Warn().
				Str("func", "clientSyncService.collectOutbox").
				Int64("id", r.ID).
				Str("rating", r.Rating).
				Msg("skipping review log with unparseable rating")
			continue
		}

		uploads = append(uploads, models.ReviewUpload{
			CardID:     r.CardID,
			Rating:     rating,
			ReviewedAt: r.Ts,
			LatencyMs:  r.LatencyMs,
			UUID:       r.UUID,
		})
		ids = append(ids, r.ID)
	}
	return uploads, ids, nil
}

func (s *clientSyncService) applyDelta(ctx context.Context, delta models.SyncDelta) (models.SyncCounts, error) {
	var counts models.SyncCounts
	var err error

	if counts.Decks, err = s.local.UpsertDecks(ctx, delta.Decks); err != nil {
		return models.SyncCounts{}, fmt.Errorf("apply decks: %w", err)
	}
	if counts.Notes, err = s.local.UpsertNotes(ctx, delta.Notes); err != nil {
		return models.SyncCounts{}, fmt.Errorf("apply notes: %w", err)
	}
	if counts.Cards, err = s.local.UpsertCards(ctx, delta.Cards); err != nil {
		return models.SyncCounts{}, fmt.Errorf("apply cards: %w", err)
	}
	return counts, nil
}

func (s *clientSyncService) markSynced(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.local.MarkReviewsSynced(ctx, ids); err != nil {
		return fmt.Errorf("mark reviews synced: %w", err)
	}
	return nil
}
