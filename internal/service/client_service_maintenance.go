package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/memo-sync/internal/adapter"
	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/internal/store"
	"github.com/MKhiriev/memo-sync/models"
)

type maintenanceService struct {
	local       store.LocalRepository
	adapter     adapter.ServerAdapter
	pairing     PairingService
	syncService ClientSyncService

	now func() int64
}

// NewMaintenanceService builds the flag-gated one-time jobs run at boot.
func NewMaintenanceService(local store.LocalRepository, serverAdapter adapter.ServerAdapter, pairing PairingService, syncService ClientSyncService) MaintenanceService {
	return &maintenanceService{
		local:       local,
		adapter:     serverAdapter,
		pairing:     pairing,
		syncService: syncService,
		now:         func() int64 { return time.Now().UnixMilli() },
	}
}

func (m *maintenanceService) CleanupLegacyReviewLogs(ctx context.Context) (int, error) {
	done, err := m.flagSet(ctx, models.SettingCleanupV1Done)
	if err != nil {
		return 0, fmt.Errorf("read cleanup flag: %w", err)
	}
	if done {
		return 0, nil
	}

	deleted, err := m.local.PurgeInvalidReviewLogs(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge invalid review logs: %w", err)
	}
	return deleted, nil
}

func (m *maintenanceService) SeedMockData(ctx context.Context) (bool, error) {
	cfg, err := m.pairing.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load pairing config: %w", err)
	}
	if cfg.ServerURL != "" {
		return false, nil
	}

	count, err := m.local.CountDecks(ctx)
	if err != nil {
		return false, fmt.Errorf("count decks: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := m.now()
	if err = m.local.SeedDataset(ctx, mockDecks(), mockNotes(now), mockCards(now)); err != nil {
		return false, fmt.Errorf("seed mock dataset: %w", err)
	}
	if err = m.local.PutSetting(ctx, models.SettingMockSeeded, "1"); err != nil {
		return false, fmt.Errorf("record mock seed flag: %w", err)
	}
	return true, nil
}

func (m *maintenanceService) ClearMockAfterPairing(ctx context.Context) (bool, error) {
	cleared, err := m.flagSet(ctx, models.SettingMockClearDone)
	if err != nil {
		return false, fmt.Errorf("read mock clear flag: %w", err)
	}
	if cleared {
		return false, nil
	}

	seeded, err := m.flagSet(ctx, models.SettingMockSeeded)
	if err != nil {
		return false, fmt.Errorf("read mock seed flag: %w", err)
	}
	if !seeded {
		return false, nil
	}

	ts, err := m.pairing.GetLastSyncTs(ctx)
	if err != nil {
		return false, fmt.Errorf("load watermark: %w", err)
	}
	if ts <= 0 {
		return false, nil
	}

	if err = m.local.ClearAllData(ctx); err != nil {
		return false, fmt.Errorf("clear mock data: %w", err)
	}
	return true, nil
}

func (m *maintenanceService) CheckServerIdentity(ctx context.Context) (bool, error) {
	cfg, err := m.pairing.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load pairing config: %w", err)
	}
	if !cfg.Paired() {
		return false, nil
	}

	info, err := m.adapter.FetchServerInfo(ctx, cfg.ServerURL)
	if err != nil {
		return false, fmt.Errorf("fetch server info: %w", err)
	}
	if info.ServerID == "" {
		return false, nil
	}

	stored, err := m.pairing.GetServerID(ctx)
	if err != nil {
		return false, fmt.Errorf("load stored server id: %w", err)
	}

	changed := stored != "" && stored != info.ServerID
	if changed {
		// Same URL, different backend: force a full pull before trusting
		// local state again.
		if err = m.pairing.FullRefresh(ctx); err != nil {
			return false, fmt.Errorf("reset watermark: %w", err)
		}
		if _, err = m.syncService.SyncNow(ctx); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "maintenanceService.CheckServerIdentity").
				Msg("post-refresh sync failed")
		}
	}

	if err = m.pairing.SetServerID(ctx, info.ServerID); err != nil {
		return false, fmt.Errorf("store server id: %w", err)
	}
	return changed, nil
}

func (m *maintenanceService) flagSet(ctx context.Context, key string) (bool, error) {
	val, err := m.local.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return false, nil
		}
		return false, err
	}
	return val == "1", nil
}

func mockDecks() []models.Deck {
	return []models.Deck{
		{ID: 1, Name: "Japanese N5"},
		{ID: 2, Name: "English GRE"},
	}
}

func mockNotes(now int64) []models.Note {
	return []models.Note{
		{ID: 101, DeckID: 1, Front: "犬", Back: "dog", UpdatedAt: now},
		{ID: 102, DeckID: 1, Front: "猫", Back: "cat", UpdatedAt: now},
		{ID: 201, DeckID: 2, Front: "loquacious", Back: "talkative", UpdatedAt: now},
	}
}

func mockCards(now int64) []models.Card {
	return []models.Card{
		{ID: 1001, NoteID: 101, DueAt: now - 1000, Ease: 2.5, Status: "new", UpdatedAt: now},
		{ID: 1002, NoteID: 102, DueAt: now - 2000, Ease: 2.5, Status: "new", UpdatedAt: now},
		{ID: 2001, NoteID: 201, DueAt: now - 3000, Ease: 2.5, Status: "new", UpdatedAt: now},
	}
}
