package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/memo-sync/internal/store"
	"github.com/MKhiriev/memo-sync/models"
)

type catalogService struct {
	local store.LocalRepository

	now func() int64
}

// NewClientCatalogService builds the local catalog browsing/editing service.
func NewClientCatalogService(local store.LocalRepository) ClientCatalogService {
	return &catalogService{
		local: local,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

func (c *catalogService) DeckSummaries(ctx context.Context) ([]models.DeckSummary, error) {
	summaries, err := c.local.DeckSummaries(ctx, c.now())
	if err != nil {
		return nil, fmt.Errorf("load deck summaries: %w", err)
	}
	return summaries, nil
}

func (c *catalogService) NotesByDeck(ctx context.Context, deckID int64) ([]models.Note, error) {
	notes, err := c.local.NotesByDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("load deck notes: %w", err)
	}
	return notes, nil
}

func (c *catalogService) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) error {
	if err := c.local.UpdateNote(ctx, id, patch, c.now()); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (c *catalogService) DeleteNote(ctx context.Context, id int64) error {
	if err := c.local.DeleteNoteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (c *catalogService) RenameDeck(ctx context.Context, id int64, name string) error {
	if err := c.local.UpdateDeckName(ctx, id, name); err != nil {
		return fmt.Errorf("rename deck: %w", err)
	}
	return nil
}

func (c *catalogService) DeleteDeck(ctx context.Context, id int64) error {
	if err := c.local.DeleteDeckCascade(ctx, id); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	return nil
}

func (c *catalogService) LocalCounts(ctx context.Context) (models.LocalCounts, error) {
	counts, err := c.local.LocalCounts(ctx)
	if err != nil {
		return models.LocalCounts{}, fmt.Errorf("load local counts: %w", err)
	}
	return counts, nil
}
