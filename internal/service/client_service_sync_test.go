// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/memo-sync/internal/mock"
	"github.com/MKhiriev/memo-sync/models"
)

// stubPairing — простой мок PairingService, не требует mockgen (избегаем цикл импортов).
type stubPairing struct {
	cfg      models.PairingConfig
	cfgErr   error
	lastTs   int64
	setTs    []int64
	serverID string
	target   int
}

func (s *stubPairing) Get(context.Context) (models.PairingConfig, error) { return s.cfg, s.cfgErr }
func (s *stubPairing) Save(_ context.Context, cfg models.PairingConfig) error {
	s.cfg = cfg
	return nil
}
func (s *stubPairing) Pair(_ context.Context, serverURL, token string) error {
	s.cfg = models.PairingConfig{ServerURL: serverURL, Token: token}
	return nil
}
func (s *stubPairing) GetServerID(context.Context) (string, error) { return s.serverID, nil }
func (s *stubPairing) SetServerID(_ context.Context, id string) error {
	s.serverID = id
	return nil
}
func (s *stubPairing) GetLastSyncTs(context.Context) (int64, error) { return s.lastTs, nil }
func (s *stubPairing) SetLastSyncTs(_ context.Context, ts int64) error {
	s.lastTs = ts
	s.setTs = append(s.setTs, ts)
	return nil
}
func (s *stubPairing) FullRefresh(ctx context.Context) error { return s.SetLastSyncTs(ctx, 0) }
func (s *stubPairing) GetDailyTarget(context.Context) (int, error) {
	if s.target > 0 {
		return s.target, nil
	}
	return models.DefaultDailyTarget, nil
}

// newTestSyncSvc — хелпер для создания clientSyncService с моками
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*clientSyncService, *mock.MockLocalRepository, *mock.MockServerAdapter, *stubPairing) {
	t.Helper()
	mockRepo := mock.NewMockLocalRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	pairing := &stubPairing{
		cfg: models.PairingConfig{ServerURL: "http://srv", Token: "tok"},
	}

	svc := NewClientSyncService(mockRepo, mockAdapter, pairing).(*clientSyncService)
	svc.now = func() int64 { return 99999 }

	return svc, mockRepo, mockAdapter, pairing
}

// ── предусловия ──────────────────────────────────────────────────────────────

func TestSyncNow_NotPaired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, pairing := newTestSyncSvc(t, ctrl)
	pairing.cfg = models.PairingConfig{}

	_, err := svc.SyncNow(context.Background())
	require.ErrorIs(t, err, ErrNotPaired)
	assert.Empty(t, pairing.setTs, "watermark must stay untouched")
}

// ── unified путь ─────────────────────────────────────────────────────────────

func TestSyncNow_UnifiedHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, pairing := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	pending := []models.ReviewLog{
		{ID: 1, CardID: 1001, Rating: "GOOD", Ts: 100, UUID: "u1", Synced: 0},
	}
	wantReq := models.SyncRequest{
		LastSyncTimestamp: 0,
		ReviewLogs: []models.ReviewUpload{
			{CardID: 1001, Rating: models.RatingGood, ReviewedAt: 100, UUID: "u1"},
		},
	}
	resp := models.SyncResponse{
		Data: models.SyncDelta{
			Decks: []models.Deck{{ID: 1, Name: "N5"}},
		},
		SyncTimestamp: 5000,
	}

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok")
	mockRepo.EXPECT().PendingReviews(ctx).Return(pending, nil)
	mockAdapter.EXPECT().PostSync(ctx, wantReq).Return(resp, nil)
	mockRepo.EXPECT().UpsertDecks(ctx, resp.Data.Decks).Return(1, nil)
	mockRepo.EXPECT().UpsertNotes(ctx, gomock.Len(0)).Return(0, nil)
	mockRepo.EXPECT().UpsertCards(ctx, gomock.Len(0)).Return(0, nil)
	mockRepo.EXPECT().MarkReviewsSynced(ctx, []int64{1}).Return(nil)

	counts, err := svc.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCounts{Decks: 1, Notes: 0, Cards: 0, Pushed: 1}, counts)
	assert.Equal(t, int64(5000), pairing.lastTs, "watermark takes the server clock")
}

func TestSyncNow_OutboxFiltering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	// корректная запись + битый card_id + непарсибельный рейтинг
	pending := []models.ReviewLog{
		{ID: 1, CardID: 1001, Rating: "2", Ts: 100, UUID: "u1"},
		{ID: 2, CardID: -1, Rating: "3", Ts: 200, UUID: "u2"},
		{ID: 3, CardID: 1002, Rating: "SUPER", Ts: 300, UUID: "u3"},
	}
	wantReq := models.SyncRequest{
		LastSyncTimestamp: 0,
		ReviewLogs: []models.ReviewUpload{
			{CardID: 1001, Rating: models.RatingHard, ReviewedAt: 100, UUID: "u1"},
		},
	}

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok")
	mockRepo.EXPECT().PendingReviews(ctx).Return(pending, nil)
	mockAdapter.EXPECT().PostSync(ctx, wantReq).Return(models.SyncResponse{SyncTimestamp: 1}, nil)
	mockRepo.EXPECT().UpsertDecks(ctx, gomock.Len(0)).Return(0, nil)
	mockRepo.EXPECT().UpsertNotes(ctx, gomock.Len(0)).Return(0, nil)
	mockRepo.EXPECT().UpsertCards(ctx, gomock.Len(0)).Return(0, nil)
	mockRepo.EXPECT().MarkReviewsSynced(ctx, []int64{1}).Return(nil)

	counts, err := svc.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Pushed)
}

func TestSyncNow_UnifiedEmptyResponseFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, pairing := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	pairing.lastTs = 5000

	pending := []models.ReviewLog{
		{ID: 1, CardID: 1001, Rating: "GOOD", Ts: 100, UUID: "u1"},
	}

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok")
	mockRepo.EXPECT().PendingReviews(ctx).Return(pending, nil)
	// legacy-сервер отвечает 200 с пустым телом — это не успех
	mockAdapter.EXPECT().PostSync(ctx, gomock.Any()).
		Return(models.SyncResponse{}, nil)

	mockAdapter.EXPECT().FetchDecks(ctx).Return(nil, nil)
	mockRepo.EXPECT().UpsertDecks(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().FetchNotes(ctx, int64(5000)).Return(nil, nil)
	mockRepo.EXPECT().UpsertNotes(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().FetchCards(ctx, int64(5000)).Return(nil, nil)
	mockRepo.EXPECT().UpsertCards(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().PostReviews(ctx, gomock.Len(1)).
		Return(models.ReviewsAck{OK: true, Processed: 1}, nil)
	mockRepo.EXPECT().MarkReviewsSynced(ctx, []int64{1}).Return(nil)

	counts, err := svc.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Pushed)
	assert.Equal(t, []int64{99999}, pairing.setTs, "watermark must never regress to zero")
}

// ── legacy fallback ──────────────────────────────────────────────────────────

func TestSyncNow_FallbackPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, pairing := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	pairing.lastTs = 4000

	pending := []models.ReviewLog{
		{ID: 1, CardID: 1001, Rating: "GOOD", Ts: 100, UUID: "u1"},
	}
	notes := []models.Note{{ID: 101, DeckID: 1, Front: "犬", Back: "dog"}}
	cards := []models.Card{{ID: 1001, NoteID: 101}}

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok")
	mockRepo.EXPECT().PendingReviews(ctx).Return(pending, nil)
	mockAdapter.EXPECT().PostSync(ctx, gomock.Any()).
		Return(models.SyncResponse{}, errors.New("connection refused"))

	mockAdapter.EXPECT().FetchDecks(ctx).Return(nil, nil)
	mockRepo.EXPECT().UpsertDecks(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().FetchNotes(ctx, int64(4000)).Return(notes, nil)
	mockRepo.EXPECT().UpsertNotes(ctx, notes).Return(1, nil)
	mockAdapter.EXPECT().FetchCards(ctx, int64(4000)).Return(cards, nil)
	mockRepo.EXPECT().UpsertCards(ctx, cards).Return(1, nil)
	mockAdapter.EXPECT().PostReviews(ctx, []models.ReviewPush{
		{CardID: 1001, Rating: models.RatingGood, Ts: 100, UUID: "u1"},
	}).Return(models.ReviewsAck{OK: true, Processed: 1}, nil)
	mockRepo.EXPECT().MarkReviewsSynced(ctx, []int64{1}).Return(nil)

	counts, err := svc.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCounts{Decks: 0, Notes: 1, Cards: 1, Pushed: 1}, counts)
	assert.Equal(t, int64(99999), pairing.lastTs, "fallback watermark is the local clock at cycle start")
}

func TestSyncNow_FallbackFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, pairing := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok")
	mockRepo.EXPECT().PendingReviews(ctx).Return(nil, nil)
	mockAdapter.EXPECT().PostSync(ctx, gomock.Any()).
		Return(models.SyncResponse{}, errors.New("connection refused"))
	mockAdapter.EXPECT().FetchDecks(ctx).Return(nil, errors.New("still down"))

	_, err := svc.SyncNow(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch decks")
	assert.Empty(t, pairing.setTs, "watermark must not advance on a failed cycle")
}

func TestSyncNow_FallbackAckWithoutProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	pending := []models.ReviewLog{
		{ID: 1, CardID: 1001, Rating: "1", Ts: 100, UUID: "u1"},
		{ID: 2, CardID: 1002, Rating: "4", Ts: 200, UUID: "u2"},
	}

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok")
	mockRepo.EXPECT().PendingReviews(ctx).Return(pending, nil)
	mockAdapter.EXPECT().PostSync(ctx, gomock.Any()).
		Return(models.SyncResponse{}, errors.New("boom"))
	mockAdapter.EXPECT().FetchDecks(ctx).Return(nil, nil)
	mockRepo.EXPECT().UpsertDecks(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().FetchNotes(ctx, int64(0)).Return(nil, nil)
	mockRepo.EXPECT().UpsertNotes(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().FetchCards(ctx, int64(0)).Return(nil, nil)
	mockRepo.EXPECT().UpsertCards(ctx, gomock.Len(0)).Return(0, nil)
	// сервер ответил ok, но без processed — берём локальное число
	mockAdapter.EXPECT().PostReviews(ctx, gomock.Len(2)).
		Return(models.ReviewsAck{OK: true}, nil)
	mockRepo.EXPECT().MarkReviewsSynced(ctx, []int64{1, 2}).Return(nil)

	counts, err := svc.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Pushed)
}

func TestSyncNow_FallbackAckNotOKKeepsOutboxPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, pairing := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	pending := []models.ReviewLog{
		{ID: 1, CardID: 1001, Rating: "GOOD", Ts: 100, UUID: "u1"},
	}

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok")
	mockRepo.EXPECT().PendingReviews(ctx).Return(pending, nil)
	mockAdapter.EXPECT().PostSync(ctx, gomock.Any()).
		Return(models.SyncResponse{}, errors.New("boom"))
	mockAdapter.EXPECT().FetchDecks(ctx).Return(nil, nil)
	mockRepo.EXPECT().UpsertDecks(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().FetchNotes(ctx, int64(0)).Return(nil, nil)
	mockRepo.EXPECT().UpsertNotes(ctx, gomock.Len(0)).Return(0, nil)
	mockAdapter.EXPECT().FetchCards(ctx, int64(0)).Return(nil, nil)
	mockRepo.EXPECT().UpsertCards(ctx, gomock.Len(0)).Return(0, nil)
	// сервер отказал в приёме батча — записи остаются pending,
	// MarkReviewsSynced вызываться не должен
	mockAdapter.EXPECT().PostReviews(ctx, gomock.Len(1)).
		Return(models.ReviewsAck{OK: false}, nil)

	counts, err := svc.SyncNow(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts.Pushed, "an unacknowledged batch counts as not pushed")
	assert.Equal(t, int64(99999), pairing.lastTs)
}

// ── single-flight ────────────────────────────────────────────────────────────

func TestSyncNow_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	entered := make(chan struct{}, 2)
	release := make(chan struct{})

	mockAdapter.EXPECT().SetEndpoint("http://srv", "tok").Times(2)
	mockRepo.EXPECT().PendingReviews(ctx).Return(nil, nil).Times(2)
	mockAdapter.EXPECT().PostSync(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncRequest) (models.SyncResponse, error) {
			entered <- struct{}{}
			<-release
			return models.SyncResponse{SyncTimestamp: 5000}, nil
		}).Times(2)
	mockRepo.EXPECT().UpsertDecks(ctx, gomock.Len(0)).Return(0, nil).Times(2)
	mockRepo.EXPECT().UpsertNotes(ctx, gomock.Len(0)).Return(0, nil).Times(2)
	mockRepo.EXPECT().UpsertCards(ctx, gomock.Len(0)).Return(0, nil).Times(2)

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.SyncNow(ctx)
			assert.NoError(t, err)
		}()
	}

	// первый цикл висит внутри PostSync; второй обязан ждать на мьютексе,
	// а не входить в адаптер параллельно
	<-entered
	select {
	case <-entered:
		t.Fatal("second cycle reached the adapter while the first is in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	wg.Wait()
	<-entered // второй цикл прошёл адаптер после освобождения первого
}
