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

	"github.com/MKhiriev/memo-sync/internal/config"
	"github.com/MKhiriev/memo-sync/models"
)

// spySyncService — считает вызовы SyncNow и сигналит о каждом
type spySyncService struct {
	mu    sync.Mutex
	calls int
	err   error
	fired chan struct{}
}

func newSpySyncService() *spySyncService {
	return &spySyncService{fired: make(chan struct{}, 16)}
}

func (s *spySyncService) SyncNow(context.Context) (models.SyncCounts, error) {
	s.mu.Lock()
	s.calls++
	err := s.err
	s.mu.Unlock()

	select {
	case s.fired <- struct{}{}:
	default:
	}
	return models.SyncCounts{}, err
}

func (s *spySyncService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestJob(syncSvc ClientSyncService, pairing PairingService, online OnlineProbe) *clientSyncJob {
	return NewClientSyncJob(syncSvc, pairing, online, config.ClientWorkers{
		SyncShortDelay:    10 * time.Millisecond,
		SyncBaselineDelay: time.Hour, // повторный тик в тестах не нужен
		SyncMaxDelay:      10 * time.Minute,
	}).(*clientSyncJob)
}

func waitFired(t *testing.T, spy *spySyncService) {
	t.Helper()
	select {
	case <-spy.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("sync cycle never ran")
	}
}

// ── расписание ───────────────────────────────────────────────────────────────

func TestClientSyncJob_RunsAfterInitialShortDelay(t *testing.T) {
	spy := newSpySyncService()
	pairing := &stubPairing{cfg: models.PairingConfig{ServerURL: "http://srv", Token: "tok"}}
	job := newTestJob(spy, pairing, nil)

	job.Start(context.Background())
	defer job.Stop()

	waitFired(t, spy)
	assert.GreaterOrEqual(t, spy.count(), 1)
}

func TestClientSyncJob_SkipsWhenUnpaired(t *testing.T) {
	spy := newSpySyncService()
	job := newTestJob(spy, &stubPairing{}, nil)

	job.Start(context.Background())
	defer job.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, spy.count(), "an unpaired client must not sync")
}

func TestClientSyncJob_SkipsWhenOffline(t *testing.T) {
	spy := newSpySyncService()
	pairing := &stubPairing{cfg: models.PairingConfig{ServerURL: "http://srv", Token: "tok"}}
	offline := func(context.Context) bool { return false }
	job := newTestJob(spy, pairing, offline)

	job.Start(context.Background())
	defer job.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, spy.count(), "an offline client must not sync")
}

func TestClientSyncJob_TriggerRearmsShortDelay(t *testing.T) {
	spy := newSpySyncService()
	pairing := &stubPairing{cfg: models.PairingConfig{ServerURL: "http://srv", Token: "tok"}}
	job := newTestJob(spy, pairing, nil)

	job.Start(context.Background())
	defer job.Stop()

	// первый цикл по стартовой короткой задержке
	waitFired(t, spy)

	// baseline — час; без триггера второго цикла не будет
	job.TriggerNow("online")
	waitFired(t, spy)
	assert.GreaterOrEqual(t, spy.count(), 2)
}

func TestClientSyncJob_FailuresKeepRescheduling(t *testing.T) {
	spy := newSpySyncService()
	spy.err = errors.New("server down")
	pairing := &stubPairing{cfg: models.PairingConfig{ServerURL: "http://srv", Token: "tok"}}
	job := newTestJob(spy, pairing, nil)

	job.Start(context.Background())
	defer job.Stop()

	// после ошибки цикл перевзводится с ростом задержки, а не умирает
	waitFired(t, spy)
	waitFired(t, spy)
	assert.GreaterOrEqual(t, spy.count(), 2)
}

func TestClientSyncJob_StopWithoutStart(t *testing.T) {
	spy := newSpySyncService()
	job := newTestJob(spy, &stubPairing{}, nil)

	require.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

func TestClientSyncJob_StopTerminatesLoop(t *testing.T) {
	spy := newSpySyncService()
	pairing := &stubPairing{cfg: models.PairingConfig{ServerURL: "http://srv", Token: "tok"}}
	job := newTestJob(spy, pairing, nil)

	job.Start(context.Background())
	waitFired(t, spy)
	job.Stop()

	before := spy.count()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before, spy.count(), "no cycles after Stop")
}

// ── backoff ──────────────────────────────────────────────────────────────────

func TestClientSyncJob_GrowBackoff(t *testing.T) {
	job := newTestJob(newSpySyncService(), &stubPairing{}, nil)

	assert.Equal(t, 3*time.Second, job.grow(2*time.Second))
	assert.Equal(t, 90*time.Second, job.grow(time.Minute))
	assert.Equal(t, 10*time.Minute, job.grow(8*time.Minute), "growth is capped")
	assert.Equal(t, 10*time.Minute, job.grow(10*time.Minute))
}

func TestClientSyncJob_Defaults(t *testing.T) {
	job := NewClientSyncJob(newSpySyncService(), &stubPairing{}, nil, config.ClientWorkers{}).(*clientSyncJob)

	assert.Equal(t, 2*time.Second, job.shortDelay)
	assert.Equal(t, time.Minute, job.baselineDelay)
	assert.Equal(t, 10*time.Minute, job.maxDelay)
}
