package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/memo-sync/internal/config"
	"github.com/MKhiriev/memo-sync/internal/logger"
)

// OnlineProbe reports whether the network is believed reachable. A nil
// probe means "assume online"; tests inject their own.
type OnlineProbe func(ctx context.Context) bool

type clientSyncJob struct {
	syncService ClientSyncService
	pairing     PairingService
	online      OnlineProbe

	shortDelay    time.Duration
	baselineDelay time.Duration
	maxDelay      time.Duration

	trigger chan string

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates the background sync scheduler. The job is idle
// until Start is called. Zero worker delays fall back to 2s short, 60s
// baseline and 10m cap.
func NewClientSyncJob(syncService ClientSyncService, pairing PairingService, online OnlineProbe, workers config.ClientWorkers) ClientSyncJob {
	short := workers.SyncShortDelay
	if short <= 0 {
		short = 2 * time.Second
	}
	baseline := workers.SyncBaselineDelay
	if baseline <= 0 {
		baseline = time.Minute
	}
	maximum := workers.SyncMaxDelay
	if maximum <= 0 {
		maximum = 10 * time.Minute
	}

	return &clientSyncJob{
		syncService:   syncService,
		pairing:       pairing,
		online:        online,
		shortDelay:    short,
		baselineDelay: baseline,
		maxDelay:      maximum,
		trigger:       make(chan string, 1),
	}
}

// Start implements ClientSyncJob. The loop is self-rescheduling: the next
// delay is armed only after the current cycle has fully completed, so no
// two cycles ever overlap. The initial arm uses the short delay.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		log := logger.FromContext(jobCtx)

		delay := j.shortDelay
		timer := time.NewTimer(delay)
		defer timer.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return

			case reason := <-j.trigger:
				// A trigger only moves the next fire time; a cycle is
				// never started from here.
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				delay = j.shortDelay
				timer.Reset(delay)
				log.Debug().
					Str("func", "clientSyncJob.Start").
					Str("reason", reason).
					Dur("delay", delay).
					Msg("sync re-armed by trigger")

			case <-timer.C:
				if j.shouldRun(jobCtx) {
					if _, err := j.syncService.SyncNow(jobCtx); err != nil {
						delay = j.grow(delay)
						log.Warn().Err(err).
							Str("func", "clientSyncJob.Start").
							Dur("delay", delay).
							Msg("sync cycle failed, backing off")
					} else {
						delay = j.baselineDelay
					}
				} else {
					delay = j.grow(delay)
				}
				timer.Reset(delay)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the scheduler goroutine's
// context and blocks until it has exited. No-op when the job is not
// running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// TriggerNow implements ClientSyncJob. The send never blocks: with a
// trigger already queued, another one changes nothing.
func (j *clientSyncJob) TriggerNow(reason string) {
	select {
	case j.trigger <- reason:
	default:
	}
}

func (j *clientSyncJob) shouldRun(ctx context.Context) bool {
	cfg, err := j.pairing.Get(ctx)
	if err != nil || !cfg.Paired() {
		return false
	}
	if j.online != nil && !j.online(ctx) {
		return false
	}
	return true
}

func (j *clientSyncJob) grow(d time.Duration) time.Duration {
	grown := time.Duration(float64(d) * 1.5)
	if grown > j.maxDelay {
		return j.maxDelay
	}
	return grown
}
