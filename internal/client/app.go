package client

import (
	"context"

	"github.com/MKhiriev/memo-sync/internal/logger"
	"github.com/MKhiriev/memo-sync/internal/service"
)

type App struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, log *logger.Logger) *App {
	return &App{services: services, logger: log}
}

// Run executes the boot sequence and then blocks until ctx is cancelled:
// seed the demo dataset on a fresh unpaired install, purge legacy review
// logs, replace the demo dataset once real data has synced, verify the
// server identity, start the background scheduler. Every boot stage logs
// its outcome and proceeds on failure; a broken maintenance job must never
// keep the application from starting.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.bootMaintenance(ctx)

	a.services.SyncJob.Start(ctx)
	defer a.services.SyncJob.Stop()

	<-ctx.Done()
	return nil
}

func (a *App) bootMaintenance(ctx context.Context) {
	log := a.logger

	seeded, err := a.services.MaintenanceService.SeedMockData(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "App.bootMaintenance").Msg("mock seeding failed")
	} else if seeded {
		log.Info().Str("func", "App.bootMaintenance").Msg("demo dataset seeded")
	}

	deleted, err := a.services.MaintenanceService.CleanupLegacyReviewLogs(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "App.bootMaintenance").Msg("legacy review log cleanup failed")
	} else if deleted > 0 {
		log.Info().Int("deleted", deleted).Str("func", "App.bootMaintenance").Msg("legacy review logs purged")
	}

	cleared, err := a.services.MaintenanceService.ClearMockAfterPairing(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "App.bootMaintenance").Msg("mock clearing failed")
	} else if cleared {
		log.Info().Str("func", "App.bootMaintenance").Msg("demo dataset cleared, pulling real data")
		if _, err = a.services.SyncService.SyncNow(ctx); err != nil {
			log.Warn().Err(err).Str("func", "App.bootMaintenance").Msg("post-clear sync failed")
		}
	}

	changed, err := a.services.MaintenanceService.CheckServerIdentity(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "App.bootMaintenance").Msg("server identity check failed")
	} else if changed {
		log.Info().Str("func", "App.bootMaintenance").Msg("server identity changed, local state refreshed")
	}
}
