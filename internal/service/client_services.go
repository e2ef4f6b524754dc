package service

import (
	"github.com/MKhiriev/memo-sync/internal/adapter"
	"github.com/MKhiriev/memo-sync/internal/config"
	"github.com/MKhiriev/memo-sync/internal/store"
)

type ClientServices struct {
	PairingService     PairingService
	SyncService        ClientSyncService
	SyncJob            ClientSyncJob
	MaintenanceService MaintenanceService
	StudyService       ClientStudyService
	CatalogService     ClientCatalogService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig) *ClientServices {
	pairingSvc := NewPairingService(storages.Local, serverAdapter, cfg.Storage.Mirror.Path)
	syncSvc := NewClientSyncService(storages.Local, serverAdapter, pairingSvc)

	return &ClientServices{
		PairingService:     pairingSvc,
		SyncService:        syncSvc,
		SyncJob:            NewClientSyncJob(syncSvc, pairingSvc, nil, cfg.Workers),
		MaintenanceService: NewMaintenanceService(storages.Local, serverAdapter, pairingSvc, syncSvc),
		StudyService:       NewClientStudyService(storages.Local, pairingSvc),
		CatalogService:     NewClientCatalogService(storages.Local),
	}
}
