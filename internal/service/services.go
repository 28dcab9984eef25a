package service

import (
	"fmt"

	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/store"
)

type Services struct {
	SyncService    SyncService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The sync service is wrapped with
// input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		SyncService:    NewSyncValidationService().Wrap(NewSyncService(storages.CollectionRepository, logger)),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
