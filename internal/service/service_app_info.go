package service

import (
	"context"

	"github.com/MKhiriev/dcms-sync/internal/config"
	"github.com/MKhiriev/dcms-sync/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService returns the service behind /api/version. A server
// without a configured version refuses to start.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	logger.Debug().Str("version", cfg.Version).Msg("app info service created")

	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
