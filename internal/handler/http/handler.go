package http

import (
	"time"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/service"
)

// maxBodyBytes caps request bodies of push endpoints.
const maxBodyBytes = 32 << 20

type Handler struct {
	services *service.Services

	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		now:      time.Now,
		logger:   logger,
	}
}
