package grpc

import (
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/service"
)

// Handler serves the SyncService gRPC API.
//
// Every method is a thin translation layer: it decodes the request message,
// calls the same [service.SyncService] the HTTP transport uses and maps
// service errors to gRPC status codes. One Handler is built at startup and
// registered on the gRPC server.
type Handler struct {
	// services holds the sync, auth and app-info services.
	services *service.Services

	// now stamps health replies; tests replace it with a fixed clock.
	now func() time.Time

	// logger is the base logger; interceptors derive per-call children
	// carrying the trace id.
	logger *logger.Logger
}

// NewHandler returns a [Handler] bound to services.
//
// Parameters:
//   - services: service container shared with the HTTP transport.
//   - logger: base logger for interceptors and method diagnostics.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		now:      time.Now,
		logger:   logger,
	}
}

// ServerOptions returns the interceptor chain every SyncService call passes
// through: trace id, access log, then authentication.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.auth),
	}
}

// Register attaches the SyncService to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&SyncServiceDesc, h)
}
