package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/internal/logger"
	"github.com/MKhiriev/dcms-sync/internal/utils"
)

const (
	traceIDKey       = "x-trace-id"
	authorizationKey = "authorization"

	maxTraceIDLen = 128
)

var traceIDs = utils.NewUUIDGenerator()

// publicMethods skip authentication.
var publicMethods = map[string]bool{
	FullMethod("Health"): true,
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}

// withTraceID puts a logger carrying trace_id into ctx and returns the id in
// the response header metadata.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadata(ctx, traceIDKey)
	if traceID == "" || len(traceID) > maxTraceIDLen {
		traceID = traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	if err := grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID)); err != nil {
		l.Debug().Err(err).Str("func", "*Handler.withTraceID").Msg("trace id header not sent")
	}

	return next(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	code := status.Code(err)
	log := logger.FromContext(ctx)
	event := log.Info()
	if code == codes.Internal || code == codes.Unknown {
		event = log.Error()
	}
	if err != nil {
		event = event.Str("error", status.Convert(err).Message())
	}
	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// auth checks the bearer token in the authorization metadata when a sign key
// is configured and stores the origin in ctx.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] || !h.services.AuthService.Enabled() {
		return next(ctx, req)
	}

	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(firstMetadata(ctx, authorizationKey))
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.auth").Msg("missing bearer token")
		return nil, status.Error(codes.Unauthenticated, app.MsgMissingToken)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	originLogger := log.With().Str("origin", token.Origin).Logger()
	ctx = originLogger.WithContext(utils.WithOrigin(ctx, token.Origin))

	return next(ctx, req)
}
