// Package grpc serves the sync API over gRPC.
//
// The service is registered by hand as dcms.sync.v1.SyncService and speaks
// JSON (content-subtype "json") so records travel as the same raw objects the
// HTTP API serves. Each method mirrors an HTTP route and shares its
// validation and error mapping.
package grpc
