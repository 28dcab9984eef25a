// Package http implements the HTTP transport layer of the sync server.
//
// It exposes route wiring, request handlers, and middleware used by the sync
// API. Cross-cutting concerns such as origin authentication, request
// tracing, access logging, response compression, ETags and body integrity
// checks are handled in this package before requests are delegated to the
// service layer.
package http
