// Package server wires and runs the sync server's transports.
//
// It runs the HTTP and gRPC servers and the background workers in one
// errgroup, stops them all on SIGINT, SIGTERM or SIGQUIT, and shuts the
// transports down gracefully within the configured timeout.
package server
