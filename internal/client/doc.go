// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the origin client runtime.
//
// It starts the sync engine, runs either the status dashboard or a single
// headless refresh, and shuts the engine and the local store down on exit.
package client
