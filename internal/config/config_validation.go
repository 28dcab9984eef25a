// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks the invariants shared by the server and the client.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case "", DriverMemory:
	case DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres driver requires a DSN", ErrInvalidStorageConfigs)
		}
	case DriverRedis:
		if cfg.Storage.Redis.URL == "" {
			return fmt.Errorf("%w: redis driver requires a URL", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Sync.Protocol != "" && !slices.Contains([]string{ProtocolReplace, ProtocolRecord}, cfg.Sync.Protocol) {
		return fmt.Errorf("%w: unknown protocol %q", ErrInvalidSyncConfigs, cfg.Sync.Protocol)
	}

	if cfg.Sync.ReconnectDelay < 0 || cfg.Sync.PushDelay < 0 || cfg.Sync.ProbeTimeout < 0 {
		return fmt.Errorf("%w: negative delay", ErrInvalidSyncConfigs)
	}

	if cfg.Workers.PurgeInterval < 0 || cfg.Workers.TombstoneTTL < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !slices.Contains([]string{LocalDriverSQLite, LocalDriverBolt, LocalDriverMemory}, cfg.Storage.Driver) {
		return fmt.Errorf("%w: unknown local driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.Driver != LocalDriverMemory && cfg.Storage.Path == "" {
		return fmt.Errorf("%w: local path is required", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.ReconnectDelay == 0 || cfg.Sync.ProbeTimeout == 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.Origin == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
