// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from the process environment. Fields
// are mapped through their `env` and `envPrefix` tags; `envDefault` fills
// the engine and server tunables when the variables are unset.
//
// A value that cannot be converted (e.g. SYNC_PUSH_DELAY=fast) fails the
// whole parse.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
