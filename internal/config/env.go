// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the `env`/`envPrefix` tags of [StructuredConfig], so
// STORAGE_S3_BUCKET lands in Storage.S3.Bucket. Unset variables stay zero
// and lose to lower-priority layers in the merge.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
