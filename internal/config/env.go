// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// apiKeyFallbacks are read in order when ESTIMATOR_API_KEY is unset.
var apiKeyFallbacks = []string{"GEMINI_API_KEY", "API_KEY"}

// parseEnv populates cfg from environment variables through the `env`,
// `envPrefix` and `envDefault` tags of [StructuredConfig]. The estimator
// key also honours the generic names used by Gemini tooling.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Estimator.APIKey == "" {
		for _, name := range apiKeyFallbacks {
			if v, ok := os.LookupEnv(name); ok && v != "" {
				cfg.Estimator.APIKey = v
				break
			}
		}
	}

	return nil
}
