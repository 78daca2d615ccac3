// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	// DailyScopeToday sums only today's records on the home summary.
	DailyScopeToday = "today"
	// DailyScopeAll sums every record ever logged on the home summary.
	DailyScopeAll = "all"
)

var supportedLocales = map[string]struct{}{
	"pt-BR": {},
	"pt":    {},
	"en":    {},
	"en-US": {},
}

// validate checks that the merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := cfg.App.Location(); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidAppConfigs, cfg.App.Timezone, err)
	}
	if _, ok := supportedLocales[cfg.App.Locale]; !ok {
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidAppConfigs, cfg.App.Locale)
	}
	if cfg.App.DailyScope != DailyScopeToday && cfg.App.DailyScope != DailyScopeAll {
		return fmt.Errorf("%w: daily scope %q", ErrInvalidAppConfigs, cfg.App.DailyScope)
	}

	if cfg.Auth.ArgonTime == 0 || cfg.Auth.ArgonMemoryKiB == 0 || cfg.Auth.ArgonThreads == 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Estimator.BaseURL == "" || cfg.Estimator.Model == "" || cfg.Estimator.Timeout <= 0 {
		return ErrInvalidEstimatorConfigs
	}

	return nil
}
