// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-d database file path (":memory:" for a throwaway store)
//	-c/-config json file path with configs
//	-locale UI locale (pt-BR, en)
//	-tz IANA timezone used to bucket records by day
//	-daily-scope home summary scope ("today" or "all")
//	-estimator-url estimation API base URL
//	-estimator-key estimation API key
//	-estimator-model estimation model name
//	-estimator-timeout estimation timeout (e.g., "30s")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//
// Unset flags leave the corresponding fields zero so that they do not
// override values from other sources during merging.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("calcufit", flag.ContinueOnError)

	var (
		dsn              string
		jsonConfigPath   string
		locale           string
		timezone         string
		dailyScope       string
		estimatorURL     string
		estimatorKey     string
		estimatorModel   string
		estimatorTimeout time.Duration
		logFile          string
		logLevel         string
	)

	fs.StringVar(&dsn, "d", "", "Database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&locale, "locale", "", "UI locale (pt-BR, en)")
	fs.StringVar(&timezone, "tz", "", "IANA timezone used for calendar days")
	fs.StringVar(&dailyScope, "daily-scope", "", "Home summary scope: today or all")
	fs.StringVar(&estimatorURL, "estimator-url", "", "Estimation API base URL")
	fs.StringVar(&estimatorKey, "estimator-key", "", "Estimation API key")
	fs.StringVar(&estimatorModel, "estimator-model", "", "Estimation model name")
	fs.DurationVar(&estimatorTimeout, "estimator-timeout", 0, "Estimation timeout (e.g., 30s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale:     locale,
			Timezone:   timezone,
			DailyScope: dailyScope,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Estimator: Estimator{
			BaseURL: estimatorURL,
			APIKey:  estimatorKey,
			Model:   estimatorModel,
			Timeout: estimatorTimeout,
		},
		Log: Log{
			Path:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
