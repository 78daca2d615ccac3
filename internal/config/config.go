// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for calcufit.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix  : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        : direct environment variable name for scalar fields.
//   - envDefault : value used when the variable is unset.
type StructuredConfig struct {
	// App holds presentation and aggregation settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local key-value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the password hashing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Estimator holds the settings of the AI nutrition estimation service.
	Estimator Estimator `envPrefix:"ESTIMATOR_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings that affect what the user sees.
type App struct {
	// Locale selects weekday labels and UI wording, e.g. "pt-BR" or "en".
	// Env: APP_LOCALE
	Locale string `env:"LOCALE" envDefault:"pt-BR"`

	// Timezone is the IANA zone used to bucket records into calendar days.
	// "Local" means the system zone.
	// Env: APP_TIMEZONE
	Timezone string `env:"TIMEZONE" envDefault:"Local"`

	// DailyScope selects which records the home summary sums: "today" sums
	// only the current calendar day, "all" sums every record ever logged.
	// Env: APP_DAILY_SCOPE
	DailyScope string `env:"DAILY_SCOPE" envDefault:"today"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite slot store.
type DB struct {
	// DSN is the SQLite file path. ":memory:" keeps everything in process
	// memory and loses it on exit.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" envDefault:"calcufit.db"`
}

// Auth holds the Argon2id cost parameters used to hash passwords.
type Auth struct {
	// ArgonTime is the number of passes.
	// Env: AUTH_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME" envDefault:"1"`

	// ArgonMemoryKiB is the memory cost in KiB.
	// Env: AUTH_ARGON_MEMORY_KIB
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY_KIB" envDefault:"65536"`

	// ArgonThreads is the parallelism degree.
	// Env: AUTH_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS" envDefault:"4"`
}

// Estimator holds settings for the generative-language estimation API.
type Estimator struct {
	// BaseURL is the API root, e.g. "https://generativelanguage.googleapis.com".
	// Env: ESTIMATOR_BASE_URL
	BaseURL string `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`

	// APIKey authenticates requests. Estimation is disabled when empty.
	// Env: ESTIMATOR_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model name used in the generateContent call.
	// Env: ESTIMATOR_MODEL
	Model string `env:"MODEL" envDefault:"gemini-2.5-flash"`

	// Timeout bounds a single estimation call.
	// Env: ESTIMATOR_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Log holds client log settings.
type Log struct {
	// Path is the log file. Empty means next to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info"`
}

// Location resolves App.Timezone.
func (a App) Location() (*time.Location, error) {
	if a.Timezone == "" || a.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(a.Timezone)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (including defaults)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
