// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:       App{Locale: "pt-BR", Timezone: "UTC", DailyScope: DailyScopeToday},
		Storage:   Storage{DB: DB{DSN: "calcufit.db"}},
		Auth:      Auth{ArgonTime: 1, ArgonMemoryKiB: 64, ArgonThreads: 1},
		Estimator: Estimator{BaseURL: "http://localhost", Model: "m", Timeout: time.Second},
	}
}

// ── env ───────────────────────────────────────────────────────────────────────

// TestParseEnv_Defaults verifies that envDefault tags populate an empty
// environment.
func TestParseEnv_Defaults(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "pt-BR", cfg.App.Locale)
	assert.Equal(t, "Local", cfg.App.Timezone)
	assert.Equal(t, DailyScopeToday, cfg.App.DailyScope)
	assert.Equal(t, "calcufit.db", cfg.Storage.DB.DSN)
	assert.Equal(t, uint32(65536), cfg.Auth.ArgonMemoryKiB)
	assert.Equal(t, "gemini-2.5-flash", cfg.Estimator.Model)
	assert.Equal(t, 30*time.Second, cfg.Estimator.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestParseEnv_Overrides verifies prefixed variable names.
func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/x.db")
	t.Setenv("ESTIMATOR_API_KEY", "secret")
	t.Setenv("APP_DAILY_SCOPE", "all")
	t.Setenv("LOG_PATH", "/tmp/calcufit.log")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.Estimator.APIKey)
	assert.Equal(t, DailyScopeAll, cfg.App.DailyScope)
	assert.Equal(t, "/tmp/calcufit.log", cfg.Log.Path)
}

func TestParseEnv_APIKeyFallback(t *testing.T) {
	t.Setenv("ESTIMATOR_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "generic")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "generic", cfg.Estimator.APIKey)

	t.Setenv("GEMINI_API_KEY", "gemini")
	cfg = &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "gemini", cfg.Estimator.APIKey)

	t.Setenv("ESTIMATOR_API_KEY", "explicit")
	cfg = &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "explicit", cfg.Estimator.APIKey)
}

// TestParseEnv_InvalidDuration verifies that conversion errors are wrapped.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ESTIMATOR_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── flags ─────────────────────────────────────────────────────────────────────

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-d", "data.db",
		"-config", "cfg.json",
		"-locale", "en",
		"-tz", "America/Sao_Paulo",
		"-daily-scope", "all",
		"-estimator-url", "http://127.0.0.1:9000",
		"-estimator-key", "k",
		"-estimator-model", "gemini-test",
		"-estimator-timeout", "5s",
		"-log-file", "out.log",
		"-log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "data.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
	assert.Equal(t, DailyScopeAll, cfg.App.DailyScope)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Estimator.BaseURL)
	assert.Equal(t, "k", cfg.Estimator.APIKey)
	assert.Equal(t, "gemini-test", cfg.Estimator.Model)
	assert.Equal(t, 5*time.Second, cfg.Estimator.Timeout)
	assert.Equal(t, "out.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

// ── json ──────────────────────────────────────────────────────────────────────

func TestParseJSON_Success(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":       map[string]any{"locale": "en", "daily_scope": "all"},
		"storage":   map[string]any{"db": map[string]any{"dsn": "json.db"}},
		"auth":      map[string]any{"argon_time": 2},
		"estimator": map[string]any{"timeout": "10s", "api_key": "from-json"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, DailyScopeAll, cfg.App.DailyScope)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, uint32(2), cfg.Auth.ArgonTime)
	assert.Equal(t, 10*time.Second, cfg.Estimator.Timeout)
	assert.Equal(t, "from-json", cfg.Estimator.APIKey)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/definitely/not/here.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, _ = f.WriteString("{not json")
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))
}

// ── builder ───────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterNonZeroWins verifies the override order of sources.
func TestBuild_LaterNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}, App: App{Locale: "pt-BR"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "flag.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "pt-BR", cfg.App.Locale)
}

// TestBuilder_EnvFlagsJSON verifies the full chain, including a JSON path
// supplied by flag.
func TestBuilder_EnvFlagsJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"estimator": map[string]any{"model": "json-model"},
	})
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", path, "-locale", "en"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "json-model", cfg.Estimator.Model)
	assert.Equal(t, 30*time.Second, cfg.Estimator.Timeout)
	require.NoError(t, cfg.validate())
}

// TestBuilder_MissingJSONFile verifies that an unreadable JSON path fails the
// build.
func TestBuilder_MissingJSONFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-c", "/no/such/config.json"}).
		withJSON().
		build()
	require.Error(t, err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "bad timezone", mutate: func(cfg *StructuredConfig) { cfg.App.Timezone = "Mars/Olympus" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad locale", mutate: func(cfg *StructuredConfig) { cfg.App.Locale = "xx" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad scope", mutate: func(cfg *StructuredConfig) { cfg.App.DailyScope = "week" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero argon", mutate: func(cfg *StructuredConfig) { cfg.Auth.ArgonThreads = 0 }, wantErr: ErrInvalidAuthConfigs},
		{name: "zero timeout", mutate: func(cfg *StructuredConfig) { cfg.Estimator.Timeout = 0 }, wantErr: ErrInvalidEstimatorConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Location(t *testing.T) {
	loc, err := App{Timezone: "Local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = App{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}
