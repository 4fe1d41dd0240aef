package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-master-password/models"
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
		App: App{
			DefaultType:    models.LongPassword,
			DefaultCounter: 1,
		},
		Storage: Storage{DB: DB{DSN: "sites.db"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because no DSN is set.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_DefaultsOnly verifies that defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPasswordType, cfg.App.DefaultType)
	assert.Equal(t, models.DefaultCounter, cfg.App.DefaultCounter)
	assert.Equal(t, 20*time.Second, cfg.App.ClipboardClearTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier config takes precedence
// over a later one for the same field, while later configs fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := &StructuredConfig{App: App{UserName: "from-flags"}}
	second := validConfig()
	second.App.UserName = "from-env"
	second.Log.Level = "warn"
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.App.UserName)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "sites.db", cfg.Storage.DB.DSN)
}

// TestBuild_ValidationErrors verifies each validation rule.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"blank dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "  " }, ErrInvalidStorageConfigs},
		{"unknown type", func(cfg *StructuredConfig) { cfg.App.DefaultType = 42 }, ErrInvalidAppConfigs},
		{"bad log level", func(cfg *StructuredConfig) { cfg.Log.Level = "loud" }, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

// TestValidate_ZeroCounter verifies that a zero counter is rejected when no
// default fills it in.
func TestValidate_ZeroCounter(t *testing.T) {
	cfg := validConfig()
	cfg.App.DefaultCounter = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("MPW_APP_USER_NAME", "env-user")
	t.Setenv("MPW_APP_DEFAULT_TYPE", "pin")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-user", b.configs[0].App.UserName)
	assert.Equal(t, models.PIN, b.configs[0].App.DefaultType)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("MPW_APP_DEFAULT_TYPE", "huge")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilIsNoOp verifies that a nil *Flags adds nothing.
func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

// TestWithFlags_AppendsConfig verifies that flag values become a config.
func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(&Flags{UserName: "flag-user", DefaultType: "x"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-user", b.configs[0].App.UserName)
	assert.Equal(t, models.MaximumSecurityPassword, b.configs[0].App.DefaultType)
}

// TestWithFlags_SetsErrorOnBadType verifies that an unknown --default-type is
// reported.
func TestWithFlags_SetsErrorOnBadType(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(&Flags{DefaultType: "huge"})

	assert.ErrorIs(t, b.err, models.ErrUnknownPasswordType)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.UserName = "json-user"
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-user", b.configs[1].App.UserName)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the JSON path of the highest
// precedence source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.UserName = "first-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: path},
		&StructuredConfig{JSONFilePath: "/nonexistent/config.json"},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first-wins", b.configs[2].App.UserName)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies flags > env > json > defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.UserName = "json-user"
	payload.App.DefaultCounter = 7
	payload.Log.Level = "error"
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("MPW_CONFIG", path)
	t.Setenv("MPW_APP_USER_NAME", "env-user")
	t.Setenv("MPW_LOG_LEVEL", "warn")

	cfg, err := GetStructuredConfig(&Flags{LogLevel: "debug"})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "env-user", cfg.App.UserName)
	assert.Equal(t, uint32(7), cfg.App.DefaultCounter)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, models.DefaultPasswordType, cfg.App.DefaultType)
}
