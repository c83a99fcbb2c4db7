package config

import (
	"encoding/json"
	"os"
	"testing"

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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.flags)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
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

// TestBuild_LaterSourceWins verifies that non-zero fields of a later config
// override the same fields of an earlier one, while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{FieldsFile: "env.json"}, UI: UI{Mask: "env"}},
		&StructuredConfig{App: App{FieldsFile: "flag.json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.App.FieldsFile)
	assert.Equal(t, "env", cfg.UI.Mask)
	assert.Equal(t, Defaults().UI.Width, cfg.UI.Width)
}

// TestBuild_ValidationError verifies that an invalid merged config is
// reported.
func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{UI: UI{Width: 5}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidUIConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_OverridesEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"fields_file": "from-json.json"},
		"ui":  map[string]any{"width": 90},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{FieldsFile: "from-env.json"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json.json", cfg.App.FieldsFile)
	assert.Equal(t, 90, cfg.UI.Width)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestWithFlags_OverrideJSON verifies that flags win over the JSON file they
// point to, while JSON values for unset flags still apply.
func TestWithFlags_OverrideJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"fields_file": "from-json.json"},
		"ui":  map[string]any{"width": 90, "mask": "json-mask"},
	})
	setEnvVars(t, map[string]string{"UI_MASK": "env-mask"})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-width", "70", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, 70, cfg.UI.Width)
	assert.Equal(t, "from-json.json", cfg.App.FieldsFile)
	assert.Equal(t, "json-mask", cfg.UI.Mask)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestWithJSON_FlagPathWins verifies that a -c flag selects the JSON file
// over a path set in the environment.
func TestWithJSON_FlagPathWins(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"ui": map[string]any{"width": 80}})
	flagPath := writeTempJSONConfig(t, map[string]any{"ui": map[string]any{"width": 90}})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: envPath})
	b.flags = &StructuredConfig{JSONFilePath: flagPath}

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.UI.Width)
	assert.Equal(t, flagPath, cfg.JSONFilePath)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_FIELDS_FILE": "env.json",
		"UI_MASK":         "env-mask",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-f", "flags.json"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "flags.json", cfg.App.FieldsFile)
	assert.Equal(t, "env-mask", cfg.UI.Mask)
}

func TestWithFlags_Error(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Nil(t, b.flags)
	assert.Empty(t, b.configs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "blank fields file", mutate: func(c *StructuredConfig) { c.App.FieldsFile = "  " }, wantErr: ErrInvalidAppConfigs},
		{name: "narrow row", mutate: func(c *StructuredConfig) { c.UI.Width = 10 }, wantErr: ErrInvalidUIConfigs},
		{name: "short list", mutate: func(c *StructuredConfig) { c.UI.Height = 1 }, wantErr: ErrInvalidUIConfigs},
		{name: "empty mask", mutate: func(c *StructuredConfig) { c.UI.Mask = "" }, wantErr: ErrInvalidUIConfigs},
		{name: "unknown level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
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
