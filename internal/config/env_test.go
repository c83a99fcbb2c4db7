// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_FIELDS_FILE": "/tmp/fields.json",
		"APP_LOOKUP":      "PIN",
		"APP_IMPORT":      "/tmp/other.json",

		"UI_MASK":   "***",
		"UI_WIDTH":  "80",
		"UI_HEIGHT": "30",

		"LOG_FILE":  "/tmp/fields.log",
		"LOG_LEVEL": "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/fields.json", cfg.App.FieldsFile)
	assert.Equal(t, "PIN", cfg.App.Lookup)
	assert.Equal(t, "/tmp/other.json", cfg.App.Import)
	assert.Equal(t, "***", cfg.UI.Mask)
	assert.Equal(t, 80, cfg.UI.Width)
	assert.Equal(t, 30, cfg.UI.Height)
	assert.Equal(t, "/tmp/fields.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"UI_WIDTH": "42",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 42, cfg.UI.Width)
	assert.Empty(t, cfg.App.FieldsFile)
	assert.Empty(t, cfg.UI.Mask)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"UI_HEIGHT": "tall",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_FIELDS_FILE",
		"APP_LOOKUP",
		"APP_IMPORT",
		"UI_MASK",
		"UI_WIDTH",
		"UI_HEIGHT",
		"LOG_FILE",
		"LOG_LEVEL",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnvVars(t)
	require.NoError(t, os.Unsetenv("UI_MASK"))
	require.NoError(t, os.Unsetenv("UI_WIDTH"))
	t.Setenv("UI_HEIGHT", "9")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UI_MASK=###\nUI_WIDTH=33\nUI_HEIGHT=99\n"), 0o600))

	require.NoError(t, loadDotEnv(path))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "###", cfg.UI.Mask)
	assert.Equal(t, 33, cfg.UI.Width)
	assert.Equal(t, 9, cfg.UI.Height, "variables already set are kept")
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnv_Malformed(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UI_MASK='unterminated\n"), 0o600))

	err := newConfigBuilder().withDotEnv(path).withEnv().err
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading .env file")
}
