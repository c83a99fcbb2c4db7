package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-f", "record.json",
		"-get", "username",
		"-import", "other.json",
		"-mask", "###",
		"-width", "72",
		"-height", "12",
		"-log", "app.log",
		"-log-level", "warn",
		"-c", "cfg.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "record.json", cfg.App.FieldsFile)
	assert.Equal(t, "username", cfg.App.Lookup)
	assert.Equal(t, "other.json", cfg.App.Import)
	assert.Equal(t, "###", cfg.UI.Mask)
	assert.Equal(t, 72, cfg.UI.Width)
	assert.Equal(t, 12, cfg.UI.Height)
	assert.Equal(t, "app.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "non numeric width", args: []string{"-width", "wide"}},
		{name: "missing value", args: []string{"-f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	prev := usageOutput
	t.Cleanup(func() { usageOutput = prev })

	for _, arg := range []string{"-h", "-help"} {
		t.Run(arg, func(t *testing.T) {
			buf := &bytes.Buffer{}
			usageOutput = buf

			cfg, err := parseFlags([]string{arg})
			assert.Nil(t, cfg)
			require.ErrorIs(t, err, flag.ErrHelp)
			assert.Contains(t, buf.String(), "Usage of fields:")
			assert.Contains(t, buf.String(), "-width")
			assert.Contains(t, buf.String(), "-get")
		})
	}
}

func TestParseFlags_ErrorsPrintNoUsage(t *testing.T) {
	prev := usageOutput
	t.Cleanup(func() { usageOutput = prev })
	buf := &bytes.Buffer{}
	usageOutput = buf

	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, flag.ErrHelp)
	assert.Empty(t, buf.String())
}
