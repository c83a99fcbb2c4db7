// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// StructuredConfig is the top-level configuration container of the field
// editor. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the field document location, the one-shot lookup query
	// and the optional import document.
	App App `envPrefix:"APP_"`

	// UI holds terminal presentation settings for field rows.
	UI UI `envPrefix:"UI_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// FieldsFile is the path of the JSON document holding the custom fields
	// of the record being edited.
	// Env: APP_FIELDS_FILE
	FieldsFile string `env:"FIELDS_FILE"`

	// Lookup, when non-empty, makes the program print the value of the field
	// with this name (case-insensitive) and exit instead of opening the UI.
	// Env: APP_LOOKUP
	Lookup string `env:"LOOKUP"`

	// Import, when non-empty, is the path of another field document merged
	// into the edited one on start. Fields with matching names are updated.
	// Env: APP_IMPORT
	Import string `env:"IMPORT"`
}

// UI holds settings of the terminal field list.
type UI struct {
	// Mask is the text shown in place of a hidden value.
	// Env: UI_MASK
	Mask string `env:"MASK"`

	// Width is the row width in cells; revealed values wrap at this width.
	// Env: UI_WIDTH
	Width int `env:"WIDTH"`

	// Height is the number of lines of the scrolling field list.
	// Env: UI_HEIGHT
	Height int `env:"HEIGHT"`
}

// Log holds logger settings. The UI owns the terminal, so logs go to a file.
type Log struct {
	// File is the path of the log file. Empty means stderr.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the values used for every field no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			FieldsFile: "fields.json",
		},
		UI: UI{
			Mask:   "••••••••",
			Width:  60,
			Height: 20,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables, including those of a .env file in the working
//     directory that are not already set
//  2. JSON file (path resolved from sources 1 and 3)
//  3. Command-line flags (os.Args)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
