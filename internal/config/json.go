package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		FieldsFile string `json:"fields_file"`
	} `json:"app,omitempty"`

	UI struct {
		Mask   string `json:"mask"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"ui,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			FieldsFile: jsonCfg.App.FieldsFile,
		},
		UI: UI{
			Mask:   jsonCfg.UI.Mask,
			Width:  jsonCfg.UI.Width,
			Height: jsonCfg.UI.Height,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
