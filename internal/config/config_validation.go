// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	minRowWidth   = 20
	minListHeight = 3
)

// validate checks that the merged [StructuredConfig] is usable at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.FieldsFile) == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.UI.Width < minRowWidth || cfg.UI.Height < minListHeight || cfg.UI.Mask == "" {
		return fmt.Errorf("%w: width must be >= %d, height >= %d, mask non-empty",
			ErrInvalidUIConfigs, minRowWidth, minListHeight)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
