// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the Err* sentinels
// wrapped with detail otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if !cfg.App.DefaultType.Valid() {
		return fmt.Errorf("%w: default type %s", ErrInvalidAppConfigs, cfg.App.DefaultType)
	}

	if cfg.App.DefaultCounter < 1 {
		return fmt.Errorf("%w: default counter must be at least 1", ErrInvalidAppConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
