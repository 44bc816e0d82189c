// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [Config] describes exactly one
// runnable operation before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Run.History > 0 {
		if cfg.Storage.Journal.DSN == "" {
			return ErrNoJournalConfigured
		}
		return nil
	}

	if cfg.Run.Mode == 0 {
		return ErrNoModeSelected
	}

	if len(cfg.Run.Targets) == 0 {
		return ErrNoTargets
	}

	return nil
}
