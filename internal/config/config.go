// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/cryptfile/models"

// Config is the top-level configuration container for cryptfile. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the global CRYPTFILE_ prefix.
type Config struct {
	// App holds application-level settings: the optional non-interactive
	// password and the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local operation journal.
	Storage Storage `envPrefix:"STORAGE_"`

	// Run holds the per-invocation operation request: mode, targets, and
	// the compress/remove switches. Populated from command-line flags only.
	Run Run

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CRYPTFILE_CONFIG environment variable or the
	// -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Password supplies the operation password non-interactively. When
	// empty the binary prompts for it. Mainly intended for scripted use;
	// prefer the interactive prompt so the password never lands in shell
	// history.
	// Env: CRYPTFILE_APP_PASSWORD
	Password string `env:"PASSWORD"`

	// LogPath is the file that structured logs are appended to. When empty
	// a "logs" file next to the executable is used.
	// Env: CRYPTFILE_APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// Journal holds the local operation-journal settings.
	Journal Journal `envPrefix:"JOURNAL_"`
}

// Journal holds settings for the SQLite operation journal.
type Journal struct {
	// DSN is the SQLite database path for the operation journal. When
	// empty the journal is disabled and operations are not recorded.
	// Env: CRYPTFILE_STORAGE_JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Run describes the single invocation's operation request as assembled from
// command-line flags. It has no env representation: the operation itself is
// always stated explicitly on the command line.
type Run struct {
	// Mode is the requested operation direction.
	Mode models.Mode

	// Directory marks the targets as directory trees (encrypt path only;
	// on decrypt the container flags decide).
	Directory bool

	// Compress enables gzip compression of packed directories before
	// encryption.
	Compress bool

	// Remove deletes the original file or directory after the operation
	// completes successfully.
	Remove bool

	// Targets are the files or directories to operate on, processed
	// sequentially in the order given.
	Targets []string

	// History, when non-zero, switches the invocation into journal-listing
	// mode: print the N most recent journal entries and exit without
	// touching any files. Takes precedence over the mode selectors.
	History uint64
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources
// win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
