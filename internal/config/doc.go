// Package config provides configuration loading, merging, and validation
// facilities for cryptfile.
//
// Configuration is assembled from multiple sources in the following
// priority order (earlier sources win for fields they set):
//  1. Environment variables (CRYPTFILE_ prefix)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetConfig]. The per-invocation operation request
// (mode, targets, compress, remove) comes exclusively from flags; env and
// JSON supply machine-local defaults such as the journal and log paths.
package config
