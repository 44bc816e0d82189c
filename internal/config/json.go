package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONConfig mirrors the JSON config file layout. The file carries
// machine-local defaults (journal path, log path) rather than per-operation
// settings, which always come from flags.
type JSONConfig struct {
	App struct {
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Storage struct {
		Journal struct {
			DSN string `json:"dsn"`
		} `json:"journal,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			LogPath: jsonCfg.App.LogPath,
		},
		Storage: Storage{
			Journal: Journal{
				DSN: jsonCfg.Storage.Journal.DSN,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
