// Package config loads the application configuration from a YAML file, with
// environment variables taking precedence over file contents.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Environment variables overriding the config file.
const (
	EnvSpreadsheetID = "QUEST_SPREADSHEET_ID"
	EnvRange         = "QUEST_RANGE"
	EnvAPIKey        = "QUEST_API_KEY"
	EnvCredentials   = "QUEST_CREDENTIALS"
)

// DefaultRange is used when neither the file nor the environment names one.
const DefaultRange = "Tasks!A1:Z"

// Config identifies the spreadsheet to read and how to authenticate.
type Config struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`
	Range         string `yaml:"range"`
	APIKey        string `yaml:"api_key"`
	// Credentials is a path to a service-account credentials file, used
	// when no API key is given.
	Credentials string `yaml:"credentials"`
}

// Load reads the config file at the given path (if it exists) and applies
// environment overrides.  A missing file is not an error: a fully
// env-configured setup needs no file at all.
func Load(path string) (Config, error) {
	var cfg Config
	//
	bytes, err := os.ReadFile(path)
	//
	switch {
	case os.IsNotExist(err):
		// fall through to env overrides
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(bytes, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	//
	cfg.applyEnv()
	//
	if cfg.Range == "" {
		cfg.Range = DefaultRange
	}
	//
	return cfg, nil
}

func (p *Config) applyEnv() {
	if v := os.Getenv(EnvSpreadsheetID); v != "" {
		p.SpreadsheetID = v
	}

	if v := os.Getenv(EnvRange); v != "" {
		p.Range = v
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		p.APIKey = v
	}

	if v := os.Getenv(EnvCredentials); v != "" {
		p.Credentials = v
	}
}
