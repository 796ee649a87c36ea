package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "ledgerlens.yaml"

// Config represents the top-level ledgerlens.yaml configuration.
type Config struct {
	Ledger   LedgerConfig   `yaml:"ledger"`
	Heatmap  HeatmapConfig  `yaml:"heatmap"`
	Contacts ContactsConfig `yaml:"contacts"`
	Git      GitConfig      `yaml:"git"`
}

// LedgerConfig locates the transaction ledger.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// HeatmapConfig controls the day-activity view.
type HeatmapConfig struct {
	Days int `yaml:"days"`
}

// ContactsConfig controls counterparty rankings.
type ContactsConfig struct {
	TopN int `yaml:"top_n"`
}

// GitConfig controls git integration for ledger mutations.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a ledgerlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(ledgerPath string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			Path: ledgerPath,
		},
		Heatmap: HeatmapConfig{
			Days: 90,
		},
		Contacts: ContactsConfig{
			TopN: 10,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Ledgerlens",
			AuthorEmail: "bot@ledgerlens.dev",
		},
	}
}
