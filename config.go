package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir = ".summarizer"
	ledgerFilename   = "Summarized_URLs.md"
	vaultEnvVar      = "OBSIDIAN_PATH"
)

// Embedded configuration files
//
//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/summarize-prompt.md
var defaultPromptTemplate string

// Settings represents the YAML configuration structure
type Settings struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// Config holds everything the pipeline components need: the vault and ledger
// paths plus model settings. It is built once in main and passed into each
// component at construction time.
type Config struct {
	VaultDir   string
	LedgerPath string
	Settings   *Settings

	// PromptPath optionally overrides the embedded prompt template.
	PromptPath string
}

// NewConfig builds a Config from the environment and the settings file.
// The vault root comes from the OBSIDIAN_PATH environment variable and the
// ledger path is derived from it.
func NewConfig(promptPath string) (*Config, error) {
	vault := os.Getenv(vaultEnvVar)
	if vault == "" {
		return nil, fmt.Errorf("%s environment variable is required", vaultEnvVar)
	}

	if err := ensureConfigExists(); err != nil {
		return nil, err
	}

	settings, err := loadSettings(filepath.Join(defaultConfigDir, "settings.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return &Config{
		VaultDir:   vault,
		LedgerPath: filepath.Join(vault, ledgerFilename),
		Settings:   settings,
		PromptPath: promptPath,
	}, nil
}

// PromptTemplate returns the summarization prompt (from override file or
// embedded).
func (c *Config) PromptTemplate() string {
	if c.PromptPath != "" {
		if content, err := os.ReadFile(c.PromptPath); err == nil {
			return string(content)
		}
	}
	return defaultPromptTemplate
}

// loadSettings loads settings from a YAML file, falling back to the embedded
// defaults if the file doesn't exist.
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		data = []byte(defaultSettings)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	return &settings, nil
}

// ensureConfigExists creates the config directory and writes settings.yaml if
// needed so users have something to customize.
func ensureConfigExists() error {
	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settingsFile := filepath.Join(defaultConfigDir, "settings.yaml")
	if _, err := os.Stat(settingsFile); os.IsNotExist(err) {
		if err := os.WriteFile(settingsFile, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("writing settings.yaml: %w", err)
		}
	}

	return nil
}
