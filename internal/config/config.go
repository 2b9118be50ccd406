package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvToken is the environment variable that overrides the configured API
// token. A .env file in the working directory is honored as well.
const EnvToken = "TODOMARK_API_TOKEN"

// Defaults applied when the config file is missing or incomplete.
const (
	DefaultBaseURL      = "https://api.todoist.com/rest/v2"
	DefaultCursorMarker = "<!-- todomark -->"
	DefaultSeparator    = "\n---\n\n"
)

// Config represents the application configuration
type Config struct {
	APIToken     string `yaml:"api_token"`
	BaseURL      string `yaml:"base_url"`
	NoteFile     string `yaml:"note_file"`
	CursorMarker string `yaml:"cursor_marker"`
	Separator    string `yaml:"separator"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. The API token may be
// overridden by the TODOMARK_API_TOKEN environment variable (or a .env file
// in the working directory).
func Load() (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath()
	if err != nil {
		// Can't determine config path; env override still applies
		applyEnvToken(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		applyEnvToken(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	applyEnvToken(config)

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// 0600: the file holds the API token
	return os.WriteFile(configPath, data, 0o600)
}

// Path returns the location of the config file for display purposes
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todomark", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todomark", "config.yaml"), nil
}

func defaultConfig() *Config {
	return &Config{
		BaseURL:      DefaultBaseURL,
		CursorMarker: DefaultCursorMarker,
		Separator:    DefaultSeparator,
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.CursorMarker == "" {
		c.CursorMarker = DefaultCursorMarker
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
}

// applyEnvToken overrides the token from the environment. A .env file in
// the working directory is loaded first; absence is not an error.
func applyEnvToken(c *Config) {
	_ = godotenv.Load()
	if token := os.Getenv(EnvToken); token != "" {
		c.APIToken = token
	}
}
