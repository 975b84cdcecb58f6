package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DiscoveryConfig contains template-discovery configuration
type DiscoveryConfig struct {
	Templates        []string `mapstructure:"templates"`
	PreReleaseTokens []string `mapstructure:"pr_tokens"`
	SortPriority     []string `mapstructure:"token_sort"`
	DefaultVersion   string   `mapstructure:"default_version"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from .env, config file, and environment.
// Environment variables keep the historical names: APPFIND_TEMPLATES,
// APPFIND_PR_TOKENS, APPFIND_TOKEN_SORT, APPFIND_DEFAULT_VERSION. The
// list-valued ones hold multiple entries separated with os.PathListSeparator.
func Load() (*Config, error) {
	// Local .env overrides nothing already exported, per godotenv semantics
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "appfind"))
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("APPFIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Historical flat names, kept for compatibility with existing setups
	_ = v.BindEnv("discovery.templates", "APPFIND_TEMPLATES")
	_ = v.BindEnv("discovery.pr_tokens", "APPFIND_PR_TOKENS")
	_ = v.BindEnv("discovery.token_sort", "APPFIND_TOKEN_SORT")
	_ = v.BindEnv("discovery.default_version", "APPFIND_DEFAULT_VERSION")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use env and defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Discovery.Templates = splitList(cfg.Discovery.Templates)
	cfg.Discovery.PreReleaseTokens = splitList(cfg.Discovery.PreReleaseTokens)
	cfg.Discovery.SortPriority = splitList(cfg.Discovery.SortPriority)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	v.SetDefault("discovery.templates", []string{})
	v.SetDefault("discovery.pr_tokens", []string{})
	v.SetDefault("discovery.token_sort", []string{})
	v.SetDefault("discovery.default_version", "")

	v.SetDefault("paths.log_file", filepath.Join(homeDir, ".local", "share", "appfind", "appfind.log"))

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.color", "auto")
}

// splitList re-splits entries joined with os.PathListSeparator, the list
// separator the environment variables use.
func splitList(entries []string) []string {
	var out []string
	for _, entry := range entries {
		for _, part := range strings.Split(entry, string(os.PathListSeparator)) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
