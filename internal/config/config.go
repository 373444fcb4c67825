package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/disksweep/pkg/utils"
)

// Config represents the application configuration
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Safety SafetyConfig `yaml:"safety"`
	DryRun bool         `yaml:"dry_run"`
}

// ScanConfig holds the scanner thresholds
type ScanConfig struct {
	DuplicateMinSize   string `yaml:"duplicate_min_size"` // e.g. "100KB"
	LargeFileMinSize   string `yaml:"large_file_min_size"`
	LargeFileMinAge    int64  `yaml:"large_file_min_age_days"` // 0 = disabled
	MaxDepth           int    `yaml:"max_depth"`               // 0 = unbounded
	CategoryDirMinSize string `yaml:"category_dir_min_size"`   // cleanup noise floor
}

// SafetyConfig holds the deletion gate settings
type SafetyConfig struct {
	MinAgeDays     int64    `yaml:"min_age_days"`
	AgeProtection  bool     `yaml:"age_protection"`
	ProtectedPaths []string `yaml:"protected_paths"` // extra blacklist entries
}

// Load loads configuration from a file, falling back to defaults when the
// file doesn't exist.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Scan.LargeFileMinAge < 0 {
		return fmt.Errorf("large file min age must be >= 0")
	}
	if c.Scan.MaxDepth < 0 {
		return fmt.Errorf("max depth must be >= 0")
	}
	if c.Safety.MinAgeDays < 0 {
		return fmt.Errorf("safety min age must be >= 0")
	}
	sizes := []string{
		c.Scan.DuplicateMinSize,
		c.Scan.LargeFileMinSize,
		c.Scan.CategoryDirMinSize,
	}
	for _, size := range sizes {
		if size == "" {
			continue
		}
		if _, err := utils.ParseSize(size); err != nil {
			return fmt.Errorf("invalid size threshold: %w", err)
		}
	}
	for _, path := range c.Safety.ProtectedPaths {
		if path == "" || (!filepath.IsAbs(path) && path[0] != '~') {
			return fmt.Errorf("protected path must be absolute or home-relative: %s", path)
		}
	}
	return nil
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "disksweep", "config.yaml"), nil
}
