package config

import "github.com/fenilsonani/disksweep/internal/security"

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		Scan: ScanConfig{
			DuplicateMinSize:   "100KB",
			LargeFileMinSize:   "100MB",
			LargeFileMinAge:    0,
			MaxDepth:           0,
			CategoryDirMinSize: "100KB",
		},
		Safety: SafetyConfig{
			MinAgeDays:    security.DefaultMinAgeDays,
			AgeProtection: true,
		},
		DryRun: false,
	}
}
