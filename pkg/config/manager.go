package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AnalysisConfigManager loads and validates analysis configurations
type AnalysisConfigManager struct{}

// NewAnalysisConfigManager creates a new configuration manager
func NewAnalysisConfigManager() *AnalysisConfigManager {
	return &AnalysisConfigManager{}
}

// LoadConfig builds a configuration: defaults first, then the optional
// JSON config file on top. Flag overrides are applied by the caller
// before Validate.
func (m *AnalysisConfigManager) LoadConfig(configFile string) (*AnalysisConfig, error) {
	cfg := NewDefaultAnalysisConfig()

	if configFile != "" {
		if err := m.loadFromFile(ResolveConfigPath(configFile), cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	return cfg, nil
}

// ResolveConfigPath expands a bare config name to configs/<name>.json
func ResolveConfigPath(configFile string) string {
	if configFile != "" && !strings.ContainsAny(configFile, "/\\") && !strings.HasSuffix(configFile, ".json") {
		return filepath.Join("configs", configFile+".json")
	}
	return configFile
}

// loadFromFile loads configuration from a JSON file
func (m *AnalysisConfigManager) loadFromFile(configFile string, cfg *AnalysisConfig) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}

	return nil
}
