package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/joho/godotenv"
)

// ProjectFileName is the project configuration file looked up at the project root
const ProjectFileName = "arclara.toml"

// LoadProjectConfig loads the .env files and arclara.toml found at projectRoot.
// A missing arclara.toml yields an empty configuration and an empty source.
// Values are returned unexpanded; ${VAR} references are resolved on use.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	cfg := &config.ProjectConfig{
		Networks: make(map[string]config.NetworkConfig),
	}

	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, "", nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}
	if cfg.Networks == nil {
		cfg.Networks = make(map[string]config.NetworkConfig)
	}

	return cfg, path, nil
}
