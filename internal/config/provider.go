package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Built-in defaults, overridden by [deploy] in arclara.toml
const (
	DefaultDeploymentsDir = "deployments"
	DefaultArtifactPath   = "artifacts/contracts/ArclaraToken.sol/ArclaraToken.json"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	project, source, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	applyProjectDefaults(v, project)

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DeploymentsDir: v.GetString("deployments_dir"),
		Treasury:       v.GetString("treasury"),
		ArtifactPath:   v.GetString("artifact"),
		DeployerKey:    v.GetString("deployer_key"),
		NetworkName:    v.GetString("network"),
		RPCURL:         v.GetString("rpc_url"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		AssumeYes:      v.GetBool("yes"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		ConfigSource:   source,
		ProjectConfig:  project,
	}

	return cfg, nil
}

// applyProjectDefaults makes arclara.toml values sit below env and flags
func applyProjectDefaults(v *viper.Viper, project *config.ProjectConfig) {
	if project.Deploy.Treasury != "" {
		v.SetDefault("treasury", os.ExpandEnv(project.Deploy.Treasury))
	}
	if project.Deploy.Artifact != "" {
		v.SetDefault("artifact", os.ExpandEnv(project.Deploy.Artifact))
	}
	if project.Deploy.DeploymentsDir != "" {
		v.SetDefault("deployments_dir", os.ExpandEnv(project.Deploy.DeploymentsDir))
	}
}

// FindProjectRoot walks up from current directory to find arclara.toml.
// Without one the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ARCLARA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("deployments_dir", DefaultDeploymentsDir)
	v.SetDefault("artifact", DefaultArtifactPath)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Keys read only from the environment
	_ = v.BindEnv("deployer_key")

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.ProjectConfig, cfg.NetworkName, cfg.RPCURL)
}
