package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot    string
	DeploymentsDir string

	// Deployment inputs
	Treasury     string
	ArtifactPath string
	DeployerKey  string //nolint:gosec // resolved from env, never persisted

	// Context settings
	NetworkName string // As supplied by the operator, never normalized
	RPCURL      string // Overrides the RPC endpoint of NetworkName

	// Execution settings
	Debug          bool
	NonInteractive bool
	AssumeYes      bool
	JSON           bool
	Timeout        time.Duration // 0 disables the run deadline

	// Resolved configurations
	ConfigSource  string // Path of arclara.toml, empty when absent
	ProjectConfig *ProjectConfig
}

// Network represents network configuration
type Network struct {
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ChainID     uint64 `json:"chainId,omitempty"` // 0 accepts whatever the RPC reports
	ExplorerURL string `json:"explorerUrl,omitempty"`
	Configured  bool   `json:"configured"` // Declared in arclara.toml
}
