package config

// ProjectConfig represents the arclara.toml configuration file
type ProjectConfig struct {
	Deploy   DeploySection            `toml:"deploy"`
	Networks map[string]NetworkConfig `toml:"networks"`
}

// DeploySection holds the defaults for the deploy command
type DeploySection struct {
	Treasury       string `toml:"treasury,omitempty"`
	Artifact       string `toml:"artifact,omitempty"`
	DeploymentsDir string `toml:"deployments_dir,omitempty"`
}

// NetworkConfig is a single [networks.<name>] table
type NetworkConfig struct {
	RPCURL   string `toml:"rpc_url"`
	ChainID  uint64 `toml:"chain_id,omitempty"`
	Explorer string `toml:"explorer,omitempty"`
}
