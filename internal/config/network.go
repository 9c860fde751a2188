package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/sahilm/fuzzy"
)

// NetworkResolver resolves network names against arclara.toml
type NetworkResolver struct {
	project     *config.ProjectConfig
	overrideFor string // Network the RPC override applies to
	overrideURL string
}

// NewNetworkResolver creates a new network resolver. When rpcURL is set it
// replaces the endpoint of networkName, which then need not be declared.
func NewNetworkResolver(project *config.ProjectConfig, networkName, rpcURL string) *NetworkResolver {
	if project == nil {
		project = &config.ProjectConfig{}
	}
	return &NetworkResolver{
		project:     project,
		overrideFor: networkName,
		overrideURL: rpcURL,
	}
}

// GetNetworks returns the declared network names, sorted
func (r *NetworkResolver) GetNetworks() []string {
	names := make([]string, 0, len(r.project.Networks))
	for name := range r.project.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a network name to its configuration. The name is kept
// exactly as given.
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	declared, exists := r.project.Networks[networkName]

	if r.overrideURL != "" && networkName == r.overrideFor {
		network := &config.Network{
			Name:       networkName,
			RPCURL:     r.overrideURL,
			Configured: exists,
		}
		if exists {
			network.ChainID = declared.ChainID
			network.ExplorerURL = explorerFor(declared)
		}
		return network, nil
	}

	if !exists {
		// Fall back to the conventional <NAME>_RPC_URL variable
		if rpcURL := os.Getenv(GenerateEnvVarName(networkName)); rpcURL != "" {
			return &config.Network{Name: networkName, RPCURL: rpcURL}, nil
		}
		return nil, r.notFound(networkName)
	}

	rpcURL := os.ExpandEnv(declared.RPCURL)
	if rpcURL == "" {
		if envVar, ok := DetectEnvVar(declared.RPCURL); ok {
			return nil, fmt.Errorf("rpc_url for network '%s' is empty: %s is not set", networkName, envVar)
		}
		return nil, fmt.Errorf("rpc_url for network '%s' is empty", networkName)
	}

	return &config.Network{
		Name:        networkName,
		RPCURL:      rpcURL,
		ChainID:     declared.ChainID,
		ExplorerURL: explorerFor(declared),
		Configured:  true,
	}, nil
}

func (r *NetworkResolver) notFound(networkName string) error {
	err := fmt.Errorf("network '%s' not found in %s [networks]: %w", networkName, ProjectFileName, domain.ErrNotFound)

	matches := fuzzy.Find(networkName, r.GetNetworks())
	if len(matches) == 0 {
		return err
	}
	suggestions := make([]string, 0, 3)
	for i, match := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
}

func explorerFor(declared config.NetworkConfig) string {
	if explorer := os.ExpandEnv(declared.Explorer); explorer != "" {
		return explorer
	}
	return defaultExplorerURL(declared.ChainID)
}

// defaultExplorerURL returns the block explorer of well-known chains
func defaultExplorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 17000:
		return "https://holesky.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 84532:
		return "https://sepolia.basescan.org"
	case 42161:
		return "https://arbiscan.io"
	case 421614:
		return "https://sepolia.arbiscan.io"
	case 56:
		return "https://bscscan.com"
	case 43114:
		return "https://snowtrace.io"
	default:
		return ""
	}
}
