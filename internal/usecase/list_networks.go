package usecase

import (
	"context"
	"errors"

	"github.com/arclara/arclara-deploy/internal/domain"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a configured network
type NetworkStatus struct {
	Name        string
	RPCURL      string
	ChainID     uint64
	ExplorerURL string
	HasRecord   bool
	Error       error
}

// ListNetworks is a use case for listing configured networks
type ListNetworks struct {
	resolver NetworkResolver
	store    DeploymentRecordStore
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, store DeploymentRecordStore) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		store:    store,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	names := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{Name: name}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.RPCURL = info.RPCURL
			status.ChainID = info.ChainID
			status.ExplorerURL = info.ExplorerURL
		}

		// A corrupt record still counts as present
		if _, err := uc.store.LoadRecord(ctx, name); err == nil || !errors.Is(err, domain.ErrNotFound) {
			status.HasRecord = true
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
