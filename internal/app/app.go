package app

import (
	"log/slog"

	"github.com/arclara/arclara-deploy/internal/adapters/blockchain"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.NetworkSelector
	Networks usecase.NetworkResolver

	// Use cases
	DeployToken    *usecase.DeployToken
	ShowDeployment *usecase.ShowDeployment
	ListNetworks   *usecase.ListNetworks

	// Adapters with resources to release
	Client *blockchain.ClientAdapter
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.NetworkSelector,
	networks usecase.NetworkResolver,
	deployToken *usecase.DeployToken,
	showDeployment *usecase.ShowDeployment,
	listNetworks *usecase.ListNetworks,
	client *blockchain.ClientAdapter,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		Selector:       selector,
		Networks:       networks,
		DeployToken:    deployToken,
		ShowDeployment: showDeployment,
		ListNetworks:   listNetworks,
		Client:         client,
	}, nil
}

// Close releases the RPC connection, if one was opened
func (a *App) Close() {
	if a.Client != nil {
		a.Client.Close()
	}
}
