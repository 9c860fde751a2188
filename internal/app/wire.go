//go:build wireinject
// +build wireinject

package app

import (
	"github.com/arclara/arclara-deploy/internal/adapters"
	"github.com/arclara/arclara-deploy/internal/config"
	"github.com/arclara/arclara-deploy/internal/logging"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewValidateConfiguration,
		usecase.NewExecuteDeployment,
		usecase.NewVerifyState,
		usecase.NewPersistRecord,
		usecase.NewDeployToken,
		usecase.NewShowDeployment,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
