package adapters

import (
	"time"

	"github.com/arclara/arclara-deploy/internal/adapters/artifact"
	"github.com/arclara/arclara-deploy/internal/adapters/blockchain"
	internalconfig "github.com/arclara/arclara-deploy/internal/adapters/config"
	"github.com/arclara/arclara-deploy/internal/adapters/fs"
	"github.com/arclara/arclara-deploy/internal/adapters/interactive"
	"github.com/arclara/arclara-deploy/internal/config"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/google/wire"
)

// ProvideClock provides the wall clock used for record timestamps
func ProvideClock() usecase.Clock {
	return time.Now
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewRecordStoreAdapter,
	wire.Bind(new(usecase.DeploymentRecordStore), new(*fs.RecordStoreAdapter)),
)

// ArtifactSet provides compiled-artifact loading
var ArtifactSet = wire.NewSet(
	artifact.NewLoaderAdapter,
	wire.Bind(new(usecase.ArtifactLoader), new(*artifact.LoaderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.BroadcastConfirmer), new(*interactive.ConfirmerAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClientAdapter,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.ClientAdapter)),
	blockchain.NewTokenBinder,
	wire.Bind(new(usecase.TokenBinder), new(*blockchain.TokenBinder)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	// Provider functions
	ProvideClock,

	// Adapter sets
	FSSet,
	ArtifactSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
