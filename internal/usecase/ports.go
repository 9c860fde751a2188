package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ChainClient submits transactions on behalf of the deployer account
type ChainClient interface {
	// Connect dials the network RPC and loads the signing identity
	Connect(ctx context.Context, network *config.Network) error
	Deployer() common.Address
	ChainID() uint64
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	// SubmitCreation broadcasts a contract-creation transaction without waiting for it
	SubmitCreation(ctx context.Context, artifact *models.Artifact, constructorArgs ...any) (*models.PendingDeployment, error)
	// WaitDeployed blocks until the creation transaction is included
	WaitDeployed(ctx context.Context, pending *models.PendingDeployment) (*models.ContractHandle, error)
}

// TokenBinder binds read-only callers to deployed token contracts
type TokenBinder interface {
	BindToken(handle *models.ContractHandle) (TokenCaller, error)
}

// TokenCaller exposes the view functions of a deployed ArclaraToken
type TokenCaller interface {
	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
	Decimals(ctx context.Context) (uint8, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	BurnBps(ctx context.Context) (*big.Int, error)
	TreasuryBps(ctx context.Context) (*big.Int, error)
	MaxWalletBps(ctx context.Context) (*big.Int, error)
	MaxSellBps(ctx context.Context) (*big.Int, error)
	CooldownSeconds(ctx context.Context) (*big.Int, error)
	TreasuryWallet(ctx context.Context) (common.Address, error)
	IsExempt(ctx context.Context, account common.Address) (bool, error)
}

// ArtifactLoader loads compiled contract artifacts
type ArtifactLoader interface {
	LoadArtifact(ctx context.Context, path string) (*models.Artifact, error)
}

// DeploymentRecordStore handles persistence of deployment records, one per network
type DeploymentRecordStore interface {
	SaveRecord(ctx context.Context, record *models.DeploymentRecord) (string, error)
	LoadRecord(ctx context.Context, network string) (*models.DeploymentRecord, error)
	RecordPath(network string) string
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// NetworkSelector picks a network when none was given
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, networks []string) (string, error)
}

// BroadcastSummary is shown to the operator before anything is broadcast
type BroadcastSummary struct {
	Network         string
	ChainID         uint64
	Contract        string
	Deployer        common.Address
	DeployerBalance *big.Int
	Treasury        string
}

// BroadcastConfirmer asks the operator for permission to broadcast
type BroadcastConfirmer interface {
	ConfirmBroadcast(ctx context.Context, summary BroadcastSummary) (bool, error)
}

// Clock returns the current time
type Clock func() time.Time

// Progress tracking interfaces

// ExecutionStage represents a stage in the deployment pipeline
type ExecutionStage string

const (
	StageValidating ExecutionStage = "Validating"
	StageDeploying  ExecutionStage = "Deploying"
	StageConfirming ExecutionStage = "Confirming"
	StageVerifying  ExecutionStage = "Verifying"
	StagePersisting ExecutionStage = "Persisting"
	StageCompleted  ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	ReportStage(ctx context.Context, stage ExecutionStage)
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) ReportStage(context.Context, ExecutionStage) {}
func (NopProgress) OnProgress(context.Context, ProgressEvent)   {}
func (NopProgress) Info(string)                                 {}
func (NopProgress) Error(string)                                {}
