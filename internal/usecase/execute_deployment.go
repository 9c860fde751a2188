package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ExecuteDeployment submits the contract-creation transaction and waits for it
type ExecuteDeployment struct {
	chain     ChainClient
	confirmer BroadcastConfirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewExecuteDeployment creates a new deployment executor
func NewExecuteDeployment(
	chain ChainClient,
	confirmer BroadcastConfirmer,
	progress ProgressSink,
	log *slog.Logger,
) *ExecuteDeployment {
	return &ExecuteDeployment{
		chain:     chain,
		confirmer: confirmer,
		progress:  progress,
		log:       log,
	}
}

// ExecuteParams contains the validated inputs of the executor
type ExecuteParams struct {
	Network  *config.Network
	Treasury string
	Artifact *models.Artifact
}

// ExecuteResult contains the confirmed deployment
type ExecuteResult struct {
	Handle          *models.ContractHandle
	ChainID         uint64
	DeployerBalance *big.Int
}

// Run makes exactly one creation attempt. Every failure is a DeploymentError.
func (uc *ExecuteDeployment) Run(ctx context.Context, params ExecuteParams) (*ExecuteResult, error) {
	if params.Network == nil || params.Network.RPCURL == "" {
		return nil, &domain.DeploymentError{Stage: "connect", Err: fmt.Errorf("no RPC endpoint configured")}
	}

	if err := uc.chain.Connect(ctx, params.Network); err != nil {
		return nil, &domain.DeploymentError{Stage: "connect", Err: err}
	}

	deployer := uc.chain.Deployer()
	chainID := uc.chain.ChainID()

	// Balance is informational; an underfunded deployer fails at submission.
	balance, err := uc.chain.BalanceAt(ctx, deployer)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: "balance", Err: err}
	}
	uc.log.Info("deployer ready",
		"network", params.Network.Name,
		"chain_id", chainID,
		"deployer", deployer.Hex(),
		"balance_wei", balance.String(),
	)
	uc.progress.Info(fmt.Sprintf("Deployer address: %s", deployer.Hex()))
	uc.progress.Info(fmt.Sprintf("Deployer balance: %s ETH", models.FormatEther(balance)))

	confirmed, err := uc.confirmer.ConfirmBroadcast(ctx, BroadcastSummary{
		Network:         params.Network.Name,
		ChainID:         chainID,
		Contract:        params.Artifact.ContractName,
		Deployer:        deployer,
		DeployerBalance: balance,
		Treasury:        params.Treasury,
	})
	if err != nil {
		return nil, &domain.DeploymentError{Stage: "confirm", Err: err}
	}
	if !confirmed {
		return nil, &domain.DeploymentError{Stage: "confirm", Err: domain.ErrBroadcastDeclined}
	}

	uc.progress.ReportStage(ctx, StageDeploying)
	pending, err := uc.chain.SubmitCreation(ctx, params.Artifact, common.HexToAddress(params.Treasury))
	if err != nil {
		return nil, &domain.DeploymentError{Stage: "submit", Err: err}
	}
	uc.log.Info("creation transaction submitted",
		"tx", pending.TxHash().Hex(),
		"expected_address", pending.Address.Hex(),
	)

	uc.progress.ReportStage(ctx, StageConfirming)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageConfirming,
		Message: fmt.Sprintf("Waiting for %s to be mined...", pending.TxHash().Hex()),
		Spinner: true,
	})

	handle, err := uc.chain.WaitDeployed(ctx, pending)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: "confirmation", Err: err}
	}
	handle.Artifact = params.Artifact
	uc.log.Info("contract deployed",
		"address", handle.Address.Hex(),
		"block", handle.BlockNumber,
		"gas_used", handle.GasUsed,
	)

	return &ExecuteResult{
		Handle:          handle,
		ChainID:         chainID,
		DeployerBalance: balance,
	}, nil
}
