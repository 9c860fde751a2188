package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math/big"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
)

// Outcome classifies a run that did not fail
type Outcome string

const (
	// OutcomeSucceeded means the contract was deployed, verified and recorded
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeDegraded means the contract was deployed and verified but the
	// record could not be written
	OutcomeDegraded Outcome = "degraded"
)

// DeployTokenResult contains everything observed during a run
type DeployTokenResult struct {
	Outcome         Outcome
	Network         *config.Network
	ChainID         uint64
	Handle          *models.ContractHandle
	DeployerBalance *big.Int
	State           *models.VerifiedState
	Record          *models.DeploymentRecord
	RecordPath      string
	PersistErr      *domain.PersistenceError
}

// DeployToken runs the validate, deploy, verify, persist pipeline once
type DeployToken struct {
	validator *ValidateConfiguration
	artifacts ArtifactLoader
	networks  NetworkResolver
	executor  *ExecuteDeployment
	verifier  *VerifyState
	persister *PersistRecord
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployToken creates a new deployment pipeline
func NewDeployToken(
	validator *ValidateConfiguration,
	artifacts ArtifactLoader,
	networks NetworkResolver,
	executor *ExecuteDeployment,
	verifier *VerifyState,
	persister *PersistRecord,
	progress ProgressSink,
	log *slog.Logger,
) *DeployToken {
	return &DeployToken{
		validator: validator,
		artifacts: artifacts,
		networks:  networks,
		executor:  executor,
		verifier:  verifier,
		persister: persister,
		progress:  progress,
		log:       log,
	}
}

// Run executes the pipeline. A returned error is a ConfigurationError,
// DeploymentError or VerificationError; a persistence failure is reported
// through the result instead.
func (uc *DeployToken) Run(ctx context.Context, cfg models.DeploymentConfiguration) (*DeployTokenResult, error) {
	uc.progress.ReportStage(ctx, StageValidating)

	treasury, err := uc.validator.Run(cfg)
	if err != nil {
		return nil, err
	}

	network, err := uc.networks.ResolveNetwork(ctx, cfg.NetworkName)
	if err != nil {
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &domain.ConfigurationError{Field: "network", Value: cfg.NetworkName, Err: err}
	}

	artifact, err := uc.artifacts.LoadArtifact(ctx, cfg.ArtifactPath)
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "artifact", Value: cfg.ArtifactPath, Err: err}
	}
	uc.log.Debug("configuration validated",
		"network", network.Name,
		"treasury", treasury,
		"contract", artifact.ContractName,
	)

	executed, err := uc.executor.Run(ctx, ExecuteParams{
		Network:  network,
		Treasury: treasury,
		Artifact: artifact,
	})
	if err != nil {
		return nil, err
	}

	result := &DeployTokenResult{
		Network:         network,
		ChainID:         executed.ChainID,
		Handle:          executed.Handle,
		DeployerBalance: executed.DeployerBalance,
	}

	state, err := uc.verifier.Run(ctx, VerifyParams{Handle: executed.Handle, Treasury: treasury})
	if err != nil {
		return nil, err
	}
	result.State = state

	persisted := uc.persister.Run(ctx, cfg, executed.Handle, state)
	result.Record = persisted.Record
	result.RecordPath = persisted.Path
	result.PersistErr = persisted.Err

	result.Outcome = OutcomeSucceeded
	if persisted.Err != nil {
		result.Outcome = OutcomeDegraded
	}

	uc.progress.ReportStage(ctx, StageCompleted)
	uc.log.Info("deployment finished",
		"network", cfg.NetworkName,
		"address", executed.Handle.Address.Hex(),
		"outcome", string(result.Outcome),
	)
	return result, nil
}
