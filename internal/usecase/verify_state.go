package usecase

import (
	"context"
	"log/slog"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// Names of the read queries issued against a freshly deployed token
const (
	QueryName            = "name"
	QuerySymbol          = "symbol"
	QueryDecimals        = "decimals"
	QueryTotalSupply     = "totalSupply"
	QueryDeployerBalance = "balanceOf(deployer)"
	QueryBurnBps         = "burnBps"
	QueryTreasuryBps     = "treasuryBps"
	QueryMaxWalletBps    = "maxWalletBps"
	QueryMaxSellBps      = "maxSellBps"
	QueryCooldownSeconds = "cooldownSeconds"
	QueryTreasuryWallet  = "treasuryWallet"
	QueryDeployerExempt  = "isExempt(deployer)"
	QueryContractExempt  = "isExempt(contract)"
	QueryTreasuryExempt  = "isExempt(treasury)"
)

// VerificationQueries lists every query VerifyState issues
var VerificationQueries = []string{
	QueryName,
	QuerySymbol,
	QueryDecimals,
	QueryTotalSupply,
	QueryDeployerBalance,
	QueryBurnBps,
	QueryTreasuryBps,
	QueryMaxWalletBps,
	QueryMaxSellBps,
	QueryCooldownSeconds,
	QueryTreasuryWallet,
	QueryDeployerExempt,
	QueryContractExempt,
	QueryTreasuryExempt,
}

// VerifyState reads back the state of a deployed token.
// It reports what it observes and asserts nothing about the values.
type VerifyState struct {
	tokens   TokenBinder
	clock    Clock
	progress ProgressSink
	log      *slog.Logger
}

// NewVerifyState creates a new state verifier
func NewVerifyState(tokens TokenBinder, clock Clock, progress ProgressSink, log *slog.Logger) *VerifyState {
	return &VerifyState{
		tokens:   tokens,
		clock:    clock,
		progress: progress,
		log:      log,
	}
}

// VerifyParams identifies the contract and the treasury to inspect
type VerifyParams struct {
	Handle   *models.ContractHandle
	Treasury string // Operator input, looked up with isExempt
}

// Run issues the queries concurrently. Each query owns one field of the
// snapshot, so no synchronization is needed beyond the final Wait.
func (uc *VerifyState) Run(ctx context.Context, params VerifyParams) (*models.VerifiedState, error) {
	handle := params.Handle
	address := handle.Address.Hex()

	uc.progress.ReportStage(ctx, StageVerifying)

	token, err := uc.tokens.BindToken(handle)
	if err != nil {
		return nil, &domain.VerificationError{Query: "bind", Address: address, Err: err}
	}

	state := &models.VerifiedState{}
	treasury := common.HexToAddress(params.Treasury)

	eg, gctx := errgroup.WithContext(ctx)
	query := func(name string, fn func(ctx context.Context) error) {
		eg.Go(func() error {
			if err := fn(gctx); err != nil {
				return &domain.VerificationError{Query: name, Address: address, Err: err}
			}
			return nil
		})
	}

	query(QueryName, func(ctx context.Context) (err error) {
		state.Name, err = token.Name(ctx)
		return err
	})
	query(QuerySymbol, func(ctx context.Context) (err error) {
		state.Symbol, err = token.Symbol(ctx)
		return err
	})
	query(QueryDecimals, func(ctx context.Context) (err error) {
		state.Decimals, err = token.Decimals(ctx)
		return err
	})
	query(QueryTotalSupply, func(ctx context.Context) (err error) {
		state.TotalSupply, err = token.TotalSupply(ctx)
		return err
	})
	query(QueryDeployerBalance, func(ctx context.Context) (err error) {
		state.DeployerBalance, err = token.BalanceOf(ctx, handle.Deployer)
		return err
	})
	query(QueryBurnBps, func(ctx context.Context) (err error) {
		state.Fees.BurnBps, err = token.BurnBps(ctx)
		return err
	})
	query(QueryTreasuryBps, func(ctx context.Context) (err error) {
		state.Fees.TreasuryBps, err = token.TreasuryBps(ctx)
		return err
	})
	query(QueryMaxWalletBps, func(ctx context.Context) (err error) {
		state.Limits.MaxWalletBps, err = token.MaxWalletBps(ctx)
		return err
	})
	query(QueryMaxSellBps, func(ctx context.Context) (err error) {
		state.Limits.MaxSellBps, err = token.MaxSellBps(ctx)
		return err
	})
	query(QueryCooldownSeconds, func(ctx context.Context) (err error) {
		state.CooldownSeconds, err = token.CooldownSeconds(ctx)
		return err
	})
	query(QueryTreasuryWallet, func(ctx context.Context) (err error) {
		state.TreasuryWallet, err = token.TreasuryWallet(ctx)
		return err
	})
	query(QueryDeployerExempt, func(ctx context.Context) (err error) {
		state.Exemptions.Deployer, err = token.IsExempt(ctx, handle.Deployer)
		return err
	})
	query(QueryContractExempt, func(ctx context.Context) (err error) {
		state.Exemptions.Contract, err = token.IsExempt(ctx, handle.Address)
		return err
	})
	query(QueryTreasuryExempt, func(ctx context.Context) (err error) {
		state.Exemptions.Treasury, err = token.IsExempt(ctx, treasury)
		return err
	})

	if err := eg.Wait(); err != nil {
		uc.log.Error("state verification failed", "address", address, "error", err)
		return nil, err
	}
	state.ObservedAt = uc.clock()

	if state.TreasuryWallet != treasury {
		// Reported, not enforced: the contract owns this value.
		uc.log.Warn("on-chain treasury differs from configured treasury",
			"configured", params.Treasury,
			"observed", state.TreasuryWallet.Hex(),
		)
	}

	uc.log.Debug("state verified",
		"address", address,
		"name", state.Name,
		"symbol", state.Symbol,
		"total_supply", state.TotalSupply.String(),
	)
	return state, nil
}
