package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// TokenBinder binds read-only token callers through the connected client
type TokenBinder struct {
	client *ClientAdapter
}

// NewTokenBinder creates a new token binder
func NewTokenBinder(client *ClientAdapter) *TokenBinder {
	return &TokenBinder{client: client}
}

// BindToken binds the deployed contract using the ABI it was created from
func (b *TokenBinder) BindToken(handle *models.ContractHandle) (usecase.TokenCaller, error) {
	backend := b.client.Backend()
	if backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}
	if handle.Artifact == nil {
		return nil, fmt.Errorf("no ABI for contract at %s", handle.Address.Hex())
	}

	contract := bind.NewBoundContract(handle.Address, handle.Artifact.ABI, backend, backend, backend)
	return &TokenCaller{contract: contract}, nil
}

// TokenCaller calls the ArclaraToken view functions
type TokenCaller struct {
	contract *bind.BoundContract
}

func (t *TokenCaller) Name(ctx context.Context) (string, error) {
	return call[string](ctx, t.contract, "name")
}

func (t *TokenCaller) Symbol(ctx context.Context) (string, error) {
	return call[string](ctx, t.contract, "symbol")
}

func (t *TokenCaller) Decimals(ctx context.Context) (uint8, error) {
	return call[uint8](ctx, t.contract, "decimals")
}

func (t *TokenCaller) TotalSupply(ctx context.Context) (*big.Int, error) {
	return callUint(ctx, t.contract, "totalSupply")
}

func (t *TokenCaller) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	return callUint(ctx, t.contract, "balanceOf", account)
}

func (t *TokenCaller) BurnBps(ctx context.Context) (*big.Int, error) {
	return callUint(ctx, t.contract, "burnBps")
}

func (t *TokenCaller) TreasuryBps(ctx context.Context) (*big.Int, error) {
	return callUint(ctx, t.contract, "treasuryBps")
}

func (t *TokenCaller) MaxWalletBps(ctx context.Context) (*big.Int, error) {
	return callUint(ctx, t.contract, "maxWalletBps")
}

func (t *TokenCaller) MaxSellBps(ctx context.Context) (*big.Int, error) {
	return callUint(ctx, t.contract, "maxSellBps")
}

func (t *TokenCaller) CooldownSeconds(ctx context.Context) (*big.Int, error) {
	return callUint(ctx, t.contract, "cooldownSeconds")
}

func (t *TokenCaller) TreasuryWallet(ctx context.Context) (common.Address, error) {
	return call[common.Address](ctx, t.contract, "treasuryWallet")
}

func (t *TokenCaller) IsExempt(ctx context.Context, account common.Address) (bool, error) {
	return call[bool](ctx, t.contract, "isExempt", account)
}

func call[T any](ctx context.Context, contract *bind.BoundContract, method string, args ...any) (T, error) {
	var zero T
	var out []any
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return zero, fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(out) == 0 {
		return zero, fmt.Errorf("%s returned no values", method)
	}
	v, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s returned %T, expected %T", method, out[0], zero)
	}
	return v, nil
}

// callUint accepts any unsigned integer width the ABI declares
func callUint(ctx context.Context, contract *bind.BoundContract, method string, args ...any) (*big.Int, error) {
	v, err := call[any](ctx, contract, method, args...)
	if err != nil {
		return nil, err
	}
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	default:
		return nil, fmt.Errorf("%s returned %T, expected an unsigned integer", method, v)
	}
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.TokenBinder = (*TokenBinder)(nil)
	_ usecase.TokenCaller = (*TokenCaller)(nil)
)
