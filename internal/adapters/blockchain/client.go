package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is the part of an RPC client the deployer needs
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dialer opens a Backend for an RPC endpoint
type Dialer func(ctx context.Context, rpcURL string) (Backend, error)

// DialRPC connects to a JSON-RPC endpoint with ethclient
func DialRPC(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ClientAdapter implements the ChainClient interface on top of go-ethereum
type ClientAdapter struct {
	dial   Dialer
	keyHex string
	log    *slog.Logger

	backend Backend
	auth    *bind.TransactOpts
	chainID uint64
}

// NewClientAdapter creates a chain client signing with the configured deployer key
func NewClientAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ClientAdapter {
	return NewClientAdapterWithDialer(cfg.DeployerKey, DialRPC, log)
}

// NewClientAdapterWithDialer creates a chain client using a custom dialer
func NewClientAdapterWithDialer(keyHex string, dial Dialer, log *slog.Logger) *ClientAdapter {
	return &ClientAdapter{
		dial:   dial,
		keyHex: keyHex,
		log:    log.With("component", "blockchain"),
	}
}

// Connect establishes connection to the blockchain and loads the signer
func (c *ClientAdapter) Connect(ctx context.Context, network *config.Network) error {
	key, err := parseKey(c.keyHex)
	if err != nil {
		return err
	}

	backend, err := c.dial(ctx, network.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	// Verify chain ID matches
	networkChainID, err := backend.ChainID(ctx)
	if err != nil {
		closeBackend(backend)
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && networkChainID.Uint64() != network.ChainID {
		closeBackend(backend)
		return fmt.Errorf("%w: %s expects chain ID %d, RPC reports %d",
			domain.ErrNetworkMismatch, network.Name, network.ChainID, networkChainID.Uint64())
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, networkChainID)
	if err != nil {
		closeBackend(backend)
		return fmt.Errorf("failed to create transactor: %w", err)
	}

	c.Close()
	c.backend = backend
	c.auth = auth
	c.chainID = networkChainID.Uint64()

	c.log.Debug("connected", "network", network.Name, "chain_id", c.chainID, "deployer", auth.From.Hex())
	return nil
}

// Deployer returns the signing address
func (c *ClientAdapter) Deployer() common.Address {
	if c.auth == nil {
		return common.Address{}
	}
	return c.auth.From
}

// ChainID returns the chain ID reported by the RPC
func (c *ClientAdapter) ChainID() uint64 {
	return c.chainID
}

// Backend returns the connected backend, or nil before Connect
func (c *ClientAdapter) Backend() Backend {
	return c.backend
}

// BalanceAt returns the latest balance of account in wei
func (c *ClientAdapter) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	if c.backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}
	return c.backend.BalanceAt(ctx, account, nil)
}

// SubmitCreation signs and broadcasts the creation transaction. Gas is
// estimated by the node.
func (c *ClientAdapter) SubmitCreation(ctx context.Context, artifact *models.Artifact, constructorArgs ...any) (*models.PendingDeployment, error) {
	if c.backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}
	if len(artifact.Bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has no creation bytecode", artifact.ContractName)
	}

	opts := *c.auth
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(&opts, artifact.ABI, artifact.Bytecode, c.backend, constructorArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to send creation transaction: %w", err)
	}

	return &models.PendingDeployment{
		Address:     address,
		Deployer:    opts.From,
		Transaction: tx,
	}, nil
}

// WaitDeployed blocks until the creation transaction is mined and code
// exists at the created address.
func (c *ClientAdapter) WaitDeployed(ctx context.Context, pending *models.PendingDeployment) (*models.ContractHandle, error) {
	if c.backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}

	receipt, err := bind.WaitMined(ctx, c.backend, pending.Transaction)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", pending.TxHash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("creation transaction %s reverted", pending.TxHash().Hex())
	}

	address := receipt.ContractAddress
	if address == (common.Address{}) {
		address = pending.Address
	}

	code, err := c.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w %s", domain.ErrNoCode, address.Hex())
	}

	handle := &models.ContractHandle{
		Address:         address,
		Deployer:        pending.Deployer,
		TransactionHash: receipt.TxHash,
		GasUsed:         receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		handle.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return handle, nil
}

// Close releases the RPC connection
func (c *ClientAdapter) Close() {
	if c.backend != nil {
		closeBackend(c.backend)
		c.backend = nil
	}
}

func closeBackend(b Backend) {
	if closer, ok := b.(interface{ Close() }); ok {
		closer.Close()
	}
}

func parseKey(keyHex string) (*ecdsa.PrivateKey, error) {
	keyHex = strings.TrimPrefix(strings.TrimSpace(keyHex), "0x")
	if keyHex == "" {
		return nil, fmt.Errorf("no deployer key: set ARCLARA_DEPLOYER_KEY")
	}
	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid deployer key: %w", err)
	}
	return key, nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*ClientAdapter)(nil)
