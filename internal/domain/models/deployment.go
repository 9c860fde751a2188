package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PlaceholderTreasury is the value shipped in example configurations.
// Deploying with it would send treasury fees to an unowned address.
const PlaceholderTreasury = "0xYourTreasuryWalletAddressHere"

// RecordTimeFormat renders deployment times as ISO-8601 UTC with milliseconds
const RecordTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// DeploymentConfiguration is the operator input for a single run
type DeploymentConfiguration struct {
	TreasuryAddress string
	NetworkName     string
	ArtifactPath    string
}

// PendingDeployment is a submitted but not yet confirmed contract creation
type PendingDeployment struct {
	Address     common.Address // Address the contract will be created at
	Deployer    common.Address
	Transaction *types.Transaction
}

// TxHash returns the hash of the creation transaction
func (p *PendingDeployment) TxHash() common.Hash {
	if p.Transaction == nil {
		return common.Hash{}
	}
	return p.Transaction.Hash()
}

// ContractHandle references a confirmed contract instance
type ContractHandle struct {
	Address         common.Address
	Deployer        common.Address
	TransactionHash common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	Artifact        *Artifact
}

// FeeParameters are the token's transfer fees in basis points
type FeeParameters struct {
	BurnBps     *big.Int
	TreasuryBps *big.Int
}

// LimitParameters are the token's per-wallet and per-sell caps in basis points
type LimitParameters struct {
	MaxWalletBps *big.Int
	MaxSellBps   *big.Int
}

// ExemptionFlags records which of the well-known addresses skip fees and limits
type ExemptionFlags struct {
	Deployer bool
	Contract bool
	Treasury bool
}

// VerifiedState is the token state observed right after deployment.
// Values are as read at ObservedAt; nothing prevents later changes.
type VerifiedState struct {
	Name            string
	Symbol          string
	Decimals        uint8
	TotalSupply     *big.Int
	DeployerBalance *big.Int
	Fees            FeeParameters
	Limits          LimitParameters
	CooldownSeconds *big.Int
	TreasuryWallet  common.Address
	Exemptions      ExemptionFlags
	ObservedAt      time.Time
}

// DeploymentRecord is the persisted summary of a successful deployment
type DeploymentRecord struct {
	Network        string              `json:"network" yaml:"network"`
	Deployer       string              `json:"deployer" yaml:"deployer"`
	TokenAddress   string              `json:"tokenAddress" yaml:"tokenAddress"`
	TreasuryWallet string              `json:"treasuryWallet" yaml:"treasuryWallet"`
	DeploymentTime string              `json:"deploymentTime" yaml:"deploymentTime"`
	Configuration  RecordConfiguration `json:"configuration" yaml:"configuration"`
}

// RecordConfiguration holds the observed fee and limit parameters as decimal strings
type RecordConfiguration struct {
	BurnBps         string `json:"burnBps" yaml:"burnBps"`
	TreasuryBps     string `json:"treasuryBps" yaml:"treasuryBps"`
	MaxWalletBps    string `json:"maxWalletBps" yaml:"maxWalletBps"`
	MaxSellBps      string `json:"maxSellBps" yaml:"maxSellBps"`
	CooldownSeconds string `json:"cooldownSeconds" yaml:"cooldownSeconds"`
}

// NewDeploymentRecord builds the record for a verified deployment.
// The treasury is copied verbatim from the operator input.
func NewDeploymentRecord(cfg DeploymentConfiguration, handle *ContractHandle, state *VerifiedState, at time.Time) *DeploymentRecord {
	return &DeploymentRecord{
		Network:        cfg.NetworkName,
		Deployer:       handle.Deployer.Hex(),
		TokenAddress:   handle.Address.Hex(),
		TreasuryWallet: cfg.TreasuryAddress,
		DeploymentTime: at.UTC().Format(RecordTimeFormat),
		Configuration: RecordConfiguration{
			BurnBps:         bigString(state.Fees.BurnBps),
			TreasuryBps:     bigString(state.Fees.TreasuryBps),
			MaxWalletBps:    bigString(state.Limits.MaxWalletBps),
			MaxSellBps:      bigString(state.Limits.MaxSellBps),
			CooldownSeconds: bigString(state.CooldownSeconds),
		},
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
