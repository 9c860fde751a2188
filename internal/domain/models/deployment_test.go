package models

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeploymentRecord(t *testing.T) {
	cfg := DeploymentConfiguration{
		TreasuryAddress: "0xabcdef0123456789012345678901234567890123",
		NetworkName:     "testnet",
	}
	handle := &ContractHandle{
		Address:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Deployer: common.HexToAddress("0x2222222222222222222222222222222222222222"),
	}
	state := &VerifiedState{
		Fees:            FeeParameters{BurnBps: big.NewInt(100), TreasuryBps: big.NewInt(200)},
		Limits:          LimitParameters{MaxWalletBps: big.NewInt(150), MaxSellBps: big.NewInt(50)},
		CooldownSeconds: big.NewInt(30),
	}
	at := time.Date(2024, 3, 9, 14, 5, 7, 123_000_000, time.FixedZone("CET", 3600))

	record := NewDeploymentRecord(cfg, handle, state, at)

	assert.Equal(t, "testnet", record.Network)
	assert.Equal(t, cfg.TreasuryAddress, record.TreasuryWallet, "treasury must be kept verbatim, not checksummed")
	assert.Equal(t, handle.Address.Hex(), record.TokenAddress)
	assert.Equal(t, handle.Deployer.Hex(), record.Deployer)
	assert.Equal(t, "2024-03-09T13:05:07.123Z", record.DeploymentTime)
	assert.Equal(t, RecordConfiguration{
		BurnBps:         "100",
		TreasuryBps:     "200",
		MaxWalletBps:    "150",
		MaxSellBps:      "50",
		CooldownSeconds: "30",
	}, record.Configuration)
}

func TestDeploymentRecordJSONShape(t *testing.T) {
	record := &DeploymentRecord{
		Network:        "sepolia",
		Deployer:       "0x2222222222222222222222222222222222222222",
		TokenAddress:   "0x1111111111111111111111111111111111111111",
		TreasuryWallet: "0x3333333333333333333333333333333333333333",
		DeploymentTime: "2024-03-09T13:05:07.123Z",
		Configuration: RecordConfiguration{
			BurnBps: "100", TreasuryBps: "200", MaxWalletBps: "150", MaxSellBps: "50", CooldownSeconds: "30",
		},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))

	assert.ElementsMatch(t,
		[]string{"network", "deployer", "tokenAddress", "treasuryWallet", "deploymentTime", "configuration"},
		keys(generic))

	configuration, ok := generic["configuration"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"burnBps", "treasuryBps", "maxWalletBps", "maxSellBps", "cooldownSeconds"},
		keys(configuration))
	for key, value := range configuration {
		_, isString := value.(string)
		assert.True(t, isString, "%s must be string-encoded", key)
	}
}

func TestNilParametersEncodeAsZero(t *testing.T) {
	record := NewDeploymentRecord(DeploymentConfiguration{}, &ContractHandle{}, &VerifiedState{}, time.Unix(0, 0))
	assert.Equal(t, "0", record.Configuration.BurnBps)
	assert.Equal(t, "0", record.Configuration.CooldownSeconds)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
