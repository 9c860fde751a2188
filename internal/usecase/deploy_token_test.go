package usecase_test

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDeployToken(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds", func(t *testing.T) {
		p := newPipeline()

		result, err := p.DeployToken.Run(ctx, validConfig())
		require.NoError(t, err)

		assert.Equal(t, usecase.OutcomeSucceeded, result.Outcome)
		assert.Nil(t, result.PersistErr)
		assert.Equal(t, "deployments/sepolia-deployment.json", result.RecordPath)
		assert.Equal(t, testContract, result.Handle.Address)
		assert.Equal(t, "ARCL", result.State.Symbol)
		assert.Equal(t, 1, p.Store.Saves)
		assert.Equal(t, []usecase.ExecutionStage{
			usecase.StageValidating,
			usecase.StageDeploying,
			usecase.StageConfirming,
			usecase.StageVerifying,
			usecase.StagePersisting,
			usecase.StageCompleted,
		}, p.Sink.Stages)
	})

	t.Run("configuration errors make no chain calls", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.DeploymentConfiguration, *pipeline)
			field  string
		}{
			{
				name:   "placeholder treasury",
				mutate: func(c *models.DeploymentConfiguration, _ *pipeline) { c.TreasuryAddress = models.PlaceholderTreasury },
				field:  "treasury",
			},
			{
				name:   "malformed treasury",
				mutate: func(c *models.DeploymentConfiguration, _ *pipeline) { c.TreasuryAddress = "0xdeadbeef" },
				field:  "treasury",
			},
			{
				name:   "unknown network",
				mutate: func(c *models.DeploymentConfiguration, _ *pipeline) { c.NetworkName = "atlantis" },
				field:  "network",
			},
			{
				name:   "unreadable artifact",
				mutate: func(_ *models.DeploymentConfiguration, p *pipeline) { p.Artifacts.Err = errBoom },
				field:  "artifact",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p := newPipeline()
				cfg := validConfig()
				tt.mutate(&cfg, p)

				result, err := p.DeployToken.Run(ctx, cfg)
				require.Error(t, err)
				assert.Nil(t, result)

				var cfgErr *domain.ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.field, cfgErr.Field)
				assert.Empty(t, p.Chain.Calls)
				assert.Empty(t, p.Confirmer.Asked)
				assert.Zero(t, p.Store.Saves)
			})
		}
	})

	t.Run("deployment failure writes nothing", func(t *testing.T) {
		p := newPipeline()
		p.Chain.SubmitErr = errBoom

		_, err := p.DeployToken.Run(ctx, validConfig())
		assert.ErrorIs(t, err, domain.ErrDeploymentFailed)
		assert.Zero(t, p.Store.Saves)
	})

	t.Run("verification failure writes nothing", func(t *testing.T) {
		p := newPipeline()
		p.Token.FailQuery = usecase.QueryCooldownSeconds

		result, err := p.DeployToken.Run(ctx, validConfig())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrVerificationFailed)
		assert.True(t, domain.IsFatal(err))
		assert.Zero(t, p.Store.Saves)
		assert.Empty(t, p.Store.Records)
	})

	t.Run("persistence failure degrades the outcome", func(t *testing.T) {
		p := newPipeline()
		p.Store.SaveErr = errBoom

		result, err := p.DeployToken.Run(ctx, validConfig())
		require.NoError(t, err)
		assert.Equal(t, usecase.OutcomeDegraded, result.Outcome)
		require.NotNil(t, result.PersistErr)
		assert.ErrorIs(t, result.PersistErr, domain.ErrPersistenceFailed)
		assert.NotNil(t, result.State)
		assert.Contains(t, p.Logs.String(), "level=WARN")
	})

	t.Run("rerun overwrites the network record", func(t *testing.T) {
		p := newPipeline()

		_, err := p.DeployToken.Run(ctx, validConfig())
		require.NoError(t, err)

		second := validConfig()
		second.TreasuryAddress = "0x5555555555555555555555555555555555555555"
		_, err = p.DeployToken.Run(ctx, second)
		require.NoError(t, err)

		assert.Equal(t, 2, p.Store.Saves)
		assert.Len(t, p.Store.Records, 1)
		assert.Equal(t, second.TreasuryAddress, p.Store.Records["sepolia"].TreasuryWallet)
	})
}

func TestDeployTokenProperties(t *testing.T) {
	ctx := context.Background()

	t.Run("treasury is recorded verbatim", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			raw := rapid.SliceOfN(rapid.Byte(), common.AddressLength, common.AddressLength).Draw(t, "address")
			checksummed := rapid.Bool().Draw(t, "checksummed")

			treasury := "0x" + hex.EncodeToString(raw)
			if checksummed {
				treasury = common.BytesToAddress(raw).Hex()
			}

			p := newPipeline()
			cfg := validConfig()
			cfg.TreasuryAddress = treasury

			result, err := p.DeployToken.Run(ctx, cfg)
			require.NoError(t, err)
			assert.Equal(t, usecase.OutcomeSucceeded, result.Outcome)
			assert.Equal(t, 1, p.Store.Saves)
			assert.Equal(t, treasury, p.Store.Records["sepolia"].TreasuryWallet)
		})
	})

	t.Run("malformed treasury never reaches the chain", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			treasury := rapid.OneOf(
				rapid.StringMatching(`0x[0-9a-f]{0,39}`),
				rapid.StringMatching(`0x[0-9a-f]{41,60}`),
				rapid.StringMatching(`[g-z ]{1,40}`),
				rapid.Just(models.PlaceholderTreasury),
			).Draw(t, "treasury")

			p := newPipeline()
			cfg := validConfig()
			cfg.TreasuryAddress = treasury

			_, err := p.DeployToken.Run(ctx, cfg)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			assert.Empty(t, p.Chain.Calls)
			assert.Zero(t, p.Store.Saves)
		})
	})

	t.Run("network name flows into the record", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			name := rapid.StringMatching(`[a-z][a-z0-9_-]{0,20}`).Draw(t, "network")

			p := newPipeline()
			p.Resolver.Any = true
			cfg := validConfig()
			cfg.NetworkName = name

			result, err := p.DeployToken.Run(ctx, cfg)
			require.NoError(t, err)
			assert.Equal(t, name, result.Record.Network)
			assert.Equal(t, fmt.Sprintf("deployments/%s-deployment.json", name), result.RecordPath)
		})
	})
}
