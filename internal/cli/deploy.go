package cli

import (
	"fmt"

	"github.com/arclara/arclara-deploy/internal/cli/render"
	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy ArclaraToken to a network",
		Long: `Deploy the ArclaraToken contract with the configured treasury wallet.

The run validates the treasury, submits a single contract-creation
transaction, waits for it to be mined, reads back the token state and
writes deployments/<network>-deployment.json. An existing record for the
network is replaced.

The deployer key is read from ARCLARA_DEPLOYER_KEY.

Examples:
  arclara-deploy deploy --network sepolia --treasury 0x...
  arclara-deploy deploy -n local --rpc-url http://127.0.0.1:8545 --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			cfg := app.Config

			// Reject a bad treasury before prompting for a network
			if _, err := usecase.ValidateTreasuryAddress(cfg.Treasury); err != nil {
				return err
			}

			network := cfg.NetworkName
			if network == "" {
				if cfg.RPCURL != "" {
					return &domain.ConfigurationError{Field: "network", Err: fmt.Errorf("--rpc-url requires --network: %w", domain.ErrMissingValue)}
				}
				network, err = app.Selector.SelectNetwork(ctx, app.Networks.GetNetworks(ctx))
				if err != nil {
					return &domain.ConfigurationError{Field: "network", Err: err}
				}
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout())
			if !cfg.JSON {
				renderer.RenderHeader(network)
			}

			result, err := app.DeployToken.Run(ctx, models.DeploymentConfiguration{
				TreasuryAddress: cfg.Treasury,
				NetworkName:     network,
				ArtifactPath:    cfg.ArtifactPath,
			})
			if err != nil {
				return err
			}

			if cfg.JSON {
				return renderer.RenderJSON(result)
			}
			return renderer.RenderDeployment(result)
		},
	}

	cmd.Flags().StringP("network", "n", "", "Network to deploy to, as declared in arclara.toml")
	cmd.Flags().String("treasury", "", "Treasury wallet receiving the treasury fee")
	cmd.Flags().String("artifact", "", "Path to the compiled ArclaraToken artifact")
	cmd.Flags().String("rpc-url", "", "RPC endpoint, overriding the one configured for --network")
	cmd.Flags().String("deployments-dir", "", "Directory deployment records are written to")
	cmd.Flags().BoolP("yes", "y", false, "Broadcast without asking for confirmation")
	cmd.Flags().Duration("timeout", 0, "Abort the run after this duration (0 waits indefinitely)")

	return cmd
}
