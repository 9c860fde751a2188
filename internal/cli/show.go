package cli

import (
	"github.com/arclara/arclara-deploy/internal/cli/render"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [network]",
		Short: "Show the deployment recorded for a network",
		Long: `Show the deployment record stored under deployments/ for a network.

Examples:
  arclara-deploy show sepolia
  arclara-deploy show sepolia --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			network := app.Config.NetworkName
			if len(args) == 1 {
				network = args[0]
			}
			if network == "" {
				network, err = app.Selector.SelectNetwork(ctx, app.Networks.GetNetworks(ctx))
				if err != nil {
					return err
				}
			}

			result, err := app.ShowDeployment.Run(ctx, usecase.ShowDeploymentParams{Network: network})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				format = render.FormatJSON
			}
			return render.NewShowRenderer(cmd.OutOrStdout(), format).Render(result)
		},
	}

	cmd.Flags().StringVar(&format, "format", render.FormatTable, "Output format (table, json, yaml)")

	return cmd
}
