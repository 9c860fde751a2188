package render

import (
	"fmt"
	"io"

	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by ShowRenderer
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ShowRenderer renders a stored deployment record
type ShowRenderer struct {
	out    io.Writer
	format string
}

// NewShowRenderer creates a new show renderer
func NewShowRenderer(out io.Writer, format string) *ShowRenderer {
	return &ShowRenderer{out: out, format: format}
}

// Render prints the record in the configured format
func (r *ShowRenderer) Render(result *usecase.ShowDeploymentResult) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(r.out, result.Record)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(result.Record); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		return r.renderTable(result)
	default:
		return fmt.Errorf("unknown format %q (use table, json or yaml)", r.format)
	}
}

func (r *ShowRenderer) renderTable(result *usecase.ShowDeploymentResult) error {
	record := result.Record
	header := color.New(color.FgCyan, color.Bold)

	header.Fprintf(r.out, "Deployment: %s\n", record.Network)
	fmt.Fprintf(r.out, "Record: %s\n\n", result.Path)

	t := newTable(r.out)
	t.AppendRows([]table.Row{
		{"Token", record.TokenAddress},
		{"Deployer", record.Deployer},
		{"Treasury", record.TreasuryWallet},
		{"Deployed", record.DeploymentTime},
	})
	t.Render()

	header.Fprintln(r.out, "\nConfiguration:")
	t = newTable(r.out)
	t.AppendRows([]table.Row{
		{"Burn Fee", record.Configuration.BurnBps + " BPS"},
		{"Treasury Fee", record.Configuration.TreasuryBps + " BPS"},
		{"Max Wallet", record.Configuration.MaxWalletBps + " BPS"},
		{"Max Sell", record.Configuration.MaxSellBps + " BPS"},
		{"Cooldown", record.Configuration.CooldownSeconds + " seconds"},
	})
	t.Render()
	return nil
}
