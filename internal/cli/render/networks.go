package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders the declared networks and whether each has a record
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in arclara.toml [networks]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"NETWORK", "CHAIN ID", "RPC URL", "DEPLOYED"})
	for _, network := range result.Networks {
		if network.Error != nil {
			t.AppendRow(table.Row{
				network.Name,
				"-",
				color.New(color.FgRed).Sprintf("error: %v", network.Error),
				yesNo(network.HasRecord),
			})
			continue
		}

		chainID := "-"
		if network.ChainID != 0 {
			chainID = strconv.FormatUint(network.ChainID, 10)
		}
		t.AppendRow(table.Row{network.Name, chainID, network.RPCURL, yesNo(network.HasRecord)})
	}
	t.Render()

	return nil
}
