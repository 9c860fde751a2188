package render

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeployRenderer renders the outcome of a deployment run
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderHeader prints the banner shown before the pipeline starts
func (r *DeployRenderer) RenderHeader(network string) {
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "\n=== Arclara Token Deployment ===")
	fmt.Fprintf(r.out, "Network: %s\n", network)
}

// RenderDeployment prints the deployed address, the verified state, the
// follow-up steps and the stored record.
func (r *DeployRenderer) RenderDeployment(result *usecase.DeployTokenResult) error {
	handle := result.Handle
	state := result.State
	contract := "ArclaraToken"
	if handle.Artifact != nil && handle.Artifact.ContractName != "" {
		contract = handle.Artifact.ContractName
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s deployed to: %s", contract, handle.Address.Hex())))
	fmt.Fprintf(r.out, "   Transaction: %s (block %d, gas %d)\n", handle.TransactionHash.Hex(), handle.BlockNumber, handle.GasUsed)
	if link := explorerLink(result); link != "" {
		fmt.Fprintf(r.out, "   Explorer: %s\n", link)
	}

	r.section("Token")
	t := newTable(r.out)
	t.AppendRows([]table.Row{
		{"Name", state.Name},
		{"Symbol", state.Symbol},
		{"Decimals", state.Decimals},
		{"Total Supply", fmt.Sprintf("%s %s", models.FormatUnits(state.TotalSupply, int32(state.Decimals)), state.Symbol)},
		{"Owner Balance", fmt.Sprintf("%s %s", models.FormatUnits(state.DeployerBalance, int32(state.Decimals)), state.Symbol)},
	})
	t.Render()

	r.section("Default Configuration")
	t = newTable(r.out)
	t.AppendRows([]table.Row{
		{"Burn Fee", formatBps(state.Fees.BurnBps)},
		{"Treasury Fee", formatBps(state.Fees.TreasuryBps)},
		{"Max Wallet", formatBps(state.Limits.MaxWalletBps)},
		{"Max Sell", formatBps(state.Limits.MaxSellBps)},
		{"Cooldown", fmt.Sprintf("%s seconds", state.CooldownSeconds)},
		{"Treasury Wallet", state.TreasuryWallet.Hex()},
	})
	t.Render()

	r.section("Default Exemptions")
	exemptions := []lo.Entry[string, bool]{
		{Key: "owner", Value: state.Exemptions.Deployer},
		{Key: "contract", Value: state.Exemptions.Contract},
		{Key: "treasury", Value: state.Exemptions.Treasury},
	}
	title := cases.Title(language.English)
	t = newTable(r.out)
	t.AppendRows(lo.Map(exemptions, func(e lo.Entry[string, bool], _ int) table.Row {
		return table.Row{title.String(e.Key) + " Exempt", yesNo(e.Value)}
	}))
	t.Render()

	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "\n=== Deployment Complete ===")
	r.renderNextSteps(result)

	r.section("Deployment Info")
	if err := writeJSON(r.out, result.Record); err != nil {
		return err
	}

	fmt.Fprintln(r.out)
	if result.PersistErr != nil {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Could not save deployment info: %v", result.PersistErr.Err)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployment info saved to: %s", result.RecordPath)))
	}
	return nil
}

func (r *DeployRenderer) renderNextSteps(result *usecase.DeployTokenResult) {
	address := result.Handle.Address.Hex()
	steps := []string{
		fmt.Sprintf("Verify contract on block explorer:\n   npx hardhat verify --network %s %s %s",
			result.Record.Network, address, result.Record.TreasuryWallet),
		"Create liquidity pool on DEX (e.g., Uniswap)",
		"Set AMM pair address:\n   token.setAutomatedMarketMakerPair(pairAddress, true)",
		"(Optional) Exempt DEX router:\n   token.setExempt(routerAddress, true)",
		"(Optional) Adjust fees/limits:\n   token.setFeesInBps(burnBps, treasuryBps)\n   token.setLimitsInBps(maxWalletBps, maxSellBps)\n   token.setCooldown(seconds)",
	}

	r.section("Next Steps")
	numbered := lo.Map(steps, func(step string, i int) string {
		return fmt.Sprintf("%d. %s", i+1, step)
	})
	fmt.Fprintln(r.out, strings.Join(numbered, "\n\n"))
}

func (r *DeployRenderer) section(title string) {
	color.New(color.Bold).Fprintf(r.out, "\n%s:\n", title)
}

// DeployJSON is the machine-readable outcome of a run
type DeployJSON struct {
	Outcome         string                   `json:"outcome"`
	Network         string                   `json:"network"`
	ChainID         uint64                   `json:"chainId"`
	TokenAddress    string                   `json:"tokenAddress"`
	TransactionHash string                   `json:"transactionHash"`
	BlockNumber     uint64                   `json:"blockNumber"`
	Explorer        string                   `json:"explorer,omitempty"`
	Record          *models.DeploymentRecord `json:"record"`
	RecordPath      string                   `json:"recordPath"`
	Warning         string                   `json:"warning,omitempty"`
}

// RenderJSON prints the outcome as a single JSON document
func (r *DeployRenderer) RenderJSON(result *usecase.DeployTokenResult) error {
	doc := DeployJSON{
		Outcome:         string(result.Outcome),
		Network:         result.Record.Network,
		ChainID:         result.ChainID,
		TokenAddress:    result.Handle.Address.Hex(),
		TransactionHash: result.Handle.TransactionHash.Hex(),
		BlockNumber:     result.Handle.BlockNumber,
		Explorer:        explorerLink(result),
		Record:          result.Record,
		RecordPath:      result.RecordPath,
	}
	if result.PersistErr != nil {
		doc.Warning = result.PersistErr.Error()
	}
	return writeJSON(r.out, doc)
}

func explorerLink(result *usecase.DeployTokenResult) string {
	if result.Network == nil || result.Network.ExplorerURL == "" {
		return ""
	}
	return strings.TrimSuffix(result.Network.ExplorerURL, "/") + "/address/" + result.Handle.Address.Hex()
}

func formatBps(bps *big.Int) string {
	if bps == nil {
		return "-"
	}
	return fmt.Sprintf("%s BPS (%s)", bps, models.FormatBps(bps))
}
