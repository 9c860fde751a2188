package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

// ConfirmerAdapter asks the operator before the creation transaction is sent
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
	log    *slog.Logger
	out    io.Writer
	prompt func(label string) (bool, error)
}

// NewConfirmerAdapter creates a new broadcast confirmer
func NewConfirmerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ConfirmerAdapter {
	return &ConfirmerAdapter{
		config: cfg,
		log:    log,
		out:    os.Stdout,
		prompt: confirmPrompt,
	}
}

// ConfirmBroadcast prints the summary and asks for confirmation. With
// --yes or in non-interactive mode the broadcast proceeds unprompted.
func (c *ConfirmerAdapter) ConfirmBroadcast(ctx context.Context, summary usecase.BroadcastSummary) (bool, error) {
	if c.config.AssumeYes || c.config.NonInteractive {
		c.log.Debug("broadcast confirmed without prompt",
			"assume_yes", c.config.AssumeYes,
			"non_interactive", c.config.NonInteractive,
		)
		return true, nil
	}

	label := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "%s %s (chain %d)\n", label.Sprint("Network: "), summary.Network, summary.ChainID)
	fmt.Fprintf(c.out, "%s %s\n", label.Sprint("Contract:"), summary.Contract)
	fmt.Fprintf(c.out, "%s %s (%s ETH)\n", label.Sprint("Deployer:"), summary.Deployer.Hex(), models.FormatEther(summary.DeployerBalance))
	fmt.Fprintf(c.out, "%s %s\n", label.Sprint("Treasury:"), summary.Treasury)
	fmt.Fprintln(c.out)

	return c.prompt(fmt.Sprintf("Broadcast deployment to %s", summary.Network))
}

// confirmPrompt asks the user a yes/no question and returns their choice.
func confirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
}

// Ensure the adapter implements the interface
var _ usecase.BroadcastConfirmer = (*ConfirmerAdapter)(nil)
