package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arclara/arclara-deploy/internal/cli"
	"github.com/arclara/arclara-deploy/internal/cli/render"
	"github.com/arclara/arclara-deploy/internal/config"
	"github.com/arclara/arclara-deploy/internal/domain"
)

// Set by the linker
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(describe(err)))
		if domain.IsFatal(err) {
			os.Exit(1)
		}
	}
}

func describe(err error) string {
	var verr *domain.VerificationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%v\nThe contract at %s is deployed but was not recorded.", err, verr.Address)
	}
	if errors.Is(err, domain.ErrDeploymentFailed) {
		return fmt.Sprintf("Deployment failed: %v", err)
	}
	return err.Error()
}
