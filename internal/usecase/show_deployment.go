package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain/models"
)

// ShowDeploymentParams contains parameters for showing a deployment record
type ShowDeploymentParams struct {
	Network string
}

// ShowDeploymentResult contains the stored record and where it was read from
type ShowDeploymentResult struct {
	Record *models.DeploymentRecord
	Path   string
}

// ShowDeployment is the use case for inspecting a stored deployment record
type ShowDeployment struct {
	store DeploymentRecordStore
	sink  ProgressSink
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(store DeploymentRecordStore, sink ProgressSink) *ShowDeployment {
	return &ShowDeployment{
		store: store,
		sink:  sink,
	}
}

// Run loads the record of the given network
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*ShowDeploymentResult, error) {
	if strings.TrimSpace(params.Network) == "" {
		return nil, fmt.Errorf("network name is required")
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployment record",
	})

	record, err := uc.store.LoadRecord(ctx, params.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployment for %s: %w", params.Network, err)
	}

	return &ShowDeploymentResult{
		Record: record,
		Path:   uc.store.RecordPath(params.Network),
	}, nil
}
