package usecase

import (
	"context"
	"log/slog"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/models"
)

// PersistRecord writes the deployment record for a verified deployment
type PersistRecord struct {
	store    DeploymentRecordStore
	clock    Clock
	progress ProgressSink
	log      *slog.Logger
}

// NewPersistRecord creates a new record persister
func NewPersistRecord(store DeploymentRecordStore, clock Clock, progress ProgressSink, log *slog.Logger) *PersistRecord {
	return &PersistRecord{
		store:    store,
		clock:    clock,
		progress: progress,
		log:      log,
	}
}

// PersistResult describes what was written. Err is set when the write
// failed; the deployment itself is unaffected.
type PersistResult struct {
	Record *models.DeploymentRecord
	Path   string
	Err    *domain.PersistenceError
}

// Run builds the record and stores it, replacing any earlier record for the
// same network. It never returns an error.
func (uc *PersistRecord) Run(
	ctx context.Context,
	cfg models.DeploymentConfiguration,
	handle *models.ContractHandle,
	state *models.VerifiedState,
) *PersistResult {
	uc.progress.ReportStage(ctx, StagePersisting)

	record := models.NewDeploymentRecord(cfg, handle, state, uc.clock())
	result := &PersistResult{Record: record, Path: uc.store.RecordPath(cfg.NetworkName)}

	path, err := uc.store.SaveRecord(ctx, record)
	if err != nil {
		result.Err = &domain.PersistenceError{Path: result.Path, Err: err}
		uc.log.Warn("deployment record not saved", "path", result.Path, "error", err)
		uc.progress.Error(result.Err.Error())
		return result
	}

	result.Path = path
	uc.log.Info("deployment record saved", "path", path, "network", record.Network)
	return result
}
