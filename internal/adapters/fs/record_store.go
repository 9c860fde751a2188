package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
)

// RecordStoreAdapter keeps one deployment record file per network
type RecordStoreAdapter struct {
	dir string
}

// NewRecordStoreAdapter creates a new RecordStoreAdapter
func NewRecordStoreAdapter(cfg *config.RuntimeConfig) *RecordStoreAdapter {
	dir := cfg.DeploymentsDir
	if dir == "" {
		dir = "deployments"
	}
	if !filepath.IsAbs(dir) && cfg.ProjectRoot != "" {
		dir = filepath.Join(cfg.ProjectRoot, dir)
	}
	return &RecordStoreAdapter{dir: dir}
}

// RecordPath returns the file a network's record is stored in
func (s *RecordStoreAdapter) RecordPath(network string) string {
	return filepath.Join(s.dir, network+"-deployment.json")
}

// SaveRecord writes the record, replacing any previous record for the network.
func (s *RecordStoreAdapter) SaveRecord(_ context.Context, record *models.DeploymentRecord) (string, error) {
	if err := checkNetworkName(record.Network); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create deployments directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal deployment record: %w", err)
	}

	path := s.RecordPath(record.Network)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write deployment record: %w", err)
	}

	return path, nil
}

// LoadRecord reads a network's record. Returns domain.ErrNotFound if none was written.
func (s *RecordStoreAdapter) LoadRecord(_ context.Context, network string) (*models.DeploymentRecord, error) {
	if err := checkNetworkName(network); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.RecordPath(network))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no deployment record for %s: %w", network, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read deployment record: %w", err)
	}

	var record models.DeploymentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse deployment record: %w", err)
	}
	return &record, nil
}

// Network names become file names and must stay inside the directory
func checkNetworkName(network string) error {
	if network == "" || network == "." || network == ".." || strings.ContainsAny(network, `/\`) {
		return fmt.Errorf("network name %q cannot be used as a file name", network)
	}
	return nil
}

// Ensure RecordStoreAdapter implements DeploymentRecordStore
var _ usecase.DeploymentRecordStore = (*RecordStoreAdapter)(nil)
