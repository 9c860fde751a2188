package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/arclara/arclara-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// LoaderAdapter reads compiled Hardhat or Foundry artifacts from disk
type LoaderAdapter struct {
	projectRoot string
}

// NewLoaderAdapter creates a new artifact loader rooted at the project directory
func NewLoaderAdapter(cfg *config.RuntimeConfig) *LoaderAdapter {
	return &LoaderAdapter{projectRoot: cfg.ProjectRoot}
}

// artifactFile covers both layouts. Hardhat stores bytecode as a string,
// Foundry as {"object": "0x..."}.
type artifactFile struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
	Metadata     struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}

// LoadArtifact loads the ABI and creation bytecode of a contract
func (l *LoaderAdapter) LoadArtifact(ctx context.Context, path string) (*models.Artifact, error) {
	if !filepath.IsAbs(path) && l.projectRoot != "" {
		path = filepath.Join(l.projectRoot, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	if len(file.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", path)
	}
	parsed, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi in %s: %w", path, err)
	}

	hexCode, err := bytecodeHex(file.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	if hexCode == "" || hexCode == "0x" {
		return nil, fmt.Errorf("artifact %s has no bytecode", path)
	}
	if strings.Contains(hexCode, "__") {
		return nil, fmt.Errorf("artifact %s has unlinked library references", path)
	}
	if !strings.HasPrefix(hexCode, "0x") {
		hexCode = "0x" + hexCode
	}
	code, err := hexutil.Decode(hexCode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}

	name, source := file.ContractName, file.SourceName
	for src, contract := range file.Metadata.Settings.CompilationTarget {
		if name == "" {
			name = contract
		}
		if source == "" {
			source = src
		}
		break // There should only be one entry
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &models.Artifact{
		ContractName: name,
		SourcePath:   source,
		ABI:          parsed,
		Bytecode:     code,
	}, nil
}

func bytecodeHex(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("unrecognized bytecode format: %w", err)
	}
	return obj.Object, nil
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactLoader = (*LoaderAdapter)(nil)
