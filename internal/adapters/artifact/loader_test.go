package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arclara/arclara-deploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testABI = `[{"type":"constructor","inputs":[{"name":"treasury","type":"address"}],"stateMutability":"nonpayable"},` +
	`{"type":"function","name":"symbol","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"}]`

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadArtifact(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	loader := NewLoaderAdapter(&config.RuntimeConfig{ProjectRoot: root})

	t.Run("hardhat", func(t *testing.T) {
		writeArtifact(t, root, "artifacts/contracts/ArclaraToken.sol/ArclaraToken.json", `{
			"_format": "hh-sol-artifact-1",
			"contractName": "ArclaraToken",
			"sourceName": "contracts/ArclaraToken.sol",
			"abi": `+testABI+`,
			"bytecode": "0x6080604052"
		}`)

		a, err := loader.LoadArtifact(ctx, "artifacts/contracts/ArclaraToken.sol/ArclaraToken.json")
		require.NoError(t, err)
		assert.Equal(t, "ArclaraToken", a.ContractName)
		assert.Equal(t, "contracts/ArclaraToken.sol", a.SourcePath)
		assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, a.Bytecode)
		assert.Len(t, a.ABI.Constructor.Inputs, 1)
		assert.True(t, a.HasMethod("symbol"))
	})

	t.Run("foundry", func(t *testing.T) {
		path := writeArtifact(t, root, "out/ArclaraToken.sol/ArclaraToken.json", `{
			"abi": `+testABI+`,
			"bytecode": {"object": "0x6080", "linkReferences": {}},
			"metadata": {"settings": {"compilationTarget": {"src/ArclaraToken.sol": "ArclaraToken"}}}
		}`)

		a, err := loader.LoadArtifact(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "ArclaraToken", a.ContractName)
		assert.Equal(t, "src/ArclaraToken.sol", a.SourcePath)
		assert.Equal(t, []byte{0x60, 0x80}, a.Bytecode)
	})

	t.Run("name from file", func(t *testing.T) {
		writeArtifact(t, root, "Token.json", `{"abi": `+testABI+`, "bytecode": "6080"}`)

		a, err := loader.LoadArtifact(ctx, "Token.json")
		require.NoError(t, err)
		assert.Equal(t, "Token", a.ContractName)
		assert.Equal(t, []byte{0x60, 0x80}, a.Bytecode)
	})

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"not json", `abi`, "failed to parse artifact"},
		{"no abi", `{"bytecode": "0x6080"}`, "no abi"},
		{"bad abi", `{"abi": {"x": 1}, "bytecode": "0x6080"}`, "failed to parse abi"},
		{"no bytecode", `{"abi": ` + testABI + `}`, "no bytecode"},
		{"empty bytecode", `{"abi": ` + testABI + `, "bytecode": "0x"}`, "no bytecode"},
		{"unlinked", `{"abi": ` + testABI + `, "bytecode": "0x60__$abc$__"}`, "unlinked"},
		{"odd hex", `{"abi": ` + testABI + `, "bytecode": "0x608"}`, "invalid bytecode"},
		{"bytecode number", `{"abi": ` + testABI + `, "bytecode": 12}`, "unrecognized bytecode format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, t.TempDir(), "Bad.json", tt.content)
			_, err := loader.LoadArtifact(ctx, path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadArtifact(ctx, "does/not/exist.json")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
