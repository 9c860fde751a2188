package usecase

import (
	"strings"

	"github.com/arclara/arclara-deploy/internal/domain"
	"github.com/arclara/arclara-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ValidateConfiguration checks operator input before anything touches the network
type ValidateConfiguration struct{}

// NewValidateConfiguration creates a new configuration validator
func NewValidateConfiguration() *ValidateConfiguration {
	return &ValidateConfiguration{}
}

// Run validates the whole deployment configuration and returns the treasury
// address exactly as it was supplied.
func (uc *ValidateConfiguration) Run(cfg models.DeploymentConfiguration) (string, error) {
	if strings.TrimSpace(cfg.NetworkName) == "" {
		return "", &domain.ConfigurationError{Field: "network", Err: domain.ErrMissingValue}
	}

	treasury, err := ValidateTreasuryAddress(cfg.TreasuryAddress)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(cfg.ArtifactPath) == "" {
		return "", &domain.ConfigurationError{Field: "artifact", Err: domain.ErrMissingValue}
	}

	return treasury, nil
}

// ValidateTreasuryAddress rejects the placeholder sentinel and anything that
// is not a hex account address. Only a lower-case 0x prefix (or none) is
// accepted. The input is returned unchanged.
func ValidateTreasuryAddress(address string) (string, error) {
	switch {
	case address == "":
		return "", &domain.ConfigurationError{Field: "treasury", Err: domain.ErrMissingValue}
	case address == models.PlaceholderTreasury:
		return "", &domain.ConfigurationError{Field: "treasury", Value: address, Err: domain.ErrPlaceholderAddress}
	case strings.HasPrefix(address, "0X"), !common.IsHexAddress(address), !validChecksum(address):
		return "", &domain.ConfigurationError{Field: "treasury", Value: address, Err: domain.ErrInvalidAddress}
	}
	return address, nil
}

// validChecksum accepts all-lower and all-upper hex; mixed case must be a
// valid EIP-55 checksum.
func validChecksum(address string) bool {
	hex := strings.TrimPrefix(address, "0x")
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}
	return common.HexToAddress(hex).Hex() == "0x"+hex
}
