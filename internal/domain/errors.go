package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrPlaceholderAddress is returned when an address was left at its placeholder value
	ErrPlaceholderAddress = errors.New("placeholder address")

	// ErrMissingValue is returned when a required configuration value is empty
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidConfiguration matches every ConfigurationError
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDeploymentFailed matches every DeploymentError
	ErrDeploymentFailed = errors.New("deployment failed")

	// ErrVerificationFailed matches every VerificationError
	ErrVerificationFailed = errors.New("verification failed")

	// ErrPersistenceFailed matches every PersistenceError
	ErrPersistenceFailed = errors.New("persistence failed")

	// ErrNetworkMismatch is returned when the RPC chain ID differs from the configured one
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrBroadcastDeclined is returned when the operator refuses to broadcast
	ErrBroadcastDeclined = errors.New("broadcast declined")

	// ErrNoCode is returned when no contract code exists at the created address
	ErrNoCode = errors.New("no code at address")
)

// ConfigurationError reports operator-supplied configuration that was
// rejected before any network call was made.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid configuration: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrInvalidConfiguration, e.Err}
}

// DeploymentError reports a failure while connecting, submitting the
// creation transaction, or waiting for it to be confirmed.
type DeploymentError struct {
	Stage string
	Err   error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("deployment failed during %s: %v", e.Stage, e.Err)
}

func (e *DeploymentError) Unwrap() []error {
	return []error{ErrDeploymentFailed, e.Err}
}

// VerificationError reports a read query against the deployed contract
// that did not return a usable value. The contract stays deployed.
type VerificationError struct {
	Query   string
	Address string
	Err     error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification of %s failed: query %s: %v", e.Address, e.Query, e.Err)
}

func (e *VerificationError) Unwrap() []error {
	return []error{ErrVerificationFailed, e.Err}
}

// PersistenceError reports a failure to store the deployment record.
// It never fails a run on its own.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not save deployment info to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistenceFailed, e.Err}
}

// IsFatal reports whether err must terminate the run with a failure status.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrPersistenceFailed)
}
