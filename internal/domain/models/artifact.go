package models

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is a compiled contract ready to be deployed
type Artifact struct {
	ContractName string
	SourcePath   string // Solidity source the contract was compiled from
	ABI          abi.ABI
	Bytecode     []byte // Creation bytecode without constructor arguments
}

// HasMethod reports whether the ABI declares the named method
func (a *Artifact) HasMethod(name string) bool {
	_, ok := a.ABI.Methods[name]
	return ok
}
