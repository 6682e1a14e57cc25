package network

import "errors"

// Sentinel errors for network construction and lookup.
var (
	// ErrDuplicateVariable indicates two nodes share a name.
	ErrDuplicateVariable = errors.New("network: duplicate variable name")

	// ErrUnknownParent indicates a declared parent is not a node.
	ErrUnknownParent = errors.New("network: parent is not a variable of the network")

	// ErrUnknownVariable indicates a lookup for a name that is not a node.
	ErrUnknownVariable = errors.New("network: variable not in network")

	// ErrMissingCPD indicates a node was added without a conditional distribution.
	ErrMissingCPD = errors.New("network: node has no CPD")

	// ErrCPDMismatch indicates a CPD whose conditioned child or parent set
	// does not match the node's declared structure.
	ErrCPDMismatch = errors.New("network: CPD does not match declared structure")

	// ErrCycleDetected indicates the declared parent relation is not acyclic.
	ErrCycleDetected = errors.New("network: cycle detected")

	// ErrBadDocument indicates a YAML model document that does not describe
	// a well-formed network.
	ErrBadDocument = errors.New("network: malformed model document")
)
