package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownNode is returned when a node id is not registered in the graph.
var ErrUnknownNode = errors.New("unknown node")

// ErrDuplicateConfiguration is returned by strict graphs when a node id is registered twice.
var ErrDuplicateConfiguration = errors.New("duplicate node configuration")

// ErrDeadEnd is returned when a non-terminal node resolves to no successor.
var ErrDeadEnd = errors.New("dead end")

// ErrInvalidInput is returned when an operation receives malformed arguments.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotReady is the cause carried by a blocked advance.
var ErrNotReady = errors.New("node not ready")

// ErrProfileDerivation matches every *ProfileDerivationError.
var ErrProfileDerivation = errors.New("profile derivation failed")

// ErrDerivationInProgress is returned when a derivation is requested while another one is running.
var ErrDerivationInProgress = errors.New("profile derivation already in progress")

// ErrNotStarted is returned when a session is used before Start.
var ErrNotStarted = errors.New("flow not started")

// ErrNotTerminal is returned when the profile is requested before the terminal node.
var ErrNotTerminal = errors.New("flow has not reached the profile node")

// UnknownNodeError identifies which node id could not be found.
type UnknownNodeError struct {
	NodeID string
	// From is the node whose resolver produced NodeID, if any.
	From string
}

func (e *UnknownNodeError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("unknown node %q (resolved from %q)", e.NodeID, e.From)
	}
	return fmt.Sprintf("unknown node %q", e.NodeID)
}

func (e *UnknownNodeError) Is(target error) bool {
	return target == ErrUnknownNode
}

// DuplicateNodeError identifies a node id registered more than once.
type DuplicateNodeError struct {
	NodeID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q is already registered", e.NodeID)
}

func (e *DuplicateNodeError) Is(target error) bool {
	return target == ErrDuplicateConfiguration
}

// DeadEndError identifies a non-terminal node without successors.
type DeadEndError struct {
	NodeID string
	Kind   NodeKind
}

func (e *DeadEndError) Error() string {
	return fmt.Sprintf("node %q (%s) has no successor and is not a profile node", e.NodeID, e.Kind)
}

func (e *DeadEndError) Is(target error) bool {
	return target == ErrDeadEnd
}

// NotReadyError explains why the current node cannot be left yet.
type NotReadyError struct {
	NodeID string
	Key    string
	Reason string
}

func (e *NotReadyError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("node %q not ready: %s: %s", e.NodeID, e.Key, e.Reason)
	}
	return fmt.Sprintf("node %q not ready: %s", e.NodeID, e.Reason)
}

func (e *NotReadyError) Is(target error) bool {
	return target == ErrNotReady
}

// ProfileDerivationError wraps any failure raised while classifying answers.
// No partial profile is ever returned alongside it.
type ProfileDerivationError struct {
	Cause error
}

func (e *ProfileDerivationError) Error() string {
	return fmt.Sprintf("profile derivation failed: %v", e.Cause)
}

func (e *ProfileDerivationError) Unwrap() error {
	return e.Cause
}

func (e *ProfileDerivationError) Is(target error) bool {
	return target == ErrProfileDerivation
}
