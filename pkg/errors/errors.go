// Package errors provides standard error types for asl.
//
// These sentinel errors allow callers to check for specific error conditions
// using errors.Is(), enabling programmatic error handling.
package errors

import "errors"

// Catalog errors
var (
	// ErrUnknownDistro indicates the identifier is not one of the supported
	// distributions.
	ErrUnknownDistro = errors.New("unknown distribution")
)

// State errors
var (
	// ErrNotInstalled indicates the distribution is not installed.
	ErrNotInstalled = errors.New("distribution is not installed")
)

// Interactive input errors
var (
	// ErrInvalidSelection indicates a menu selection could not be parsed or
	// was out of range.
	ErrInvalidSelection = errors.New("invalid selection")
)

// External runtime errors
var (
	// ErrRuntimeNotFound indicates the external container runtime binary is
	// not available on PATH.
	ErrRuntimeNotFound = errors.New("container runtime not found")
)
