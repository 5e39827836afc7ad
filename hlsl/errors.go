// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes errors reported by the writer, reader and registry.
type ErrorKind uint8

const (
	// ErrIllegalOperation indicates an IL-only operation on a non-IL document.
	ErrIllegalOperation ErrorKind = iota

	// ErrUnbalancedBlock indicates a block was closed without a matching open.
	ErrUnbalancedBlock

	// ErrConfiguration indicates a registrable type without a usable canonical name.
	ErrConfiguration

	// ErrInvalidVersion indicates a malformed major.minor.patch version string.
	ErrInvalidVersion

	// ErrInvalidDocument indicates a document description that cannot be emitted.
	ErrInvalidDocument
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrIllegalOperation:
		return "IllegalOperation"
	case ErrUnbalancedBlock:
		return "UnbalancedBlock"
	case ErrConfiguration:
		return "Configuration"
	case ErrInvalidVersion:
		return "InvalidVersion"
	case ErrInvalidDocument:
		return "InvalidDocument"
	default:
		return "Unknown"
	}
}

// Error represents an EXISL writer, reader or registry error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string

	// Line is the 1-based source line the error refers to, or 0 when
	// the error is not tied to input text.
	Line int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("exisl %s at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("exisl %s: %s", e.Kind, e.Message)
}

// NewError creates a new error without line information.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// NewErrorAtLine creates a new error tied to a source line.
func NewErrorAtLine(kind ErrorKind, message string, line int) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Line:    line,
	}
}

// IsIllegalOperation returns true if the error is ErrIllegalOperation.
func (e *Error) IsIllegalOperation() bool {
	return e.Kind == ErrIllegalOperation
}

// IsUnbalancedBlock returns true if the error is ErrUnbalancedBlock.
func (e *Error) IsUnbalancedBlock() bool {
	return e.Kind == ErrUnbalancedBlock
}

// IsConfiguration returns true if the error is ErrConfiguration.
func (e *Error) IsConfiguration() bool {
	return e.Kind == ErrConfiguration
}

// IsKind reports whether err, or any error it wraps, is an *Error of the given kind.
// Joined errors are searched as well.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) && e.Kind == kind {
		return true
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			if IsKind(inner, kind) {
				return true
			}
		}
	}
	return false
}

// errNotIL is returned by every IL operation on a non-IL writer or reader.
func errNotIL(op string) *Error {
	return NewError(ErrIllegalOperation, "cannot use an IL operation on a non-IL document ("+op+")")
}
