// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"errors"
	"fmt"
)

// Exit codes.
const (
	ExitSuccess = 0 // Route printed, including "No path found"
	ExitError   = 1 // Dataset, input or output failure
	ExitBadArgs = 2 // Invalid arguments, flags or delimiter
)

var (
	// ErrBadArgs marks a failure caused by the command line itself.
	ErrBadArgs = errors.New("invalid arguments")

	// ErrNoPath is returned with --fail-if-empty when the destination is
	// unreachable.
	ErrNoPath = errors.New("no path between the airports")
)

// ExitCodeError carries the process exit code for a failed command.
//
// # Description
//
// Commands return ExitCodeError instead of calling os.Exit so deferred
// cleanup (telemetry flush, log file close) always runs. main maps the
// error to the exit code.
//
// # Example
//
//	err := badArgs(fmt.Errorf("delimiter %q: %w", s, errTooLong))
//	var exitErr *ExitCodeError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code) // 2
//	}
type ExitCodeError struct {
	// Code is the process exit code.
	Code int

	// Wrapped is the underlying error.
	Wrapped error
}

// Error returns the underlying message.
func (e *ExitCodeError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("exit %d", e.Code)
	}
	return e.Wrapped.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCodeError) Unwrap() error {
	return e.Wrapped
}

func badArgs(err error) error {
	return &ExitCodeError{Code: ExitBadArgs, Wrapped: fmt.Errorf("%w: %w", ErrBadArgs, err)}
}

func failed(err error) error {
	return &ExitCodeError{Code: ExitError, Wrapped: err}
}

// exitCode maps a command error to a process exit code. Errors that did
// not come through badArgs or failed are treated as ExitError.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
