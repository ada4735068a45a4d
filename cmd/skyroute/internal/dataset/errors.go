// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset loading.
var (
	// ErrEmptyDataset is returned when the input has no header row.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrMissingColumn is returned when a required column is not in the header.
	ErrMissingColumn = errors.New("required column missing")

	// ErrMalformedRow is returned when a row cannot be split into fields.
	ErrMalformedRow = errors.New("malformed row")

	// ErrInvalidWeight is returned when a weight is not a number.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrNegativeWeight is returned for weights below zero, which the
	// shortest-path search does not support.
	ErrNegativeWeight = errors.New("negative weight")

	// ErrInvalidDelimiter is returned for delimiters the CSV reader rejects.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

// ColumnError reports a required column absent from the header row.
type ColumnError struct {
	Column string
	Header []string
}

// Error implements the error interface.
func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q not found in header %v", e.Column, e.Header)
}

// Unwrap returns ErrMissingColumn.
func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}

// RowError reports a bad data row.
//
// Line is the 1-based line number in the input, counting the header.
type RowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RowError) Unwrap() error {
	return e.Err
}
