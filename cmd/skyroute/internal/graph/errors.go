// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for path formatting.
var (
	// ErrEmptyPath is returned when formatting a path with no nodes.
	ErrEmptyPath = errors.New("path is empty")

	// ErrInconsistentPath is returned when a path uses a hop the graph does
	// not contain.
	ErrInconsistentPath = errors.New("path does not match graph")
)

// MissingEdgeError reports the hop that has no edge in the graph.
type MissingEdgeError struct {
	From NodeID
	To   NodeID
}

// Error implements the error interface.
func (e *MissingEdgeError) Error() string {
	return fmt.Sprintf("no edge from %q to %q", e.From, e.To)
}

// Unwrap returns the sentinel error.
func (e *MissingEdgeError) Unwrap() error {
	return ErrInconsistentPath
}
