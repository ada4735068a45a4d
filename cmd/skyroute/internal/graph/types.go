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

// NodeID identifies an airport. Matching is exact and case-sensitive.
type NodeID = string

// EdgeRecord is one parsed row of the connections table.
type EdgeRecord struct {
	From   NodeID
	To     NodeID
	Weight float64
}

// Neighbor is a directed out-edge as seen from its source node.
type Neighbor struct {
	To     NodeID
	Weight float64
}

// Path is an ordered node sequence from departure to destination.
type Path []NodeID

// PathResult is the outcome of a shortest path search.
//
// TotalWeight and Path are only meaningful when Found is true. When Found is
// false Path is nil and TotalWeight is zero.
type PathResult struct {
	Found       bool
	TotalWeight float64
	Path        Path
}

// SearchStats counts the work done by one Dijkstra run.
type SearchStats struct {
	PqPops          int
	PqUpdates       int
	EdgeRelaxations int
}
