// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph holds the airport connection graph and the route search.
//
// The graph is directed and weighted. Nodes are airport names, edges are timed
// connections. It is built once from parsed edge records and is read-only
// afterwards.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────────────────┐
//	│                        Route Query Flow                                 │
//	├─────────────────────────────────────────────────────────────────────────┤
//	│                                                                         │
//	│  ┌─────────────┐    ┌─────────────┐    ┌─────────────┐                  │
//	│  │ EdgeRecord  │───▶│   Build     │───▶│  Dijkstra   │                  │
//	│  │ rows        │    │   Store     │    │  Finder     │                  │
//	│  └─────────────┘    └─────────────┘    └─────────────┘                  │
//	│                                               │                         │
//	│                                               ▼                         │
//	│                     ┌─────────────┐    ┌─────────────┐                  │
//	│                     │  Format     │◀───│ PathResult  │                  │
//	│                     │  (text)     │    │ weight+path │                  │
//	│                     └─────────────┘    └─────────────┘                  │
//	│                                                                         │
//	└─────────────────────────────────────────────────────────────────────────┘
//
// # Duplicate Edges
//
// When the same directed pair appears more than once, the last record wins.
// Weights are never summed and duplicates are never rejected.
//
// # Thread Safety
//
// A Store is immutable after Build and safe for concurrent reads. A Finder
// keeps per-search state and must not be shared between goroutines.
package graph
