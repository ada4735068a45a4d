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

// edgeKey addresses a directed pair.
type edgeKey struct {
	from NodeID
	to   NodeID
}

// Store is an adjacency-list graph of airports and timed connections.
//
// # Description
//
// Nodes are kept in order of first appearance in the edge records so that
// listings and error messages are reproducible between runs. Out-edges of a
// node keep the order in which each directed pair first appeared.
//
// # Thread Safety
//
// Store is immutable after Build and safe for concurrent reads.
type Store struct {
	nodes     []NodeID
	nodeIndex map[NodeID]int
	outgoing  map[NodeID][]Neighbor
	edgeSlot  map[edgeKey]int // position of the pair in outgoing[from]
}

// Build creates a Store from parsed edge records.
//
// # Description
//
// The node set is the union of every From and To value. A directed pair seen
// more than once keeps the weight of its last record. Self loops and zero
// weights are stored as given. An empty input produces an empty graph.
//
// # Inputs
//
//   - records: Edge records in file order. May be nil.
//
// # Outputs
//
//   - *Store: The built graph. Never nil.
func Build(records []EdgeRecord) *Store {
	s := &Store{
		nodes:     make([]NodeID, 0, len(records)),
		nodeIndex: make(map[NodeID]int, len(records)),
		outgoing:  make(map[NodeID][]Neighbor, len(records)),
		edgeSlot:  make(map[edgeKey]int, len(records)),
	}

	for _, rec := range records {
		s.addNode(rec.From)
		s.addNode(rec.To)

		key := edgeKey{from: rec.From, to: rec.To}
		if slot, ok := s.edgeSlot[key]; ok {
			s.outgoing[rec.From][slot].Weight = rec.Weight
			continue
		}
		s.edgeSlot[key] = len(s.outgoing[rec.From])
		s.outgoing[rec.From] = append(s.outgoing[rec.From], Neighbor{To: rec.To, Weight: rec.Weight})
	}

	return s
}

func (s *Store) addNode(id NodeID) {
	if _, ok := s.nodeIndex[id]; ok {
		return
	}
	s.nodeIndex[id] = len(s.nodes)
	s.nodes = append(s.nodes, id)
}

// Nodes returns the airports in first-appearance order.
//
// The returned slice is a copy and may be modified by the caller.
func (s *Store) Nodes() []NodeID {
	return append([]NodeID(nil), s.nodes...)
}

// HasNode reports whether id is an airport of the graph.
func (s *Store) HasNode(id NodeID) bool {
	_, ok := s.nodeIndex[id]
	return ok
}

// Weight returns the weight of the directed edge from -> to.
func (s *Store) Weight(from, to NodeID) (float64, bool) {
	slot, ok := s.edgeSlot[edgeKey{from: from, to: to}]
	if !ok {
		return 0, false
	}
	return s.outgoing[from][slot].Weight, true
}

// Neighbors returns the directed out-edges of node.
//
// Returns nil for unknown nodes and nodes without out-edges. The returned
// slice is shared with the Store and must not be modified.
func (s *Store) Neighbors(node NodeID) []Neighbor {
	return s.outgoing[node]
}

// NodeCount returns the number of airports.
func (s *Store) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of distinct directed pairs.
func (s *Store) EdgeCount() int {
	return len(s.edgeSlot)
}
