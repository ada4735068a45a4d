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

import "container/heap"

// Finder runs Dijkstra searches over a Store.
//
// # Description
//
// Finder keeps the statistics of its last search so callers can log or trace
// how much work a query took. Edge weights must be non-negative; with
// negative weights the result is unspecified.
//
// # Thread Safety
//
// Finder is NOT safe for concurrent use. Create one per goroutine.
type Finder struct {
	g     *Store
	stats SearchStats
}

// NewFinder creates a Finder over g.
func NewFinder(g *Store) *Finder {
	return &Finder{g: g}
}

// ShortestPath computes the minimum-weight route from -> to.
//
// # Description
//
// Nodes are settled in order of tentative distance. Every out-edge of a
// settled node is relaxed. The search stops as soon as the destination is
// settled or the reachable set is exhausted. Distance ties are broken by the
// order in which nodes were first reached, so results are deterministic for
// a given graph.
//
// # Inputs
//
//   - from: Departure airport.
//   - to: Destination airport.
//
// # Outputs
//
//   - PathResult: Found is false when either node is unknown or no directed
//     route exists. For from == to the path is [from] with weight 0.
func (f *Finder) ShortestPath(from, to NodeID) PathResult {
	f.stats = SearchStats{}

	if !f.g.HasNode(from) || !f.g.HasNode(to) {
		return PathResult{}
	}
	if from == to {
		return PathResult{Found: true, TotalWeight: 0, Path: Path{from}}
	}

	items := make(map[NodeID]*searchItem, f.g.NodeCount())
	settled := make(map[NodeID]bool, f.g.NodeCount())
	seq := 0

	origin := &searchItem{node: from, seq: seq, index: -1}
	items[from] = origin

	pq := make(minQueue, 0)
	heap.Init(&pq)
	heap.Push(&pq, origin)

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*searchItem)
		f.stats.PqPops++
		settled[current.node] = true

		if current.node == to {
			break
		}

		for _, arc := range f.g.Neighbors(current.node) {
			f.stats.EdgeRelaxations++
			if settled[arc.To] {
				continue
			}

			distance := current.distance + arc.Weight
			successor, seen := items[arc.To]
			if !seen {
				seq++
				successor = &searchItem{
					node:        arc.To,
					distance:    distance,
					predecessor: current.node,
					hasPred:     true,
					seq:         seq,
					index:       -1,
				}
				items[arc.To] = successor
				heap.Push(&pq, successor)
				f.stats.PqUpdates++
				continue
			}

			if distance < successor.distance {
				successor.predecessor = current.node
				successor.hasPred = true
				pq.update(successor, distance)
				f.stats.PqUpdates++
			}
		}
	}

	if !settled[to] {
		return PathResult{}
	}

	target := items[to]
	path := Path{}
	for item := target; ; item = items[item.predecessor] {
		path = append(path, item.node)
		if !item.hasPred {
			break
		}
	}
	reversePath(path)

	return PathResult{Found: true, TotalWeight: target.distance, Path: path}
}

// Stats returns the statistics of the last search.
func (f *Finder) Stats() SearchStats {
	return f.stats
}

// ShortestPath is a convenience wrapper that runs a single search on g.
func ShortestPath(g *Store, from, to NodeID) PathResult {
	return NewFinder(g).ShortestPath(from, to)
}

// reversePath reverses p in place.
func reversePath(p Path) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
