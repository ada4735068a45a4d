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

// searchItem is the Dijkstra bookkeeping for one node.
type searchItem struct {
	node        NodeID
	distance    float64 // tentative distance from the origin
	predecessor NodeID
	hasPred     bool
	seq         int // insertion order, breaks distance ties
	index       int // position in the heap, -1 once popped
}

// minQueue implements heap.Interface ordered by distance, then seq.
type minQueue []*searchItem

func (q minQueue) Len() int { return len(q) }

func (q minQueue) Less(i, j int) bool {
	if q[i].distance != q[j].distance {
		return q[i].distance < q[j].distance
	}
	return q[i].seq < q[j].seq
}

func (q minQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *minQueue) Push(x any) {
	item := x.(*searchItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *minQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// update lowers the distance of an item still in the queue.
func (q *minQueue) update(item *searchItem, distance float64) {
	item.distance = distance
	heap.Fix(q, item.index)
}
