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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	g := Build(nil)

	require.NotNil(t, g)
	assert.Empty(t, g.Nodes())
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Nil(t, g.Neighbors("DUB"))
}

func TestBuild_SingleRecord(t *testing.T) {
	g := Build([]EdgeRecord{{From: "DUB", To: "LAX", Weight: 1}})

	assert.Equal(t, []NodeID{"DUB", "LAX"}, g.Nodes())
	w, ok := g.Weight("DUB", "LAX")
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
}

func TestBuild_NodesAreDistinctEndpointsInFirstAppearanceOrder(t *testing.T) {
	g := Build([]EdgeRecord{
		{From: "LAX", To: "HAR", Weight: 2},
		{From: "DUB", To: "LAX", Weight: 5},
		{From: "HAR", To: "DUB", Weight: 9},
		{From: "JFK", To: "JFK", Weight: 0},
	})

	assert.Equal(t, []NodeID{"LAX", "HAR", "DUB", "JFK"}, g.Nodes())
	for _, id := range []NodeID{"LAX", "HAR", "DUB", "JFK"} {
		assert.True(t, g.HasNode(id), id)
	}
	assert.False(t, g.HasNode("SAX"))
}

func TestBuild_NodeNamesAreCaseSensitiveAndNotTrimmed(t *testing.T) {
	g := Build([]EdgeRecord{
		{From: "dub", To: "DUB", Weight: 1},
		{From: " LAX", To: "DUB", Weight: 1},
	})

	assert.Equal(t, []NodeID{"dub", "DUB", " LAX"}, g.Nodes())
	assert.False(t, g.HasNode("LAX"))
}

func TestBuild_DuplicatePairLastWins(t *testing.T) {
	g := Build([]EdgeRecord{
		{From: "DUB", To: "LAX", Weight: 5},
		{From: "DUB", To: "HAR", Weight: 3},
		{From: "DUB", To: "LAX", Weight: 1},
		{From: "DUB", To: "LAX", Weight: 8},
	})

	w, ok := g.Weight("DUB", "LAX")
	require.True(t, ok)
	assert.Equal(t, 8.0, w)
	assert.Equal(t, 2, g.EdgeCount())

	// Neighbor order follows first appearance of each pair.
	assert.Equal(t, []Neighbor{{To: "LAX", Weight: 8}, {To: "HAR", Weight: 3}}, g.Neighbors("DUB"))
}

func TestBuild_DirectedOnly(t *testing.T) {
	g := Build([]EdgeRecord{{From: "DUB", To: "LAX", Weight: 5}})

	_, ok := g.Weight("LAX", "DUB")
	assert.False(t, ok)
	assert.Empty(t, g.Neighbors("LAX"))
}

func TestBuild_SelfLoopAndZeroWeight(t *testing.T) {
	g := Build([]EdgeRecord{
		{From: "DUB", To: "DUB", Weight: 4},
		{From: "DUB", To: "LAX", Weight: 0},
	})

	w, ok := g.Weight("DUB", "DUB")
	require.True(t, ok)
	assert.Equal(t, 4.0, w)

	w, ok = g.Weight("DUB", "LAX")
	require.True(t, ok)
	assert.Equal(t, 0.0, w)
}

func TestBuild_Idempotent(t *testing.T) {
	records := []EdgeRecord{
		{From: "DUB", To: "LAX", Weight: 5},
		{From: "LAX", To: "HAR", Weight: 2},
		{From: "DUB", To: "LAX", Weight: 6},
		{From: "HAR", To: "DUB", Weight: 1},
	}

	a := Build(records)
	b := Build(records)

	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, from := range a.Nodes() {
		assert.Equal(t, a.Neighbors(from), b.Neighbors(from), from)
	}
}

func TestStore_NodesReturnsCopy(t *testing.T) {
	g := Build([]EdgeRecord{{From: "DUB", To: "LAX", Weight: 5}})

	nodes := g.Nodes()
	nodes[0] = "XXX"

	assert.Equal(t, []NodeID{"DUB", "LAX"}, g.Nodes())
}
