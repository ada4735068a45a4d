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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_ThreeNodes(t *testing.T) {
	g := Build([]EdgeRecord{
		{From: "DUB", To: "LAX", Weight: 5},
		{From: "LAX", To: "HAR", Weight: 2},
	})

	out, err := Format(g, Path{"DUB", "LAX", "HAR"}, 7)

	require.NoError(t, err)
	assert.Equal(t, "DUB -- LAX (5) \nLAX -- HAR (2) \ntime: 7", out)
}

func TestFormat_SingleHop(t *testing.T) {
	g := Build([]EdgeRecord{{From: "DUB", To: "LAX", Weight: 1}})

	out, err := Format(g, Path{"DUB", "LAX"}, 1)

	require.NoError(t, err)
	assert.Equal(t, "DUB -- LAX (1) \ntime: 1", out)
}

func TestFormat_SingleNode(t *testing.T) {
	g := Build([]EdgeRecord{{From: "DUB", To: "LAX", Weight: 1}})

	out, err := Format(g, Path{"DUB"}, 0)

	require.NoError(t, err)
	assert.Equal(t, "time: 0", out)
}

func TestFormat_FractionalWeights(t *testing.T) {
	g := Build([]EdgeRecord{
		{From: "A", To: "B", Weight: 1.5},
		{From: "B", To: "C", Weight: 0.25},
	})

	out, err := Format(g, Path{"A", "B", "C"}, 1.75)

	require.NoError(t, err)
	assert.Equal(t, "A -- B (1.5) \nB -- C (0.25) \ntime: 1.75", out)
}

func TestFormat_MissingEdge(t *testing.T) {
	g := Build([]EdgeRecord{{From: "DUB", To: "LAX", Weight: 5}})

	out, err := Format(g, Path{"DUB", "LAX", "HAR"}, 7)

	assert.Empty(t, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentPath))

	var missing *MissingEdgeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "LAX", missing.From)
	assert.Equal(t, "HAR", missing.To)
}

func TestFormat_EmptyPath(t *testing.T) {
	g := Build(nil)

	_, err := Format(g, nil, 0)

	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestFormat_MatchesShortestPath(t *testing.T) {
	g := Build([]EdgeRecord{
		{From: "DUB", To: "LAX", Weight: 5},
		{From: "LAX", To: "HAR", Weight: 2},
	})
	res := ShortestPath(g, "DUB", "HAR")
	require.True(t, res.Found)

	out, err := Format(g, res.Path, res.TotalWeight)

	require.NoError(t, err)
	assert.Equal(t, "DUB -- LAX (5) \nLAX -- HAR (2) \ntime: 7", out)
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{120, "120"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1e6, "1000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWeight(tt.in))
	}
}
