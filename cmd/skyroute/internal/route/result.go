// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package route

import (
	"encoding/json"
	"fmt"

	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/endpoints"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
)

// APIVersion is the schema version of JSON output.
const APIVersion = "1.0"

// MsgNoPath is emitted when the destination is unreachable.
const MsgNoPath = "No path found"

// Result is the JSON form of a route query.
type Result struct {
	APIVersion string `json:"api_version"`
	From       string `json:"from"`
	To         string `json:"to"`

	PathFound bool `json:"path_found"`

	// TotalWeight is null when no path was found.
	TotalWeight *float64 `json:"total_weight"`

	// Path and Legs are empty arrays when no path was found.
	Path []string `json:"path"`
	Legs []Leg    `json:"legs"`
}

// Leg is one hop of a route.
type Leg struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// NewResult builds the JSON result for a finished search.
//
// Returns *graph.MissingEdgeError if a hop of res.Path is not an edge of g.
func NewResult(g *graph.Store, ep endpoints.Endpoints, res graph.PathResult) (*Result, error) {
	r := &Result{
		APIVersion: APIVersion,
		From:       ep.Departure,
		To:         ep.Destination,
		PathFound:  res.Found,
		Path:       []string{},
		Legs:       []Leg{},
	}
	if !res.Found {
		return r, nil
	}

	total := res.TotalWeight
	r.TotalWeight = &total
	r.Path = append(r.Path, res.Path...)
	for i := 0; i+1 < len(res.Path); i++ {
		from, to := res.Path[i], res.Path[i+1]
		w, ok := g.Weight(from, to)
		if !ok {
			return nil, &graph.MissingEdgeError{From: from, To: to}
		}
		r.Legs = append(r.Legs, Leg{From: from, To: to, Weight: w})
	}
	return r, nil
}

// render produces the text emitted for a search result.
func render(g *graph.Store, ep endpoints.Endpoints, res graph.PathResult, asJSON bool) (string, error) {
	if asJSON {
		r, err := NewResult(g, ep, res)
		if err != nil {
			return "", err
		}
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode result: %w", err)
		}
		return string(data), nil
	}

	if !res.Found {
		return MsgNoPath, nil
	}
	return graph.Format(g, res.Path, res.TotalWeight)
}
