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
	"strconv"
	"strings"
)

// Format renders a route as text.
//
// # Description
//
// Each hop is written as "A -- B (w) " with the trailing space kept for
// compatibility with existing consumers, followed by a final "time: T" line.
// Lines are joined with "\n" and there is no trailing newline. A single node
// path renders only the time line.
//
// # Inputs
//
//   - g: Graph the path was computed on. Used to look up hop weights.
//   - path: Route from departure to destination.
//   - totalWeight: Sum of the hop weights.
//
// # Outputs
//
//   - string: The rendered route.
//   - error: ErrEmptyPath for an empty path, *MissingEdgeError when a hop has
//     no edge in g.
//
// # Example
//
//	out, _ := Format(g, Path{"DUB", "LAX", "HAR"}, 7)
//	// "DUB -- LAX (5) \nLAX -- HAR (2) \ntime: 7"
func Format(g *Store, path Path, totalWeight float64) (string, error) {
	if len(path) == 0 {
		return "", ErrEmptyPath
	}

	var sb strings.Builder
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]
		w, ok := g.Weight(from, to)
		if !ok {
			return "", &MissingEdgeError{From: from, To: to}
		}
		sb.WriteString(from)
		sb.WriteString(" -- ")
		sb.WriteString(to)
		sb.WriteString(" (")
		sb.WriteString(FormatWeight(w))
		sb.WriteString(") \n")
	}
	sb.WriteString("time: ")
	sb.WriteString(FormatWeight(totalWeight))

	return sb.String(), nil
}

// FormatWeight renders a weight with the fewest digits needed.
//
// Integral values have no decimal point: 7 renders as "7", 2.5 as "2.5".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
