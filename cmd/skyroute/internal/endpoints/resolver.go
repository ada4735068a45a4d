// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package endpoints asks the user for a departure and destination airport
// and checks both against the airports of the loaded graph.
//
// Console I/O is injected as functions so the retry loop can be driven from
// tests without a terminal.
package endpoints

import (
	"fmt"
	"strings"

	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
)

// Prompt is the text shown before each entry attempt.
const Prompt = "Please enter a departure airport and a destination airport in the format <DEP> -- <DES>: "

// Separator splits departure from destination in an entry.
const Separator = "--"

// PromptFunc returns one line of user input.
//
// A non-nil error ends resolution. io.EOF is the usual case when stdin is
// closed or piped input runs out.
type PromptFunc func() (string, error)

// ReportFunc shows a rejection message to the user.
type ReportFunc func(msg string)

// Endpoints is a validated departure/destination pair.
type Endpoints struct {
	Departure   graph.NodeID
	Destination graph.NodeID
}

// Parse splits an entry of the form "DEP -- DES".
//
// # Description
//
// The entry must contain the separator exactly once. Both sides are trimmed
// of surrounding whitespace. Parse does not check the names against a graph.
//
// # Outputs
//
//   - Endpoints: The trimmed pair.
//   - error: ErrUnparsable when the separator count is not one.
func Parse(line string) (Endpoints, error) {
	parts := strings.Split(line, Separator)
	if len(parts) != 2 {
		return Endpoints{}, ErrUnparsable
	}
	return Endpoints{
		Departure:   strings.TrimSpace(parts[0]),
		Destination: strings.TrimSpace(parts[1]),
	}, nil
}

// Validate parses an entry and checks both airports against nodes.
//
// # Outputs
//
//   - Endpoints: The validated pair.
//   - error: *EndpointError wrapping ErrUnparsable, ErrUnknownBoth,
//     ErrUnknownDestination or ErrUnknownDeparture.
func Validate(line string, nodes []graph.NodeID) (Endpoints, error) {
	ep, err := Parse(line)
	if err != nil {
		return Endpoints{}, &EndpointError{Kind: err, Input: line, Nodes: nodes}
	}

	known := make(map[graph.NodeID]bool, len(nodes))
	for _, n := range nodes {
		known[n] = true
	}

	depOK, destOK := known[ep.Departure], known[ep.Destination]
	switch {
	case !depOK && !destOK:
		return Endpoints{}, &EndpointError{Kind: ErrUnknownBoth, Input: line, Nodes: nodes}
	case !destOK:
		return Endpoints{}, &EndpointError{Kind: ErrUnknownDestination, Input: line, Nodes: nodes}
	case !depOK:
		return Endpoints{}, &EndpointError{Kind: ErrUnknownDeparture, Input: line, Nodes: nodes}
	}
	return ep, nil
}

// Resolve asks for entries until a valid departure/destination pair is given.
//
// # Description
//
// prompt is called once per attempt, the successful one included. Every
// rejected entry is reported exactly once through report, with the list of
// available airports appended. There is no retry limit.
//
// # Inputs
//
//   - nodes: Airports of the graph, in the order they should be listed.
//   - prompt: Source of input lines.
//   - report: Sink for rejection messages.
//
// # Outputs
//
//   - Endpoints: The validated pair.
//   - error: Non-nil only when prompt fails; wraps ErrPromptClosed and the
//     prompt error.
func Resolve(nodes []graph.NodeID, prompt PromptFunc, report ReportFunc) (Endpoints, error) {
	return ResolveWithObserver(nodes, prompt, report, nil)
}

// AttemptObserver is told about every entry attempt and its outcome.
// err is nil for the accepted entry.
type AttemptObserver func(attempt int, err error)

// ResolveWithObserver is Resolve with a hook for logging and metrics.
//
// observe may be nil.
func ResolveWithObserver(nodes []graph.NodeID, prompt PromptFunc, report ReportFunc, observe AttemptObserver) (Endpoints, error) {
	for attempt := 1; ; attempt++ {
		line, err := prompt()
		if err != nil {
			return Endpoints{}, fmt.Errorf("%w: %w", ErrPromptClosed, err)
		}

		ep, err := Validate(line, nodes)
		if observe != nil {
			observe(attempt, err)
		}
		if err != nil {
			report(err.Error())
			continue
		}
		return ep, nil
	}
}
