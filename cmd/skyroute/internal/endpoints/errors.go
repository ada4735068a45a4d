// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package endpoints

import (
	"errors"
	"strings"

	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
)

// User-facing messages. The wording is relied on by scripts driving the CLI
// and must not change.
const (
	MsgUnparsable         = "Unable to parse the airports - did you only use a single dash?"
	MsgUnknownBoth        = "Unable to recognise the departure airport or the destination airport"
	MsgUnknownDestination = "Unable to recognise the destination airport"
	MsgUnknownDeparture   = "Unable to recognise the departure airport"

	availableSuffix = " - available airports are "
)

// Sentinel errors for endpoint resolution.
var (
	// Input errors. Recoverable: the resolver reports them and asks again.
	ErrUnparsable         = errors.New("endpoints not separated by a single --")
	ErrUnknownBoth        = errors.New("unknown departure and destination")
	ErrUnknownDestination = errors.New("unknown destination")
	ErrUnknownDeparture   = errors.New("unknown departure")

	// ErrPromptClosed means the input source ended before a valid pair was
	// entered.
	ErrPromptClosed = errors.New("input closed before a valid route was entered")
)

// EndpointError is a rejected departure/destination entry.
//
// Error returns the exact text shown to the user, including the list of
// available airports.
type EndpointError struct {
	Kind  error
	Input string
	Nodes []graph.NodeID
}

// Error implements the error interface.
func (e *EndpointError) Error() string {
	return message(e.Kind) + availableSuffix + FormatNodes(e.Nodes)
}

// FormatNodes renders airport names as a bracketed, comma-separated list
// of quoted names, e.g. ['DUB', 'New York', 'LAX'].
//
// Names are single-quoted. A name holding a single quote and no double
// quote is double-quoted instead; otherwise backslashes and single quotes
// are escaped.
func FormatNodes(nodes []graph.NodeID) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteNode(n))
	}
	b.WriteByte(']')
	return b.String()
}

func quoteNode(name string) string {
	if strings.Contains(name, "'") && !strings.Contains(name, `"`) {
		return `"` + strings.ReplaceAll(name, `\`, `\\`) + `"`
	}
	r := strings.NewReplacer(`\`, `\\`, "'", `\'`)
	return "'" + r.Replace(name) + "'"
}

// Unwrap returns the sentinel error.
func (e *EndpointError) Unwrap() error {
	return e.Kind
}

// message maps a sentinel to its user-facing wording.
func message(kind error) string {
	switch kind {
	case ErrUnparsable:
		return MsgUnparsable
	case ErrUnknownBoth:
		return MsgUnknownBoth
	case ErrUnknownDestination:
		return MsgUnknownDestination
	case ErrUnknownDeparture:
		return MsgUnknownDeparture
	default:
		return kind.Error()
	}
}
