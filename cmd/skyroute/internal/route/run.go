// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package route runs one interactive shortest-route query.
//
// Run wires the pieces together in a fixed order:
//
//	records ──► graph.Build ──► endpoints.Resolve ──► graph.Finder ──► Emit
//	                              (prompt/report loop)
//
// Each stage gets its own span and the run as a whole is counted in the
// skyroute_queries_total metric.
package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/endpoints"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/telemetry"
)

// IO is the console surface a run talks to.
type IO struct {
	// Prompt returns one line of user input per call.
	Prompt endpoints.PromptFunc

	// Report shows a rejected entry.
	Report endpoints.ReportFunc

	// Emit shows the final result. Called exactly once on success.
	Emit func(string)
}

// Options tunes a run.
type Options struct {
	// JSON emits a Result document instead of the text route.
	JSON bool

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger

	// Metrics records counters. Nil disables recording.
	Metrics *telemetry.Metrics
}

// Outcome describes a completed run.
type Outcome struct {
	Endpoints endpoints.Endpoints
	Result    graph.PathResult
	Stats     graph.SearchStats
}

// Run builds the graph, asks for endpoints, searches and emits the result.
//
// # Description
//
// An unreachable destination is not an error: "No path found" is emitted
// and Outcome.Result.Found is false.
//
// # Inputs
//
//   - ctx: Carries the parent span. Run does not block on ctx; the only
//     blocking point is rio.Prompt.
//   - records: Edge records in dataset order.
//   - rio: Console functions. All three must be non-nil.
//   - opts: Output format and instrumentation.
//
// # Outputs
//
//   - Outcome: Endpoints, search result and statistics.
//   - error: Wraps endpoints.ErrPromptClosed when input ends before a valid
//     entry, or graph.ErrInconsistentPath if formatting fails.
func Run(ctx context.Context, records []graph.EdgeRecord, rio IO, opts Options) (Outcome, error) {
	ctx, span := telemetry.StartSpan(ctx, "route.Run")
	defer span.End()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = telemetry.LoggerWithTrace(ctx, logger)
	m := opts.Metrics

	store := build(ctx, records, logger, m)

	ep, err := resolve(ctx, store, rio, logger, m)
	if err != nil {
		telemetry.RecordError(span, err)
		m.RecordQuery(ctx, telemetry.OutcomeAborted)
		return Outcome{}, err
	}
	span.SetAttributes(
		attribute.String("route.from", ep.Departure),
		attribute.String("route.to", ep.Destination),
	)

	res, stats := search(ctx, store, ep, logger, m)
	out := Outcome{Endpoints: ep, Result: res, Stats: stats}

	text, err := render(store, ep, res, opts.JSON)
	if err != nil {
		telemetry.RecordError(span, err)
		m.RecordQuery(ctx, telemetry.OutcomeError)
		return out, fmt.Errorf("render route: %w", err)
	}
	rio.Emit(text)

	if res.Found {
		m.RecordQuery(ctx, telemetry.OutcomeFound)
	} else {
		m.RecordQuery(ctx, telemetry.OutcomeNotFound)
	}
	telemetry.SetSpanOK(span)
	return out, nil
}

func build(ctx context.Context, records []graph.EdgeRecord, logger *slog.Logger, m *telemetry.Metrics) *graph.Store {
	_, span := telemetry.StartSpan(ctx, "route.Build")
	defer span.End()

	store := graph.Build(records)
	span.SetAttributes(
		attribute.Int("graph.records", len(records)),
		attribute.Int("graph.nodes", store.NodeCount()),
		attribute.Int("graph.edges", store.EdgeCount()),
	)
	m.RecordGraph(ctx, store.NodeCount(), store.EdgeCount())
	logger.Info("graph built",
		"records", len(records),
		"nodes", store.NodeCount(),
		"edges", store.EdgeCount(),
	)
	return store
}

func resolve(ctx context.Context, store *graph.Store, rio IO, logger *slog.Logger, m *telemetry.Metrics) (endpoints.Endpoints, error) {
	ctx, span := telemetry.StartSpan(ctx, "route.Resolve")
	defer span.End()

	attempts := 0
	observe := func(attempt int, err error) {
		attempts = attempt
		result := AttemptResult(err)
		m.RecordAttempt(ctx, result)
		span.AddEvent("endpoint_attempt", trace.WithAttributes(
			attribute.Int("attempt", attempt),
			attribute.String("result", result),
		))
		logger.Debug("endpoint attempt", "attempt", attempt, "result", result)
	}

	ep, err := endpoints.ResolveWithObserver(store.Nodes(), rio.Prompt, rio.Report, observe)
	span.SetAttributes(attribute.Int("endpoints.attempts", attempts))
	if err != nil {
		telemetry.RecordError(span, err)
		logger.Warn("endpoint entry aborted", "attempts", attempts, "error", err.Error())
		return endpoints.Endpoints{}, fmt.Errorf("resolve endpoints: %w", err)
	}
	return ep, nil
}

func search(ctx context.Context, store *graph.Store, ep endpoints.Endpoints, logger *slog.Logger, m *telemetry.Metrics) (graph.PathResult, graph.SearchStats) {
	_, span := telemetry.StartSpan(ctx, "route.ShortestPath")
	defer span.End()

	finder := graph.NewFinder(store)
	start := time.Now()
	res := finder.ShortestPath(ep.Departure, ep.Destination)
	elapsed := time.Since(start)
	stats := finder.Stats()

	span.SetAttributes(
		attribute.Bool("path.found", res.Found),
		attribute.Float64("path.weight", res.TotalWeight),
		attribute.Int("path.hops", max(len(res.Path)-1, 0)),
		attribute.Int("search.pq_pops", stats.PqPops),
		attribute.Int("search.pq_updates", stats.PqUpdates),
		attribute.Int("search.edge_relaxations", stats.EdgeRelaxations),
	)
	m.RecordSearch(ctx, elapsed.Seconds(), res.Found, res.TotalWeight)
	logger.Debug("search finished",
		"from", ep.Departure,
		"to", ep.Destination,
		"found", res.Found,
		"weight", res.TotalWeight,
		"pq_pops", stats.PqPops,
		"edge_relaxations", stats.EdgeRelaxations,
		"duration_ms", elapsed.Milliseconds(),
	)
	return res, stats
}

// AttemptResult names the outcome of one endpoint entry for metrics and
// logs: "accepted", "unparsable", "unknown_departure",
// "unknown_destination" or "unknown_both".
func AttemptResult(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, endpoints.ErrUnparsable):
		return "unparsable"
	case errors.Is(err, endpoints.ErrUnknownBoth):
		return "unknown_both"
	case errors.Is(err, endpoints.ErrUnknownDeparture):
		return "unknown_departure"
	case errors.Is(err, endpoints.ErrUnknownDestination):
		return "unknown_destination"
	default:
		return "error"
	}
}
