// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Query outcomes recorded on skyroute_queries_total.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeAborted  = "aborted"
	OutcomeError    = "error"
)

// Metrics holds the skyroute instruments.
//
// Thread Safety: Safe for concurrent use after creation.
type Metrics struct {
	// QueriesTotal counts route queries by outcome.
	QueriesTotal metric.Int64Counter

	// EndpointAttemptsTotal counts endpoint entries by result
	// ("accepted" or the rejection reason).
	EndpointAttemptsTotal metric.Int64Counter

	// PathWeight records the total weight of found routes.
	PathWeight metric.Float64Histogram

	// SearchDuration records shortest-path search time in seconds.
	SearchDuration metric.Float64Histogram

	// GraphNodes and GraphEdges hold the size of the loaded graph.
	GraphNodes metric.Int64Gauge
	GraphEdges metric.Int64Gauge
}

// NewMetrics creates every instrument on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.QueriesTotal, err = meter.Int64Counter(
		"skyroute_queries_total",
		metric.WithDescription("Route queries by outcome"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create queries_total: %w", err)
	}

	m.EndpointAttemptsTotal, err = meter.Int64Counter(
		"skyroute_endpoint_attempts_total",
		metric.WithDescription("Departure/destination entries by result"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create endpoint_attempts_total: %w", err)
	}

	m.PathWeight, err = meter.Float64Histogram(
		"skyroute_path_weight",
		metric.WithDescription("Total weight of found routes"),
	)
	if err != nil {
		return nil, fmt.Errorf("create path_weight: %w", err)
	}

	m.SearchDuration, err = meter.Float64Histogram(
		"skyroute_search_duration_seconds",
		metric.WithDescription("Shortest-path search duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create search_duration_seconds: %w", err)
	}

	m.GraphNodes, err = meter.Int64Gauge(
		"skyroute_graph_nodes",
		metric.WithDescription("Airports in the loaded graph"),
	)
	if err != nil {
		return nil, fmt.Errorf("create graph_nodes: %w", err)
	}

	m.GraphEdges, err = meter.Int64Gauge(
		"skyroute_graph_edges",
		metric.WithDescription("Directed connections in the loaded graph"),
	)
	if err != nil {
		return nil, fmt.Errorf("create graph_edges: %w", err)
	}

	return m, nil
}

// RecordGraph records the size of a freshly built graph.
func (m *Metrics) RecordGraph(ctx context.Context, nodes, edges int) {
	if m == nil {
		return
	}
	m.GraphNodes.Record(ctx, int64(nodes))
	m.GraphEdges.Record(ctx, int64(edges))
}

// RecordAttempt counts one endpoint entry.
func (m *Metrics) RecordAttempt(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.EndpointAttemptsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// RecordQuery counts one finished query.
func (m *Metrics) RecordQuery(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.QueriesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordSearch records search duration, and the path weight when a route
// was found.
func (m *Metrics) RecordSearch(ctx context.Context, seconds float64, found bool, weight float64) {
	if m == nil {
		return
	}
	m.SearchDuration.Record(ctx, seconds)
	if found {
		m.PathWeight.Record(ctx, weight)
	}
}
