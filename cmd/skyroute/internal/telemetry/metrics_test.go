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
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collect returns every metric gathered by reader, keyed by name.
func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	return m, reader
}

func TestNewMetrics(t *testing.T) {
	m, _ := newTestMetrics(t)

	if m.QueriesTotal == nil {
		t.Error("QueriesTotal is nil")
	}
	if m.EndpointAttemptsTotal == nil {
		t.Error("EndpointAttemptsTotal is nil")
	}
	if m.PathWeight == nil {
		t.Error("PathWeight is nil")
	}
	if m.SearchDuration == nil {
		t.Error("SearchDuration is nil")
	}
	if m.GraphNodes == nil || m.GraphEdges == nil {
		t.Error("graph gauges are nil")
	}
}

func TestMetrics_RecordQuery(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordQuery(ctx, OutcomeFound)
	m.RecordQuery(ctx, OutcomeFound)
	m.RecordQuery(ctx, OutcomeNotFound)

	got := collect(t, reader)["skyroute_queries_total"]
	sum, ok := got.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("queries_total data = %T, want Sum[int64]", got.Data)
	}

	counts := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key("outcome"))
		counts[v.AsString()] = dp.Value
	}
	if counts[OutcomeFound] != 2 {
		t.Errorf("found = %d, want 2", counts[OutcomeFound])
	}
	if counts[OutcomeNotFound] != 1 {
		t.Errorf("not_found = %d, want 1", counts[OutcomeNotFound])
	}
}

func TestMetrics_RecordGraph(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordGraph(context.Background(), 3, 2)

	got := collect(t, reader)
	nodes, ok := got["skyroute_graph_nodes"].Data.(metricdata.Gauge[int64])
	if !ok || len(nodes.DataPoints) != 1 || nodes.DataPoints[0].Value != 3 {
		t.Errorf("graph_nodes = %+v, want 3", got["skyroute_graph_nodes"].Data)
	}
	edges, ok := got["skyroute_graph_edges"].Data.(metricdata.Gauge[int64])
	if !ok || len(edges.DataPoints) != 1 || edges.DataPoints[0].Value != 2 {
		t.Errorf("graph_edges = %+v, want 2", got["skyroute_graph_edges"].Data)
	}
}

func TestMetrics_RecordSearch(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordSearch(ctx, 0.001, true, 7)
	m.RecordSearch(ctx, 0.002, false, 0)

	got := collect(t, reader)
	weights, ok := got["skyroute_path_weight"].Data.(metricdata.Histogram[float64])
	if !ok || len(weights.DataPoints) != 1 {
		t.Fatalf("path_weight = %+v", got["skyroute_path_weight"].Data)
	}
	if weights.DataPoints[0].Count != 1 || weights.DataPoints[0].Sum != 7 {
		t.Errorf("path_weight count=%d sum=%v, want 1 and 7",
			weights.DataPoints[0].Count, weights.DataPoints[0].Sum)
	}

	durations, ok := got["skyroute_search_duration_seconds"].Data.(metricdata.Histogram[float64])
	if !ok || len(durations.DataPoints) != 1 || durations.DataPoints[0].Count != 2 {
		t.Errorf("search_duration_seconds = %+v, want 2 samples", got["skyroute_search_duration_seconds"].Data)
	}
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	ctx := context.Background()

	// Must not panic.
	m.RecordGraph(ctx, 1, 1)
	m.RecordAttempt(ctx, "accepted")
	m.RecordQuery(ctx, OutcomeFound)
	m.RecordSearch(ctx, 0, true, 1)
}
