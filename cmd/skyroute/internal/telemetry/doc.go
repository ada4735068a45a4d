// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package telemetry wires OpenTelemetry tracing and metrics for skyroute.
//
// Everything is off by default. A route query is a short interactive run, so
// the useful backends are the ones that survive process exit:
//
//   - Traces: "stdout" writes finished spans as JSON to the configured writer
//     (stderr in the CLI), "otlp" ships them to a collector over gRPC.
//   - Metrics: "stdout" dumps the final readings at shutdown, "prometheus"
//     collects into a private registry that is written to a node_exporter
//     textfile when MetricsTextfile is set.
//
// # Usage
//
//	shutdown, err := telemetry.Init(ctx, cfg)
//	if err != nil {
//	    return fmt.Errorf("init telemetry: %w", err)
//	}
//	defer shutdown(context.Background())
//
//	metrics, err := telemetry.NewMetrics(otel.Meter(telemetry.InstrumentationName))
//
// # Thread Safety
//
// Init and shutdown must be called once from main. The span helpers and the
// Metrics instruments are safe for concurrent use.
package telemetry
