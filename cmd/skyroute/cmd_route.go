// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/AleutianAI/skyroute/cmd/skyroute/config"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/dataset"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/endpoints"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/route"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/telemetry"
)

// telemetryShutdownTimeout bounds the final exporter flush.
const telemetryShutdownTimeout = 5 * time.Second

// runRoute executes the interactive route query.
//
// # Description
//
// Loads the dataset, starts telemetry, then hands the console to
// route.Run. An unreachable destination prints "No path found" and exits
// with ExitSuccess unless --fail-if-empty is set.
//
// # Outputs
//
//   - error: *ExitCodeError with ExitBadArgs for argument problems and
//     ExitError for dataset, input or telemetry failures.
func (a *app) runRoute(cmd *cobra.Command, args []string) error {
	params, err := ResolveParams(args)
	if err != nil {
		return badArgs(err)
	}

	records, err := a.loadDataset(params)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	shutdown, err := telemetry.Init(ctx, a.telemetryConfig())
	if err != nil {
		return failed(fmt.Errorf("init telemetry: %w", err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryShutdownTimeout)
		defer cancel()
		if serr := shutdown(sctx); serr != nil {
			a.logger.Warn("telemetry shutdown failed", "error", serr.Error())
		}
	}()

	metrics, err := telemetry.NewMetrics(otel.Meter(telemetry.InstrumentationName))
	if err != nil {
		return failed(fmt.Errorf("create metrics: %w", err))
	}

	rio := route.IO{
		Prompt: func() (string, error) { return a.console.ReadLine(endpoints.Prompt) },
		Report: a.console.Report,
		Emit:   a.console.Emit,
	}
	outcome, err := route.Run(ctx, records, rio, route.Options{
		JSON:    a.jsonOutput,
		Logger:  a.logger.Slog(),
		Metrics: metrics,
	})
	if err != nil {
		if errors.Is(err, endpoints.ErrPromptClosed) {
			// Leave the terminal cursor off the prompt line.
			a.console.Emit("")
		}
		return failed(err)
	}

	if a.failIfEmpty && !outcome.Result.Found {
		return failed(fmt.Errorf("%w: %s -> %s", ErrNoPath, outcome.Endpoints.Departure, outcome.Endpoints.Destination))
	}
	return nil
}

// loadDataset reads the dataset named by params with the configured column
// names.
func (a *app) loadDataset(params Params) ([]graph.EdgeRecord, error) {
	start := time.Now()
	records, err := dataset.LoadFile(params.File, a.cfg.DatasetOptions(params.Delimiter))
	if err != nil {
		if errors.Is(err, dataset.ErrInvalidDelimiter) {
			return nil, badArgs(err)
		}
		return nil, failed(fmt.Errorf("load dataset: %w", err))
	}
	a.logger.Info("dataset loaded",
		"file", params.File,
		"delimiter", string(params.Delimiter),
		"records", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return records, nil
}

// telemetryConfig maps the config file section onto telemetry.Config.
//
// The OTEL_* environment overrides read by telemetry.DefaultConfig apply
// to every exporter field the config file leaves at its default value.
func (a *app) telemetryConfig() telemetry.Config {
	tc := a.cfg.Telemetry
	def := config.DefaultConfig().Telemetry
	cfg := telemetry.DefaultConfig()
	cfg.ServiceName = serviceName
	cfg.ServiceVersion = version
	if tc.TraceExporter != def.TraceExporter {
		cfg.TraceExporter = tc.TraceExporter
	}
	if tc.MetricExporter != def.MetricExporter {
		cfg.MetricExporter = tc.MetricExporter
	}
	if tc.OTLPEndpoint != def.OTLPEndpoint {
		cfg.OTLPEndpoint = tc.OTLPEndpoint
	}
	cfg.OTLPInsecure = tc.OTLPInsecure
	cfg.MetricsTextfile = tc.MetricsTextfile
	cfg.Writer = a.errOut
	return cfg
}
