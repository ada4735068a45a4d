// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/dataset"
)

// SkyrouteConfig is the on-disk configuration at ~/.skyroute/skyroute.yaml.
type SkyrouteConfig struct {
	// Dataset: column names in the connections file
	Dataset DatasetConfig `yaml:"dataset"`

	// Logging: level and destinations for diagnostic logs (always stderr)
	Logging LoggingConfig `yaml:"logging"`

	// Telemetry: OpenTelemetry exporters
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Output: console styling
	Output OutputConfig `yaml:"output"`
}

type DatasetConfig struct {
	FromColumn   string `yaml:"from_column" validate:"required"`   // e.g. Dep
	ToColumn     string `yaml:"to_column" validate:"required"`     // e.g. Arr
	WeightColumn string `yaml:"weight_column" validate:"required"` // e.g. Time
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
	// Dir enables a JSON log file per day, e.g. ~/.skyroute/logs
	Dir   string `yaml:"dir,omitempty"`
	Quiet bool   `yaml:"quiet"`
}

type TelemetryConfig struct {
	TraceExporter  string `yaml:"trace_exporter" validate:"oneof=none stdout otlp"`
	MetricExporter string `yaml:"metric_exporter" validate:"oneof=none stdout prometheus"`
	OTLPEndpoint   string `yaml:"otlp_endpoint" validate:"required_if=TraceExporter otlp"`
	OTLPInsecure   bool   `yaml:"otlp_insecure"`
	// MetricsTextfile is written at exit when MetricExporter is prometheus,
	// e.g. /var/lib/node_exporter/textfile/skyroute.prom
	MetricsTextfile string `yaml:"metrics_textfile,omitempty"`
}

type OutputConfig struct {
	// Color is auto, always or never
	Color string `yaml:"color" validate:"oneof=auto always never"`
}

// DefaultConfig returns the built-in configuration used when no file exists.
func DefaultConfig() SkyrouteConfig {
	return SkyrouteConfig{
		Dataset: DatasetConfig{
			FromColumn:   dataset.DefaultFromColumn,
			ToColumn:     dataset.DefaultToColumn,
			WeightColumn: dataset.DefaultWeightColumn,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Telemetry: TelemetryConfig{
			TraceExporter:  "none",
			MetricExporter: "none",
			OTLPEndpoint:   "localhost:4317",
			OTLPInsecure:   true,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// DatasetOptions converts the dataset section for the loader.
func (c SkyrouteConfig) DatasetOptions(delimiter rune) dataset.Options {
	return dataset.Options{
		Delimiter:    delimiter,
		FromColumn:   c.Dataset.FromColumn,
		ToColumn:     c.Dataset.ToColumn,
		WeightColumn: c.Dataset.WeightColumn,
	}
}
