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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/skyroute/cmd/skyroute/config"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/route"
	"github.com/AleutianAI/skyroute/pkg/logging"
	"github.com/AleutianAI/skyroute/pkg/ux"
)

// serviceName tags logs and telemetry.
const serviceName = "skyroute"

// app holds the streams, flag values and per-run state shared by every
// command. Commands read from in and write to out/errOut only, never to the
// os streams directly.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Global flags
	configPath string
	jsonOutput bool
	logLevel   string
	colorMode  string

	// Command flags
	failIfEmpty bool
	forceInit   bool

	cfg        config.SkyrouteConfig
	console    *ux.Console
	rootLogger *logging.Logger
	logger     *logging.Logger
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.reportError(err)
	}
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "skyroute [FILE [DELIMITER]]",
		Short: "Find the quickest route between two airports",
		Long: `Reads a dataset of direct connections, asks for a departure and a
destination airport in the form "DEP -- DES" and prints the quickest route.

The dataset needs Dep, Arr and Time columns (names can be changed in the
config file). Without arguments Airports.csv is read with ';' as the
delimiter. A FILE given without DELIMITER is read with ','.

A FILE named like a subcommand ("airports", "config", "help") runs that
subcommand instead; pass it with a path prefix such as ./airports.`,
		Example: `  skyroute
  skyroute flights.csv
  skyroute flights.tsv '\t'
  echo "DUB -- LAX" | skyroute flights.csv --json`,
		Version:           version,
		Args:              datasetArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoute,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return badArgs(err)
	})

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.skyroute/skyroute.yaml)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output results as JSON")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "", "Color output: auto, always or never (overrides config)")
	root.Flags().BoolVar(&a.failIfEmpty, "fail-if-empty", false, "Exit with code 1 when no path exists")

	root.AddCommand(newAirportsCmd(a), newConfigCmd(a))
	return root
}

// datasetArgs validates the optional FILE and DELIMITER arguments.
func datasetArgs(_ *cobra.Command, args []string) error {
	if _, err := ResolveParams(args); err != nil {
		return badArgs(err)
	}
	return nil
}

// noArgs is cobra.NoArgs mapped to ExitBadArgs.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return badArgs(err)
	}
	return nil
}

// setup loads the config, applies flag overrides and opens the console and
// logger.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(a.configPath)
	if err != nil {
		return failed(err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.colorMode != "" {
		cfg.Output.Color = a.colorMode
	}
	// The file was already validated, so a failure here comes from a flag.
	if err := config.Validate(cfg); err != nil {
		return badArgs(err)
	}
	a.cfg = cfg

	mode, err := ux.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return badArgs(err)
	}
	a.console = ux.NewConsole(a.in, a.out, a.errOut, mode)

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return badArgs(err)
	}
	a.rootLogger = logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.Logging.Dir,
		Service: serviceName,
		JSON:    cfg.Logging.JSON,
		Quiet:   cfg.Logging.Quiet,
		Output:  a.errOut,
	})
	a.logger = a.rootLogger.With("run_id", uuid.NewString())
	if source != "" {
		a.logger.Debug("config loaded", "path", source)
	}
	return nil
}

// close releases the log file.
func (a *app) close() {
	if a.rootLogger != nil {
		_ = a.rootLogger.Close()
	}
}

// errorResult is the --json document for a failed command.
type errorResult struct {
	APIVersion string `json:"api_version"`
	Success    bool   `json:"success"`
	Error      string `json:"error"`
}

// reportError prints a command failure.
//
// In JSON mode the error is written to out as an errorResult, otherwise to
// errOut through the console. ErrNoPath is not repeated in JSON mode since
// the route document already carries path_found=false.
func (a *app) reportError(err error) {
	if a.jsonOutput {
		if errors.Is(err, ErrNoPath) {
			return
		}
		_ = a.writeJSON(errorResult{APIVersion: route.APIVersion, Success: false, Error: err.Error()})
		return
	}

	c := a.console
	if c == nil {
		mode, _ := ux.ParseColorMode(a.colorMode)
		c = ux.NewConsole(a.in, a.out, a.errOut, mode)
	}
	c.Error(err.Error())
	if exitCode(err) == ExitBadArgs {
		fmt.Fprintln(a.errOut, "Run 'skyroute --help' for usage.")
	}
}

// writeJSON writes v to out, indented.
func (a *app) writeJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return failed(fmt.Errorf("encode JSON: %w", err))
	}
	return nil
}
