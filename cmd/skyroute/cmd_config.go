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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/skyroute/cmd/skyroute/config"
	"github.com/AleutianAI/skyroute/pkg/ux"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the skyroute config file",
		// A broken config file must not stop init --force from replacing
		// it, so these commands skip the root setup.
		PersistentPreRunE: a.setupConsole,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long: `Writes the built-in defaults to the config file (--config, or
~/.skyroute/skyroute.yaml). An existing file is kept unless --force is given.`,
		Args: noArgs,
		RunE: a.runConfigInit,
	}
	initCmd.Flags().BoolVar(&a.forceInit, "force", false, "Overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  noArgs,
		RunE:  a.runConfigShow,
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

// setupConsole opens the console from the --color flag alone.
func (a *app) setupConsole(_ *cobra.Command, _ []string) error {
	mode, err := ux.ParseColorMode(a.colorMode)
	if err != nil {
		return badArgs(err)
	}
	a.console = ux.NewConsole(a.in, a.out, a.errOut, mode)
	return nil
}

func (a *app) runConfigInit(_ *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return failed(err)
		}
		path = p
	}

	if err := config.CreateDefault(path, a.forceInit); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return failed(fmt.Errorf("%w (use --force to overwrite)", err))
		}
		return failed(fmt.Errorf("write config: %w", err))
	}
	a.console.Success("Wrote default config to " + path)
	return nil
}

func (a *app) runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(a.configPath)
	if err != nil {
		return failed(err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return failed(fmt.Errorf("render config: %w", err))
	}

	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(a.out, "# source: %s\n%s", source, data)
	return nil
}
