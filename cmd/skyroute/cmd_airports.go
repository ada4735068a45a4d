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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/route"
)

// airportsResult is the --json document for the airports command.
type airportsResult struct {
	APIVersion string   `json:"api_version"`
	Success    bool     `json:"success"`
	File       string   `json:"file"`
	Count      int      `json:"count"`
	Routes     int      `json:"routes"`
	Airports   []string `json:"airports"`
}

func newAirportsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "airports [FILE [DELIMITER]]",
		Short: "List the airports in a dataset",
		Long: `Lists every airport that appears in the dataset, in the order the
route prompt shows them. Arguments follow the same rules as the root command.`,
		Example: `  skyroute airports flights.csv
  skyroute airports flights.csv --json`,
		Args: datasetArgs,
		RunE: a.runAirports,
	}
}

func (a *app) runAirports(_ *cobra.Command, args []string) error {
	params, err := ResolveParams(args)
	if err != nil {
		return badArgs(err)
	}
	records, err := a.loadDataset(params)
	if err != nil {
		return err
	}

	store := graph.Build(records)
	nodes := store.Nodes()

	if a.jsonOutput {
		return a.writeJSON(airportsResult{
			APIVersion: route.APIVersion,
			Success:    true,
			File:       params.File,
			Count:      len(nodes),
			Routes:     store.EdgeCount(),
			Airports:   nodes,
		})
	}

	a.console.List(fmt.Sprintf("%d airports, %d routes", len(nodes), store.EdgeCount()), nodes)
	return nil
}
