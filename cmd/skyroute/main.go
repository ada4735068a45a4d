// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command skyroute finds the quickest route between two airports.
//
// Usage:
//
//	skyroute [FILE [DELIMITER]]
//	skyroute airports [FILE [DELIMITER]]
//	skyroute config init|show
//
// FILE is a delimited text file of direct connections with Dep, Arr and Time
// columns. Without arguments Airports.csv is read with ';' as the delimiter;
// a FILE given alone is read with ','.
package main

import (
	"context"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
