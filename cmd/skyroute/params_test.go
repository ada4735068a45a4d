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
	"testing"
)

func TestResolveParams(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Params
	}{
		{"no args", nil, Params{File: "Airports.csv", Delimiter: ';'}},
		{"file only", []string{"flights.csv"}, Params{File: "flights.csv", Delimiter: ','}},
		{"file and delimiter", []string{"flights.txt", "|"}, Params{File: "flights.txt", Delimiter: '|'}},
		{"semicolon", []string{"Airports.csv", ";"}, Params{File: "Airports.csv", Delimiter: ';'}},
		{"escaped tab", []string{"flights.tsv", `\t`}, Params{File: "flights.tsv", Delimiter: '\t'}},
		{"literal tab", []string{"flights.tsv", "\t"}, Params{File: "flights.tsv", Delimiter: '\t'}},
		{"multibyte rune", []string{"flights.txt", "§"}, Params{File: "flights.txt", Delimiter: '§'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveParams(tt.args)
			if err != nil {
				t.Fatalf("ResolveParams(%q) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("ResolveParams(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestResolveParams_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"too many", []string{"a.csv", ",", "extra"}, errTooManyArgs},
		{"empty file", []string{""}, errEmptyFile},
		{"long delimiter", []string{"a.csv", ",,"}, errBadDelimiter},
		{"empty delimiter", []string{"a.csv", ""}, errBadDelimiter},
		{"invalid utf8", []string{"a.csv", "\xff"}, errBadDelimiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveParams(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResolveParams(%q) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"bad args", badArgs(errBadDelimiter), ExitBadArgs},
		{"failed", failed(ErrNoPath), ExitError},
		{"plain error", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeError_Unwrap(t *testing.T) {
	err := badArgs(errBadDelimiter)

	if !errors.Is(err, ErrBadArgs) {
		t.Error("errors.Is(err, ErrBadArgs) = false, want true")
	}
	if !errors.Is(err, errBadDelimiter) {
		t.Error("errors.Is(err, errBadDelimiter) = false, want true")
	}
	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) || exitErr.Code != ExitBadArgs {
		t.Errorf("errors.As(err) = %v, want Code %d", exitErr, ExitBadArgs)
	}
}
