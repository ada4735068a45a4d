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
	"unicode/utf8"
)

// Dataset argument defaults.
const (
	// DefaultDatasetFile is read when no FILE argument is given.
	DefaultDatasetFile = "Airports.csv"

	// DefaultFileDelimiter applies to DefaultDatasetFile.
	DefaultFileDelimiter = ';'

	// DefaultArgDelimiter applies to a FILE given without a DELIMITER.
	DefaultArgDelimiter = ','
)

var (
	errTooManyArgs  = errors.New("expected at most FILE and DELIMITER")
	errEmptyFile    = errors.New("dataset file name is empty")
	errBadDelimiter = errors.New("delimiter must be a single character")
)

// Params are the positional arguments after defaults are applied.
type Params struct {
	File      string
	Delimiter rune
}

// ResolveParams applies the dataset argument rules.
//
// # Description
//
//   - no arguments: Airports.csv, ';'
//   - FILE: FILE, ','
//   - FILE DELIMITER: FILE, DELIMITER
//
// DELIMITER must be exactly one character. The two-character escape `\t`
// is accepted for a tab, since a literal tab is awkward to type in a shell.
//
// # Outputs
//
//   - Params: The dataset file and delimiter.
//   - error: Describes the invalid argument. The caller maps it to
//     ExitBadArgs.
func ResolveParams(args []string) (Params, error) {
	switch len(args) {
	case 0:
		return Params{File: DefaultDatasetFile, Delimiter: DefaultFileDelimiter}, nil
	case 1, 2:
	default:
		return Params{}, fmt.Errorf("%w, got %d arguments", errTooManyArgs, len(args))
	}

	if args[0] == "" {
		return Params{}, errEmptyFile
	}
	p := Params{File: args[0], Delimiter: DefaultArgDelimiter}
	if len(args) == 2 {
		d, err := ParseDelimiter(args[1])
		if err != nil {
			return Params{}, err
		}
		p.Delimiter = d
	}
	return p, nil
}

// ParseDelimiter converts a DELIMITER argument to a rune.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w, got %q", errBadDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w, got invalid UTF-8", errBadDelimiter)
	}
	return r, nil
}
