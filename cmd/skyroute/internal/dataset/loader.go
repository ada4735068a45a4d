// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dataset reads airport connection tables into edge records.
//
// The input is delimited text with a header row. The departure, arrival and
// time columns are located by header name, so column order is free and extra
// columns are ignored.
//
//	Dep;Arr;Time
//	DUB;LAX;5
//	LAX;HAR;2
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
)

// Default column names.
const (
	DefaultFromColumn   = "Dep"
	DefaultToColumn     = "Arr"
	DefaultWeightColumn = "Time"
)

// Options controls how a dataset is read.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Column names. Empty values fall back to the defaults.
	FromColumn   string
	ToColumn     string
	WeightColumn string
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.FromColumn == "" {
		o.FromColumn = DefaultFromColumn
	}
	if o.ToColumn == "" {
		o.ToColumn = DefaultToColumn
	}
	if o.WeightColumn == "" {
		o.WeightColumn = DefaultWeightColumn
	}
	return o
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string, opts Options) ([]graph.EdgeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Load reads edge records from r.
//
// # Description
//
// The first row is the header. Every following row becomes one EdgeRecord
// in input order. Airport names are taken verbatim; only the weight field is
// trimmed before parsing. Blank lines are skipped.
//
// # Inputs
//
//   - r: Delimited text.
//   - opts: Delimiter and column names.
//
// # Outputs
//
//   - []graph.EdgeRecord: Records in file order. Empty for a header-only input.
//   - error: ErrEmptyDataset, *ColumnError, *RowError or ErrInvalidDelimiter.
func Load(r io.Reader, opts Options) ([]graph.EdgeRecord, error) {
	opts = opts.withDefaults()

	if !validDelimiter(opts.Delimiter) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDelimiter, opts.Delimiter)
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, rowError(err)
	}
	header = append([]string(nil), header...)
	// Spreadsheet exports often start with a byte order mark.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	fromIdx, err := columnIndex(header, opts.FromColumn)
	if err != nil {
		return nil, err
	}
	toIdx, err := columnIndex(header, opts.ToColumn)
	if err != nil {
		return nil, err
	}
	weightIdx, err := columnIndex(header, opts.WeightColumn)
	if err != nil {
		return nil, err
	}
	need := max(fromIdx, toIdx, weightIdx) + 1

	records := make([]graph.EdgeRecord, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rowError(err)
		}
		line, _ := cr.FieldPos(0)

		if len(row) < need {
			return nil, &RowError{
				Line: line,
				Err:  fmt.Errorf("%w: %d fields, need %d", ErrMalformedRow, len(row), need),
			}
		}

		raw := row[weightIdx]
		weight, perr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if perr != nil {
			return nil, &RowError{Line: line, Field: opts.WeightColumn, Value: raw, Err: ErrInvalidWeight}
		}
		if weight < 0 {
			return nil, &RowError{Line: line, Field: opts.WeightColumn, Value: raw, Err: ErrNegativeWeight}
		}

		records = append(records, graph.EdgeRecord{
			From:   row[fromIdx],
			To:     row[toIdx],
			Weight: weight,
		})
	}
	return records, nil
}

// columnIndex finds name in header. Header cells are compared after trimming.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, &ColumnError{Column: name, Header: header}
}

// rowError converts a csv.ParseError into a RowError.
func rowError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RowError{Line: pe.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRow, pe.Err)}
	}
	return fmt.Errorf("read dataset: %w", err)
}

// validDelimiter mirrors the checks encoding/csv applies to Comma.
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != 0xFFFD
}
