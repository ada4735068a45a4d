// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AleutianAI/skyroute/cmd/skyroute/internal/graph"
)

func TestLoad_Semicolon(t *testing.T) {
	in := "Dep;Arr;Time\nDUB;LAX;5\nLAX;HAR;2\n"

	got, err := Load(strings.NewReader(in), Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []graph.EdgeRecord{
		{From: "DUB", To: "LAX", Weight: 5},
		{From: "LAX", To: "HAR", Weight: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestLoad_DefaultDelimiterIsComma(t *testing.T) {
	got, err := Load(strings.NewReader("Dep,Arr,Time\nDUB,LAX,1.5\n"), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].Weight != 1.5 {
		t.Errorf("Load() = %v", got)
	}
}

func TestLoad_ColumnsByName(t *testing.T) {
	in := "Carrier\tTime\tArr\tDep\nEI\t7\tLAX\tDUB\n"

	got, err := Load(strings.NewReader(in), Options{Delimiter: '\t'})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []graph.EdgeRecord{{From: "DUB", To: "LAX", Weight: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestLoad_CustomColumns(t *testing.T) {
	in := "origin,dest,minutes\nA,B,3\n"
	opts := Options{FromColumn: "origin", ToColumn: "dest", WeightColumn: "minutes"}

	got, err := Load(strings.NewReader(in), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].From != "A" || got[0].To != "B" || got[0].Weight != 3 {
		t.Errorf("Load() = %v", got)
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	got, err := Load(strings.NewReader("Dep;Arr;Time\n"), Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want no records", got)
	}
}

func TestLoad_KeepsNamesVerbatimAndDuplicates(t *testing.T) {
	in := "Dep;Arr;Time\ndub;DUB; 4 \nDUB;LAX;5\nDUB;LAX;6\n\n"

	got, err := Load(strings.NewReader(in), Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []graph.EdgeRecord{
		{From: "dub", To: "DUB", Weight: 4},
		{From: "DUB", To: "LAX", Weight: 5},
		{From: "DUB", To: "LAX", Weight: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %v, want %v", got, want)
	}
}

func TestLoad_ByteOrderMark(t *testing.T) {
	got, err := Load(strings.NewReader("\ufeffDep,Arr,Time\nA,B,1\n"), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Load() = %v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		opts     Options
		sentinel error
		line     int
	}{
		{"empty input", "", Options{}, ErrEmptyDataset, 0},
		{"missing column", "Dep,Arr\nA,B\n", Options{}, ErrMissingColumn, 0},
		{"wrong delimiter", "Dep;Arr;Time\nA;B;1\n", Options{}, ErrMissingColumn, 0},
		{"non numeric weight", "Dep,Arr,Time\nA,B,1\nB,C,soon\n", Options{}, ErrInvalidWeight, 3},
		{"empty weight", "Dep,Arr,Time\nA,B,\n", Options{}, ErrInvalidWeight, 2},
		{"negative weight", "Dep,Arr,Time\nA,B,-2\n", Options{}, ErrNegativeWeight, 2},
		{"short row", "Dep,Arr,Time\nA,B\n", Options{}, ErrMalformedRow, 2},
		{"bad quoting", "Dep,Arr,Time\nA,\"B,1\n", Options{}, ErrMalformedRow, 0},
		{"bad delimiter", "Dep\"Arr\n", Options{Delimiter: '"'}, ErrInvalidDelimiter, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.in), tt.opts)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("Load() error = %v, want %v", err, tt.sentinel)
			}
			if tt.line == 0 {
				return
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("Load() error %T is not *RowError", err)
			}
			if rowErr.Line != tt.line {
				t.Errorf("RowError.Line = %d, want %d", rowErr.Line, tt.line)
			}
		})
	}
}

func TestLoad_ColumnErrorNamesColumn(t *testing.T) {
	_, err := Load(strings.NewReader("Dep,Arr,Minutes\n"), Options{})

	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("Load() error = %v, want *ColumnError", err)
	}
	if colErr.Column != "Time" {
		t.Errorf("Column = %q, want Time", colErr.Column)
	}
	if !strings.Contains(err.Error(), "Time") {
		t.Errorf("Error() = %q, want column name", err.Error())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Airports.csv")
	if err := os.WriteFile(path, []byte("Dep;Arr;Time\nDUB;LAX;5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path, Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(got) != 1 || got[0].From != "DUB" {
		t.Errorf("LoadFile() = %v", got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadFile_ErrorIncludesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("Dep,Arr,Time\nA,B,x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path, Options{})
	if !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Error() = %q, want path", err.Error())
	}
}
