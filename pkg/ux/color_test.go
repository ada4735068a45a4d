// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"bytes"
	"os"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{" never ", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShouldColor(t *testing.T) {
	var buf bytes.Buffer

	if !ShouldColor(&buf, ColorAlways) {
		t.Error("ShouldColor(always) = false")
	}
	if ShouldColor(&buf, ColorNever) {
		t.Error("ShouldColor(never) = true")
	}
	if ShouldColor(&buf, ColorAuto) {
		t.Error("ShouldColor(auto) on a buffer = true, want false")
	}
}

func TestShouldColor_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if ShouldColor(os.Stdout, ColorAuto) {
		t.Error("ShouldColor(auto) with NO_COLOR set = true")
	}
	if !ShouldColor(os.Stdout, ColorAlways) {
		t.Error("ColorAlways should ignore NO_COLOR")
	}
}

func TestIsTerminal_PipeIsNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if isTerminal(w) {
		t.Error("isTerminal(pipe) = true")
	}
}
