// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console is the interactive surface of the CLI.
//
// Prompts, rejection reports and results go to out; fatal errors and
// status notes go to errOut. Styling is applied only when enabled, so with
// color off every byte written is exactly the text passed in.
//
// Thread Safety: Not safe for concurrent use.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	color    bool
	errColor bool
	styles   StyleSet
	errSty   StyleSet
}

// NewConsole creates a Console. Color is decided separately for out and
// errOut according to mode.
func NewConsole(in io.Reader, out, errOut io.Writer, mode ColorMode) *Console {
	color := ShouldColor(out, mode)
	errColor := ShouldColor(errOut, mode)
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		errOut:   errOut,
		color:    color,
		errColor: errColor,
		styles:   NewStyles(renderer(out, color)),
		errSty:   NewStyles(renderer(errOut, errColor)),
	}
}

func renderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Colored reports whether output to out is styled.
func (c *Console) Colored() bool {
	return c.color
}

// Styles returns the style set bound to out.
func (c *Console) Styles() StyleSet {
	return c.styles
}

// ReadLine writes prompt verbatim and reads one line of input.
//
// # Description
//
// The trailing "\n" or "\r\n" is stripped. A final line without a newline
// is returned normally; io.EOF is returned only when no more text is left.
//
// # Outputs
//
//   - string: The line without its terminator.
//   - error: io.EOF when input is exhausted, or a read/write failure.
func (c *Console) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimNewline(line), nil
		}
		return "", err
	}
	return trimNewline(line), nil
}

// Report writes a rejection message on its own line to out.
func (c *Console) Report(msg string) {
	fmt.Fprintln(c.out, paint(c.color, c.styles.Warning, msg))
}

// Emit writes a result on its own line to out. Results are never styled.
func (c *Console) Emit(text string) {
	fmt.Fprintln(c.out, text)
}

// Error writes a fatal error to errOut.
func (c *Console) Error(text string) {
	if !c.errColor {
		fmt.Fprintf(c.errOut, "Error: %s\n", text)
		return
	}
	fmt.Fprintf(c.errOut, "%s %s\n", IconError.Render(c.errSty), c.errSty.Error.Render(text))
}

// Success writes a confirmation to errOut.
func (c *Console) Success(text string) {
	if !c.errColor {
		fmt.Fprintln(c.errOut, text)
		return
	}
	fmt.Fprintf(c.errOut, "%s %s\n", IconSuccess.Render(c.errSty), text)
}

// List writes items one per line to out. On a colored console the title
// is shown and items are bulleted; plain output is the bare items.
func (c *Console) List(title string, items []string) {
	if !c.color {
		for _, item := range items {
			fmt.Fprintln(c.out, item)
		}
		return
	}
	if title != "" {
		fmt.Fprintln(c.out, c.styles.Title.Render(title))
	}
	for _, item := range items {
		fmt.Fprintf(c.out, "%s %s\n", c.styles.Muted.Render(string(IconBullet)), c.styles.Highlight.Render(item))
	}
}

// paint renders text with style only when color is on, so plain output is
// byte-for-byte the input.
func paint(color bool, style lipgloss.Style, text string) string {
	if !color {
		return text
	}
	return style.Render(text)
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
