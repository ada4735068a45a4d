// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal styling and console I/O for the skyroute CLI.
package ux

import (
	"github.com/charmbracelet/lipgloss"
)

// Aleutian color palette - deep ocean teals and arctic waters
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // Bright teal - highlights, success
	ColorTealPrimary = lipgloss.Color("#20B9B4") // Primary teal - airports, headings
	ColorSlate       = lipgloss.Color("#2C4A54") // Slate - muted text

	ColorWarning = lipgloss.Color("#F4D03F") // Gold/amber for warnings
	ColorError   = lipgloss.Color("#E74C3C") // Red for errors
)

// StyleSet holds the styles used by Console, bound to one renderer.
type StyleSet struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
}

// NewStyles builds the palette on r. A renderer with the Ascii profile
// yields styles that render text unchanged.
func NewStyles(r *lipgloss.Renderer) StyleSet {
	return StyleSet{
		Title:     r.NewStyle().Bold(true).Foreground(ColorTealBright),
		Muted:     r.NewStyle().Foreground(ColorSlate),
		Success:   r.NewStyle().Foreground(ColorTealBright),
		Warning:   r.NewStyle().Foreground(ColorWarning),
		Error:     r.NewStyle().Foreground(ColorError),
		Highlight: r.NewStyle().Foreground(ColorTealPrimary).Bold(true),
	}
}

// Icon provides themed status icons
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconBullet  Icon = "•"
)

// Render returns the icon styled from s.
func (i Icon) Render(s StyleSet) string {
	switch i {
	case IconSuccess:
		return s.Success.Render(string(i))
	case IconWarning:
		return s.Warning.Render(string(i))
	case IconError:
		return s.Error.Render(string(i))
	default:
		return string(i)
	}
}
