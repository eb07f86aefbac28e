// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the styled output of the multi-call binary.
const (
	// ColorPrimary is purple, for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, for subtitles and borders.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorHighlight is blue, for command names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// CmdStyle is for command names.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// cellStyle pads table cells.
	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	// headerCellStyle is for table headers.
	headerCellStyle = cellStyle.Bold(true).Foreground(ColorPrimary)
)
