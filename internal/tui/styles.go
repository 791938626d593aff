// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.

// This file defines the lipgloss styles derived from the injected palette.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gridpick/gridpick/internal/grid"
	"github.com/gridpick/gridpick/internal/theme"
)

// Fixed layout dimensions: the title and table share a 30-column block,
// each cell is a third of that and three lines tall with the value on the
// middle line.
const (
	boxWidth   = 30
	cellWidth  = boxWidth / grid.Cols
	cellHeight = 3
)

// titleStyle renders the centered title line above the table.
func titleStyle(p theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.SelectedRowFg).
		Bold(true).
		Width(boxWidth).
		Align(lipgloss.Center)
}

// warningStyle renders the too-small message, wrapped and centered.
func warningStyle(p theme.Palette, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Warning).
		Width(width).
		Align(lipgloss.Center)
}

// cellBlock sizes a cell's merged style into its fixed box, value centered
// both ways.
func cellBlock(s lipgloss.Style) lipgloss.Style {
	return s.
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center)
}

// statusStyle renders the transient footer status line.
func statusStyle(p theme.Palette) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.SelectedColFg)
}
