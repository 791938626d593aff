// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gridpick/gridpick/internal/grid"
	"github.com/gridpick/gridpick/internal/i18n"
)

// View recomputes the full frame from the current state. Below the minimum
// terminal size only a warning is drawn; nothing of the board leaks
// through the gate.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return m.viewTooSmall()
	}

	title := titleStyle(m.palette).Render(i18n.T("tui.title"))
	table := m.viewTable()
	footer := m.viewFooter()

	block := lipgloss.JoinVertical(lipgloss.Center, title, table, "", footer)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		block,
		lipgloss.WithWhitespaceBackground(m.palette.BufferBg),
	)
}

// viewTooSmall renders the centered resize warning and nothing else.
func (m Model) viewTooSmall() string {
	width := m.width
	if width > minWidth {
		width = minWidth
	}
	warning := warningStyle(m.palette, width).Render(i18n.T("tui.too_small", minWidth, minHeight))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, warning)
}

// viewTable draws the board: three 3-line rows of equal-width cells, zebra
// striped by row parity, with the cursor's row/column/cell highlights
// merged on top.
func (m Model) viewTable() string {
	rows := make([]string, 0, grid.Rows)
	for r := 0; r < grid.Rows; r++ {
		cells := make([]string, 0, grid.Cols)
		for c := 0; c < grid.Cols; c++ {
			style := m.palette.CellStyle(m.cursor.Row, m.cursor.Col, r, c)
			cells = append(cells, cellBlock(style).Render(m.board.Value(r, c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// viewFooter shows the transient status line when present, the key help
// otherwise.
func (m Model) viewFooter() string {
	if m.status != "" {
		return statusStyle(m.palette).Render(m.status)
	}
	return m.help.View(m.keys)
}
