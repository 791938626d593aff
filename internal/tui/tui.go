// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui implements the interactive board view. The model owns the
// cursor and the injected palette; every key press mutates state inside
// Update and the next View projects it onto the screen. Nothing here runs
// concurrently with anything else.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridpick/gridpick/internal/grid"
	"github.com/gridpick/gridpick/internal/i18n"
	"github.com/gridpick/gridpick/internal/logging"
	"github.com/gridpick/gridpick/internal/theme"
)

// Minimum terminal size below which only the resize warning is drawn.
const (
	minWidth  = 30
	minHeight = 10
)

// Model is the top-level bubbletea model for the board view.
type Model struct {
	board   grid.Grid
	cursor  grid.Cursor
	palette theme.Palette
	keys    keyMap
	help    help.Model
	width   int
	height  int
	status  string
}

// NewModel creates the starting state: default board, cursor at the
// top-left cell, and the injected palette.
func NewModel(palette theme.Palette) Model {
	return Model{
		board:   grid.New(),
		palette: palette,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Cursor exposes the current selection position.
func (m Model) Cursor() grid.Cursor {
	return m.cursor
}

// SelectedValue returns the value of the cell under the cursor.
func (m Model) SelectedValue() string {
	return m.board.Value(m.cursor.Row, m.cursor.Col)
}

// Init implements tea.Model. There is no startup work to schedule.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window resizes and key presses. Movement keys wrap the
// cursor at the board edges; anything unbound is a no-op.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// The copy status is transient: any key press clears it, and the
		// Copy case below sets a fresh one.
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.cursor.NextRow()
		case key.Matches(msg, m.keys.Up):
			m.cursor.PrevRow()
		case key.Matches(msg, m.keys.Right):
			m.cursor.NextColumn()
		case key.Matches(msg, m.keys.Left):
			m.cursor.PrevColumn()
		case key.Matches(msg, m.keys.Copy):
			value := m.SelectedValue()
			if err := clipboard.WriteAll(value); err != nil {
				logging.Debugf("clipboard write failed: %v", err)
				m.status = i18n.T("tui.copy_failed")
			} else {
				m.status = i18n.T("tui.copied", value)
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// Run starts the TUI program on the alternate screen and blocks until the
// user quits or input fails. The bubbletea runtime restores the terminal
// on every exit path, including panics.
func Run(palette theme.Palette) error {
	_, err := tea.NewProgram(
		NewModel(palette),
		tea.WithAltScreen(),
	).Run()
	return err
}
