// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme defines the named color palettes and the style projection
// for board cells. A palette is resolved once at startup and injected into
// the TUI; nothing in here is mutated after that.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared base colors (tailwind slate) used by every palette.
const (
	colorBufferBg    = lipgloss.Color("#020617") // slate 950
	colorRowFg       = lipgloss.Color("#e2e8f0") // slate 200
	colorNormalRowBg = lipgloss.Color("#020617") // slate 950
	colorAltRowBg    = lipgloss.Color("#0f172a") // slate 900
	colorWarning     = lipgloss.Color("#ef4444") // red 500
)

// Palette holds the colors the renderer needs for one frame. Selected-row
// and selected-column highlights share the accent's 400 shade; the
// selected cell gets the stronger 600 shade so the intersection stands out.
type Palette struct {
	Name           string
	BufferBg       lipgloss.Color
	RowFg          lipgloss.Color
	SelectedRowFg  lipgloss.Color
	SelectedColFg  lipgloss.Color
	SelectedCellFg lipgloss.Color
	NormalRowBg    lipgloss.Color
	AltRowBg       lipgloss.Color
	Warning        lipgloss.Color
}

func newPalette(name string, accent400, accent600 lipgloss.Color) Palette {
	return Palette{
		Name:           name,
		BufferBg:       colorBufferBg,
		RowFg:          colorRowFg,
		SelectedRowFg:  accent400,
		SelectedColFg:  accent400,
		SelectedCellFg: accent600,
		NormalRowBg:    colorNormalRowBg,
		AltRowBg:       colorAltRowBg,
		Warning:        colorWarning,
	}
}

// palettes is the fixed set of named palettes, in presentation order.
var palettes = []Palette{
	newPalette("blue", "#60a5fa", "#2563eb"),
	newPalette("emerald", "#34d399", "#059669"),
	newPalette("indigo", "#818cf8", "#4f46e5"),
	newPalette("red", "#f87171", "#dc2626"),
}

// DefaultName is the palette used when the config does not name one.
const DefaultName = "blue"

// Names returns the valid palette names in order.
func Names() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// ByName resolves a palette by its config name.
func ByName(name string) (Palette, error) {
	for _, p := range palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("unknown palette %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Layer identifies one highlight overlay. Layers are applied to a cell's
// zebra base style in a fixed order: row, then column, then cell.
type Layer int

const (
	LayerRow Layer = iota
	LayerColumn
	LayerCell
)

// CellLayers reports which highlight layers apply to the cell at
// (row, col) when the cursor sits at (curRow, curCol), in merge order.
// The intersection cell carries all three; other cells in the cursor's
// row or column carry exactly one; everything else carries none.
func CellLayers(curRow, curCol, row, col int) []Layer {
	var layers []Layer
	if row == curRow {
		layers = append(layers, LayerRow)
	}
	if col == curCol {
		layers = append(layers, LayerColumn)
	}
	if row == curRow && col == curCol {
		layers = append(layers, LayerCell)
	}
	return layers
}

// BaseStyle is the zebra-stripe style for a cell in the given row: default
// row foreground over a background that alternates by row parity.
func (p Palette) BaseStyle(row int) lipgloss.Style {
	bg := p.NormalRowBg
	if row%2 == 1 {
		bg = p.AltRowBg
	}
	return lipgloss.NewStyle().Foreground(p.RowFg).Background(bg)
}

// Apply layers one highlight onto a style. Each layer is a pure function
// of the incoming style; composition order is the caller's contract.
func (p Palette) Apply(layer Layer, s lipgloss.Style) lipgloss.Style {
	switch layer {
	case LayerRow:
		return s.Reverse(true).Foreground(p.SelectedRowFg)
	case LayerColumn:
		return s.Foreground(p.SelectedColFg)
	case LayerCell:
		return s.Reverse(true).Foreground(p.SelectedCellFg)
	}
	return s
}

// CellStyle projects the cursor onto the cell at (row, col): the zebra
// base with every applicable highlight layer merged left to right.
func (p Palette) CellStyle(curRow, curCol, row, col int) lipgloss.Style {
	s := p.BaseStyle(row)
	for _, layer := range CellLayers(curRow, curCol, row, col) {
		s = p.Apply(layer, s)
	}
	return s
}
