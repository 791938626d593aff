// Copyright (c) 2026 Gridpick Team
// Gridpick - interactive terminal grid selector
// This source code is licensed under the MIT license found in the LICENSE file.
package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestByName_KnownAndUnknown(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) returned error: %v", name, err)
		}
		if p.Name != name {
			t.Fatalf("ByName(%q) returned palette %q", name, p.Name)
		}
	}

	if _, err := ByName("mauve"); err == nil {
		t.Fatalf("expected error for unknown palette name")
	}
}

func TestNames_OrderAndDefault(t *testing.T) {
	want := []string{"blue", "emerald", "indigo", "red"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d palette names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected name %q at %d, got %q", want[i], i, got[i])
		}
	}
	if _, err := ByName(DefaultName); err != nil {
		t.Fatalf("default palette %q must resolve: %v", DefaultName, err)
	}
}

func TestCellLayers_Projection(t *testing.T) {
	const curRow, curCol = 1, 2

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			layers := CellLayers(curRow, curCol, row, col)
			switch {
			case row == curRow && col == curCol:
				if len(layers) != 3 || layers[0] != LayerRow || layers[1] != LayerColumn || layers[2] != LayerCell {
					t.Fatalf("intersection cell (%d,%d): expected [row column cell], got %v", row, col, layers)
				}
			case row == curRow:
				if len(layers) != 1 || layers[0] != LayerRow {
					t.Fatalf("row cell (%d,%d): expected [row], got %v", row, col, layers)
				}
			case col == curCol:
				if len(layers) != 1 || layers[0] != LayerColumn {
					t.Fatalf("column cell (%d,%d): expected [column], got %v", row, col, layers)
				}
			default:
				if len(layers) != 0 {
					t.Fatalf("plain cell (%d,%d): expected no layers, got %v", row, col, layers)
				}
			}
		}
	}
}

func TestBaseStyle_ZebraByRowParity(t *testing.T) {
	p, err := ByName("blue")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}

	even := p.BaseStyle(0)
	odd := p.BaseStyle(1)
	if even.GetBackground() != p.NormalRowBg {
		t.Fatalf("even row background: expected %v, got %v", p.NormalRowBg, even.GetBackground())
	}
	if odd.GetBackground() != p.AltRowBg {
		t.Fatalf("odd row background: expected %v, got %v", p.AltRowBg, odd.GetBackground())
	}
	if p.BaseStyle(2).GetBackground() != p.NormalRowBg {
		t.Fatalf("row 2 should use the normal background again")
	}
}

func TestCellStyle_MergeOrder(t *testing.T) {
	p, err := ByName("emerald")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	const curRow, curCol = 0, 0

	// Intersection: reversed, cell accent wins the foreground.
	cell := p.CellStyle(curRow, curCol, 0, 0)
	if !cell.GetReverse() {
		t.Fatalf("intersection cell must be reversed")
	}
	if cell.GetForeground() != lipgloss.TerminalColor(p.SelectedCellFg) {
		t.Fatalf("intersection foreground: expected %v, got %v", p.SelectedCellFg, cell.GetForeground())
	}

	// Row-only: reversed with the row accent.
	rowOnly := p.CellStyle(curRow, curCol, 0, 2)
	if !rowOnly.GetReverse() {
		t.Fatalf("row cell must be reversed")
	}
	if rowOnly.GetForeground() != lipgloss.TerminalColor(p.SelectedRowFg) {
		t.Fatalf("row foreground: expected %v, got %v", p.SelectedRowFg, rowOnly.GetForeground())
	}

	// Column-only: tinted but not reversed.
	colOnly := p.CellStyle(curRow, curCol, 2, 0)
	if colOnly.GetReverse() {
		t.Fatalf("column cell must not be reversed")
	}
	if colOnly.GetForeground() != lipgloss.TerminalColor(p.SelectedColFg) {
		t.Fatalf("column foreground: expected %v, got %v", p.SelectedColFg, colOnly.GetForeground())
	}

	// Untouched cells keep the zebra base.
	plain := p.CellStyle(curRow, curCol, 2, 2)
	if plain.GetReverse() {
		t.Fatalf("plain cell must not be reversed")
	}
	if plain.GetForeground() != lipgloss.TerminalColor(p.RowFg) {
		t.Fatalf("plain foreground: expected %v, got %v", p.RowFg, plain.GetForeground())
	}
}
