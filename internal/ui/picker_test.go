package ui

import (
	"testing"

	"pxworld/internal/sims/sand"
)

func TestPickerSelectsBySide(t *testing.T) {
	p := NewPicker()
	if p.Open() || p.Selected() != sand.BrushSand {
		t.Fatal("new picker should be closed with sand selected")
	}

	p.Hover(0, 0)
	if p.Hovered() {
		t.Fatal("hovering a closed picker must be ignored")
	}

	p.Toggle(100, 80)
	if !p.Open() {
		t.Fatal("Toggle should open the picker")
	}
	if x, y := p.Center(); x != 100 || y != 80 {
		t.Fatalf("center = (%d,%d), want (100,80)", x, y)
	}

	p.Hover(120, 80)
	if p.Selected() != sand.BrushWater {
		t.Fatalf("right half should select water, got %s", p.Selected().Name)
	}
	p.Hover(60, 90)
	if p.Selected() != sand.BrushSand {
		t.Fatalf("left half should select sand, got %s", p.Selected().Name)
	}

	p.Toggle(0, 0)
	if p.Open() {
		t.Fatal("second Toggle should close the picker")
	}
	if p.Selected() != sand.BrushSand {
		t.Fatal("closing must keep the selection")
	}
}

func TestPickerSelectDirect(t *testing.T) {
	p := NewPicker()
	p.Select(sand.BrushWood)
	if p.Selected() != sand.BrushWood {
		t.Fatal("Select should set the brush")
	}
	p.Toggle(10, 10)
	p.Close()
	if p.Open() {
		t.Fatal("Close should hide the picker")
	}
}
