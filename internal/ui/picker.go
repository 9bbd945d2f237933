package ui

import "pxworld/internal/sims/sand"

// DefaultPickerRadius is the on-screen radius of the picker disc.
const DefaultPickerRadius = 50

// Picker is a two-sided element chooser opened at the cursor: hovering the
// left half selects sand, the right half water. Brushes can also be
// selected directly.
type Picker struct {
	open     bool
	cx, cy   int
	radius   int
	selected sand.Brush
	hovered  bool
}

// NewPicker returns a closed picker with sand selected.
func NewPicker() *Picker {
	return &Picker{radius: DefaultPickerRadius, selected: sand.BrushSand}
}

// Open reports whether the picker is shown.
func (p *Picker) Open() bool { return p.open }

// Center returns the screen position the picker was opened at.
func (p *Picker) Center() (int, int) { return p.cx, p.cy }

// Radius returns the picker radius in screen pixels.
func (p *Picker) Radius() int { return p.radius }

// Toggle opens the picker at (x, y), or closes it if already open.
func (p *Picker) Toggle(x, y int) {
	if p.open {
		p.open = false
		return
	}
	p.open = true
	p.hovered = false
	p.cx, p.cy = x, y
}

// Close hides the picker, keeping the current selection.
func (p *Picker) Close() { p.open = false }

// Hover updates the selection from the cursor position while open.
func (p *Picker) Hover(x, y int) {
	if !p.open {
		return
	}
	p.hovered = true
	if x < p.cx {
		p.selected = sand.BrushSand
		return
	}
	p.selected = sand.BrushWater
}

// Hovered reports whether the cursor has chosen a side since opening.
func (p *Picker) Hovered() bool { return p.hovered }

// Select sets the brush directly.
func (p *Picker) Select(b sand.Brush) { p.selected = b }

// Selected returns the active brush.
func (p *Picker) Selected() sand.Brush { return p.selected }
