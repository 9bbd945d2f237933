package sand

import (
	"fmt"
	"sort"
)

// Brush is a named cell preset used by editors to paint the world.
type Brush struct {
	Name     string
	Material Material
	Behavior Behavior
	Color    Color16
}

// Cell encodes the brush's cell.
func (b Brush) Cell() Cell { return Encode(b.Material, b.Behavior, b.Color) }

var (
	BrushSand     = Brush{"sand", MaterialSand, BehaviorFalling | BehaviorBlocking, ColorSand}
	BrushWater    = Brush{"water", MaterialWater, BehaviorFluid | BehaviorBlocking | BehaviorFalling, ColorWater}
	BrushWood     = Brush{"wood", MaterialWood, BehaviorBlocking | BehaviorObject, ColorWood}
	BrushConcrete = Brush{"concrete", MaterialConcrete, BehaviorBlocking, ColorConcrete}
	BrushErase    = Brush{"erase", MaterialBackground, BehaviorStatic, ColorSky}
)

var brushes = map[string]Brush{
	BrushSand.Name:     BrushSand,
	BrushWater.Name:    BrushWater,
	BrushWood.Name:     BrushWood,
	BrushConcrete.Name: BrushConcrete,
	BrushErase.Name:    BrushErase,
}

// BrushByName looks up a preset.
func BrushByName(name string) (Brush, error) {
	b, ok := brushes[name]
	if !ok {
		return Brush{}, fmt.Errorf("%w: %q", ErrUnknownBrush, name)
	}
	return b, nil
}

// BrushNames lists the preset names in sorted order.
func BrushNames() []string {
	names := make([]string, 0, len(brushes))
	for name := range brushes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paint stamps a size×size square of b with its top-left corner at (x, y).
// Cells outside the grid or inside the border frame are skipped. It returns
// the number of cells written.
func (w *World) Paint(b Brush, x, y, size int) int {
	n := 0
	cell := b.Cell()
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			px, py := x+i, y+j
			if !w.grid.InInterior(px, py) {
				continue
			}
			if err := w.grid.SetCell(px, py, cell); err != nil {
				continue
			}
			n++
		}
	}
	if n > 0 {
		w.revision++
	}
	return n
}
