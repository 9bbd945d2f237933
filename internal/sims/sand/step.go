package sand

// StepStats summarises one tick.
type StepStats struct {
	// Moved counts successful pixel moves.
	Moved int
	// Dirty counts chunks left dirty after the tick.
	Dirty int
}

// Engine advances a grid by one tick at a time.
//
// Chunks are visited in row-major order. Inside a chunk rows are scanned
// bottom to top and columns left to right, updating the buffer in place, so a
// pixel that fell into an already scanned row is not processed twice.
type Engine struct {
	// PropagateDirty marks the destination chunk as well as the source when
	// a pixel crosses a chunk edge. All flags are then cleared once before
	// the scan instead of per chunk, so a later chunk cannot wipe a mark
	// made while scanning an earlier one.
	PropagateDirty bool
}

// NewEngine returns an Engine with the given dirty propagation mode.
func NewEngine(propagateDirty bool) *Engine {
	return &Engine{PropagateDirty: propagateDirty}
}

// Step runs exactly one tick over every chunk of g.
func (e *Engine) Step(g *Grid) StepStats {
	var stats StepStats
	if e.PropagateDirty {
		for _, c := range g.chunks {
			c.dirty = false
		}
	}
	for _, c := range g.chunks {
		if !e.PropagateDirty {
			c.dirty = false
		}
		for y := c.y + c.h - 1; y >= c.y; y-- {
			for x := c.x; x < c.x+c.w; x++ {
				b := g.cells.At(x, y).Behavior()
				if b.Has(BehaviorFalling) {
					if tx, ty, ok := fall(c, x, y); ok {
						e.moved(c, tx, ty, &stats)
						continue
					}
				}
				if b.Has(BehaviorFluid) {
					if tx, ok := spread(c, x, y); ok {
						e.moved(c, tx, y, &stats)
					}
				}
			}
		}
	}
	for _, c := range g.chunks {
		if c.dirty {
			stats.Dirty++
		}
	}
	return stats
}

func (e *Engine) moved(c *Chunk, tx, ty int, stats *StepStats) {
	stats.Moved++
	c.dirty = true
	if e.PropagateDirty && !c.Contains(tx, ty) {
		c.grid.chunkFor(tx, ty).dirty = true
	}
}

// fall applies gravity: straight down, then down-right, then down-left.
func fall(c *Chunk, x, y int) (int, int, bool) {
	g := c.grid
	switch {
	case !g.blocking(x, y+1):
		return x, y + 1, c.MoveDown(x, y)
	case !g.blocking(x+1, y+1):
		return x + 1, y + 1, c.MoveDownRight(x, y)
	case !g.blocking(x-1, y+1):
		return x - 1, y + 1, c.MoveDownLeft(x, y)
	}
	return x, y, false
}

// spread moves a landed fluid sideways: right first, then left.
func spread(c *Chunk, x, y int) (int, bool) {
	g := c.grid
	if !g.blocking(x, y+1) {
		return x, false
	}
	switch {
	case !g.blocking(x+1, y):
		return x + 1, c.MoveRight(x, y)
	case !g.blocking(x-1, y):
		return x - 1, c.MoveLeft(x, y)
	}
	return x, false
}
