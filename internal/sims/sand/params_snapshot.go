package sand

import (
	"strconv"

	"pxworld/internal/core"
)

// Parameters reports the world's configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	cx, cy := w.grid.ChunkGrid()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				intParam("border", "Border thickness", cfg.Border),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name:    "Chunks",
			Summary: strconv.Itoa(cx) + "x" + strconv.Itoa(cy) + " tiles",
			Params: []core.Parameter{
				intParam("chunk_size", "Chunk size", cfg.ChunkSize),
				intParam("chunk_count", "Chunk count", cx*cy),
				boolParam("propagate_dirty", "Propagate dirty", cfg.PropagateDirty),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam("tps", "Ticks per second", cfg.TPS),
			},
		},
		{
			Name: "Scatter",
			Params: []core.Parameter{
				floatParam("scatter_sand", "Sand density", cfg.Scatter.Sand),
				floatParam("scatter_water", "Water density", cfg.Scatter.Water),
				intParam("scatter_top", "Band height", cfg.Scatter.Top),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
