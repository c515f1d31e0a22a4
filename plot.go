package cameto

import (
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotLevels renders the latency-versus-size curve of a probed level series
// to an image file (format chosen by extension, typically .png). The
// capacity boundary shows up as the knee of the curve, which makes the plot
// the quickest way to eyeball whether a run produced a usable signal.
func PlotLevels(infos []RawLevelInfo, path string) error {
	xys := make(plotter.XYs, 0, len(infos))
	sizes := make([]int, 0, len(infos))
	for _, info := range infos {
		xys = append(xys, plotter.XY{
			X: float64(info.SizeBytes),
			Y: float64(info.Elapsed.Nanoseconds()),
		})
		sizes = append(sizes, info.SizeBytes)
	}

	p := plot.New()
	p.Title.Text = "Traversal time by buffer size"
	p.X.Label.Text = "Buffer size"
	p.Y.Label.Text = "Elapsed"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = sizeTicks{sizes: sizes}
	p.Y.Tick.LineStyle = draw.LineStyle{}
	p.Y.Tick.Marker = durationTicks{}

	p.Add(&plotter.Line{
		XYs:       xys,
		LineStyle: plotter.DefaultLineStyle,
	})

	if err := p.Save(30*vg.Centimeter, 20*vg.Centimeter, path); err != nil {
		return NewIOError("PlotLevels", "save "+path, err)
	}
	return nil
}

type sizeTicks struct {
	sizes []int
}

func (t sizeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t.sizes))
	for _, size := range t.sizes {
		ticks = append(ticks, plot.Tick{
			Value: float64(size),
			Label: FormatBytes(int64(size)),
		})
	}
	return ticks
}

type durationTicks struct{}

func (durationTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		tick := &ticks[i]
		if tick.Label == "" {
			continue
		}
		value, _ := strconv.ParseFloat(tick.Label, 64)
		tick.Label = time.Duration(value).String()
	}
	return ticks
}
