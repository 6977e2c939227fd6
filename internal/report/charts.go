package report

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	histogramFill = color.RGBA{R: 135, G: 206, B: 235, A: 178} // sky blue, 70% opaque
	lineColor     = color.RGBA{B: 255, A: 255}
	referenceRed  = color.RGBA{R: 255, A: 77}
)

// Charts writes PNG charts into Dir.
type Charts struct {
	Dir    string
	Width  vg.Length
	Height vg.Length
}

// NewCharts returns a chart writer for dir with a 10x6 inch canvas.
func NewCharts(dir string) *Charts {
	return &Charts{Dir: dir, Width: 10 * vg.Inch, Height: 6 * vg.Inch}
}

// Histogram implements Plotter.
func (c *Charts) Histogram(h HistogramChart) (string, error) {
	if len(h.Dividers) != len(h.Counts)+1 || len(h.Counts) == 0 {
		return "", fmt.Errorf("histogram %q: %d dividers for %d counts", h.Name, len(h.Dividers), len(h.Counts))
	}

	bins := make([]plotter.HistogramBin, len(h.Counts))
	for i, n := range h.Counts {
		bins[i] = plotter.HistogramBin{Min: h.Dividers[i], Max: h.Dividers[i+1], Weight: n}
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     h.Dividers[1] - h.Dividers[0],
		FillColor: histogramFill,
		LineStyle: plotter.DefaultLineStyle,
	}

	p := c.newPlot(h.Title, h.XLabel, h.YLabel)
	p.Add(hist)
	return c.save(p, h.Name)
}

// Line implements Plotter.
func (c *Charts) Line(l LineChart) (string, error) {
	if len(l.Y) == 0 {
		return "", errors.New("line chart: no points")
	}

	pts := make(plotter.XYs, len(l.Y))
	for i, y := range l.Y {
		pts[i].X = float64(i)
		pts[i].Y = y
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("line chart %q: %w", l.Name, err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1)

	p := c.newPlot(l.Title, l.XLabel, l.YLabel)
	p.Add(line)

	if l.ReferenceLabel != "" {
		ref := plotter.NewFunction(func(float64) float64 { return l.Reference })
		ref.Color = referenceRed
		ref.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(ref)
		p.Legend.Add(l.ReferenceLabel, ref)
		p.Legend.Top = true
	}
	return c.save(p, l.Name)
}

func (c *Charts) newPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)
	return p
}

func (c *Charts) save(p *plot.Plot, name string) (string, error) {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return "", fmt.Errorf("chart dir: %w", err)
	}
	path := filepath.Join(c.Dir, name+".png")
	if err := p.Save(c.Width, c.Height, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	slog.Debug("wrote chart", "path", path)
	return path, nil
}
