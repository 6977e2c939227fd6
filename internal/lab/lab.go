// Package lab sequences the ndlab demonstrations. Each demonstration is a
// series of named steps; a step that fails is reported through the sink and
// the demonstration moves on to its next step.
package lab

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/born-ml/ndlab/internal/logutil"
	"github.com/born-ml/ndlab/internal/report"
)

// Config sizes the coin-flip simulation.
type Config struct {
	Seed   uint64
	Trials int
	Flips  int
	Bins   int
}

// Lab runs demonstrations against a sink and an optional plotter.
type Lab struct {
	sink    report.Sink
	plotter report.Plotter
	cfg     Config

	demo   string
	failed int
}

// New returns a Lab. A nil plotter disables charts.
func New(sink report.Sink, plotter report.Plotter, cfg Config) *Lab {
	return &Lab{sink: sink, plotter: plotter, cfg: cfg}
}

// Demo is a named demonstration.
type Demo struct {
	Name  string
	Title string
	run   func(*Lab)
}

// Demos lists every demonstration in presentation order.
func Demos() []Demo {
	return []Demo{
		{Name: "shapes", Title: "Shape Experiments", run: (*Lab).Shapes},
		{Name: "axes", Title: "Axis Tests", run: (*Lab).Axes},
		{Name: "broadcast", Title: "Broadcasting Cases", run: (*Lab).Broadcasting},
		{Name: "simulate", Title: "Statistical Simulation", run: (*Lab).Simulation},
	}
}

// Run executes the named demonstrations in order, or all of them when
// names is empty. Unknown names fail before anything runs.
func (l *Lab) Run(names ...string) error {
	all := Demos()
	if len(names) == 0 {
		for _, d := range all {
			names = append(names, d.Name)
		}
	}

	byName := make(map[string]Demo, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}
	plan := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return fmt.Errorf("unknown demonstration %q", name)
		}
		plan = append(plan, d)
	}

	for _, d := range plan {
		l.sink.Section(strings.ToUpper(d.Title))
		d.run(l)
	}
	return nil
}

// Failed returns how many steps have failed so far.
func (l *Lab) Failed() int {
	return l.failed
}

// step runs fn as one demonstration step, reporting its error.
func (l *Lab) step(name string, fn func() error) bool {
	logutil.Trace("step", "demo", l.demo, "step", name)
	start := time.Now()
	err := fn()
	logutil.Trace("step done", "demo", l.demo, "step", name, "ok", err == nil, "elapsed", time.Since(start))
	if err != nil {
		l.failed++
		l.sink.Fail(name, err)
		return false
	}
	return true
}

func (l *Lab) begin(demo string) {
	l.demo = demo
	slog.Debug("demonstration", "name", demo)
}
