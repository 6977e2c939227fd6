package lab

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/born-ml/ndlab/internal/report"
	"github.com/born-ml/ndlab/internal/sim"
)

// Simulation runs the Monte Carlo coin experiment and, when a plotter is
// configured, charts the estimate distribution and the running probability.
func (l *Lab) Simulation() {
	l.begin("simulate")

	cfg := sim.Config{Trials: l.cfg.Trials, Flips: l.cfg.Flips}
	l.sink.Printf("trials: %d", cfg.Trials)
	l.sink.Printf("flips per trial: %d", cfg.Flips)
	l.sink.Printf("seed: %d", l.cfg.Seed)

	var res *sim.Result
	if !l.step("simulate", func() error {
		var err error
		res, err = sim.Run(sim.Fair(l.cfg.Seed), cfg)
		if err != nil {
			return err
		}
		l.sink.Array("simulation", res.Outcomes)
		return nil
	}) {
		return
	}

	l.step("heads per trial", func() error {
		l.sink.Array("heads count", res.Heads)
		l.sink.Array("estimated probabilities", res.Estimates)
		l.sink.Printf("average estimated probability: %.6g", res.MeanEstimate)
		l.sink.Printf("standard deviation: %.6g", res.StdEstimate)
		return nil
	})

	var hist *sim.Histogram
	l.step("histogram", func() error {
		var err error
		hist, err = sim.NewHistogram(res.Estimates.Values(), l.cfg.Bins)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(hist.Counts))
		for i, n := range hist.Counts {
			rows = append(rows, []string{
				fmt.Sprintf("[%.3f, %.3f)", hist.Dividers[i], hist.Dividers[i+1]),
				strconv.FormatFloat(n, 'f', 0, 64),
			})
		}
		l.sink.Table([]string{"ESTIMATE", "FREQUENCY"}, rows)
		return l.chartHistogram(hist)
	})

	l.step("running probability", func() error {
		l.sink.Array("running probability", res.Running)
		return l.chartRunning(res)
	})
}

func (l *Lab) chartHistogram(h *sim.Histogram) error {
	if l.plotter == nil {
		return nil
	}
	path, err := l.plotter.Histogram(report.HistogramChart{
		Name:     "estimate_histogram",
		Title:    "Distribution of Estimated Head Probability",
		XLabel:   "Estimated Probability",
		YLabel:   "Frequency",
		Dividers: h.Dividers,
		Counts:   h.Counts,
	})
	if err != nil {
		return err
	}
	slog.Info("histogram written", "path", path)
	l.sink.Printf("histogram written to %s", path)
	return nil
}

func (l *Lab) chartRunning(res *sim.Result) error {
	if l.plotter == nil {
		return nil
	}
	path, err := l.plotter.Line(report.LineChart{
		Name:           "running_probability",
		Title:          "Convergence to True Probability (Law of Large Numbers)",
		XLabel:         "Number of Flips",
		YLabel:         "Running Probability",
		Y:              res.Running.Values(),
		Reference:      0.5,
		ReferenceLabel: "True Probability = 0.5",
	})
	if err != nil {
		return err
	}
	slog.Info("line chart written", "path", path)
	l.sink.Printf("running probability chart written to %s", path)
	return nil
}
