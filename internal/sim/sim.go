// Package sim runs the coin-flip Monte Carlo experiment: a (trials, flips)
// array of outcomes, heads per trial, per-trial probability estimates and
// the running probability over every flip in order.
package sim

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/ndlab/internal/backend/cpu"
	"github.com/born-ml/ndlab/internal/tensor"
)

// ErrInvalidConfig is returned for non-positive trial or flip counts.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Flipper produces coin outcomes: 1 for heads, 0 for tails.
type Flipper interface {
	Flip() uint8
}

// Coin is a seeded Bernoulli coin.
type Coin struct {
	dist distuv.Bernoulli
}

// NewCoin returns a coin that lands heads with probability p. Two coins
// with the same p and seed produce the same sequence.
func NewCoin(p float64, seed uint64) *Coin {
	return &Coin{dist: distuv.Bernoulli{P: p, Src: rand.NewSource(seed)}}
}

// Fair returns a seeded coin with p = 0.5.
func Fair(seed uint64) *Coin {
	return NewCoin(0.5, seed)
}

// Flip implements Flipper.
func (c *Coin) Flip() uint8 {
	return uint8(c.dist.Rand())
}

// Config sizes an experiment.
type Config struct {
	Trials int
	Flips  int
}

func (c Config) validate() error {
	if c.Trials <= 0 || c.Flips <= 0 {
		return fmt.Errorf("%w: trials=%d flips=%d", ErrInvalidConfig, c.Trials, c.Flips)
	}
	return nil
}

// Result holds every array derived from one experiment.
type Result struct {
	Config Config

	// Outcomes has shape (trials, flips).
	Outcomes *tensor.Array[uint8]
	// Heads has shape (trials,): the sum of Outcomes along axis 1.
	Heads *tensor.Array[float64]
	// Estimates has shape (trials,): Heads / flips.
	Estimates *tensor.Array[float64]
	// Running has shape (trials*flips,): cumulative heads over the
	// flattened outcomes divided by the number of flips so far.
	Running *tensor.Array[float64]

	MeanEstimate float64
	StdEstimate  float64
}

// Run flips coin cfg.Trials*cfg.Flips times and derives the statistics.
func Run(coin Flipper, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	data := make([]uint8, cfg.Trials*cfg.Flips)
	for i := range data {
		data[i] = coin.Flip()
	}
	outcomes, err := tensor.FromSlice(data, tensor.Shape{cfg.Trials, cfg.Flips})
	if err != nil {
		return nil, fmt.Errorf("outcomes: %w", err)
	}
	slog.Debug("simulated coin flips", "shape", outcomes.Shape())

	heads, err := cpu.SumDim(outcomes, 1, false)
	if err != nil {
		return nil, fmt.Errorf("heads per trial: %w", err)
	}
	estimates := cpu.DivScalar(heads, float64(cfg.Flips))

	values := estimates.Values()
	mean, std := stat.MeanStdDev(values, nil)
	if cfg.Trials == 1 {
		std = 0
	}

	running, err := RunningProbability(outcomes)
	if err != nil {
		return nil, err
	}

	return &Result{
		Config:       cfg,
		Outcomes:     outcomes,
		Heads:        heads,
		Estimates:    estimates,
		Running:      running,
		MeanEstimate: mean,
		StdEstimate:  std,
	}, nil
}

// RunningProbability returns cumsum(flatten(outcomes)) / [1, 2, ..., n].
func RunningProbability(outcomes *tensor.Array[uint8]) (*tensor.Array[float64], error) {
	cumulative := cpu.CumSum(cpu.Convert[int64](outcomes.Flatten()))
	total := cpu.AddScalar(tensor.Arange[int64](cumulative.NumElements()), 1)

	running, err := cpu.Div(cumulative, total)
	if err != nil {
		return nil, fmt.Errorf("running probability: %w", err)
	}
	return running, nil
}
