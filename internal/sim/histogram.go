package sim

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var errEmptySample = errors.New("histogram of empty sample")

// Histogram is a fixed-width binning of a sample. Bin i covers
// [Dividers[i], Dividers[i+1]); the last bin also holds the sample maximum.
type Histogram struct {
	Dividers []float64
	Counts   []float64
}

// NewHistogram bins x into bins equal-width bins spanning its range.
// A constant sample is centred in a range of width 1.
func NewHistogram(x []float64, bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram: bins must be positive, got %d", bins)
	}
	if len(x) == 0 {
		return nil, errEmptySample
	}

	sorted := slices.Clone(x)
	slices.Sort(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram excludes the upper divider; nudge it so the maximum
	// lands in the last bin.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return &Histogram{Dividers: dividers, Counts: counts}, nil
}

// Total returns the number of binned samples.
func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

// Width returns the width of one bin.
func (h *Histogram) Width() float64 {
	return h.Dividers[1] - h.Dividers[0]
}
