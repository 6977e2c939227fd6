// Package report renders demonstration output: text and tables on a
// console, and PNG charts on disk.
package report

import (
	"fmt"

	"github.com/born-ml/ndlab/internal/tensor"
)

// Printable is the view of an array a Sink needs. Every tensor.Array
// satisfies it regardless of element type.
type Printable interface {
	fmt.Stringer
	Shape() tensor.Shape
	Rank() int
}

// Sink receives the results of demonstration steps.
type Sink interface {
	// Section starts a titled group of steps.
	Section(title string)
	// Printf writes a line of free text.
	Printf(format string, args ...any)
	// Array prints an array with its shape and rank.
	Array(label string, a Printable)
	// Table prints rows under a header.
	Table(header []string, rows [][]string)
	// Fail reports that a step ended with err. The caller moves on to
	// the next step.
	Fail(step string, err error)
}

// Plotter writes charts and returns the path of each file written.
type Plotter interface {
	Histogram(c HistogramChart) (string, error)
	Line(c LineChart) (string, error)
}

// HistogramChart describes a pre-binned histogram. Bin i spans
// [Dividers[i], Dividers[i+1]) with height Counts[i].
type HistogramChart struct {
	Name     string // file name without extension
	Title    string
	XLabel   string
	YLabel   string
	Dividers []float64
	Counts   []float64
}

// LineChart plots Y against its index, optionally with a horizontal
// dashed reference line.
type LineChart struct {
	Name           string
	Title          string
	XLabel         string
	YLabel         string
	Y              []float64
	Reference      float64
	ReferenceLabel string // empty disables the reference line
}
