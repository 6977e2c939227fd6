package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Console writes steps to w as plain text and borderless tables.
type Console struct {
	w io.Writer
}

// NewConsole returns a console sink writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Section implements Sink.
func (c *Console) Section(title string) {
	bar := strings.Repeat("=", len(title)+4)
	fmt.Fprintf(c.w, "\n%s\n  %s\n%s\n", bar, title, bar)
}

// Printf implements Sink.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

// Array implements Sink.
func (c *Console) Array(label string, a Printable) {
	fmt.Fprintf(c.w, "%s:\n%s\nshape: %v  ndim: %d\n", label, a, a.Shape(), a.Rank())
}

// Table implements Sink.
func (c *Console) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(c.w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()
}

// Fail implements Sink.
func (c *Console) Fail(step string, err error) {
	slog.Warn("step failed", "step", step, "error", err)
	fmt.Fprintf(c.w, "%s: error: %v\n", step, err)
}
