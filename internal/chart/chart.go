// Package chart draws the per-column value-count bar charts embedded in the
// report.
package chart

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMaxLabelLength is the longest category label drawn untruncated.
const DefaultMaxLabelLength = 48

// Ellipsis is appended to truncated labels.
const Ellipsis = "..."

// Bar is one row of a frequency table.
type Bar struct {
	Label string
	Count int64
}

// FrequencyTable holds (value, count) rows in query order, most frequent first.
type FrequencyTable []Bar

// Chart is a horizontal bar chart ready to draw. Labels and Values keep the
// frequency table order; the first entry is drawn at the top.
type Chart struct {
	Title  string
	Labels []string
	Values []float64
}

// Title returns the chart title for a column's top-N counts.
func Title(column string, top int) string {
	return fmt.Sprintf("%s - Counts (Top %d)", column, top)
}

// TruncateLabel cuts label to limit characters and appends Ellipsis. Labels
// of at most limit characters are returned unchanged.
func TruncateLabel(label string, limit int) string {
	if utf8.RuneCountInString(label) <= limit {
		return label
	}
	runes := []rune(label)
	return string(runes[:limit]) + Ellipsis
}

// Build lays out a frequency table as a chart.
func Build(ft FrequencyTable, column string, top, maxLabel int) Chart {
	c := Chart{
		Title:  Title(column, top),
		Labels: make([]string, len(ft)),
		Values: make([]float64, len(ft)),
	}
	for i, bar := range ft {
		c.Labels[i] = TruncateLabel(bar.Label, maxLabel)
		c.Values[i] = float64(bar.Count)
	}
	return c
}

// AxisOrder returns labels and values from the bottom of the category axis
// to the top, which is the reverse of the table order.
func (c Chart) AxisOrder() ([]string, []float64) {
	n := len(c.Labels)
	labels := make([]string, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		labels[n-1-i] = c.Labels[i]
		values[n-1-i] = c.Values[i]
	}
	return labels, values
}
