package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DataURIPrefix starts every encoded chart.
const DataURIPrefix = "data:image/png;base64,"

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Renderer draws charts as PNG images.
type Renderer struct {
	Width          vg.Length
	Height         vg.Length
	MaxLabelLength int
}

// NewRenderer returns a Renderer for a width x height inch canvas.
func NewRenderer(widthInch, heightInch float64, maxLabelLength int) *Renderer {
	return &Renderer{
		Width:          vg.Length(widthInch) * vg.Inch,
		Height:         vg.Length(heightInch) * vg.Inch,
		MaxLabelLength: maxLabelLength,
	}
}

// DefaultRenderer draws 6.4x4.8 inch charts with 48 character labels.
func DefaultRenderer() *Renderer {
	return NewRenderer(6.4, 4.8, DefaultMaxLabelLength)
}

// Render draws the counts chart of a column and returns it as a data URI.
func (r *Renderer) Render(ft FrequencyTable, column string, top int) (string, error) {
	maxLabel := r.MaxLabelLength
	if maxLabel <= 0 {
		maxLabel = DefaultMaxLabelLength
	}

	img, err := r.PNG(Build(ft, column, top, maxLabel))
	if err != nil {
		return "", fmt.Errorf("failed to render chart for %q: %w", column, err)
	}
	return DataURI(img), nil
}

// PNG draws c as a horizontal bar chart.
func (r *Renderer) PNG(c Chart) ([]byte, error) {
	p := plot.New()
	p.Title.Text = c.Title

	labels, values := c.AxisOrder()
	if len(values) > 0 {
		bars, err := plotter.NewBarChart(plotter.Values(values), r.barWidth(len(values)))
		if err != nil {
			return nil, err
		}
		bars.Horizontal = true
		bars.Color = barColor
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.NominalY(labels...)
	}

	wt, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) barWidth(n int) vg.Length {
	w := r.Height / vg.Length(2*n+2)
	if w < 1 {
		w = 1
	}
	return w
}

// DataURI base64-encodes a PNG image into an inline data URI.
func DataURI(png []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(png)
}
