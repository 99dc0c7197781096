// Package chart computes view-box geometry for index line, bar, and pie charts.
// Renderers draw the returned shapes as-is; no further scaling is needed.
package chart

// Canvas dimensions and plot margins. Renderers rely on these values.
const (
	WideWidth  = 1000.0
	WideHeight = 300.0

	PieSize    = 300.0
	PieCenterX = 150.0
	PieCenterY = 150.0
	PieRadius  = 120.0

	plotLeft   = 50.0
	plotBottom = 250.0
	plotTop    = 50.0
	labelRow   = 270.0
	yLabelX    = 45.0

	lineSpan  = 900.0
	barSpan   = 400.0
	barGap    = 4.0
	barMaxH   = 180.0
	valueSpan = plotBottom - plotTop
)

// Shape names a chart variant.
type Shape string

const (
	ShapeLine Shape = "line"
	ShapeBar  Shape = "bar"
	ShapePie  Shape = "pie"
)

// Geometry is implemented by LinePlot, BarPlot, and PiePlot.
type Geometry interface {
	Shape() Shape
}

// ViewBox is the logical canvas a plot is drawn on.
type ViewBox struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// XY is a view-box coordinate.
type XY struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Anchor is the horizontal text alignment of a label.
type Anchor string

const (
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// AxisLabel is a text label placed on the canvas.
type AxisLabel struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Text   string  `json:"text" yaml:"text"`
	Anchor Anchor  `json:"anchor" yaml:"anchor"`
}

// valueY maps an index value in [-1, 1] onto rows 250 (bottom) to 50 (top).
// Values outside the domain are not clamped.
func valueY(v float64) float64 {
	return plotBottom - ((v+1)/2)*valueSpan
}

// valueAxis returns the fixed -1.0 .. 1.0 y-axis labels.
func valueAxis() []AxisLabel {
	ticks := []struct {
		v    float64
		text string
	}{
		{-1, "-1.0"}, {-0.5, "-0.5"}, {0, "0.0"}, {0.5, "0.5"}, {1, "1.0"},
	}
	labels := make([]AxisLabel, 0, len(ticks))
	for _, t := range ticks {
		labels = append(labels, AxisLabel{X: yLabelX, Y: valueY(t.v), Text: t.text, Anchor: AnchorEnd})
	}
	return labels
}
