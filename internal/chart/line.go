package chart

import (
	"math"

	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/series"
	"github.com/sells-group/geoindex/internal/trend"
)

// LinePoint is one plotted sample.
type LinePoint struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Value float64 `json:"value" yaml:"value"`
	Date  string  `json:"date" yaml:"date"`
}

// LinePlot is a polyline of sample means over time.
type LinePlot struct {
	ViewBox    ViewBox     `json:"view_box" yaml:"view_box"`
	Color      string      `json:"color" yaml:"color"`
	Points     []LinePoint `json:"points" yaml:"points"`
	AxisLabels []AxisLabel `json:"axis_labels" yaml:"axis_labels"`
}

// Shape implements Geometry.
func (LinePlot) Shape() Shape { return ShapeLine }

// Line plots sample means in chronological order. With n points, point i sits at
// x = 50 + 900/max(n-1, 1) * i, so a single sample lands on the left margin.
// The first point of each year gets a year label under the x axis.
func Line(kind model.IndexKind, samples []model.IndexSample) LinePlot {
	sorted := series.SortChronological(samples)
	step := lineSpan / math.Max(float64(len(sorted)-1), 1)

	p := LinePlot{
		ViewBox:    ViewBox{Width: WideWidth, Height: WideHeight},
		Color:      trend.ColorFor(kind),
		Points:     make([]LinePoint, 0, len(sorted)),
		AxisLabels: valueAxis(),
	}

	lastYear, first := 0, true
	for i, s := range sorted {
		x := plotLeft + step*float64(i)
		p.Points = append(p.Points, LinePoint{
			X:     x,
			Y:     valueY(s.Mean),
			Value: s.Mean,
			Date:  s.AcquiredAt.Format("2006-01-02"),
		})
		if y := s.AcquiredAt.Year(); first || y != lastYear {
			p.AxisLabels = append(p.AxisLabels, AxisLabel{X: x, Y: labelRow, Text: series.YearKey(y), Anchor: AnchorMiddle})
			lastYear, first = y, false
		}
	}
	return p
}
