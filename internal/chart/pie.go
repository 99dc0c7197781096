package chart

import (
	"math"

	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/series"
)

// YearColors is the palette cycled through for pie slices.
var YearColors = []string{
	"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99",
	"#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a",
}

// Slice is one year of the pie. Angles are in degrees, clockwise from the
// positive x axis in view-box space.
type Slice struct {
	StartAngle float64 `json:"start_angle" yaml:"start_angle"`
	EndAngle   float64 `json:"end_angle" yaml:"end_angle"`
	Color      string  `json:"color" yaml:"color"`
	Label      string  `json:"label" yaml:"label"`
	Value      float64 `json:"value" yaml:"value"`
	Start      XY      `json:"start" yaml:"start"`
	End        XY      `json:"end" yaml:"end"`
	LargeArc   bool    `json:"large_arc" yaml:"large_arc"`
}

// PiePlot encodes yearly means as consecutive slices.
type PiePlot struct {
	ViewBox ViewBox         `json:"view_box" yaml:"view_box"`
	Center  XY              `json:"center" yaml:"center"`
	Radius  float64         `json:"radius" yaml:"radius"`
	Title   model.IndexKind `json:"title" yaml:"title"`
	Slices  []Slice         `json:"slices" yaml:"slices"`
}

// Shape implements Geometry.
func (PiePlot) Shape() Shape { return ShapePie }

// Pie draws one slice per year, oldest first, starting at 0°. Each slice sweeps
// (yearMean+1)*180 degrees. The sweeps are not normalized, so the total may
// fall short of or exceed 360°.
func Pie(kind model.IndexKind, samples []model.IndexSample) PiePlot {
	years := series.GroupByYear(samples)

	p := PiePlot{
		ViewBox: ViewBox{Width: PieSize, Height: PieSize},
		Center:  XY{X: PieCenterX, Y: PieCenterY},
		Radius:  PieRadius,
		Title:   kind,
		Slices:  make([]Slice, 0, len(years)),
	}

	start := 0.0
	for i, y := range years {
		avg := series.MeanOfMeans(y.Samples)
		end := start + (avg+1)*180
		p.Slices = append(p.Slices, Slice{
			StartAngle: start,
			EndAngle:   end,
			Color:      YearColors[i%len(YearColors)],
			Label:      y.Key,
			Value:      avg,
			Start:      arcPoint(start),
			End:        arcPoint(end),
			LargeArc:   end-start > 180,
		})
		start = end
	}
	return p
}

func arcPoint(deg float64) XY {
	rad := deg * math.Pi / 180
	return XY{
		X: PieCenterX + PieRadius*math.Cos(rad),
		Y: PieCenterY + PieRadius*math.Sin(rad),
	}
}
