package chart

import (
	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/series"
	"github.com/sells-group/geoindex/internal/trend"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// BarItem is one month of the active year.
type BarItem struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Label  string  `json:"label" yaml:"label"`
	Key    string  `json:"key" yaml:"key"`
	Value  float64 `json:"value" yaml:"value"`
}

// BarPlot shows monthly means for one year.
type BarPlot struct {
	ViewBox        ViewBox     `json:"view_box" yaml:"view_box"`
	Color          string      `json:"color" yaml:"color"`
	ActiveGroupKey string      `json:"active_group_key" yaml:"active_group_key"`
	Bars           []BarItem   `json:"bars" yaml:"bars"`
	AxisLabels     []AxisLabel `json:"axis_labels" yaml:"axis_labels"`
}

// Shape implements Geometry.
func (BarPlot) Shape() Shape { return ShapeBar }

// Bar plots the monthly means of one year group, as returned by
// series.Grouped.YearGroup. Only months with samples get a bar, in calendar
// order. Heights are ((m+1)/(max+1))*180 where max is the largest monthly mean
// of the year; bars are 400/n-4 wide with 4-unit gaps.
func Bar(kind model.IndexKind, year series.Group) BarPlot {
	months := series.GroupByYearMonth(year.Samples)

	p := BarPlot{
		ViewBox:        ViewBox{Width: WideWidth, Height: WideHeight},
		Color:          trend.ColorFor(kind),
		ActiveGroupKey: year.Key,
		Bars:           make([]BarItem, 0, len(months)),
		AxisLabels:     valueAxis(),
	}
	if len(months) == 0 {
		return p
	}

	avgs := make([]float64, len(months))
	maxAvg := 0.0
	for i, m := range months {
		avgs[i] = series.MeanOfMeans(m.Samples)
		if i == 0 || avgs[i] > maxAvg {
			maxAvg = avgs[i]
		}
	}

	n := float64(len(months))
	slot := barSpan / n
	width := slot - barGap
	for i, m := range months {
		height := 0.0
		if maxAvg+1 != 0 {
			height = ((avgs[i] + 1) / (maxAvg + 1)) * barMaxH
		}
		x := plotLeft + float64(i)*slot
		label := monthLabels[m.Month-1]
		p.Bars = append(p.Bars, BarItem{
			X:      x,
			Y:      plotBottom - height,
			Width:  width,
			Height: height,
			Label:  label,
			Key:    m.Key,
			Value:  avgs[i],
		})
		p.AxisLabels = append(p.AxisLabels, AxisLabel{X: x + width/2, Y: labelRow, Text: label, Anchor: AnchorMiddle})
	}
	p.AxisLabels = append(p.AxisLabels, AxisLabel{X: plotLeft + barSpan/2, Y: WideHeight - 5, Text: year.Key, Anchor: AnchorMiddle})
	return p
}
