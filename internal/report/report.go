// Package report assembles the full interpretation of one region and index kind.
package report

import (
	"time"

	"github.com/twpayne/go-geom"

	"github.com/sells-group/geoindex/internal/analysis"
	"github.com/sells-group/geoindex/internal/chart"
	"github.com/sells-group/geoindex/internal/geo"
	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/series"
	"github.com/sells-group/geoindex/internal/trend"
)

// Input is everything a report is computed from. The zero ActiveYear selects
// the earliest year present.
type Input struct {
	Region     string
	Geometry   geom.T
	Fallback   model.LatLng
	Kind       model.IndexKind
	Samples    []model.IndexSample
	Years      int
	ActiveYear int
}

// Comparison is the newest-versus-previous sample comparison.
type Comparison struct {
	NewerDate      time.Time            `json:"newer_date" yaml:"newer_date"`
	OlderDate      time.Time            `json:"older_date" yaml:"older_date"`
	Classification model.Classification `json:"classification" yaml:"classification"`
}

// Report is the computed view of one region and index kind.
type Report struct {
	RunID      string              `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Region     string              `json:"region" yaml:"region"`
	Index      trend.IndexInfo     `json:"index" yaml:"index"`
	Center     model.LatLng        `json:"center" yaml:"center"`
	Comparison *Comparison         `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Trend      *analysis.Trend     `json:"trend,omitempty" yaml:"trend,omitempty"`
	TrendNote  string              `json:"trend_note,omitempty" yaml:"trend_note,omitempty"`
	Years      []int               `json:"years" yaml:"years"`
	Line       chart.LinePlot      `json:"line" yaml:"line"`
	Bar        *chart.BarPlot      `json:"bar,omitempty" yaml:"bar,omitempty"`
	Pie        chart.PiePlot       `json:"pie" yaml:"pie"`
	History    []model.IndexSample `json:"history" yaml:"history"`
}

// Build computes a report. It is a pure function of in. An ActiveYear that has
// no samples leaves the bar chart out.
func Build(in Input) Report {
	fallback := in.Fallback
	if fallback == (model.LatLng{}) {
		fallback = geo.DefaultCenter
	}

	byYear := series.GroupByYear(in.Samples)
	r := Report{
		Region:  in.Region,
		Index:   trend.Lookup(in.Kind),
		Center:  geo.CentroidOr(in.Geometry, fallback),
		Years:   byYear.Years(),
		Line:    chart.Line(in.Kind, in.Samples),
		Pie:     chart.Pie(in.Kind, in.Samples),
		History: series.SortNewestFirst(in.Samples),
	}

	if p, ok := analysis.LatestPair(in.Samples); ok {
		r.Comparison = &Comparison{
			NewerDate:      p.Newer.AcquiredAt,
			OlderDate:      p.Older.AcquiredAt,
			Classification: analysis.ComparePair(p),
		}
	}

	if t, ok := analysis.PeriodTrend(in.Kind, in.Samples, in.Years); ok {
		r.Trend = t
	} else {
		r.TrendNote = analysis.InsufficientData
	}

	year := in.ActiveYear
	if year == 0 && len(r.Years) > 0 {
		year = r.Years[0]
	}
	if grp, err := byYear.YearGroup(year); err == nil {
		bar := chart.Bar(in.Kind, grp)
		r.Bar = &bar
	}

	return r
}
