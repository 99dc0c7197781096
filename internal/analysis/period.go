package analysis

import (
	"time"

	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/series"
	"github.com/sells-group/geoindex/internal/trend"
)

// InsufficientData is shown in place of a trend when fewer than two samples exist.
const InsufficientData = "Insufficient data to analyse the trend."

// Trend summarizes the change between the first and last sample of a period.
type Trend struct {
	From           time.Time            `json:"from" yaml:"from"`
	To             time.Time            `json:"to" yaml:"to"`
	Years          int                  `json:"years" yaml:"years"`
	Classification model.Classification `json:"classification" yaml:"classification"`
	Description    string               `json:"description" yaml:"description"`
}

// PeriodTrend compares the oldest and newest samples of the period. years is
// the requested time range, used only in the description. It reports false
// when fewer than two samples are available.
func PeriodTrend(kind model.IndexKind, samples []model.IndexSample, years int) (*Trend, bool) {
	if len(samples) < 2 {
		return nil, false
	}
	sorted := series.SortChronological(samples)
	first, last := sorted[0], sorted[len(sorted)-1]

	diff, pct := PercentChange(last.Mean, first.Mean)
	c := trend.Classify(kind, pct)
	c.MeanDifference = diff
	c.PercentChange = pct

	return &Trend{
		From:           first.AcquiredAt,
		To:             last.AcquiredAt,
		Years:          years,
		Classification: c,
		Description:    trend.Describe(kind, pct, years),
	}, true
}
