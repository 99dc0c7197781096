// Package analysis compares index samples over time and interprets the change.
package analysis

import (
	"math"

	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/series"
	"github.com/sells-group/geoindex/internal/trend"
)

// Pair is a newest/previous sample pair, newest first.
type Pair struct {
	Newer model.IndexSample
	Older model.IndexSample
}

// LatestPair returns the two most recent samples. It reports false when fewer
// than two samples are available; no comparison should be shown then.
func LatestPair(samples []model.IndexSample) (Pair, bool) {
	if len(samples) < 2 {
		return Pair{}, false
	}
	desc := series.SortNewestFirst(samples)
	return Pair{Newer: desc[0], Older: desc[1]}, true
}

// Compare classifies the change from older to newer. It returns nil if either
// sample is missing. The index kind is taken from newer.
func Compare(newer, older *model.IndexSample) *model.Classification {
	if newer == nil || older == nil {
		return nil
	}
	c := ComparePair(Pair{Newer: *newer, Older: *older})
	return &c
}

// ComparePair classifies the change across p.
func ComparePair(p Pair) model.Classification {
	diff, pct := PercentChange(p.Newer.Mean, p.Older.Mean)
	c := trend.Classify(p.Newer.Kind, pct)
	c.MeanDifference = diff
	c.PercentChange = pct
	return c
}

// PercentChange returns newer-older and the signed change relative to |older|
// in percent. A zero older value yields 0%, as do non-finite results.
func PercentChange(newer, older float64) (diff, pct float64) {
	diff = newer - older
	if older == 0 {
		return diff, 0
	}
	pct = diff / math.Abs(older) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	return diff, pct
}
