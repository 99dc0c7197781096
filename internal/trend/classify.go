// Package trend classifies percent changes of an index into qualitative
// categories and index-aware narratives.
package trend

import (
	"fmt"
	"math"

	"github.com/sells-group/geoindex/internal/model"
)

// Percent-change thresholds. Boundaries: < -10 large decrease, [-10, -5) small
// decrease, [-5, 5] no change, (5, 10] small increase, > 10 large increase.
const (
	largeThreshold = 10.0
	smallThreshold = 5.0
)

var severities = map[model.Category]model.Severity{
	model.CategoryLargeDecrease: model.SeverityDanger,
	model.CategorySmallDecrease: model.SeverityWarning,
	model.CategoryNoChange:      model.SeveritySecondary,
	model.CategorySmallIncrease: model.SeverityInfo,
	model.CategoryLargeIncrease: model.SeveritySuccess,
}

// CategoryFor buckets a signed percent change. NaN and infinities are NO_CHANGE.
func CategoryFor(pct float64) model.Category {
	switch {
	case math.IsNaN(pct) || math.IsInf(pct, 0):
		return model.CategoryNoChange
	case pct < -largeThreshold:
		return model.CategoryLargeDecrease
	case pct < -smallThreshold:
		return model.CategorySmallDecrease
	case pct <= smallThreshold:
		return model.CategoryNoChange
	case pct <= largeThreshold:
		return model.CategorySmallIncrease
	default:
		return model.CategoryLargeIncrease
	}
}

// SeverityFor returns the presentation tag for a category.
func SeverityFor(c model.Category) model.Severity {
	if s, ok := severities[c]; ok {
		return s
	}
	return model.SeveritySecondary
}

// Classify interprets pct for kind. MeanDifference and PercentChange are left
// for the caller to fill. Unknown kinds get a neutral classification.
func Classify(kind model.IndexKind, pct float64) model.Classification {
	if !kind.Known() {
		return model.Classification{
			Category:  model.CategoryNoChange,
			Severity:  model.SeveritySecondary,
			Headline:  unavailableHeadline,
			Narrative: unavailableNarrative,
		}
	}

	cat := CategoryFor(pct)
	t := templates[templateKey{kind, cat}]
	return model.Classification{
		Category:  cat,
		Severity:  SeverityFor(cat),
		Headline:  t.headline,
		Narrative: t.narrative,
	}
}

// Describe returns the period narrative for kind followed by the change summary,
// e.g. "... Change: -12.34% over 3 year(s)."
func Describe(kind model.IndexKind, pct float64, years int) string {
	c := Classify(kind, pct)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	return fmt.Sprintf("%s Change: %.2f%% over %d year(s).", c.Narrative, pct, years)
}
