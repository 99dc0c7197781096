package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoindex/internal/model"
)

func at(year int, month time.Month, day int, mean float64) model.IndexSample {
	return model.IndexSample{
		Kind:       model.KindVegetation,
		AcquiredAt: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Mean:       mean,
	}
}

func TestCompare_NilArguments(t *testing.T) {
	s := at(2021, 1, 1, 0.5)
	assert.Nil(t, Compare(&s, nil))
	assert.Nil(t, Compare(nil, &s))
	assert.Nil(t, Compare(nil, nil))
}

func TestCompare_ZeroOlderMean(t *testing.T) {
	newer := at(2022, 1, 1, 0.4)
	older := at(2021, 1, 1, 0)

	got := Compare(&newer, &older)
	require.NotNil(t, got)
	assert.InDelta(t, 0.4, got.MeanDifference, 1e-12)
	assert.Equal(t, 0.0, got.PercentChange)
	assert.Equal(t, model.CategoryNoChange, got.Category)
	assert.Equal(t, model.SeveritySecondary, got.Severity)
}

func TestCompare_Values(t *testing.T) {
	tests := []struct {
		name     string
		newer    float64
		older    float64
		wantPct  float64
		wantCat  model.Category
		wantSeve model.Severity
	}{
		{"large loss", 0.4, 0.5, -20, model.CategoryLargeDecrease, model.SeverityDanger},
		{"small loss", 0.46, 0.5, -8, model.CategorySmallDecrease, model.SeverityWarning},
		{"stable", 0.51, 0.5, 2, model.CategoryNoChange, model.SeveritySecondary},
		{"small gain", 0.54, 0.5, 8, model.CategorySmallIncrease, model.SeverityInfo},
		{"large gain", 0.6, 0.5, 20, model.CategoryLargeIncrease, model.SeveritySuccess},
		// Relative to |older|, so a rise from a negative value is positive.
		{"negative baseline", -0.1, -0.2, 50, model.CategoryLargeIncrease, model.SeveritySuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newer := at(2022, 1, 1, tt.newer)
			older := at(2021, 1, 1, tt.older)

			got := Compare(&newer, &older)
			require.NotNil(t, got)
			assert.InDelta(t, tt.newer-tt.older, got.MeanDifference, 1e-12)
			assert.InDelta(t, tt.wantPct, got.PercentChange, 1e-9)
			assert.Equal(t, tt.wantCat, got.Category)
			assert.Equal(t, tt.wantSeve, got.Severity)
		})
	}
}

func TestCompare_KindFromNewer(t *testing.T) {
	newer := at(2022, 1, 1, 0.6)
	newer.Kind = model.KindBuiltUp
	older := at(2021, 1, 1, 0.5)

	got := Compare(&newer, &older)
	require.NotNil(t, got)
	assert.Contains(t, got.Narrative, "built-up")
}

func TestLatestPair(t *testing.T) {
	_, ok := LatestPair(nil)
	assert.False(t, ok)

	_, ok = LatestPair([]model.IndexSample{at(2021, 1, 1, 0.1)})
	assert.False(t, ok)

	in := []model.IndexSample{
		at(2020, 5, 1, 0.1),
		at(2022, 5, 1, 0.3),
		at(2021, 5, 1, 0.2),
	}
	p, ok := LatestPair(in)
	require.True(t, ok)
	assert.Equal(t, 0.3, p.Newer.Mean)
	assert.Equal(t, 0.2, p.Older.Mean)
	assert.Equal(t, 0.1, in[0].Mean, "input must not be reordered")

	c := ComparePair(p)
	assert.InDelta(t, 50, c.PercentChange, 1e-9)
}

func TestPercentChange(t *testing.T) {
	diff, pct := PercentChange(0.3, 0.2)
	assert.InDelta(t, 0.1, diff, 1e-12)
	assert.InDelta(t, 50, pct, 1e-9)

	diff, pct = PercentChange(-0.5, 0)
	assert.Equal(t, -0.5, diff)
	assert.Equal(t, 0.0, pct)
}
