package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoindex/internal/model"
)

func TestPeriodTrend_Insufficient(t *testing.T) {
	_, ok := PeriodTrend(model.KindVegetation, nil, 1)
	assert.False(t, ok)

	_, ok = PeriodTrend(model.KindVegetation, []model.IndexSample{at(2021, 1, 1, 0.2)}, 1)
	assert.False(t, ok)
}

func TestPeriodTrend_FirstToLast(t *testing.T) {
	in := []model.IndexSample{
		at(2022, 6, 1, 0.3),
		at(2020, 6, 1, 0.5),
		at(2021, 6, 1, 0.9), // intermediate values do not matter
	}

	tr, ok := PeriodTrend(model.KindVegetation, in, 3)
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), tr.From)
	assert.Equal(t, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), tr.To)
	assert.InDelta(t, -40, tr.Classification.PercentChange, 1e-9)
	assert.Equal(t, model.CategoryLargeDecrease, tr.Classification.Category)
	assert.Equal(t, 3, tr.Years)
	assert.Contains(t, tr.Description, "Change: -40.00% over 3 year(s).")
}

func TestPeriodTrend_ZeroBaseline(t *testing.T) {
	in := []model.IndexSample{at(2020, 1, 1, 0), at(2021, 1, 1, 0.5)}

	tr, ok := PeriodTrend(model.KindWater, in, 1)
	require.True(t, ok)
	assert.Equal(t, 0.0, tr.Classification.PercentChange)
	assert.Equal(t, model.CategoryNoChange, tr.Classification.Category)
}
