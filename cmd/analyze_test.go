package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoindex/internal/model"
)

func TestRunAnalyze_TwoRegions(t *testing.T) {
	useTestConfig(t)
	dir := t.TempDir()
	samples := writeFile(t, dir, "tunis.json", testSamplesJSON)
	region := writeFile(t, dir, "tunis.geojson", testRegionGeoJSON)
	other := writeFile(t, dir, "sfax.json", testSamplesJSON)

	job := analyzeJob{Kind: model.KindVegetation, Years: 0, Now: time.Now()}
	reports, err := runAnalyze(context.Background(), job, []string{samples, other}, []string{region}, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	first := reports[0]
	assert.Equal(t, "Tunis", first.Region)
	_, err = uuid.Parse(first.RunID)
	assert.NoError(t, err)
	// Closing vertex is part of the mean.
	assert.InDelta(t, 35.8, first.Center.Lat, 1e-9)
	assert.InDelta(t, 9.8, first.Center.Lng, 1e-9)
	require.Len(t, first.History, 3, "NDWI record is filtered out")

	require.NotNil(t, first.Comparison)
	assert.Equal(t, model.CategoryLargeIncrease, first.Comparison.Classification.Category)
	assert.InDelta(t, 33.333, first.Comparison.Classification.PercentChange, 0.001)

	require.NotNil(t, first.Trend)
	assert.Equal(t, model.CategoryLargeDecrease, first.Trend.Classification.Category)
	assert.InDelta(t, -20, first.Trend.Classification.PercentChange, 1e-9)

	require.NotNil(t, first.Bar)
	assert.Len(t, first.Bar.Bars, 2)
	assert.Len(t, first.Pie.Slices, 2)

	second := reports[1]
	assert.Equal(t, "sfax", second.Region)
	assert.Equal(t, model.LatLng{Lat: 34.0, Lng: 9.0}, second.Center)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunAnalyze_TimeRange(t *testing.T) {
	useTestConfig(t)
	samples := writeFile(t, t.TempDir(), "tunis.json", testSamplesJSON)

	job := analyzeJob{
		Kind:  model.KindVegetation,
		Years: 1,
		Now:   time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	reports, err := runAnalyze(context.Background(), job, []string{samples}, nil, 1)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	require.Len(t, r.History, 2)
	assert.Equal(t, 2022, r.History[0].AcquiredAt.Year())
	assert.Equal(t, time.September, r.History[1].AcquiredAt.Month())
	require.NotNil(t, r.Trend)
	assert.Equal(t, 1, r.Trend.Years)
	assert.Contains(t, r.Trend.Description, "over 1 year(s).")
}

func TestRunAnalyze_SingleSample(t *testing.T) {
	useTestConfig(t)
	samples := writeFile(t, t.TempDir(), "one.json",
		`[{"acquisition_date": "2022-03-15", "mean_value": 0.4}]`)

	job := analyzeJob{Kind: model.KindWater, Now: time.Now()}
	reports, err := runAnalyze(context.Background(), job, []string{samples}, nil, 1)
	require.NoError(t, err)

	r := reports[0]
	require.Len(t, r.History, 1)
	assert.Equal(t, model.KindWater, r.History[0].Kind)
	assert.Nil(t, r.Comparison)
	assert.Nil(t, r.Trend)
	assert.NotEmpty(t, r.TrendNote)
}

func TestRunAnalyze_Errors(t *testing.T) {
	useTestConfig(t)
	dir := t.TempDir()
	samples := writeFile(t, dir, "tunis.json", testSamplesJSON)
	job := analyzeJob{Kind: model.KindVegetation, Now: time.Now()}

	tests := []struct {
		name    string
		samples []string
		regions []string
		wantErr string
	}{
		{"missing samples", []string{filepath.Join(dir, "nope.json")}, nil, "load samples"},
		{"unsupported samples", []string{writeFile(t, dir, "s.txt", "x")}, nil, "load samples"},
		{"missing region", []string{samples}, []string{filepath.Join(dir, "nope.geojson")}, "load region"},
		{"bad dates", []string{writeFile(t, dir, "bad.json", `[{"acquisition_date": "soon", "mean_value": 1}]`)}, nil, "load samples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runAnalyze(context.Background(), job, tt.samples, tt.regions, 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
