package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoindex/internal/model"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2021-03-15", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2021-03-15T10:20:30", time.Date(2021, 3, 15, 10, 20, 30, 0, time.UTC)},
		{"2021-03-15 10:20:30", time.Date(2021, 3, 15, 10, 20, 30, 0, time.UTC)},
		{"2021-03-15T10:20:30Z", time.Date(2021, 3, 15, 10, 20, 30, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseTime_KeepsOffset(t *testing.T) {
	got, err := ParseTime("2021-12-31T23:30:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, 2021, got.Year())
	_, offset := got.Zone()
	assert.Equal(t, -7200, offset)
}

func TestParseTime_Invalid(t *testing.T) {
	_, err := ParseTime("15/03/2021")
	assert.Error(t, err)
}

func TestRecordSample(t *testing.T) {
	rec := Record{
		AcquisitionDate: "2021-03-15",
		MinValue:        -0.2,
		MaxValue:        0.9,
		MeanValue:       0.45,
		IndexType:       "ndwi",
		RasterFile:      "/media/ndwi.tif",
	}

	s, err := rec.Sample(model.KindVegetation)
	require.NoError(t, err)
	assert.Equal(t, model.KindWater, s.Kind)
	assert.Equal(t, 0.45, s.Mean)
	assert.Equal(t, -0.2, s.Min)
	assert.Equal(t, 0.9, s.Max)
	assert.Equal(t, "/media/ndwi.tif", s.RasterRef)

	rec.IndexType = ""
	s, err = rec.Sample(model.KindBareSoil)
	require.NoError(t, err)
	assert.Equal(t, model.KindBareSoil, s.Kind)
}

func TestNewHeader_MissingColumn(t *testing.T) {
	_, err := newHeader([]string{"acquisition_date", "min_value"})
	assert.Error(t, err)

	h, err := newHeader([]string{" Acquisition_Date ", "MEAN_VALUE"})
	require.NoError(t, err)
	assert.Equal(t, 0, h[ColDate])
	assert.Equal(t, 1, h[ColMean])
}
