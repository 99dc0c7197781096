package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/geoindex/internal/model"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "samples.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadSamplesXLSX(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"indices": {
			{"acquisition_date", "min_value", "max_value", "mean_value", "index_type"},
			{"2020-07-01", "-0.3", "0.4", "0.05", "NDBI"},
			{"2021-07-01", "-0.2", "0.5", "0.07", "NDBI"},
		},
	})

	samples, err := ReadSamplesXLSX(path, XLSXOptions{SheetName: "indices"}, "")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, model.KindBuiltUp, samples[0].Kind)
	assert.Equal(t, 0.07, samples[1].Mean)
}

func TestReadSamplesXLSX_MissingSheet(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{"Sheet1": {{"a"}}})

	_, err := ReadSamplesXLSX(path, XLSXOptions{SheetName: "nope"}, model.KindVegetation)
	assert.Error(t, err)

	_, err = ReadSamplesXLSX(path, XLSXOptions{SheetIndex: 3}, model.KindVegetation)
	assert.Error(t, err)
}

func TestReadXLSX_OpenError(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "missing.xlsx"), XLSXOptions{})
	assert.Error(t, err)
}
