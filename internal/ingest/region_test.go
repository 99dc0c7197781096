package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestReadRegionGeoJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantType string
	}{
		{
			name:     "feature",
			input:    `{"type":"Feature","properties":{"name":"Kairouan"},"geometry":{"type":"Polygon","coordinates":[[[9,35],[10,35],[10,36],[9,36]]]}}`,
			wantName: "Kairouan",
			wantType: "polygon",
		},
		{
			name:     "feature collection",
			input:    `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"Sfax"},"geometry":{"type":"MultiPolygon","coordinates":[[[[10,34],[11,34],[11,35],[10,35]]]]}}]}`,
			wantName: "Sfax",
			wantType: "multipolygon",
		},
		{
			name:     "bare geometry",
			input:    `{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2]]]}`,
			wantType: "polygon",
		},
		{
			name:     "backend record",
			input:    `{"id":4,"name":"Gabes","geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2]]]}}`,
			wantName: "Gabes",
			wantType: "polygon",
		},
		{
			name:     "backend record without geometry",
			input:    `{"id":4,"name":"Gabes","geometry":null}`,
			wantName: "Gabes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := ReadRegionGeoJSON(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, reg.Name)
			switch tt.wantType {
			case "polygon":
				assert.IsType(t, &geom.Polygon{}, reg.Geometry)
			case "multipolygon":
				assert.IsType(t, &geom.MultiPolygon{}, reg.Geometry)
			default:
				assert.Nil(t, reg.Geometry)
			}
		})
	}
}

func TestReadRegionGeoJSON_Errors(t *testing.T) {
	_, err := ReadRegionGeoJSON(strings.NewReader(`not json`))
	assert.Error(t, err)

	_, err = ReadRegionGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	assert.Error(t, err)
}

func writeTestShapefile(t *testing.T, name string, parts [][]shp.Point) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "region.shp")

	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{shp.StringField("NAME", 32)}))

	poly := shp.Polygon(*shp.NewPolyLine(parts))
	row := w.Write(&poly)
	require.NoError(t, w.WriteAttribute(int(row), 0, name))
	w.Close()
	return path
}

func TestReadRegionShapefile(t *testing.T) {
	path := writeTestShapefile(t, "Bizerte", [][]shp.Point{
		{{X: 9, Y: 37}, {X: 10, Y: 37}, {X: 10, Y: 38}, {X: 9, Y: 38}, {X: 9, Y: 37}},
		{{X: 11, Y: 37}, {X: 12, Y: 37}, {X: 12, Y: 38}, {X: 11, Y: 37}},
	})

	reg, err := ReadRegionShapefile(path)
	require.NoError(t, err)
	assert.Equal(t, "Bizerte", reg.Name)

	mp, ok := reg.Geometry.(*geom.MultiPolygon)
	require.True(t, ok)
	assert.Equal(t, 2, mp.NumPolygons())
	assert.Equal(t, 5, mp.Polygon(0).LinearRing(0).NumCoords())
}

func TestReadRegionShapefile_Missing(t *testing.T) {
	_, err := ReadRegionShapefile(filepath.Join(t.TempDir(), "none.shp"))
	assert.Error(t, err)
}

func TestPolygonToMultiPolygon_Nil(t *testing.T) {
	assert.Nil(t, polygonToMultiPolygon(nil))
	assert.Nil(t, polygonToMultiPolygon(&shp.Polygon{}))
}

func TestLoadRegion_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.kml")
	require.NoError(t, os.WriteFile(path, []byte("<kml/>"), 0o644))

	_, err := LoadRegion(path)
	assert.Error(t, err)
}
