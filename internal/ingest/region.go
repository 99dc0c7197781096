package ingest

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// Region is a named area of interest. Geometry may be nil.
type Region struct {
	Name     string `json:"name"`
	Geometry geom.T `json:"-"`
}

// regionRecord is the backend's region shape: a GeoJSON geometry under "geometry".
type regionRecord struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry"`
}

// ReadRegionGeoJSON reads a region from a GeoJSON Feature, the first feature of
// a FeatureCollection, a bare geometry, or a backend region record. A geometry
// that cannot be decoded is logged and left nil so callers fall back to the
// default map centre.
func ReadRegionGeoJSON(r io.Reader) (Region, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Region{}, eris.Wrap(err, "ingest: read region")
	}

	var head regionRecord
	if err := json.Unmarshal(data, &head); err != nil {
		return Region{}, eris.Wrap(err, "ingest: decode region")
	}

	switch head.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return Region{}, eris.Wrap(err, "ingest: decode feature collection")
		}
		if len(fc.Features) == 0 {
			return Region{}, eris.New("ingest: feature collection has no features")
		}
		return regionFromFeature(fc.Features[0]), nil
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return Region{}, eris.Wrap(err, "ingest: decode feature")
		}
		return regionFromFeature(&f), nil
	case "":
		return Region{Name: head.Name, Geometry: decodeGeometry(head.Geometry)}, nil
	default:
		return Region{Geometry: decodeGeometry(data)}, nil
	}
}

func regionFromFeature(f *geojson.Feature) Region {
	reg := Region{Geometry: f.Geometry}
	if name, ok := f.Properties["name"].(string); ok {
		reg.Name = name
	}
	return reg
}

func decodeGeometry(raw []byte) geom.T {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		zap.L().Warn("ingest: undecodable region geometry", zap.Error(err))
		return nil
	}
	return g
}

// ReadRegionShapefile reads the first polygon record of a shapefile. The region
// name comes from a "name" attribute when present.
func ReadRegionShapefile(path string) (Region, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return Region{}, eris.Wrapf(err, "ingest: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	nameIdx := -1
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), "name") {
			nameIdx = i
		}
	}

	var skipped int
	for reader.Next() {
		_, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			skipped++
			continue
		}
		mp := polygonToMultiPolygon(poly)
		if mp == nil {
			skipped++
			continue
		}

		reg := Region{Geometry: mp}
		if nameIdx >= 0 {
			reg.Name = strings.TrimSpace(strings.TrimRight(reader.Attribute(nameIdx), "\x00"))
		}
		if skipped > 0 {
			zap.L().Debug("ingest: skipped shapefile records", zap.String("path", path), zap.Int("skipped", skipped))
		}
		return reg, nil
	}

	return Region{}, eris.Errorf("ingest: no polygon records in %s", path)
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon,
// one polygon per part.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		end := int32(len(p.Points))
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(geom.NewLinearRingFlat(geom.XY, flat)); err != nil {
			zap.L().Debug("ingest: skipping malformed polygon ring", zap.Int32("part", i), zap.Error(err))
			continue
		}
		if err := mp.Push(poly); err != nil {
			zap.L().Debug("ingest: skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
