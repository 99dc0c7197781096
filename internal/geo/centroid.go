// Package geo approximates map focus points for region geometries.
package geo

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/geoindex/internal/model"
)

// DefaultCenter is the map focus used when a region geometry cannot be framed:
// the centre of the study area (Tunisia).
var DefaultCenter = model.LatLng{Lat: 34.0, Lng: 9.0}

// Centroid approximates the centre of a polygon or multipolygon for map framing.
// See CentroidOr; the fallback is DefaultCenter.
func Centroid(g geom.T) model.LatLng {
	return CentroidOr(g, DefaultCenter)
}

// CentroidOr returns the unweighted mean of the outer ring's vertices: the first
// ring of a Polygon, or the first ring of the first polygon of a MultiPolygon.
// This is not an area-weighted centroid. Nil, unsupported, or empty geometries
// yield fallback; it never panics.
func CentroidOr(g geom.T, fallback model.LatLng) (center model.LatLng) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Debug("geo: centroid recovered", zap.Any("panic", r))
			center = fallback
		}
	}()

	ring := outerRing(g)
	if len(ring) == 0 {
		zap.L().Debug("geo: no outer ring, using fallback center")
		return fallback
	}

	var lat, lng float64
	for _, c := range ring {
		lng += c.X()
		lat += c.Y()
	}
	n := float64(len(ring))
	return model.LatLng{Lat: lat / n, Lng: lng / n}
}

// CentroidGeoJSON decodes a GeoJSON geometry and returns its centroid.
// Malformed input yields DefaultCenter.
func CentroidGeoJSON(data []byte) (center model.LatLng) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Debug("geo: geometry decode recovered", zap.Any("panic", r))
			center = DefaultCenter
		}
	}()

	if len(data) == 0 {
		return DefaultCenter
	}
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		zap.L().Debug("geo: decode geometry", zap.Error(err))
		return DefaultCenter
	}
	return Centroid(g)
}

func outerRing(g geom.T) []geom.Coord {
	switch t := g.(type) {
	case *geom.Polygon:
		if t == nil || t.NumLinearRings() == 0 {
			return nil
		}
		return t.LinearRing(0).Coords()
	case *geom.MultiPolygon:
		if t == nil || t.NumPolygons() == 0 {
			return nil
		}
		return outerRing(t.Polygon(0))
	default:
		return nil
	}
}
