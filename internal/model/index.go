// Package model defines the shared value types for index samples and their interpretation.
package model

import (
	"strings"
	"time"
)

// IndexKind identifies a remote-sensing index.
type IndexKind string

const (
	KindVegetation IndexKind = "NDVI"
	KindWater      IndexKind = "NDWI"
	KindMoisture   IndexKind = "NDMI"
	KindBuiltUp    IndexKind = "NDBI"
	KindBareSoil   IndexKind = "BSI"
)

// Kinds lists the supported index kinds in display order.
var Kinds = []IndexKind{KindVegetation, KindWater, KindMoisture, KindBuiltUp, KindBareSoil}

var kindNames = map[IndexKind]string{
	KindVegetation: "VEGETATION",
	KindWater:      "WATER",
	KindMoisture:   "MOISTURE",
	KindBuiltUp:    "BUILTUP",
	KindBareSoil:   "BARESOIL",
}

// ParseIndexKind maps an index code ("NDVI") or long name ("VEGETATION") to an IndexKind.
// Unrecognized values are returned upper-cased as-is; Known reports false for them.
func ParseIndexKind(s string) IndexKind {
	v := strings.ToUpper(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if v == string(kind) || v == name {
			return kind
		}
	}
	return IndexKind(v)
}

// Known reports whether k is one of the supported kinds.
func (k IndexKind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// Name returns the long name (e.g. "VEGETATION"), or the raw value for unknown kinds.
func (k IndexKind) Name() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return string(k)
}

// IndexSample is one observation of an index over a region.
type IndexSample struct {
	Kind       IndexKind `json:"index_type" yaml:"index_type"`
	AcquiredAt time.Time `json:"acquisition_date" yaml:"acquisition_date"`
	Min        float64   `json:"min_value" yaml:"min_value"`
	Max        float64   `json:"max_value" yaml:"max_value"`
	Mean       float64   `json:"mean_value" yaml:"mean_value"`
	RasterRef  string    `json:"raster_file,omitempty" yaml:"raster_file,omitempty"`
}

// LatLng is a map coordinate.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}
