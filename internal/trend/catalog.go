package trend

import "github.com/sells-group/geoindex/internal/model"

// ColorStop is one legend entry: index values at or above Value use Color.
type ColorStop struct {
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color" yaml:"color"`
}

// IndexInfo describes how an index kind is presented.
type IndexInfo struct {
	Kind        model.IndexKind `json:"kind" yaml:"kind"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Color       string          `json:"color" yaml:"color"`
	Scale       []ColorStop     `json:"scale" yaml:"scale"`
}

// Low index values are poor for NDVI/NDWI/NDMI; for NDBI/BSI the scale is reversed.
var (
	greeningScale = []ColorStop{
		{-1, "#d73027"}, {-0.2, "#f46d43"}, {0, "#fdae61"}, {0.2, "#fee08b"},
		{0.4, "#d9ef8b"}, {0.6, "#a6d96a"}, {0.8, "#66bd63"}, {1, "#1a9850"},
	}
	wetnessScale = []ColorStop{
		{-1, "#d73027"}, {-0.5, "#f46d43"}, {-0.3, "#fdae61"}, {-0.1, "#fee08b"},
		{0, "#d9ef8b"}, {0.2, "#a6d96a"}, {0.4, "#66bd63"}, {1, "#1a9850"},
	}
	exposureScale = []ColorStop{
		{-1, "#1a9850"}, {-0.5, "#66bd63"}, {-0.3, "#a6d96a"}, {-0.1, "#d9ef8b"},
		{0, "#fee08b"}, {0.2, "#fdae61"}, {0.4, "#f46d43"}, {1, "#d73027"},
	}
)

var catalog = map[model.IndexKind]IndexInfo{
	model.KindVegetation: {
		Kind:        model.KindVegetation,
		Name:        "Normalized Difference Vegetation Index",
		Description: "Measures vegetation density.",
		Color:       "#1a9850",
		Scale:       greeningScale,
	},
	model.KindWater: {
		Kind:        model.KindWater,
		Name:        "Normalized Difference Water Index",
		Description: "Detects the presence of water and moisture.",
		Color:       "#4575b4",
		Scale:       wetnessScale,
	},
	model.KindMoisture: {
		Kind:        model.KindMoisture,
		Name:        "Normalized Difference Moisture Index",
		Description: "Measures vegetation moisture.",
		Color:       "#91bfdb",
		Scale:       wetnessScale,
	},
	model.KindBuiltUp: {
		Kind:        model.KindBuiltUp,
		Name:        "Normalized Difference Built-up Index",
		Description: "Identifies built-up areas.",
		Color:       "#d73027",
		Scale:       exposureScale,
	},
	model.KindBareSoil: {
		Kind:        model.KindBareSoil,
		Name:        "Bare Soil Index",
		Description: "Detects bare soil.",
		Color:       "#fdae61",
		Scale:       exposureScale,
	},
}

// Lookup returns presentation metadata for kind. Unknown kinds reuse the NDVI
// colours under their own code.
func Lookup(kind model.IndexKind) IndexInfo {
	if info, ok := catalog[kind]; ok {
		return info
	}
	info := catalog[model.KindVegetation]
	info.Kind = kind
	info.Name = string(kind)
	info.Description = ""
	return info
}

// ColorFor returns the stroke colour for kind.
func ColorFor(kind model.IndexKind) string {
	return Lookup(kind).Color
}
