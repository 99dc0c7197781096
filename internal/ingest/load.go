package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoindex/internal/model"
)

// Options configures LoadSamples.
type Options struct {
	DefaultKind model.IndexKind
	CSV         CSVOptions
	XLSX        XLSXOptions
}

// LoadSamples reads samples from path, choosing the format by extension
// (.json, .csv, .xlsx).
func LoadSamples(ctx context.Context, path string, opts Options) ([]model.IndexSample, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return ReadSamplesXLSX(path, opts.XLSX, opts.DefaultKind)
	case ".json", ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: open %s", path)
		}
		defer func() { _ = f.Close() }()
		if ext == ".json" {
			return DecodeSamplesJSON(ctx, f, opts.DefaultKind)
		}
		return ReadSamplesCSV(ctx, f, opts.CSV, opts.DefaultKind)
	default:
		return nil, eris.Errorf("ingest: unsupported sample format %q", ext)
	}
}

// LoadRegion reads a region from a .geojson/.json or .shp file.
func LoadRegion(path string) (Region, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".shp":
		return ReadRegionShapefile(path)
	case ".geojson", ".json":
		f, err := os.Open(path)
		if err != nil {
			return Region{}, eris.Wrapf(err, "ingest: open %s", path)
		}
		defer func() { _ = f.Close() }()
		return ReadRegionGeoJSON(f)
	default:
		return Region{}, eris.Errorf("ingest: unsupported region format %q", ext)
	}
}

// FilterKind returns the samples of the given kind, preserving order.
func FilterKind(samples []model.IndexSample, kind model.IndexKind) []model.IndexSample {
	var out []model.IndexSample
	for _, s := range samples {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
