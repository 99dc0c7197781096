// Package ingest reads index samples and region geometries from local files in
// the backend's record shape (JSON, CSV, XLSX, GeoJSON, shapefile).
package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/geoindex/internal/model"
)

// Record is one index sample as served by the backend API.
type Record struct {
	AcquisitionDate string  `json:"acquisition_date"`
	MinValue        float64 `json:"min_value"`
	MaxValue        float64 `json:"max_value"`
	MeanValue       float64 `json:"mean_value"`
	IndexType       string  `json:"index_type"`
	RasterFile      string  `json:"raster_file,omitempty"`
}

// Column names shared by the tabular formats.
const (
	ColDate   = "acquisition_date"
	ColMin    = "min_value"
	ColMax    = "max_value"
	ColMean   = "mean_value"
	ColType   = "index_type"
	ColRaster = "raster_file"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses an acquisition date. Offsets in the value are kept; values
// without one are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, eris.Errorf("ingest: unrecognized date %q", s)
}

// Sample converts r to a model.IndexSample. An empty index_type falls back to
// defaultKind.
func (r Record) Sample(defaultKind model.IndexKind) (model.IndexSample, error) {
	at, err := ParseTime(r.AcquisitionDate)
	if err != nil {
		return model.IndexSample{}, err
	}
	kind := defaultKind
	if strings.TrimSpace(r.IndexType) != "" {
		kind = model.ParseIndexKind(r.IndexType)
	}
	return model.IndexSample{
		Kind:       kind,
		AcquiredAt: at,
		Min:        r.MinValue,
		Max:        r.MaxValue,
		Mean:       r.MeanValue,
		RasterRef:  r.RasterFile,
	}, nil
}

// header maps lower-cased column names to their index.
type header map[string]int

func newHeader(cols []string) (header, error) {
	h := make(header, len(cols))
	for i, c := range cols {
		h[strings.ToLower(strings.TrimSpace(c))] = i
	}
	for _, req := range []string{ColDate, ColMean} {
		if _, ok := h[req]; !ok {
			return nil, eris.Errorf("ingest: missing required column %q", req)
		}
	}
	return h, nil
}

func (h header) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (h header) float(row []string, col string) (float64, error) {
	v := h.get(row, col)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "ingest: parse %s", col)
	}
	return f, nil
}

// record builds a Record from a tabular row. line is used in error messages.
func (h header) record(row []string, line int) (Record, error) {
	r := Record{
		AcquisitionDate: h.get(row, ColDate),
		IndexType:       h.get(row, ColType),
		RasterFile:      h.get(row, ColRaster),
	}
	var err error
	if r.MinValue, err = h.float(row, ColMin); err != nil {
		return Record{}, eris.Wrapf(err, "ingest: row %d", line)
	}
	if r.MaxValue, err = h.float(row, ColMax); err != nil {
		return Record{}, eris.Wrapf(err, "ingest: row %d", line)
	}
	if h.get(row, ColMean) == "" {
		return Record{}, eris.Errorf("ingest: row %d: empty %s", line, ColMean)
	}
	if r.MeanValue, err = h.float(row, ColMean); err != nil {
		return Record{}, eris.Wrapf(err, "ingest: row %d", line)
	}
	return r, nil
}
