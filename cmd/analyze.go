package main

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/geoindex/internal/ingest"
	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/report"
	"github.com/sells-group/geoindex/internal/series"
)

var (
	analyzeSamples     []string
	analyzeRegions     []string
	analyzeKind        string
	analyzeYears       int
	analyzeYear        int
	analyzeAsOf        string
	analyzeFormat      string
	analyzeOutput      string
	analyzeConcurrency int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build index reports for one or more regions",
	Long: `Loads index samples (JSON, CSV or XLSX) and optional region geometries
(GeoJSON or shapefile), then prints one report per region with the latest
comparison, the period trend, chart geometry and the map centre.

Examples:
  geoindex analyze --samples tunis.json --region tunis.geojson --kind NDVI

  # Two regions, processed concurrently, YAML output
  geoindex analyze --samples a.csv --region a.shp --samples b.xlsx --region b.geojson --format yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if len(analyzeRegions) > 0 && len(analyzeRegions) != len(analyzeSamples) {
			return eris.Errorf("analyze: got %d --region for %d --samples", len(analyzeRegions), len(analyzeSamples))
		}

		now := time.Now()
		if analyzeAsOf != "" {
			t, err := ingest.ParseTime(analyzeAsOf)
			if err != nil {
				return eris.Wrap(err, "analyze: parse --as-of")
			}
			now = t
		}

		job := analyzeJob{
			Kind:       resolveKind(analyzeKind),
			Years:      cfg.Analysis.TimeRangeYears,
			ActiveYear: analyzeYear,
			Now:        now,
		}
		if cmd.Flags().Changed("years") {
			job.Years = analyzeYears
		}

		format := cfg.Report.Format
		if analyzeFormat != "" {
			format = analyzeFormat
		}
		limit := cfg.Report.Concurrency
		if analyzeConcurrency > 0 {
			limit = analyzeConcurrency
		}

		reports, err := runAnalyze(cmd.Context(), job, analyzeSamples, analyzeRegions, limit)
		if err != nil {
			return err
		}

		out, closeOut, err := openOutput(analyzeOutput)
		if err != nil {
			return err
		}
		if err := report.Encode(out, reports, format); err != nil {
			_ = closeOut()
			return err
		}
		return closeOut()
	},
}

func init() {
	analyzeCmd.Flags().StringArrayVar(&analyzeSamples, "samples", nil, "sample file (.json, .csv, .xlsx); repeat for several regions (required)")
	analyzeCmd.Flags().StringArrayVar(&analyzeRegions, "region", nil, "region file (.geojson, .json, .shp), paired with --samples by position")
	analyzeCmd.Flags().StringVar(&analyzeKind, "kind", "", "index kind: NDVI, NDWI, NDMI, NDBI or BSI (default: analysis.kind)")
	analyzeCmd.Flags().IntVar(&analyzeYears, "years", 1, "time range in years; 0 keeps every sample (default: analysis.time_range_years)")
	analyzeCmd.Flags().IntVar(&analyzeYear, "year", 0, "year shown in the monthly bar chart (0 = earliest)")
	analyzeCmd.Flags().StringVar(&analyzeAsOf, "as-of", "", "reference date for the time range (default: now)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "output format: json or yaml (default: report.format)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "write reports to file (default: stdout)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "max regions processed concurrently (default: report.concurrency)")
	_ = analyzeCmd.MarkFlagRequired("samples")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeJob holds the settings shared by every region of one invocation.
type analyzeJob struct {
	Kind       model.IndexKind
	Years      int
	ActiveYear int
	Now        time.Time
}

// runAnalyze builds one report per samples file. Reports keep the order of
// samplePaths regardless of completion order.
func runAnalyze(ctx context.Context, job analyzeJob, samplePaths, regionPaths []string, limit int) ([]report.Report, error) {
	reports := make([]report.Report, len(samplePaths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range samplePaths {
		i, path := i, path
		regionPath := ""
		if i < len(regionPaths) {
			regionPath = regionPaths[i]
		}
		g.Go(func() error {
			r, err := analyzeOne(gCtx, job, path, regionPath)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func analyzeOne(ctx context.Context, job analyzeJob, samplesPath, regionPath string) (report.Report, error) {
	runID := uuid.NewString()
	log := zap.L().With(
		zap.String("run_id", runID),
		zap.String("samples", samplesPath),
		zap.String("kind", string(job.Kind)),
	)

	samples, err := ingest.LoadSamples(ctx, samplesPath, ingestOptions(cfg, job.Kind))
	if err != nil {
		return report.Report{}, eris.Wrapf(err, "analyze: load samples %s", samplesPath)
	}
	loaded := len(samples)
	samples = series.Within(ingest.FilterKind(samples, job.Kind), job.Now, job.Years)
	log.Debug("analyze: samples loaded", zap.Int("loaded", loaded), zap.Int("kept", len(samples)))

	region := ingest.Region{Name: regionName(samplesPath)}
	if regionPath != "" {
		region, err = ingest.LoadRegion(regionPath)
		if err != nil {
			return report.Report{}, eris.Wrapf(err, "analyze: load region %s", regionPath)
		}
		if region.Name == "" {
			region.Name = regionName(regionPath)
		}
	}

	r := report.Build(report.Input{
		Region:     region.Name,
		Geometry:   region.Geometry,
		Fallback:   fallbackCenter(),
		Kind:       job.Kind,
		Samples:    samples,
		Years:      job.Years,
		ActiveYear: job.ActiveYear,
	})
	r.RunID = runID

	log.Info("analyze: report built",
		zap.String("region", r.Region),
		zap.Int("samples", len(samples)),
		zap.Bool("has_comparison", r.Comparison != nil),
		zap.Bool("has_trend", r.Trend != nil),
	)
	return r, nil
}

// regionName derives a display name from a file path.
func regionName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
