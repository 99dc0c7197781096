package main

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geoindex/internal/chart"
	"github.com/sells-group/geoindex/internal/ingest"
	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/report"
	"github.com/sells-group/geoindex/internal/series"
)

var (
	chartSamples string
	chartKind    string
	chartShape   string
	chartYear    int
	chartFormat  string
	chartOutput  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the geometry of a single chart",
	Long: `Computes one chart (line, bar or pie) from a samples file and prints its
view-box geometry. The bar chart shows the months of --year, or of the earliest
year when --year is not set.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		kind := resolveKind(chartKind)
		g, err := buildChart(cmd.Context(), chartSamples, kind, chart.Shape(strings.ToLower(chartShape)), chartYear)
		if err != nil {
			return err
		}

		format := cfg.Report.Format
		if chartFormat != "" {
			format = chartFormat
		}
		out, closeOut, err := openOutput(chartOutput)
		if err != nil {
			return err
		}
		if err := report.Encode(out, g, format); err != nil {
			_ = closeOut()
			return err
		}
		return closeOut()
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartSamples, "samples", "", "sample file (.json, .csv, .xlsx) (required)")
	chartCmd.Flags().StringVar(&chartKind, "kind", "", "index kind (default: analysis.kind)")
	chartCmd.Flags().StringVar(&chartShape, "shape", "line", "chart shape: line, bar or pie")
	chartCmd.Flags().IntVar(&chartYear, "year", 0, "year for the bar chart (0 = earliest)")
	chartCmd.Flags().StringVar(&chartFormat, "format", "", "output format: json or yaml (default: report.format)")
	chartCmd.Flags().StringVar(&chartOutput, "output", "", "write chart to file (default: stdout)")
	_ = chartCmd.MarkFlagRequired("samples")
	rootCmd.AddCommand(chartCmd)
}

func buildChart(ctx context.Context, path string, kind model.IndexKind, shape chart.Shape, year int) (chart.Geometry, error) {
	samples, err := ingest.LoadSamples(ctx, path, ingestOptions(cfg, kind))
	if err != nil {
		return nil, eris.Wrapf(err, "chart: load samples %s", path)
	}
	samples = ingest.FilterKind(samples, kind)
	zap.L().Debug("chart: samples loaded", zap.String("shape", string(shape)), zap.Int("samples", len(samples)))

	switch shape {
	case chart.ShapeLine:
		return chart.Line(kind, samples), nil
	case chart.ShapePie:
		return chart.Pie(kind, samples), nil
	case chart.ShapeBar:
		byYear := series.GroupByYear(samples)
		if year == 0 {
			years := byYear.Years()
			if len(years) == 0 {
				return nil, eris.New("chart: no samples for bar chart")
			}
			year = years[0]
		}
		grp, err := byYear.YearGroup(year)
		if err != nil {
			return nil, eris.Wrap(err, "chart: select year")
		}
		return chart.Bar(kind, grp), nil
	default:
		return nil, eris.Errorf("chart: unknown shape %q", shape)
	}
}
