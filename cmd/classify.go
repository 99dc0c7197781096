package main

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/geoindex/internal/analysis"
	"github.com/sells-group/geoindex/internal/model"
	"github.com/sells-group/geoindex/internal/report"
	"github.com/sells-group/geoindex/internal/trend"
)

var (
	classifyKind   string
	classifyNewer  string
	classifyOlder  string
	classifyPct    string
	classifyYears  int
	classifyFormat string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a change in an index",
	Long: `Classifies either a percent change (--pct) or a pair of mean values
(--newer and --older) and prints the category, severity and narrative.

Examples:
  geoindex classify --kind NDVI --pct -12.5
  geoindex classify --kind NDWI --newer 0.31 --older 0.24 --years 2`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		kind := resolveKind(classifyKind)
		c, err := classifyChange(kind, classifyPct, classifyNewer, classifyOlder)
		if err != nil {
			return err
		}

		format := cfg.Report.Format
		if classifyFormat != "" {
			format = classifyFormat
		}
		out := classifyOutput{
			Kind:           kind,
			Classification: c,
			Description:    trend.Describe(kind, c.PercentChange, classifyYears),
		}
		return report.Encode(cmd.OutOrStdout(), out, format)
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyKind, "kind", "", "index kind (default: analysis.kind)")
	classifyCmd.Flags().StringVar(&classifyPct, "pct", "", "percent change to classify")
	classifyCmd.Flags().StringVar(&classifyNewer, "newer", "", "mean value of the newer observation")
	classifyCmd.Flags().StringVar(&classifyOlder, "older", "", "mean value of the older observation")
	classifyCmd.Flags().IntVar(&classifyYears, "years", 1, "time range used in the description")
	classifyCmd.Flags().StringVar(&classifyFormat, "format", "", "output format: json or yaml (default: report.format)")
	classifyCmd.MarkFlagsMutuallyExclusive("pct", "newer")
	classifyCmd.MarkFlagsMutuallyExclusive("pct", "older")
	classifyCmd.MarkFlagsRequiredTogether("newer", "older")
	rootCmd.AddCommand(classifyCmd)
}

type classifyOutput struct {
	Kind           model.IndexKind      `json:"index_type" yaml:"index_type"`
	Classification model.Classification `json:"classification" yaml:"classification"`
	Description    string               `json:"description" yaml:"description"`
}

func classifyChange(kind model.IndexKind, pct, newer, older string) (model.Classification, error) {
	if pct != "" {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return model.Classification{}, eris.Wrap(err, "classify: parse --pct")
		}
		c := trend.Classify(kind, v)
		c.PercentChange = v
		return c, nil
	}
	if newer == "" || older == "" {
		return model.Classification{}, eris.New("classify: either --pct or both --newer and --older are required")
	}
	n, err := strconv.ParseFloat(newer, 64)
	if err != nil {
		return model.Classification{}, eris.Wrap(err, "classify: parse --newer")
	}
	o, err := strconv.ParseFloat(older, 64)
	if err != nil {
		return model.Classification{}, eris.Wrap(err, "classify: parse --older")
	}
	c := analysis.Compare(
		&model.IndexSample{Kind: kind, Mean: n},
		&model.IndexSample{Kind: kind, Mean: o},
	)
	return *c, nil
}
