package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geoindex/internal/config"
	"github.com/sells-group/geoindex/internal/ingest"
	"github.com/sells-group/geoindex/internal/model"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geoindex",
	Short: "Spectral index interpretation for satellite observations",
	Long:  "Classifies NDVI/NDWI/NDMI/NDBI/BSI changes over time, builds chart geometry, and frames regions on a map.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// ingestOptions maps the ingest section of the config onto loader options.
func ingestOptions(c *config.Config, kind model.IndexKind) ingest.Options {
	opts := ingest.Options{
		DefaultKind: kind,
		CSV: ingest.CSVOptions{
			Charset:   c.Ingest.CSVCharset,
			TrimSpace: true,
		},
		XLSX: ingest.XLSXOptions{SheetName: c.Ingest.XLSXSheet},
	}
	if d := []rune(c.Ingest.CSVDelimiter); len(d) == 1 {
		opts.CSV.Delimiter = d[0]
	}
	return opts
}

// resolveKind picks the flag value, falling back to the configured kind.
func resolveKind(flag string) model.IndexKind {
	if flag == "" {
		flag = cfg.Analysis.Kind
	}
	return model.ParseIndexKind(flag)
}

// fallbackCenter returns the configured map centre.
func fallbackCenter() model.LatLng {
	return model.LatLng{Lat: cfg.Map.DefaultLat, Lng: cfg.Map.DefaultLng}
}

// openOutput returns stdout or a created file. The returned close func is never nil.
func openOutput(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "create output %s", path)
	}
	return f, f.Close, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
