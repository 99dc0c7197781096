package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/geoindex/internal/geo"
	"github.com/sells-group/geoindex/internal/ingest"
	"github.com/sells-group/geoindex/internal/model"
)

var centroidRegion string

var centroidCmd = &cobra.Command{
	Use:   "centroid",
	Short: "Print the map centre of a region",
	Long:  "Averages the outer ring of a region's polygon. Regions without a usable polygon print the configured default centre.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		center, err := regionCenter(centroidRegion, fallbackCenter())
		if err != nil {
			return err
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(center)
	},
}

func init() {
	centroidCmd.Flags().StringVar(&centroidRegion, "region", "", "region file (.geojson, .json, .shp) (required)")
	_ = centroidCmd.MarkFlagRequired("region")
	rootCmd.AddCommand(centroidCmd)
}

func regionCenter(path string, fallback model.LatLng) (model.LatLng, error) {
	region, err := ingest.LoadRegion(path)
	if err != nil {
		return model.LatLng{}, eris.Wrapf(err, "centroid: load region %s", path)
	}
	return geo.CentroidOr(region.Geometry, fallback), nil
}
