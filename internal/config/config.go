package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Ingest   IngestConfig   `yaml:"ingest" mapstructure:"ingest"`
	Map      MapConfig      `yaml:"map" mapstructure:"map"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ReportConfig configures report output.
type ReportConfig struct {
	Format      string `yaml:"format" mapstructure:"format"`
	Concurrency int    `yaml:"concurrency" mapstructure:"concurrency"`
}

// AnalysisConfig configures the default analysis window.
type AnalysisConfig struct {
	Kind           string `yaml:"kind" mapstructure:"kind"`
	TimeRangeYears int    `yaml:"time_range_years" mapstructure:"time_range_years"`
}

// IngestConfig configures sample file parsing.
type IngestConfig struct {
	CSVCharset   string `yaml:"csv_charset" mapstructure:"csv_charset"`
	CSVDelimiter string `yaml:"csv_delimiter" mapstructure:"csv_delimiter"`
	XLSXSheet    string `yaml:"xlsx_sheet" mapstructure:"xlsx_sheet"`
}

// MapConfig holds the map focus used when a region has no usable geometry.
type MapConfig struct {
	DefaultLat float64 `yaml:"default_lat" mapstructure:"default_lat"`
	DefaultLng float64 `yaml:"default_lng" mapstructure:"default_lng"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEOINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("report.format", "json")
	v.SetDefault("report.concurrency", 4)
	v.SetDefault("analysis.kind", "NDVI")
	v.SetDefault("analysis.time_range_years", 1)
	v.SetDefault("ingest.csv_charset", "")
	v.SetDefault("ingest.csv_delimiter", ",")
	v.SetDefault("ingest.xlsx_sheet", "")
	v.SetDefault("map.default_lat", 34.0)
	v.SetDefault("map.default_lng", 9.0)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks values the CLI cannot run with.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case "json", "yaml":
	default:
		return eris.Errorf("config: report.format must be json or yaml, got %q", c.Report.Format)
	}
	if c.Report.Concurrency < 1 {
		return eris.Errorf("config: report.concurrency must be >= 1, got %d", c.Report.Concurrency)
	}
	if c.Analysis.TimeRangeYears < 0 {
		return eris.Errorf("config: analysis.time_range_years must be >= 0, got %d", c.Analysis.TimeRangeYears)
	}
	if len([]rune(c.Ingest.CSVDelimiter)) > 1 {
		return eris.Errorf("config: ingest.csv_delimiter must be a single character, got %q", c.Ingest.CSVDelimiter)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
