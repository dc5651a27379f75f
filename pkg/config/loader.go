package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/currentprice/pkg/types"
)

const DefaultInterval = time.Minute

type Margin struct {
	Top    *float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Bottom *float64 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty" yaml:"left,omitempty"`
	Right  *float64 `json:"right,omitempty" yaml:"right,omitempty"`
}

type ChartConfig struct {
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Width      int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height     int    `json:"height,omitempty" yaml:"height,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Margin     Margin `json:"margin,omitempty" yaml:"margin,omitempty"`
}

type SeriesConfig struct {
	Name string           `json:"name" yaml:"name"`
	Type types.SeriesType `json:"type" yaml:"type"`

	// Files are csv files or directories of csv files.
	Files StringSlice `json:"file" yaml:"file"`

	// Layout is the csv layout: binance (default), bybit or metatrader.
	Layout   string        `json:"layout,omitempty" yaml:"layout,omitempty"`
	Interval time.Duration `json:"interval,omitempty" yaml:"interval,omitempty"`
}

type AxisConfig struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Opposite bool     `json:"opposite,omitempty" yaml:"opposite,omitempty"`
	Offset   float64  `json:"offset,omitempty" yaml:"offset,omitempty"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	CurrentPriceIndicator map[string]interface{} `json:"currentPriceIndicator,omitempty" yaml:"currentPriceIndicator,omitempty"`
}

type Config struct {
	Chart  ChartConfig    `json:"chart" yaml:"chart"`
	Series []SeriesConfig `json:"series" yaml:"series"`
	YAxis  []AxisConfig   `json:"yAxis" yaml:"yAxis"`
}

func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config, err := Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", configFile)
	}

	config.resolvePaths(filepath.Dir(configFile))
	return config, nil
}

func Parse(content []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate fills the defaults and reports every invalid series and axis at once.
func (c *Config) Validate() error {
	if len(c.Series) == 0 {
		return errors.New("at least one series is required")
	}

	var errs error
	for i := range c.Series {
		s := &c.Series[i]
		if len(s.Files) == 0 {
			errs = multierr.Append(errs, errors.Errorf("series #%d: file is required", i))
		}

		if s.Type == "" {
			s.Type = types.SeriesTypeCandlestick
		}
		s.Type = types.ParseSeriesType(string(s.Type))

		if !s.Type.IsScalar() && !s.Type.IsTuple() {
			errs = multierr.Append(errs, errors.Errorf("series #%d: unsupported series type %q", i, s.Type))
		}

		if s.Interval == 0 {
			s.Interval = DefaultInterval
		}
	}

	if len(c.YAxis) == 0 {
		c.YAxis = append(c.YAxis, AxisConfig{Opposite: true})
	}

	for i, a := range c.YAxis {
		if a.Min != nil && a.Max != nil && *a.Min >= *a.Max {
			errs = multierr.Append(errs, errors.Errorf("yAxis #%d: min %f must be less than max %f", i, *a.Min, *a.Max))
		}
	}

	return errs
}

func (c *Config) resolvePaths(dir string) {
	for i := range c.Series {
		for j, file := range c.Series[i].Files {
			if !filepath.IsAbs(file) {
				c.Series[i].Files[j] = filepath.Join(dir, file)
			}
		}
	}
}
