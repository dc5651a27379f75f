package cmdutil

import (
	"context"
	"sort"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/currentprice/pkg/chart"
	"github.com/c9s/currentprice/pkg/config"
	"github.com/c9s/currentprice/pkg/datasource/csvsource"
	"github.com/c9s/currentprice/pkg/types"
)

// NewChart builds a chart with its axes from the config. The series are not loaded.
func NewChart(cfg *config.Config, measurer chart.TextMeasurer) *chart.Chart {
	c := chart.New(cfg.Chart.Title, cfg.Chart.Width, cfg.Chart.Height, measurer)
	if cfg.Chart.Background != "" {
		c.Background = cfg.Chart.Background
	}

	margin := cfg.Chart.Margin
	if margin.Top != nil {
		c.MarginTop = *margin.Top
	}
	if margin.Bottom != nil {
		c.MarginBottom = *margin.Bottom
	}
	if margin.Left != nil {
		c.MarginLeft = *margin.Left
	}
	if margin.Right != nil {
		c.MarginRight = *margin.Right
	}

	for _, a := range cfg.YAxis {
		c.AddAxis(&chart.Axis{
			Name:                  a.Name,
			Min:                   a.Min,
			Max:                   a.Max,
			OnOpposite:            a.Opposite,
			Offset:                a.Offset,
			CurrentPriceIndicator: a.CurrentPriceIndicator,
		})
	}

	return c
}

// LoadKLines reads the klines of a series from its csv files, in start time order.
func LoadKLines(s config.SeriesConfig) ([]types.KLine, error) {
	maker, err := csvsource.ReaderMakerByName(s.Layout)
	if err != nil {
		return nil, err
	}

	var klines []types.KLine
	for _, file := range s.Files {
		ks, err := csvsource.ReadKLinesFromCSVWithDecoder(file, s.Interval, maker)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to load series %s", s.Name)
		}
		klines = append(klines, ks...)
	}

	// the files may be listed in any order
	sort.SliceStable(klines, func(i, j int) bool {
		return klines[i].StartTime.Before(klines[j].StartTime)
	})

	if n := len(klines); n > 0 {
		log.Debugf("loaded %d klines of %s, last: %s", n, s.Name, klines[n-1])
	}

	return klines, nil
}

// LoadSeries reads every configured series.
func LoadSeries(cfg *config.Config) ([]*types.Series, error) {
	var series []*types.Series
	for _, s := range cfg.Series {
		klines, err := LoadKLines(s)
		if err != nil {
			return nil, err
		}
		series = append(series, types.SeriesFromKLines(s.Name, s.Type, klines))
	}
	return series, nil
}

// MaxLoadRetries bounds the retries of LoadSeriesWithRetry.
var MaxLoadRetries uint64 = 3

// LoadSeriesWithRetry reads the series with exponential backoff, for csv files
// that may be rewritten while they are read.
func LoadSeriesWithRetry(ctx context.Context, cfg *config.Config) (series []*types.Series, err error) {
	op := func() (err2 error) {
		series, err2 = LoadSeries(cfg)
		return err2
	}

	err = backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(),
			MaxLoadRetries),
		ctx))
	return series, err
}

// SetLabelFormat forces the label format of every axis.
func SetLabelFormat(cfg *config.Config, format string) {
	if format == "" {
		return
	}

	for i := range cfg.YAxis {
		if cfg.YAxis[i].CurrentPriceIndicator == nil {
			cfg.YAxis[i].CurrentPriceIndicator = map[string]interface{}{}
		}
		cfg.YAxis[i].CurrentPriceIndicator["labelFormat"] = format
	}
}
