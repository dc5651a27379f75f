package priceindicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/currentprice/pkg/types"
)

var (
	// ErrUnsupportedSeriesType is returned for series types outside the handled set.
	ErrUnsupportedSeriesType = errors.New("unsupported series type")

	// ErrMalformedSample is returned when an OHLC sample does not carry 4 values.
	ErrMalformedSample = errors.New("malformed series sample")
)

// CurrentPrice returns the latest price of the series. An empty series yields 0.
func CurrentPrice(series *types.Series) (float64, error) {
	last := series.Last()
	if last == nil {
		return 0.0, nil
	}

	switch {
	case series.Type.IsScalar():
		if len(last) == 0 {
			return 0.0, errors.Wrapf(ErrMalformedSample, "%s series %q", series.Type, series.Name)
		}
		return last[0], nil

	case series.Type.IsTuple():
		if len(last) < 4 {
			return 0.0, errors.Wrapf(ErrMalformedSample, "%s series %q: want 4 values, got %d", series.Type, series.Name, len(last))
		}
		return last[3], nil
	}

	return 0.0, errors.Wrapf(ErrUnsupportedSeriesType, "series %q has type %q", series.Name, series.Type)
}

// ChartPrice reads the current price from the chart's primary (first) series.
func ChartPrice(chart Chart) (float64, error) {
	series := chart.Series()
	if len(series) == 0 {
		return 0.0, nil
	}
	return CurrentPrice(series[0])
}
