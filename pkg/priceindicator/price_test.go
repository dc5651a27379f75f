package priceindicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/currentprice/pkg/types"
)

func TestCurrentPrice(t *testing.T) {
	tests := []struct {
		name    string
		series  *types.Series
		want    float64
		wantErr error
	}{
		{
			name:   "nil series",
			series: nil,
			want:   0.0,
		},
		{
			name:   "empty line series",
			series: &types.Series{Type: types.SeriesTypeLine},
			want:   0.0,
		},
		{
			name:   "empty unknown series",
			series: &types.Series{Type: "heikinashi"},
			want:   0.0,
		},
		{
			name:   "line",
			series: types.NewLineSeries("btc", types.SeriesTypeLine, []float64{1, 2, 3.5}),
			want:   3.5,
		},
		{
			name:   "spline",
			series: types.NewLineSeries("btc", types.SeriesTypeSpline, []float64{7, 8}),
			want:   8,
		},
		{
			name:   "area",
			series: types.NewLineSeries("btc", types.SeriesTypeArea, []float64{9}),
			want:   9,
		},
		{
			name: "candlestick takes close",
			series: &types.Series{
				Type: types.SeriesTypeCandlestick,
				Data: []types.Sample{{1, 2, 0.5, 1.5}, {10, 12, 8, 11}},
			},
			want: 11,
		},
		{
			name: "ohlc takes close",
			series: &types.Series{
				Type: types.SeriesTypeOHLC,
				Data: []types.Sample{{10, 12, 8, 11}},
			},
			want: 11,
		},
		{
			name: "short tuple",
			series: &types.Series{
				Type: types.SeriesTypeOHLC,
				Data: []types.Sample{{10, 12}},
			},
			wantErr: ErrMalformedSample,
		},
		{
			name: "unsupported type",
			series: &types.Series{
				Type: "heikinashi",
				Data: []types.Sample{{10, 12, 8, 11}},
			},
			wantErr: ErrUnsupportedSeriesType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentPrice(tt.series)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChartPrice_NoSeries(t *testing.T) {
	chart := newTestChart(&testAxis{max: 100})
	chart.series = nil

	price, err := ChartPrice(chart)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, price)
}

func TestChartPrice_UsesFirstSeries(t *testing.T) {
	chart := newTestChart(&testAxis{max: 100})
	chart.series = []*types.Series{
		types.NewLineSeries("first", types.SeriesTypeLine, []float64{1, 2}),
		types.NewLineSeries("second", types.SeriesTypeLine, []float64{3, 4}),
	}

	price, err := ChartPrice(chart)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, price)
}
