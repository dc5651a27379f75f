package types

import "strings"

// SeriesType is the chart series type tag, named after the Highstock series types.
type SeriesType string

const (
	SeriesTypeLine        SeriesType = "line"
	SeriesTypeSpline      SeriesType = "spline"
	SeriesTypeArea        SeriesType = "area"
	SeriesTypeCandlestick SeriesType = "candlestick"
	SeriesTypeOHLC        SeriesType = "ohlc"
)

func (t SeriesType) IsScalar() bool {
	switch t {
	case SeriesTypeLine, SeriesTypeSpline, SeriesTypeArea:
		return true
	}
	return false
}

func (t SeriesType) IsTuple() bool {
	switch t {
	case SeriesTypeCandlestick, SeriesTypeOHLC:
		return true
	}
	return false
}

func ParseSeriesType(s string) SeriesType {
	return SeriesType(strings.ToLower(strings.TrimSpace(s)))
}

// Sample is one data point of a series. Scalar series carry one value,
// OHLC-style series carry (open, high, low, close).
type Sample []float64

// Series is an ordered list of samples owned by the chart.
type Series struct {
	Name string
	Type SeriesType
	Data []Sample
}

func (s *Series) Length() int {
	if s == nil {
		return 0
	}
	return len(s.Data)
}

// Last returns the latest sample, nil when the series is empty.
func (s *Series) Last() Sample {
	if s.Length() == 0 {
		return nil
	}
	return s.Data[len(s.Data)-1]
}

// Values returns the plotted value of each sample: the value itself for
// scalar samples, the close for tuples.
func (s *Series) Values() []float64 {
	if s == nil {
		return nil
	}

	values := make([]float64, 0, len(s.Data))
	for _, sample := range s.Data {
		switch len(sample) {
		case 0:
			continue
		case 4:
			values = append(values, sample[3])
		default:
			values = append(values, sample[0])
		}
	}
	return values
}

// NewLineSeries builds a scalar series from plain values.
func NewLineSeries(name string, seriesType SeriesType, values []float64) *Series {
	data := make([]Sample, len(values))
	for i, v := range values {
		data[i] = Sample{v}
	}
	return &Series{Name: name, Type: seriesType, Data: data}
}

// SeriesFromKLines converts klines into a series of the given type. Scalar
// types take the close price, tuple types keep the full OHLC tuple.
func SeriesFromKLines(name string, seriesType SeriesType, klines []KLine) *Series {
	if seriesType.IsScalar() {
		return NewLineSeries(name, seriesType, KLineSlice(klines).Closes())
	}

	data := make([]Sample, len(klines))
	for i := range klines {
		data[i] = klines[i].Sample()
	}
	return &Series{Name: name, Type: seriesType, Data: data}
}
