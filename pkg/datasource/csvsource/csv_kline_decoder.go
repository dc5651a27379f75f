package csvsource

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/c9s/currentprice/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time unix milli format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVKLineDecoder is an extension point for CSVKLineReader to support custom file formats.
type CSVKLineDecoder func(record []string, interval time.Duration) (types.KLine, error)

// BinanceCSVKLineDecoder decodes a CSV record from Binance or Bybit into a KLine.
// Layout: open time (unix ms), open, high, low, close[, volume].
func BinanceCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 5 {
		return empty, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}
	k.StartTime = time.UnixMilli(msec).UTC()
	k.EndTime = k.StartTime.Add(interval)

	if err := decodeOHLCV(&k, record[1:]); err != nil {
		return empty, err
	}
	return k, nil
}

// MetaTraderCSVKLineDecoder decodes a CSV record from MetaTrader into a KLine.
// Layout: date;time;open;high;low;close[;volume].
func MetaTraderCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 6 {
		return empty, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}
	k.StartTime = t
	k.EndTime = t.Add(interval)

	if err := decodeOHLCV(&k, record[2:]); err != nil {
		return empty, err
	}
	return k, nil
}

// decodeOHLCV parses open, high, low, close and the optional volume column.
func decodeOHLCV(k *types.KLine, cols []string) error {
	prices := make([]float64, 4)
	for i := range prices {
		v, err := strconv.ParseFloat(strings.TrimSpace(cols[i]), 64)
		if err != nil {
			return ErrInvalidPriceFormat
		}
		prices[i] = v
	}
	k.Open, k.High, k.Low, k.Close = prices[0], prices[1], prices[2], prices[3]

	if len(cols) > 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(cols[4]), 64)
		if err != nil {
			return ErrInvalidVolumeFormat
		}
		k.Volume = v
	}
	return nil
}

// ReaderMakerByName returns the reader factory of a known csv layout.
func ReaderMakerByName(name string) (MakeCSVKLineReader, error) {
	switch strings.ToLower(name) {
	case "":
		return NewCSVKLineReader, nil
	case "binance", "bybit":
		return NewBinanceCSVKLineReader, nil
	case "metatrader", "mt":
		return NewMetaTraderCSVKLineReader, nil
	}
	return nil, fmt.Errorf("unsupported csv layout %q", name)
}
