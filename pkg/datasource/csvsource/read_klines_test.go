package csvsource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKLinesFromCSVWithDecoder_Binance(t *testing.T) {
	expectedEndTime := time.Unix(1609459200, 0).Add(time.Hour)

	prices, err := ReadKLinesFromCSVWithDecoder("./testdata/BTCUSDT-1h.csv", time.Hour, NewBinanceCSVKLineReader)
	require.NoError(t, err)
	assert.Len(t, prices, 5)
	assert.Equal(t, int64(1609459200), prices[0].StartTime.Unix(), "StartTime")
	assert.Equal(t, expectedEndTime.Unix(), prices[0].EndTime.Unix(), "EndTime")
	assert.Equal(t, 28923.63, prices[0].Open, "Open")
	assert.Equal(t, 29031.34, prices[0].High, "High")
	assert.Equal(t, 28690.17, prices[0].Low, "Low")
	assert.Equal(t, 28995.13, prices[0].Close, "Close")
	assert.Equal(t, 2311.811445, prices[0].Volume, "Volume")
	assert.Equal(t, 29220.31, prices[4].Close, "Close")
}

func TestReadKLinesFromCSVWithDecoder_MetaTrader(t *testing.T) {
	prices, err := ReadKLinesFromCSVWithDecoder("./testdata/mt", time.Hour, NewMetaTraderCSVKLineReader)
	require.NoError(t, err)
	assert.Len(t, prices, 2)
	assert.Equal(t, 781.25, prices[1].Close)
}

func TestReadKLinesFromCSVWithDecoder_Missing(t *testing.T) {
	_, err := ReadKLinesFromCSVWithDecoder("./testdata/missing.csv", time.Hour, NewBinanceCSVKLineReader)
	assert.Error(t, err)
}
