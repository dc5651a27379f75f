package types

import (
	"fmt"
	"time"
)

// KLine is one trading period decoded from a kline source (csv, exchange dump).
type KLine struct {
	Symbol string `json:"symbol"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Sample returns the kline as an (open, high, low, close) tuple.
func (k *KLine) Sample() Sample {
	return Sample{k.Open, k.High, k.Low, k.Close}
}

func (k KLine) String() string {
	return fmt.Sprintf("%s %s O: %g H: %g L: %g C: %g V: %g",
		k.Symbol,
		k.StartTime.Format("2006-01-02 15:04"),
		k.Open, k.High, k.Low, k.Close, k.Volume)
}

type KLineSlice []KLine

func (s KLineSlice) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, k := range s {
		closes[i] = k.Close
	}
	return closes
}
