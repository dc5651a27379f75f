package chart

import (
	"github.com/c9s/currentprice/pkg/priceindicator"
)

const defaultExtremesPadding = 0.05

var _ priceindicator.Axis = &Axis{}

// Axis is a vertical price axis. Without explicit Min/Max the extremes
// follow the data of the series plotted on it.
type Axis struct {
	Name string
	Min  *float64
	Max  *float64

	// OnOpposite draws the axis on the right side of the plot area.
	OnOpposite bool

	// Offset shifts the axis line to the right of the plot area edge.
	Offset float64

	// CurrentPriceIndicator holds the raw indicator overrides of this axis.
	CurrentPriceIndicator map[string]interface{}

	chart            *Chart
	dataMin, dataMax float64
}

func (a *Axis) String() string {
	if a.Name == "" {
		return "yAxis"
	}
	return a.Name
}

func (a *Axis) Extremes() (min, max float64) {
	min, max = a.dataMin, a.dataMax
	if a.Min != nil {
		min = *a.Min
	}
	if a.Max != nil {
		max = *a.Max
	}
	return min, max
}

// ToPixels maps the value onto the plot area, larger values higher up.
func (a *Axis) ToPixels(value float64) float64 {
	top, height := a.chart.plotTop(), a.chart.plotHeight()
	min, max := a.Extremes()
	if max == min {
		return top + height/2
	}
	return top + (max-value)/(max-min)*height
}

func (a *Axis) Opposite() bool {
	return a.OnOpposite
}

func (a *Axis) Right() float64 {
	return a.chart.MarginRight - a.Offset
}

func (a *Axis) IndicatorOptions() map[string]interface{} {
	return a.CurrentPriceIndicator
}

// setDataExtremes pads the data range so the data does not touch the plot borders.
func (a *Axis) setDataExtremes(min, max float64) {
	padding := (max - min) * defaultExtremesPadding
	if padding == 0 {
		padding = max * 0.01
	}
	if padding == 0 {
		padding = 1
	}
	if padding < 0 {
		padding = -padding
	}

	a.dataMin = min - padding
	a.dataMax = max + padding
}
