package chart

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/c9s/currentprice/pkg/priceindicator"
	"github.com/c9s/currentprice/pkg/types"
)

var log = logrus.WithField("component", "chart")

const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

var _ priceindicator.Chart = &Chart{}
var _ priceindicator.Lifecycle = &Chart{}

//go:generate callbackgen -type Chart
type Chart struct {
	Title  string
	Width  int
	Height int

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	Background string

	series []*types.Series
	yAxis  []*Axis
	scene  *Scene

	initializeCallbacks []func()
	redrawCallbacks     []func()
}

func New(title string, width, height int, measurer TextMeasurer) *Chart {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	return &Chart{
		Title:        title,
		Width:        width,
		Height:       height,
		MarginTop:    20,
		MarginBottom: 20,
		MarginLeft:   10,
		MarginRight:  70,
		Background:   "#ffffff",
		scene:        NewScene(measurer),
	}
}

func (c *Chart) AddSeries(series *types.Series) {
	c.series = append(c.series, series)
}

// SetPriceSeries replaces the primary series.
func (c *Chart) SetPriceSeries(series *types.Series) {
	if len(c.series) == 0 {
		c.series = append(c.series, series)
		return
	}
	c.series[0] = series
}

func (c *Chart) AddAxis(axis *Axis) {
	axis.chart = c
	c.yAxis = append(c.yAxis, axis)
}

func (c *Chart) Series() []*types.Series {
	return c.series
}

// PriceAxis returns the first y axis.
func (c *Chart) PriceAxis() priceindicator.Axis {
	if len(c.yAxis) == 0 {
		return nil
	}
	return c.yAxis[0]
}

func (c *Chart) Axes() []*Axis {
	return c.yAxis
}

func (c *Chart) Layout() priceindicator.Layout {
	return priceindicator.Layout{
		Width:       float64(c.Width),
		Height:      float64(c.Height),
		MarginLeft:  c.MarginLeft,
		MarginRight: c.MarginRight,
	}
}

func (c *Chart) Drawer() priceindicator.Drawer {
	return c.scene
}

func (c *Chart) Scene() *Scene {
	return c.scene
}

// Initialize computes the axis extremes and fires the initialize callbacks.
func (c *Chart) Initialize() {
	c.updateExtremes()
	c.EmitInitialize()
}

// Redraw recomputes the axis extremes from the current data and fires the redraw callbacks.
func (c *Chart) Redraw() {
	c.updateExtremes()
	c.EmitRedraw()
}

func (c *Chart) updateExtremes() {
	if len(c.yAxis) == 0 || len(c.series) == 0 {
		return
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, sample := range c.series[0].Data {
		for _, v := range sampleRange(sample) {
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}

	if math.IsInf(min, 1) {
		log.Debugf("no data on %s, keep the previous extremes", c.yAxis[0])
		return
	}

	c.yAxis[0].setDataExtremes(min, max)
}

// sampleRange returns the values that bound a sample: low and high of a tuple, the value otherwise.
func sampleRange(sample types.Sample) []float64 {
	if len(sample) == 4 {
		return sample[1:3]
	}
	return sample
}

func (c *Chart) plotTop() float64 {
	return c.MarginTop
}

func (c *Chart) plotHeight() float64 {
	return float64(c.Height) - c.MarginTop - c.MarginBottom
}

func (c *Chart) plotLeft() float64 {
	return c.MarginLeft
}

func (c *Chart) plotRight() float64 {
	return float64(c.Width) - c.MarginRight
}
