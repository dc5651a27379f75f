package priceindicator

import (
	"github.com/c9s/currentprice/pkg/types"
)

//go:generate mockgen -destination=mocks/mock_host.go -package=mocks . Drawer,Group,Label,Shape

// Chart is the chart context handed to the indicator on every lifecycle event.
type Chart interface {
	Series() []*types.Series
	PriceAxis() Axis
	Layout() Layout
	Drawer() Drawer
}

// Axis is the read-only view of a price axis.
type Axis interface {
	Extremes() (min, max float64)
	ToPixels(value float64) float64
	Opposite() bool

	// Right is the distance between the axis' right edge and the chart's right border.
	Right() float64

	// IndicatorOptions returns the raw currentPriceIndicator overrides of this axis.
	IndicatorOptions() map[string]interface{}
}

// Layout holds the chart pixel dimensions.
type Layout struct {
	Width       float64
	Height      float64
	MarginLeft  float64
	MarginRight float64
}

// Lifecycle is implemented by hosts that dispatch initialize and redraw events.
type Lifecycle interface {
	OnInitialize(cb func())
	OnRedraw(cb func())
}

// Drawer is the host's drawing primitive API.
type Drawer interface {
	Group(zIndex int) Group
	Text(parent Group, text string, x, y float64, style TextStyle) Label
	Path(parent Group, path Path, style PathStyle) Shape
}

type Group interface {
	Show()
	Hide()
	Visible() bool
}

type Label interface {
	SetText(text string)
	Move(x, y float64)
	BBox() BBox
}

type Shape interface {
	SetPath(path Path)
}

// BBox is the rendered bounding box of a text element.
type BBox struct {
	Width  float64
	Height float64
}

type TextStyle struct {
	Color      string `json:"color"`
	FontSize   string `json:"fontSize"`
	FontFamily string `json:"fontFamily"`
}

type PathStyle struct {
	Stroke      string
	StrokeWidth float64
	DashArray   string
	Fill        string
	Opacity     float64
	ZIndex      int
}
