package priceindicator

import (
	"github.com/c9s/currentprice/pkg/types"
)

type testAxis struct {
	min, max float64
	height   float64
	opposite bool
	right    float64
	options  map[string]interface{}
}

func (a *testAxis) Extremes() (float64, float64) { return a.min, a.max }

func (a *testAxis) ToPixels(value float64) float64 {
	height := a.height
	if height == 0 {
		height = a.max - a.min
	}
	return (a.max - value) / (a.max - a.min) * height
}

func (a *testAxis) Opposite() bool                           { return a.opposite }
func (a *testAxis) Right() float64                           { return a.right }
func (a *testAxis) IndicatorOptions() map[string]interface{} { return a.options }

type testChart struct {
	series []*types.Series
	axis   Axis
	layout Layout
	drawer *testDrawer
}

func newTestChart(axis Axis) *testChart {
	return &testChart{
		series: []*types.Series{
			types.NewLineSeries("price", types.SeriesTypeLine, []float64{40, 41, 42}),
		},
		axis: axis,
		layout: Layout{
			Width:       400,
			Height:      200,
			MarginLeft:  10,
			MarginRight: 50,
		},
		drawer: &testDrawer{},
	}
}

func (c *testChart) Series() []*types.Series { return c.series }
func (c *testChart) PriceAxis() Axis         { return c.axis }
func (c *testChart) Layout() Layout          { return c.layout }
func (c *testChart) Drawer() Drawer          { return c.drawer }

// testDrawer records the elements it creates. Text measures 6px per rune and 12px high.
type testDrawer struct {
	groups []*testGroup
	labels []*testLabel
	shapes []*testShape
}

func (d *testDrawer) Group(zIndex int) Group {
	g := &testGroup{zIndex: zIndex, visible: true}
	d.groups = append(d.groups, g)
	return g
}

func (d *testDrawer) Text(parent Group, text string, x, y float64, style TextStyle) Label {
	l := &testLabel{parent: parent, text: text, x: x, y: y, style: style}
	d.labels = append(d.labels, l)
	return l
}

func (d *testDrawer) Path(parent Group, path Path, style PathStyle) Shape {
	s := &testShape{parent: parent, path: path, style: style}
	d.shapes = append(d.shapes, s)
	return s
}

type testGroup struct {
	zIndex  int
	visible bool
}

func (g *testGroup) Show()         { g.visible = true }
func (g *testGroup) Hide()         { g.visible = false }
func (g *testGroup) Visible() bool { return g.visible }

type testLabel struct {
	parent Group
	text   string
	x, y   float64
	style  TextStyle
}

func (l *testLabel) SetText(text string) { l.text = text }
func (l *testLabel) Move(x, y float64)   { l.x, l.y = x, y }
func (l *testLabel) BBox() BBox {
	return BBox{Width: float64(len([]rune(l.text)) * 6), Height: 12}
}

type testShape struct {
	parent Group
	path   Path
	style  PathStyle
}

func (s *testShape) SetPath(path Path) { s.path = path }

type testLifecycle struct {
	initCallbacks   []func()
	redrawCallbacks []func()
}

func (l *testLifecycle) OnInitialize(cb func()) { l.initCallbacks = append(l.initCallbacks, cb) }
func (l *testLifecycle) OnRedraw(cb func())     { l.redrawCallbacks = append(l.redrawCallbacks, cb) }

func (l *testLifecycle) initialize() {
	for _, cb := range l.initCallbacks {
		cb()
	}
}

func (l *testLifecycle) redraw() {
	for _, cb := range l.redrawCallbacks {
		cb()
	}
}
