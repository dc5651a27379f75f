package priceindicator

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/currentprice/pkg/types"
)

func setLastPrice(chart *testChart, price float64) {
	chart.series[0] = types.NewLineSeries("price", types.SeriesTypeLine, []float64{price})
}

func TestRenderer_Create(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))

	drawer := chart.drawer
	require.Len(t, drawer.groups, 1)
	require.Len(t, drawer.labels, 1)
	require.Len(t, drawer.shapes, 2)

	group := drawer.groups[0]
	assert.Equal(t, 7, group.zIndex)
	assert.True(t, group.Visible())

	label := drawer.labels[0]
	assert.Equal(t, "42", label.text)
	assert.Equal(t, 10.0, label.x)
	assert.Equal(t, 61.0, label.y)
	assert.Equal(t, TextStyle{Color: "#ffffff", FontSize: "11px"}, label.style)
	assert.Same(t, group, label.parent)

	box := drawer.shapes[0]
	assert.Equal(t, "M 4 58 L 10 50 L 26 50 L 26 64 L 10 64 Z", box.path.String())
	assert.Equal(t, "#000000", box.style.Stroke)
	assert.Equal(t, "#000000", box.style.Fill)
	assert.Equal(t, 0.8, box.style.Opacity)
	assert.Equal(t, 1.0, box.style.StrokeWidth)

	line := drawer.shapes[1]
	assert.Equal(t, "M 350 58 L 4 58", line.path.String())
	assert.Equal(t, "none", line.style.DashArray)
	assert.Equal(t, "", line.style.Fill)

	state, ok := r.State(axis)
	require.True(t, ok)
	assert.Same(t, group, state.Group)
	assert.Same(t, label, state.Label)
	assert.Same(t, box, state.Box)
	assert.Same(t, line, state.Line)
}

func TestRenderer_Idempotent(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))
	first, _ := r.State(axis)
	box := chart.drawer.shapes[0].path.String()
	line := chart.drawer.shapes[1].path.String()
	label := *chart.drawer.labels[0]

	require.NoError(t, r.Render(chart))
	second, _ := r.State(axis)

	assert.Len(t, chart.drawer.groups, 1)
	assert.Len(t, chart.drawer.labels, 1)
	assert.Len(t, chart.drawer.shapes, 2)
	assert.Equal(t, first, second)
	assert.Same(t, first.Group, second.Group)
	assert.Equal(t, box, chart.drawer.shapes[0].path.String())
	assert.Equal(t, line, chart.drawer.shapes[1].path.String())
	assert.Equal(t, label, *chart.drawer.labels[0])
}

func TestRenderer_Update(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))

	setLastPrice(chart, 60)
	require.NoError(t, r.Render(chart))

	require.Len(t, chart.drawer.labels, 1)
	require.Len(t, chart.drawer.shapes, 2)

	label := chart.drawer.labels[0]
	assert.Equal(t, "60", label.text)
	assert.Equal(t, 10.0, label.x)
	assert.Equal(t, 43.0, label.y)
	assert.Equal(t, "M 4 40 L 10 32 L 26 32 L 26 46 L 10 46 Z", chart.drawer.shapes[0].path.String())
	assert.Equal(t, "M 350 40 L 4 40", chart.drawer.shapes[1].path.String())

	// a wider label widens the box
	setLastPrice(chart, 60.5)
	require.NoError(t, r.Render(chart))
	assert.Equal(t, "60.5", label.text)
	assert.Equal(t, "M 4 39.5 L 10 31.5 L 38 31.5 L 38 45.5 L 10 45.5 Z", chart.drawer.shapes[0].path.String())
}

func TestRenderer_Visibility(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		visible bool
	}{
		{"inside", 50, true},
		{"equal to min", 10, false},
		{"equal to max", 90, false},
		{"below min", 5, false},
		{"above max", 95, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis := &testAxis{min: 10, max: 90}
			chart := newTestChart(axis)
			setLastPrice(chart, tt.price)

			r := NewRenderer()
			require.NoError(t, r.Render(chart))

			state, ok := r.State(axis)
			require.True(t, ok)
			assert.Equal(t, tt.visible, state.Group.Visible())
		})
	}
}

func TestRenderer_VisibilityToggles(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))
	assert.True(t, chart.drawer.groups[0].Visible())

	setLastPrice(chart, 100)
	require.NoError(t, r.Render(chart))
	assert.False(t, chart.drawer.groups[0].Visible())

	setLastPrice(chart, 99)
	require.NoError(t, r.Render(chart))
	assert.True(t, chart.drawer.groups[0].Visible())
	assert.Len(t, chart.drawer.groups, 1)
}

func TestRenderer_DisabledLeavesStateUntouched(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))
	before, _ := r.State(axis)
	box := chart.drawer.shapes[0].path.String()
	label := *chart.drawer.labels[0]

	axis.options = map[string]interface{}{"enabled": false}
	setLastPrice(chart, 500)
	require.NoError(t, r.Render(chart))

	after, ok := r.State(axis)
	require.True(t, ok)
	assert.Same(t, before.Group, after.Group)
	assert.True(t, after.Group.Visible(), "a disabled render must not hide the indicator")
	assert.Equal(t, box, chart.drawer.shapes[0].path.String())
	assert.Equal(t, label, *chart.drawer.labels[0])
	assert.Len(t, chart.drawer.groups, 1)
}

func TestRenderer_DisabledFirstRender(t *testing.T) {
	axis := &testAxis{min: 0, max: 100, options: map[string]interface{}{"enabled": false}}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))

	_, ok := r.State(axis)
	assert.False(t, ok)
	assert.Empty(t, chart.drawer.groups)
}

func TestRenderer_OppositeAxis(t *testing.T) {
	axis := &testAxis{min: 0, max: 100, opposite: true, right: 40}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))

	assert.Equal(t, 360.0, chart.drawer.labels[0].x)
	assert.Equal(t, "M 10 58 L 354 58", chart.drawer.shapes[1].path.String())
}

func TestRenderer_Options(t *testing.T) {
	axis := &testAxis{min: 0, max: 100, options: map[string]interface{}{
		"lineDashStyle": "ShortDashDot",
		"lineColor":     "#ff0000",
		"lineOpacity":   0.5,
		"zIndex":        3,
		"y":             2,
		"labelFormat":   "%.2f",
	}}
	chart := newTestChart(axis)

	r := NewRenderer()
	require.NoError(t, r.Render(chart))

	assert.Equal(t, 3, chart.drawer.groups[0].zIndex)
	assert.Equal(t, "42.00", chart.drawer.labels[0].text)

	line := chart.drawer.shapes[1]
	assert.Equal(t, "3,1,1,1", line.style.DashArray)
	assert.Equal(t, "#ff0000", line.style.Stroke)
	assert.Equal(t, 0.5, line.style.Opacity)
	assert.Equal(t, "M 350 60 L 4 60", line.path.String())
}

func TestRenderer_LabelFormatter(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)

	r := NewRenderer(WithLabelFormatter(func(price float64) string {
		return "last"
	}))
	require.NoError(t, r.Render(chart))
	assert.Equal(t, "last", chart.drawer.labels[0].text)
}

func TestRenderer_LabelFormatterPanicPropagates(t *testing.T) {
	chart := newTestChart(&testAxis{min: 0, max: 100})

	r := NewRenderer(WithLabelFormatter(func(price float64) string {
		panic("formatter failure")
	}))
	assert.Panics(t, func() {
		_ = r.Render(chart)
	})
}

func TestRenderer_Errors(t *testing.T) {
	t.Run("unsupported series", func(t *testing.T) {
		axis := &testAxis{min: 0, max: 100}
		chart := newTestChart(axis)
		chart.series[0] = &types.Series{Type: "renko", Data: []types.Sample{{1}}}

		r := NewRenderer()
		assert.ErrorIs(t, r.Render(chart), ErrUnsupportedSeriesType)
		assert.Empty(t, chart.drawer.groups)
	})

	t.Run("invalid options", func(t *testing.T) {
		axis := &testAxis{min: 0, max: 100, options: map[string]interface{}{"zIndex": "top"}}
		chart := newTestChart(axis)

		r := NewRenderer()
		assert.ErrorIs(t, r.Render(chart), ErrInvalidOptions)
	})

	t.Run("no axis", func(t *testing.T) {
		chart := newTestChart(nil)
		chart.axis = nil

		r := NewRenderer()
		assert.NoError(t, r.Render(chart))
		assert.Empty(t, chart.drawer.groups)
	})
}

func TestRenderer_EmptySeries(t *testing.T) {
	axis := &testAxis{min: -10, max: 100}
	chart := newTestChart(axis)
	chart.series[0] = &types.Series{Type: types.SeriesTypeCandlestick}

	r := NewRenderer()
	require.NoError(t, r.Render(chart))
	assert.Equal(t, "0", chart.drawer.labels[0].text)
	assert.True(t, chart.drawer.groups[0].Visible())
}

func TestRenderer_Attach(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)
	lifecycle := &testLifecycle{}

	r := NewRenderer()
	r.Attach(chart, lifecycle)

	_, ok := r.State(axis)
	assert.False(t, ok)

	lifecycle.initialize()
	state, ok := r.State(axis)
	require.True(t, ok)

	setLastPrice(chart, 10)
	lifecycle.redraw()
	assert.Equal(t, "10", chart.drawer.labels[0].text)
	assert.Len(t, chart.drawer.labels, 1)

	again, _ := r.State(axis)
	assert.Same(t, state.Label, again.Label)
}

func TestRenderer_AttachLogsRenderErrors(t *testing.T) {
	axis := &testAxis{min: 0, max: 100}
	chart := newTestChart(axis)
	chart.series[0] = &types.Series{Name: "bricks", Type: "renko", Data: []types.Sample{{1}}}
	lifecycle := &testLifecycle{}

	logger, hook := test.NewNullLogger()
	r := NewRenderer(WithLogger(logger.WithField("component", "test")))
	r.Attach(chart, lifecycle)

	lifecycle.initialize()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "test", entry.Data["component"])
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), ErrUnsupportedSeriesType)

	_, ok := r.State(axis)
	assert.False(t, ok)
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "M 4 58 L 10 50 L 26 50 L 26 64 L 10 64 Z", flagPath(10, 58, 12, 12).String())
	assert.Equal(t, "M 0 1.5 L 4 1.5", connectorPath(0, 10, 1.5).String())
}
