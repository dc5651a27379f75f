package priceindicator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/c9s/currentprice/pkg/metrics"
)

var log = logrus.WithField("component", "currentprice")

const defaultAxisName = "yAxis"

const labelTipOffset = 6

type RendererOption func(r *Renderer)

// WithLabelFormatter injects the label formatting strategy for every axis.
func WithLabelFormatter(formatter LabelFormatter) RendererOption {
	return func(r *Renderer) {
		r.formatter = formatter
	}
}

// WithLogger sets the logger the lifecycle callbacks report render errors to.
func WithLogger(logger logrus.FieldLogger) RendererOption {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// Renderer creates the indicator elements on the first render of an axis and
// updates them in place afterwards.
type Renderer struct {
	store     *StateStore
	formatter LabelFormatter
	logger    logrus.FieldLogger
}

func NewRenderer(options ...RendererOption) *Renderer {
	r := &Renderer{
		store:  NewStateStore(),
		logger: log,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Attach registers the renderer on the host's initialize and redraw events.
func (r *Renderer) Attach(chart Chart, lifecycle Lifecycle) {
	render := func() {
		if err := r.Render(chart); err != nil {
			r.logger.WithError(err).Error("unable to render current price indicator")
		}
	}

	lifecycle.OnInitialize(render)
	lifecycle.OnRedraw(render)
}

func (r *Renderer) State(axis Axis) (*State, bool) {
	return r.store.Get(axis)
}

// Render draws or updates the indicator of the chart's price axis.
func (r *Renderer) Render(chart Chart) error {
	axis := chart.PriceAxis()
	if axis == nil {
		return nil
	}

	name := axisName(axis)

	options, err := MergeOptions(axis.IndicatorOptions())
	if err != nil {
		metrics.IncIndicatorRender(name, metrics.RenderActionFailed)
		return err
	}

	if r.formatter != nil {
		options.LabelFormatter = r.formatter
	}

	if !options.Enabled {
		metrics.IncIndicatorRender(name, metrics.RenderActionSkipped)
		return nil
	}

	price, err := ChartPrice(chart)
	if err != nil {
		metrics.IncIndicatorRender(name, metrics.RenderActionFailed)
		return err
	}

	mapper := NewAxisMapper(axis, chart.Layout(), &options)
	y := mapper.PixelY(price)
	text := options.FormatLabel(price)

	action := metrics.RenderActionUpdated
	state, ok := r.store.Get(axis)
	if !ok {
		state = r.create(chart.Drawer(), mapper, &options, text, y)
		action = metrics.RenderActionCreated
	} else {
		r.update(state, mapper, text, y)
	}

	visible := mapper.Visible(price)
	if visible {
		state.Group.Show()
	} else {
		state.Group.Hide()
	}

	r.store.Put(axis, state)

	r.logger.Debugf("%s indicator on %s: price=%s y=%f visible=%v", action, name, text, y, visible)
	metrics.UpdateIndicatorMetrics(name, action, price, visible)
	return nil
}

func (r *Renderer) create(drawer Drawer, mapper *AxisMapper, options *Options, text string, y float64) *State {
	group := drawer.Group(options.ZIndex)

	label := drawer.Text(group, text, 0, y, options.Style)
	bbox := label.BBox()

	x := mapper.LabelAnchorX()
	label.Move(x, y)

	box := drawer.Path(group, flagPath(x, y, bbox.Width, bbox.Height), PathStyle{
		Stroke:      options.BorderColor,
		StrokeWidth: 1,
		Fill:        options.BackgroundColor,
		Opacity:     options.LineOpacity,
		ZIndex:      1,
	})

	line := drawer.Path(group, connectorPath(mapper.LineAnchorX(), x, y), PathStyle{
		Stroke:      options.LineColor,
		StrokeWidth: 1,
		DashArray:   EncodeDashStyle(string(options.LineDashStyle), 1),
		Opacity:     options.LineOpacity,
		ZIndex:      1,
	})

	// center the label text vertically inside the box
	label.Move(x, y+(bbox.Height/4))

	return &State{
		Group: group,
		Label: label,
		Box:   box,
		Line:  line,
	}
}

func (r *Renderer) update(state *State, mapper *AxisMapper, text string, y float64) {
	state.Label.SetText(text)
	bbox := state.Label.BBox()

	x := mapper.LabelAnchorX()
	state.Label.Move(x, y)
	state.Box.SetPath(flagPath(x, y, bbox.Width, bbox.Height))
	state.Line.SetPath(connectorPath(mapper.LineAnchorX(), x, y))
	state.Label.Move(x, y+(bbox.Height/4))
}

func axisName(axis Axis) string {
	if s, ok := axis.(fmt.Stringer); ok {
		return s.String()
	}
	return defaultAxisName
}
