package priceindicator

// AxisMapper maps prices onto the pixel space of one price axis.
type AxisMapper struct {
	axis    Axis
	layout  Layout
	options *Options
}

func NewAxisMapper(axis Axis, layout Layout, options *Options) *AxisMapper {
	return &AxisMapper{
		axis:    axis,
		layout:  layout,
		options: options,
	}
}

// PixelY returns the vertical pixel position of the price, with the y offset option applied.
func (m *AxisMapper) PixelY(price float64) float64 {
	return m.axis.ToPixels(price) + m.options.Y
}

func (m *AxisMapper) Extremes() (min, max float64) {
	return m.axis.Extremes()
}

// LineAnchorX is the far end of the connector line, on the opposite side of the label.
func (m *AxisMapper) LineAnchorX() float64 {
	if m.axis.Opposite() {
		return m.layout.MarginLeft
	}
	return m.layout.Width - m.layout.MarginRight
}

// LabelAnchorX is the left edge of the label, with the x offset option applied.
func (m *AxisMapper) LabelAnchorX() float64 {
	x := m.layout.MarginLeft
	if m.axis.Opposite() {
		x = m.layout.Width - m.axis.Right()
	}
	return x + m.options.X
}

// Visible reports whether the price lies strictly inside the axis extremes.
func (m *AxisMapper) Visible(price float64) bool {
	min, max := m.Extremes()
	return price > min && price < max
}
