package chart

import (
	"github.com/c9s/currentprice/pkg/priceindicator"
)

// IndicatorStatus is the json view of the indicator of one axis.
type IndicatorStatus struct {
	Axis    string  `json:"axis"`
	Price   float64 `json:"price"`
	Label   string  `json:"label"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Visible bool    `json:"visible"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// IndicatorStatus reads the stored indicator state of the price axis.
// It returns nil when the indicator has never been drawn.
func (c *Chart) IndicatorStatus(renderer *priceindicator.Renderer) (*IndicatorStatus, error) {
	if len(c.yAxis) == 0 {
		return nil, nil
	}

	axis := c.yAxis[0]
	state, ok := renderer.State(axis)
	if !ok {
		return nil, nil
	}

	price, err := priceindicator.ChartPrice(c)
	if err != nil {
		return nil, err
	}

	min, max := axis.Extremes()
	st := &IndicatorStatus{
		Axis:    axis.String(),
		Price:   price,
		Visible: state.Group.Visible(),
		Min:     min,
		Max:     max,
	}

	if text, ok := state.Label.(*SceneText); ok {
		st.Label = text.Text
		st.X, st.Y = text.X, text.Y
	}

	return st, nil
}
