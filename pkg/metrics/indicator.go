package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	RenderActionCreated = "created"
	RenderActionUpdated = "updated"
	RenderActionSkipped = "skipped"
	RenderActionFailed  = "failed"
)

var IndicatorRenderCountMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "currentprice_indicator_renders_total",
		Help: "current price indicator renders by action",
	}, []string{"axis", "action"})

var IndicatorPriceMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "currentprice_indicator_price",
		Help: "the last price rendered by the current price indicator",
	}, []string{"axis"})

var IndicatorVisibleMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "currentprice_indicator_visible",
		Help: "1 when the indicator is shown, 0 when the price is outside the axis extremes",
	}, []string{"axis"})

func init() {
	prometheus.MustRegister(IndicatorRenderCountMetrics, IndicatorPriceMetrics, IndicatorVisibleMetrics)
}

func UpdateIndicatorMetrics(axis, action string, price float64, visible bool) {
	IndicatorRenderCountMetrics.With(prometheus.Labels{"axis": axis, "action": action}).Inc()
	IndicatorPriceMetrics.With(prometheus.Labels{"axis": axis}).Set(price)

	v := 0.0
	if visible {
		v = 1.0
	}
	IndicatorVisibleMetrics.With(prometheus.Labels{"axis": axis}).Set(v)
}

func IncIndicatorRender(axis, action string) {
	IndicatorRenderCountMetrics.With(prometheus.Labels{"axis": axis, "action": action}).Inc()
}
