package priceindicator

import (
	"encoding/json"
	"fmt"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pkg/errors"
)

// ErrInvalidOptions is returned when the per-axis overrides can not be merged over the defaults.
var ErrInvalidOptions = errors.New("invalid currentPriceIndicator options")

// LabelFormatter converts the current price into the label text.
type LabelFormatter func(price float64) string

// Options is the currentPriceIndicator configuration of one axis.
type Options struct {
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	LineColor       string    `json:"lineColor"`
	LineDashStyle   DashStyle `json:"lineDashStyle"`
	LineOpacity     float64   `json:"lineOpacity"`
	Enabled         bool      `json:"enabled"`
	Style           TextStyle `json:"style"`
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	ZIndex          int       `json:"zIndex"`

	// LabelFormat is a printf verb such as "%.2f" used when no LabelFormatter is set.
	LabelFormat string `json:"labelFormat,omitempty"`

	LabelFormatter LabelFormatter `json:"-"`
}

func DefaultOptions() Options {
	return Options{
		BackgroundColor: "#000000",
		BorderColor:     "#000000",
		LineColor:       "#000000",
		LineDashStyle:   DashStyleSolid,
		LineOpacity:     0.8,
		Enabled:         true,
		Style: TextStyle{
			Color:      "#ffffff",
			FontSize:   "11px",
			FontFamily: "",
		},
		X:      0,
		Y:      0,
		ZIndex: 7,
	}
}

// MergeOptions deep-merges the overrides over the default options.
// Nested objects are merged key by key, so overriding style.color keeps
// the default style.fontSize.
func MergeOptions(overrides map[string]interface{}) (Options, error) {
	options := DefaultOptions()
	if len(overrides) == 0 {
		return options, nil
	}

	doc, err := json.Marshal(options)
	if err != nil {
		return options, err
	}

	patch, err := json.Marshal(overrides)
	if err != nil {
		return options, errors.Wrapf(ErrInvalidOptions, "unable to encode overrides: %v", err)
	}

	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return options, errors.Wrapf(ErrInvalidOptions, "unable to merge overrides: %v", err)
	}

	var out Options
	if err := json.Unmarshal(merged, &out); err != nil {
		return options, errors.Wrapf(ErrInvalidOptions, "unable to decode merged options: %v", err)
	}

	return out, nil
}

// FormatLabel renders the label text of the price.
func (o *Options) FormatLabel(price float64) string {
	if o.LabelFormatter != nil {
		return o.LabelFormatter(price)
	}

	if o.LabelFormat != "" {
		return fmt.Sprintf(o.LabelFormat, price)
	}

	return strconv.FormatFloat(price, 'f', -1, 64)
}
