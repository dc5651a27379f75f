package chart

import (
	"strconv"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/currentprice/pkg/priceindicator"
)

const defaultFontSize = "11px"

// TextMeasurer measures the bounding box a text occupies once rendered.
type TextMeasurer interface {
	MeasureText(text string, style priceindicator.TextStyle) priceindicator.BBox
}

// FontMeasurer measures text with go-chart's default font.
type FontMeasurer struct {
	font     *truetype.Font
	renderer gochart.Renderer
}

func NewFontMeasurer() (*FontMeasurer, error) {
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load the default font")
	}

	r, err := gochart.SVG(1, 1)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create the measuring renderer")
	}
	r.SetFont(font)

	return &FontMeasurer{
		font:     font,
		renderer: r,
	}, nil
}

func (m *FontMeasurer) Font() *truetype.Font {
	return m.font
}

func (m *FontMeasurer) MeasureText(text string, style priceindicator.TextStyle) priceindicator.BBox {
	m.renderer.SetFontSize(FontSizePoints(style.FontSize, m.renderer.GetDPI()))
	box := m.renderer.MeasureText(text)
	return priceindicator.BBox{
		Width:  float64(box.Width()),
		Height: float64(box.Height()),
	}
}

// FontSizePoints converts a css font size ("11px", "9pt", "12") into points.
func FontSizePoints(fontSize string, dpi float64) float64 {
	fontSize = strings.TrimSpace(strings.ToLower(fontSize))
	if fontSize == "" {
		fontSize = defaultFontSize
	}

	if dpi <= 0 {
		dpi = gochart.DefaultDPI
	}

	switch {
	case strings.HasSuffix(fontSize, "pt"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(fontSize, "pt"), 64)
		if err != nil {
			return FontSizePoints(defaultFontSize, dpi)
		}
		return v

	default:
		v, err := strconv.ParseFloat(strings.TrimSuffix(fontSize, "px"), 64)
		if err != nil {
			return FontSizePoints(defaultFontSize, dpi)
		}
		return v * 72 / dpi
	}
}
