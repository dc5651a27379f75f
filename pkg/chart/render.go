package chart

import (
	"io"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/c9s/currentprice/pkg/types"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

const axisTickCount = 5

var (
	seriesColor     = drawing.ColorFromHex("2a6fdb")
	risingColor     = drawing.ColorFromHex("26a69a")
	fallingColor    = drawing.ColorFromHex("ef5350")
	gridColor       = drawing.ColorFromHex("e6e6e6")
	axisLabelColor  = drawing.ColorFromHex("666666")
	axisLabelStyle  = "10px"
	titleFontSize   = "13px"
	candleBodyRatio = 0.6
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Render draws the chart and its overlay scene into w.
func (c *Chart) Render(w io.Writer, format Format) error {
	var provider gochart.RendererProvider
	switch format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	r, err := provider(c.Width, c.Height)
	if err != nil {
		return errors.Wrap(err, "unable to create renderer")
	}

	font, err := c.font()
	if err != nil {
		return err
	}
	r.SetFont(font)

	gochart.Draw.Box(r, gochart.Box{Top: 0, Left: 0, Right: c.Width, Bottom: c.Height}, gochart.Style{
		FillColor:   parseColor(c.Background, drawing.ColorWhite),
		StrokeColor: parseColor(c.Background, drawing.ColorWhite),
		StrokeWidth: 1,
	})

	c.drawTitle(r, font)
	c.drawGrid(r, font)

	if len(c.series) > 0 {
		c.drawSeries(r, c.series[0])
	}

	c.scene.Draw(r, font)

	return r.Save(w)
}

func (c *Chart) font() (*truetype.Font, error) {
	if m, ok := c.scene.measurer.(interface{ Font() *truetype.Font }); ok && m.Font() != nil {
		return m.Font(), nil
	}

	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load the default font")
	}
	return font, nil
}

func (c *Chart) drawTitle(r gochart.Renderer, font *truetype.Font) {
	if c.Title == "" {
		return
	}

	r.SetFont(font)
	r.SetFontColor(axisLabelColor)
	r.SetFontSize(FontSizePoints(titleFontSize, r.GetDPI()))
	r.Text(c.Title, round(c.plotLeft()), round(c.plotTop()-6))
}

func (c *Chart) drawGrid(r gochart.Renderer, font *truetype.Font) {
	if len(c.yAxis) == 0 {
		return
	}

	axis := c.yAxis[0]
	min, max := axis.Extremes()
	if max <= min {
		return
	}

	labelX := c.plotLeft() - 4
	if axis.Opposite() {
		labelX = c.plotRight() + axis.Offset + 4
	}

	step := (max - min) / float64(axisTickCount)
	for i := 0; i <= axisTickCount; i++ {
		value := min + step*float64(i)
		y := axis.ToPixels(value)

		r.ResetStyle()
		r.SetStrokeColor(gridColor)
		r.SetStrokeWidth(1)
		r.MoveTo(round(c.plotLeft()), round(y))
		r.LineTo(round(c.plotRight()), round(y))
		r.Stroke()

		label := gochart.FloatValueFormatter(value)
		r.SetFont(font)
		r.SetFontColor(axisLabelColor)
		r.SetFontSize(FontSizePoints(axisLabelStyle, r.GetDPI()))

		x := labelX
		if !axis.Opposite() {
			x -= float64(r.MeasureText(label).Width())
		}
		r.Text(label, round(x), round(y+4))
	}
}

func (c *Chart) drawSeries(r gochart.Renderer, series *types.Series) {
	n := series.Length()
	if n == 0 || len(c.yAxis) == 0 {
		return
	}

	axis := c.yAxis[0]
	left, right := c.plotLeft(), c.plotRight()
	step := (right - left) / float64(n)

	if series.Type.IsTuple() {
		for i, sample := range series.Data {
			if len(sample) < 4 {
				continue
			}
			c.drawCandle(r, axis, left+step*(float64(i)+0.5), step*candleBodyRatio, sample)
		}
		return
	}

	r.ResetStyle()
	r.SetStrokeColor(seriesColor)
	r.SetStrokeWidth(1.5)
	for i, v := range series.Values() {
		x, y := round(left+step*(float64(i)+0.5)), round(axis.ToPixels(v))
		if i == 0 {
			r.MoveTo(x, y)
			continue
		}
		r.LineTo(x, y)
	}
	r.Stroke()
}

func (c *Chart) drawCandle(r gochart.Renderer, axis *Axis, x, width float64, sample types.Sample) {
	open, high, low, closePrice := sample[0], sample[1], sample[2], sample[3]

	color := risingColor
	if closePrice < open {
		color = fallingColor
	}

	r.ResetStyle()
	r.SetStrokeColor(color)
	r.SetStrokeWidth(1)
	r.MoveTo(round(x), round(axis.ToPixels(high)))
	r.LineTo(round(x), round(axis.ToPixels(low)))
	r.Stroke()

	top, bottom := axis.ToPixels(open), axis.ToPixels(closePrice)
	if top > bottom {
		top, bottom = bottom, top
	}

	gochart.Draw.Box(r, gochart.Box{
		Top:    round(top),
		Left:   round(x - width/2),
		Right:  round(x + width/2),
		Bottom: round(bottom),
	}, gochart.Style{
		FillColor:   color,
		StrokeColor: color,
		StrokeWidth: 1,
	})
}
