package style

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// IndicatorRow is one line of the current price indicator summary.
type IndicatorRow struct {
	Axis    string
	Price   float64
	Label   string
	Y       float64
	Min     float64
	Max     float64
	Visible bool
}

// PrintIndicatorSummary writes the indicator rows as a table.
// When style is nil the rows are written as plain lines.
func PrintIndicatorSummary(w io.Writer, title string, rows []IndicatorRow, style *table.Style, withColor bool) {
	var write func(io.Writer, string, ...interface{})
	if withColor {
		write = color.New(color.FgHiYellow).FprintfFunc()
	} else {
		write = func(a io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(a, format, args...)
		}
	}

	write(w, "---- %s ---\n", title)

	if style == nil {
		for _, row := range rows {
			fmt.Fprintf(w, "%s price=%s label=%q y=%.1f range=(%s, %s) visible=%v\n",
				row.Axis, formatFloat(row.Price), row.Label, row.Y, formatFloat(row.Min), formatFloat(row.Max), row.Visible)
		}
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*style)
	t.AppendHeader(table.Row{"axis", "price", "label", "y", "min", "max", "visible"})
	for _, row := range rows {
		t.AppendRow(table.Row{
			row.Axis,
			formatFloat(row.Price),
			row.Label,
			fmt.Sprintf("%.1f", row.Y),
			formatFloat(row.Min),
			formatFloat(row.Max),
			row.Visible,
		})
	}
	t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
