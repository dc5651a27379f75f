package cmd

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/currentprice/pkg/chart"
	"github.com/c9s/currentprice/pkg/cmd/cmdutil"
	"github.com/c9s/currentprice/pkg/config"
	"github.com/c9s/currentprice/pkg/priceindicator"
	"github.com/c9s/currentprice/pkg/style"
	"github.com/c9s/currentprice/pkg/types"
)

func init() {
	cmdutil.ChartFlags(RenderCmd.Flags())
	RenderCmd.Flags().String("output", "", "output image file, defaults to chart.<format>")
	RenderCmd.Flags().Int("replay", 0, "replay the last N samples one by one, redrawing the chart on each")
	RenderCmd.Flags().Bool("plain", false, "print the summary as plain lines instead of a table")
	RootCmd.AddCommand(RenderCmd)
}

var RenderCmd = &cobra.Command{
	Use:   "render [--config chart.yaml] [--output chart.png] [--format png|svg] [--replay N]",
	Short: "render a chart image with the current price indicator",
	RunE:  render,
}

func render(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	// the output extension wins over the default format
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" && !cmd.Flags().Changed("format") {
		formatStr = ext
	}

	format, err := chart.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	if output == "" {
		output = "chart." + string(format)
	}

	replay, err := cmd.Flags().GetInt("replay")
	if err != nil {
		return err
	}

	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return err
	}

	labelFormat, err := cmd.Flags().GetString("label-format")
	if err != nil {
		return err
	}
	if labelFormat == "" {
		labelFormat = viper.GetString("label-format")
	}
	cmdutil.SetLabelFormat(cfg, labelFormat)

	measurer, err := chart.NewFontMeasurer()
	if err != nil {
		return err
	}

	c := cmdutil.NewChart(cfg, measurer)

	series, err := cmdutil.LoadSeries(cfg)
	if err != nil {
		return err
	}

	primary := series[0]
	for _, s := range series[1:] {
		c.AddSeries(s)
	}

	renderer := priceindicator.NewRenderer(priceindicator.WithLogger(log.WithField("command", "render")))
	renderer.Attach(c, c)

	start := replayStart(primary.Length(), replay)
	c.SetPriceSeries(head(primary, start))
	c.Initialize()

	for i := start + 1; i <= primary.Length(); i++ {
		c.SetPriceSeries(head(primary, i))
		c.Redraw()
	}

	if err := cmdutil.WriteFileLocked(output, func(w io.Writer) error {
		return c.Render(w, format)
	}); err != nil {
		return errors.Wrapf(err, "unable to render %s", output)
	}

	log.Infof("chart written to %s", output)

	st, err := c.IndicatorStatus(renderer)
	if err != nil {
		return err
	}

	var rows []style.IndicatorRow
	if st != nil {
		rows = append(rows, style.IndicatorRow{
			Axis:    st.Axis,
			Price:   st.Price,
			Label:   st.Label,
			Y:       st.Y,
			Min:     st.Min,
			Max:     st.Max,
			Visible: st.Visible,
		})
	}

	tableStyle := style.NewDefaultTableStyle()
	if plain {
		tableStyle = nil
	}

	style.PrintIndicatorSummary(cmd.OutOrStdout(), primary.Name, rows, tableStyle, !plain)
	return nil
}

// replayStart returns how many samples the chart initializes with.
func replayStart(length, replay int) int {
	if replay <= 0 || length == 0 {
		return length
	}

	if replay >= length {
		return 1
	}

	return length - replay
}

func head(s *types.Series, n int) *types.Series {
	return &types.Series{
		Name: s.Name,
		Type: s.Type,
		Data: s.Data[:n],
	}
}
