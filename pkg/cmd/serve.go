package cmd

import (
	"context"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/currentprice/pkg/chart"
	"github.com/c9s/currentprice/pkg/cmd/cmdutil"
	"github.com/c9s/currentprice/pkg/config"
	"github.com/c9s/currentprice/pkg/server"
	"github.com/c9s/currentprice/pkg/types"
)

func init() {
	ServeCmd.Flags().String("bind", server.DefaultBind, "the address the http server listens on")
	ServeCmd.Flags().String("refresh", "", "cron spec of the periodic chart refresh, e.g. @every 30s")
	ServeCmd.Flags().String("label-format", "", "printf format of the price label, e.g. %.2f; overrides the config")
	RootCmd.AddCommand(ServeCmd)
}

var ServeCmd = &cobra.Command{
	Use:   "serve [--config chart.yaml] [--bind :8080]",
	Short: "serve the chart images with the live current price indicator",
	RunE:  serve,
}

func serve(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	bind, err := cmd.Flags().GetString("bind")
	if err != nil {
		return err
	}

	refresh, err := cmd.Flags().GetString("refresh")
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the csv files are read again on every image request
	loader := func() (*types.Series, error) {
		series, err := cmdutil.LoadSeriesWithRetry(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return series[0], nil
	}

	srv, err := server.New(cfg, c, loader)
	if err != nil {
		return err
	}

	if refresh != "" {
		scheduler, err := srv.StartRefresh(refresh)
		if err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	go func() {
		cmdutil.WaitForSignal(ctx, syscall.SIGINT, syscall.SIGTERM)
		cancel()
	}()

	baseURL := "http://" + bind
	if strings.HasPrefix(bind, ":") {
		baseURL = "http://localhost" + bind
	}

	go server.PingUntil(ctx, baseURL, func() {
		log.Infof("chart is available at %s/chart.svg", baseURL)
	})

	return srv.Run(ctx, bind)
}
