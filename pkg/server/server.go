package server

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/c9s/currentprice/pkg/chart"
	"github.com/c9s/currentprice/pkg/config"
	"github.com/c9s/currentprice/pkg/priceindicator"
	"github.com/c9s/currentprice/pkg/types"
)

var log = logrus.WithField("component", "server")

const DefaultBind = ":8080"

// SeriesLoader loads the primary price series of the chart.
type SeriesLoader func() (*types.Series, error)

// Server serves the chart images with the current price indicator.
// Every request that touches the chart holds the mutex, so the indicator sees one render at a time.
type Server struct {
	Config *config.Config

	mu       sync.Mutex
	chart    *chart.Chart
	renderer *priceindicator.Renderer
	loader   SeriesLoader

	srv *http.Server
}

// New attaches an indicator renderer to the chart and initializes it with the first loaded series.
// The renderer reports render errors to the server logger unless the options set another one.
func New(cfg *config.Config, c *chart.Chart, loader SeriesLoader, options ...priceindicator.RendererOption) (*Server, error) {
	renderer := priceindicator.NewRenderer(append([]priceindicator.RendererOption{
		priceindicator.WithLogger(log),
	}, options...)...)

	s := &Server{
		Config:   cfg,
		chart:    c,
		renderer: renderer,
		loader:   loader,
	}

	series, err := loader()
	if err != nil {
		return nil, err
	}

	c.SetPriceSeries(series)
	renderer.Attach(c, c)
	c.Initialize()
	return s, nil
}

// refresh reloads the series and redraws the chart. The caller must hold the mutex.
func (s *Server) refresh() error {
	series, err := s.loader()
	if err != nil {
		return err
	}

	s.chart.SetPriceSeries(series)
	s.chart.Redraw()
	return nil
}

func (s *Server) render(format chart.Format) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.chart.Render(&buf, format); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *Server) status() (*chart.IndicatorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart.IndicatorStatus(s.renderer)
}

// Run serves until the context is cancelled, then shuts the http server down.
func (s *Server) Run(ctx context.Context, bind string) error {
	if bind == "" {
		bind = DefaultBind
	}

	s.srv = &http.Server{
		Addr:    bind,
		Handler: s.newEngine(),
	}

	errC := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", bind)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		return err

	case <-ctx.Done():
	}

	log.Info("shutting down web server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		return err
	}

	log.Info("server shutdown completed")
	return nil
}
